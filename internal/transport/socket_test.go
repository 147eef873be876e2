package transport

import (
	"bytes"
	"errors"
	"io"
	"net"
	"strconv"
	"sync"
	"testing"
	"time"
)

// listeningSocket binds a loopback listener on an ephemeral port and
// returns the socket with its port.
func listeningSocket(t *testing.T) (*Socket, int) {
	t.Helper()
	s := NewSocket()
	if err := s.Create(); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Bind("127.0.0.1", 0); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if err := s.Listen(16); err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	_, portStr, err := net.SplitHostPort(s.LocalAddress())
	if err != nil {
		t.Fatalf("parse local address %q: %v", s.LocalAddress(), err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("parse port %q: %v", portStr, err)
	}
	return s, port
}

// connectedPair returns a client socket and its accepted server peer.
func connectedPair(t *testing.T) (*Socket, *Socket) {
	t.Helper()
	ln, port := listeningSocket(t)

	accepted := make(chan *Socket, 1)
	acceptErr := make(chan error, 1)
	go func() {
		peer, err := ln.Accept()
		if err != nil {
			acceptErr <- err
			return
		}
		accepted <- peer
	}()

	client := NewSocket()
	if err := client.Create(); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := client.Connect("127.0.0.1", port, 5*time.Second); err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	select {
	case peer := <-accepted:
		t.Cleanup(func() { _ = peer.Close() })
		return client, peer
	case err := <-acceptErr:
		t.Fatalf("accept: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("accept did not complete")
	}
	return nil, nil
}

// readAll drains the socket into a buffer until end-of-stream.
func readAll(t *testing.T, s *Socket) []byte {
	t.Helper()
	var out bytes.Buffer
	buf := make([]byte, 256)
	for {
		n, err := s.Read(buf, 0, len(buf))
		if n > 0 {
			out.Write(buf[:n])
		}
		if errors.Is(err, io.EOF) {
			return out.Bytes()
		}
		if err != nil {
			t.Fatalf("read: %v", err)
		}
	}
}

func TestLifecycleOrdering(t *testing.T) {
	s := NewSocket()
	defer s.Close()

	if err := s.Listen(1); !errors.Is(err, ErrNotBound) {
		t.Fatalf("Listen before Bind = %v, want ErrNotBound", err)
	}
	if _, err := s.Accept(); !errors.Is(err, ErrNotListening) {
		t.Fatalf("Accept before Listen = %v, want ErrNotListening", err)
	}
	buf := make([]byte, 8)
	if _, err := s.Read(buf, 0, len(buf)); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("Read before Connect = %v, want ErrNotConnected", err)
	}
	if err := s.Write(buf, 0, len(buf)); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("Write before Connect = %v, want ErrNotConnected", err)
	}

	if err := s.Bind("127.0.0.1", 0); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if err := s.Bind("127.0.0.1", 0); !errors.Is(err, ErrAlreadyBound) {
		t.Fatalf("second Bind = %v, want ErrAlreadyBound", err)
	}
}

func TestConnectRefused(t *testing.T) {
	// Grab an ephemeral port and release it so nothing is listening.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	_ = ln.Close()

	s := NewSocket()
	defer s.Close()
	err = s.Connect("127.0.0.1", port, 2*time.Second)
	if !errors.Is(err, ErrConnectRefused) {
		t.Fatalf("Connect = %v, want ErrConnectRefused", err)
	}
	if s.IsConnected() {
		t.Fatal("socket should not report connected after refusal")
	}
}

func TestConnectTwice(t *testing.T) {
	client, _ := connectedPair(t)
	if err := client.Connect("127.0.0.1", 1, time.Second); !errors.Is(err, ErrAlreadyConnected) {
		t.Fatalf("second Connect = %v, want ErrAlreadyConnected", err)
	}
}

func TestDataArrivesInOrder(t *testing.T) {
	client, server := connectedPair(t)

	var want bytes.Buffer
	go func() {
		payload := []byte("0123456789abcdef")
		for i := 0; i < 64; i++ {
			_ = client.Write(payload, 0, len(payload))
		}
		_ = client.ShutdownOutput()
	}()
	for i := 0; i < 64; i++ {
		want.WriteString("0123456789abcdef")
	}

	got := readAll(t, server)
	if !bytes.Equal(got, want.Bytes()) {
		t.Fatalf("received %d bytes, want %d, or order differs", len(got), want.Len())
	}
}

func TestReadWriteWithOffsets(t *testing.T) {
	client, server := connectedPair(t)

	payload := []byte("##hello##")
	if err := client.Write(payload, 2, 5); err != nil {
		t.Fatalf("write: %v", err)
	}

	buf := make([]byte, 16)
	n, err := server.Read(buf, 4, 5)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got := string(buf[4 : 4+n]); got != "hello"[:n] {
		t.Fatalf("read %q, want prefix of %q", got, "hello")
	}
}

func TestBufferValidation(t *testing.T) {
	client, server := connectedPair(t)

	if _, err := client.Read(nil, 0, 1); !errors.Is(err, ErrNilBuffer) {
		t.Fatalf("Read(nil) = %v, want ErrNilBuffer", err)
	}
	if err := client.Write(nil, 0, 1); !errors.Is(err, ErrNilBuffer) {
		t.Fatalf("Write(nil) = %v, want ErrNilBuffer", err)
	}

	buf := make([]byte, 4)
	for _, tc := range []struct{ offset, length int }{
		{-1, 2}, {0, -1}, {2, 3}, {5, 0},
	} {
		if _, err := client.Read(buf, tc.offset, tc.length); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Read(buf, %d, %d) = %v, want ErrOutOfBounds", tc.offset, tc.length, err)
		}
		if err := client.Write(buf, tc.offset, tc.length); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Write(buf, %d, %d) = %v, want ErrOutOfBounds", tc.offset, tc.length, err)
		}
	}

	// Failed validation must not leak partial bytes to the peer.
	if err := client.Write([]byte("ok"), 0, 2); err != nil {
		t.Fatalf("write: %v", err)
	}
	_ = client.ShutdownOutput()
	if got := readAll(t, server); string(got) != "ok" {
		t.Fatalf("peer received %q, want %q", got, "ok")
	}
}

func TestZeroLengthTransfers(t *testing.T) {
	client, _ := connectedPair(t)
	buf := make([]byte, 4)
	n, err := client.Read(buf, 2, 0)
	if err != nil || n != 0 {
		t.Fatalf("zero-length read = (%d, %v), want (0, nil)", n, err)
	}
	if err := client.Write(buf, 2, 0); err != nil {
		t.Fatalf("zero-length write = %v, want nil", err)
	}
}

func TestHalfCloseDirectionsAreIndependent(t *testing.T) {
	client, server := connectedPair(t)

	if err := client.Write([]byte("ping"), 0, 4); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := client.ShutdownOutput(); err != nil {
		t.Fatalf("shutdown output: %v", err)
	}
	if err := client.ShutdownOutput(); err != nil {
		t.Fatalf("second shutdown output should be a no-op, got %v", err)
	}
	if err := client.Write([]byte("x"), 0, 1); !errors.Is(err, ErrOutputShutdown) {
		t.Fatalf("write after shutdown = %v, want ErrOutputShutdown", err)
	}

	// Server drains client's half, then answers on its own still-open
	// write half.
	if got := readAll(t, server); string(got) != "ping" {
		t.Fatalf("server received %q, want %q", got, "ping")
	}
	if err := server.Write([]byte("pong"), 0, 4); err != nil {
		t.Fatalf("server write after peer half-close: %v", err)
	}
	_ = server.ShutdownOutput()

	if got := readAll(t, client); string(got) != "pong" {
		t.Fatalf("client received %q, want %q", got, "pong")
	}
	if !client.IsOutputShutdown() {
		t.Fatal("client should report output shutdown")
	}
	if client.IsInputShutdown() {
		t.Fatal("client input should still be open")
	}
}

func TestShutdownInputReportsEOF(t *testing.T) {
	client, server := connectedPair(t)

	if err := client.ShutdownInput(); err != nil {
		t.Fatalf("shutdown input: %v", err)
	}
	if err := client.ShutdownInput(); err != nil {
		t.Fatalf("second shutdown input should be a no-op, got %v", err)
	}

	buf := make([]byte, 8)
	if _, err := client.Read(buf, 0, len(buf)); !errors.Is(err, io.EOF) {
		t.Fatalf("read after input shutdown = %v, want io.EOF", err)
	}

	// The write half survives.
	if err := client.Write([]byte("still here"), 0, 10); err != nil {
		t.Fatalf("write after input shutdown: %v", err)
	}
	_ = client.ShutdownOutput()
	if got := readAll(t, server); string(got) != "still here" {
		t.Fatalf("server received %q", got)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	client, _ := connectedPair(t)
	if err := client.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("second close = %v, want nil", err)
	}
	buf := make([]byte, 4)
	if _, err := client.Read(buf, 0, len(buf)); !errors.Is(err, ErrClosed) {
		t.Fatalf("read after close = %v, want ErrClosed", err)
	}
	if err := client.Write(buf, 0, len(buf)); !errors.Is(err, ErrClosed) {
		t.Fatalf("write after close = %v, want ErrClosed", err)
	}
	if err := client.Create(); !errors.Is(err, ErrClosed) {
		t.Fatalf("create after close = %v, want ErrClosed", err)
	}
}

func TestCloseUnblocksReader(t *testing.T) {
	client, _ := connectedPair(t)

	var wg sync.WaitGroup
	wg.Add(1)
	readDone := make(chan error, 1)
	go func() {
		defer wg.Done()
		buf := make([]byte, 8)
		_, err := client.Read(buf, 0, len(buf))
		readDone <- err
	}()

	time.Sleep(50 * time.Millisecond)
	_ = client.Close()

	select {
	case err := <-readDone:
		if !errors.Is(err, io.EOF) && !errors.Is(err, ErrClosed) {
			t.Fatalf("blocked read after close = %v, want EOF or ErrClosed", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("close did not unblock the reader")
	}
	wg.Wait()
}

func TestCloseUnblocksAccept(t *testing.T) {
	ln, _ := listeningSocket(t)

	acceptDone := make(chan error, 1)
	go func() {
		_, err := ln.Accept()
		acceptDone <- err
	}()

	time.Sleep(50 * time.Millisecond)
	_ = ln.Close()

	select {
	case err := <-acceptDone:
		if !errors.Is(err, ErrClosed) {
			t.Fatalf("blocked accept after close = %v, want ErrClosed", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("close did not unblock accept")
	}
}

func TestAcceptedPeerIsIndependent(t *testing.T) {
	client, server := connectedPair(t)

	if !server.IsConnected() {
		t.Fatal("accepted socket should be connected")
	}
	if server.RemoteAddress() != client.LocalAddress() {
		t.Fatalf("peer remote %q != client local %q", server.RemoteAddress(), client.LocalAddress())
	}

	// Closing the accepted socket leaves the client usable until it
	// observes end-of-stream.
	_ = server.Close()
	buf := make([]byte, 4)
	deadline := time.Now().Add(5 * time.Second)
	for {
		_, err := client.Read(buf, 0, len(buf))
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("read = %v, want io.EOF", err)
		}
		if time.Now().After(deadline) {
			t.Fatal("client never observed end-of-stream")
		}
	}
}

func TestSocketOptions(t *testing.T) {
	client, _ := connectedPair(t)

	if _, err := client.GetOption(OptNoDelay); !errors.Is(err, ErrUnsupportedOption) {
		t.Fatalf("GetOption unset = %v, want ErrUnsupportedOption", err)
	}
	if err := client.SetOption(OptNoDelay, 1); err != nil {
		t.Fatalf("set no-delay: %v", err)
	}
	if err := client.SetOption(OptKeepAlive, 1); err != nil {
		t.Fatalf("set keep-alive: %v", err)
	}
	if err := client.SetOption(OptReceiveBuffer, 64*1024); err != nil {
		t.Fatalf("set receive buffer: %v", err)
	}
	// The traffic class is readable from the handle even before any
	// SetOption call.
	if v, err := client.GetOption(OptTrafficClass); err != nil || v != 0 {
		t.Fatalf("GetOption(OptTrafficClass) default = (%d, %v), want (0, nil)", v, err)
	}
	if err := client.SetOption(OptTrafficClass, 0x10); err != nil {
		t.Fatalf("set traffic class: %v", err)
	}
	if v, err := client.GetOption(OptTrafficClass); err != nil || v != 0x10 {
		t.Fatalf("GetOption(OptTrafficClass) = (%d, %v), want (0x10, nil)", v, err)
	}

	v, err := client.GetOption(OptNoDelay)
	if err != nil || v != 1 {
		t.Fatalf("GetOption(OptNoDelay) = (%d, %v), want (1, nil)", v, err)
	}
	if err := client.SetOption(999, 1); !errors.Is(err, ErrUnsupportedOption) {
		t.Fatalf("SetOption unknown key = %v, want ErrUnsupportedOption", err)
	}
}

func TestStateString(t *testing.T) {
	for state, want := range map[State]string{
		StateUnconnected: "unconnected",
		StateBound:       "bound",
		StateListening:   "listening",
		StateConnected:   "connected",
	} {
		if got := state.String(); got != want {
			t.Fatalf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}
