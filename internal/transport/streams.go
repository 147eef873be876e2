package transport

import (
	"bufio"
	"errors"
	"io"
	"net"

	"github.com/openmq/wirekit/internal/observability"
)

// InputStream is the socket's byte-stream read endpoint. Exactly one
// is created per socket, lazily, and cached for the socket's lifetime.
type InputStream struct {
	s *Socket
	r *bufio.Reader
}

// OutputStream is the socket's byte-stream write endpoint, buffered;
// call Flush to push a framed record onto the wire.
type OutputStream struct {
	s *Socket
	w *bufio.Writer
}

// InputStream returns the cached read endpoint, creating it on first
// use.
func (s *Socket) InputStream() (*InputStream, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	if s.state != StateConnected {
		return nil, ErrNotConnected
	}
	if s.in == nil {
		s.in = &InputStream{s: s, r: bufio.NewReader(s.conn)}
	}
	return s.in, nil
}

// OutputStream returns the cached write endpoint, creating it on first
// use.
func (s *Socket) OutputStream() (*OutputStream, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	if s.state != StateConnected {
		return nil, ErrNotConnected
	}
	if s.out == nil {
		s.out = &OutputStream{s: s, w: bufio.NewWriter(s.conn)}
	}
	return s.out, nil
}

func (in *InputStream) Read(p []byte) (int, error) {
	if in.s.IsClosed() {
		return 0, io.EOF
	}
	n, err := in.r.Read(p)
	if n > 0 {
		observability.BytesRead(n)
	}
	if err != nil {
		if errors.Is(err, net.ErrClosed) || in.s.IsClosed() {
			return n, io.EOF
		}
		return n, err
	}
	return n, nil
}

// Available reports bytes readable without blocking.
func (in *InputStream) Available() int {
	return in.r.Buffered()
}

// Close closes the owning socket; the stream cannot be recreated.
func (in *InputStream) Close() error {
	return in.s.Close()
}

func (out *OutputStream) Write(p []byte) (int, error) {
	if out.s.IsClosed() {
		return 0, ErrClosed
	}
	if out.s.IsOutputShutdown() {
		return 0, ErrOutputShutdown
	}
	n, err := out.w.Write(p)
	if n > 0 {
		observability.BytesWritten(n)
	}
	return n, err
}

func (out *OutputStream) Flush() error {
	if out.s.IsClosed() {
		return ErrClosed
	}
	return out.w.Flush()
}

// Close flushes pending output and closes the owning socket.
func (out *OutputStream) Close() error {
	_ = out.w.Flush()
	return out.s.Close()
}
