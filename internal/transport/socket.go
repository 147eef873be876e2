package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/openmq/wirekit/internal/observability"
)

// State is the socket's primary lifecycle position. Input/output
// shutdown and closed are orthogonal flags, not states.
type State uint8

const (
	StateUnconnected State = iota
	StateBound
	StateListening
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateUnconnected:
		return "unconnected"
	case StateBound:
		return "bound"
	case StateListening:
		return "listening"
	case StateConnected:
		return "connected"
	default:
		return "unknown"
	}
}

// Socket is a stream-socket endpoint with explicit lifecycle control.
// Blocking operations are synchronous; a blocked Connect, Accept or
// Read is unblocked by a timeout or by a concurrent Close.
//
// Sockets are not free-threaded: one goroutine may read while another
// writes, but each direction must have a single user at a time.
type Socket struct {
	mu sync.Mutex

	state          State
	inputShutdown  bool
	outputShutdown bool
	closed         bool

	tcp      *net.TCPConn // raw handle, retained for half-close and options
	conn     net.Conn     // I/O endpoint, equals tcp unless secured
	listener *net.TCPListener
	bindAddr *net.TCPAddr

	connectCancel context.CancelFunc

	in  *InputStream
	out *OutputStream

	options map[int]int

	log zerolog.Logger
}

// NewSocket returns an unconnected socket.
func NewSocket() *Socket {
	return &Socket{
		state:   StateUnconnected,
		options: make(map[int]int),
		log:     log.Logger,
	}
}

// Create validates that the socket can still allocate a handle. The
// handle itself is allocated by Connect or Listen; calling Create more
// than once is a no-op.
func (s *Socket) Create() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	return nil
}

// Connect performs a bounded-wait active open. Refusal and timeout are
// reported as ErrConnectRefused and ErrConnectTimeout so callers can
// distinguish them from generic I/O failure. A concurrent Close
// unblocks the wait promptly.
func (s *Socket) Connect(host string, port int, timeout time.Duration) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.state == StateConnected {
		s.mu.Unlock()
		return ErrAlreadyConnected
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.connectCancel = cancel
	s.mu.Unlock()
	defer cancel()

	dialer := net.Dialer{Timeout: timeout}
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := dialer.DialContext(ctx, "tcp", addr)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.connectCancel = nil
	if err != nil {
		if s.closed {
			return ErrClosed
		}
		return classifyConnectError(addr, err)
	}
	if s.closed {
		_ = conn.Close()
		return ErrClosed
	}

	tcp := conn.(*net.TCPConn)
	s.tcp = tcp
	s.conn = tcp
	s.state = StateConnected
	observability.SocketOpened("client")
	s.log.Debug().Str("remote", tcp.RemoteAddr().String()).Msg("transport: connected")
	return nil
}

func classifyConnectError(addr string, err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %s", ErrConnectTimeout, addr)
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return fmt.Errorf("%w: %s", ErrConnectRefused, addr)
	}
	return fmt.Errorf("transport: connect %s: %w", addr, err)
}

// Bind resolves and records the local address for a passive open.
func (s *Socket) Bind(host string, port int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if s.state != StateUnconnected {
		return ErrAlreadyBound
	}
	addr, err := net.ResolveTCPAddr("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return fmt.Errorf("transport: bind: %w", err)
	}
	s.bindAddr = addr
	s.state = StateBound
	return nil
}

// Listen starts accepting on the bound address. The backlog is a hint;
// the platform queue length applies.
func (s *Socket) Listen(backlog int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if s.state != StateBound {
		return ErrNotBound
	}
	if backlog < 0 {
		return fmt.Errorf("%w: negative backlog %d", ErrOutOfBounds, backlog)
	}
	ln, err := net.ListenTCP("tcp", s.bindAddr)
	if err != nil {
		return fmt.Errorf("transport: listen: %w", err)
	}
	s.listener = ln
	s.state = StateListening
	s.log.Debug().Str("local", ln.Addr().String()).Msg("transport: listening")
	return nil
}

// Accept blocks until a peer connects and returns a new, independent
// connected socket. Closing the listening socket unblocks Accept.
func (s *Socket) Accept() (*Socket, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrClosed
	}
	if s.state != StateListening {
		s.mu.Unlock()
		return nil, ErrNotListening
	}
	ln := s.listener
	s.mu.Unlock()

	conn, err := ln.AcceptTCP()
	if err != nil {
		if s.IsClosed() {
			return nil, ErrClosed
		}
		return nil, fmt.Errorf("transport: accept: %w", err)
	}

	peer := NewSocket()
	peer.tcp = conn
	peer.conn = conn
	peer.state = StateConnected
	peer.log = s.log
	observability.SocketOpened("server")
	s.log.Debug().Str("remote", conn.RemoteAddr().String()).Msg("transport: accepted")
	return peer, nil
}

func (s *Socket) checkBuffer(buf []byte, offset, length int) error {
	if buf == nil {
		return ErrNilBuffer
	}
	if offset < 0 || length < 0 || offset+length > len(buf) {
		return fmt.Errorf("%w: offset %d length %d buffer %d", ErrOutOfBounds, offset, length, len(buf))
	}
	return nil
}

// Read transfers up to length bytes into buf starting at offset and
// returns the count actually read. End-of-stream is io.EOF, a normal
// outcome distinct from I/O failure. Bounds are validated before the
// handle is touched.
func (s *Socket) Read(buf []byte, offset, length int) (int, error) {
	if err := s.checkBuffer(buf, offset, length); err != nil {
		return 0, err
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return 0, ErrClosed
	}
	if s.state != StateConnected {
		s.mu.Unlock()
		return 0, ErrNotConnected
	}
	conn := s.conn
	s.mu.Unlock()

	if length == 0 {
		return 0, nil
	}
	n, err := conn.Read(buf[offset : offset+length])
	if n > 0 {
		observability.BytesRead(n)
	}
	if err != nil {
		if n > 0 {
			return n, nil
		}
		return 0, s.mapReadError(err)
	}
	return n, nil
}

// mapReadError keeps the end-of-stream sentinel distinct from failure.
// A close or input shutdown racing a blocked read surfaces as EOF, not
// as a hang or a raw platform error.
func (s *Socket) mapReadError(err error) error {
	if errors.Is(err, io.EOF) {
		return io.EOF
	}
	if errors.Is(err, net.ErrClosed) || s.IsClosed() || s.IsInputShutdown() {
		return io.EOF
	}
	return fmt.Errorf("transport: read: %w", err)
}

// Write sends exactly length bytes from buf starting at offset, or
// fails. Short writes from the platform are retried until the payload
// is fully on the wire; one call's payload is never interleaved with
// another's by this layer.
func (s *Socket) Write(buf []byte, offset, length int) error {
	if err := s.checkBuffer(buf, offset, length); err != nil {
		return err
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.state != StateConnected {
		s.mu.Unlock()
		return ErrNotConnected
	}
	if s.outputShutdown {
		s.mu.Unlock()
		return ErrOutputShutdown
	}
	conn := s.conn
	s.mu.Unlock()

	written := 0
	for written < length {
		n, err := conn.Write(buf[offset+written : offset+length])
		if n > 0 {
			written += n
			observability.BytesWritten(n)
		}
		if err != nil {
			if s.IsClosed() {
				return ErrClosed
			}
			return fmt.Errorf("transport: write: %w", err)
		}
	}
	return nil
}

// ShutdownInput half-closes the read direction. Idempotent and
// independent of Close; the write direction stays usable.
func (s *Socket) ShutdownInput() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if s.state != StateConnected {
		return ErrNotConnected
	}
	if s.inputShutdown {
		return nil
	}
	s.inputShutdown = true
	if err := s.tcp.CloseRead(); err != nil {
		return fmt.Errorf("transport: shutdown input: %w", err)
	}
	return nil
}

// ShutdownOutput half-closes the write direction, flushing a pending
// output stream first. Idempotent and independent of Close.
func (s *Socket) ShutdownOutput() error {
	s.mu.Lock()
	out := s.out
	s.mu.Unlock()
	if out != nil {
		_ = out.Flush()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if s.state != StateConnected {
		return ErrNotConnected
	}
	if s.outputShutdown {
		return nil
	}
	s.outputShutdown = true
	if cw, ok := s.conn.(interface{ CloseWrite() error }); ok {
		if err := cw.CloseWrite(); err != nil {
			return fmt.Errorf("transport: shutdown output: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: half-close not supported by connection", ErrUnsupportedOption)
}

// Close releases the handle unconditionally and is idempotent. Blocked
// readers observe end-of-stream; blocked Connect and Accept calls
// return promptly with an error.
func (s *Socket) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	cancel := s.connectCancel
	conn := s.conn
	ln := s.listener
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if ln != nil {
		_ = ln.Close()
	}
	if conn != nil {
		_ = conn.Close()
	}
	s.log.Debug().Msg("transport: closed")
	return nil
}

func (s *Socket) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateConnected && !s.closed
}

func (s *Socket) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Socket) IsInputShutdown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inputShutdown
}

func (s *Socket) IsOutputShutdown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outputShutdown
}

// LocalAddress returns the bound or connected local address, or the
// empty string before either.
func (s *Socket) LocalAddress() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.conn != nil:
		return s.conn.LocalAddr().String()
	case s.listener != nil:
		return s.listener.Addr().String()
	case s.bindAddr != nil:
		return s.bindAddr.String()
	default:
		return ""
	}
}

func (s *Socket) RemoteAddress() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return ""
	}
	return s.conn.RemoteAddr().String()
}
