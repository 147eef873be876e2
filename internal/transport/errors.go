package transport

import "errors"

// Argument errors are always local faults reported synchronously; they
// never touch the underlying handle. I/O errors are kept distinct from
// end-of-stream, which reads report as io.EOF.
var (
	ErrNilBuffer         = errors.New("transport: nil buffer")
	ErrOutOfBounds       = errors.New("transport: offset/length outside buffer bounds")
	ErrClosed            = errors.New("transport: socket closed")
	ErrNotConnected      = errors.New("transport: socket not connected")
	ErrAlreadyConnected  = errors.New("transport: socket already connected")
	ErrAlreadyBound      = errors.New("transport: socket already bound")
	ErrNotBound          = errors.New("transport: socket not bound")
	ErrNotListening      = errors.New("transport: socket not listening")
	ErrConnectTimeout    = errors.New("transport: connect timed out")
	ErrConnectRefused    = errors.New("transport: connection refused")
	ErrOutputShutdown    = errors.New("transport: output direction shut down")
	ErrUnsupportedOption = errors.New("transport: unsupported socket option")
	ErrStreamsInUse      = errors.New("transport: stream endpoints already created")
)
