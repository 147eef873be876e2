// Package correlation matches responses read off a socket to the
// commands that requested them. The synchronization lives here, above
// the byte streams: one goroutine blocks on a future while the reader
// goroutine offers responses as they arrive.
package correlation

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/openmq/wirekit/internal/commands"
)

var (
	ErrDuplicateID = errors.New("correlation: command id already registered")
	ErrClosed      = errors.New("correlation: correlator closed")
	ErrTimeout     = errors.New("correlation: timed out awaiting response")
)

// FutureResponse is a one-shot slot for the response to a single
// command. Await blocks until the response arrives, the correlator
// closes, or the timeout elapses.
type FutureResponse struct {
	ch chan commands.Command
}

// Await blocks for the response. A timeout of zero waits forever.
func (f *FutureResponse) Await(timeout time.Duration) (commands.Command, error) {
	if timeout <= 0 {
		resp, ok := <-f.ch
		if !ok {
			return nil, ErrClosed
		}
		return resp, nil
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case resp, ok := <-f.ch:
		if !ok {
			return nil, ErrClosed
		}
		return resp, nil
	case <-timer.C:
		return nil, ErrTimeout
	}
}

// Correlator tracks in-flight commands by command ID. It is safe for
// concurrent use by one requesting goroutine per command and a single
// reader goroutine offering responses.
type Correlator struct {
	mu      sync.Mutex
	pending map[int32]*FutureResponse
	closed  bool
	nextID  int32
}

func New() *Correlator {
	return &Correlator{pending: make(map[int32]*FutureResponse)}
}

// NextCommandID hands out the next command ID for this connection.
func (c *Correlator) NextCommandID() int32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	return c.nextID
}

// Register creates the future that Offer will complete for commandID.
// Callers register before writing the command so the response cannot
// race the registration.
func (c *Correlator) Register(commandID int32) (*FutureResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClosed
	}
	if _, dup := c.pending[commandID]; dup {
		return nil, fmt.Errorf("%w: %d", ErrDuplicateID, commandID)
	}
	f := &FutureResponse{ch: make(chan commands.Command, 1)}
	c.pending[commandID] = f
	return f, nil
}

// Offer completes the future registered for the response's correlation
// ID. It reports whether a waiter was found; unmatched responses are
// the caller's to log or drop.
func (c *Correlator) Offer(resp commands.Command) bool {
	correlationID, ok := responseCorrelationID(resp)
	if !ok {
		return false
	}
	c.mu.Lock()
	f, found := c.pending[correlationID]
	if found {
		delete(c.pending, correlationID)
	}
	c.mu.Unlock()
	if !found {
		return false
	}
	f.ch <- resp
	close(f.ch)
	return true
}

func responseCorrelationID(resp commands.Command) (int32, bool) {
	switch r := resp.(type) {
	case *commands.Response:
		return r.CorrelationID, true
	case *commands.ExceptionResponse:
		return r.CorrelationID, true
	default:
		return 0, false
	}
}

// Close fails every outstanding waiter with ErrClosed. Subsequent
// Register calls fail; Offer becomes a no-op.
func (c *Correlator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	for id, f := range c.pending {
		delete(c.pending, id)
		close(f.ch)
	}
}
