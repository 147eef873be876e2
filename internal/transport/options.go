package transport

import (
	"fmt"

	"golang.org/x/net/ipv4"
)

// Integer socket option keys. Values pass through to the platform
// without interpretation by this layer.
const (
	OptTrafficClass = iota + 1
	OptNoDelay
	OptKeepAlive
	OptReceiveBuffer
	OptSendBuffer
	OptLinger
)

// SetOption applies an option to the connected handle and records the
// value for GetOption. Boolean options use 0 for false, non-zero for
// true.
func (s *Socket) SetOption(key, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if s.tcp == nil {
		return ErrNotConnected
	}

	var err error
	switch key {
	case OptTrafficClass:
		err = ipv4.NewConn(s.tcp).SetTOS(value)
	case OptNoDelay:
		err = s.tcp.SetNoDelay(value != 0)
	case OptKeepAlive:
		err = s.tcp.SetKeepAlive(value != 0)
	case OptReceiveBuffer:
		err = s.tcp.SetReadBuffer(value)
	case OptSendBuffer:
		err = s.tcp.SetWriteBuffer(value)
	case OptLinger:
		err = s.tcp.SetLinger(value)
	default:
		return fmt.Errorf("%w: key %d", ErrUnsupportedOption, key)
	}
	if err != nil {
		return fmt.Errorf("transport: set option %d: %w", key, err)
	}
	s.options[key] = value
	return nil
}

// GetOption reads an option back. The traffic class is queried from
// the platform, so it reflects the handle's current value whether or
// not this socket set it. The remaining options have no getter on the
// handle; they report the last value applied here, and
// ErrUnsupportedOption when never set.
func (s *Socket) GetOption(key int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrClosed
	}
	if key == OptTrafficClass {
		if s.tcp == nil {
			return 0, ErrNotConnected
		}
		tos, err := ipv4.NewConn(s.tcp).TOS()
		if err != nil {
			return 0, fmt.Errorf("transport: get option %d: %w", key, err)
		}
		return tos, nil
	}
	v, ok := s.options[key]
	if !ok {
		return 0, fmt.Errorf("%w: key %d not set", ErrUnsupportedOption, key)
	}
	return v, nil
}
