package commands

import "fmt"

// Visitor handles received commands, one method per visitable type.
// Each method may return at most one response command; a nil response
// means no reply is owed.
type Visitor interface {
	ProcessWireFormatInfo(info *WireFormatInfo) (Command, error)
	ProcessConnectionInfo(info *ConnectionInfo) (Command, error)
	ProcessSessionInfo(info *SessionInfo) (Command, error)
	ProcessRemoveInfo(info *RemoveInfo) (Command, error)
	ProcessKeepAliveInfo(info *KeepAliveInfo) (Command, error)
	ProcessShutdownInfo(info *ShutdownInfo) (Command, error)
	ProcessMessage(msg *Message) (Command, error)
	ProcessMessageAck(ack *MessageAck) (Command, error)
	ProcessResponse(resp *Response) (Command, error)
	ProcessExceptionResponse(resp *ExceptionResponse) (Command, error)
}

// Dispatch routes cmd to the visitor method for its concrete type.
// The command set is closed, so an unknown concrete type is a caller
// bug, not a wire condition.
func Dispatch(v Visitor, cmd Command) (Command, error) {
	switch c := cmd.(type) {
	case *WireFormatInfo:
		return v.ProcessWireFormatInfo(c)
	case *ConnectionInfo:
		return v.ProcessConnectionInfo(c)
	case *SessionInfo:
		return v.ProcessSessionInfo(c)
	case *RemoveInfo:
		return v.ProcessRemoveInfo(c)
	case *KeepAliveInfo:
		return v.ProcessKeepAliveInfo(c)
	case *ShutdownInfo:
		return v.ProcessShutdownInfo(c)
	case *Message:
		return v.ProcessMessage(c)
	case *MessageAck:
		return v.ProcessMessageAck(c)
	case *Response:
		return v.ProcessResponse(c)
	case *ExceptionResponse:
		return v.ProcessExceptionResponse(c)
	default:
		return nil, fmt.Errorf("commands: no visitor handler for opcode %d (%T)", cmd.Opcode(), cmd)
	}
}

// NoOpVisitor implements Visitor with handlers that do nothing and owe
// no response. Embed it to handle a subset of the command set.
type NoOpVisitor struct{}

func (NoOpVisitor) ProcessWireFormatInfo(*WireFormatInfo) (Command, error) { return nil, nil }
func (NoOpVisitor) ProcessConnectionInfo(*ConnectionInfo) (Command, error) { return nil, nil }
func (NoOpVisitor) ProcessSessionInfo(*SessionInfo) (Command, error)       { return nil, nil }
func (NoOpVisitor) ProcessRemoveInfo(*RemoveInfo) (Command, error)         { return nil, nil }
func (NoOpVisitor) ProcessKeepAliveInfo(*KeepAliveInfo) (Command, error)   { return nil, nil }
func (NoOpVisitor) ProcessShutdownInfo(*ShutdownInfo) (Command, error)     { return nil, nil }
func (NoOpVisitor) ProcessMessage(*Message) (Command, error)               { return nil, nil }
func (NoOpVisitor) ProcessMessageAck(*MessageAck) (Command, error)         { return nil, nil }
func (NoOpVisitor) ProcessResponse(*Response) (Command, error)             { return nil, nil }
func (NoOpVisitor) ProcessExceptionResponse(*ExceptionResponse) (Command, error) {
	return nil, nil
}
