package commands

import "errors"

var (
	ErrTypeMismatch = errors.New("commands: data structure type mismatch")
	ErrNilSource    = errors.New("commands: nil copy source")
)

// DataStructure is implemented by every wire type in the protocol,
// commands and identifier structures alike. Implementations are plain
// data carriers; they perform no locking, so concurrent access must be
// synchronized by the caller.
type DataStructure interface {
	// Opcode returns the wire type tag shared with this type's marshaler.
	Opcode() uint8

	// Clone returns a deep copy that shares no mutable state with the
	// receiver. Mutating or releasing the copy never affects the original.
	Clone() DataStructure

	// CopyFrom deep-overwrites the receiver from src. It fails with
	// ErrTypeMismatch when src reports a different opcode; on failure the
	// receiver is left unmodified.
	CopyFrom(src DataStructure) error

	// Equals reports structural deep equality: same opcode and all
	// properties equal, nested structures compared via their own Equals.
	Equals(other DataStructure) bool

	String() string
}

// Command is a DataStructure that participates in the command/response
// exchange with the broker.
type Command interface {
	DataStructure

	GetCommandID() int32
	SetCommandID(id int32)
	IsResponseRequired() bool
	SetResponseRequired(required bool)
}

// BaseCommand carries the bookkeeping shared by every command type.
// Both fields are wire properties and precede the per-type properties
// in the encoded record.
type BaseCommand struct {
	CommandID        int32
	ResponseRequired bool
}

func (b *BaseCommand) GetCommandID() int32          { return b.CommandID }
func (b *BaseCommand) SetCommandID(id int32)        { b.CommandID = id }
func (b *BaseCommand) IsResponseRequired() bool     { return b.ResponseRequired }
func (b *BaseCommand) SetResponseRequired(req bool) { b.ResponseRequired = req }

func (b *BaseCommand) copyBase(src *BaseCommand) {
	b.CommandID = src.CommandID
	b.ResponseRequired = src.ResponseRequired
}

func (b *BaseCommand) equalsBase(other *BaseCommand) bool {
	return b.CommandID == other.CommandID && b.ResponseRequired == other.ResponseRequired
}
