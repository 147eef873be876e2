package marshal

import (
	"bytes"
	"fmt"
	"io"

	"github.com/openmq/wirekit/internal/commands"
	"github.com/openmq/wirekit/internal/observability"
)

// Version1 is the initial wire format revision.
const Version1 uint32 = 1

// Marshaler is the encode/decode pair for one command type within one
// wire format version. EncodeFields and DecodeFields cover the
// properties only; the opcode tag is the registry's concern.
type Marshaler interface {
	Opcode() uint8
	Name() string
	EncodeFields(e *Encoder, ds commands.DataStructure) error
	DecodeFields(d *Decoder) (commands.DataStructure, error)
}

// Registry is the marshaler table for one wire format version.
// Registries are stateless after construction and safe for concurrent
// use.
type Registry struct {
	version  uint32
	limits   Limits
	byOpcode map[uint8]Marshaler
}

func newRegistry(version uint32, marshalers ...Marshaler) (*Registry, error) {
	byOpcode := make(map[uint8]Marshaler, len(marshalers))
	for _, m := range marshalers {
		if prev, dup := byOpcode[m.Opcode()]; dup {
			return nil, fmt.Errorf("marshal: opcode %d assigned to both %s and %s", m.Opcode(), prev.Name(), m.Name())
		}
		byOpcode[m.Opcode()] = m
	}
	return &Registry{
		version:  version,
		limits:   DefaultLimits(),
		byOpcode: byOpcode,
	}, nil
}

// ForVersion returns the marshaler table for a protocol revision.
func ForVersion(version uint32) (*Registry, error) {
	switch version {
	case Version1:
		return newV1Registry()
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
}

func (r *Registry) Version() uint32 { return r.version }

// WithLimits returns a copy of the registry using the given decode
// limits.
func (r *Registry) WithLimits(limits Limits) *Registry {
	clone := *r
	clone.limits = limits
	return &clone
}

// Opcodes returns the opcodes the registry can marshal, for
// introspection and tests.
func (r *Registry) Opcodes() []uint8 {
	out := make([]uint8, 0, len(r.byOpcode))
	for op := range r.byOpcode {
		out = append(out, op)
	}
	return out
}

func (r *Registry) encodeRecord(e *Encoder, ds commands.DataStructure) error {
	m, ok := r.byOpcode[ds.Opcode()]
	if !ok {
		return fmt.Errorf("%w: opcode %d", ErrUnsupportedType, ds.Opcode())
	}
	if err := e.WriteUint8(m.Opcode()); err != nil {
		return err
	}
	return m.EncodeFields(e, ds)
}

// Marshal writes ds to w as one self-describing record: the opcode
// byte followed by the properties in schema order.
func (r *Registry) Marshal(w io.Writer, ds commands.DataStructure) error {
	e := &Encoder{w: w, reg: r}
	if err := r.encodeRecord(e, ds); err != nil {
		return err
	}
	if m, ok := r.byOpcode[ds.Opcode()]; ok {
		observability.CommandEncoded(m.Name())
	}
	return nil
}

// MarshalBytes encodes ds into a fresh buffer.
func (r *Registry) MarshalBytes(ds commands.DataStructure) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Marshal(&buf, ds); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal reads one record from a streaming reader. Running out of
// bytes mid-record reports ErrIncomplete: the caller should supply
// more input rather than treat the connection as corrupt.
func (r *Registry) Unmarshal(rd io.Reader) (commands.DataStructure, error) {
	d := &Decoder{r: rd, reg: r, limits: r.limits, remaining: -1}
	return r.finishDecode(d)
}

// UnmarshalBytes decodes one record from a complete buffer. A length
// prefix declaring more bytes than remain in the buffer is a protocol
// violation.
func (r *Registry) UnmarshalBytes(b []byte) (commands.DataStructure, error) {
	d := &Decoder{r: bytes.NewReader(b), reg: r, limits: r.limits, remaining: len(b)}
	return r.finishDecode(d)
}

func (r *Registry) finishDecode(d *Decoder) (commands.DataStructure, error) {
	ds, err := d.decodeRecord()
	if err != nil {
		observability.DecodeFailed(failureClass(err))
		return nil, err
	}
	if m, ok := r.byOpcode[ds.Opcode()]; ok {
		observability.CommandDecoded(m.Name())
	}
	return ds, nil
}

func (d *Decoder) decodeRecord() (commands.DataStructure, error) {
	opcode, err := d.ReadUint8()
	if err != nil {
		return nil, err
	}
	m, ok := d.reg.byOpcode[opcode]
	if !ok {
		return nil, fmt.Errorf("%w: opcode %d", ErrUnsupportedType, opcode)
	}
	return m.DecodeFields(d)
}
