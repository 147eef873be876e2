package marshal

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/openmq/wirekit/internal/commands"
)

// Magic is the 8-byte preamble carried in WireFormatInfo. A peer that
// opens with anything else is not speaking this protocol.
func Magic() []byte {
	return []byte("WireKit1")
}

// Limits constrains decode memory use. Strings carry a uint16 length
// prefix and are bounded by the wire format itself.
type Limits struct {
	MaxBytesLen    uint32
	MaxSequenceLen uint16
}

func DefaultLimits() Limits {
	return Limits{
		MaxBytesLen:    8 * 1024 * 1024,
		MaxSequenceLen: 1024,
	}
}

// Encoder writes primitive wire values in big-endian order. Nested
// records dispatch through the registry the encoder was created with.
type Encoder struct {
	w   io.Writer
	reg *Registry
}

func (e *Encoder) WriteUint8(v uint8) error {
	_, err := e.w.Write([]byte{v})
	return err
}

func (e *Encoder) WriteBool(v bool) error {
	b := byte(0)
	if v {
		b = 1
	}
	return e.WriteUint8(b)
}

func (e *Encoder) WriteInt8(v int8) error {
	return e.WriteUint8(uint8(v))
}

func (e *Encoder) WriteInt16(v int16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(v))
	_, err := e.w.Write(buf[:])
	return err
}

func (e *Encoder) WriteInt32(v int32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v))
	_, err := e.w.Write(buf[:])
	return err
}

func (e *Encoder) WriteInt64(v int64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	_, err := e.w.Write(buf[:])
	return err
}

func (e *Encoder) WriteString(s string) error {
	if len(s) > math.MaxUint16 {
		return fmt.Errorf("%w: string length %d", ErrValueTooLarge, len(s))
	}
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(len(s)))
	if _, err := e.w.Write(buf[:]); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	_, err := io.WriteString(e.w, s)
	return err
}

func (e *Encoder) WriteBytes(b []byte) error {
	if uint64(len(b)) > uint64(math.MaxUint32) {
		return fmt.Errorf("%w: byte sequence length %d", ErrValueTooLarge, len(b))
	}
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(len(b)))
	if _, err := e.w.Write(buf[:]); err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}
	_, err := e.w.Write(b)
	return err
}

// WriteNil writes the null tag for an absent nested structure.
func (e *Encoder) WriteNil() error {
	return e.WriteUint8(0)
}

// WriteNested writes a present nested structure: a presence tag
// followed by the structure's own opcode-tagged record.
func (e *Encoder) WriteNested(ds commands.DataStructure) error {
	if err := e.WriteUint8(1); err != nil {
		return err
	}
	return e.reg.encodeRecord(e, ds)
}

func (e *Encoder) WriteSequenceLen(n int) error {
	if n > math.MaxUint16 {
		return fmt.Errorf("%w: sequence length %d", ErrValueTooLarge, n)
	}
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(n))
	_, err := e.w.Write(buf[:])
	return err
}

// Decoder reads primitive wire values. When the total record size is
// known up front (decoding from a buffer), a length prefix declaring
// more bytes than remain is a protocol violation; running out of bytes
// under a streaming reader is an incomplete record instead.
type Decoder struct {
	r         io.Reader
	reg       *Registry
	limits    Limits
	remaining int // -1 when the total size is unknown
}

func (d *Decoder) readFull(buf []byte) error {
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return ErrIncomplete
	}
	if d.remaining >= 0 {
		d.remaining -= len(buf)
	}
	return nil
}

// checkDeclared validates a decoded length prefix before the payload
// read it governs.
func (d *Decoder) checkDeclared(n uint32, max uint32) error {
	if n > max {
		return fmt.Errorf("%w: declared length %d exceeds limit %d", ErrProtocolViolation, n, max)
	}
	if d.remaining >= 0 && int(n) > d.remaining {
		return fmt.Errorf("%w: declared length %d exceeds remaining %d bytes", ErrProtocolViolation, n, d.remaining)
	}
	return nil
}

func (d *Decoder) ReadUint8() (uint8, error) {
	var buf [1]byte
	if err := d.readFull(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (d *Decoder) ReadBool() (bool, error) {
	b, err := d.ReadUint8()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: invalid bool byte 0x%02x", ErrProtocolViolation, b)
	}
}

func (d *Decoder) ReadInt8() (int8, error) {
	b, err := d.ReadUint8()
	return int8(b), err
}

func (d *Decoder) ReadInt16() (int16, error) {
	var buf [2]byte
	if err := d.readFull(buf[:]); err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(buf[:])), nil
}

func (d *Decoder) ReadInt32() (int32, error) {
	var buf [4]byte
	if err := d.readFull(buf[:]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(buf[:])), nil
}

func (d *Decoder) ReadInt64() (int64, error) {
	var buf [8]byte
	if err := d.readFull(buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}

func (d *Decoder) ReadString() (string, error) {
	var buf [2]byte
	if err := d.readFull(buf[:]); err != nil {
		return "", err
	}
	n := uint32(binary.BigEndian.Uint16(buf[:]))
	if n == 0 {
		return "", nil
	}
	if err := d.checkDeclared(n, math.MaxUint16); err != nil {
		return "", err
	}
	payload := make([]byte, n)
	if err := d.readFull(payload); err != nil {
		return "", err
	}
	return string(payload), nil
}

func (d *Decoder) ReadBytes() ([]byte, error) {
	var buf [4]byte
	if err := d.readFull(buf[:]); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(buf[:])
	if n == 0 {
		return nil, nil
	}
	if err := d.checkDeclared(n, d.limits.MaxBytesLen); err != nil {
		return nil, err
	}
	payload := make([]byte, n)
	if err := d.readFull(payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// ReadNested reads a presence tag and, when set, the nested
// opcode-tagged record. Absent structures decode to nil.
func (d *Decoder) ReadNested() (commands.DataStructure, error) {
	tag, err := d.ReadUint8()
	if err != nil {
		return nil, err
	}
	switch tag {
	case 0:
		return nil, nil
	case 1:
		return d.decodeRecord()
	default:
		return nil, fmt.Errorf("%w: invalid nested tag 0x%02x", ErrProtocolViolation, tag)
	}
}

func (d *Decoder) ReadSequenceLen() (int, error) {
	var buf [2]byte
	if err := d.readFull(buf[:]); err != nil {
		return 0, err
	}
	n := binary.BigEndian.Uint16(buf[:])
	if n > d.limits.MaxSequenceLen {
		return 0, fmt.Errorf("%w: declared sequence length %d exceeds limit %d", ErrProtocolViolation, n, d.limits.MaxSequenceLen)
	}
	return int(n), nil
}
