package marshal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openmq/wirekit/internal/commands"
)

func v1(t *testing.T) *Registry {
	t.Helper()
	reg, err := ForVersion(Version1)
	require.NoError(t, err)
	return reg
}

// sampleCommands exercises every type with populated, nested, and
// zero-value shapes.
func sampleCommands() []commands.DataStructure {
	wfi := commands.NewWireFormatInfo()
	wfi.CommandID = 1
	wfi.Magic = Magic()
	wfi.Version = 1
	wfi.MaxInactivityDuration = 30000

	conn := commands.NewConnectionInfo()
	conn.CommandID = 2
	conn.ResponseRequired = true
	conn.ConnectionID = &commands.ConnectionID{Value: "conn-1"}
	conn.ClientID = "client-1"
	conn.UserName = "user"
	conn.Password = "secret"
	conn.BrokerPath = []*commands.BrokerID{{Value: "broker-a"}, {Value: "broker-b"}}

	sess := commands.NewSessionInfo()
	sess.CommandID = 3
	sess.SessionID = &commands.SessionID{ConnectionID: "conn-1", Value: 1}

	remove := commands.NewRemoveInfo()
	remove.CommandID = 4
	remove.ObjectID = &commands.SessionID{ConnectionID: "conn-1", Value: 1}

	msg := commands.NewMessage()
	msg.CommandID = 5
	msg.MessageID = &commands.MessageID{
		ProducerID:         &commands.ProducerID{ConnectionID: "conn-1", SessionID: 1, Value: 2},
		ProducerSequenceID: 17,
		BrokerSequenceID:   4,
	}
	msg.Destination = "queue.orders"
	msg.CorrelationID = "corr-9"
	msg.Persistent = true
	msg.Timestamp = 1700000000000
	msg.Content = []byte("payload bytes")

	ack := commands.NewMessageAck()
	ack.CommandID = 6
	ack.FirstMessageID = msg.MessageID.Clone().(*commands.MessageID)
	ack.LastMessageID = msg.MessageID.Clone().(*commands.MessageID)
	ack.AckType = 2
	ack.MessageCount = 3

	resp := commands.NewResponse()
	resp.CommandID = 7
	resp.CorrelationID = 2

	ex := commands.NewExceptionResponse()
	ex.CommandID = 8
	ex.CorrelationID = 5
	ex.ExceptionClass = "SecurityException"
	ex.ExceptionMessage = "bad credentials"

	return []commands.DataStructure{
		wfi,
		conn,
		sess,
		commands.NewKeepAliveInfo(),
		commands.NewShutdownInfo(),
		remove,
		ack,
		msg,
		resp,
		ex,
		msg.MessageID,
		conn.ConnectionID,
		sess.SessionID,
		msg.MessageID.ProducerID,
		&commands.BrokerID{Value: "broker-a"},
	}
}

func TestRoundTripAllTypes(t *testing.T) {
	reg := v1(t)
	for _, orig := range sampleCommands() {
		encoded, err := reg.MarshalBytes(orig)
		require.NoError(t, err, "%T", orig)
		require.Equal(t, orig.Opcode(), encoded[0], "%T: record must open with its opcode", orig)

		decoded, err := reg.UnmarshalBytes(encoded)
		require.NoError(t, err, "%T", orig)
		require.True(t, orig.Equals(decoded), "%T: decode(encode(x)) != x\norig: %s\ngot:  %s", orig, orig, decoded)

		// Re-encoding the decoded value must reproduce the bytes.
		again, err := reg.MarshalBytes(decoded)
		require.NoError(t, err, "%T", orig)
		require.Equal(t, encoded, again, "%T: encode(decode(encode(x))) differs", orig)
	}
}

func TestRoundTripZeroValues(t *testing.T) {
	reg := v1(t)
	for _, orig := range []commands.DataStructure{
		commands.NewWireFormatInfo(),
		commands.NewConnectionInfo(),
		commands.NewSessionInfo(),
		commands.NewRemoveInfo(),
		commands.NewMessage(),
		commands.NewMessageAck(),
		commands.NewMessageID(),
	} {
		encoded, err := reg.MarshalBytes(orig)
		require.NoError(t, err, "%T", orig)
		decoded, err := reg.UnmarshalBytes(encoded)
		require.NoError(t, err, "%T", orig)
		require.True(t, orig.Equals(decoded), "%T: zero value did not survive", orig)
	}
}

func TestConnectionInfoWireShape(t *testing.T) {
	reg := v1(t)

	conn := commands.NewConnectionInfo()
	conn.ResponseRequired = true
	conn.ClientID = "abc"

	encoded, err := reg.MarshalBytes(conn)
	require.NoError(t, err)

	// opcode, CommandID int32, ResponseRequired bool, nil ConnectionID
	// tag, then ClientID with its uint16 length prefix.
	require.Equal(t, byte(3), encoded[0])
	require.Equal(t, []byte{0, 0, 0, 0}, encoded[1:5], "CommandID")
	require.Equal(t, byte(1), encoded[5], "ResponseRequired")
	require.Equal(t, byte(0), encoded[6], "absent ConnectionID tag")
	require.Equal(t, []byte{0, 3, 'a', 'b', 'c'}, encoded[7:12], "ClientID")

	decoded, err := reg.UnmarshalBytes(encoded)
	require.NoError(t, err)
	got, ok := decoded.(*commands.ConnectionInfo)
	require.True(t, ok, "decoded %T", decoded)
	require.True(t, got.ResponseRequired)
	require.Equal(t, "abc", got.ClientID)
	require.Nil(t, got.ConnectionID)
}

func TestStreamingDecodeSequential(t *testing.T) {
	reg := v1(t)

	var stream bytes.Buffer
	first := commands.NewKeepAliveInfo()
	first.CommandID = 11
	second := commands.NewShutdownInfo()
	second.CommandID = 12
	require.NoError(t, reg.Marshal(&stream, first))
	require.NoError(t, reg.Marshal(&stream, second))

	got1, err := reg.Unmarshal(&stream)
	require.NoError(t, err)
	require.True(t, first.Equals(got1))

	got2, err := reg.Unmarshal(&stream)
	require.NoError(t, err)
	require.True(t, second.Equals(got2))

	_, err = reg.Unmarshal(&stream)
	require.ErrorIs(t, err, ErrIncomplete, "drained stream reports incomplete")
}

func TestUnknownOpcode(t *testing.T) {
	reg := v1(t)
	_, err := reg.UnmarshalBytes([]byte{0xEE, 0, 0, 0, 0})
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestUnsupportedVersion(t *testing.T) {
	_, err := ForVersion(99)
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestTruncatedStreamIsIncomplete(t *testing.T) {
	reg := v1(t)

	msg := commands.NewMessage()
	msg.Destination = "queue.orders"
	msg.Content = []byte("payload")
	encoded, err := reg.MarshalBytes(msg)
	require.NoError(t, err)

	for _, cut := range []int{1, 5, len(encoded) / 2, len(encoded) - 1} {
		_, err := reg.Unmarshal(bytes.NewReader(encoded[:cut]))
		require.ErrorIs(t, err, ErrIncomplete, "cut at %d", cut)
	}
}

func TestBoundedOverrunIsViolation(t *testing.T) {
	reg := v1(t)

	// BrokerID record whose string length prefix declares 10 bytes with
	// only 4 present. With the full buffer in hand this is corruption,
	// not a short read.
	record := []byte{commands.OpcodeBrokerID, 0, 10, 'a', 'b', 'c', 'd'}
	_, err := reg.UnmarshalBytes(record)
	require.ErrorIs(t, err, ErrProtocolViolation)
}

func TestInvalidBoolByte(t *testing.T) {
	reg := v1(t)

	// KeepAliveInfo: opcode, CommandID, then a bool byte that is
	// neither 0 nor 1.
	record := []byte{commands.OpcodeKeepAliveInfo, 0, 0, 0, 1, 0x02}
	_, err := reg.UnmarshalBytes(record)
	require.ErrorIs(t, err, ErrProtocolViolation)
}

func TestInvalidNestedTag(t *testing.T) {
	reg := v1(t)

	// SessionInfo: opcode, CommandID, ResponseRequired, then a presence
	// tag outside {0, 1}.
	record := []byte{commands.OpcodeSessionInfo, 0, 0, 0, 1, 0, 0x07}
	_, err := reg.UnmarshalBytes(record)
	require.ErrorIs(t, err, ErrProtocolViolation)
}

func TestNestedRecordWrongType(t *testing.T) {
	reg := v1(t)

	// A SessionInfo whose nested record carries a BrokerID opcode where
	// a SessionID is required.
	var buf bytes.Buffer
	e := &Encoder{w: &buf, reg: reg}
	require.NoError(t, e.WriteUint8(commands.OpcodeSessionInfo))
	require.NoError(t, e.WriteInt32(0))
	require.NoError(t, e.WriteBool(false))
	require.NoError(t, e.WriteNested(&commands.BrokerID{Value: "broker-a"}))

	_, err := reg.UnmarshalBytes(buf.Bytes())
	require.ErrorIs(t, err, ErrProtocolViolation)
}

func TestDecodeLimits(t *testing.T) {
	reg := v1(t)
	tight := reg.WithLimits(Limits{MaxBytesLen: 8, MaxSequenceLen: 1})

	msg := commands.NewMessage()
	msg.Content = bytes.Repeat([]byte{0xAB}, 64)
	encoded, err := reg.MarshalBytes(msg)
	require.NoError(t, err)
	_, err = tight.UnmarshalBytes(encoded)
	require.ErrorIs(t, err, ErrProtocolViolation, "oversized byte payload")

	conn := commands.NewConnectionInfo()
	conn.BrokerPath = []*commands.BrokerID{{Value: "a"}, {Value: "b"}}
	encoded, err = reg.MarshalBytes(conn)
	require.NoError(t, err)
	_, err = tight.UnmarshalBytes(encoded)
	require.ErrorIs(t, err, ErrProtocolViolation, "oversized sequence")

	// The permissive registry still accepts both.
	_, err = reg.UnmarshalBytes(encoded)
	require.NoError(t, err)
}

func TestEncodeRejectsOversizedValues(t *testing.T) {
	reg := v1(t)

	msg := commands.NewMessage()
	msg.Destination = string(bytes.Repeat([]byte{'x'}, 1<<16))
	_, err := reg.MarshalBytes(msg)
	require.ErrorIs(t, err, ErrValueTooLarge)
}

func TestRegistryRejectsDuplicateOpcode(t *testing.T) {
	_, err := newRegistry(Version1, keepAliveInfoMarshalerV1{}, keepAliveInfoMarshalerV1{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "KeepAliveInfo")
}

func TestOpcodesMatchCommandSet(t *testing.T) {
	reg := v1(t)
	got := reg.Opcodes()
	require.Len(t, got, 15)
	seen := make(map[uint8]bool, len(got))
	for _, op := range got {
		require.False(t, seen[op], "opcode %d listed twice", op)
		seen[op] = true
	}
	for _, op := range []uint8{1, 3, 4, 10, 11, 12, 22, 23, 30, 31, 110, 120, 121, 123, 124} {
		require.True(t, seen[op], "opcode %d missing from registry", op)
	}
}

func TestMarshalUnregisteredType(t *testing.T) {
	empty, err := newRegistry(Version1)
	require.NoError(t, err)
	_, err = empty.MarshalBytes(commands.NewKeepAliveInfo())
	require.ErrorIs(t, err, ErrUnsupportedType)
}
