package marshal

import "errors"

// Decode failures fall into three buckets. ErrIncomplete means the
// record ran out of bytes and the caller should supply more; it is not
// a corruption signal. ErrProtocolViolation and ErrUnsupportedType are
// connection-fatal: the transport carrying the record must be torn down.
var (
	ErrIncomplete         = errors.New("marshal: incomplete record")
	ErrProtocolViolation  = errors.New("marshal: protocol violation")
	ErrUnsupportedType    = errors.New("marshal: unsupported data structure type")
	ErrUnsupportedVersion = errors.New("marshal: unsupported wire format version")
	ErrValueTooLarge      = errors.New("marshal: value exceeds wire limits")
)

// failureClass buckets a decode error for the metrics label.
func failureClass(err error) string {
	switch {
	case errors.Is(err, ErrIncomplete):
		return "incomplete"
	case errors.Is(err, ErrUnsupportedType):
		return "unsupported_type"
	case errors.Is(err, ErrProtocolViolation):
		return "protocol_violation"
	default:
		return "other"
	}
}

