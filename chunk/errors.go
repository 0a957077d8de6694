package chunk

import "github.com/pkg/errors"

// Sentinel error kinds, compared with errors.Is by callers. Each is wrapped
// with a stack trace (via errors.WithStack or errors.Wrap) at the point it
// is raised so the wrapping chain still satisfies errors.Is against these
// base values.
var (
	// ErrTruncated means the byte source was exhausted mid-segment or
	// mid-header.
	ErrTruncated = errors.New("chunk: truncated stream")
	// ErrBadCRC means the recomputed CRC disagrees with the stored one.
	ErrBadCRC = errors.New("chunk: CRC mismatch")
	// ErrBadType means the 4-byte type tag contains non-ASCII-letter bytes.
	ErrBadType = errors.New("chunk: invalid type bytes")
	// ErrBadPayload means an interpreter rejected the payload outright
	// (e.g. a compressed stream that does not parse).
	ErrBadPayload = errors.New("chunk: malformed payload")
	// ErrLengthTooLarge means the declared length exceeds 2^31-1.
	ErrLengthTooLarge = errors.New("chunk: length exceeds 2^31-1")
)
