package container

import "github.com/pkg/errors"

// ErrBadMagic means the 8-byte signature prefix did not match.
var ErrBadMagic = errors.New("container: bad magic signature")

// ErrNoTerminator means the chunk stream ended without a terminator
// segment ever being read.
var ErrNoTerminator = errors.New("container: stream ended before terminator")

// ErrCRCRefreshRequired means Write was asked to emit a segment whose
// stored CRC does not match its payload — the caller mutated Payload
// without going through Segment.SetPayload.
var ErrCRCRefreshRequired = errors.New("container: payload mutated without CRC refresh")
