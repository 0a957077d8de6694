package chunk

import (
	"io"

	"github.com/pkg/errors"

	"github.com/mjaworski/chunkpng/bitio"
)

const maxLength = 1<<31 - 1

// Read reads exactly one framed segment from r: a 4-byte big-endian length,
// a 4-byte type tag, length payload bytes, and a 4-byte big-endian CRC.
//
// It returns ErrTruncated if r is exhausted before a full segment is read,
// ErrBadType if the type tag contains a non-ASCII-letter byte, and
// ErrBadCRC if the recomputed checksum disagrees with the stored one. No
// partial segment is ever returned alongside an error.
func Read(r io.Reader) (Segment, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return Segment{}, errors.Wrap(ErrTruncated, "reading length")
	}
	length := bitio.Uint32(lenBuf[:])
	if length > maxLength {
		return Segment{}, errors.WithStack(ErrLengthTooLarge)
	}

	var typeBuf [4]byte
	if _, err := io.ReadFull(r, typeBuf[:]); err != nil {
		return Segment{}, errors.Wrap(ErrTruncated, "reading type")
	}
	tag := bitio.Tag(typeBuf)
	for _, c := range tag {
		if !isASCIILetter(c) {
			return Segment{}, errors.Wrapf(ErrBadType, "tag %q", tag.String())
		}
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return Segment{}, errors.Wrap(ErrTruncated, "reading payload")
	}

	var crcBuf [4]byte
	if _, err := io.ReadFull(r, crcBuf[:]); err != nil {
		return Segment{}, errors.Wrap(ErrTruncated, "reading crc")
	}
	crc := bitio.Uint32(crcBuf[:])

	want := Checksum(tag, payload)
	if crc != want {
		return Segment{}, errors.Wrapf(ErrBadCRC, "tag %q: stored %08x, computed %08x", tag.String(), crc, want)
	}

	return Segment{Length: length, Type: tag, Payload: payload, CRC: crc}, nil
}

// Write emits a segment's length, type, payload, and CRC, in that order,
// big-endian where applicable. It writes the segment's stored CRC
// verbatim — callers that mutate a payload must go through
// Segment.SetPayload first so the CRC stays consistent with the bytes on
// the wire.
func Write(w io.Writer, seg Segment) error {
	var lenBuf [4]byte
	bitio.Order.PutUint32(lenBuf[:], seg.Length)
	if _, err := w.Write(lenBuf[:]); err != nil {
		return errors.Wrap(err, "writing length")
	}
	if _, err := w.Write(seg.Type[:]); err != nil {
		return errors.Wrap(err, "writing type")
	}
	if _, err := w.Write(seg.Payload); err != nil {
		return errors.Wrap(err, "writing payload")
	}
	var crcBuf [4]byte
	bitio.Order.PutUint32(crcBuf[:], seg.CRC)
	if _, err := w.Write(crcBuf[:]); err != nil {
		return errors.Wrap(err, "writing crc")
	}
	return nil
}

// IsCritical reports whether seg's type is critical (required on write).
func IsCritical(seg Segment) bool {
	return seg.IsCritical()
}
