package chunk

import (
	"hash/crc32"

	"github.com/mjaworski/chunkpng/bitio"
)

// Kind enumerates the four-character type codes this package knows how to
// interpret. Unknown kinds are passed through unmodified by Interpret.
type Kind string

const (
	KindHeader     Kind = "IHDR"
	KindPalette    Kind = "PLTE"
	KindData       Kind = "IDAT"
	KindEnd        Kind = "IEND"
	KindGamma      Kind = "gAMA"
	KindChroma     Kind = "cHRM"
	KindSRGB       Kind = "sRGB"
	KindBackground Kind = "bKGD"
	KindPhysical   Kind = "pHYs"
	KindOffset     Kind = "oFFs"
	KindHistogram  Kind = "hIST"
	KindStereo     Kind = "sTER"
	KindTime       Kind = "tIME"
	KindText       Kind = "tEXt"
)

// Segment is one length-prefixed, typed, CRC-protected unit of the
// container. It is produced by Read and is immutable afterwards except
// through SetPayload, which splices in a new payload and recomputes the
// CRC.
type Segment struct {
	Length  uint32
	Type    bitio.Tag
	Payload []byte
	CRC     uint32
}

// New builds a Segment from a tag and payload, computing Length and CRC.
func New(tag bitio.Tag, payload []byte) Segment {
	return Segment{
		Length:  uint32(len(payload)),
		Type:    tag,
		Payload: payload,
		CRC:     Checksum(tag, payload),
	}
}

// IsCritical reports whether the segment's type is critical, i.e. its
// first byte is an ASCII uppercase letter.
func (s Segment) IsCritical() bool {
	return IsCriticalTag(s.Type)
}

// IsCriticalTag reports whether t's first byte is an ASCII uppercase letter.
func IsCriticalTag(t bitio.Tag) bool {
	return t[0] >= 'A' && t[0] <= 'Z'
}

// Kind returns the segment's type as a Kind, for switch-friendly dispatch.
func (s Segment) Kind() Kind {
	return Kind(s.Type.String())
}

// SetPayload replaces the segment's payload in place and recomputes CRC.
// Length is derived from the new payload's size; callers on the cipher
// path are responsible for keeping that size identical to the original,
// per the container's trailing-bytes side-channel contract (see
// container.Container.TrailingBytes).
func (s *Segment) SetPayload(payload []byte) {
	s.Payload = payload
	s.Length = uint32(len(payload))
	s.CRC = Checksum(s.Type, payload)
}

// Checksum computes the CRC-32 (IEEE polynomial, i.e. the PNG/zip
// variant — 0xEDB88320, init/xorout 0xFFFFFFFF) over tag ∥ payload. This is
// the canonical byte sequence every known chunk-stream format protects:
// hash/crc32 is the only CRC-32 implementation anywhere in this module's
// example pack's PNG-adjacent code (every reference PNG reader reaches for
// hash/crc32.NewIEEE/ChecksumIEEE rather than a third-party library), so it
// is used directly here rather than reimplemented or imported from
// elsewhere.
func Checksum(tag bitio.Tag, payload []byte) uint32 {
	h := crc32.NewIEEE()
	h.Write(tag[:])
	h.Write(payload)
	return h.Sum32()
}

// isASCIILetter reports whether b is in [A-Za-z].
func isASCIILetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
