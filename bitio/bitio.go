// Package bitio holds the small big-endian packing helpers shared by the
// chunk codec and interpreters and the raster writer. The wire format
// is big-endian throughout, per the PNG-style chunk stream it mirrors.
package bitio

import "encoding/binary"

// Order is the byte order used by every multi-byte field in the container
// format: length, CRC, and every interpreted numeric attribute.
var Order binary.ByteOrder = binary.BigEndian

// Tag is a 4-byte ASCII type code, used verbatim as a chunk's "type"
// field.
type Tag [4]byte

// TagFromString builds a Tag from a 4-character string. Panics if s is not
// exactly 4 bytes; callers only ever pass compile-time literals.
func TagFromString(s string) Tag {
	if len(s) != 4 {
		panic("bitio: tag must be exactly 4 bytes: " + s)
	}
	var t Tag
	copy(t[:], s)
	return t
}

// String returns the tag's 4 ASCII characters.
func (t Tag) String() string {
	return string(t[:])
}

// PutUint32 appends the big-endian encoding of v to dst.
func PutUint32(dst []byte, v uint32) []byte {
	var buf [4]byte
	Order.PutUint32(buf[:], v)
	return append(dst, buf[:]...)
}

// Uint32 reads a big-endian uint32 from the first 4 bytes of b.
func Uint32(b []byte) uint32 {
	return Order.Uint32(b)
}

// Uint16 reads a big-endian uint16 from the first 2 bytes of b.
func Uint16(b []byte) uint16 {
	return Order.Uint16(b)
}

// Int32 reads a big-endian two's-complement int32 from the first 4 bytes of b.
func Int32(b []byte) int32 {
	return int32(Order.Uint32(b))
}

// View returns a sub-slice of b covering [off, off+n), or false if that
// range falls outside b. It never copies.
func View(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off+n > len(b) {
		return nil, false
	}
	return b[off : off+n], true
}
