// Package container drives the chunk-stream parser across an entire file:
// the magic check, the read loop down to the terminator, segment
// indexing, and the policy-driven writer. It owns no presentation
// concerns — GUI, spectral view, and file dialogs are the caller's job
// (see spec.md §1).
package container

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/mjaworski/chunkpng/chunk"
)

// Magic is the fixed 8-byte signature every conforming file begins with.
var Magic = [8]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// Container is an ordered sequence of segments, plus whatever bytes
// trailed the terminator in the source (see TrailingBytes).
type Container struct {
	Segments []chunk.Segment
	Trailing []byte
}

// Open reads a full container from r: the magic prefix, then segments
// until (and including) the terminator, then whatever bytes remain as
// trailing data. It returns ErrBadMagic if the signature does not match,
// and propagates any chunk.Read error (ErrTruncated, ErrBadCRC,
// ErrBadType) without handing a partial segment to the caller.
func Open(r io.Reader) (*Container, error) {
	var magic [8]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, errors.Wrap(ErrBadMagic, "reading signature")
	}
	if magic != Magic {
		return nil, errors.WithStack(ErrBadMagic)
	}

	var segs []chunk.Segment
	for {
		seg, err := chunk.Read(r)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		segs = append(segs, seg)
		if seg.Kind() == chunk.KindEnd {
			break
		}
	}

	trailing, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading trailing bytes")
	}

	return &Container{Segments: segs, Trailing: trailing}, nil
}

// OpenFile is a convenience wrapper around Open that reads from a path.
func OpenFile(path string) (*Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	c, err := Open(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return c, nil
}

// First returns the first segment of the given kind, and whether one was
// found. Order among duplicates is preserved elsewhere (Write emits every
// segment in original order); First only ever reports the earliest one,
// matching the "indexing by type returns the first occurrence" invariant.
func (c *Container) First(kind chunk.Kind) (chunk.Segment, bool) {
	for _, seg := range c.Segments {
		if seg.Kind() == kind {
			return seg, true
		}
	}
	return chunk.Segment{}, false
}

// Header decodes the container's IHDR segment.
func (c *Container) Header() (chunk.Header, error) {
	seg, ok := c.First(chunk.KindHeader)
	if !ok {
		return chunk.Header{}, errors.New("container: no IHDR segment")
	}
	return chunk.DecodeHeader(seg.Payload)
}

// CollectDataPayload concatenates the payloads of every IDAT segment, in
// order, the way the pixel pipeline expects: IDAT segments must appear
// consecutively, but this simply concatenates whichever ones exist
// wherever they are, tolerating non-conforming layouts per spec.md's
// explicit non-goal of full standards validation.
func (c *Container) CollectDataPayload() []byte {
	var buf []byte
	for _, seg := range c.Segments {
		if seg.Kind() == chunk.KindData {
			buf = append(buf, seg.Payload...)
		}
	}
	return buf
}

// TrailingBytes returns whatever bytes followed the terminator segment in
// the source. The cipher modes use this area as a side channel for
// ciphertext overflow bytes that don't fit back into the original
// data-segment sizes (see spec.md §4.7).
func (c *Container) TrailingBytes() []byte {
	return c.Trailing
}
