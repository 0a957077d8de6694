package raster

import (
	"io"

	"github.com/pkg/errors"

	"github.com/mjaworski/chunkpng/bitio"
	"github.com/mjaworski/chunkpng/chunk"
	"github.com/mjaworski/chunkpng/container"
)

// BuildContainer assembles a fresh, valid container from raw pixel bytes:
// an IHDR segment, a single IDAT segment carrying the freshly-deflated,
// per-row-filtered (filter selector 0, "None") raster, and an IEND
// segment. trailing is appended verbatim as the container's trailing
// bytes, the way the cipher modes use that area for ciphertext overflow.
//
// Indexed color (color type 3) is declined with ErrUnsupported: a
// conforming file of that color type needs a PLTE segment this function
// has no pixel-to-palette-index mapping to synthesize, and spec.md
// explicitly lists indexed-color reconstruction as a non-goal. Bit depth
// 16 is accepted on a best-effort basis: filtering and framing are
// sample-width agnostic, so it round-trips so long as pixels is already
// packed two bytes per sample.
func BuildContainer(width, height uint32, colorType, bitDepth uint8, pixels []byte, trailing []byte) (*container.Container, error) {
	if colorType == 3 {
		return nil, errors.Wrap(ErrUnsupported, "indexed-color (PLTE) reconstruction")
	}

	header := chunk.Header{
		Width: width, Height: height,
		BitDepth: bitDepth, ColorType: colorType,
	}
	bpp, err := header.BytesPerPixel()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	stride := int(width) * bpp
	want := int(height) * stride
	if len(pixels) != want {
		return nil, errors.Wrapf(ErrCorrupted, "want %d raw pixel bytes, got %d", want, len(pixels))
	}

	filtered := make([]byte, 0, int(height)*(1+stride))
	for r := 0; r < int(height); r++ {
		filtered = append(filtered, byte(FilterNone))
		filtered = append(filtered, pixels[r*stride:(r+1)*stride]...)
	}

	payload, err := Deflate(filtered)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	headerPayload := make([]byte, 0, 13)
	headerPayload = bitio.PutUint32(headerPayload, width)
	headerPayload = bitio.PutUint32(headerPayload, height)
	headerPayload = append(headerPayload, bitDepth, colorType, 0, 0, 0)

	segs := []chunk.Segment{
		chunk.New(bitio.TagFromString("IHDR"), headerPayload),
		chunk.New(bitio.TagFromString("IDAT"), payload),
		chunk.New(bitio.TagFromString("IEND"), nil),
	}

	return &container.Container{Segments: segs, Trailing: trailing}, nil
}

// EncodeRaster builds a container from raw pixel bytes (see BuildContainer)
// and writes it to w in full.
func EncodeRaster(w io.Writer, width, height uint32, colorType, bitDepth uint8, pixels []byte, trailing []byte) error {
	c, err := BuildContainer(width, height, colorType, bitDepth, pixels, trailing)
	if err != nil {
		return err
	}
	return container.Write(w, c, container.PolicyAll)
}
