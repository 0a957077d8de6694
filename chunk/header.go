package chunk

import (
	"github.com/pkg/errors"

	"github.com/mjaworski/chunkpng/bitio"
)

// Header is the decoded form of an IHDR payload. It must appear first in
// any conforming container (see container.Container).
type Header struct {
	Width             uint32
	Height            uint32
	BitDepth          uint8
	ColorType         uint8
	CompressionMethod uint8
	FilterMethod      uint8
	InterlaceMethod   uint8
}

// BytesPerPixel is a pure function of ColorType, doubled when BitDepth is
// 16: 1 (grayscale), 3 (truecolor), 1 (indexed), 2 (grayscale+alpha), 4
// (truecolor+alpha) samples per pixel at 8 bits, times two bytes per
// sample at 16 bits.
func (h Header) BytesPerPixel() (int, error) {
	var samples int
	switch h.ColorType {
	case 0:
		samples = 1
	case 2:
		samples = 3
	case 3:
		samples = 1
	case 4:
		samples = 2
	case 6:
		samples = 4
	default:
		return 0, errors.Errorf("header: unrecognized color type %d", h.ColorType)
	}
	if h.BitDepth == 16 {
		samples *= 2
	}
	return samples, nil
}

// DecodeHeader decodes an IHDR payload directly into a Header, for callers
// (the raster pipeline, the container) that need typed access rather than
// the generic Attributes map.
func DecodeHeader(payload []byte) (Header, error) {
	if len(payload) < 13 {
		return Header{}, errors.Errorf("header: payload too short (%d bytes)", len(payload))
	}
	return Header{
		Width:             bitio.Uint32(payload[0:4]),
		Height:            bitio.Uint32(payload[4:8]),
		BitDepth:          payload[8],
		ColorType:         payload[9],
		CompressionMethod: payload[10],
		FilterMethod:      payload[11],
		InterlaceMethod:   payload[12],
	}, nil
}

func decodeHeader(payload []byte) (Attributes, error) {
	h, err := DecodeHeader(payload)
	if err != nil {
		return Attributes{}, err
	}
	return Attributes{
		"width":              h.Width,
		"height":             h.Height,
		"bit_depth":          h.BitDepth,
		"color_type":         h.ColorType,
		"compression_method": h.CompressionMethod,
		"filter_method":      h.FilterMethod,
		"interlace_method":   h.InterlaceMethod,
	}, nil
}
