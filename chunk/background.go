package chunk

import (
	"github.com/pkg/errors"

	"github.com/mjaworski/chunkpng/bitio"
)

// Background is the decoded form of a bKGD payload. Its shape depends on
// the image's color type: a single palette index (type 3), a 2-byte gray
// level (types 0/4), or three 2-byte channels (types 2/6). Only the
// fields matching the payload's shape are populated.
type Background struct {
	PaletteIndex       uint8
	HasPaletteIndex    bool
	Gray               uint16
	HasGray            bool
	Red, Green, Blue   uint16
	HasRGB             bool
}

// DecodeBackground disambiguates a bKGD payload purely from its length: 1
// byte is a palette index, 2 bytes is a gray level, 6 bytes is an RGB
// triple. Any other length is reported as malformed.
func DecodeBackground(payload []byte) (Background, error) {
	switch len(payload) {
	case 1:
		return Background{PaletteIndex: payload[0], HasPaletteIndex: true}, nil
	case 2:
		return Background{Gray: bitio.Uint16(payload), HasGray: true}, nil
	case 6:
		return Background{
			Red:    bitio.Uint16(payload[0:2]),
			Green:  bitio.Uint16(payload[2:4]),
			Blue:   bitio.Uint16(payload[4:6]),
			HasRGB: true,
		}, nil
	default:
		return Background{}, errors.Errorf("background: unrecognized payload length %d", len(payload))
	}
}

func decodeBackground(payload []byte) (Attributes, error) {
	b, err := DecodeBackground(payload)
	if err != nil {
		return Attributes{}, err
	}
	attrs := Attributes{}
	if b.HasPaletteIndex {
		attrs["palette_index"] = b.PaletteIndex
	}
	if b.HasGray {
		attrs["gray"] = b.Gray
	}
	if b.HasRGB {
		attrs["red"] = b.Red
		attrs["green"] = b.Green
		attrs["blue"] = b.Blue
	}
	return attrs, nil
}
