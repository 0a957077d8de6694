package chunk

import (
	"github.com/pkg/errors"

	"github.com/mjaworski/chunkpng/bitio"
)

// ImageOffset is the decoded form of an oFFs payload.
type ImageOffset struct {
	X, Y int32
	Unit uint8
}

// DecodeOffset decodes an oFFs payload's two signed s32 positions plus a
// unit byte.
func DecodeOffset(payload []byte) (ImageOffset, error) {
	x, ok := bitio.View(payload, 0, 4)
	if !ok {
		return ImageOffset{}, errors.Errorf("offset: payload too short (%d bytes)", len(payload))
	}
	y, ok := bitio.View(payload, 4, 4)
	if !ok {
		return ImageOffset{}, errors.Errorf("offset: payload too short (%d bytes)", len(payload))
	}
	unit, ok := bitio.View(payload, 8, 1)
	if !ok {
		return ImageOffset{}, errors.Errorf("offset: payload too short (%d bytes)", len(payload))
	}
	return ImageOffset{
		X:    bitio.Int32(x),
		Y:    bitio.Int32(y),
		Unit: unit[0],
	}, nil
}

func decodeOffset(payload []byte) (Attributes, error) {
	o, err := DecodeOffset(payload)
	if err != nil {
		return Attributes{}, err
	}
	return Attributes{"x": o.X, "y": o.Y, "unit": o.Unit}, nil
}
