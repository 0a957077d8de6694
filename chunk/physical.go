package chunk

import (
	"github.com/pkg/errors"

	"github.com/mjaworski/chunkpng/bitio"
)

// PhysicalDimensions is the decoded form of a pHYs payload.
type PhysicalDimensions struct {
	PixelsPerUnitX, PixelsPerUnitY uint32
	Unit                           uint8
}

// DecodePhysical decodes a pHYs payload's two u32 and one u8 field.
func DecodePhysical(payload []byte) (PhysicalDimensions, error) {
	if len(payload) < 9 {
		return PhysicalDimensions{}, errors.Errorf("physical: payload too short (%d bytes)", len(payload))
	}
	return PhysicalDimensions{
		PixelsPerUnitX: bitio.Uint32(payload[0:4]),
		PixelsPerUnitY: bitio.Uint32(payload[4:8]),
		Unit:           payload[8],
	}, nil
}

func decodePhysical(payload []byte) (Attributes, error) {
	p, err := DecodePhysical(payload)
	if err != nil {
		return Attributes{}, err
	}
	return Attributes{"pixels_per_unit_x": p.PixelsPerUnitX, "pixels_per_unit_y": p.PixelsPerUnitY, "unit": p.Unit}, nil
}
