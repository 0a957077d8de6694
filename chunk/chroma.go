package chunk

import (
	"github.com/pkg/errors"

	"github.com/mjaworski/chunkpng/bitio"
)

// Chromaticities is the decoded form of a cHRM payload: the CIE x,y
// chromaticity of the white point and the red, green, and blue primaries,
// each a raw u32 divided by 100000.
type Chromaticities struct {
	WhiteX, WhiteY float64
	RedX, RedY     float64
	GreenX, GreenY float64
	BlueX, BlueY   float64
}

// DecodeChroma decodes a cHRM payload's eight u32 fields.
func DecodeChroma(payload []byte) (Chromaticities, error) {
	var fields [8]float64
	for i := range fields {
		field, ok := bitio.View(payload, 4*i, 4)
		if !ok {
			return Chromaticities{}, errors.Errorf("chromaticities: payload too short (%d bytes)", len(payload))
		}
		fields[i] = float64(bitio.Uint32(field)) / 100000.0
	}
	return Chromaticities{
		WhiteX: fields[0], WhiteY: fields[1],
		RedX: fields[2], RedY: fields[3],
		GreenX: fields[4], GreenY: fields[5],
		BlueX: fields[6], BlueY: fields[7],
	}, nil
}

func decodeChroma(payload []byte) (Attributes, error) {
	c, err := DecodeChroma(payload)
	if err != nil {
		return Attributes{}, err
	}
	return Attributes{
		"white_x": c.WhiteX, "white_y": c.WhiteY,
		"red_x": c.RedX, "red_y": c.RedY,
		"green_x": c.GreenX, "green_y": c.GreenY,
		"blue_x": c.BlueX, "blue_y": c.BlueY,
	}, nil
}
