package chunk

import (
	"github.com/pkg/errors"

	"github.com/mjaworski/chunkpng/bitio"
)

// DecodeGamma decodes a gAMA payload: a single u32 representing gamma
// times 100000.
func DecodeGamma(payload []byte) (float64, error) {
	field, ok := bitio.View(payload, 0, 4)
	if !ok {
		return 0, errors.Errorf("gamma: payload too short (%d bytes)", len(payload))
	}
	return float64(bitio.Uint32(field)) / 100000.0, nil
}

func decodeGamma(payload []byte) (Attributes, error) {
	g, err := DecodeGamma(payload)
	if err != nil {
		return Attributes{}, err
	}
	return Attributes{"gamma": g}, nil
}
