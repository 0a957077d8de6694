package chunk

import "github.com/pkg/errors"

// decodeData is the IDAT interpreter. IDAT payload is opaque compressed
// raster data; the only attribute worth surfacing here is its size, since
// the bytes themselves are consumed directly by the raster pipeline via
// container.Container.CollectDataPayload rather than through Attributes.
func decodeData(payload []byte) (Attributes, error) {
	return Attributes{"length": len(payload)}, nil
}

// decodeEnd is the IEND interpreter. Its payload must be empty; a
// non-empty payload is tolerated and reported rather than rejected.
func decodeEnd(payload []byte) (Attributes, error) {
	if len(payload) != 0 {
		return Attributes{}, errors.Errorf("terminator: expected empty payload, got %d bytes", len(payload))
	}
	return Attributes{}, nil
}
