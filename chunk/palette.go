package chunk

import "github.com/pkg/errors"

// PaletteEntry is one (R, G, B) triple of a PLTE payload.
type PaletteEntry struct {
	R, G, B uint8
}

// DecodePalette splits a PLTE payload into RGB triples. The chunk length
// must divide evenly by 3; any trailing partial triple is dropped and
// reported as an error, with the complete triples still returned (the
// decoder tolerates but does not crash on malformed payloads).
func DecodePalette(payload []byte) ([]PaletteEntry, error) {
	n := len(payload) / 3
	entries := make([]PaletteEntry, n)
	for i := 0; i < n; i++ {
		entries[i] = PaletteEntry{R: payload[3*i], G: payload[3*i+1], B: payload[3*i+2]}
	}
	if len(payload)%3 != 0 {
		return entries, errors.Errorf("palette: length %d not divisible by 3", len(payload))
	}
	return entries, nil
}

func decodePalette(payload []byte) (Attributes, error) {
	entries, err := DecodePalette(payload)
	return Attributes{"entries": entries, "count": len(entries)}, err
}
