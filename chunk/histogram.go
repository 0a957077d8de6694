package chunk

import "github.com/mjaworski/chunkpng/bitio"

// DecodeHistogram decodes an hIST payload into its u16 frequency entries,
// one per PLTE entry. A payload with a trailing odd byte simply drops it.
func DecodeHistogram(payload []byte) []uint16 {
	n := len(payload) / 2
	freqs := make([]uint16, n)
	for i := 0; i < n; i++ {
		freqs[i] = bitio.Uint16(payload[2*i : 2*i+2])
	}
	return freqs
}

func decodeHistogram(payload []byte) (Attributes, error) {
	freqs := DecodeHistogram(payload)
	return Attributes{"frequencies": freqs, "count": len(freqs)}, nil
}
