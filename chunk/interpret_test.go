package chunk

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mjaworski/chunkpng/bitio"
)

func TestDecodeHeader(t *testing.T) {
	payload := []byte{0, 0, 0, 10, 0, 0, 0, 20, 8, 2, 0, 0, 0}
	seg := New(bitio.TagFromString("IHDR"), payload)

	attrs, err := Interpret(seg)
	require.NoError(t, err)
	require.Equal(t, uint32(10), attrs["width"])
	require.Equal(t, uint32(20), attrs["height"])
	require.Equal(t, uint8(8), attrs["bit_depth"])
	require.Equal(t, uint8(2), attrs["color_type"])
}

func TestHeaderBytesPerPixel(t *testing.T) {
	cases := []struct {
		colorType, bitDepth uint8
		want                int
	}{
		{0, 8, 1}, {2, 8, 3}, {3, 8, 1}, {4, 8, 2}, {6, 8, 4},
		{2, 16, 6}, {0, 16, 2},
	}
	for _, c := range cases {
		h := Header{ColorType: c.colorType, BitDepth: c.bitDepth}
		bpp, err := h.BytesPerPixel()
		require.NoError(t, err)
		require.Equal(t, c.want, bpp)
	}
}

func TestDecodePaletteUnevenLength(t *testing.T) {
	entries, err := DecodePalette([]byte{1, 2, 3, 4, 5})
	require.Error(t, err)
	require.Equal(t, []PaletteEntry{{1, 2, 3}}, entries)
}

func TestDecodeGamma(t *testing.T) {
	g, err := DecodeGamma([]byte{0, 0, 0xAF, 0xC8}) // 45000
	require.NoError(t, err)
	require.InDelta(t, 0.45, g, 1e-9)
}

func TestDecodeBackgroundByLength(t *testing.T) {
	b, err := DecodeBackground([]byte{5})
	require.NoError(t, err)
	require.True(t, b.HasPaletteIndex)

	b, err = DecodeBackground([]byte{0, 10})
	require.NoError(t, err)
	require.True(t, b.HasGray)

	b, err = DecodeBackground([]byte{0, 1, 0, 2, 0, 3})
	require.NoError(t, err)
	require.True(t, b.HasRGB)
}

func TestDecodeTextMissingSeparator(t *testing.T) {
	e := DecodeText([]byte("NoSeparatorHere"))
	require.Equal(t, "NoSeparatorHere", e.Keyword)
	require.Equal(t, "", e.Text)
}

func TestDecodeTextWithSeparator(t *testing.T) {
	e := DecodeText([]byte("Author\x00Jan Kowalski"))
	require.Equal(t, "Author", e.Keyword)
	require.Equal(t, "Jan Kowalski", e.Text)
}

func TestUnknownTypePassesThrough(t *testing.T) {
	seg := New(bitio.TagFromString("zTXt"), []byte{1, 2, 3})
	attrs, err := Interpret(seg)
	require.NoError(t, err)
	require.Empty(t, attrs)
	require.Equal(t, []byte{1, 2, 3}, seg.Payload)
}
