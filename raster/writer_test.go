package raster

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mjaworski/chunkpng/container"
)

func TestEncodeThenDecodeRoundTrip(t *testing.T) {
	pixels := []byte{
		10, 20, 30, 11, 21, 31,
		12, 22, 32, 13, 23, 33,
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeRaster(&buf, 2, 2, 2, 8, pixels, nil))

	c, err := container.Open(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	got, err := Decode(c)
	require.NoError(t, err)
	require.Equal(t, pixels, got)
}

func TestEncodeRejectsIndexedColor(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeRaster(&buf, 1, 1, 3, 8, []byte{0}, nil)
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestEncodePreservesTrailingBytes(t *testing.T) {
	pixels := []byte{1, 2, 3, 4}
	trailing := []byte{0xCA, 0xFE}

	var buf bytes.Buffer
	require.NoError(t, EncodeRaster(&buf, 2, 2, 0, 8, pixels, trailing))

	c, err := container.Open(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, trailing, c.Trailing)
}
