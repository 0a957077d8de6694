package chunk

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mjaworski/chunkpng/bitio"
)

func TestReadWriteRoundTrip(t *testing.T) {
	seg := New(bitio.TagFromString("tEXt"), []byte("Author\x00Jan Kowalski"))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, seg))

	got, err := Read(&buf)
	require.NoError(t, err)
	require.Equal(t, seg, got)
}

func TestReadBadCRC(t *testing.T) {
	seg := New(bitio.TagFromString("gAMA"), []byte{0, 0, 0, 1})
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, seg))

	raw := buf.Bytes()
	raw[len(raw)-1] ^= 0xFF // flip every bit of the stored CRC's last byte

	_, err := Read(bytes.NewReader(raw))
	require.ErrorIs(t, err, ErrBadCRC)
}

func TestReadTruncated(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte{0, 0, 0, 5, 'I', 'D'}))
	require.ErrorIs(t, err, ErrTruncated)
}

func TestReadBadType(t *testing.T) {
	payload := []byte{1, 2, 3}
	var buf bytes.Buffer
	buf.Write([]byte{0, 0, 0, byte(len(payload))})
	buf.WriteString("1DAT") // leading digit is not an ASCII letter
	buf.Write(payload)
	buf.Write([]byte{0, 0, 0, 0})

	_, err := Read(&buf)
	require.ErrorIs(t, err, ErrBadType)
}

func TestIsCritical(t *testing.T) {
	require.True(t, New(bitio.TagFromString("IHDR"), nil).IsCritical())
	require.False(t, New(bitio.TagFromString("tEXt"), nil).IsCritical())
}

func TestSetPayloadRecomputesCRC(t *testing.T) {
	seg := New(bitio.TagFromString("IDAT"), []byte{1, 2, 3, 4})
	oldCRC := seg.CRC
	seg.SetPayload([]byte{5, 6, 7, 8})
	require.NotEqual(t, oldCRC, seg.CRC)
	require.Equal(t, uint32(4), seg.Length)
}
