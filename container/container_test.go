package container

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mjaworski/chunkpng/bitio"
	"github.com/mjaworski/chunkpng/chunk"
)

func buildHeader(t *testing.T, width, height uint32, bitDepth, colorType uint8) chunk.Segment {
	t.Helper()
	payload := make([]byte, 13)
	bitio.Order.PutUint32(payload[0:4], width)
	bitio.Order.PutUint32(payload[4:8], height)
	payload[8] = bitDepth
	payload[9] = colorType
	return chunk.New(bitio.TagFromString("IHDR"), payload)
}

func minimalContainer(t *testing.T, ancillary ...chunk.Segment) *Container {
	t.Helper()
	segs := []chunk.Segment{buildHeader(t, 1, 1, 8, 0)}
	segs = append(segs, ancillary...)
	segs = append(segs, chunk.New(bitio.TagFromString("IDAT"), []byte{1, 2, 3}))
	segs = append(segs, chunk.New(bitio.TagFromString("IEND"), []byte{}))
	return &Container{Segments: segs}
}

func encode(t *testing.T, c *Container, policy Policy) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, c, policy))
	return buf.Bytes()
}

func TestRoundTripAllPolicy(t *testing.T) {
	text := chunk.New(bitio.TagFromString("tEXt"), []byte("Author\x00me"))
	c := minimalContainer(t, text)

	raw := encode(t, c, PolicyAll)

	reopened, err := Open(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, c.Segments, reopened.Segments)

	raw2 := encode(t, reopened, PolicyAll)
	require.Equal(t, raw, raw2)
}

func TestCriticalOnlyPolicyDropsAncillary(t *testing.T) {
	text := chunk.New(bitio.TagFromString("tEXt"), []byte("Author\x00me"))
	c := minimalContainer(t, text)

	raw := encode(t, c, PolicyCriticalOnly)
	reopened, err := Open(bytes.NewReader(raw))
	require.NoError(t, err)

	for _, seg := range reopened.Segments {
		require.True(t, seg.IsCritical(), "expected only critical segments, got %s", seg.Type.String())
	}
	require.Len(t, reopened.Segments, 3) // IHDR, IDAT, IEND
}

func TestBadMagicRejected(t *testing.T) {
	_, err := Open(bytes.NewReader([]byte("not a png container......")))
	require.ErrorIs(t, err, ErrBadMagic)
}

func TestTrailingBytesPreserved(t *testing.T) {
	c := minimalContainer(t)
	c.Trailing = []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01}

	raw := encode(t, c, PolicyAll)
	reopened, err := Open(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, c.Trailing, reopened.Trailing)
}

func TestFirstReturnsEarliestOccurrence(t *testing.T) {
	first := chunk.New(bitio.TagFromString("tEXt"), []byte("A\x001"))
	second := chunk.New(bitio.TagFromString("tEXt"), []byte("B\x002"))
	c := minimalContainer(t, first, second)

	got, ok := c.First(chunk.KindText)
	require.True(t, ok)
	require.Equal(t, first, got)
}

func TestCollectDataPayloadConcatenatesInOrder(t *testing.T) {
	c := &Container{Segments: []chunk.Segment{
		chunk.New(bitio.TagFromString("IDAT"), []byte{1, 2}),
		chunk.New(bitio.TagFromString("IDAT"), []byte{3, 4}),
	}}
	require.Equal(t, []byte{1, 2, 3, 4}, c.CollectDataPayload())
}
