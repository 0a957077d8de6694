package raster

import (
	"github.com/pkg/errors"

	"github.com/mjaworski/chunkpng/container"
)

// Decode runs the full pixel pipeline over an already-parsed container:
// concatenate every IDAT payload, inflate it, and reverse the per-row
// filters, returning height×width×bytesPerPixel raw pixel bytes. The
// header that describes their shape is available from c.Header(). This is
// the spec's
// "defilter(container) → raster_bytes" operation.
func Decode(c *container.Container) ([]byte, error) {
	header, err := c.Header()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	bpp, err := header.BytesPerPixel()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	compressed := c.CollectDataPayload()
	raw, err := Inflate(compressed)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return Defilter(raw, int(header.Width), int(header.Height), bpp)
}
