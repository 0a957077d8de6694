package raster

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/pkg/errors"

	"github.com/mjaworski/chunkpng/chunk"
)

// Inflate decompresses the concatenated IDAT payload. The compressed
// stream is the standard zlib format (2-byte header, Adler-32 trailer),
// decoded here through klauspost/compress/zlib — a drop-in for
// compress/zlib already exercised elsewhere in this dependency graph —
// rather than the stdlib package.
func Inflate(compressed []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, errors.Wrap(chunk.ErrBadPayload, err.Error())
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(chunk.ErrBadPayload, err.Error())
	}
	return out, nil
}

// Deflate compresses raw bytes into the standard zlib format, the inverse
// of Inflate.
func Deflate(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(raw); err != nil {
		return nil, errors.Wrap(err, "deflate: writing")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "deflate: closing")
	}
	return buf.Bytes(), nil
}

// Defilter reverses the five PNG-style row filters over a decompressed
// raster stream, producing height×width×bytesPerPixel raw pixel bytes.
// data must be exactly height×(1+width×bytesPerPixel) bytes — one leading
// filter-selector byte per row, plus width×bytesPerPixel filtered sample
// bytes — or ErrCorrupted is returned.
func Defilter(data []byte, width, height, bytesPerPixel int) ([]byte, error) {
	stride := width * bytesPerPixel
	expected := height * (1 + stride)
	if len(data) != expected {
		return nil, errors.Wrapf(ErrCorrupted, "want %d bytes, got %d", expected, len(data))
	}

	out := make([]byte, height*stride)
	pos := 0
	for r := 0; r < height; r++ {
		filterType := FilterType(data[pos])
		pos++
		rowOut := out[r*stride : (r+1)*stride]
		var prevRow []byte
		if r > 0 {
			prevRow = out[(r-1)*stride : r*stride]
		}

		for c := 0; c < stride; c++ {
			filtX := data[pos]
			pos++

			var a, b, cc int
			if c >= bytesPerPixel {
				a = int(rowOut[c-bytesPerPixel])
			}
			if prevRow != nil {
				b = int(prevRow[c])
			}
			if prevRow != nil && c >= bytesPerPixel {
				cc = int(prevRow[c-bytesPerPixel])
			}

			var recon int
			switch filterType {
			case FilterNone:
				recon = int(filtX)
			case FilterSub:
				recon = int(filtX) + a
			case FilterUp:
				recon = int(filtX) + b
			case FilterAverage:
				recon = int(filtX) + (a+b)/2
			case FilterPaeth:
				recon = int(filtX) + Paeth(a, b, cc)
			default:
				return nil, errors.Wrapf(ErrCorrupted, "row %d: invalid filter type %d", r, filterType)
			}
			rowOut[c] = byte(recon)
		}
	}
	return out, nil
}
