package raster

import "github.com/pkg/errors"

// ErrCorrupted means the decompressed raster's length does not match the
// geometry implied by the header (height × (1 + width × bytes-per-pixel)).
var ErrCorrupted = errors.New("raster: decompressed length does not match geometry")

// ErrUnsupported means the requested encode path is one this
// implementation declines. BuildContainer returns it for indexed color
// (color type 3); 16-bit depth is accepted on a best-effort basis.
var ErrUnsupported = errors.New("raster: unsupported bit depth or color type")
