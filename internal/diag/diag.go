// Package diag is the thin logging adapter the core writes through. The
// GUI, spectral view, and other presentation layers are expected to swap
// this out or redirect its output; the core itself only ever calls Warnf
// and Debugf.
package diag

import "log"

// Warnf logs a non-fatal condition: a segment that degraded to an empty
// attribute map, a CRC mismatch the caller chose to tolerate, and similar.
func Warnf(format string, args ...any) {
	log.Printf("warn: "+format, args...)
}

// Debugf logs low-volume tracing information. Disabled by default; kept
// as a single choke point so a caller can redirect or silence it.
var Debugf = func(format string, args ...any) {}
