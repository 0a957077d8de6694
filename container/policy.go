package container

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/mjaworski/chunkpng/chunk"
)

// Policy decides whether an ancillary segment should be included when
// writing. Critical segments are never filtered regardless of what a
// Policy returns — see Write.
type Policy func(seg chunk.Segment) bool

// PolicyAll keeps every segment, critical or ancillary.
func PolicyAll(chunk.Segment) bool { return true }

// PolicyCriticalOnly drops every ancillary segment.
func PolicyCriticalOnly(chunk.Segment) bool { return false }

// PolicyCriticalPlus keeps critical segments plus any ancillary segment
// whose kind appears in keep.
func PolicyCriticalPlus(keep ...chunk.Kind) Policy {
	set := make(map[chunk.Kind]bool, len(keep))
	for _, k := range keep {
		set[k] = true
	}
	return func(seg chunk.Segment) bool {
		return set[seg.Kind()]
	}
}

// Write emits the magic prefix, then every segment whose inclusion passes
// policy (critical segments always pass regardless of policy), in
// original order, then the trailing-bytes side channel verbatim.
//
// The writer is all-or-nothing only in the sense that it reports the
// first error encountered; callers that need a file to either appear
// fully-formed or not at all (per spec.md §7) should write to a temporary
// path and rename into place — Write itself does not do that, since it
// operates on an io.Writer rather than a path.
func Write(w io.Writer, c *Container, policy Policy) error {
	if policy == nil {
		policy = PolicyAll
	}

	if _, err := w.Write(Magic[:]); err != nil {
		return errors.Wrap(err, "writing signature")
	}

	for _, seg := range c.Segments {
		if !seg.IsCritical() && !policy(seg) {
			continue
		}
		if seg.CRC != chunk.Checksum(seg.Type, seg.Payload) {
			return errors.Wrapf(ErrCRCRefreshRequired, "segment %q", seg.Type.String())
		}
		if err := chunk.Write(w, seg); err != nil {
			return errors.Wrapf(err, "writing segment %q", seg.Type.String())
		}
	}

	if _, err := w.Write(c.Trailing); err != nil {
		return errors.Wrap(err, "writing trailing bytes")
	}
	return nil
}

// WriteFile writes the container to a fresh file at path, atomically: it
// builds the output in full before renaming it into place, so the output
// file either appears fully-formed or does not appear at all.
func WriteFile(path string, c *Container, policy Policy) (err error) {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	defer func() {
		f.Close()
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if err = Write(f, c, policy); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err = os.Rename(tmp, path); err != nil {
		return errors.Wrap(err, "renaming into place")
	}
	return nil
}
