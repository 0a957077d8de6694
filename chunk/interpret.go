package chunk

import (
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/mjaworski/chunkpng/internal/diag"
)

// Attributes is the decoded, descriptive-key view of a segment's payload.
// It is always derived from Payload — never an independent source of
// truth — and interpreters must not mutate the Payload they are given.
type Attributes map[string]any

// interpreter decodes a payload into an Attributes map. It must tolerate
// malformed input: on a decode failure it returns a best-effort
// (possibly empty) map plus an error describing what went wrong, rather
// than panicking.
type interpreter func(payload []byte) (Attributes, error)

var registry = map[Kind]interpreter{
	KindHeader:     decodeHeader,
	KindPalette:    decodePalette,
	KindData:       decodeData,
	KindEnd:        decodeEnd,
	KindGamma:      decodeGamma,
	KindChroma:     decodeChroma,
	KindSRGB:       decodeSRGB,
	KindBackground: decodeBackground,
	KindPhysical:   decodePhysical,
	KindOffset:     decodeOffset,
	KindHistogram:  decodeHistogram,
	KindStereo:     decodeStereo,
	KindTime:       decodeTime,
	KindText:       decodeText,
}

type cachedResult struct {
	attrs Attributes
	err   error
}

var attrCache sync.Map // map[uint64]cachedResult

// Interpret dispatches on seg.Type and decodes seg.Payload into an
// Attributes map. Unknown types return an empty map with no error — their
// bytes are still preserved verbatim in the Segment itself. Results
// (including a decode error, if any) are memoized by
// xxhash.Sum64(type ∥ payload), so interpreting the same segment content
// twice (e.g. once while indexing a container and once from a caller
// inspecting it) only decodes, and logs, once.
func Interpret(seg Segment) (Attributes, error) {
	fn, ok := registry[seg.Kind()]
	if !ok {
		return Attributes{}, nil
	}

	key := cacheKey(seg)
	if v, ok := attrCache.Load(key); ok {
		diag.Debugf("chunk: %s: cache hit for key %x", seg.Type.String(), key)
		r := v.(cachedResult)
		return r.attrs, r.err
	}

	attrs, err := fn(seg.Payload)
	if err != nil {
		diag.Warnf("chunk: %s: %v", seg.Type.String(), err)
		if attrs == nil {
			attrs = Attributes{}
		}
	}
	attrCache.Store(key, cachedResult{attrs: attrs, err: err})
	return attrs, err
}

func cacheKey(seg Segment) uint64 {
	h := xxhash.New()
	h.Write(seg.Type[:])
	h.Write(seg.Payload)
	return h.Sum64()
}
