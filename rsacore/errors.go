package rsacore

import "github.com/pkg/errors"

// ErrBlockOverflow means a modular-exponentiation result did not fit in
// the fixed-width byte representation the block mode expected. Like every
// other cipher-mode error, it is fatal to the operation, which then
// returns no output.
var ErrBlockOverflow = errors.New("rsacore: value exceeds fixed block width")

// ErrShortOverflowBuffer means the overflow (trailing-bytes) buffer ran
// out of bytes before every ciphertext block had its leading byte(s)
// restored.
var ErrShortOverflowBuffer = errors.New("rsacore: overflow buffer exhausted")
