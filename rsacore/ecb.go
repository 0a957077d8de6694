package rsacore

import (
	"math/big"

	"github.com/pkg/errors"
)

// blockLengths splits n plaintext bytes into kp.BlockSize-sized blocks,
// the last one short if n is not a multiple of BlockSize. A block of
// length equal to BlockSize is "full"; any shorter trailing block is the
// "short" block, and there is at most one.
func blockLengths(n, blockSize int) []int {
	if n == 0 {
		return nil
	}
	full := n / blockSize
	rem := n % blockSize
	lengths := make([]int, 0, full+1)
	for i := 0; i < full; i++ {
		lengths = append(lengths, blockSize)
	}
	if rem > 0 {
		lengths = append(lengths, rem)
	}
	return lengths
}

// paddingSize is the number of leading bytes of a block's fixed-width
// (BlockSize+1)-byte cipher representation that get diverted to the
// overflow side channel rather than the in-place ciphertext stream: 1 for
// a full block, BlockSize+1-l for a short final block of length l. This
// keeps every ciphertext stream exactly as long as its plaintext.
func paddingSize(blockSize, l int) int {
	if l == blockSize {
		return 1
	}
	return blockSize + 1 - l
}

// EncryptECB encrypts plaintext under pub in electronic-codebook mode:
// each block is RSA-encrypted independently. It returns a ciphertext the
// same length as plaintext plus an overflow buffer of the bytes that
// didn't fit back in place; both must be kept together to decrypt (see
// DecryptECB).
func EncryptECB(pub PublicKey, blockSize int, plaintext []byte) (ciphertext, overflow []byte, err error) {
	lengths := blockLengths(len(plaintext), blockSize)
	ciphertext = make([]byte, 0, len(plaintext))
	overflow = make([]byte, 0, len(lengths))

	offset := 0
	for _, l := range lengths {
		block := plaintext[offset : offset+l]
		offset += l

		x := new(big.Int).SetBytes(block)
		y := Encrypt(pub, x)

		combined, err := fixedBytes(y, blockSize+1)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "encrypting block at offset %d", offset-l)
		}

		pad := paddingSize(blockSize, l)
		overflow = append(overflow, combined[:pad]...)
		ciphertext = append(ciphertext, combined[pad:]...)
	}
	return ciphertext, overflow, nil
}

// DecryptECB reverses EncryptECB given the matching private key, original
// plaintext length, and the overflow buffer produced alongside ciphertext.
func DecryptECB(priv PrivateKey, blockSize int, ciphertext, overflow []byte, plaintextLen int) ([]byte, error) {
	lengths := blockLengths(plaintextLen, blockSize)
	plaintext := make([]byte, 0, plaintextLen)

	cOffset, oOffset := 0, 0
	for _, l := range lengths {
		pad := paddingSize(blockSize, l)
		contribLen := blockSize + 1 - pad

		if oOffset+pad > len(overflow) {
			return nil, errors.WithStack(ErrShortOverflowBuffer)
		}
		if cOffset+contribLen > len(ciphertext) {
			return nil, errors.New("rsacore: ciphertext buffer exhausted")
		}

		combined := make([]byte, 0, blockSize+1)
		combined = append(combined, overflow[oOffset:oOffset+pad]...)
		combined = append(combined, ciphertext[cOffset:cOffset+contribLen]...)
		oOffset += pad
		cOffset += contribLen

		y := new(big.Int).SetBytes(combined)
		x := Decrypt(priv, y)

		block, err := fixedBytes(x, l)
		if err != nil {
			return nil, errors.Wrapf(err, "decrypting block ending at ciphertext offset %d", cOffset)
		}
		plaintext = append(plaintext, block...)
	}
	return plaintext, nil
}
