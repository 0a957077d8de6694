package rsacore

import (
	"math/big"

	"github.com/pkg/errors"
)

// zeroExtendLow widens b to n bytes by zero-extending at the high-order
// end, i.e. b occupies the low-order len(b) bytes of the result. This is
// what int.from_bytes(b, "big") does implicitly when XORed against a
// wider integer.
func zeroExtendLow(b []byte, n int) []byte {
	out := make([]byte, n)
	copy(out[n-len(b):], b)
	return out
}

// xorBytes XORs two equal-length byte slices.
func xorBytes(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// EncryptCBC encrypts plaintext under pub in cipher-block-chaining mode.
// iv must be the value produced by GenerateIV for the same key pair. It
// returns a ciphertext the same length as plaintext and an overflow
// buffer — the IV's own fixed-width encoding followed by each block's
// diverted overflow bytes, in block order — which DecryptCBC needs back.
//
// The chaining register is always taken from the trailing BlockSize bytes
// of a block's full (BlockSize+1)-byte cipher representation (dropping
// only its leading byte), whether or not that block was short. That rule,
// not stated anywhere in the written algorithm description, is what makes
// this mode's chaining match the reference implementation byte-for-byte.
//
// A short final block of length l is XORed against prevReg at full
// BlockSize width, exactly as Python's
// int.from_bytes(data_block,"big") ^ previous_data does: the block's
// bytes align to the low-order end of the integer, so prevReg's
// high-order (BlockSize-l) bytes pass through untouched and only its
// low-order l bytes combine with the block. The value that gets
// RSA-encrypted is therefore always the full BlockSize-byte magnitude,
// never an l-byte one.
func EncryptCBC(pub PublicKey, blockSize int, plaintext []byte, iv *big.Int) (ciphertext, overflow []byte, err error) {
	ivBytes, err := fixedBytes(iv, blockSize+1)
	if err != nil {
		return nil, nil, errors.Wrap(err, "encoding initialization vector")
	}

	lengths := blockLengths(len(plaintext), blockSize)
	ciphertext = make([]byte, 0, len(plaintext))
	overflow = make([]byte, 0, len(ivBytes)+len(lengths))
	overflow = append(overflow, ivBytes...)

	prevReg := ivBytes[1:]

	offset := 0
	for _, l := range lengths {
		block := plaintext[offset : offset+l]
		offset += l

		xored := xorBytes(prevReg, zeroExtendLow(block, blockSize))
		x := new(big.Int).SetBytes(xored)
		y := Encrypt(pub, x)

		combined, err := fixedBytes(y, blockSize+1)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "encrypting block at offset %d", offset-l)
		}

		pad := paddingSize(blockSize, l)
		overflow = append(overflow, combined[:pad]...)
		ciphertext = append(ciphertext, combined[pad:]...)

		prevReg = combined[1:]
	}
	return ciphertext, overflow, nil
}

// DecryptCBC reverses EncryptCBC given the matching private key, original
// plaintext length, and the overflow buffer produced alongside
// ciphertext (IV first, then per-block overflow bytes in order).
func DecryptCBC(priv PrivateKey, blockSize int, ciphertext, overflow []byte, plaintextLen int) ([]byte, error) {
	if len(overflow) < blockSize+1 {
		return nil, errors.WithStack(ErrShortOverflowBuffer)
	}
	ivBytes := overflow[:blockSize+1]
	prevReg := ivBytes[1:]

	lengths := blockLengths(plaintextLen, blockSize)
	plaintext := make([]byte, 0, plaintextLen)

	cOffset, oOffset := 0, blockSize+1
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

		xoredFull, err := fixedBytes(x, blockSize)
		if err != nil {
			return nil, errors.Wrapf(err, "decrypting block ending at ciphertext offset %d", cOffset)
		}
		block := xorBytes(xoredFull, prevReg)[blockSize-l:]
		plaintext = append(plaintext, block...)

		prevReg = combined[1:]
	}
	return plaintext, nil
}
