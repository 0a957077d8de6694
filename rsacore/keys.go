// Package rsacore implements the textbook RSA primitive this system's
// cipher modes are built on — key generation, modular exponentiation, and
// the fixed-width byte packing the ECB/CBC layers depend on. It is
// deliberately unpadded and is not a usable cipher (see spec.md §1); it
// exists to reproduce a specific academic construction byte-for-byte, not
// to provide cryptographic security.
package rsacore

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"
)

// PublicKey is (n, e): modulus and public exponent.
type PublicKey struct {
	N *big.Int
	E *big.Int
}

// PrivateKey is (n, d): modulus and private exponent.
type PrivateKey struct {
	N *big.Int
	D *big.Int
}

// KeyPair bundles a public/private key with the block size they were
// generated for. BlockSize is the plaintext block size in bytes (k/8);
// ciphertext blocks are BlockSize+1 bytes, since the modulus can exceed k
// bits (see CipherBlockSize).
type KeyPair struct {
	Public    PublicKey
	Private   PrivateKey
	KeyBits   int
	BlockSize int
}

// CipherBlockSize returns the fixed width, in bytes, of one raw
// modular-exponentiation result: BlockSize+1.
func (kp *KeyPair) CipherBlockSize() int {
	return kp.BlockSize + 1
}

// GenerateKeyPair draws two distinct primes p, q, each uniformly from
// [2^(bits/2), 2^(bits/2+1)-1] — one bit wider than the usual
// [2^(bits/2-1), 2^(bits/2)] textbook range — so the resulting modulus n
// can run one byte past bits/8. That extra byte is exactly what the block
// modes' overflow bookkeeping (§4.7) is built around, so this odd range
// is preserved rather than "fixed" to the conventional one.
//
// Primality uses crypto/rand.Prime, which runs a Miller-Rabin test
// internally; no example in this module's reference pack carries a
// third-party arbitrary-precision or primality library, so this is
// math/big plus the standard library's own vetted prime sampler rather
// than a hand-rolled one.
func GenerateKeyPair(bits int) (*KeyPair, error) {
	if bits < 16 || bits%8 != 0 {
		return nil, errors.Errorf("rsacore: key size must be a positive multiple of 8 bits >= 16, got %d", bits)
	}
	half := bits / 2

	p, err := rand.Prime(rand.Reader, half+1)
	if err != nil {
		return nil, errors.Wrap(err, "generating p")
	}
	q, err := rand.Prime(rand.Reader, half+1)
	if err != nil {
		return nil, errors.Wrap(err, "generating q")
	}
	for q.Cmp(p) == 0 {
		q, err = rand.Prime(rand.Reader, half+1)
		if err != nil {
			return nil, errors.Wrap(err, "regenerating q")
		}
	}

	n := new(big.Int).Mul(p, q)
	one := big.NewInt(1)
	pMinus1 := new(big.Int).Sub(p, one)
	qMinus1 := new(big.Int).Sub(q, one)
	phi := new(big.Int).Mul(pMinus1, qMinus1)

	var e *big.Int
	for {
		candidate, err := rand.Prime(rand.Reader, half+1)
		if err != nil {
			return nil, errors.Wrap(err, "generating e")
		}
		if candidate.Cmp(phi) >= 0 {
			continue
		}
		if new(big.Int).GCD(nil, nil, candidate, phi).Cmp(one) == 0 {
			e = candidate
			break
		}
	}

	d := new(big.Int).ModInverse(e, phi)
	if d == nil {
		return nil, errors.New("rsacore: e has no modular inverse mod phi")
	}

	return &KeyPair{
		Public:    PublicKey{N: n, E: e},
		Private:   PrivateKey{N: n, D: d},
		KeyBits:   bits,
		BlockSize: bits / 8,
	}, nil
}

// Encrypt computes x^e mod n.
func Encrypt(pub PublicKey, x *big.Int) *big.Int {
	return new(big.Int).Exp(x, pub.E, pub.N)
}

// Decrypt computes y^d mod n.
func Decrypt(priv PrivateKey, y *big.Int) *big.Int {
	return new(big.Int).Exp(y, priv.D, priv.N)
}

// GenerateIV draws the CBC initialization vector: a random prime of
// exactly KeyBits/2 bits (one bit narrower than p and q), matching the
// original implementation this system reproduces.
func GenerateIV(kp *KeyPair) (*big.Int, error) {
	iv, err := rand.Prime(rand.Reader, kp.KeyBits/2)
	if err != nil {
		return nil, errors.Wrap(err, "generating initialization vector")
	}
	return iv, nil
}

// fixedBytes renders x as an exactly-n-byte big-endian buffer, left-padded
// with zeros. It fails with ErrBlockOverflow if x does not fit.
func fixedBytes(x *big.Int, n int) ([]byte, error) {
	raw := x.Bytes()
	if len(raw) > n {
		return nil, errors.Wrapf(ErrBlockOverflow, "value needs %d bytes, width is %d", len(raw), n)
	}
	out := make([]byte, n)
	copy(out[n-len(raw):], raw)
	return out, nil
}
