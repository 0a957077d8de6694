package rsacore

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateKeyPairShapes(t *testing.T) {
	for _, bits := range []int{64, 128, 256} {
		kp, err := GenerateKeyPair(bits)
		require.NoError(t, err)
		require.Equal(t, bits/8, kp.BlockSize)
		require.Equal(t, bits/8+1, kp.CipherBlockSize())
		require.Equal(t, kp.Public.N, kp.Private.N)
	}
}

func TestEncryptDecryptPrimitiveRoundTrip(t *testing.T) {
	kp, err := GenerateKeyPair(128)
	require.NoError(t, err)

	x := big.NewInt(12345)
	y := Encrypt(kp.Public, x)
	got := Decrypt(kp.Private, y)
	require.Equal(t, x, got)
}

func TestFixedBytesPadsAndRejectsOverflow(t *testing.T) {
	got, err := fixedBytes(big.NewInt(0x7F), 3)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0x7F}, got)

	_, err = fixedBytes(big.NewInt(0x1FFFF), 2)
	require.ErrorIs(t, err, ErrBlockOverflow)
}

func TestECBRoundTripVariousKeySizes(t *testing.T) {
	plaintext := []byte("the quick brown fox jumps over the lazy dog, 0123456789")

	for _, bits := range []int{64, 128, 256} {
		kp, err := GenerateKeyPair(bits)
		require.NoError(t, err)

		ciphertext, overflow, err := EncryptECB(kp.Public, kp.BlockSize, plaintext)
		require.NoError(t, err)
		require.Len(t, ciphertext, len(plaintext), "ciphertext must be same length as plaintext for bits=%d", bits)

		got, err := DecryptECB(kp.Private, kp.BlockSize, ciphertext, overflow, len(plaintext))
		require.NoError(t, err)
		require.Equal(t, plaintext, got)
	}
}

func TestECBEmptyPlaintext(t *testing.T) {
	kp, err := GenerateKeyPair(64)
	require.NoError(t, err)

	ciphertext, overflow, err := EncryptECB(kp.Public, kp.BlockSize, nil)
	require.NoError(t, err)
	require.Empty(t, ciphertext)
	require.Empty(t, overflow)

	got, err := DecryptECB(kp.Private, kp.BlockSize, ciphertext, overflow, 0)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestCBCRoundTripVariousKeySizes(t *testing.T) {
	plaintext := []byte("cbc chains each block off the last ciphertext, byte for byte")

	for _, bits := range []int{64, 128, 256} {
		kp, err := GenerateKeyPair(bits)
		require.NoError(t, err)
		iv, err := GenerateIV(kp)
		require.NoError(t, err)

		ciphertext, overflow, err := EncryptCBC(kp.Public, kp.BlockSize, plaintext, iv)
		require.NoError(t, err)
		require.Len(t, ciphertext, len(plaintext), "ciphertext must be same length as plaintext for bits=%d", bits)

		got, err := DecryptCBC(kp.Private, kp.BlockSize, ciphertext, overflow, len(plaintext))
		require.NoError(t, err)
		require.Equal(t, plaintext, got)
	}
}

func TestCBCSamePlaintextDistinctCiphertextAcrossIVs(t *testing.T) {
	kp, err := GenerateKeyPair(128)
	require.NoError(t, err)
	plaintext := []byte("repeated message repeated message repeated message")

	iv1, err := GenerateIV(kp)
	require.NoError(t, err)
	iv2, err := GenerateIV(kp)
	require.NoError(t, err)
	require.NotEqual(t, iv1, iv2, "test requires two distinct IVs; vanishingly unlikely to collide")

	c1, o1, err := EncryptCBC(kp.Public, kp.BlockSize, plaintext, iv1)
	require.NoError(t, err)
	c2, o2, err := EncryptCBC(kp.Public, kp.BlockSize, plaintext, iv2)
	require.NoError(t, err)

	require.False(t, bytes.Equal(c1, c2) && bytes.Equal(o1, o2), "same plaintext under different IVs must not encrypt identically")
}

func TestZeroExtendLowAndXorBytesAlignLowOrder(t *testing.T) {
	// blockSize=4, l=2, prevReg=0xAABBCCDD, block=0x1122: the chaining
	// register's high-order bytes must pass through untouched and only
	// its low-order l bytes combine with the block.
	prevReg := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	block := []byte{0x11, 0x22}

	extended := zeroExtendLow(block, 4)
	require.Equal(t, []byte{0x00, 0x00, 0x11, 0x22}, extended)

	xored := xorBytes(prevReg, extended)
	require.Equal(t, []byte{0xAA, 0xBB, 0xDD, 0xFF}, xored)

	// Un-XORing the full-width result against prevReg and keeping only
	// the low-order l bytes must recover the original block.
	recovered := xorBytes(xored, prevReg)[4-len(block):]
	require.Equal(t, block, recovered)
}

func TestCBCShortFinalBlock(t *testing.T) {
	kp, err := GenerateKeyPair(64)
	require.NoError(t, err)
	iv, err := GenerateIV(kp)
	require.NoError(t, err)

	plaintext := make([]byte, kp.BlockSize*2+3)
	for i := range plaintext {
		plaintext[i] = byte(i)
	}

	ciphertext, overflow, err := EncryptCBC(kp.Public, kp.BlockSize, plaintext, iv)
	require.NoError(t, err)
	require.Len(t, ciphertext, len(plaintext))

	got, err := DecryptCBC(kp.Private, kp.BlockSize, ciphertext, overflow, len(plaintext))
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}
