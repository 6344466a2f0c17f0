package aes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVectorX2LaneWiseAgreesWithScalar(t *testing.T) {
	var k [16]byte
	copy(k[:], unhex(t, "000102030405060708090a0b0c0d0e0f"))
	c := NewAes128(k)

	p0 := blockFromHex(t, "00112233445566778899aabbccddeeff")
	p1 := blockFromHex(t, "ffeeddccbbaa99887766554433221100")

	vec := NewAesBlockX2(p0, p1)
	out := c.Enc.EncryptBlocksX2(vec)
	lo, hi := out.Blocks()

	require.True(t, lo.Equal(c.EncryptBlock(p0)))
	require.True(t, hi.Equal(c.EncryptBlock(p1)))

	dec := c.Dec.DecryptBlocksX2(out)
	dlo, dhi := dec.Blocks()
	require.True(t, dlo.Equal(p0))
	require.True(t, dhi.Equal(p1))
}

func TestVectorX4LaneWiseAgreesWithScalar(t *testing.T) {
	var k [16]byte
	copy(k[:], unhex(t, "000102030405060708090a0b0c0d0e0f"))
	c := NewAes128(k)

	p0 := blockFromHex(t, "00112233445566778899aabbccddeeff")
	p1 := blockFromHex(t, "ffeeddccbbaa99887766554433221100")
	p2 := Zero()
	p3 := Zero().Not()

	vec := NewAesBlockX4(p0, p1, p2, p3)
	out := c.Enc.EncryptBlocksX4(vec)
	b0, b1, b2, b3 := out.Blocks()

	require.True(t, b0.Equal(c.EncryptBlock(p0)))
	require.True(t, b1.Equal(c.EncryptBlock(p1)))
	require.True(t, b2.Equal(c.EncryptBlock(p2)))
	require.True(t, b3.Equal(c.EncryptBlock(p3)))

	dec := c.Dec.DecryptBlocksX4(out)
	d0, d1, d2, d3 := dec.Blocks()
	require.True(t, d0.Equal(p0))
	require.True(t, d1.Equal(p1))
	require.True(t, d2.Equal(p2))
	require.True(t, d3.Equal(p3))
}

func TestVectorStoreLoadRoundTrip(t *testing.T) {
	var raw32 [32]byte
	for i := range raw32 {
		raw32[i] = byte(i)
	}
	v2 := LoadAesBlockX2(&raw32)
	require.Equal(t, raw32, v2.Store())

	var raw64 [64]byte
	for i := range raw64 {
		raw64[i] = byte(i * 3)
	}
	v4 := LoadAesBlockX4(&raw64)
	require.Equal(t, raw64, v4.Store())
}

func TestIndependentPerLaneKeysX2(t *testing.T) {
	var kLo, kHi [16]byte
	copy(kLo[:], unhex(t, "000102030405060708090a0b0c0d0e0f"))
	copy(kHi[:], unhex(t, "2b7e151628aed2a6abf7158809cf4f3c"))

	p0 := blockFromHex(t, "00112233445566778899aabbccddeeff")
	p1 := blockFromHex(t, "00112233445566778899aabbccddeeff")

	encX2 := NewAes128EncX2(kLo, kHi)
	out := encX2.EncryptBlocks(NewAesBlockX2(p0, p1))
	lo, hi := out.Blocks()

	require.True(t, lo.Equal(NewAes128(kLo).EncryptBlock(p0)))
	require.True(t, hi.Equal(NewAes128(kHi).EncryptBlock(p1)))
	require.False(t, lo.Equal(hi), "distinct per-lane keys must not collapse to the same ciphertext")

	decX2 := encX2.Decrypter()
	dec := decX2.DecryptBlocks(out)
	dlo, dhi := dec.Blocks()
	require.True(t, dlo.Equal(p0))
	require.True(t, dhi.Equal(p1))
}

func TestChainEncryptWithLastMatchesBlockLevel(t *testing.T) {
	var k [16]byte
	copy(k[:], unhex(t, "000102030405060708090a0b0c0d0e0f"))
	c := NewAes128Enc(k)

	pt := blockFromHex(t, "00112233445566778899aabbccddeeff")
	want := c.EncryptBlock(pt)

	got := pt.ChainEncryptWithLast([]AesBlock{
		c.roundKeys[0], c.roundKeys[1], c.roundKeys[2], c.roundKeys[3],
		c.roundKeys[4], c.roundKeys[5], c.roundKeys[6], c.roundKeys[7],
		c.roundKeys[8], c.roundKeys[9], c.roundKeys[10],
	})
	require.True(t, got.Equal(want))
}
