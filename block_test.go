package aes

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func unhex(t *testing.T, s string) []byte {
	t.Helper()
	p, err := hex.DecodeString(s)
	require.NoError(t, err)
	return p
}

func blockFromHex(t *testing.T, s string) AesBlock {
	t.Helper()
	var buf [16]byte
	copy(buf[:], unhex(t, s))
	return LoadAesBlock(&buf)
}

func TestStoreLoadRoundTrip(t *testing.T) {
	for _, h := range []string{
		"00000000000000000000000000000000",
		"000102030405060708090a0b0c0d0e0f",
		"ffffffffffffffffffffffffffffffff",
	} {
		var buf [16]byte
		copy(buf[:], unhex(t, h)[:16])
		b := LoadAesBlock(&buf)
		require.Equal(t, buf, b.Store())
	}
}

func TestXorSelfIsZero(t *testing.T) {
	a := blockFromHex(t, "000102030405060708090a0b0c0d0e0f")
	require.True(t, a.Xor(a).IsZero())
}

func TestNotNotIsIdentity(t *testing.T) {
	a := blockFromHex(t, "000102030405060708090a0b0c0d0e0f")
	require.True(t, a.Equal(a.Not().Not()))
}

func TestAndOrAllOnesAllZero(t *testing.T) {
	a := blockFromHex(t, "000102030405060708090a0b0c0d0e0f")
	zero := Zero()
	ones := zero.Not()
	require.True(t, a.And(zero).IsZero())
	require.True(t, a.And(ones).Equal(a))
	require.True(t, a.Or(ones).Equal(ones))
	require.True(t, a.Or(zero).Equal(a))
}

// TestFIPS197AppendixC encrypts the three Appendix C test vectors under
// each key length and checks the ciphertext, then checks the round trip.
func TestFIPS197AppendixC(t *testing.T) {
	cases := []struct {
		name       string
		key        string
		plaintext  string
		ciphertext string
	}{
		{
			name:       "AES-128",
			key:        "000102030405060708090a0b0c0d0e0f",
			plaintext:  "00112233445566778899aabbccddeeff",
			ciphertext: "69c4e0d86a7b0430d8cdb78070b4c55a",
		},
		{
			name:       "AES-192",
			key:        "000102030405060708090a0b0c0d0e0f1011121314151617",
			plaintext:  "00112233445566778899aabbccddeeff",
			ciphertext: "dda97ca4864cdfe06eaf70a0ec0d7191",
		},
		{
			name:       "AES-256",
			key:        "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
			plaintext:  "00112233445566778899aabbccddeeff",
			ciphertext: "8ea2b7ca516745bfeafc49904b496089",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pt := blockFromHex(t, tc.plaintext)
			ct := blockFromHex(t, tc.ciphertext)

			switch tc.name {
			case "AES-128":
				var key [16]byte
				copy(key[:], unhex(t, tc.key))
				c := NewAes128(key)
				require.True(t, c.EncryptBlock(pt).Equal(ct))
				require.True(t, c.DecryptBlock(ct).Equal(pt))
				require.True(t, c.DecryptBlock(c.EncryptBlock(pt)).Equal(pt))
			case "AES-192":
				var key [24]byte
				copy(key[:], unhex(t, tc.key))
				c := NewAes192(key)
				require.True(t, c.EncryptBlock(pt).Equal(ct))
				require.True(t, c.DecryptBlock(ct).Equal(pt))
			case "AES-256":
				var key [32]byte
				copy(key[:], unhex(t, tc.key))
				c := NewAes256(key)
				require.True(t, c.EncryptBlock(pt).Equal(ct))
				require.True(t, c.DecryptBlock(ct).Equal(pt))
			}
		})
	}
}

func TestKeyExpansionRound10(t *testing.T) {
	var key [16]byte
	copy(key[:], unhex(t, "2b7e151628aed2a6abf7158809cf4f3c"))
	roundKeys := keygen128(key)
	want := blockFromHex(t, "d014f9a8c9ee2589e13f0cc8b6630ca6")
	require.True(t, roundKeys[10].Equal(want))
}

func TestEncryptDecryptRoundTripAllSizes(t *testing.T) {
	pt := blockFromHex(t, "00112233445566778899aabbccddeeff")

	var k128 [16]byte
	copy(k128[:], unhex(t, "000102030405060708090a0b0c0d0e0f"))
	c128 := NewAes128(k128)
	require.True(t, c128.DecryptBlock(c128.EncryptBlock(pt)).Equal(pt))
	require.True(t, c128.EncryptBlock(c128.DecryptBlock(pt)).Equal(pt))

	var k192 [24]byte
	copy(k192[:], unhex(t, "000102030405060708090a0b0c0d0e0f1011121314151617"))
	c192 := NewAes192(k192)
	require.True(t, c192.DecryptBlock(c192.EncryptBlock(pt)).Equal(pt))

	var k256 [32]byte
	copy(k256[:], unhex(t, "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"))
	c256 := NewAes256(k256)
	require.True(t, c256.DecryptBlock(c256.EncryptBlock(pt)).Equal(pt))
}

func TestBoundaryAllZeroAllOnes(t *testing.T) {
	zeroKey := [16]byte{}
	zeroPt := Zero()
	c := NewAes128(zeroKey)
	ct := c.EncryptBlock(zeroPt)
	require.True(t, c.DecryptBlock(ct).Equal(zeroPt))

	onesKey := [16]byte{}
	for i := range onesKey {
		onesKey[i] = 0xff
	}
	cOnes := NewAes128(onesKey)
	ctOnes := cOnes.EncryptBlock(zeroPt)
	require.True(t, cOnes.DecryptBlock(ctOnes).Equal(zeroPt))
}

func TestNewAesFromSliceRejectsBadLength(t *testing.T) {
	_, err := NewAes128EncFromSlice(make([]byte, 15))
	require.Error(t, err)
	var kse KeySizeError
	require.ErrorAs(t, err, &kse)

	_, err = NewAes192EncFromSlice(make([]byte, 10))
	require.Error(t, err)

	_, err = NewAes256EncFromSlice(make([]byte, 31))
	require.Error(t, err)
}

// TestTableAndBitsliceAgree checks that the table-driven and bit-sliced
// software S-box implementations agree on sixteen byte values spread
// across the range (0x00, 0x11, ..., 0xff), and that the two fallback
// backends' round functions agree on a block built from them.
func TestTableAndBitsliceAgree(t *testing.T) {
	var allBytes [16]byte
	for i := range allBytes {
		allBytes[i] = byte(i * 17)
	}
	key := blockFromHex(t, "000102030405060708090a0b0c0d0e0f")

	table := allBytes
	subBytes(&table)
	bitsliced := allBytes
	bitsliceSubBytes(&bitsliced)
	require.Equal(t, table, bitsliced)

	invTable := allBytes
	invSubBytes(&invTable)
	invBitsliced := allBytes
	bitsliceInvSubBytes(&invBitsliced)
	require.Equal(t, invTable, invBitsliced)

	b := LoadAesBlock(&allBytes)
	require.True(t, b.softPreEnc(key).Equal(b.bitslicePreEnc(key)))
	require.True(t, b.softEncLast(key).Equal(b.bitsliceEncLast(key)))
	require.True(t, b.softPreDec(key).Equal(b.bitslicePreDec(key)))
	require.True(t, b.softDecLast(key).Equal(b.bitsliceDecLast(key)))
}

func TestSubBytesIsInvSubBytesInverse(t *testing.T) {
	for a := 0; a < 256; a++ {
		require.Equal(t, byte(a), invSbox[sbox[byte(a)]])
	}
}
