package aes

import (
	"encoding/binary"
	"fmt"
)

// KeySizeError reports that a byte slice handed to one of the slice-based
// key constructors does not match any supported AES key length. The
// fixed-size-array constructors (NewAes128Enc et al.) cannot fail and
// never return this: it only arises from the slice-accepting convenience
// wrappers.
type KeySizeError int

func (e KeySizeError) Error() string {
	return fmt.Sprintf("aes: invalid key size %d", int(e))
}

// rcon holds the round constants used by key expansion, enough for the
// 14-round AES-256 schedule.
var rcon = [15]byte{
	0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80,
	0x1b, 0x36, 0x6c, 0xd8, 0xab, 0x4d, 0x9a,
}

// subWord substitutes each byte of w through the AES S-box. This is the
// key-schedule's own reuse of the S-box, carried as the table built in
// soft_table.go regardless of which backend is handling the bulk block
// algebra: key expansion happens once per key and is not on the hot path
// the backend dispatch exists to speed up.
func subWord(w uint32) uint32 {
	return uint32(sbox[byte(w>>24)])<<24 |
		uint32(sbox[byte(w>>16)])<<16 |
		uint32(sbox[byte(w>>8)])<<8 |
		uint32(sbox[byte(w)])
}

func rotWord(w uint32) uint32 {
	return w<<8 | w>>24
}

// expandKeyWords runs the FIPS-197 5.2 key expansion, producing
// totalWords 32-bit words from an nk-word (4*nk-byte) key.
func expandKeyWords(key []byte, nk, totalWords int) []uint32 {
	w := make([]uint32, totalWords)
	for i := 0; i < nk; i++ {
		w[i] = binary.BigEndian.Uint32(key[4*i : 4*i+4])
	}
	for i := nk; i < totalWords; i++ {
		temp := w[i-1]
		switch {
		case i%nk == 0:
			temp = subWord(rotWord(temp)) ^ uint32(rcon[i/nk-1])<<24
		case nk > 6 && i%nk == 4:
			temp = subWord(temp)
		}
		w[i] = w[i-nk] ^ temp
	}
	return w
}

func wordsToRoundKeys(w []uint32) []AesBlock {
	blocks := make([]AesBlock, len(w)/4)
	for i := range blocks {
		var buf [16]byte
		binary.BigEndian.PutUint32(buf[0:4], w[4*i])
		binary.BigEndian.PutUint32(buf[4:8], w[4*i+1])
		binary.BigEndian.PutUint32(buf[8:12], w[4*i+2])
		binary.BigEndian.PutUint32(buf[12:16], w[4*i+3])
		blocks[i] = LoadAesBlock(&buf)
	}
	return blocks
}

func keygen128(key [16]byte) [11]AesBlock {
	var out [11]AesBlock
	copy(out[:], wordsToRoundKeys(expandKeyWords(key[:], 4, 44)))
	return out
}

func keygen192(key [24]byte) [13]AesBlock {
	var out [13]AesBlock
	copy(out[:], wordsToRoundKeys(expandKeyWords(key[:], 6, 52)))
	return out
}

func keygen256(key [32]byte) [15]AesBlock {
	var out [15]AesBlock
	copy(out[:], wordsToRoundKeys(expandKeyWords(key[:], 8, 60)))
	return out
}

// decRoundKeys builds the equivalent-inverse-cipher decryption schedule
// from a forward encryption schedule: the round-key blocks are reversed,
// and every interior key (not the first or last) has InvMixColumns applied
// so pre_dec/dec_last can be used directly in place of the textbook
// inverse cipher's separate InvMixColumns-of-state step.
func decRoundKeys(enc []AesBlock) []AesBlock {
	n := len(enc)
	dec := make([]AesBlock, n)
	for i := range dec {
		dec[i] = enc[n-1-i]
	}
	for i := 1; i < n-1; i++ {
		dec[i] = dec[i].IMC()
	}
	return dec
}

// encRoundKeys is the inverse of decRoundKeys: recovers a forward schedule
// from an equivalent-inverse one. mixColumns here is the portable forward
// MixColumns transform from soft_table.go: the block algebra's public
// contract exposes only imc (InvMixColumns), never its forward
// counterpart, since no backend needs mc on the hot encrypt/decrypt path;
// recovering it here is a key-schedule-only operation.
func encRoundKeys(dec []AesBlock) []AesBlock {
	n := len(dec)
	enc := make([]AesBlock, n)
	for i := range enc {
		enc[i] = dec[n-1-i]
	}
	for i := 1; i < n-1; i++ {
		s := enc[i].Store()
		mixColumns(&s)
		enc[i] = LoadAesBlock(&s)
	}
	return enc
}

// keyFromSlice16 (and keyFromSlice24/keyFromSlice32 below) copies a key
// slice into a fixed-size array, returning a KeySizeError if the length
// does not match the array length exactly.
func keyFromSlice16(key []byte) (out [16]byte, err error) {
	if len(key) != 16 {
		return out, KeySizeError(len(key))
	}
	copy(out[:], key)
	return out, nil
}

func keyFromSlice24(key []byte) (out [24]byte, err error) {
	if len(key) != 24 {
		return out, KeySizeError(len(key))
	}
	copy(out[:], key)
	return out, nil
}

func keyFromSlice32(key []byte) (out [32]byte, err error) {
	if len(key) != 32 {
		return out, KeySizeError(len(key))
	}
	copy(out[:], key)
	return out, nil
}
