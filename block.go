package aes

import "encoding/binary"

// AesBlock is an opaque 128-bit AES state. It is stored as two big-endian
// 64-bit halves regardless of backend: byte 0 of the canonical
// representation is the most significant byte of hi, byte 15 is the least
// significant byte of lo. Callers never depend on this layout directly
// (the only way to observe the contents is Store / the u64 accessors).
//
// AesBlock values are immutable; every operation below returns a fresh
// value. There is no shared state between blocks and no heap allocation
// anywhere in this type.
type AesBlock struct {
	hi, lo uint64
}

// LoadAesBlock adopts 16 bytes as an AES state, byte 0 at state position
// (0,0) per FIPS-197 Figure 3 (column-major).
func LoadAesBlock(src *[16]byte) AesBlock {
	return AesBlock{
		hi: binary.BigEndian.Uint64(src[0:8]),
		lo: binary.BigEndian.Uint64(src[8:16]),
	}
}

// LoadAesBlockSlice is the slice-accepting equivalent of LoadAesBlock; it
// panics if src has fewer than 16 bytes.
func LoadAesBlockSlice(src []byte) AesBlock {
	return AesBlock{
		hi: binary.BigEndian.Uint64(src[0:8]),
		lo: binary.BigEndian.Uint64(src[8:16]),
	}
}

// FromU64Pair builds a block from two big-endian 64-bit halves: hi is
// bytes 0..7, lo is bytes 8..15.
func FromU64Pair(hi, lo uint64) AesBlock {
	return AesBlock{hi: hi, lo: lo}
}

// Store is the inverse of LoadAesBlock: Store(Load(x)) == x.
func (b AesBlock) Store() [16]byte {
	var dst [16]byte
	binary.BigEndian.PutUint64(dst[0:8], b.hi)
	binary.BigEndian.PutUint64(dst[8:16], b.lo)
	return dst
}

// StoreSlice writes the 16-byte canonical representation into dst, which
// must have length at least 16.
func (b AesBlock) StoreSlice(dst []byte) {
	binary.BigEndian.PutUint64(dst[0:8], b.hi)
	binary.BigEndian.PutUint64(dst[8:16], b.lo)
}

// U64Pair returns the two big-endian 64-bit halves, the inverse of
// FromU64Pair.
func (b AesBlock) U64Pair() (hi, lo uint64) {
	return b.hi, b.lo
}

// Zero returns the all-zero AesBlock.
func Zero() AesBlock {
	return AesBlock{}
}

// IsZero reports whether b is the all-zero block.
func (b AesBlock) IsZero() bool {
	return b.hi == 0 && b.lo == 0
}

// Equal reports bit-equality on the canonical byte representation.
func (b AesBlock) Equal(o AesBlock) bool {
	return b.hi == o.hi && b.lo == o.lo
}

// Xor returns the bitwise XOR of b and k.
func (b AesBlock) Xor(k AesBlock) AesBlock {
	return AesBlock{hi: b.hi ^ k.hi, lo: b.lo ^ k.lo}
}

// And returns the bitwise AND of b and k.
func (b AesBlock) And(k AesBlock) AesBlock {
	return AesBlock{hi: b.hi & k.hi, lo: b.lo & k.lo}
}

// Or returns the bitwise OR of b and k.
func (b AesBlock) Or(k AesBlock) AesBlock {
	return AesBlock{hi: b.hi | k.hi, lo: b.lo | k.lo}
}

// Not returns the bitwise complement of b.
func (b AesBlock) Not() AesBlock {
	return AesBlock{hi: ^b.hi, lo: ^b.lo}
}

// Enc is an alias of PreEnc, retained for symmetry with Dec: both name the
// non-terminal round function of their direction.
func (b AesBlock) Enc(k AesBlock) AesBlock { return b.PreEnc(k) }

// Dec is an alias of PreDec.
func (b AesBlock) Dec(k AesBlock) AesBlock { return b.PreDec(k) }

// ChainEncrypt computes (b ^ keys[0]).Enc(keys[1])...Enc(keys[len(keys)-1]).
// It panics if keys is empty.
func (b AesBlock) ChainEncrypt(keys []AesBlock) AesBlock {
	acc := b.Xor(keys[0])
	for _, k := range keys[1:] {
		acc = acc.Enc(k)
	}
	return acc
}

// ChainDecrypt computes (b ^ keys[0]).Dec(keys[1])...Dec(keys[len(keys)-1]).
// It panics if keys is empty.
func (b AesBlock) ChainDecrypt(keys []AesBlock) AesBlock {
	acc := b.Xor(keys[0])
	for _, k := range keys[1:] {
		acc = acc.Dec(k)
	}
	return acc
}

// ChainEncryptWithLast computes the full forward cipher chain, ending with
// EncLast instead of Enc on the final round key. It panics if len(keys) < 2.
func (b AesBlock) ChainEncryptWithLast(keys []AesBlock) AesBlock {
	acc := b.Xor(keys[0])
	for _, k := range keys[1 : len(keys)-1] {
		acc = acc.Enc(k)
	}
	return acc.EncLast(keys[len(keys)-1])
}

// ChainDecryptWithLast computes the full inverse cipher chain, ending with
// DecLast instead of Dec on the final round key. It panics if len(keys) < 2.
func (b AesBlock) ChainDecryptWithLast(keys []AesBlock) AesBlock {
	acc := b.Xor(keys[0])
	for _, k := range keys[1 : len(keys)-1] {
		acc = acc.Dec(k)
	}
	return acc.DecLast(keys[len(keys)-1])
}
