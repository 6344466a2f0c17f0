package aes

// Portable constant-time bit-sliced software backend, opted into via the
// constanttime build tag in place of the table-driven fallback above. Only
// SubBytes/InvSubBytes are bit-sliced: that is the step with a
// secret-dependent table lookup in the naive implementation, and therefore
// the one with a cache-timing side channel to close. ShiftRows and
// MixColumns are pure bit permutations / fixed linear transforms with no
// data-dependent memory access, so the same byte-level routines used by
// the table backend are reused unchanged here.
//
// Each AesBlock half (hi, lo) packs 8 independent one-byte lanes; every
// helper below is a lane-wise formula over those 8 lanes at once, applied
// identically to both halves to process all 16 state bytes. Shifts never
// exceed 7 bits, so no lane ever borrows a bit from its neighbor.

func rep64(x byte) uint64 {
	return 0x0101010101010101 * uint64(x)
}

func ror1_64(x uint64) uint64 {
	return ((x & rep64(0xfe)) >> 1) | ((x & rep64(0x01)) << 7)
}

func swap2_64(x uint64) uint64 {
	return ((x & rep64(0xcc)) >> 2) | ((x & rep64(0x33)) << 2)
}

func stepA64(a, b, mask uint64) uint64 {
	x := a & b
	return x ^ ((x & mask) >> 1) ^ ((((a << 1) & b) ^ ((b << 1) & a)) & mask)
}

func stepB64(a, mask uint64) uint64 {
	x := a & mask
	return (x | (x >> 1)) ^ ((a << 1) & mask)
}

// subbytes64 is the bit-sliced AES S-box applied to 8 packed byte lanes.
func subbytes64(x uint64) uint64 {
	y := ror1_64(x)
	x = (x & rep64(0xdd)) ^ (y & rep64(0x57))
	y = ror1_64(y)
	x = x ^ (y & rep64(0x1c))
	y = ror1_64(y)
	x = x ^ (y & rep64(0x4a))
	y = ror1_64(y)
	x = x ^ (y & rep64(0x42))
	y = ror1_64(y)
	x = x ^ (y & rep64(0x64))
	y = ror1_64(y)
	x = x ^ (y & rep64(0xe0))

	a1 := x ^ ((x & rep64(0xf0)) >> 4)
	a2 := swap2_64(x)
	a3 := stepA64(x, a1, rep64(0xaa))
	a4 := stepA64(a1, a2, rep64(0xaa))
	a5 := (a3 & rep64(0xcc)) >> 2
	a3 = a3 ^ (((a4 << 2) ^ a4) & rep64(0xcc))
	a4 = stepB64(a5, rep64(0x22))
	a3 = a3 ^ a4
	a5 = stepB64(a3, rep64(0xa0))
	a4 = a5 & rep64(0xc0)
	a6 := a4 >> 2
	a4 = a4 ^ ((a5 << 2) & rep64(0xc0))
	a5 = stepB64(a6, rep64(0x20))
	a4 = a4 | a5
	a3 = (a3 ^ (a4 >> 4)) & rep64(0x0f)
	a2 = a3 ^ ((a3 & rep64(0x0c)) >> 2)
	a4 = stepA64(a2, a3, rep64(0x0a))
	a5 = stepB64(a4, rep64(0x08))
	a4 = (a4 ^ (a5 >> 2)) & rep64(0x03)
	a4 = a4 ^ ((a4 & rep64(0x02)) >> 1)
	a4 = a4 | (a4 << 2)
	a3 = stepA64(a2, a4, rep64(0x0a))
	a3 = a3 | (a3 << 4)
	a2 = swap2_64(a1)
	x = stepA64(a1, a3, rep64(0xaa))
	a4 = stepA64(a2, a3, rep64(0xaa))
	a5 = (x & rep64(0xcc)) >> 2
	x = x ^ (((a4 << 2) ^ a4) & rep64(0xcc))
	a4 = stepB64(a5, rep64(0x22))
	x = x ^ a4

	y = ror1_64(x)
	x = (x & rep64(0x39)) ^ (y & rep64(0x3f))
	y = ((y & rep64(0xfc)) >> 2) | ((y & rep64(0x03)) << 6)
	x = x ^ (y & rep64(0x97))
	y = ror1_64(y)
	x = x ^ (y & rep64(0x9b))
	y = ror1_64(y)
	x = x ^ (y & rep64(0x3c))
	y = ror1_64(y)
	x = x ^ (y & rep64(0xdd))
	y = ror1_64(y)
	x = x ^ (y & rep64(0x72))

	return x ^ rep64(0x63)
}

// invsubbytes64 is the bit-sliced inverse AES S-box applied to 8 packed
// byte lanes.
func invsubbytes64(x uint64) uint64 {
	x = x ^ rep64(0x63)
	y := ror1_64(x)
	x = (x & rep64(0xfd)) ^ (y & rep64(0x5e))
	y = ror1_64(y)
	x = x ^ (y & rep64(0xf3))
	y = ror1_64(y)
	x = x ^ (y & rep64(0xf5))
	y = ror1_64(y)
	x = x ^ (y & rep64(0x78))
	y = ror1_64(y)
	x = x ^ (y & rep64(0x77))
	y = ror1_64(y)
	x = x ^ (y & rep64(0x15))
	y = ror1_64(y)
	x = x ^ (y & rep64(0xa5))

	a1 := x ^ ((x & rep64(0xf0)) >> 4)
	a2 := swap2_64(x)
	a3 := stepA64(x, a1, rep64(0xaa))
	a4 := stepA64(a1, a2, rep64(0xaa))
	a5 := (a3 & rep64(0xcc)) >> 2
	a3 = a3 ^ (((a4 << 2) ^ a4) & rep64(0xcc))
	a4 = stepB64(a5, rep64(0x22))
	a3 = a3 ^ a4
	a5 = stepB64(a3, rep64(0xa0))
	a4 = a5 & rep64(0xc0)
	a6 := a4 >> 2
	a4 = a4 ^ ((a5 << 2) & rep64(0xc0))
	a5 = stepB64(a6, rep64(0x20))
	a4 = a4 | a5
	a3 = (a3 ^ (a4 >> 4)) & rep64(0x0f)
	a2 = a3 ^ ((a3 & rep64(0x0c)) >> 2)
	a4 = stepA64(a2, a3, rep64(0x0a))
	a5 = stepB64(a4, rep64(0x08))
	a4 = (a4 ^ (a5 >> 2)) & rep64(0x03)
	a4 = a4 ^ ((a4 & rep64(0x02)) >> 1)
	a4 = a4 | (a4 << 2)
	a3 = stepA64(a2, a4, rep64(0x0a))
	a3 = a3 | (a3 << 4)
	a2 = swap2_64(a1)
	x = stepA64(a1, a3, rep64(0xaa))
	a4 = stepA64(a2, a3, rep64(0xaa))
	a5 = (x & rep64(0xcc)) >> 2
	x = x ^ (((a4 << 2) ^ a4) & rep64(0xcc))
	a4 = stepB64(a5, rep64(0x22))
	x = x ^ a4

	y = ror1_64(x)
	x = (x & rep64(0xb5)) ^ (y & rep64(0x40))
	y = ror1_64(y)
	x = x ^ (y & rep64(0x80))
	y = ror1_64(y)
	x = x ^ (y & rep64(0x16))
	y = ror1_64(y)
	x = x ^ (y & rep64(0xeb))
	y = ror1_64(y)
	x = x ^ (y & rep64(0x97))
	y = ror1_64(y)
	x = x ^ (y & rep64(0xfb))
	y = ror1_64(y)

	return x ^ (y & rep64(0x7d))
}

func bitsliceSubBytes(s *[16]byte) {
	hi, lo := subbytes64(beBytesToU64(s[0:8])), subbytes64(beBytesToU64(s[8:16]))
	u64ToBEBytes(s[0:8], hi)
	u64ToBEBytes(s[8:16], lo)
}

func bitsliceInvSubBytes(s *[16]byte) {
	hi, lo := invsubbytes64(beBytesToU64(s[0:8])), invsubbytes64(beBytesToU64(s[8:16]))
	u64ToBEBytes(s[0:8], hi)
	u64ToBEBytes(s[8:16], lo)
}

func beBytesToU64(b []byte) uint64 {
	return uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
		uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])
}

func u64ToBEBytes(dst []byte, v uint64) {
	dst[0] = byte(v >> 56)
	dst[1] = byte(v >> 48)
	dst[2] = byte(v >> 40)
	dst[3] = byte(v >> 32)
	dst[4] = byte(v >> 24)
	dst[5] = byte(v >> 16)
	dst[6] = byte(v >> 8)
	dst[7] = byte(v)
}

func (b AesBlock) bitslicePreEnc(k AesBlock) AesBlock {
	s := b.Store()
	bitsliceSubBytes(&s)
	shiftRows(&s)
	mixColumns(&s)
	xorBytes(&s, k.Store())
	return LoadAesBlock(&s)
}

func (b AesBlock) bitsliceEncLast(k AesBlock) AesBlock {
	s := b.Store()
	bitsliceSubBytes(&s)
	shiftRows(&s)
	xorBytes(&s, k.Store())
	return LoadAesBlock(&s)
}

func (b AesBlock) bitslicePreDec(k AesBlock) AesBlock {
	s := b.Store()
	bitsliceInvSubBytes(&s)
	invShiftRows(&s)
	invMixColumns(&s)
	xorBytes(&s, k.Store())
	return LoadAesBlock(&s)
}

func (b AesBlock) bitsliceDecLast(k AesBlock) AesBlock {
	s := b.Store()
	bitsliceInvSubBytes(&s)
	invShiftRows(&s)
	xorBytes(&s, k.Store())
	return LoadAesBlock(&s)
}

func (b AesBlock) bitsliceIMC() AesBlock {
	s := b.Store()
	invMixColumns(&s)
	return LoadAesBlock(&s)
}
