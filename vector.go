package aes

// AesBlockX2 and AesBlockX4 are ×2/×4 lane vectors of AesBlock. No backend
// wired into this build exposes a native two- or four-wide AES vector
// instruction (x86 VAES and AVX-512 VAES both require assembly this module
// does not ship, see DESIGN.md), so both types are represented as tuples
// of the scalar AesBlock, per spec's vector-synthesis rule: every lane-wise
// operation is simply the pair/quadruple of the operation on each half.
// This is a correct, spec-sanctioned tier, not a degraded one.

// AesBlockX2 holds two independent AES lanes.
type AesBlockX2 struct {
	Lo, Hi AesBlock
}

// AesBlockX4 holds four independent AES lanes, represented as a pair of
// AesBlockX2 per the same synthesis rule applied one level up.
type AesBlockX4 struct {
	Lo, Hi AesBlockX2
}

// NewAesBlockX2 builds a ×2 vector from two scalar lanes.
func NewAesBlockX2(lo, hi AesBlock) AesBlockX2 {
	return AesBlockX2{Lo: lo, Hi: hi}
}

// Broadcast2 replicates a single block across both lanes.
func Broadcast2(b AesBlock) AesBlockX2 {
	return AesBlockX2{Lo: b, Hi: b}
}

// Blocks returns the two scalar lanes.
func (v AesBlockX2) Blocks() (lo, hi AesBlock) {
	return v.Lo, v.Hi
}

// LoadAesBlockX2 adopts 32 bytes as two consecutive AES states.
func LoadAesBlockX2(src *[32]byte) AesBlockX2 {
	var lo, hi [16]byte
	copy(lo[:], src[0:16])
	copy(hi[:], src[16:32])
	return AesBlockX2{Lo: LoadAesBlock(&lo), Hi: LoadAesBlock(&hi)}
}

// Store is the inverse of LoadAesBlockX2.
func (v AesBlockX2) Store() [32]byte {
	var dst [32]byte
	lo := v.Lo.Store()
	hi := v.Hi.Store()
	copy(dst[0:16], lo[:])
	copy(dst[16:32], hi[:])
	return dst
}

func (v AesBlockX2) IsZero() bool { return v.Lo.IsZero() && v.Hi.IsZero() }

func (v AesBlockX2) Equal(o AesBlockX2) bool {
	return v.Lo.Equal(o.Lo) && v.Hi.Equal(o.Hi)
}

func (v AesBlockX2) Xor(k AesBlockX2) AesBlockX2 {
	return AesBlockX2{Lo: v.Lo.Xor(k.Lo), Hi: v.Hi.Xor(k.Hi)}
}

func (v AesBlockX2) And(k AesBlockX2) AesBlockX2 {
	return AesBlockX2{Lo: v.Lo.And(k.Lo), Hi: v.Hi.And(k.Hi)}
}

func (v AesBlockX2) Or(k AesBlockX2) AesBlockX2 {
	return AesBlockX2{Lo: v.Lo.Or(k.Lo), Hi: v.Hi.Or(k.Hi)}
}

func (v AesBlockX2) Not() AesBlockX2 {
	return AesBlockX2{Lo: v.Lo.Not(), Hi: v.Hi.Not()}
}

func (v AesBlockX2) PreEnc(k AesBlockX2) AesBlockX2 {
	return AesBlockX2{Lo: v.Lo.PreEnc(k.Lo), Hi: v.Hi.PreEnc(k.Hi)}
}

func (v AesBlockX2) Enc(k AesBlockX2) AesBlockX2 { return v.PreEnc(k) }

func (v AesBlockX2) EncLast(k AesBlockX2) AesBlockX2 {
	return AesBlockX2{Lo: v.Lo.EncLast(k.Lo), Hi: v.Hi.EncLast(k.Hi)}
}

func (v AesBlockX2) PreDec(k AesBlockX2) AesBlockX2 {
	return AesBlockX2{Lo: v.Lo.PreDec(k.Lo), Hi: v.Hi.PreDec(k.Hi)}
}

func (v AesBlockX2) Dec(k AesBlockX2) AesBlockX2 { return v.PreDec(k) }

func (v AesBlockX2) DecLast(k AesBlockX2) AesBlockX2 {
	return AesBlockX2{Lo: v.Lo.DecLast(k.Lo), Hi: v.Hi.DecLast(k.Hi)}
}

func (v AesBlockX2) IMC() AesBlockX2 {
	return AesBlockX2{Lo: v.Lo.IMC(), Hi: v.Hi.IMC()}
}

// ChainEncryptWithLast runs the full forward chain lane-wise. keys[i] is an
// AesBlockX2 broadcasting round key i to both lanes (or carrying distinct
// per-lane keys, for modes that need that).
func (v AesBlockX2) ChainEncryptWithLast(keys []AesBlockX2) AesBlockX2 {
	acc := v.Xor(keys[0])
	for _, k := range keys[1 : len(keys)-1] {
		acc = acc.Enc(k)
	}
	return acc.EncLast(keys[len(keys)-1])
}

// ChainDecryptWithLast runs the full inverse chain lane-wise.
func (v AesBlockX2) ChainDecryptWithLast(keys []AesBlockX2) AesBlockX2 {
	acc := v.Xor(keys[0])
	for _, k := range keys[1 : len(keys)-1] {
		acc = acc.Dec(k)
	}
	return acc.DecLast(keys[len(keys)-1])
}

// NewAesBlockX4 builds a ×4 vector from four scalar lanes.
func NewAesBlockX4(b0, b1, b2, b3 AesBlock) AesBlockX4 {
	return AesBlockX4{Lo: NewAesBlockX2(b0, b1), Hi: NewAesBlockX2(b2, b3)}
}

// Broadcast4 replicates a single block across all four lanes.
func Broadcast4(b AesBlock) AesBlockX4 {
	return AesBlockX4{Lo: Broadcast2(b), Hi: Broadcast2(b)}
}

// Blocks returns the four scalar lanes in order.
func (v AesBlockX4) Blocks() (b0, b1, b2, b3 AesBlock) {
	b0, b1 = v.Lo.Blocks()
	b2, b3 = v.Hi.Blocks()
	return
}

// LoadAesBlockX4 adopts 64 bytes as four consecutive AES states.
func LoadAesBlockX4(src *[64]byte) AesBlockX4 {
	var lo, hi [32]byte
	copy(lo[:], src[0:32])
	copy(hi[:], src[32:64])
	return AesBlockX4{Lo: LoadAesBlockX2(&lo), Hi: LoadAesBlockX2(&hi)}
}

// Store is the inverse of LoadAesBlockX4.
func (v AesBlockX4) Store() [64]byte {
	var dst [64]byte
	lo := v.Lo.Store()
	hi := v.Hi.Store()
	copy(dst[0:32], lo[:])
	copy(dst[32:64], hi[:])
	return dst
}

func (v AesBlockX4) IsZero() bool { return v.Lo.IsZero() && v.Hi.IsZero() }

func (v AesBlockX4) Equal(o AesBlockX4) bool {
	return v.Lo.Equal(o.Lo) && v.Hi.Equal(o.Hi)
}

func (v AesBlockX4) Xor(k AesBlockX4) AesBlockX4 {
	return AesBlockX4{Lo: v.Lo.Xor(k.Lo), Hi: v.Hi.Xor(k.Hi)}
}

func (v AesBlockX4) And(k AesBlockX4) AesBlockX4 {
	return AesBlockX4{Lo: v.Lo.And(k.Lo), Hi: v.Hi.And(k.Hi)}
}

func (v AesBlockX4) Or(k AesBlockX4) AesBlockX4 {
	return AesBlockX4{Lo: v.Lo.Or(k.Lo), Hi: v.Hi.Or(k.Hi)}
}

func (v AesBlockX4) Not() AesBlockX4 {
	return AesBlockX4{Lo: v.Lo.Not(), Hi: v.Hi.Not()}
}

func (v AesBlockX4) PreEnc(k AesBlockX4) AesBlockX4 {
	return AesBlockX4{Lo: v.Lo.PreEnc(k.Lo), Hi: v.Hi.PreEnc(k.Hi)}
}

func (v AesBlockX4) Enc(k AesBlockX4) AesBlockX4 { return v.PreEnc(k) }

func (v AesBlockX4) EncLast(k AesBlockX4) AesBlockX4 {
	return AesBlockX4{Lo: v.Lo.EncLast(k.Lo), Hi: v.Hi.EncLast(k.Hi)}
}

func (v AesBlockX4) PreDec(k AesBlockX4) AesBlockX4 {
	return AesBlockX4{Lo: v.Lo.PreDec(k.Lo), Hi: v.Hi.PreDec(k.Hi)}
}

func (v AesBlockX4) Dec(k AesBlockX4) AesBlockX4 { return v.PreDec(k) }

func (v AesBlockX4) DecLast(k AesBlockX4) AesBlockX4 {
	return AesBlockX4{Lo: v.Lo.DecLast(k.Lo), Hi: v.Hi.DecLast(k.Hi)}
}

func (v AesBlockX4) IMC() AesBlockX4 {
	return AesBlockX4{Lo: v.Lo.IMC(), Hi: v.Hi.IMC()}
}

// ChainEncryptWithLast runs the full forward chain lane-wise across all
// four lanes.
func (v AesBlockX4) ChainEncryptWithLast(keys []AesBlockX4) AesBlockX4 {
	acc := v.Xor(keys[0])
	for _, k := range keys[1 : len(keys)-1] {
		acc = acc.Enc(k)
	}
	return acc.EncLast(keys[len(keys)-1])
}

// ChainDecryptWithLast runs the full inverse chain lane-wise across all
// four lanes.
func (v AesBlockX4) ChainDecryptWithLast(keys []AesBlockX4) AesBlockX4 {
	acc := v.Xor(keys[0])
	for _, k := range keys[1 : len(keys)-1] {
		acc = acc.Dec(k)
	}
	return acc.DecLast(keys[len(keys)-1])
}
