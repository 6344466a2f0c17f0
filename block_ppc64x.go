//go:build (ppc64 || ppc64le) && gc && !purego

package aes

// ppc64/ppc64le link this backend unconditionally: Go's own crypto/aes
// treats POWER8 vector crypto as the baseline for both GOARCH values
// (see cipher_asm.go's supportsAES), not something probed for at runtime,
// so there is no haveAsm-style capability variable here.

//go:noescape
func vcipher(state, roundKey *[16]byte) [16]byte

//go:noescape
func vcipherlast(state, roundKey *[16]byte) [16]byte

//go:noescape
func vncipher(state, roundKey *[16]byte) [16]byte

//go:noescape
func vncipherlast(state, roundKey *[16]byte) [16]byte

var zeroBlock16PPC [16]byte

// PreEnc performs one forward AES round against round key k. vcipher folds
// ShiftRows/SubBytes/MixColumns/AddRoundKey(k) into a single instruction,
// with k supplied directly as the second operand.
func (b AesBlock) PreEnc(k AesBlock) AesBlock {
	s := b.Store()
	rk := k.Store()
	out := vcipher(&s, &rk)
	return LoadAesBlock(&out)
}

// EncLast performs the final forward AES round against round key k (no
// MixColumns).
func (b AesBlock) EncLast(k AesBlock) AesBlock {
	s := b.Store()
	rk := k.Store()
	out := vcipherlast(&s, &rk)
	return LoadAesBlock(&out)
}

// PreDec performs one inverse AES round against round key k. vncipher
// would XOR its key operand in before InvMixColumns, so it is fed an
// all-zero key and k is XORed in afterwards instead. That gives PreDec the
// same contract as x86 AESDEC (AddRoundKey last), so it expects round keys
// in equivalent-inverse-cipher form, i.e. with IMC applied by
// decRoundKeys.
func (b AesBlock) PreDec(k AesBlock) AesBlock {
	s := b.Store()
	out := vncipher(&s, &zeroBlock16PPC)
	return LoadAesBlock(&out).Xor(k)
}

// DecLast performs the final inverse AES round against round key k (no
// InvMixColumns).
func (b AesBlock) DecLast(k AesBlock) AesBlock {
	s := b.Store()
	rk := k.Store()
	out := vncipherlast(&s, &rk)
	return LoadAesBlock(&out)
}

// IMC applies InvMixColumns to b, composed from vcipherlast (SubBytes,
// ShiftRows, AddRoundKey(0)) followed by vncipher (InvSubBytes,
// InvShiftRows, InvMixColumns, AddRoundKey(0)) against an all-zero key,
// which cancels everything but a single MixColumns/InvMixColumns round
// trip and leaves InvMixColumns(b).
func (b AesBlock) IMC() AesBlock {
	s := b.Store()
	mid := vcipherlast(&s, &zeroBlock16PPC)
	out := vncipher(&mid, &zeroBlock16PPC)
	return LoadAesBlock(&out)
}
