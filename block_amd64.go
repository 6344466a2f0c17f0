//go:build amd64 && gc && !purego

package aes

import "golang.org/x/sys/cpu"

var haveAESNI = cpu.X86.HasAES && cpu.X86.HasSSE41

//go:noescape
func aesenc(state, roundKey *[16]byte) [16]byte

//go:noescape
func aesenclast(state, roundKey *[16]byte) [16]byte

//go:noescape
func aesdec(state, roundKey *[16]byte) [16]byte

//go:noescape
func aesdeclast(state, roundKey *[16]byte) [16]byte

//go:noescape
func aesimc(state *[16]byte) [16]byte

// PreEnc performs one forward AES round (ShiftRows, SubBytes, MixColumns,
// AddRoundKey) against round key k.
func (b AesBlock) PreEnc(k AesBlock) AesBlock {
	if haveAESNI {
		s := b.Store()
		rk := k.Store()
		out := aesenc(&s, &rk)
		return LoadAesBlock(&out)
	}
	return fallbackPreEnc(b, k)
}

// EncLast performs the final forward AES round (ShiftRows, SubBytes,
// AddRoundKey, no MixColumns) against round key k.
func (b AesBlock) EncLast(k AesBlock) AesBlock {
	if haveAESNI {
		s := b.Store()
		rk := k.Store()
		out := aesenclast(&s, &rk)
		return LoadAesBlock(&out)
	}
	return fallbackEncLast(b, k)
}

// PreDec performs one inverse AES round (InvShiftRows, InvSubBytes,
// InvMixColumns, AddRoundKey) against round key k.
func (b AesBlock) PreDec(k AesBlock) AesBlock {
	if haveAESNI {
		s := b.Store()
		rk := k.Store()
		out := aesdec(&s, &rk)
		return LoadAesBlock(&out)
	}
	return fallbackPreDec(b, k)
}

// DecLast performs the final inverse AES round (InvShiftRows, InvSubBytes,
// AddRoundKey, no InvMixColumns) against round key k.
func (b AesBlock) DecLast(k AesBlock) AesBlock {
	if haveAESNI {
		s := b.Store()
		rk := k.Store()
		out := aesdeclast(&s, &rk)
		return LoadAesBlock(&out)
	}
	return fallbackDecLast(b, k)
}

// IMC applies InvMixColumns to b, used to turn a forward round key into its
// equivalent-inverse-cipher form.
func (b AesBlock) IMC() AesBlock {
	if haveAESNI {
		s := b.Store()
		out := aesimc(&s)
		return LoadAesBlock(&out)
	}
	return fallbackIMC(b)
}
