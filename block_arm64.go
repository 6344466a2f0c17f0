//go:build arm64 && gc && !purego

package aes

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// cpu.ARM64.HasAES has historically read false on darwin/arm64 (the feature
// bit isn't reported the way the detection code expects), which would push
// every Apple Silicon build onto the software path despite the hardware
// crypto extension always being present on that platform. Short-circuit on
// GOOS=darwin the same way.
var haveNEONAES = runtime.GOOS == "darwin" || cpu.ARM64.HasAES

//go:noescape
func aese(state, roundKey *[16]byte) [16]byte

//go:noescape
func aesd(state, roundKey *[16]byte) [16]byte

//go:noescape
func aesmc(state *[16]byte) [16]byte

//go:noescape
func aesimcARM(state *[16]byte) [16]byte

var zeroBlock16 [16]byte

// PreEnc performs one forward AES round against round key k. The NEON AESE
// instruction folds AddRoundKey into its SubBytes/ShiftRows step, so the
// round key is withheld from aese (fed zero) and XORed in afterward, to
// match the aesenc contract (AddRoundKey happens last).
func (b AesBlock) PreEnc(k AesBlock) AesBlock {
	if haveNEONAES {
		s := b.Store()
		sub := aese(&s, &zeroBlock16)
		mixed := aesmc(&sub)
		return LoadAesBlock(&mixed).Xor(k)
	}
	return fallbackPreEnc(b, k)
}

// EncLast performs the final forward AES round against round key k (no
// MixColumns).
func (b AesBlock) EncLast(k AesBlock) AesBlock {
	if haveNEONAES {
		s := b.Store()
		sub := aese(&s, &zeroBlock16)
		return LoadAesBlock(&sub).Xor(k)
	}
	return fallbackEncLast(b, k)
}

// PreDec performs one inverse AES round against round key k, using the
// equivalent-inverse cipher.
func (b AesBlock) PreDec(k AesBlock) AesBlock {
	if haveNEONAES {
		s := b.Store()
		sub := aesd(&s, &zeroBlock16)
		mixed := aesimcARM(&sub)
		return LoadAesBlock(&mixed).Xor(k)
	}
	return fallbackPreDec(b, k)
}

// DecLast performs the final inverse AES round against round key k (no
// InvMixColumns).
func (b AesBlock) DecLast(k AesBlock) AesBlock {
	if haveNEONAES {
		s := b.Store()
		sub := aesd(&s, &zeroBlock16)
		return LoadAesBlock(&sub).Xor(k)
	}
	return fallbackDecLast(b, k)
}

// IMC applies InvMixColumns to b.
func (b AesBlock) IMC() AesBlock {
	if haveNEONAES {
		s := b.Store()
		out := aesimcARM(&s)
		return LoadAesBlock(&out)
	}
	return fallbackIMC(b)
}
