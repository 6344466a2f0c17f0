//go:build (!(amd64 && gc) && !(arm64 && gc) && !((ppc64 || ppc64le) && gc) && !(riscv64 && gc && riscvzkn)) || purego

package aes

// On platforms with no wired hardware backend (or under the purego tag,
// which forces this path even on amd64/arm64/ppc64x/riscv64+riscvzkn), the
// block algebra's round functions route straight to software: table-driven
// by default, or bit-sliced constant-time under the constanttime tag.

func (b AesBlock) PreEnc(k AesBlock) AesBlock   { return fallbackPreEnc(b, k) }
func (b AesBlock) EncLast(k AesBlock) AesBlock  { return fallbackEncLast(b, k) }
func (b AesBlock) PreDec(k AesBlock) AesBlock   { return fallbackPreDec(b, k) }
func (b AesBlock) DecLast(k AesBlock) AesBlock  { return fallbackDecLast(b, k) }
func (b AesBlock) IMC() AesBlock                { return fallbackIMC(b) }
