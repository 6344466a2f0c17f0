//go:build riscv64 && gc && !purego && riscvzkn

package aes

// riscvzkn is an opt-in build tag rather than an auto-detected one: unlike
// amd64/arm64, neither the Go toolchain nor the pinned golang.org/x/sys/cpu
// version exposes a runtime check for the RISC-V scalar cryptography
// extension (Zkne/Zknd), so the builder must assert the target core has it,
// the same way this package already asks for an explicit opt-in (the
// constanttime tag) wherever automatic detection isn't available.

// aes64esm/aes64es/aes64dsm/aes64ds/aes64im wrap the RISC-V Zkne/Zknd
// scalar crypto instructions. The Go assembler has no mnemonics for this
// extension, so block_riscv64.s encodes them as raw instruction words, the
// same technique Go's own crypto packages use for instructions the
// assembler doesn't yet recognize (e.g. crypto/sha256's KIMD on s390x).

//go:noescape
func aes64esm(rs1, rs2 uint64) uint64

//go:noescape
func aes64es(rs1, rs2 uint64) uint64

//go:noescape
func aes64dsm(rs1, rs2 uint64) uint64

//go:noescape
func aes64ds(rs1, rs2 uint64) uint64

//go:noescape
func aes64im(rs1 uint64) uint64

// PreEnc performs one forward AES round against round key k.
func (b AesBlock) PreEnc(k AesBlock) AesBlock {
	return AesBlock{hi: aes64esm(b.hi, b.lo), lo: aes64esm(b.lo, b.hi)}.Xor(k)
}

// EncLast performs the final forward AES round against round key k (no
// MixColumns).
func (b AesBlock) EncLast(k AesBlock) AesBlock {
	return AesBlock{hi: aes64es(b.hi, b.lo), lo: aes64es(b.lo, b.hi)}.Xor(k)
}

// PreDec performs one inverse AES round against round key k.
func (b AesBlock) PreDec(k AesBlock) AesBlock {
	return AesBlock{hi: aes64dsm(b.hi, b.lo), lo: aes64dsm(b.lo, b.hi)}.Xor(k)
}

// DecLast performs the final inverse AES round against round key k (no
// InvMixColumns).
func (b AesBlock) DecLast(k AesBlock) AesBlock {
	return AesBlock{hi: aes64ds(b.hi, b.lo), lo: aes64ds(b.lo, b.hi)}.Xor(k)
}

// IMC applies InvMixColumns to b.
func (b AesBlock) IMC() AesBlock {
	return AesBlock{hi: aes64im(b.hi), lo: aes64im(b.lo)}
}
