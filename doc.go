// Package aes implements the FIPS-197 Rijndael block primitive for
// 128/192/256-bit keys operating on 128-bit blocks, in raw single-block
// (ECB) form.
//
// The package exposes a small opaque block type, AesBlock, and its two-
// and four-lane vector siblings AesBlockX2 and AesBlockX4, plus the
// underlying block algebra (xor, the forward and inverse AES round
// functions, and inverse MixColumns) that higher-level cipher modes (CTR,
// GCM, CBC, XTS and the rest) compose into real ciphers. This package
// does not implement any of those modes, nor authenticated encryption,
// padding, or IV handling: it is the leaf primitive they are built from.
//
// Bit-identical semantics are guaranteed across every backend this module
// ships: x86 AES-NI, AArch64/ARMv8 crypto extension, POWER8 vector crypto,
// RISC-V Zkne/Zknd (opt-in, see the riscvzkn build tag), and a portable
// table-driven software fallback (with an opt-in constant-time bit-sliced
// fallback via the constanttime build tag). Which architecture's backend
// files are linked is decided at build time by GOARCH and build tags. On
// amd64 and arm64 (without purego) the final choice is not made at build
// time: a one-time CPU feature check at package initialization picks
// between the hardware instructions and the software fallback. See Backend
// and ActiveBackend in capability.go.
package aes
