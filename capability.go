package aes

// Backend identifies which block-algebra implementation a build of this
// package links against. Exactly one is active in any given binary; it is
// fixed at compile time by GOARCH plus the purego/constanttime/riscvzkn
// build tags, except for the runtime bit amd64 and arm64 can't resolve at
// compile time (whether the executing core actually has AES-NI or the
// NEON crypto extension, as opposed to merely being amd64/arm64).
type Backend int

const (
	// BackendSoftwareTable is the portable table-driven software backend:
	// used when no hardware backend is available (or the purego tag forces
	// software) and the constanttime tag is absent.
	BackendSoftwareTable Backend = iota
	// BackendSoftwareBitslice is the portable constant-time bit-sliced
	// software backend, linked under the constanttime tag on platforms with
	// no wired hardware backend (or under purego+constanttime together).
	BackendSoftwareBitslice
	// BackendAESNI is the amd64 AES-NI backend.
	BackendAESNI
	// BackendNEON is the AArch64/ARMv8 cryptographic extension backend.
	BackendNEON
	// BackendPOWER8 is the ppc64/ppc64le POWER8 vector crypto backend
	// (vcipher/vncipher). Linked unconditionally on those GOARCH values,
	// matching Go's own crypto/aes policy of treating POWER8 as the
	// ppc64/ppc64le baseline rather than probing for it at runtime.
	BackendPOWER8
	// BackendRISCV is the riscv64 Zkne/Zknd scalar cryptography backend.
	// Linked only under the opt-in riscvzkn build tag: unlike the other
	// hardware backends, neither the toolchain nor golang.org/x/sys/cpu
	// can confirm the extension is present on a given riscv64 core.
	BackendRISCV
)

// String names a Backend for diagnostics.
func (b Backend) String() string {
	switch b {
	case BackendSoftwareTable:
		return "software-table"
	case BackendSoftwareBitslice:
		return "software-bitslice"
	case BackendAESNI:
		return "aes-ni"
	case BackendNEON:
		return "neon-crypto"
	case BackendPOWER8:
		return "power8-crypto"
	case BackendRISCV:
		return "riscv-zkne-zknd"
	default:
		return "unknown"
	}
}

// ActiveBackend reports which Backend this build of the package links
// against. On amd64/arm64 without the purego tag this additionally depends
// on a one-time runtime capability check (see haveAESNI / haveNEONAES in
// the architecture-specific files); the value returned never changes after
// the first call and is safe to cache.
func ActiveBackend() Backend {
	return activeBackend()
}
