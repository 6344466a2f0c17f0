//go:build riscv64 && gc && !purego && riscvzkn

package aes

func activeBackend() Backend {
	return BackendRISCV
}
