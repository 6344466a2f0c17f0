//go:build (!(amd64 && gc) && !(arm64 && gc) && !((ppc64 || ppc64le) && gc) && !(riscv64 && gc && riscvzkn)) || purego

package aes

func activeBackend() Backend {
	if constantTimeFallback {
		return BackendSoftwareBitslice
	}
	return BackendSoftwareTable
}
