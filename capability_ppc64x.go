//go:build (ppc64 || ppc64le) && gc && !purego

package aes

func activeBackend() Backend {
	return BackendPOWER8
}
