//go:build constanttime

package aes

// constantTimeFallback selects the bit-sliced software backend over the
// table-driven one whenever a platform falls back to software at all. It
// has no effect on platforms where a hardware backend is linked in and
// available at runtime.
const constantTimeFallback = true
