//go:build !constanttime

package aes

const constantTimeFallback = false
