package aes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActiveBackendIsNamed(t *testing.T) {
	b := ActiveBackend()
	require.NotEqual(t, "unknown", b.String())
}
