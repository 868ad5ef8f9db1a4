package request

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCreateProcessValidatesBytesPagesConsistency(t *testing.T) {
	_, err := NewCreateProcess(1, 4096, 1)
	require.NoError(t, err)

	_, err = NewCreateProcess(1, 4097, 1)
	require.Error(t, err, "bytes beyond pages*4096 must be rejected")

	_, err = NewCreateProcess(1, 0, 1)
	require.Error(t, err, "bytes at or below (pages-1)*4096 must be rejected")
}

func TestNewFreeMemoryValidatesAddressRange(t *testing.T) {
	_, err := NewFreeMemory(1, 0)
	require.NoError(t, err)

	_, err = NewFreeMemory(1, 256)
	require.Error(t, err)
}
