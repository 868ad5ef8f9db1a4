package request

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCreateProcessReqRejectsBasePriorityAbovePriority(t *testing.T) {
	_, err := NewCreateProcessReq(1, -1, 5, 6, 0, 0)
	require.Error(t, err)

	_, err = NewCreateProcessReq(1, -1, 5, 5, 0, 0)
	require.NoError(t, err)
}

func TestNewTerminateIORejectsAugmentOutOfRange(t *testing.T) {
	_, err := NewTerminateIO(1, 0)
	require.Error(t, err)

	_, err = NewTerminateIO(1, 16)
	require.Error(t, err)

	req, err := NewTerminateIO(1, 1)
	require.NoError(t, err)
	require.Equal(t, int32(1), req.Augment)
}

func TestNewTimeQuantumExpiredHasNoFields(t *testing.T) {
	req := NewTimeQuantumExpired()
	require.Equal(t, ProcTimeQuantumExpired, req.Kind)
	require.Zero(t, req.Pid)
}
