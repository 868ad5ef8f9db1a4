package task

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oslabs/ossim/internal/memory"
	"github.com/oslabs/ossim/internal/request"
)

func TestNewMemoryTaskRejectsStateMismatch(t *testing.T) {
	create, err := request.NewCreateProcess(1, 4096, 1)
	require.NoError(t, err)

	_, err = NewMemoryTask(memory.FirstAppropriate, 1, 0, memory.Initial(), memory.Initial(), []request.MemoryRequest{create}, nil)
	require.Error(t, err)
}

func TestMemoryTaskNextGradesCorrectAndWrongSteps(t *testing.T) {
	create, err := request.NewCreateProcess(1, 4096, 1)
	require.NoError(t, err)

	tk, err := NewMemoryTask(memory.FirstAppropriate, 0, 0, memory.Initial(), memory.Initial(), []request.MemoryRequest{create}, nil)
	require.NoError(t, err)
	require.False(t, tk.Done())

	ok, failed := tk.Next(memory.Initial())
	require.False(t, ok)
	require.Equal(t, 1, failed.Fails)
	require.Equal(t, 0, failed.Completed)

	expected := memory.ProcessRequest(memory.FirstAppropriate, create, memory.Initial())
	ok, advanced := tk.Next(expected)
	require.True(t, ok)
	require.Equal(t, 1, advanced.Completed)
	require.True(t, advanced.Done())

	ok, same := advanced.Next(memory.Initial())
	require.True(t, ok, "Next on a done task always reports ok")
	require.Equal(t, advanced, same)
}
