package store

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oslabs/ossim/internal/memory"
	"github.com/oslabs/ossim/internal/request"
	"github.com/oslabs/ossim/internal/task"
)

func TestSaveThenLoadRoundTrips(t *testing.T) {
	create, err := request.NewCreateProcess(1, 4096, 1)
	require.NoError(t, err)
	memTask, err := task.NewMemoryTask(memory.FirstAppropriate, 0, 0, memory.Initial(), memory.Initial(), []request.MemoryRequest{create}, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, []interface{}{memTask}))

	loaded, err := Load(&buf)
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	back, ok := loaded[0].(task.MemoryTask)
	require.True(t, ok)
	require.Equal(t, memTask.Strategy, back.Strategy)
	require.Equal(t, memTask.Requests, back.Requests)
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	_, err := Load(bytes.NewReader([]byte(`not json`)))
	require.Error(t, err)
}

func TestLoadRejectsUnknownTaskTag(t *testing.T) {
	_, err := Load(bytes.NewReader([]byte(`[{"type":"BOGUS"}]`)))
	require.Error(t, err)
}
