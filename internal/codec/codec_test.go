package codec

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/oslabs/ossim/internal/memory"
	"github.com/oslabs/ossim/internal/ossimerr"
	"github.com/oslabs/ossim/internal/process"
	"github.com/oslabs/ossim/internal/request"
	"github.com/oslabs/ossim/internal/task"
)

func TestMemoryStateRoundTrips(t *testing.T) {
	s := memory.Initial()
	create, err := request.NewCreateProcess(1, 4096*10, 10)
	require.NoError(t, err)
	s = memory.ProcessRequest(memory.FirstAppropriate, create, s)

	raw := EncodeMemoryState(s)
	back, err := DecodeMemoryState(raw)
	require.NoError(t, err)
	if diff := cmp.Diff(s, back); diff != "" {
		t.Fatalf("MemoryState round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryRequestRoundTripsEachKind(t *testing.T) {
	create, _ := request.NewCreateProcess(1, 4096, 1)
	terminate, _ := request.NewTerminateProcess(1)
	allocate, _ := request.NewAllocateMemory(1, 4096, 1)
	free, _ := request.NewFreeMemory(1, 0)

	for _, r := range []request.MemoryRequest{create, terminate, allocate, free} {
		raw := EncodeMemoryRequest(r)
		back, err := DecodeMemoryRequest(raw)
		require.NoError(t, err)
		require.Equal(t, r, back)
	}
}

func TestDecodeMemoryRequestRejectsUnknownTag(t *testing.T) {
	_, err := DecodeMemoryRequest([]byte(`{"type":"BOGUS","pid":1}`))
	require.Error(t, err)
}

func TestMemoryStrategyNameRoundTrips(t *testing.T) {
	for _, kind := range memory.AllStrategies {
		name, err := EncodeMemoryStrategy(kind)
		require.NoError(t, err)
		back, err := DecodeMemoryStrategy(name)
		require.NoError(t, err)
		require.Equal(t, kind, back)
	}
}

func TestProcessesStateRoundTrips(t *testing.T) {
	s := process.Initial()
	p, err := process.New(1, -1, 2, 0, 0, 0)
	require.NoError(t, err)
	s, err = process.AddProcess(s, p)
	require.NoError(t, err)
	s, err = process.PushToQueue(s, 2, 1)
	require.NoError(t, err)

	raw := EncodeProcessesState(s)
	back, err := DecodeProcessesState(raw)
	require.NoError(t, err)
	if diff := cmp.Diff(s, back); diff != "" {
		t.Fatalf("ProcessesState round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessRequestRoundTripsIncludingAugment(t *testing.T) {
	create, _ := request.NewCreateProcessReq(1, -1, 5, 2, 3, 4)
	terminateIO, _ := request.NewTerminateIO(1, 3)
	tqe := request.NewTimeQuantumExpired()

	for _, r := range []request.ProcessRequest{create, terminateIO, tqe} {
		raw := EncodeProcessRequest(r)
		back, err := DecodeProcessRequest(raw)
		require.NoError(t, err)
		require.Equal(t, r, back)
	}
}

func TestMemoryTaskRoundTrips(t *testing.T) {
	create, _ := request.NewCreateProcess(1, 4096, 1)
	tk, err := task.NewMemoryTask(memory.FirstAppropriate, 0, 0, memory.Initial(), memory.Initial(), []request.MemoryRequest{create}, nil)
	require.NoError(t, err)

	raw, err := EncodeMemoryTask(tk)
	require.NoError(t, err)

	back, err := DecodeMemoryTask(raw)
	require.NoError(t, err)
	require.Equal(t, tk.Strategy, back.Strategy)
	require.Equal(t, tk.Requests, back.Requests)
}

func TestMemoryTaskWithProgressRoundTripsAndRejectsTamperedState(t *testing.T) {
	create1, _ := request.NewCreateProcess(1, 4096*4, 4)
	create2, _ := request.NewCreateProcess(2, 4096*8, 8)
	requests := []request.MemoryRequest{create1, create2}

	state := memory.Initial()
	for _, r := range requests {
		state = memory.ProcessRequest(memory.FirstAppropriate, r, state)
	}

	tk, err := task.NewMemoryTask(memory.FirstAppropriate, 2, 0, memory.Initial(), state, requests, []string{"created 1", "created 2"})
	require.NoError(t, err)

	raw, err := EncodeMemoryTask(tk)
	require.NoError(t, err)

	back, err := DecodeMemoryTask(raw)
	require.NoError(t, err)
	if diff := cmp.Diff(tk, back); diff != "" {
		t.Fatalf("MemoryTask round-trip mismatch (-want +got):\n%s", diff)
	}

	// Replacing the stored state with one the replay cannot reach must be
	// caught by the replay validation on decode.
	var tampered map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &tampered))
	tampered["state"] = EncodeMemoryState(memory.Initial())
	rawTampered, err := json.Marshal(tampered)
	require.NoError(t, err)

	_, err = DecodeMemoryTask(rawTampered)
	require.Error(t, err)
	var taskErr *ossimerr.TaskError
	require.ErrorAs(t, err, &taskErr)
	require.Equal(t, ossimerr.StateMismatch, taskErr.Reason)
}

func TestProcessesTaskRoundTrips(t *testing.T) {
	create, _ := request.NewCreateProcessReq(1, -1, 0, 0, 0, 0)
	requests := []request.ProcessRequest{create}

	strategy := process.ForKind(process.FCFS)
	state := strategy.ProcessRequest(create, process.Initial())

	tk, err := task.NewProcessesTask(process.FCFS, 1, 0, process.Initial(), state, requests, []string{"created 1"})
	require.NoError(t, err)

	raw, err := EncodeProcessesTask(tk)
	require.NoError(t, err)

	back, err := DecodeProcessesTask(raw)
	require.NoError(t, err)
	if diff := cmp.Diff(tk, back); diff != "" {
		t.Fatalf("ProcessesTask round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeAnyTaskDispatchesByTag(t *testing.T) {
	create, _ := request.NewCreateProcess(1, 4096, 1)
	memTask, err := task.NewMemoryTask(memory.FirstAppropriate, 0, 0, memory.Initial(), memory.Initial(), []request.MemoryRequest{create}, nil)
	require.NoError(t, err)
	raw, err := EncodeMemoryTask(memTask)
	require.NoError(t, err)

	decoded, err := DecodeAnyTask(raw)
	require.NoError(t, err)
	_, ok := decoded.(task.MemoryTask)
	require.True(t, ok)
}
