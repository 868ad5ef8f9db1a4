package codec

import (
	"encoding/json"

	"github.com/oslabs/ossim/internal/ossimerr"
	"github.com/oslabs/ossim/internal/request"
	"github.com/oslabs/ossim/internal/task"
)

// taskJSON is the wire shape shared by both task kinds: a type tag
// ("MEMORY_TASK" or "PROCESSES_TASK"), the strategy name, progress
// counters, the initial/current states (kept as raw so each domain
// decodes its own shape), the full request list, and the recorded
// action log.
type taskJSON struct {
	Type      string            `json:"type"`
	Strategy  string            `json:"strategy"`
	Completed int               `json:"completed"`
	Fails     int               `json:"fails"`
	Initial   json.RawMessage   `json:"initial"`
	State     json.RawMessage   `json:"state"`
	Requests  []json.RawMessage `json:"requests"`
	Actions   []string          `json:"actions"`
}

const (
	taskTypeMemory    = "MEMORY_TASK"
	taskTypeProcesses = "PROCESSES_TASK"
)

// nonNilActions keeps the actions array present in the output even when no
// action has been recorded yet.
func nonNilActions(actions []string) []string {
	if actions == nil {
		return []string{}
	}
	return actions
}

// EncodeMemoryTask renders a task.MemoryTask as its canonical JSON value.
func EncodeMemoryTask(t task.MemoryTask) (json.RawMessage, error) {
	strategyName, err := EncodeMemoryStrategy(t.Strategy)
	if err != nil {
		return nil, err
	}

	requests := make([]json.RawMessage, len(t.Requests))
	for i, r := range t.Requests {
		requests[i] = EncodeMemoryRequest(r)
	}

	raw, err := json.Marshal(taskJSON{
		Type: taskTypeMemory, Strategy: strategyName,
		Completed: t.Completed, Fails: t.Fails,
		Initial: EncodeMemoryState(t.Initial), State: EncodeMemoryState(t.State),
		Requests: requests, Actions: nonNilActions(t.Actions),
	})
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// DecodeMemoryTask parses a canonical MemoryTask JSON value, replaying and
// validating it via task.NewMemoryTask.
func DecodeMemoryTask(raw []byte) (task.MemoryTask, error) {
	var j taskJSON
	if err := json.Unmarshal(raw, &j); err != nil {
		return task.MemoryTask{}, err
	}
	if j.Type != taskTypeMemory {
		return task.MemoryTask{}, &ossimerr.CodecError{What: ossimerr.UnknownTask, Tag: j.Type}
	}

	strategy, err := DecodeMemoryStrategy(j.Strategy)
	if err != nil {
		return task.MemoryTask{}, err
	}
	initial, err := DecodeMemoryState(j.Initial)
	if err != nil {
		return task.MemoryTask{}, err
	}
	state, err := DecodeMemoryState(j.State)
	if err != nil {
		return task.MemoryTask{}, err
	}
	requests := make([]request.MemoryRequest, len(j.Requests))
	for i, rr := range j.Requests {
		req, err := DecodeMemoryRequest(rr)
		if err != nil {
			return task.MemoryTask{}, err
		}
		requests[i] = req
	}

	return task.NewMemoryTask(strategy, j.Completed, j.Fails, initial, state, requests, j.Actions)
}

// EncodeProcessesTask renders a task.ProcessesTask as its canonical JSON
// value.
func EncodeProcessesTask(t task.ProcessesTask) (json.RawMessage, error) {
	strategyName, err := EncodeProcessStrategy(t.Strategy)
	if err != nil {
		return nil, err
	}

	requests := make([]json.RawMessage, len(t.Requests))
	for i, r := range t.Requests {
		requests[i] = EncodeProcessRequest(r)
	}

	raw, err := json.Marshal(taskJSON{
		Type: taskTypeProcesses, Strategy: strategyName,
		Completed: t.Completed, Fails: t.Fails,
		Initial: EncodeProcessesState(t.Initial), State: EncodeProcessesState(t.State),
		Requests: requests, Actions: nonNilActions(t.Actions),
	})
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// DecodeProcessesTask parses a canonical ProcessesTask JSON value, replaying
// and validating it via task.NewProcessesTask.
func DecodeProcessesTask(raw []byte) (task.ProcessesTask, error) {
	var j taskJSON
	if err := json.Unmarshal(raw, &j); err != nil {
		return task.ProcessesTask{}, err
	}
	if j.Type != taskTypeProcesses {
		return task.ProcessesTask{}, &ossimerr.CodecError{What: ossimerr.UnknownTask, Tag: j.Type}
	}

	strategy, err := DecodeProcessStrategy(j.Strategy)
	if err != nil {
		return task.ProcessesTask{}, err
	}
	initial, err := DecodeProcessesState(j.Initial)
	if err != nil {
		return task.ProcessesTask{}, err
	}
	state, err := DecodeProcessesState(j.State)
	if err != nil {
		return task.ProcessesTask{}, err
	}
	requests := make([]request.ProcessRequest, len(j.Requests))
	for i, rr := range j.Requests {
		req, err := DecodeProcessRequest(rr)
		if err != nil {
			return task.ProcessesTask{}, err
		}
		requests[i] = req
	}

	return task.NewProcessesTask(strategy, j.Completed, j.Fails, initial, state, requests, j.Actions)
}

// DecodeAnyTask sniffs a JSON task value's type tag and dispatches to the
// matching decoder, the shape the store package reads a persisted task
// collection back into.
func DecodeAnyTask(raw []byte) (interface{}, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}
	switch probe.Type {
	case taskTypeMemory:
		return DecodeMemoryTask(raw)
	case taskTypeProcesses:
		return DecodeProcessesTask(raw)
	default:
		return nil, &ossimerr.CodecError{What: ossimerr.UnknownTask, Tag: probe.Type}
	}
}
