// Package task implements the replayable task object (C6): a recorded
// sequence of requests against a starting state, graded one candidate
// step at a time.
package task

import (
	"github.com/oslabs/ossim/internal/memory"
	"github.com/oslabs/ossim/internal/ossimerr"
	"github.com/oslabs/ossim/internal/process"
	"github.com/oslabs/ossim/internal/request"
)

// MemoryTask is an immutable record of a memory-strategy exercise: a
// starting state, the full request sequence, how many of them have been
// graded correct so far, and the resulting current state.
type MemoryTask struct {
	Strategy  memory.StrategyKind
	Completed int
	Fails     int
	Initial   memory.State
	State     memory.State
	Requests  []request.MemoryRequest
	Actions   []string
}

// NewMemoryTask constructs a MemoryTask and replays the first `completed`
// requests from initial, validating that the replay lands on state. The
// strategy absorbs domain failures, so replay itself cannot fail; a
// mismatch is reported as TaskError{StateMismatch}, and an out-of-range
// completed or fails count as TaskError{InvalidTask}.
func NewMemoryTask(strategy memory.StrategyKind, completed, fails int, initial, state memory.State, requests []request.MemoryRequest, actions []string) (MemoryTask, error) {
	if completed < 0 || completed > len(requests) {
		return MemoryTask{}, &ossimerr.TaskError{Reason: ossimerr.InvalidTask}
	}
	if fails < 0 {
		return MemoryTask{}, &ossimerr.TaskError{Reason: ossimerr.InvalidTask}
	}

	replayed := initial
	for i := 0; i < completed; i++ {
		replayed = memory.ProcessRequest(strategy, requests[i], replayed)
	}
	if !replayed.Equal(state) {
		return MemoryTask{}, &ossimerr.TaskError{Reason: ossimerr.StateMismatch}
	}

	return MemoryTask{
		Strategy: strategy, Completed: completed, Fails: fails,
		Initial: initial, State: state,
		Requests: append([]request.MemoryRequest(nil), requests...),
		Actions:  append([]string(nil), actions...),
	}, nil
}

// Done reports whether every request has been graded correct.
func (t MemoryTask) Done() bool {
	return t.Completed == len(t.Requests)
}

// Next grades one candidate step: if the task is already done, it returns
// itself unchanged with ok=true. Otherwise it computes the expected state
// by applying the strategy to the next request, and compares it against
// candidate. A domain failure inside the strategy is absorbed by the
// strategy itself (the expected state is then the unchanged one); a
// candidate that differs from the expected state is a grading failure
// (ok=false, Fails+1). No error is returned.
func (t MemoryTask) Next(candidate memory.State) (bool, MemoryTask) {
	if t.Done() {
		return true, t
	}

	expected := memory.ProcessRequest(t.Strategy, t.Requests[t.Completed], t.State)

	if expected.Equal(candidate) {
		next := t
		next.Completed++
		next.State = expected
		return true, next
	}

	next := t
	next.Fails++
	return false, next
}

// ProcessesTask is the process-domain analogue of MemoryTask.
type ProcessesTask struct {
	Strategy  process.StrategyKind
	Completed int
	Fails     int
	Initial   process.ProcessesState
	State     process.ProcessesState
	Requests  []request.ProcessRequest
	Actions   []string
}

// NewProcessesTask constructs a ProcessesTask and replays the first
// `completed` requests from initial, validating that the replay lands on
// state.
func NewProcessesTask(strategyKind process.StrategyKind, completed, fails int, initial, state process.ProcessesState, requests []request.ProcessRequest, actions []string) (ProcessesTask, error) {
	if completed < 0 || completed > len(requests) {
		return ProcessesTask{}, &ossimerr.TaskError{Reason: ossimerr.InvalidTask}
	}
	if fails < 0 {
		return ProcessesTask{}, &ossimerr.TaskError{Reason: ossimerr.InvalidTask}
	}

	strategy := process.ForKind(strategyKind)
	if strategy == nil {
		return ProcessesTask{}, &ossimerr.TaskError{Reason: ossimerr.InvalidTask}
	}

	replayed := initial
	for i := 0; i < completed; i++ {
		replayed = strategy.ProcessRequest(requests[i], replayed)
	}
	if !replayed.Equal(state) {
		return ProcessesTask{}, &ossimerr.TaskError{Reason: ossimerr.StateMismatch}
	}

	return ProcessesTask{
		Strategy: strategyKind, Completed: completed, Fails: fails,
		Initial: initial, State: state,
		Requests: append([]request.ProcessRequest(nil), requests...),
		Actions:  append([]string(nil), actions...),
	}, nil
}

// Done reports whether every request has been graded correct.
func (t ProcessesTask) Done() bool {
	return t.Completed == len(t.Requests)
}

// Next grades one candidate step, exactly as MemoryTask.Next.
func (t ProcessesTask) Next(candidate process.ProcessesState) (bool, ProcessesTask) {
	if t.Done() {
		return true, t
	}

	strategy := process.ForKind(t.Strategy)
	expected := strategy.ProcessRequest(t.Requests[t.Completed], t.State)

	if expected.Equal(candidate) {
		next := t
		next.Completed++
		next.State = expected
		return true, next
	}

	next := t
	next.Fails++
	return false, next
}
