// Package process implements the process-scheduling domain: process
// descriptors, the 16 priority-indexed ready queues, the primitive state
// transitions, and the scheduling strategies built on top of them.
package process

import "github.com/oslabs/ossim/internal/ossimerr"

// State names where a process sits in the scheduling lifecycle.
type State string

const (
	Active    State = "ACTIVE"
	Executing State = "EXECUTING"
	Waiting   State = "WAITING"
)

// Process is an immutable process descriptor. Every setter returns a new
// value; none mutate the receiver.
type Process struct {
	Pid          int32 `json:"pid"`
	Ppid         int32 `json:"ppid"`
	Priority     int32 `json:"priority"`
	BasePriority int32 `json:"basePriority"`
	Timer        int32 `json:"timer"`
	WorkTime     int32 `json:"workTime"`
	State        State `json:"state"`
}

// New constructs a process descriptor with the default lifecycle state
// (Active), validating every field's range.
func New(pid, ppid, priority, basePriority, timer, workTime int32) (Process, error) {
	p := Process{Pid: pid, Ppid: ppid, Priority: priority, BasePriority: basePriority,
		Timer: timer, WorkTime: workTime, State: Active}
	if err := p.validate(); err != nil {
		return Process{}, err
	}
	return p, nil
}

func (p Process) validate() error {
	if p.Pid < 0 || p.Pid > 255 {
		return &ossimerr.TypeError{Field: "pid"}
	}
	if p.Ppid < -1 || p.Ppid > 255 {
		return &ossimerr.TypeError{Field: "ppid"}
	}
	if p.Priority < 0 || p.Priority > 15 {
		return &ossimerr.TypeError{Field: "priority"}
	}
	if p.BasePriority < 0 || p.BasePriority > 15 || p.BasePriority > p.Priority {
		return &ossimerr.TypeError{Field: "basePriority"}
	}
	if p.Timer < 0 {
		return &ossimerr.TypeError{Field: "timer"}
	}
	if p.WorkTime < 0 {
		return &ossimerr.TypeError{Field: "workTime"}
	}
	return nil
}

// WithPriority returns a copy with Priority set to priority.
func (p Process) WithPriority(priority int32) (Process, error) {
	other := p
	other.Priority = priority
	if priority < 0 || priority > 15 {
		return Process{}, &ossimerr.TypeError{Field: "priority"}
	}
	return other, nil
}

// WithTimer returns a copy with Timer set to timer.
func (p Process) WithTimer(timer int32) (Process, error) {
	if timer < 0 {
		return Process{}, &ossimerr.TypeError{Field: "timer"}
	}
	other := p
	other.Timer = timer
	return other, nil
}

// WithState returns a copy with State set to state.
func (p Process) WithState(state State) Process {
	other := p
	other.State = state
	return other
}

// Equal reports whether two process descriptors hold the same fields.
func (p Process) Equal(other Process) bool {
	return p == other
}

// Less orders processes lexicographically by (pid, ppid, priority,
// basePriority, timer, workTime, state); AddProcess keeps the process
// list sorted by this order so listings and serialisation stay
// deterministic.
func (p Process) Less(other Process) bool {
	if p.Pid != other.Pid {
		return p.Pid < other.Pid
	}
	if p.Ppid != other.Ppid {
		return p.Ppid < other.Ppid
	}
	if p.Priority != other.Priority {
		return p.Priority < other.Priority
	}
	if p.BasePriority != other.BasePriority {
		return p.BasePriority < other.BasePriority
	}
	if p.Timer != other.Timer {
		return p.Timer < other.Timer
	}
	if p.WorkTime != other.WorkTime {
		return p.WorkTime < other.WorkTime
	}
	return p.State < other.State
}
