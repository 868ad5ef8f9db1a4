package process

// QueueCount is the number of priority-indexed FIFO ready queues (0..15).
const QueueCount = 16

// MaxPid is the highest valid process identifier.
const MaxPid = 255

// ProcessesState is an immutable snapshot of the process domain: every live
// process descriptor and the 16 priority queues holding ready pids.
type ProcessesState struct {
	Processes []Process           `json:"processes"`
	Queues    [QueueCount][]int32 `json:"queues"`
}

// Initial returns the starting state: no processes, every queue empty.
func Initial() ProcessesState {
	return ProcessesState{}
}

// Clone returns a deep copy so callers may mutate the result without
// aliasing the receiver's backing arrays.
func (s ProcessesState) Clone() ProcessesState {
	out := ProcessesState{Processes: append([]Process(nil), s.Processes...)}
	for i := range s.Queues {
		out.Queues[i] = append([]int32(nil), s.Queues[i]...)
	}
	return out
}

// Equal reports whether two states hold the same processes and queues, in
// order.
func (s ProcessesState) Equal(other ProcessesState) bool {
	if len(s.Processes) != len(other.Processes) {
		return false
	}
	for i := range s.Processes {
		if !s.Processes[i].Equal(other.Processes[i]) {
			return false
		}
	}
	for i := range s.Queues {
		if len(s.Queues[i]) != len(other.Queues[i]) {
			return false
		}
		for j := range s.Queues[i] {
			if s.Queues[i][j] != other.Queues[i][j] {
				return false
			}
		}
	}
	return true
}

// IndexOf returns the index of the process with the given pid, or -1.
func (s ProcessesState) IndexOf(pid int32) int {
	for i, p := range s.Processes {
		if p.Pid == pid {
			return i
		}
	}
	return -1
}

// Executing returns the sole EXECUTING process and true, or the zero value
// and false if none is executing.
func (s ProcessesState) Executing() (Process, bool) {
	for _, p := range s.Processes {
		if p.State == Executing {
			return p, true
		}
	}
	return Process{}, false
}

// InAnyQueue reports whether pid appears in any of the 16 queues.
func (s ProcessesState) InAnyQueue(pid int32) bool {
	for _, q := range s.Queues {
		for _, p := range q {
			if p == pid {
				return true
			}
		}
	}
	return false
}
