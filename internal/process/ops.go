package process

import (
	"sort"

	"github.com/oslabs/ossim/internal/ossimerr"
)

// ChangeState sets the State of the process identified by pid.
func ChangeState(s ProcessesState, pid int32, newState State) (ProcessesState, error) {
	idx := s.IndexOf(pid)
	if idx < 0 {
		return s, ossimerr.NewOperation(ossimerr.NoSuchProcess)
	}
	next := s.Clone()
	next.Processes[idx] = next.Processes[idx].WithState(newState)
	return next, nil
}

// PushToQueue appends pid to the queue at queueIndex and records that
// queue's index as the process's Priority. pid must exist and must not
// already sit in any queue.
func PushToQueue(s ProcessesState, queueIndex int, pid int32) (ProcessesState, error) {
	idx := s.IndexOf(pid)
	if idx < 0 {
		return s, ossimerr.NewOperation(ossimerr.NoSuchProcess)
	}
	if s.InAnyQueue(pid) {
		return s, ossimerr.NewOperation(ossimerr.AlreadyInQueue)
	}

	next := s.Clone()
	next.Queues[queueIndex] = append(next.Queues[queueIndex], pid)
	p, err := next.Processes[idx].WithPriority(int32(queueIndex))
	if err != nil {
		return s, err
	}
	next.Processes[idx] = p
	return next, nil
}

// PopFromQueue removes the front pid of the queue at queueIndex.
func PopFromQueue(s ProcessesState, queueIndex int) (ProcessesState, error) {
	queue := s.Queues[queueIndex]
	if len(queue) == 0 {
		return s, ossimerr.NewOperation(ossimerr.EmptyQueue)
	}
	pid := queue[0]
	if s.IndexOf(pid) < 0 {
		return s, ossimerr.NewOperation(ossimerr.NoSuchProcess)
	}

	next := s.Clone()
	next.Queues[queueIndex] = append([]int32(nil), queue[1:]...)
	return next, nil
}

// SwitchTo transfers EXECUTING to nextPid, demoting any currently executing
// process back to Active. nextPid must be Active; switching to the process
// already executing is a no-op.
func SwitchTo(s ProcessesState, nextPid int32) (ProcessesState, error) {
	nextIdx := s.IndexOf(nextPid)
	if nextIdx < 0 {
		return s, ossimerr.NewOperation(ossimerr.NoSuchProcess)
	}

	prevIdx := -1
	for i, p := range s.Processes {
		if p.State == Executing {
			prevIdx = i
			break
		}
	}
	if prevIdx == nextIdx {
		return s, nil
	}
	if s.Processes[nextIdx].State != Active {
		return s, ossimerr.NewOperation(ossimerr.InvalidState)
	}

	next := s.Clone()
	if prevIdx >= 0 {
		next.Processes[prevIdx] = next.Processes[prevIdx].WithState(Active)
	}
	next.Processes[nextIdx] = next.Processes[nextIdx].WithState(Executing)
	return next, nil
}

// Terminate removes pid and every descendant of pid (transitively, via
// Ppid) from Processes and from every queue.
func Terminate(s ProcessesState, pid int32) (ProcessesState, error) {
	if s.IndexOf(pid) < 0 {
		return s, ossimerr.NewOperation(ossimerr.NoSuchProcess)
	}

	children := make(map[int32][]int32)
	for _, p := range s.Processes {
		if p.Ppid != -1 {
			children[p.Ppid] = append(children[p.Ppid], p.Pid)
		}
	}

	toRemove := make(map[int32]bool)
	var mark func(int32)
	mark = func(pid int32) {
		toRemove[pid] = true
		for _, child := range children[pid] {
			mark(child)
		}
	}
	mark(pid)

	next := ProcessesState{}
	for _, p := range s.Processes {
		if !toRemove[p.Pid] {
			next.Processes = append(next.Processes, p)
		}
	}
	for i, q := range s.Queues {
		for _, queued := range q {
			if !toRemove[queued] {
				next.Queues[i] = append(next.Queues[i], queued)
			}
		}
	}
	return next, nil
}

// AddProcess inserts process into Processes, keeping it sorted by
// Process.Less. pid must be unused; if Ppid is not -1 the parent must
// exist.
func AddProcess(s ProcessesState, p Process) (ProcessesState, error) {
	if s.IndexOf(p.Pid) >= 0 {
		return s, ossimerr.NewOperation(ossimerr.ProcessExists)
	}
	if p.Ppid != -1 && s.IndexOf(p.Ppid) < 0 {
		return s, ossimerr.NewOperation(ossimerr.NoSuchPpid)
	}

	next := s.Clone()
	next.Processes = append(next.Processes, p)
	sort.SliceStable(next.Processes, func(i, j int) bool {
		return next.Processes[i].Less(next.Processes[j])
	})
	return next, nil
}

// UpdateTimer increments the Timer of the sole EXECUTING process, if any.
func UpdateTimer(s ProcessesState) ProcessesState {
	idx := -1
	for i, p := range s.Processes {
		if p.State == Executing {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}
	next := s.Clone()
	next.Processes[idx].Timer++
	return next
}
