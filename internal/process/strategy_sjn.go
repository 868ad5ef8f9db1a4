package process

import (
	"sort"

	"github.com/oslabs/ossim/internal/request"
)

// sjnStrategy (Shortest Job Next) keeps queue 0 sorted by each process's
// claimed WorkTime, ascending; processes whose Timer has already exceeded
// their claim sort after every process still within it. Non-preemptive.
type sjnStrategy struct{}

func (sjnStrategy) Kind() StrategyKind { return SJN }

func sjnSchedule(s ProcessesState) (int32, int, bool) {
	if len(s.Queues[0]) > 0 {
		return s.Queues[0][0], 0, true
	}
	return 0, 0, false
}

// sortQueueZero reorders queue 0 by the given key, ascending: WorkTime for
// SJN, remaining time WorkTime-Timer for SRT. Overdue processes
// (WorkTime < Timer) keep their relative order at the tail.
func sortQueueZero(s ProcessesState, key func(Process) int32) ProcessesState {
	byPid := make(map[int32]Process, len(s.Processes))
	for _, p := range s.Processes {
		byPid[p.Pid] = p
	}

	var onTime, overdue []int32
	for _, pid := range s.Queues[0] {
		p := byPid[pid]
		if p.WorkTime >= p.Timer {
			onTime = append(onTime, pid)
		} else {
			overdue = append(overdue, pid)
		}
	}

	sort.SliceStable(onTime, func(i, j int) bool {
		return key(byPid[onTime[i]]) < key(byPid[onTime[j]])
	})

	next := s.Clone()
	next.Queues[0] = append(append([]int32(nil), onTime...), overdue...)
	return next
}

func (sjnStrategy) ProcessRequest(req request.ProcessRequest, s ProcessesState) ProcessesState {
	return dispatch(s, req, func(s ProcessesState, req request.ProcessRequest) ProcessesState {
		return sjnLikeProcessRequest(s, req, sjnSchedule, func(p Process) int32 { return p.WorkTime })
	})
}

func (sjnStrategy) RequestDescription(req request.ProcessRequest) string {
	base := requestDescriptionDefault(req)
	if req.Kind == request.ProcCreateProcess {
		return base + ". expected work time = " + itoa(req.WorkTime)
	}
	return base
}

// sjnLikeProcessRequest is shared by SJN and SRT: identical dispatch,
// differing only in the sort key applied to queue 0.
func sjnLikeProcessRequest(s ProcessesState, req request.ProcessRequest,
	schedule func(ProcessesState) (int32, int, bool), key func(Process) int32) ProcessesState {
	switch req.Kind {
	case request.ProcCreateProcess:
		if !createProcessPrecondition(s, req) {
			return s
		}
		p, err := New(req.Pid, req.Ppid, req.Priority, req.BasePriority, req.Timer, req.WorkTime)
		if err != nil {
			return s
		}
		next, err := AddProcess(s, p)
		if err != nil {
			return s
		}
		next, err = PushToQueue(next, 0, p.Pid)
		if err != nil {
			return s
		}
		next = sortQueueZero(next, key)
		return switchIfIdle(next, schedule)

	case request.ProcTerminateProcess:
		if s.IndexOf(req.Pid) < 0 {
			return s
		}
		next, err := Terminate(s, req.Pid)
		if err != nil {
			return s
		}
		return switchIfIdle(next, schedule)

	case request.ProcInitIO:
		idx := s.IndexOf(req.Pid)
		if idx < 0 || s.Processes[idx].State != Executing {
			return s
		}
		next, err := ChangeState(s, req.Pid, Waiting)
		if err != nil {
			return s
		}
		return switchToScheduled(next, schedule)

	case request.ProcTerminateIO:
		idx := s.IndexOf(req.Pid)
		if idx < 0 || s.Processes[idx].State != Waiting {
			return s
		}
		next, err := PushToQueue(s, 0, req.Pid)
		if err != nil {
			return s
		}
		next = sortQueueZero(next, key)
		next, err = ChangeState(next, req.Pid, Active)
		if err != nil {
			return s
		}
		return switchIfIdle(next, schedule)

	case request.ProcTransferControl:
		idx := s.IndexOf(req.Pid)
		if idx < 0 || s.Processes[idx].State != Executing {
			return s
		}
		next, err := PushToQueue(s, 0, req.Pid)
		if err != nil {
			return s
		}
		next = sortQueueZero(next, key)
		return switchToScheduled(next, schedule)

	case request.ProcTimeQuantumExpired:
		return s

	default:
		return s
	}
}
