package process

import "github.com/oslabs/ossim/internal/request"

// winNtStrategy schedules the highest non-empty priority queue (15 down to
// 0), same scan as unixStrategy. CreateProcess places a process in queue =
// basePriority. TerminateIO returns the process to min(priority+augment,
// 15). TransferControl and TimeQuantumExpired decay priority toward
// basePriority by 1. Preemptive.
type winNtStrategy struct{}

func (winNtStrategy) Kind() StrategyKind { return WinNT }

func (winNtStrategy) ProcessRequest(req request.ProcessRequest, s ProcessesState) ProcessesState {
	return dispatch(s, req, func(s ProcessesState, req request.ProcessRequest) ProcessesState {
		switch req.Kind {
		case request.ProcCreateProcess:
			if !createProcessPrecondition(s, req) {
				return s
			}
			p, err := New(req.Pid, req.Ppid, req.BasePriority, req.BasePriority, req.Timer, req.WorkTime)
			if err != nil {
				return s
			}
			next, err := AddProcess(s, p)
			if err != nil {
				return s
			}
			next, err = PushToQueue(next, int(p.BasePriority), p.Pid)
			if err != nil {
				return s
			}
			return switchPreemptive(next, unixSchedule)

		case request.ProcTerminateProcess:
			if s.IndexOf(req.Pid) < 0 {
				return s
			}
			next, err := Terminate(s, req.Pid)
			if err != nil {
				return s
			}
			return switchPreemptive(next, unixSchedule)

		case request.ProcInitIO:
			idx := s.IndexOf(req.Pid)
			if idx < 0 || s.Processes[idx].State != Executing {
				return s
			}
			next, err := ChangeState(s, req.Pid, Waiting)
			if err != nil {
				return s
			}
			return switchToScheduled(next, unixSchedule)

		case request.ProcTerminateIO:
			idx := s.IndexOf(req.Pid)
			if idx < 0 || s.Processes[idx].State != Waiting {
				return s
			}
			priority := s.Processes[idx].Priority + req.Augment
			if priority > 15 {
				priority = 15
			}
			next, err := PushToQueue(s, int(priority), req.Pid)
			if err != nil {
				return s
			}
			next, err = ChangeState(next, req.Pid, Active)
			if err != nil {
				return s
			}
			return switchPreemptive(next, unixSchedule)

		case request.ProcTransferControl:
			idx := s.IndexOf(req.Pid)
			if idx < 0 || s.Processes[idx].State != Executing {
				return s
			}
			priority := decayPriority(s.Processes[idx])
			next, err := PushToQueue(s, int(priority), req.Pid)
			if err != nil {
				return s
			}
			return switchToScheduled(next, unixSchedule)

		case request.ProcTimeQuantumExpired:
			next := s
			if current, ok := s.Executing(); ok {
				priority := decayPriority(current)
				var err error
				next, err = PushToQueue(s, int(priority), current.Pid)
				if err != nil {
					return s
				}
			}
			return switchToScheduled(next, unixSchedule)

		default:
			return s
		}
	})
}

func decayPriority(p Process) int32 {
	if p.Priority-1 > p.BasePriority {
		return p.Priority - 1
	}
	return p.BasePriority
}

func (winNtStrategy) RequestDescription(req request.ProcessRequest) string {
	base := requestDescriptionDefault(req)
	switch req.Kind {
	case request.ProcCreateProcess:
		return base + ". base priority = " + itoa(req.BasePriority)
	case request.ProcTerminateIO:
		return base + ". augment = " + itoa(req.Augment)
	default:
		return base
	}
}
