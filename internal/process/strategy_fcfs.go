package process

import "github.com/oslabs/ossim/internal/request"

// fcfsStrategy runs processes strictly in arrival order: new processes
// enter queue 1, processes returning from I/O (TerminateIO) or yielding
// (TransferControl) enter queue 0, and queue 0 is drained first.
// Non-preemptive: TimeQuantumExpired is a no-op.
type fcfsStrategy struct{}

func (fcfsStrategy) Kind() StrategyKind { return FCFS }

func fcfsSchedule(s ProcessesState) (int32, int, bool) {
	if len(s.Queues[0]) > 0 {
		return s.Queues[0][0], 0, true
	}
	if len(s.Queues[1]) > 0 {
		return s.Queues[1][0], 1, true
	}
	return 0, 0, false
}

func (fcfsStrategy) ProcessRequest(req request.ProcessRequest, s ProcessesState) ProcessesState {
	return dispatch(s, req, func(s ProcessesState, req request.ProcessRequest) ProcessesState {
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
			next, err = PushToQueue(next, 1, p.Pid)
			if err != nil {
				return s
			}
			return switchIfIdle(next, fcfsSchedule)

		case request.ProcTerminateProcess:
			if s.IndexOf(req.Pid) < 0 {
				return s
			}
			next, err := Terminate(s, req.Pid)
			if err != nil {
				return s
			}
			return switchIfIdle(next, fcfsSchedule)

		case request.ProcInitIO:
			idx := s.IndexOf(req.Pid)
			if idx < 0 || s.Processes[idx].State != Executing {
				return s
			}
			next, err := ChangeState(s, req.Pid, Waiting)
			if err != nil {
				return s
			}
			return switchToScheduled(next, fcfsSchedule)

		case request.ProcTerminateIO:
			idx := s.IndexOf(req.Pid)
			if idx < 0 || s.Processes[idx].State != Waiting {
				return s
			}
			next, err := PushToQueue(s, 0, req.Pid)
			if err != nil {
				return s
			}
			next, err = ChangeState(next, req.Pid, Active)
			if err != nil {
				return s
			}
			return switchIfIdle(next, fcfsSchedule)

		case request.ProcTransferControl:
			idx := s.IndexOf(req.Pid)
			if idx < 0 || s.Processes[idx].State != Executing {
				return s
			}
			next, err := PushToQueue(s, 0, req.Pid)
			if err != nil {
				return s
			}
			return switchToScheduled(next, fcfsSchedule)

		case request.ProcTimeQuantumExpired:
			return s

		default:
			return s
		}
	})
}

func (fcfsStrategy) RequestDescription(req request.ProcessRequest) string {
	return requestDescriptionDefault(req)
}
