package process

import "github.com/oslabs/ossim/internal/request"

// roundRobinStrategy gives every process a fixed time slice via a single
// FIFO queue 0; TimeQuantumExpired requeues the running process at the
// tail. Preemptive.
type roundRobinStrategy struct{}

func (roundRobinStrategy) Kind() StrategyKind { return RoundRobin }

func roundRobinSchedule(s ProcessesState) (int32, int, bool) {
	if len(s.Queues[0]) > 0 {
		return s.Queues[0][0], 0, true
	}
	return 0, 0, false
}

func (roundRobinStrategy) ProcessRequest(req request.ProcessRequest, s ProcessesState) ProcessesState {
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
			next, err = PushToQueue(next, 0, p.Pid)
			if err != nil {
				return s
			}
			return switchIfIdle(next, roundRobinSchedule)

		case request.ProcTerminateProcess:
			if s.IndexOf(req.Pid) < 0 {
				return s
			}
			next, err := Terminate(s, req.Pid)
			if err != nil {
				return s
			}
			return switchIfIdle(next, roundRobinSchedule)

		case request.ProcInitIO:
			idx := s.IndexOf(req.Pid)
			if idx < 0 || s.Processes[idx].State != Executing {
				return s
			}
			next, err := ChangeState(s, req.Pid, Waiting)
			if err != nil {
				return s
			}
			return switchToScheduled(next, roundRobinSchedule)

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
			return switchIfIdle(next, roundRobinSchedule)

		case request.ProcTransferControl:
			idx := s.IndexOf(req.Pid)
			if idx < 0 || s.Processes[idx].State != Executing {
				return s
			}
			next, err := PushToQueue(s, 0, req.Pid)
			if err != nil {
				return s
			}
			return switchToScheduled(next, roundRobinSchedule)

		case request.ProcTimeQuantumExpired:
			next := s
			if current, ok := s.Executing(); ok {
				var err error
				next, err = PushToQueue(s, 0, current.Pid)
				if err != nil {
					return s
				}
			}
			return switchToScheduled(next, roundRobinSchedule)

		default:
			return s
		}
	})
}

func (roundRobinStrategy) RequestDescription(req request.ProcessRequest) string {
	return requestDescriptionDefault(req)
}
