package process

import "github.com/oslabs/ossim/internal/request"

// linuxO1Strategy runs two FIFO queues: 0 (active) and 1 (expired).
// TimeQuantumExpired moves the running process to queue 1. When the next
// process is about to be scheduled and queue 0 is empty while queue 1 holds
// processes, queue 1 first drains into queue 0 in order; a step can
// therefore end with queue 0 empty and queue 1 occupied. Preemptive.
type linuxO1Strategy struct{}

func (linuxO1Strategy) Kind() StrategyKind { return LinuxO1 }

func linuxO1Schedule(s ProcessesState) (int32, int, bool) {
	if len(s.Queues[0]) > 0 {
		return s.Queues[0][0], 0, true
	}
	return 0, 0, false
}

// exchangeQueues drains the expired queue into the active one, in order,
// once the active queue runs dry. Each drained process's priority is
// restamped to 0, as if popped from queue 1 and pushed to queue 0.
func exchangeQueues(s ProcessesState) ProcessesState {
	if len(s.Queues[1]) == 0 || len(s.Queues[0]) > 0 {
		return s
	}
	next := s.Clone()
	next.Queues[0] = next.Queues[1]
	next.Queues[1] = nil
	for _, pid := range next.Queues[0] {
		if idx := next.IndexOf(pid); idx >= 0 {
			next.Processes[idx].Priority = 0
		}
	}
	return next
}

func (linuxO1Strategy) ProcessRequest(req request.ProcessRequest, s ProcessesState) ProcessesState {
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
			return switchIfIdle(next, linuxO1Schedule)

		case request.ProcTerminateProcess:
			if s.IndexOf(req.Pid) < 0 {
				return s
			}
			next, err := Terminate(s, req.Pid)
			if err != nil {
				return s
			}
			if _, ok := next.Executing(); ok {
				return next
			}
			next = exchangeQueues(next)
			return switchToScheduled(next, linuxO1Schedule)

		case request.ProcInitIO:
			idx := s.IndexOf(req.Pid)
			if idx < 0 || s.Processes[idx].State != Executing {
				return s
			}
			next, err := ChangeState(s, req.Pid, Waiting)
			if err != nil {
				return s
			}
			next = exchangeQueues(next)
			return switchToScheduled(next, linuxO1Schedule)

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
			if _, ok := next.Executing(); ok {
				return next
			}
			next = exchangeQueues(next)
			return switchToScheduled(next, linuxO1Schedule)

		case request.ProcTransferControl:
			idx := s.IndexOf(req.Pid)
			if idx < 0 || s.Processes[idx].State != Executing {
				return s
			}
			next, err := PushToQueue(s, 0, req.Pid)
			if err != nil {
				return s
			}
			return switchToScheduled(next, linuxO1Schedule)

		case request.ProcTimeQuantumExpired:
			next := s
			if current, ok := s.Executing(); ok {
				var err error
				next, err = PushToQueue(s, 1, current.Pid)
				if err != nil {
					return s
				}
			}
			next = exchangeQueues(next)
			return switchToScheduled(next, linuxO1Schedule)

		default:
			return s
		}
	})
}

func (linuxO1Strategy) RequestDescription(req request.ProcessRequest) string {
	return requestDescriptionDefault(req)
}
