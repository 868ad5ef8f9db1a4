package process

import "github.com/oslabs/ossim/internal/request"

// unixStrategy schedules the highest non-empty priority queue (15 down to
// 0). The EXECUTING process ages: every 2 timer ticks, while its priority
// sits in (0,8), it loses 1 priority. InitIO resets the process's timer;
// TerminateIO returns it to priority min(priority+1,7). Preemptive.
type unixStrategy struct{}

func (unixStrategy) Kind() StrategyKind { return UNIX }

func unixSchedule(s ProcessesState) (int32, int, bool) {
	for i := QueueCount - 1; i >= 0; i-- {
		if len(s.Queues[i]) > 0 {
			return s.Queues[i][0], i, true
		}
	}
	return 0, 0, false
}

func unixAge(s ProcessesState) ProcessesState {
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
	current := s.Processes[idx]
	if current.Timer%2 == 0 && current.Timer > 0 && current.Priority > 0 && current.Priority < 8 {
		next := s.Clone()
		next.Processes[idx].Priority--
		return next
	}
	return s
}

func (unixStrategy) ProcessRequest(req request.ProcessRequest, s ProcessesState) ProcessesState {
	aged := unixAge(s)
	return dispatch(aged, req, func(s ProcessesState, req request.ProcessRequest) ProcessesState {
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
			next, err = PushToQueue(next, int(p.Priority), p.Pid)
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
			next, err = resetTimer(next, req.Pid)
			if err != nil {
				return s
			}
			return switchToScheduled(next, unixSchedule)

		case request.ProcTerminateIO:
			idx := s.IndexOf(req.Pid)
			if idx < 0 || s.Processes[idx].State != Waiting {
				return s
			}
			priority := s.Processes[idx].Priority + 1
			if priority > 7 {
				priority = 7
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
			next, err := PushToQueue(s, int(s.Processes[idx].Priority), req.Pid)
			if err != nil {
				return s
			}
			return switchToScheduled(next, unixSchedule)

		case request.ProcTimeQuantumExpired:
			next := s
			if current, ok := s.Executing(); ok {
				var err error
				next, err = PushToQueue(s, int(current.Priority), current.Pid)
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

func resetTimer(s ProcessesState, pid int32) (ProcessesState, error) {
	idx := s.IndexOf(pid)
	if idx < 0 {
		return s, nil
	}
	next := s.Clone()
	next.Processes[idx].Timer = 0
	return next, nil
}

func (unixStrategy) RequestDescription(req request.ProcessRequest) string {
	base := requestDescriptionDefault(req)
	if req.Kind == request.ProcCreateProcess {
		return base + ". priority = " + itoa(req.Priority)
	}
	return base
}
