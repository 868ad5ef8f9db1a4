package process

import (
	"strconv"

	"github.com/oslabs/ossim/internal/request"
)

func itoa(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

// StrategyKind names a process scheduling policy. The zero value is not a
// valid strategy.
type StrategyKind string

const (
	FCFS       StrategyKind = "FCFS"
	RoundRobin StrategyKind = "ROUNDROBIN"
	SJN        StrategyKind = "SJN"
	SRT        StrategyKind = "SRT"
	UNIX       StrategyKind = "UNIX"
	WinNT      StrategyKind = "WINNT"
	LinuxO1    StrategyKind = "LINUXO1"
)

// PreemptiveStrategies lists the strategies legal for a preemptive task
// (those that give TimeQuantumExpired a real effect).
var PreemptiveStrategies = []StrategyKind{RoundRobin, UNIX, WinNT, LinuxO1}

// NonPreemptiveStrategies lists the remaining strategies, for which
// TimeQuantumExpired is always a no-op.
var NonPreemptiveStrategies = []StrategyKind{FCFS, SJN, SRT}

// Preemptive reports whether kind gives TimeQuantumExpired a real effect.
func Preemptive(kind StrategyKind) bool {
	switch kind {
	case RoundRobin, UNIX, WinNT, LinuxO1:
		return true
	default:
		return false
	}
}

// Strategy dispatches a process request against a state and produces the
// resulting state. Every implementation lives in its own file, grounded on
// one scheduling discipline.
type Strategy interface {
	Kind() StrategyKind
	ProcessRequest(req request.ProcessRequest, s ProcessesState) ProcessesState
	RequestDescription(req request.ProcessRequest) string
}

// ForKind returns the Strategy implementing kind.
func ForKind(kind StrategyKind) Strategy {
	switch kind {
	case FCFS:
		return fcfsStrategy{}
	case RoundRobin:
		return roundRobinStrategy{}
	case SJN:
		return sjnStrategy{}
	case SRT:
		return srtStrategy{}
	case UNIX:
		return unixStrategy{}
	case WinNT:
		return winNtStrategy{}
	case LinuxO1:
		return linuxO1Strategy{}
	default:
		return nil
	}
}

// dispatch applies fn to req and s, then runs UpdateTimer unconditionally —
// the wrapper every strategy's ProcessRequest shares.
func dispatch(s ProcessesState, req request.ProcessRequest, fn func(ProcessesState, request.ProcessRequest) ProcessesState) ProcessesState {
	return UpdateTimer(fn(s, req))
}

// switchIfIdle runs schedule and, if nothing is currently EXECUTING and
// schedule found a candidate, pops and switches to it.
func switchIfIdle(s ProcessesState, schedule func(ProcessesState) (int32, int, bool)) ProcessesState {
	if _, ok := s.Executing(); ok {
		return s
	}
	return switchToScheduled(s, schedule)
}

// switchToScheduled runs schedule and, if it found a candidate, pops and
// switches to it regardless of what is currently executing.
func switchToScheduled(s ProcessesState, schedule func(ProcessesState) (int32, int, bool)) ProcessesState {
	pid, queueIdx, ok := schedule(s)
	if !ok {
		return s
	}
	next, err := PopFromQueue(s, queueIdx)
	if err != nil {
		return s
	}
	next, err = SwitchTo(next, pid)
	if err != nil {
		return s
	}
	return next
}

// switchPreemptive is the UNIX/WinNT variant of step 3 of the canonical
// request-handling skeleton: if nothing is EXECUTING, switch to whatever
// schedule finds; if something is EXECUTING, switch only when the
// scheduled candidate's priority exceeds it, requeuing the preempted
// process at its own priority first.
func switchPreemptive(s ProcessesState, schedule func(ProcessesState) (int32, int, bool)) ProcessesState {
	pid, queueIdx, ok := schedule(s)
	if !ok {
		return s
	}
	candidateIdx := s.IndexOf(pid)
	if candidateIdx < 0 {
		return s
	}
	candidate := s.Processes[candidateIdx]

	current, hasCurrent := s.Executing()
	next := s
	if hasCurrent {
		if candidate.Priority <= current.Priority {
			return s
		}
		var err error
		next, err = PushToQueue(next, int(current.Priority), current.Pid)
		if err != nil {
			return s
		}
	}

	next, err := PopFromQueue(next, queueIdx)
	if err != nil {
		return s
	}
	next, err = SwitchTo(next, pid)
	if err != nil {
		return s
	}
	return next
}

// createProcessPrecondition validates the common CreateProcessReq guard
// shared by every strategy: pid must be free, and if ppid is set, the
// parent must exist and be EXECUTING.
func createProcessPrecondition(s ProcessesState, req request.ProcessRequest) bool {
	if s.IndexOf(req.Pid) >= 0 {
		return false
	}
	if req.Ppid != -1 {
		idx := s.IndexOf(req.Ppid)
		if idx < 0 || s.Processes[idx].State != Executing {
			return false
		}
	}
	return true
}

func requestDescriptionDefault(req request.ProcessRequest) string {
	switch req.Kind {
	case request.ProcCreateProcess:
		return "create process"
	case request.ProcTerminateProcess:
		return "terminate process"
	case request.ProcInitIO:
		return "init io"
	case request.ProcTerminateIO:
		return "terminate io"
	case request.ProcTransferControl:
		return "transfer control"
	case request.ProcTimeQuantumExpired:
		return "time quantum expired"
	default:
		return ""
	}
}
