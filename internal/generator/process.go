package generator

import (
	"github.com/oslabs/ossim/internal/process"
	"github.com/oslabs/ossim/internal/request"
	"github.com/oslabs/ossim/internal/task"
)

// generatorMaxPid bounds the pid working set the generator draws from, kept
// small so generated tasks stay readable; distinct from the domain's
// MaxPid range accepted by constructors.
const generatorMaxPid = 16

// GenerateProcessesTask builds a ProcessesTask of requestCount requests
// under a uniformly chosen strategy legal for the preemptive flag.
func GenerateProcessesTask(src *Source, requestCount int, preemptive bool) task.ProcessesTask {
	pool := process.NonPreemptiveStrategies
	if preemptive {
		pool = process.PreemptiveStrategies
	}
	strategyKind := pool[src.IntRange(0, int32(len(pool)-1))]
	strategy := process.ForKind(strategyKind)

	state := process.Initial()
	requests := make([]request.ProcessRequest, 0, requestCount)
	lastValid := true

	for i := 0; i < requestCount; i++ {
		validRequired := i == 0 || src.IntRange(0, 255)%16 > 0

		var last *request.ProcessRequest
		if len(requests) > 0 {
			last = &requests[len(requests)-1]
		}

		validCandidates := candidates(strategyKind, src, state, last, true)
		invalidCandidates := candidates(strategyKind, src, state, last, false)

		lastValid = (validRequired && len(validCandidates) > 0) ||
			(!validRequired && len(invalidCandidates) == 0)

		var req request.ProcessRequest
		if lastValid {
			req = validCandidates[src.IntRange(0, int32(len(validCandidates)-1))]
		} else {
			req = invalidCandidates[src.IntRange(0, int32(len(invalidCandidates)-1))]
		}

		requests = append(requests, req)
		state = strategy.ProcessRequest(req, state)
	}

	t, err := task.NewProcessesTask(strategyKind, 0, 0, process.Initial(), process.Initial(), requests, nil)
	if err != nil {
		panic(err)
	}
	return t
}

// candidates builds the filtered set of legal (or illegal, if !valid)
// requests for the next step, following the shared skeleton every
// per-strategy generator specializes: CreateProcessReq (x2), a
// TerminateProcessReq, InitIO (x2), TerminateIO (x2), a TransferControl,
// and — for preemptive strategies — a TimeQuantumExpired.
func candidates(kind process.StrategyKind, src *Source, s process.ProcessesState, last *request.ProcessRequest, valid bool) []request.ProcessRequest {
	raw := make([]request.ProcessRequest, 0, 9)
	if r, ok := genCreateProcessReq(kind, src, s, valid); ok {
		raw = append(raw, r)
	}
	if r, ok := genCreateProcessReq(kind, src, s, valid); ok {
		raw = append(raw, r)
	}
	if r, ok := genTerminateProcessReq(src, s, valid); ok {
		raw = append(raw, r)
	}
	if r, ok := genInitIO(src, s, valid); ok {
		raw = append(raw, r)
	}
	if r, ok := genInitIO(src, s, valid); ok {
		raw = append(raw, r)
	}
	if r, ok := genTerminateIO(kind, src, s, valid); ok {
		raw = append(raw, r)
	}
	if r, ok := genTerminateIO(kind, src, s, valid); ok {
		raw = append(raw, r)
	}
	if r, ok := genTransferControl(src, s, valid); ok {
		raw = append(raw, r)
	}
	if process.Preemptive(kind) {
		raw = append(raw, request.NewTimeQuantumExpired())
	}

	if last == nil {
		var firstOnly []request.ProcessRequest
		for _, r := range raw {
			if r.Kind == request.ProcCreateProcess {
				firstOnly = append(firstOnly, r)
			}
		}
		return firstOnly
	}

	var filtered []request.ProcessRequest
	for _, r := range raw {
		if r.Kind == request.ProcTimeQuantumExpired && last.Kind == request.ProcTimeQuantumExpired {
			continue
		}
		if r.Kind == request.ProcTransferControl && last.Kind == request.ProcTransferControl {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

func usedPidsP(s process.ProcessesState) []int32 {
	pids := make([]int32, len(s.Processes))
	for i, p := range s.Processes {
		pids[i] = p.Pid
	}
	return pids
}

func availablePidsP(s process.ProcessesState) []int32 {
	used := make(map[int32]bool, len(s.Processes))
	for _, p := range s.Processes {
		used[p.Pid] = true
	}
	var available []int32
	for pid := int32(0); pid < generatorMaxPid; pid++ {
		if !used[pid] {
			available = append(available, pid)
		}
	}
	return available
}

func withoutPid(pids []int32, pid int32) []int32 {
	out := make([]int32, 0, len(pids))
	for _, p := range pids {
		if p != pid {
			out = append(out, p)
		}
	}
	return out
}

func genCreateProcessReq(kind process.StrategyKind, src *Source, s process.ProcessesState, valid bool) (request.ProcessRequest, bool) {
	available := availablePidsP(s)
	used := usedPidsP(s)

	var base request.ProcessRequest
	var ok bool

	if valid && len(available) > 0 {
		pid := src.ChoiceI32(available)
		ppid := int32(-1)
		if src.Bool() {
			if exec, has := s.Executing(); has {
				ppid = exec.Pid
			}
		}
		base, _ = request.NewCreateProcessReq(pid, ppid, 0, 0, 0, 0)
		ok = true
	} else if !valid && len(used) > 0 {
		pid := src.ChoiceI32(used)
		base, _ = request.NewCreateProcessReq(pid, -1, 0, 0, 0, 0)
		ok = true
	}
	if !ok {
		return request.ProcessRequest{}, false
	}

	return specializeCreateProcess(kind, src, base), true
}

// specializeCreateProcess fills in the priority/basePriority/workTime
// fields a CreateProcessReq needs under the given strategy.
func specializeCreateProcess(kind process.StrategyKind, src *Source, base request.ProcessRequest) request.ProcessRequest {
	switch kind {
	case process.SJN, process.SRT:
		base.WorkTime = src.IntRange(4, 32)
	case process.UNIX:
		base.Priority = src.IntRange(0, 11)
		base.BasePriority = 0
	case process.WinNT:
		priority := src.IntRange(0, 11)
		base.Priority = priority
		base.BasePriority = priority
	}
	return base
}

func genTerminateProcessReq(src *Source, s process.ProcessesState, valid bool) (request.ProcessRequest, bool) {
	used := usedPidsP(s)
	available := availablePidsP(s)

	var pid int32
	switch {
	case valid && len(used) > 0:
		pid = src.ChoiceI32(used)
	case !valid && len(available) > 0:
		pid = src.ChoiceI32(available)
	default:
		return request.ProcessRequest{}, false
	}
	req, _ := request.NewTerminateProcessReq(pid)
	return req, true
}

func genInitIO(src *Source, s process.ProcessesState, valid bool) (request.ProcessRequest, bool) {
	exec, hasExec := s.Executing()
	used := usedPidsP(s)
	if hasExec {
		used = withoutPid(used, exec.Pid)
	}

	if valid && hasExec {
		req, _ := request.NewInitIO(exec.Pid)
		return req, true
	}
	if !valid && len(used) > 0 {
		req, _ := request.NewInitIO(src.ChoiceI32(used))
		return req, true
	}
	return request.ProcessRequest{}, false
}

func genTerminateIO(kind process.StrategyKind, src *Source, s process.ProcessesState, valid bool) (request.ProcessRequest, bool) {
	var waiting, other []int32
	for _, p := range s.Processes {
		if p.State == process.Waiting {
			waiting = append(waiting, p.Pid)
		}
		if p.State == process.Active || p.State == process.Executing {
			other = append(other, p.Pid)
		}
	}

	var pid int32
	switch {
	case valid && len(waiting) > 0:
		pid = src.ChoiceI32(waiting)
	case !valid && len(other) > 0:
		pid = src.ChoiceI32(other)
	default:
		return request.ProcessRequest{}, false
	}

	augment := int32(1)
	if kind == process.WinNT {
		augment = src.IntRange(1, 3)
	}
	req, _ := request.NewTerminateIO(pid, augment)
	return req, true
}

func genTransferControl(src *Source, s process.ProcessesState, valid bool) (request.ProcessRequest, bool) {
	exec, hasExec := s.Executing()
	used := usedPidsP(s)
	if hasExec {
		used = withoutPid(used, exec.Pid)
	}

	if valid && hasExec {
		req, _ := request.NewTransferControl(exec.Pid)
		return req, true
	}
	if !valid && len(used) > 0 {
		req, _ := request.NewTransferControl(src.ChoiceI32(used))
		return req, true
	}
	return request.ProcessRequest{}, false
}
