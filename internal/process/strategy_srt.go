package process

import "github.com/oslabs/ossim/internal/request"

// srtStrategy (Shortest Remaining Time) is SJN with the sort key changed
// from claimed WorkTime to remaining time (WorkTime-Timer). Non-preemptive
// in this model: like SJN, TimeQuantumExpired is a no-op.
type srtStrategy struct{}

func (srtStrategy) Kind() StrategyKind { return SRT }

func (srtStrategy) ProcessRequest(req request.ProcessRequest, s ProcessesState) ProcessesState {
	return dispatch(s, req, func(s ProcessesState, req request.ProcessRequest) ProcessesState {
		return sjnLikeProcessRequest(s, req, sjnSchedule, func(p Process) int32 { return p.WorkTime - p.Timer })
	})
}

func (srtStrategy) RequestDescription(req request.ProcessRequest) string {
	base := requestDescriptionDefault(req)
	if req.Kind == request.ProcCreateProcess {
		return base + ". expected work time = " + itoa(req.WorkTime)
	}
	return base
}
