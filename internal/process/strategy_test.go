package process

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oslabs/ossim/internal/request"
)

func TestFCFSCreateSwitchesInWhenIdle(t *testing.T) {
	strategy := ForKind(FCFS)
	s := Initial()

	create, err := request.NewCreateProcessReq(0, -1, 0, 0, 0, 0)
	require.NoError(t, err)

	s = strategy.ProcessRequest(create, s)
	require.Len(t, s.Processes, 1)
	require.Equal(t, Executing, s.Processes[0].State)
	require.Equal(t, int32(1), s.Processes[0].Timer, "the post-request tick lands on the newly scheduled process")
	for i, q := range s.Queues {
		require.Emptyf(t, q, "queue %d must be drained", i)
	}
}

func TestFCFSDuplicatePidCreateIsIgnored(t *testing.T) {
	strategy := ForKind(FCFS)
	s := Initial()
	create, _ := request.NewCreateProcessReq(1, -1, 0, 0, 0, 0)
	s = strategy.ProcessRequest(create, s)
	before := s

	s = strategy.ProcessRequest(create, s)
	require.True(t, UpdateTimer(before).Equal(s), "only the post-request tick changes the state")
}

func TestFCFSTimeQuantumExpiredIsNoOp(t *testing.T) {
	strategy := ForKind(FCFS)
	s := Initial()
	create, _ := request.NewCreateProcessReq(1, -1, 0, 0, 0, 0)
	s = strategy.ProcessRequest(create, s)
	before := s

	s = strategy.ProcessRequest(request.NewTimeQuantumExpired(), s)
	require.Equal(t, before.Processes[0].State, s.Processes[0].State)
	require.Equal(t, before.Processes[0].Timer+1, s.Processes[0].Timer, "dispatch still ages the executing process")
}

func TestRoundRobinTimeQuantumExpiredRequeuesRunning(t *testing.T) {
	strategy := ForKind(RoundRobin)
	s := Initial()

	create1, _ := request.NewCreateProcessReq(1, -1, 0, 0, 0, 0)
	create2, _ := request.NewCreateProcessReq(2, -1, 0, 0, 0, 0)
	s = strategy.ProcessRequest(create1, s)
	s = strategy.ProcessRequest(create2, s)
	require.Equal(t, Executing, s.Processes[s.IndexOf(1)].State)
	require.Equal(t, []int32{2}, s.Queues[0])

	s = strategy.ProcessRequest(request.NewTimeQuantumExpired(), s)
	require.Equal(t, Executing, s.Processes[s.IndexOf(2)].State)
	require.Equal(t, []int32{1}, s.Queues[0])
}

func TestUnixPreemptsLowerPriorityExecuting(t *testing.T) {
	strategy := ForKind(UNIX)
	s := Initial()

	low, _ := request.NewCreateProcessReq(1, -1, 2, 0, 0, 0)
	s = strategy.ProcessRequest(low, s)
	require.Equal(t, Executing, s.Processes[s.IndexOf(1)].State)

	high, _ := request.NewCreateProcessReq(2, -1, 10, 0, 0, 0)
	s = strategy.ProcessRequest(high, s)
	require.Equal(t, Executing, s.Processes[s.IndexOf(2)].State, "higher-priority arrival must preempt")
	require.Equal(t, Active, s.Processes[s.IndexOf(1)].State)
}

func TestUnixAgesExecutingPriorityEverySecondTick(t *testing.T) {
	strategy := ForKind(UNIX)
	s := Initial()

	create, _ := request.NewCreateProcessReq(1, -1, 5, 0, 0, 0)
	s = strategy.ProcessRequest(create, s)
	require.Equal(t, int32(5), s.Processes[s.IndexOf(1)].Priority)
	require.Equal(t, int32(1), s.Processes[s.IndexOf(1)].Timer)

	// Ageing reads the timer before the post-request increment, so the
	// first quantum (timer 1) leaves priority alone and the second
	// (timer 2) decrements it.
	s = strategy.ProcessRequest(request.NewTimeQuantumExpired(), s)
	require.Equal(t, int32(5), s.Processes[s.IndexOf(1)].Priority)

	s = strategy.ProcessRequest(request.NewTimeQuantumExpired(), s)
	require.Equal(t, int32(4), s.Processes[s.IndexOf(1)].Priority)
}

func TestUnixTerminateIOBoostsReturningProcess(t *testing.T) {
	strategy := ForKind(UNIX)
	s := Initial()

	create, _ := request.NewCreateProcessReq(1, -1, 3, 0, 0, 0)
	s = strategy.ProcessRequest(create, s)
	s = strategy.ProcessRequest(mustRequest(request.NewInitIO(1)), s)
	require.Equal(t, Waiting, s.Processes[s.IndexOf(1)].State)
	require.Equal(t, int32(0), s.Processes[s.IndexOf(1)].Timer, "InitIO resets the timer")

	s = strategy.ProcessRequest(mustRequest(request.NewTerminateIO(1, 1)), s)
	require.Equal(t, Executing, s.Processes[s.IndexOf(1)].State)
	require.Equal(t, int32(4), s.Processes[s.IndexOf(1)].Priority, "returning process moves up one queue")
}

func TestAllStrategyKindsResolve(t *testing.T) {
	for _, kind := range append(append([]StrategyKind{}, PreemptiveStrategies...), NonPreemptiveStrategies...) {
		require.NotNilf(t, ForKind(kind), "ForKind(%s) must not be nil", kind)
	}
}
