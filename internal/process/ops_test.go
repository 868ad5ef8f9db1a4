package process

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustProcess(t *testing.T, pid, ppid, priority, basePriority, timer, workTime int32) Process {
	t.Helper()
	p, err := New(pid, ppid, priority, basePriority, timer, workTime)
	require.NoError(t, err)
	return p
}

func TestAddProcessKeepsSortedOrder(t *testing.T) {
	s := Initial()
	s, err := AddProcess(s, mustProcess(t, 5, -1, 0, 0, 0, 0))
	require.NoError(t, err)
	s, err = AddProcess(s, mustProcess(t, 1, -1, 0, 0, 0, 0))
	require.NoError(t, err)

	require.Equal(t, int32(1), s.Processes[0].Pid)
	require.Equal(t, int32(5), s.Processes[1].Pid)
}

func TestAddProcessRejectsDuplicatePid(t *testing.T) {
	s := Initial()
	s, _ = AddProcess(s, mustProcess(t, 1, -1, 0, 0, 0, 0))
	_, err := AddProcess(s, mustProcess(t, 1, -1, 0, 0, 0, 0))
	require.Error(t, err)
}

func TestAddProcessRejectsMissingParent(t *testing.T) {
	s := Initial()
	_, err := AddProcess(s, mustProcess(t, 1, 9, 0, 0, 0, 0))
	require.Error(t, err)
}

func TestPushToQueueSetsPriorityAndRejectsDuplicate(t *testing.T) {
	s := Initial()
	s, _ = AddProcess(s, mustProcess(t, 1, -1, 0, 0, 0, 0))

	s, err := PushToQueue(s, 3, 1)
	require.NoError(t, err)
	require.Equal(t, []int32{1}, s.Queues[3])
	require.Equal(t, int32(3), s.Processes[0].Priority)

	_, err = PushToQueue(s, 4, 1)
	require.Error(t, err)
}

func TestPopFromQueueRejectsEmpty(t *testing.T) {
	s := Initial()
	_, err := PopFromQueue(s, 0)
	require.Error(t, err)
}

func TestSwitchToDemotesPreviousAndIsNoOpWhenSame(t *testing.T) {
	s := Initial()
	s, _ = AddProcess(s, mustProcess(t, 1, -1, 0, 0, 0, 0))
	s, _ = AddProcess(s, mustProcess(t, 2, -1, 0, 0, 0, 0))

	s, err := SwitchTo(s, 1)
	require.NoError(t, err)
	require.Equal(t, Executing, s.Processes[s.IndexOf(1)].State)

	s, err = SwitchTo(s, 2)
	require.NoError(t, err)
	require.Equal(t, Active, s.Processes[s.IndexOf(1)].State)
	require.Equal(t, Executing, s.Processes[s.IndexOf(2)].State)

	before := s
	s, err = SwitchTo(s, 2)
	require.NoError(t, err)
	require.True(t, before.Equal(s))
}

func TestTerminateRemovesDescendantsTransitively(t *testing.T) {
	s := Initial()
	s, _ = AddProcess(s, mustProcess(t, 1, -1, 0, 0, 0, 0))
	s, _ = AddProcess(s, mustProcess(t, 2, 1, 0, 0, 0, 0))
	s, _ = AddProcess(s, mustProcess(t, 3, 2, 0, 0, 0, 0))
	s, _ = PushToQueue(s, 0, 3)

	s, err := Terminate(s, 1)
	require.NoError(t, err)
	require.Empty(t, s.Processes)
	require.Empty(t, s.Queues[0])
}

func TestUpdateTimerIncrementsSoleExecuting(t *testing.T) {
	s := Initial()
	s, _ = AddProcess(s, mustProcess(t, 1, -1, 0, 0, 0, 0))
	s, _ = SwitchTo(s, 1)

	s = UpdateTimer(s)
	require.Equal(t, int32(1), s.Processes[0].Timer)
}
