package memory

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/oslabs/ossim/internal/request"
)

func TestProcessRequestCreateThenFreeThenCreateReusesSpace(t *testing.T) {
	s := Initial()

	create1, err := request.NewCreateProcess(1, 4096*10, 10)
	require.NoError(t, err)
	s = ProcessRequest(FirstAppropriate, create1, s)
	require.Len(t, s.Blocks, 2)

	terminate1, err := request.NewTerminateProcess(1)
	require.NoError(t, err)
	s = ProcessRequest(FirstAppropriate, terminate1, s)
	require.Len(t, s.Blocks, 1, "terminate must coalesce back to a single free block")

	create2, err := request.NewCreateProcess(2, 4096*10, 10)
	require.NoError(t, err)
	s = ProcessRequest(FirstAppropriate, create2, s)
	require.Equal(t, int32(2), s.Blocks[0].Pid)
}

func TestProcessRequestDuplicatePidCreateIsIgnored(t *testing.T) {
	s := Initial()
	create, _ := request.NewCreateProcess(1, 4096*10, 10)
	s = ProcessRequest(FirstAppropriate, create, s)
	before := s

	s = ProcessRequest(FirstAppropriate, create, s)
	require.True(t, before.Equal(s), "duplicate-pid create must be a no-op")
}

func TestProcessRequestCreateDefragmentsWhenNoSingleBlockFits(t *testing.T) {
	s := fragmentedState()

	create, err := request.NewCreateProcess(3, 90112, 22)
	require.NoError(t, err)

	next := ProcessRequest(FirstAppropriate, create, s)
	want := State{
		Blocks: []Block{
			{Pid: 0, Address: 0, Size: 12},
			{Pid: 2, Address: 12, Size: 3},
			{Pid: 2, Address: 15, Size: 1},
			{Pid: 3, Address: 16, Size: 22},
			{Pid: FreePid, Address: 38, Size: 5},
		},
		FreeBlocks: []Block{{Pid: FreePid, Address: 38, Size: 5}},
	}
	if diff := cmp.Diff(want, next); diff != "" {
		t.Fatalf("create-with-defragment mismatch (-want +got):\n%s", diff)
	}
}

func TestSortFreeBlocksOrdersByStrategy(t *testing.T) {
	s := State{
		FreeBlocks: []Block{
			{Pid: FreePid, Address: 50, Size: 5},
			{Pid: FreePid, Address: 0, Size: 20},
			{Pid: FreePid, Address: 30, Size: 5},
		},
	}

	first := sortFreeBlocks(FirstAppropriate, s)
	wantFirst := []Block{
		{Pid: FreePid, Address: 0, Size: 20},
		{Pid: FreePid, Address: 30, Size: 5},
		{Pid: FreePid, Address: 50, Size: 5},
	}
	if diff := cmp.Diff(wantFirst, first.FreeBlocks); diff != "" {
		t.Fatalf("FirstAppropriate order mismatch (-want +got):\n%s", diff)
	}

	most := sortFreeBlocks(MostAppropriate, s)
	wantMost := []Block{
		{Pid: FreePid, Address: 30, Size: 5},
		{Pid: FreePid, Address: 50, Size: 5},
		{Pid: FreePid, Address: 0, Size: 20},
	}
	if diff := cmp.Diff(wantMost, most.FreeBlocks); diff != "" {
		t.Fatalf("MostAppropriate order mismatch (-want +got):\n%s", diff)
	}

	least := sortFreeBlocks(LeastAppropriate, s)
	wantLeast := []Block{
		{Pid: FreePid, Address: 0, Size: 20},
		{Pid: FreePid, Address: 30, Size: 5},
		{Pid: FreePid, Address: 50, Size: 5},
	}
	if diff := cmp.Diff(wantLeast, least.FreeBlocks); diff != "" {
		t.Fatalf("LeastAppropriate order mismatch (-want +got):\n%s", diff)
	}
}
