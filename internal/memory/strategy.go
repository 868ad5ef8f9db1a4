package memory

import (
	"sort"

	"github.com/oslabs/ossim/internal/request"
)

// StrategyKind names a memory placement policy. The zero value is not a
// valid strategy.
type StrategyKind string

const (
	FirstAppropriate StrategyKind = "FIRST_APPROPRIATE"
	MostAppropriate  StrategyKind = "MOST_APPROPRIATE"
	LeastAppropriate StrategyKind = "LEAST_APPROPRIATE"
)

// AllStrategies lists every memory StrategyKind, in a stable order used by
// the generator to pick one uniformly at random.
var AllStrategies = []StrategyKind{FirstAppropriate, MostAppropriate, LeastAppropriate}

// ProcessRequest runs the shared allocation pipeline for req against s,
// dispatching by request kind, and returns the resulting state with
// FreeBlocks re-sorted per the strategy's placement policy. Domain-failure
// preconditions are absorbed: the state is returned unchanged rather than
// propagating an error.
func ProcessRequest(kind StrategyKind, req request.MemoryRequest, s State) State {
	switch req.Kind {
	case request.MemCreateProcess:
		next := allocateGeneral(s, req.Pid, req.Pages, true)
		return sortFreeBlocks(kind, next)
	case request.MemTerminateProcess:
		next := terminateProcess(s, req.Pid)
		next = CompressAllAdjacentFree(next)
		return sortFreeBlocks(kind, next)
	case request.MemAllocateMemory:
		next := allocateGeneral(s, req.Pid, req.Pages, false)
		return sortFreeBlocks(kind, next)
	case request.MemFreeMemory:
		next := freeMemoryByAddress(s, req.Pid, req.Address)
		next = CompressAllAdjacentFree(next)
		return sortFreeBlocks(kind, next)
	default:
		return s
	}
}

func terminateProcess(s State, pid int32) State {
	current := s
	for {
		idx := indexOfOwner(current.Blocks, pid)
		if idx < 0 {
			return current
		}
		next, err := Free(current, pid, idx)
		if err != nil {
			return current
		}
		current = next
	}
}

func freeMemoryByAddress(s State, pid, address int32) State {
	idx := -1
	for i, b := range s.Blocks {
		if b.Address == address {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}
	if s.Blocks[idx].Pid != pid {
		return s
	}
	next, err := Free(s, pid, idx)
	if err != nil {
		return s
	}
	return next
}

// allocateGeneral is the shared general allocator: locate any block owned
// by pid (duplicate-create / allocate-for-unknown-pid is ignored), pick a
// free block via the current FreeBlocks order, defragmenting first if no
// single block is large enough but total free space suffices.
func allocateGeneral(s State, pid, pages int32, create bool) State {
	owned := indexOfOwner(s.Blocks, pid) >= 0
	if create && owned {
		return s
	}
	if !create && !owned {
		return s
	}

	if freeIdx := indexOfFreeBlock(s.FreeBlocks, pages); freeIdx >= 0 {
		blockIdx := indexOfBlockEqual(s.Blocks, s.FreeBlocks[freeIdx])
		next, err := Allocate(s, blockIdx, pid, pages)
		if err != nil {
			return s
		}
		return next
	}

	if s.TotalFreePages() >= pages {
		defragged := Defragment(s)
		freeIdx := indexOfFreeBlock(defragged.FreeBlocks, pages)
		if freeIdx < 0 {
			return s
		}
		blockIdx := indexOfBlockEqual(defragged.Blocks, defragged.FreeBlocks[freeIdx])
		next, err := Allocate(defragged, blockIdx, pid, pages)
		if err != nil {
			return s
		}
		return next
	}

	return s
}

// RequestDescription returns a short human-readable tag for req, used by
// hosts listing a task's request sequence.
func RequestDescription(req request.MemoryRequest) string {
	switch req.Kind {
	case request.MemCreateProcess:
		return "create process"
	case request.MemTerminateProcess:
		return "terminate process"
	case request.MemAllocateMemory:
		return "allocate memory"
	case request.MemFreeMemory:
		return "free memory"
	default:
		return ""
	}
}

func indexOfBlockEqual(blocks []Block, target Block) int {
	for i, b := range blocks {
		if b.Equal(target) {
			return i
		}
	}
	return -1
}

func sortFreeBlocks(kind StrategyKind, s State) State {
	sorted := append([]Block(nil), s.FreeBlocks...)

	switch kind {
	case FirstAppropriate:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Address < sorted[j].Address
		})
	case MostAppropriate:
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].Size == sorted[j].Size {
				return sorted[i].Address < sorted[j].Address
			}
			return sorted[i].Size < sorted[j].Size
		})
	case LeastAppropriate:
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].Size == sorted[j].Size {
				return sorted[i].Address < sorted[j].Address
			}
			return sorted[i].Size > sorted[j].Size
		})
	}

	return State{Blocks: s.Blocks, FreeBlocks: sorted}
}
