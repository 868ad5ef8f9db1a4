package generator

import (
	"github.com/oslabs/ossim/internal/memory"
	"github.com/oslabs/ossim/internal/request"
	"github.com/oslabs/ossim/internal/task"
)

// requestTypeWeights is the biased distribution over memory request kinds:
// CREATE_PROCESS, FREE_MEMORY and TERMINATE_PROCESS each twice as likely as
// ALLOCATE_MEMORY.
var requestTypeWeights = []request.MemoryKind{
	request.MemCreateProcess, request.MemCreateProcess,
	request.MemAllocateMemory,
	request.MemFreeMemory, request.MemFreeMemory,
	request.MemTerminateProcess, request.MemTerminateProcess,
}

// GenerateMemoryTask builds a MemoryTask of requestCount requests under a
// uniformly chosen memory strategy, starting from the initial state.
func GenerateMemoryTask(src *Source, requestCount int) task.MemoryTask {
	strategyKind := memory.AllStrategies[src.IntRange(0, int32(len(memory.AllStrategies)-1))]

	state := memory.Initial()
	requests := make([]request.MemoryRequest, 0, requestCount)

	for i := 0; i < requestCount; i++ {
		valid := src.IntRange(0, 255)%3 > 0
		kind := requestTypeWeights[src.IntRange(0, int32(len(requestTypeWeights)-1))]

		var req request.MemoryRequest
		switch kind {
		case request.MemCreateProcess:
			req = genCreateProcess(src, state, valid)
		case request.MemTerminateProcess:
			req = genTerminateProcess(src, state, valid)
		case request.MemAllocateMemory:
			req = genAllocateMemory(src, state, valid)
		case request.MemFreeMemory:
			req = genFreeMemory(src, state, valid)
		}

		requests = append(requests, req)
		state = memory.ProcessRequest(strategyKind, req, state)
	}

	t, err := task.NewMemoryTask(strategyKind, 0, 0, memory.Initial(), memory.Initial(), requests, nil)
	if err != nil {
		panic(err)
	}
	return t
}

func usedPids(state memory.State) []int32 {
	var pids []int32
	seen := make(map[int32]bool)
	for _, b := range state.Blocks {
		if b.Pid != memory.FreePid && !seen[b.Pid] {
			seen[b.Pid] = true
			pids = append(pids, b.Pid)
		}
	}
	return pids
}

func availablePids(state memory.State) []int32 {
	used := make(map[int32]bool)
	for _, pid := range usedPids(state) {
		used[pid] = true
	}
	var available []int32
	for pid := int32(0); pid < 256; pid++ {
		if !used[pid] {
			available = append(available, pid)
		}
	}
	return available
}

func totalFreePages(state memory.State) int32 {
	return state.TotalFreePages()
}

// genRequestedMemory draws a page budget in [1, availablePages] and a byte
// count consistent with it, per the ((pages-1)*4096, pages*4096] rule.
func genRequestedMemory(src *Source, availablePages int32) (pages, bytes int32) {
	pages = src.IntRange(1, availablePages)
	return pages, src.IntRange((pages-1)*4096+1, pages*4096)
}

func genCreateProcess(src *Source, state memory.State, valid bool) request.MemoryRequest {
	available := availablePids(state)
	freePages := totalFreePages(state)

	if valid && len(available) > 0 && freePages > 0 {
		pages, bytes := genRequestedMemory(src, freePages)
		pid := src.ChoiceI32(available)
		req, err := request.NewCreateProcess(pid, bytes, pages)
		if err != nil {
			panic(err)
		}
		return req
	}

	pages, bytes := genRequestedMemory(src, src.IntRange(1, 255))
	pid := src.IntRange(0, 255)
	req, err := request.NewCreateProcess(pid, bytes, pages)
	if err != nil {
		panic(err)
	}
	return req
}

func genTerminateProcess(src *Source, state memory.State, valid bool) request.MemoryRequest {
	used := usedPids(state)
	available := availablePids(state)

	var pid int32
	switch {
	case valid && len(used) > 0:
		pid = src.ChoiceI32(used)
	case len(used) == 0:
		pid = src.ChoiceI32(available)
	default:
		pid = src.ChoiceI32(used)
	}
	req, err := request.NewTerminateProcess(pid)
	if err != nil {
		panic(err)
	}
	return req
}

func genAllocateMemory(src *Source, state memory.State, valid bool) request.MemoryRequest {
	used := usedPids(state)
	freePages := totalFreePages(state)

	if valid && len(used) > 0 && freePages > 0 {
		pages, bytes := genRequestedMemory(src, freePages)
		pid := src.ChoiceI32(used)
		req, err := request.NewAllocateMemory(pid, bytes, pages)
		if err != nil {
			panic(err)
		}
		return req
	}

	pages, bytes := genRequestedMemory(src, src.IntRange(1, 255))
	pid := src.IntRange(0, 255)
	req, err := request.NewAllocateMemory(pid, bytes, pages)
	if err != nil {
		panic(err)
	}
	return req
}

func genFreeMemory(src *Source, state memory.State, valid bool) request.MemoryRequest {
	var owned []memory.Block
	for _, b := range state.Blocks {
		if b.Pid != memory.FreePid {
			owned = append(owned, b)
		}
	}

	if valid && len(owned) > 0 {
		block := owned[src.IntRange(0, int32(len(owned)-1))]
		req, err := request.NewFreeMemory(block.Pid, block.Address)
		if err != nil {
			panic(err)
		}
		return req
	}

	pid := src.IntRange(0, 255)
	address := src.IntRange(0, 255)
	req, err := request.NewFreeMemory(pid, address)
	if err != nil {
		panic(err)
	}
	return req
}
