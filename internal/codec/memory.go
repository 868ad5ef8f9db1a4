// Package codec implements the canonical JSON encode/decode pair for every
// domain value (C8): memory and process states, requests, strategies, and
// tasks.
package codec

import (
	"encoding/json"

	"github.com/oslabs/ossim/internal/memory"
	"github.com/oslabs/ossim/internal/ossimerr"
	"github.com/oslabs/ossim/internal/request"
)

// memoryBlockJSON mirrors MemoryBlock's canonical shape: {pid, address, size}.
type memoryBlockJSON struct {
	Pid     int32 `json:"pid"`
	Address int32 `json:"address"`
	Size    int32 `json:"size"`
}

func encodeBlock(b memory.Block) memoryBlockJSON {
	return memoryBlockJSON{Pid: b.Pid, Address: b.Address, Size: b.Size}
}

func decodeBlock(j memoryBlockJSON) (memory.Block, error) {
	return memory.NewBlock(j.Pid, j.Address, j.Size)
}

// memoryStateJSON mirrors MemoryState's canonical shape:
// {blocks:[…], free_blocks:[…]}.
type memoryStateJSON struct {
	Blocks     []memoryBlockJSON `json:"blocks"`
	FreeBlocks []memoryBlockJSON `json:"free_blocks"`
}

// EncodeMemoryState renders a memory.State as its canonical JSON value.
func EncodeMemoryState(s memory.State) json.RawMessage {
	j := memoryStateJSON{
		Blocks:     make([]memoryBlockJSON, len(s.Blocks)),
		FreeBlocks: make([]memoryBlockJSON, len(s.FreeBlocks)),
	}
	for i, b := range s.Blocks {
		j.Blocks[i] = encodeBlock(b)
	}
	for i, b := range s.FreeBlocks {
		j.FreeBlocks[i] = encodeBlock(b)
	}
	raw, err := json.Marshal(j)
	if err != nil {
		panic(err)
	}
	return raw
}

// DecodeMemoryState parses a canonical MemoryState JSON value.
func DecodeMemoryState(raw []byte) (memory.State, error) {
	var j memoryStateJSON
	if err := json.Unmarshal(raw, &j); err != nil {
		return memory.State{}, err
	}

	// Empty slices decode to nil so a decoded state compares equal to one
	// built through the primitive operations.
	var blocks, freeBlocks []memory.Block
	for _, bj := range j.Blocks {
		b, err := decodeBlock(bj)
		if err != nil {
			return memory.State{}, err
		}
		blocks = append(blocks, b)
	}
	for _, bj := range j.FreeBlocks {
		b, err := decodeBlock(bj)
		if err != nil {
			return memory.State{}, err
		}
		freeBlocks = append(freeBlocks, b)
	}

	return memory.State{Blocks: blocks, FreeBlocks: freeBlocks}, nil
}

// memoryRequestJSON is the lenient decode shape shared by every memory
// request variant; encoding emits only the fields the variant defines.
type memoryRequestJSON struct {
	Type    string `json:"type"`
	Pid     int32  `json:"pid"`
	Bytes   int32  `json:"bytes"`
	Pages   int32  `json:"pages"`
	Address int32  `json:"address"`
}

// EncodeMemoryRequest renders a request.MemoryRequest as its canonical
// tagged JSON value. Each variant carries exactly its own fields, zero
// values included.
func EncodeMemoryRequest(r request.MemoryRequest) json.RawMessage {
	var v interface{}
	switch r.Kind {
	case request.MemCreateProcess, request.MemAllocateMemory:
		v = struct {
			Type  string `json:"type"`
			Pid   int32  `json:"pid"`
			Bytes int32  `json:"bytes"`
			Pages int32  `json:"pages"`
		}{string(r.Kind), r.Pid, r.Bytes, r.Pages}
	case request.MemFreeMemory:
		v = struct {
			Type    string `json:"type"`
			Pid     int32  `json:"pid"`
			Address int32  `json:"address"`
		}{string(r.Kind), r.Pid, r.Address}
	default:
		v = struct {
			Type string `json:"type"`
			Pid  int32  `json:"pid"`
		}{string(r.Kind), r.Pid}
	}
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return raw
}

// DecodeMemoryRequest parses a canonical MemoryRequest JSON value.
func DecodeMemoryRequest(raw []byte) (request.MemoryRequest, error) {
	var j memoryRequestJSON
	if err := json.Unmarshal(raw, &j); err != nil {
		return request.MemoryRequest{}, err
	}

	switch request.MemoryKind(j.Type) {
	case request.MemCreateProcess:
		return request.NewCreateProcess(j.Pid, j.Bytes, j.Pages)
	case request.MemTerminateProcess:
		return request.NewTerminateProcess(j.Pid)
	case request.MemAllocateMemory:
		return request.NewAllocateMemory(j.Pid, j.Bytes, j.Pages)
	case request.MemFreeMemory:
		return request.NewFreeMemory(j.Pid, j.Address)
	default:
		return request.MemoryRequest{}, &ossimerr.CodecError{What: ossimerr.UnknownRequest, Tag: j.Type}
	}
}

// memoryStrategyNames maps every memory.StrategyKind to its canonical wire
// name; identical to the Go constant today but kept explicit so the wire
// contract does not silently follow a future rename of the Go identifiers.
var memoryStrategyNames = map[memory.StrategyKind]string{
	memory.FirstAppropriate: "FIRST_APPROPRIATE",
	memory.MostAppropriate:  "MOST_APPROPRIATE",
	memory.LeastAppropriate: "LEAST_APPROPRIATE",
}

var memoryStrategyByName = func() map[string]memory.StrategyKind {
	out := make(map[string]memory.StrategyKind, len(memoryStrategyNames))
	for k, v := range memoryStrategyNames {
		out[v] = k
	}
	return out
}()

// EncodeMemoryStrategy returns kind's canonical wire name.
func EncodeMemoryStrategy(kind memory.StrategyKind) (string, error) {
	name, ok := memoryStrategyNames[kind]
	if !ok {
		return "", &ossimerr.CodecError{What: ossimerr.UnknownStrategy, Tag: string(kind)}
	}
	return name, nil
}

// DecodeMemoryStrategy parses a memory strategy's canonical wire name.
func DecodeMemoryStrategy(name string) (memory.StrategyKind, error) {
	kind, ok := memoryStrategyByName[name]
	if !ok {
		return "", &ossimerr.CodecError{What: ossimerr.UnknownStrategy, Tag: name}
	}
	return kind, nil
}
