package memory

import "github.com/oslabs/ossim/internal/ossimerr"

// Allocate places a process in the block at blockIndex. The target block
// must be free and large enough; the allocated part takes the block's
// position and any residue is inserted immediately after it and appended to
// FreeBlocks. An out-of-range blockIndex is a programmer fault and returns
// OutOfRange; BlockIsUsed/TooSmall are ordinary precondition failures.
func Allocate(s State, blockIndex int, pid, pages int32) (State, error) {
	if blockIndex < 0 || blockIndex >= len(s.Blocks) {
		return s, ossimerr.NewOperation(ossimerr.OutOfRange)
	}

	block := s.Blocks[blockIndex]
	if block.Pid != FreePid {
		return s, ossimerr.NewOperation(ossimerr.BlockIsUsed)
	}
	if block.Size < pages {
		return s, ossimerr.NewOperation(ossimerr.TooSmall)
	}

	residueSize := block.Size - pages
	residueAddress := block.Address + pages

	newBlocks := make([]Block, 0, len(s.Blocks)+1)
	newBlocks = append(newBlocks, s.Blocks[:blockIndex]...)
	newBlocks = append(newBlocks, Block{Pid: pid, Address: block.Address, Size: pages})
	if residueSize > 0 {
		newBlocks = append(newBlocks, Block{Pid: FreePid, Address: residueAddress, Size: residueSize})
	}
	newBlocks = append(newBlocks, s.Blocks[blockIndex+1:]...)

	newFree := removeFreeBlockEntry(s.FreeBlocks, block)
	if residueSize > 0 {
		newFree = append(newFree, Block{Pid: FreePid, Address: residueAddress, Size: residueSize})
	}

	return State{Blocks: newBlocks, FreeBlocks: newFree}, nil
}

// Free releases the block at blockIndex, which must be owned by pid. The
// freed block keeps its position in Blocks (rewritten to pid -1) and is
// appended to FreeBlocks; it is not coalesced with neighbors here.
func Free(s State, pid int32, blockIndex int) (State, error) {
	if blockIndex < 0 || blockIndex >= len(s.Blocks) {
		return s, ossimerr.NewOperation(ossimerr.OutOfRange)
	}

	block := s.Blocks[blockIndex]
	if block.Pid != pid {
		return s, ossimerr.NewOperation(ossimerr.PidMismatch)
	}

	freed := Block{Pid: FreePid, Address: block.Address, Size: block.Size}

	newBlocks := append([]Block(nil), s.Blocks...)
	newBlocks[blockIndex] = freed

	newFree := append(append([]Block(nil), s.FreeBlocks...), freed)

	return State{Blocks: newBlocks, FreeBlocks: newFree}, nil
}

// Defragment compacts every used block to the low end of the address space
// in their relative order, and collects all freed space into one trailing
// free block. Always succeeds. FreeBlocks becomes that singleton.
func Defragment(s State) State {
	newBlocks := make([]Block, 0, len(s.Blocks)+1)
	var address int32
	var free int32

	for _, b := range s.Blocks {
		if b.Pid != FreePid {
			newBlocks = append(newBlocks, Block{Pid: b.Pid, Address: address, Size: b.Size})
			address += b.Size
		} else {
			free += b.Size
		}
	}

	trailing := Block{Pid: FreePid, Address: address, Size: free}
	newBlocks = append(newBlocks, trailing)

	return State{Blocks: newBlocks, FreeBlocks: []Block{trailing}}
}

// Compress merges the maximal run of consecutive free blocks starting at
// startBlockIndex into one free block at the run's first address. The run
// must span at least two blocks, else SingleBlock.
func Compress(s State, startBlockIndex int) (State, error) {
	if startBlockIndex < 0 || startBlockIndex >= len(s.Blocks) {
		return s, ossimerr.NewOperation(ossimerr.OutOfRange)
	}

	address := s.Blocks[startBlockIndex].Address
	var size int32
	var run int

	newFree := append([]Block(nil), s.FreeBlocks...)

	i := startBlockIndex
	for i < len(s.Blocks) && s.Blocks[i].Pid == FreePid {
		size += s.Blocks[i].Size
		newFree = removeFreeBlockEntry(newFree, s.Blocks[i])
		i++
		run++
	}

	if run < 2 {
		return s, ossimerr.NewOperation(ossimerr.SingleBlock)
	}

	merged := Block{Pid: FreePid, Address: address, Size: size}

	newBlocks := make([]Block, 0, len(s.Blocks)-run+1)
	newBlocks = append(newBlocks, s.Blocks[:startBlockIndex]...)
	newBlocks = append(newBlocks, merged)
	newBlocks = append(newBlocks, s.Blocks[i:]...)

	newFree = append(newFree, merged)

	return State{Blocks: newBlocks, FreeBlocks: newFree}, nil
}

// CompressAllAdjacentFree repeatedly compresses the first adjacent pair of
// free blocks in Blocks until none remain.
func CompressAllAdjacentFree(s State) State {
	current := s
	for {
		index := -1
		for i := 0; i+1 < len(current.Blocks); i++ {
			if current.Blocks[i].Pid == FreePid && current.Blocks[i+1].Pid == FreePid {
				index = i
				break
			}
		}
		if index < 0 {
			return current
		}
		next, err := Compress(current, index)
		if err != nil {
			return current
		}
		current = next
	}
}
