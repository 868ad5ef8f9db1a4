// Package memory implements the contiguous main-memory domain: blocks,
// state, the four primitive operations, and the three placement strategies
// that drive the shared allocation pipeline.
package memory

import "github.com/oslabs/ossim/internal/ossimerr"

// TotalPages is the size of the simulated address space, in pages.
const TotalPages = 256

// Block is a contiguous region of the address space, either free (Pid ==
// FreePid) or owned by a single process.
type Block struct {
	Pid     int32 `json:"pid"`
	Address int32 `json:"address"`
	Size    int32 `json:"size"`
}

// FreePid marks a Block as unowned.
const FreePid int32 = -1

// NewBlock validates and constructs a Block.
func NewBlock(pid, address, size int32) (Block, error) {
	if pid < FreePid || pid > 255 {
		return Block{}, &ossimerr.TypeError{Field: "pid"}
	}
	if address < 0 || address > 255 {
		return Block{}, &ossimerr.TypeError{Field: "address"}
	}
	if size < 1 || size > TotalPages {
		return Block{}, &ossimerr.TypeError{Field: "size"}
	}
	if address+size > TotalPages {
		return Block{}, &ossimerr.TypeError{Field: "size"}
	}
	return Block{Pid: pid, Address: address, Size: size}, nil
}

// Equal reports whether two blocks have identical fields.
func (b Block) Equal(other Block) bool {
	return b.Pid == other.Pid && b.Address == other.Address && b.Size == other.Size
}
