// Package request implements the typed request algebra for both the
// memory and process domains (C5 of the design), with construction-time
// range validation.
package request

import "github.com/oslabs/ossim/internal/ossimerr"

// MemoryRequest is the closed sum of events a memory strategy can process.
// Kind discriminates the variant; fields irrelevant to Kind are zero.
type MemoryRequest struct {
	Kind MemoryKind

	Pid     int32
	Bytes   int32
	Pages   int32
	Address int32
}

// MemoryKind tags the variant held by a MemoryRequest.
type MemoryKind string

const (
	MemCreateProcess    MemoryKind = "CREATE_PROCESS"
	MemTerminateProcess MemoryKind = "TERMINATE_PROCESS"
	MemAllocateMemory   MemoryKind = "ALLOCATE_MEMORY"
	MemFreeMemory       MemoryKind = "FREE_MEMORY"
)

func validatePagesBytes(bytes, pages int32) error {
	if bytes < 1 || bytes > 256*4096 {
		return &ossimerr.RequestError{Field: "bytes"}
	}
	if pages < 1 || pages > 256 {
		return &ossimerr.RequestError{Field: "pages"}
	}
	if bytes <= (pages-1)*4096 || bytes > pages*4096 {
		return &ossimerr.RequestError{Field: "bytes"}
	}
	return nil
}

// NewCreateProcess constructs a CreateProcess memory request.
func NewCreateProcess(pid, bytes, pages int32) (MemoryRequest, error) {
	if pid < -1 || pid > 255 {
		return MemoryRequest{}, &ossimerr.RequestError{Field: "pid"}
	}
	if err := validatePagesBytes(bytes, pages); err != nil {
		return MemoryRequest{}, err
	}
	return MemoryRequest{Kind: MemCreateProcess, Pid: pid, Bytes: bytes, Pages: pages}, nil
}

// NewTerminateProcess constructs a TerminateProcess memory request.
func NewTerminateProcess(pid int32) (MemoryRequest, error) {
	if pid < -1 || pid > 255 {
		return MemoryRequest{}, &ossimerr.RequestError{Field: "pid"}
	}
	return MemoryRequest{Kind: MemTerminateProcess, Pid: pid}, nil
}

// NewAllocateMemory constructs an AllocateMemory request.
func NewAllocateMemory(pid, bytes, pages int32) (MemoryRequest, error) {
	if pid < -1 || pid > 255 {
		return MemoryRequest{}, &ossimerr.RequestError{Field: "pid"}
	}
	if err := validatePagesBytes(bytes, pages); err != nil {
		return MemoryRequest{}, err
	}
	return MemoryRequest{Kind: MemAllocateMemory, Pid: pid, Bytes: bytes, Pages: pages}, nil
}

// NewFreeMemory constructs a FreeMemory request.
func NewFreeMemory(pid, address int32) (MemoryRequest, error) {
	if pid < -1 || pid > 255 {
		return MemoryRequest{}, &ossimerr.RequestError{Field: "pid"}
	}
	if address < 0 || address > 255 {
		return MemoryRequest{}, &ossimerr.RequestError{Field: "address"}
	}
	return MemoryRequest{Kind: MemFreeMemory, Pid: pid, Address: address}, nil
}
