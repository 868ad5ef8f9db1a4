package request

import "github.com/oslabs/ossim/internal/ossimerr"

// ProcessKind tags the variant held by a ProcessRequest.
type ProcessKind string

const (
	ProcCreateProcess      ProcessKind = "CREATE_PROCESS"
	ProcTerminateProcess   ProcessKind = "TERMINATE_PROCESS"
	ProcInitIO             ProcessKind = "INIT_IO"
	ProcTerminateIO        ProcessKind = "TERMINATE_IO"
	ProcTransferControl    ProcessKind = "TRANSFER_CONTROL"
	ProcTimeQuantumExpired ProcessKind = "TIME_QUANTUM_EXPIRED"
)

// ProcessRequest is the closed sum of events a process strategy can
// process. Fields irrelevant to Kind are zero.
type ProcessRequest struct {
	Kind ProcessKind

	Pid          int32
	Ppid         int32
	Priority     int32
	BasePriority int32
	Timer        int32
	WorkTime     int32
	Augment      int32
}

func validatePid(pid int32) error {
	if pid < 0 || pid > 255 {
		return &ossimerr.RequestError{Field: "pid"}
	}
	return nil
}

// NewCreateProcessReq constructs a CreateProcessReq. Callers wanting the
// defaults pass ppid=-1 and zero for the remaining fields.
func NewCreateProcessReq(pid, ppid, priority, basePriority, timer, workTime int32) (ProcessRequest, error) {
	if err := validatePid(pid); err != nil {
		return ProcessRequest{}, err
	}
	if ppid < -1 || ppid > 255 {
		return ProcessRequest{}, &ossimerr.RequestError{Field: "ppid"}
	}
	if priority < 0 || priority > 15 {
		return ProcessRequest{}, &ossimerr.RequestError{Field: "priority"}
	}
	if basePriority < 0 || basePriority > 15 || basePriority > priority {
		return ProcessRequest{}, &ossimerr.RequestError{Field: "basePriority"}
	}
	if timer < 0 {
		return ProcessRequest{}, &ossimerr.RequestError{Field: "timer"}
	}
	if workTime < 0 {
		return ProcessRequest{}, &ossimerr.RequestError{Field: "workTime"}
	}
	return ProcessRequest{
		Kind: ProcCreateProcess, Pid: pid, Ppid: ppid, Priority: priority,
		BasePriority: basePriority, Timer: timer, WorkTime: workTime,
	}, nil
}

// NewTerminateProcessReq constructs a TerminateProcessReq.
func NewTerminateProcessReq(pid int32) (ProcessRequest, error) {
	if err := validatePid(pid); err != nil {
		return ProcessRequest{}, err
	}
	return ProcessRequest{Kind: ProcTerminateProcess, Pid: pid}, nil
}

// NewInitIO constructs an InitIO request.
func NewInitIO(pid int32) (ProcessRequest, error) {
	if err := validatePid(pid); err != nil {
		return ProcessRequest{}, err
	}
	return ProcessRequest{Kind: ProcInitIO, Pid: pid}, nil
}

// NewTerminateIO constructs a TerminateIO request. The augment must lie in
// [1,15]; callers wanting the default pass 1.
func NewTerminateIO(pid, augment int32) (ProcessRequest, error) {
	if err := validatePid(pid); err != nil {
		return ProcessRequest{}, err
	}
	if augment < 1 || augment > 15 {
		return ProcessRequest{}, &ossimerr.RequestError{Field: "augment"}
	}
	return ProcessRequest{Kind: ProcTerminateIO, Pid: pid, Augment: augment}, nil
}

// NewTransferControl constructs a TransferControl request.
func NewTransferControl(pid int32) (ProcessRequest, error) {
	if err := validatePid(pid); err != nil {
		return ProcessRequest{}, err
	}
	return ProcessRequest{Kind: ProcTransferControl, Pid: pid}, nil
}

// NewTimeQuantumExpired constructs the sole TimeQuantumExpired value.
func NewTimeQuantumExpired() ProcessRequest {
	return ProcessRequest{Kind: ProcTimeQuantumExpired}
}
