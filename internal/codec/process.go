package codec

import (
	"encoding/json"

	"github.com/oslabs/ossim/internal/ossimerr"
	"github.com/oslabs/ossim/internal/process"
	"github.com/oslabs/ossim/internal/request"
)

// processJSON mirrors Process's canonical shape.
type processJSON struct {
	Pid          int32         `json:"pid"`
	Ppid         int32         `json:"ppid"`
	Priority     int32         `json:"priority"`
	BasePriority int32         `json:"basePriority"`
	Timer        int32         `json:"timer"`
	WorkTime     int32         `json:"workTime"`
	State        process.State `json:"state"`
}

func encodeProcess(p process.Process) processJSON {
	return processJSON{
		Pid: p.Pid, Ppid: p.Ppid, Priority: p.Priority, BasePriority: p.BasePriority,
		Timer: p.Timer, WorkTime: p.WorkTime, State: p.State,
	}
}

func decodeProcess(j processJSON) (process.Process, error) {
	p, err := process.New(j.Pid, j.Ppid, j.Priority, j.BasePriority, j.Timer, j.WorkTime)
	if err != nil {
		return process.Process{}, err
	}
	return p.WithState(j.State), nil
}

// processesStateJSON mirrors ProcessesState's canonical shape:
// {processes:[…], queues:[[pid,…] x16]}. Empty queues encode as [],
// never null.
type processesStateJSON struct {
	Processes []processJSON               `json:"processes"`
	Queues    [process.QueueCount][]int32 `json:"queues"`
}

// EncodeProcessesState renders a process.ProcessesState as its canonical
// JSON value.
func EncodeProcessesState(s process.ProcessesState) json.RawMessage {
	j := processesStateJSON{Processes: make([]processJSON, len(s.Processes))}
	for i, p := range s.Processes {
		j.Processes[i] = encodeProcess(p)
	}
	for i := range s.Queues {
		j.Queues[i] = append(make([]int32, 0, len(s.Queues[i])), s.Queues[i]...)
	}
	raw, err := json.Marshal(j)
	if err != nil {
		panic(err)
	}
	return raw
}

// DecodeProcessesState parses a canonical ProcessesState JSON value.
func DecodeProcessesState(raw []byte) (process.ProcessesState, error) {
	var j processesStateJSON
	if err := json.Unmarshal(raw, &j); err != nil {
		return process.ProcessesState{}, err
	}

	// Empty slices decode to nil so a decoded state compares equal to one
	// built through the primitive operations.
	var processes []process.Process
	for _, pj := range j.Processes {
		p, err := decodeProcess(pj)
		if err != nil {
			return process.ProcessesState{}, err
		}
		processes = append(processes, p)
	}

	out := process.ProcessesState{Processes: processes}
	for i := range j.Queues {
		out.Queues[i] = append([]int32(nil), j.Queues[i]...)
	}
	return out, nil
}

// processRequestJSON is the lenient decode shape shared by every process
// request variant; encoding emits only the fields the variant defines.
type processRequestJSON struct {
	Type         string `json:"type"`
	Pid          int32  `json:"pid"`
	Ppid         int32  `json:"ppid"`
	Priority     int32  `json:"priority"`
	BasePriority int32  `json:"basePriority"`
	Timer        int32  `json:"timer"`
	WorkTime     int32  `json:"workTime"`
	Augment      int32  `json:"augment"`
}

// EncodeProcessRequest renders a request.ProcessRequest as its canonical
// tagged JSON value. Each variant carries exactly its own fields, zero
// values included.
func EncodeProcessRequest(r request.ProcessRequest) json.RawMessage {
	var v interface{}
	switch r.Kind {
	case request.ProcCreateProcess:
		v = struct {
			Type         string `json:"type"`
			Pid          int32  `json:"pid"`
			Ppid         int32  `json:"ppid"`
			Priority     int32  `json:"priority"`
			BasePriority int32  `json:"basePriority"`
			Timer        int32  `json:"timer"`
			WorkTime     int32  `json:"workTime"`
		}{string(r.Kind), r.Pid, r.Ppid, r.Priority, r.BasePriority, r.Timer, r.WorkTime}
	case request.ProcTerminateIO:
		v = struct {
			Type    string `json:"type"`
			Pid     int32  `json:"pid"`
			Augment int32  `json:"augment"`
		}{string(r.Kind), r.Pid, r.Augment}
	case request.ProcTimeQuantumExpired:
		v = struct {
			Type string `json:"type"`
		}{string(r.Kind)}
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

// DecodeProcessRequest parses a canonical ProcessRequest JSON value.
func DecodeProcessRequest(raw []byte) (request.ProcessRequest, error) {
	var j processRequestJSON
	if err := json.Unmarshal(raw, &j); err != nil {
		return request.ProcessRequest{}, err
	}

	switch request.ProcessKind(j.Type) {
	case request.ProcCreateProcess:
		return request.NewCreateProcessReq(j.Pid, j.Ppid, j.Priority, j.BasePriority, j.Timer, j.WorkTime)
	case request.ProcTerminateProcess:
		return request.NewTerminateProcessReq(j.Pid)
	case request.ProcInitIO:
		return request.NewInitIO(j.Pid)
	case request.ProcTerminateIO:
		augment := j.Augment
		if augment == 0 {
			augment = 1
		}
		return request.NewTerminateIO(j.Pid, augment)
	case request.ProcTransferControl:
		return request.NewTransferControl(j.Pid)
	case request.ProcTimeQuantumExpired:
		return request.NewTimeQuantumExpired(), nil
	default:
		return request.ProcessRequest{}, &ossimerr.CodecError{What: ossimerr.UnknownRequest, Tag: j.Type}
	}
}

// processStrategyNames maps every process.StrategyKind to its canonical
// wire name.
var processStrategyNames = map[process.StrategyKind]string{
	process.FCFS:       "FCFS",
	process.RoundRobin: "ROUNDROBIN",
	process.SJN:        "SJN",
	process.SRT:        "SRT",
	process.UNIX:       "UNIX",
	process.WinNT:      "WINNT",
	process.LinuxO1:    "LINUXO1",
}

var processStrategyByName = func() map[string]process.StrategyKind {
	out := make(map[string]process.StrategyKind, len(processStrategyNames))
	for k, v := range processStrategyNames {
		out[v] = k
	}
	return out
}()

// EncodeProcessStrategy returns kind's canonical wire name.
func EncodeProcessStrategy(kind process.StrategyKind) (string, error) {
	name, ok := processStrategyNames[kind]
	if !ok {
		return "", &ossimerr.CodecError{What: ossimerr.UnknownStrategy, Tag: string(kind)}
	}
	return name, nil
}

// DecodeProcessStrategy parses a process strategy's canonical wire name.
func DecodeProcessStrategy(name string) (process.StrategyKind, error) {
	kind, ok := processStrategyByName[name]
	if !ok {
		return "", &ossimerr.CodecError{What: ossimerr.UnknownStrategy, Tag: name}
	}
	return kind, nil
}
