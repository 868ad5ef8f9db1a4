// Package store implements the byte-stream load/save boundary over a
// collection of tasks: a tasks file is a JSON array of tagged task
// objects, decoded via internal/codec and logged with log/slog at the
// I/O boundary only — the domain layers beneath never log.
package store

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/oslabs/ossim/internal/codec"
	"github.com/oslabs/ossim/internal/ossimerr"
	"github.com/oslabs/ossim/internal/task"
)

// Load reads a JSON array of tasks from r, decoding each element via its
// type tag. A corrupt file is rejected whole; there is no partial
// recovery.
func Load(r io.Reader) ([]interface{}, error) {
	var raws []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raws); err != nil {
		slog.Error("store: malformed tasks file", "error", err)
		return nil, &ossimerr.TaskError{Reason: ossimerr.InvalidTask, Cause: err}
	}

	tasks := make([]interface{}, 0, len(raws))
	for i, raw := range raws {
		t, err := codec.DecodeAnyTask(raw)
		if err != nil {
			slog.Error("store: rejecting tasks file", "index", i, "error", err)
			return nil, fmt.Errorf("store: decoding task %d: %w", i, err)
		}
		tasks = append(tasks, t)
	}

	slog.Info("store: loaded tasks", "count", len(tasks))
	return tasks, nil
}

// Save writes tasks to w as a pretty-printed JSON array, each element
// encoded via its type tag.
func Save(w io.Writer, tasks []interface{}) error {
	raws := make([]json.RawMessage, 0, len(tasks))
	for i, t := range tasks {
		raw, err := encodeAny(t)
		if err != nil {
			slog.Error("store: refusing to save tasks file", "index", i, "error", err)
			return fmt.Errorf("store: encoding task %d: %w", i, err)
		}
		raws = append(raws, raw)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(raws); err != nil {
		slog.Error("store: writing tasks file failed", "error", err)
		return err
	}

	slog.Info("store: saved tasks", "count", len(tasks))
	return nil
}

func encodeAny(t interface{}) (json.RawMessage, error) {
	switch v := t.(type) {
	case task.MemoryTask:
		return codec.EncodeMemoryTask(v)
	case task.ProcessesTask:
		return codec.EncodeProcessesTask(v)
	default:
		return nil, &ossimerr.CodecError{What: ossimerr.UnknownTask, Tag: fmt.Sprintf("%T", t)}
	}
}
