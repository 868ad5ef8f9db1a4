// Command ossim-generate writes a batch of freshly generated exercise
// tasks to stdout, as a pretty-printed JSON array: one memory task, one
// non-preemptive processes task, one preemptive processes task.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/oslabs/ossim/internal/generator"
	"github.com/oslabs/ossim/internal/store"
)

const defaultRequestCount = 40

func main() {
	var requestCount int
	var seedHex string

	root := &cobra.Command{
		Use:   "ossim-generate",
		Short: "Generate a memory task and two process tasks as JSON",
		Long: `ossim-generate produces one fresh MemoryTask and two ProcessesTasks
(one non-preemptive, one preemptive), each under a uniformly chosen
strategy, and writes them to stdout as a pretty-printed JSON array.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), requestCount, seedHex)
		},
	}

	root.Flags().IntVarP(&requestCount, "requests", "n", defaultRequestCount, "number of requests per generated task")
	root.Flags().StringVar(&seedHex, "seed", "", "64 hex-digit PRNG seed (default: derived from wall clock)")

	if err := root.Execute(); err != nil {
		slog.Error("ossim-generate failed", "error", err)
		os.Exit(1)
	}
}

func run(w io.Writer, requestCount int, seedHex string) error {
	src, err := sourceFor(seedHex)
	if err != nil {
		return err
	}

	memoryTask := generator.GenerateMemoryTask(src, requestCount)
	nonPreemptive := generator.GenerateProcessesTask(src, requestCount, false)
	preemptive := generator.GenerateProcessesTask(src, requestCount, true)

	slog.Info("ossim-generate: generated tasks", "requests", requestCount)

	return store.Save(w, []interface{}{memoryTask, nonPreemptive, preemptive})
}

func sourceFor(seedHex string) (*generator.Source, error) {
	if seedHex == "" {
		return generator.NewSourceFromTime(), nil
	}

	decoded, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, fmt.Errorf("ossim-generate: invalid --seed: %w", err)
	}
	if len(decoded) != 32 {
		return nil, fmt.Errorf("ossim-generate: --seed must be exactly 64 hex digits, got %d", len(decoded)*2)
	}

	var seed [32]byte
	copy(seed[:], decoded)
	return generator.NewSource(seed), nil
}
