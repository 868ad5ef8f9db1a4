package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunWritesThreeTasksAsJSONArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, 10, ""))

	var tasks []json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &tasks))
	require.Len(t, tasks, 3)
}

func TestRunWithFixedSeedIsDeterministic(t *testing.T) {
	seed := strings.Repeat("ab", 32)

	var first, second bytes.Buffer
	require.NoError(t, run(&first, 15, seed))
	require.NoError(t, run(&second, 15, seed))

	require.Equal(t, first.String(), second.String())
}

func TestRunRejectsMalformedSeed(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, run(&buf, 10, "not-hex"))
	require.Error(t, run(&buf, 10, "abcd"))
}

func TestSourceForFallsBackToTimeWhenSeedEmpty(t *testing.T) {
	src, err := sourceFor("")
	require.NoError(t, err)
	require.NotNil(t, src)
}
