package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execRoot(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "twin-primes")
	assert.Contains(t, out, "fair-bfs-pairs")
}

func TestRunCommand(t *testing.T) {
	out, err := execRoot(t, "run", "and-or-not")
	require.NoError(t, err)
	assert.Contains(t, out, "matched")
}

func TestRunUnknownScenario(t *testing.T) {
	_, err := execRoot(t, "run", "nonexistent")
	assert.Error(t, err)
}

func TestRunAllRespectsLimit(t *testing.T) {
	out, err := execRoot(t, "run-all", "fair-bfs-pairs", "--limit", "2")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "\n"))
}
