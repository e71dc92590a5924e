package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootOutput(t *testing.T) {
	stdout, stderr, err := execute(t)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 14+15)

	for i := 0; i < 14; i++ {
		assert.Equal(t, "size "+strconv.Itoa(i+2), lines[i])
	}
	assert.Equal(t, "1: 15", lines[14])
	assert.Equal(t, "14: 15", lines[27])
	assert.Equal(t, "15: 0", lines[28])
}

func TestRootFlagsSameReport(t *testing.T) {
	plain, _, err := execute(t)
	require.NoError(t, err)

	fast, stderr, err := execute(t, "--workers", "4", "--symmetry", "--verbose")
	require.NoError(t, err)
	assert.Equal(t, plain, fast)
	assert.Contains(t, stderr, "tier filled")
}

func TestRootRejectsBadWorkers(t *testing.T) {
	_, _, err := execute(t, "--workers", "0")
	assert.ErrorContains(t, err, "invalid --workers")
}

func TestRootRejectsArgs(t *testing.T) {
	_, _, err := execute(t, "extra")
	assert.Error(t, err)
}
