package main

import (
	"bytes"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const execEnv = "GO_LOGNAME_EXEC_MAIN"

// TestMain turns the test binary into logname itself when re-executed by
// runLogname.
func TestMain(m *testing.M) {
	if os.Getenv(execEnv) == "1" {
		main()
		return
	}
	os.Exit(m.Run())
}

func runLogname(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	exe, err := os.Executable()
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	cmd := exec.Command(exe, args...)
	cmd.Env = append(os.Environ(), execEnv+"=1")
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	err = cmd.Run()
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode(), out.String(), errOut.String()
	}
	require.NoError(t, err)
	return 0, out.String(), errOut.String()
}

func TestTooManyArguments(t *testing.T) {
	for _, args := range [][]string{
		{"-a"},
		{"--help"},
		{"--version"},
		{"--"},
		{"alice", "bob"},
	} {
		code, stdout, stderr := runLogname(t, args...)
		assert.Equal(t, 1, code, "args %q", args)
		assert.Empty(t, stdout, "args %q", args)
		assert.Contains(t, stderr, "too many arguments", "args %q", args)
	}
}

func TestNoArguments(t *testing.T) {
	code, stdout, stderr := runLogname(t)
	switch code {
	case 0:
		assert.NotEmpty(t, stdout)
		assert.Equal(t, byte('\n'), stdout[len(stdout)-1])
		assert.Empty(t, stderr)
	case 1:
		// No login session, as under most CI runners.
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, ": getlogin: ")
	default:
		t.Fatalf("unexpected exit code %d", code)
	}
}
