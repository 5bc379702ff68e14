package main

import (
	"bytes"
	"testing"
)

// executeCommand runs the root command with args and returns its stdout.
// Logs go to a separate buffer so they never mix with command output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), err
}
