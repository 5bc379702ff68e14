package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	toolkiterrors "github.com/alexisbeaulieu97/toolkit/pkg/errors"
)

func TestStoriesRendersBuiltInWidgets(t *testing.T) {
	out, err := executeCommand(t, "stories")
	require.NoError(t, err)

	for _, want := range []string{
		"Toolkit stories",
		"Time pickers",
		"Meeting time",
		"11:30:00",
		"Opening hours",
		"09:30 AM",
		"[x] 12-hour clock",
		"Horaire",
		"Date pickers",
		"December 2020",
		"12-04-2020",
		"DD/MM/YYYY",
		"Fields",
		"How many?",
		"✗ Required",
		"[ ] required",
		"[x] number",
		"[-] all rules",
		"[x] email",
	} {
		require.Contains(t, out, want)
	}
}

func TestStoriesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stories.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`version: "1.0"
name: Custom
timepickers:
  - id: lunch
    format: "HH:mm"
    min: "11:00:00"
    max: "14:00:00"
    step: 3600
    value: "12:00"
    disabled: ["12:00:00"]
`), 0o644))

	out, err := executeCommand(t, "--config", path, "stories", "--theme", "dark")
	require.NoError(t, err)
	require.Contains(t, out, "Custom")
	require.Contains(t, out, "lunch")
	require.Contains(t, out, "✗ This time is not available")
	require.Contains(t, out, "4 options")
}

func TestStoriesErrors(t *testing.T) {
	_, err := executeCommand(t, "stories", "--theme", "neon")
	require.ErrorContains(t, err, "unknown theme")

	_, err = executeCommand(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "stories")
	require.ErrorContains(t, err, "does not exist")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1.0\"\nname: Bad\ntimepickers:\n  - id: x\n    step: 0\n"), 0o644))
	_, err = executeCommand(t, "--config", path, "stories")
	var validationErr *toolkiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "timepickers[0].step", validationErr.Field)
}

func TestInvalidSettings(t *testing.T) {
	_, err := executeCommand(t, "--log-level", "chatty", "stories")
	require.ErrorContains(t, err, "log-level")
}
