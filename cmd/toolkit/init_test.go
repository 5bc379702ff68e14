package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/toolkit/internal/config"
)

func TestInitWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stories.yaml")

	out, err := executeCommand(t, "init", "--yes", "--output", path)
	require.NoError(t, err)
	require.Contains(t, out, "Wrote "+path+" (+")

	cfg, err := config.ParseConfig(path)
	require.NoError(t, err)
	require.Equal(t, "My widgets", cfg.Name)
	require.Equal(t, "en-US", cfg.Settings.Locale)
	require.Len(t, cfg.TimePickers, 1)
	require.Equal(t, "meeting", cfg.TimePickers[0].ID)
	require.Equal(t, 28800, cfg.TimePickers[0].MinSeconds())
	require.Len(t, cfg.DatePickers, 1)
	require.Equal(t, "meeting_date", cfg.DatePickers[0].ID)

	stories, err := executeCommand(t, "--config", path, "stories")
	require.NoError(t, err)
	require.Contains(t, stories, "My widgets time")
}

func TestInitRefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stories.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keep me"), 0o644))

	_, err := executeCommand(t, "init", "--yes", "--output", path)
	require.ErrorContains(t, err, "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "keep me", string(data))

	_, err = executeCommand(t, "init", "--yes", "--force", "--output", path)
	require.NoError(t, err)
}

func TestInitUsesLocaleSetting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stories.yaml")

	_, err := executeCommand(t, "--locale", "fr", "init", "-y", "-o", path)
	require.NoError(t, err)

	cfg, err := config.ParseConfig(path)
	require.NoError(t, err)
	require.Equal(t, "fr", cfg.Settings.Locale)
}

func TestAnswersConfigRejectsBadStep(t *testing.T) {
	a := defaultAnswers("en-US")
	a.Step = "often"
	_, err := a.Config()
	require.ErrorContains(t, err, "invalid step")
}

func TestInitDryRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stories.yaml")

	out, err := executeCommand(t, "init", "--yes", "--dry-run", "--output", path)
	require.NoError(t, err)
	require.Contains(t, out, "--- /dev/null\n+++ "+path+"\n")
	require.Contains(t, out, "+name: My widgets\n")
	require.NoFileExists(t, path)

	_, err = executeCommand(t, "init", "--yes", "--output", path)
	require.NoError(t, err)

	out, err = executeCommand(t, "init", "--yes", "--dry-run", "--output", path)
	require.NoError(t, err)
	require.Equal(t, "No changes\n", out)

	out, err = executeCommand(t, "--locale", "fr", "init", "--yes", "--dry-run", "--output", path)
	require.NoError(t, err)
	require.Contains(t, out, "-    locale: en-US\n")
	require.Contains(t, out, "+    locale: fr\n")
}
