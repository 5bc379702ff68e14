package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func decode(t *testing.T, buf *bytes.Buffer) []logEntry {
	t.Helper()

	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry logEntry
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf, Component: "stories"})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"widget": "opening-hours", "format": "HH:mm"})
	log.Info("rendered widget")

	entries := decode(t, buf)
	require.Len(t, entries, 1)
	require.Equal(t, "rendered widget", entries[0]["message"])
	require.Equal(t, "opening-hours", entries[0]["widget"])
	require.Equal(t, "HH:mm", entries[0]["format"])
	require.Equal(t, "stories", entries[0]["component"])
	require.Equal(t, "info", entries[0]["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "INFO", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Empty(t, strings.TrimSpace(buf.String()))
	require.False(t, log.Enabled("debug"))
	require.True(t, log.Enabled("warn"))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.With("path", "stories.yaml").Error(errors.New("boom"), "load failed")

	entries := decode(t, buf)
	require.Len(t, entries, 1)
	require.Equal(t, "load failed", entries[0]["message"])
	require.Equal(t, "stories.yaml", entries[0]["path"])
	require.Equal(t, "boom", entries[0]["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestNilAndNopLoggers(t *testing.T) {
	t.Parallel()

	var nilLog *Logger
	require.Nil(t, nilLog.WithFields(map[string]any{"a": 1}))
	require.Nil(t, nilLog.With("a", 1))
	require.False(t, nilLog.Enabled("error"))
	nilLog.Info("ignored")
	nilLog.Error(errors.New("x"), "ignored")

	Nop().Warn("discarded")
}
