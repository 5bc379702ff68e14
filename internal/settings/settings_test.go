package settings

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/toolkit/internal/logger"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	fs := pflag.NewFlagSet("toolkit", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	s, err := Load(newFlagSet(t))
	require.NoError(t, err)
	require.Equal(t, Defaults(), s)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("TOOLKIT_LOG_LEVEL", "debug")
	t.Setenv("TOOLKIT_HUMAN", "false")
	t.Setenv("TOOLKIT_LOCALE", "fr")
	t.Setenv("TOOLKIT_CONFIG", "stories.yaml")

	s, err := Load(newFlagSet(t))
	require.NoError(t, err)
	require.Equal(t, Settings{LogLevel: "debug", Human: false, Locale: "fr", Config: "stories.yaml"}, s)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("TOOLKIT_LOCALE", "fr")
	t.Setenv("TOOLKIT_LOG_LEVEL", "debug")

	s, err := Load(newFlagSet(t, "--locale", "de", "-c", "mine.yaml"))
	require.NoError(t, err)
	require.Equal(t, "de", s.Locale)
	require.Equal(t, "debug", s.LogLevel)
	require.Equal(t, "mine.yaml", s.Config)
}

func TestLoadWithoutFlags(t *testing.T) {
	t.Setenv("TOOLKIT_LOCALE", "ja")

	s, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, "ja", s.Locale)
	require.Equal(t, "warn", s.LogLevel)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	_, err := Load(newFlagSet(t, "--log-level", "chatty"))
	require.ErrorContains(t, err, "log-level")

	_, err = Load(newFlagSet(t, "--locale", "not a locale"))
	require.ErrorContains(t, err, "locale")
}

func TestLoggerOptions(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opts := Settings{LogLevel: "info"}.LoggerOptions(&buf)
	require.Equal(t, logger.Options{Level: "info", Writer: &buf, Component: "toolkit"}, opts)

	log, err := logger.New(opts)
	require.NoError(t, err)
	log.Info("ready")
	require.Contains(t, buf.String(), `"component":"toolkit"`)
	require.Contains(t, buf.String(), `"message":"ready"`)
}
