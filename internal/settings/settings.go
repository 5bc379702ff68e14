// Package settings resolves the CLI's global options from flags, TOOLKIT_*
// environment variables and defaults, in that order of precedence.
package settings

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/toolkit/internal/logger"
	"github.com/alexisbeaulieu97/toolkit/pkg/locale"
)

// EnvPrefix prefixes every environment variable, e.g. TOOLKIT_LOG_LEVEL.
const EnvPrefix = "TOOLKIT"

// Keys shared by flags and environment variables.
const (
	KeyLogLevel = "log-level"
	KeyHuman    = "human"
	KeyLocale   = "locale"
	KeyConfig   = "config"
)

// Settings are the resolved global options.
type Settings struct {
	LogLevel string `mapstructure:"log-level"`
	Human    bool   `mapstructure:"human"`
	Locale   string `mapstructure:"locale"`
	Config   string `mapstructure:"config"`
}

// Defaults returns the values used when neither a flag nor the environment
// sets an option.
func Defaults() Settings {
	return Settings{
		LogLevel: "warn",
		Human:    true,
		Locale:   locale.DefaultName,
	}
}

// RegisterFlags adds the global flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Defaults()
	fs.String(KeyLogLevel, d.LogLevel, "Log level (debug, info, warn, error)")
	fs.Bool(KeyHuman, d.Human, "Human-readable console logs instead of JSON")
	fs.String(KeyLocale, d.Locale, "Locale used when a widget sets none")
	fs.StringP(KeyConfig, "c", d.Config, "Stories file (defaults to the built-in stories)")
}

// Load resolves the settings from fs and the process environment. A nil fs
// reads only the environment.
func Load(fs *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyHuman, d.Human)
	v.SetDefault(KeyLocale, d.Locale)
	v.SetDefault(KeyConfig, d.Config)

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Settings{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects unknown log levels and locales.
func (s Settings) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(s.LogLevel)); err != nil {
		return fmt.Errorf("invalid %s %q: %w", KeyLogLevel, s.LogLevel, err)
	}
	if s.Locale != "" {
		if _, ok := locale.Match(s.Locale); !ok {
			return fmt.Errorf("invalid %s %q: no close match among %s", KeyLocale, s.Locale, strings.Join(locale.Names(), ", "))
		}
	}
	return nil
}

// LoggerOptions maps the settings onto logger options writing to w.
func (s Settings) LoggerOptions(w io.Writer) logger.Options {
	return logger.Options{
		Level:         s.LogLevel,
		HumanReadable: s.Human,
		Writer:        w,
		Component:     "toolkit",
	}
}
