package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/toolkit/internal/config"
	"github.com/alexisbeaulieu97/toolkit/internal/logger"
	"github.com/alexisbeaulieu97/toolkit/internal/optcache"
	"github.com/alexisbeaulieu97/toolkit/internal/settings"
	"github.com/alexisbeaulieu97/toolkit/internal/ui/components"
	"github.com/alexisbeaulieu97/toolkit/pkg/locale"
)

// AppContext bundles the services created once per invocation.
type AppContext struct {
	Settings settings.Settings
	Logger   *logger.Logger
	Cache    *optcache.Cache

	stories *config.Config
}

func newAppContext() *AppContext {
	return &AppContext{Settings: settings.Defaults()}
}

// setup resolves settings and builds the logger and cache.
func (a *AppContext) setup(cmd *cobra.Command) error {
	s, err := settings.Load(cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	log, err := logger.New(s.LoggerOptions(cmd.ErrOrStderr()))
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	a.Settings = s
	a.Logger = log.With("command", cmd.Name())
	a.Cache = optcache.New(optcache.DefaultSize, a.Logger)
	return nil
}

// Stories loads the configured stories file, or the built-in one.
func (a *AppContext) Stories() (*config.Config, error) {
	if a.stories != nil {
		return a.stories, nil
	}

	var (
		cfg *config.Config
		err error
	)
	if a.Settings.Config == "" {
		cfg, err = config.Default()
	} else {
		if err := validateConfigPath(a.Settings.Config); err != nil {
			return nil, err
		}
		cfg, err = config.ParseConfig(a.Settings.Config)
	}
	if err != nil {
		a.Logger.Error(err, "stories failed to load")
		return nil, err
	}

	a.Logger.WithFields(map[string]any{
		"name":        cfg.Name,
		"timepickers": len(cfg.TimePickers),
		"datepickers": len(cfg.DatePickers),
		"fields":      len(cfg.Fields),
	}).Debug("stories loaded")

	a.stories = cfg
	return cfg, nil
}

// LocaleName picks the widget locale, then the document locale, then the
// --locale setting.
func (a *AppContext) LocaleName(widget string, cfg *config.Config) string {
	switch {
	case widget != "":
		return widget
	case cfg != nil && cfg.Settings.Locale != "":
		return cfg.Settings.Locale
	default:
		return a.Settings.Locale
	}
}

// Locale resolves LocaleName.
func (a *AppContext) Locale(widget string, cfg *config.Config) locale.Locale {
	return locale.Resolve(a.LocaleName(widget, cfg))
}

func themeFlag(name string) (components.Theme, error) {
	theme, ok := components.ThemeByName(name)
	if !ok {
		return components.Theme{}, fmt.Errorf("unknown theme %q (use default, dark or light)", name)
	}
	return theme, nil
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
