package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/toolkit/internal/config"
)

func TestLocaleNamePrecedence(t *testing.T) {
	t.Parallel()

	app := newAppContext()
	app.Settings.Locale = "de"
	doc := &config.Config{Settings: config.Settings{Locale: "fr"}}

	tests := map[string]struct {
		widget string
		cfg    *config.Config
		want   string
	}{
		"widget wins":           {widget: "en", cfg: doc, want: "en"},
		"document next":         {cfg: doc, want: "fr"},
		"flag last":             {cfg: &config.Config{}, want: "de"},
		"no document uses flag": {want: "de"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, app.LocaleName(tc.widget, tc.cfg))
		})
	}

	require.Equal(t, "fr", app.Locale("", doc).Name())
}
