package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/toolkit/internal/ui/components"
)

type storiesOptions struct {
	theme string
}

func newStoriesCmd(app *AppContext) *cobra.Command {
	opts := &storiesOptions{}

	cmd := &cobra.Command{
		Use:   "stories",
		Short: "Render every widget of the stories file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStories(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.theme, "theme", "default", "Theme (default, dark, light)")

	return cmd
}

func runStories(cmd *cobra.Command, app *AppContext, opts *storiesOptions) error {
	theme, err := themeFlag(opts.theme)
	if err != nil {
		return err
	}
	cfg, err := app.Stories()
	if err != nil {
		return err
	}

	page := components.VStack(components.TitleText(cfg.Name)).WithGap(1)
	if cfg.Description != "" {
		page.Add(components.NewCollapsible(cfg.Description, 3).WithExpanded(true))
	}

	now := time.Now()
	if len(cfg.TimePickers) > 0 {
		page.Add(components.NewBadge("Time pickers").WithVariant(components.BadgePrimary))
		for _, p := range cfg.TimePickers {
			page.Add(timePickerCard(app, cfg, p))
		}
	}
	if len(cfg.DatePickers) > 0 {
		page.Add(components.NewBadge("Date pickers").WithVariant(components.BadgePrimary))
		for _, p := range cfg.DatePickers {
			card, err := datePickerCard(app, cfg, p, now)
			if err != nil {
				return fmt.Errorf("date picker %s: %w", p.ID, err)
			}
			page.Add(card)
		}
	}
	if len(cfg.Fields) > 0 {
		page.Add(components.NewBadge("Fields").WithVariant(components.BadgePrimary))
		for _, f := range cfg.Fields {
			page.Add(textFieldCard(f))
		}
	}

	ctx := components.DefaultContext().WithTheme(theme)
	fmt.Fprintln(cmd.OutOrStdout(), page.ViewWithContext(ctx))

	stats := app.Cache.Stats()
	app.Logger.WithFields(map[string]any{"hits": stats.Hits, "misses": stats.Misses}).Debug("stories rendered")
	return nil
}
