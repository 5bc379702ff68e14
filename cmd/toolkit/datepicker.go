package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/toolkit/internal/tui/datepicker"
)

func newDatePickerCmd(app *AppContext) *cobra.Command {
	opts := &pickerOptions{}

	cmd := &cobra.Command{
		Use:   "datepicker [id]",
		Short: "Open a date picker from the stories file",
		Long: `Open a date picker from the stories file. Without an id the first date
picker is used. When stdout is not a terminal, or with --static, the picker is
rendered once and the command exits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDatePicker(cmd, app, opts, firstArg(args))
		},
	}

	cmd.Flags().StringVar(&opts.theme, "theme", "default", "Theme (default, dark, light)")
	cmd.Flags().BoolVar(&opts.static, "static", false, "Render once instead of running interactively")

	return cmd
}

func runDatePicker(cmd *cobra.Command, app *AppContext, opts *pickerOptions, id string) error {
	theme, err := themeFlag(opts.theme)
	if err != nil {
		return err
	}
	cfg, err := app.Stories()
	if err != nil {
		return err
	}
	p, err := findDatePicker(cfg, id)
	if err != nil {
		return err
	}

	pc, err := datePickerConfig(app, cfg, p, theme, time.Now())
	if err != nil {
		return fmt.Errorf("date picker %s: %w", p.ID, err)
	}
	model := datepicker.New(pc, app.Logger)

	if opts.static || !isTerminal(cmd.OutOrStdout()) {
		fmt.Fprintln(cmd.OutOrStdout(), model.Render())
		return nil
	}

	final, err := tea.NewProgram(model,
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	).Run()
	if err != nil {
		return fmt.Errorf("run date picker: %w", err)
	}

	if m, ok := final.(datepicker.Model); ok && m.Committed() {
		day, _ := m.Value()
		fmt.Fprintln(cmd.OutOrStdout(), day.Format(time.DateOnly))
	}
	return nil
}
