package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/toolkit/internal/tui/timepicker"
	"github.com/alexisbeaulieu97/toolkit/pkg/timeutil"
)

type pickerOptions struct {
	theme  string
	static bool
}

func newTimePickerCmd(app *AppContext) *cobra.Command {
	opts := &pickerOptions{}

	cmd := &cobra.Command{
		Use:   "timepicker [id]",
		Short: "Open a time picker from the stories file",
		Long: `Open a time picker from the stories file. Without an id the first time
picker is used. When stdout is not a terminal, or with --static, the picker is
rendered once and the command exits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimePicker(cmd, app, opts, firstArg(args))
		},
	}

	cmd.Flags().StringVar(&opts.theme, "theme", "default", "Theme (default, dark, light)")
	cmd.Flags().BoolVar(&opts.static, "static", false, "Render once instead of running interactively")

	return cmd
}

func runTimePicker(cmd *cobra.Command, app *AppContext, opts *pickerOptions, id string) error {
	theme, err := themeFlag(opts.theme)
	if err != nil {
		return err
	}
	cfg, err := app.Stories()
	if err != nil {
		return err
	}
	p, err := findTimePicker(cfg, id)
	if err != nil {
		return err
	}

	model := timepicker.New(timePickerConfig(app, cfg, p, theme), app.Cache, app.Logger)

	if opts.static || !isTerminal(cmd.OutOrStdout()) {
		fmt.Fprintln(cmd.OutOrStdout(), model.Render())
		return nil
	}

	final, err := tea.NewProgram(model,
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	).Run()
	if err != nil {
		return fmt.Errorf("run time picker: %w", err)
	}

	if m, ok := final.(timepicker.Model); ok && m.Committed() {
		fmt.Fprintln(cmd.OutOrStdout(), timeutil.FormatISO(m.Value()))
	}
	return nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
