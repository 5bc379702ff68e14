package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/toolkit/internal/config"
	"github.com/alexisbeaulieu97/toolkit/pkg/dateutil"
	"github.com/alexisbeaulieu97/toolkit/pkg/diff"
	"github.com/alexisbeaulieu97/toolkit/pkg/locale"
	"github.com/alexisbeaulieu97/toolkit/pkg/timeutil"
)

type initOptions struct {
	output string
	yes    bool
	force  bool
	dryRun bool
}

type initAnswers struct {
	Name       string
	PickerID   string
	Format     string
	Min        string
	Max        string
	Step       string
	DateFormat string
	Locale     string
}

func defaultAnswers(localeName string) initAnswers {
	return initAnswers{
		Name:       "My widgets",
		PickerID:   "meeting",
		Format:     config.DefaultTimeFormat,
		Min:        "08:00:00",
		Max:        "18:00:00",
		Step:       strconv.Itoa(config.DefaultStep),
		DateFormat: dateutil.DefaultFormat,
		Locale:     localeName,
	}
}

func newInitCmd(app *AppContext) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a stories file",
		Long:  `Ask for a time picker and a date picker and write them to a new stories file.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "stories.yaml", "File to write")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Accept the defaults without prompting")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing file")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the changes as a diff instead of writing")

	return cmd
}

func runInit(cmd *cobra.Command, app *AppContext, opts *initOptions) error {
	existing, err := os.ReadFile(opts.output)
	exists := err == nil
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read %s: %w", opts.output, err)
	}
	if exists && !opts.force && !opts.dryRun {
		return fmt.Errorf("%s already exists (use --force to overwrite)", opts.output)
	}

	answers := defaultAnswers(app.Settings.Locale)
	if !opts.yes {
		form := answersForm(&answers).
			WithInput(cmd.InOrStdin()).
			WithOutput(cmd.OutOrStdout()).
			WithAccessible(!isTerminal(cmd.OutOrStdout()))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return errors.New("init aborted")
			}
			return fmt.Errorf("read answers: %w", err)
		}
	}

	cfg, err := answers.Config()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode stories: %w", err)
	}

	if opts.dryRun {
		before := "/dev/null"
		if exists {
			before = opts.output
		}
		out := diff.Unified(existing, data, before, opts.output)
		if out == "" {
			out = "No changes\n"
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	if err := config.WriteConfig(opts.output, cfg); err != nil {
		return err
	}

	added, removed := diff.Stats(existing, data)
	app.Logger.WithFields(map[string]any{
		"path":    opts.output,
		"added":   added,
		"removed": removed,
	}).Info("stories written")
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (+%d -%d lines)\n", opts.output, added, removed)
	return nil
}

func answersForm(a *initAnswers) *huh.Form {
	isoTime := func(s string) error {
		if _, ok := timeutil.ISOToSeconds(s); !ok {
			return errors.New("use HH:MM:SS")
		}
		return nil
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Document name").Value(&a.Name),
			huh.NewSelect[string]().
				Title("Locale").
				Options(huh.NewOptions(locale.Names()...)...).
				Value(&a.Locale),
		),
		huh.NewGroup(
			huh.NewInput().Title("Time picker id").Value(&a.PickerID),
			huh.NewSelect[string]().
				Title("Time format").
				Options(huh.NewOptions("HH:mm", "HH:mm:ss", "hh:mm a", "hh:mm:ss a")...).
				Value(&a.Format),
			huh.NewInput().Title("First option").Value(&a.Min).Validate(isoTime),
			huh.NewInput().Title("Last option").Value(&a.Max).Validate(isoTime),
			huh.NewInput().Title("Step in seconds").Value(&a.Step).Validate(func(s string) error {
				if n, err := strconv.Atoi(s); err != nil || n < 1 {
					return errors.New("use a positive number")
				}
				return nil
			}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Date format").
				Options(huh.NewOptions("MM-dd-yyyy", "dd/MM/yyyy", "yyyy-MM-dd", "d MMMM yyyy")...).
				Value(&a.DateFormat),
		),
	)
}

// Config builds a stories document from the answers.
func (a initAnswers) Config() (*config.Config, error) {
	step, err := strconv.Atoi(a.Step)
	if err != nil {
		return nil, fmt.Errorf("invalid step %q: %w", a.Step, err)
	}

	cfg := &config.Config{
		Version:  "1.0",
		Name:     a.Name,
		Settings: config.Settings{Locale: a.Locale},
		TimePickers: []config.TimePicker{{
			ID:     a.PickerID,
			Label:  a.Name + " time",
			Format: a.Format,
			Min:    a.Min,
			Max:    a.Max,
			Step:   step,
		}},
		DatePickers: []config.DatePicker{{
			ID:     a.PickerID + "_date",
			Label:  a.Name + " date",
			Format: a.DateFormat,
			Disabled: []config.DisabledDay{
				{DaysOfWeek: []int{0, 6}},
			},
		}},
	}
	return cfg, nil
}
