package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/toolkit/internal/config"
	"github.com/alexisbeaulieu97/toolkit/internal/optcache"
	"github.com/alexisbeaulieu97/toolkit/pkg/timeutil"
)

type optionsOptions struct {
	format     string
	min        string
	max        string
	step       int
	disabled   []string
	jsonOutput bool
}

func newOptionsCmd(app *AppContext) *cobra.Command {
	opts := &optionsOptions{}

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the options a time picker offers",
		Example: `  toolkit options --format "hh:mm a" --min 08:00:00 --max 18:00:00 --step 1800
  toolkit options --disabled 12:00:00 --disabled 13:00:00-13:59:59 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptions(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", config.DefaultTimeFormat, "Label format")
	cmd.Flags().StringVar(&opts.min, "min", config.DefaultMin, "First option (HH:MM:SS)")
	cmd.Flags().StringVar(&opts.max, "max", config.DefaultMax, "Last possible option (HH:MM:SS)")
	cmd.Flags().IntVar(&opts.step, "step", config.DefaultStep, "Seconds between options")
	cmd.Flags().StringSliceVar(&opts.disabled, "disabled", nil, "Disabled time (HH:MM:SS) or range (HH:MM:SS-HH:MM:SS)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runOptions(cmd *cobra.Command, app *AppContext, opts *optionsOptions) error {
	minSeconds, err := isoFlag("min", opts.min)
	if err != nil {
		return err
	}
	maxSeconds, err := isoFlag("max", opts.max)
	if err != nil {
		return err
	}
	if n := timeutil.OptionCount(minSeconds, maxSeconds, opts.step); n > timeutil.MaxOptions {
		return fmt.Errorf("--step %d yields %d options, more than %d", opts.step, n, timeutil.MaxOptions)
	}
	rules, err := parseDisabledFlags(opts.disabled)
	if err != nil {
		return err
	}

	entry := app.Cache.Get(optcache.Key{
		Format: opts.format,
		Min:    minSeconds,
		Max:    maxSeconds,
		Step:   opts.step,
		Locale: app.Settings.Locale,
	})

	if opts.jsonOutput {
		return renderOptionsJSON(cmd, opts, entry, rules)
	}
	return renderOptionsTable(cmd, entry, rules)
}

func isoFlag(name, value string) (int, error) {
	if !config.ValidISOTime(value) {
		return 0, fmt.Errorf("invalid --%s %q: expected HH:MM:SS", name, value)
	}
	seconds, _ := timeutil.ISOToSeconds(value)
	return seconds, nil
}

func parseDisabledFlags(values []string) ([]timeutil.DisabledTime, error) {
	rules := make([]timeutil.DisabledTime, 0, len(values))
	for _, v := range values {
		from, to, isRange := strings.Cut(v, "-")
		if !isRange {
			if !config.ValidISOTime(v) {
				return nil, fmt.Errorf("invalid --disabled %q: expected HH:MM:SS", v)
			}
			rules = append(rules, timeutil.DisabledTime{Time: v})
			continue
		}
		if !config.ValidISOTime(from) || !config.ValidISOTime(to) || from > to {
			return nil, fmt.Errorf("invalid --disabled %q: expected HH:MM:SS-HH:MM:SS within one day", v)
		}
		rules = append(rules, timeutil.DisabledTime{From: from, To: to})
	}
	return rules, nil
}

func renderOptionsTable(cmd *cobra.Command, entry optcache.Entry, rules []timeutil.DisabledTime) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "INDEX\tLABEL\tVALUE\tDISABLED")
	for _, opt := range entry.Options {
		disabled := ""
		if timeutil.IsTimeDisabled(opt.Value.Time, rules...) {
			disabled = "yes"
		}
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n",
			opt.Value.Index,
			opt.Label,
			timeutil.FormatISO(opt.Value.Time),
			disabled,
		)
	}

	return writer.Flush()
}

type optionJSON struct {
	Index    int           `json:"index"`
	Label    string        `json:"label"`
	Value    timeutil.Time `json:"value"`
	Disabled bool          `json:"disabled"`
}

type optionsJSONPayload struct {
	Format  string             `json:"format"`
	Min     string             `json:"min"`
	Max     string             `json:"max"`
	Step    int                `json:"step"`
	Count   int                `json:"count"`
	Options []optionJSON       `json:"options"`
	Steps   timeutil.StepTable `json:"steps"`
}

func renderOptionsJSON(cmd *cobra.Command, opts *optionsOptions, entry optcache.Entry, rules []timeutil.DisabledTime) error {
	payload := optionsJSONPayload{
		Format:  opts.format,
		Min:     opts.min,
		Max:     opts.max,
		Step:    opts.step,
		Count:   len(entry.Options),
		Options: make([]optionJSON, len(entry.Options)),
		Steps:   entry.Steps,
	}

	for i, opt := range entry.Options {
		payload.Options[i] = optionJSON{
			Index:    opt.Value.Index,
			Label:    opt.Label,
			Value:    opt.Value.Time,
			Disabled: timeutil.IsTimeDisabled(opt.Value.Time, rules...),
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
