package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/toolkit/internal/config"
	"github.com/alexisbeaulieu97/toolkit/pkg/timeutil"
)

type parseOptions struct {
	format     string
	jsonOutput bool
}

func newParseCmd(app *AppContext) *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <text>...",
		Short: "Show how typed text is read as a time",
		Example: `  toolkit parse "05:30 pm" 18:40 --format HH:mm
  toolkit parse "14 h 05" --format "HH 'h' mm" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, app, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", config.DefaultTimeFormat, "Format the text is typed in")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type parseResult struct {
	Text      string         `json:"text"`
	Shape     *timeutil.Time `json:"shape"`
	ISO       string         `json:"iso,omitempty"`
	Seconds   *int           `json:"seconds"`
	Formatted string         `json:"formatted,omitempty"`
	Valid     bool           `json:"valid"`
}

func parseText(text, format string, app *AppContext) parseResult {
	res := parseResult{Text: text, Valid: timeutil.IsTimeValid(text, "")}
	if t, ok := timeutil.ParseTime(text); ok {
		res.Shape = &t
	}

	loc := app.Locale("", nil)
	iso, ok := timeutil.ISOFromText(text, format, loc)
	if !ok {
		return res
	}
	res.ISO = timeutil.FormatISO(iso)
	if seconds, ok := timeutil.ISOToSeconds(res.ISO); ok {
		res.Seconds = &seconds
	}
	res.Formatted, _ = timeutil.FormatTimeIn(iso, format, loc)
	return res
}

func runParse(cmd *cobra.Command, app *AppContext, opts *parseOptions, args []string) error {
	results := make([]parseResult, 0, len(args))
	for _, text := range args {
		results = append(results, parseText(text, opts.format, app))
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "TEXT\tSHAPE\tISO\tSECONDS\tFORMATTED")
	for _, r := range results {
		shape, seconds := "-", "-"
		if r.Shape != nil {
			shape = r.Shape.String()
		}
		if r.Seconds != nil {
			seconds = fmt.Sprint(*r.Seconds)
		}
		fmt.Fprintf(writer, "%q\t%s\t%s\t%s\t%s\n", r.Text, shape, valueOr(r.ISO, "-"), seconds, valueOr(r.Formatted, "-"))
	}
	return writer.Flush()
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
