// Package timepicker is an interactive time input: a segmented value stepped
// from the keyboard, free typing, and the dropdown of allowed options.
package timepicker

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/toolkit/internal/logger"
	"github.com/alexisbeaulieu97/toolkit/internal/optcache"
	"github.com/alexisbeaulieu97/toolkit/internal/ui/components"
	"github.com/alexisbeaulieu97/toolkit/pkg/locale"
	"github.com/alexisbeaulieu97/toolkit/pkg/timefmt"
	"github.com/alexisbeaulieu97/toolkit/pkg/timeutil"
)

// Config describes one picker.
type Config struct {
	ID       string
	Label    string
	Format   string
	Min      int
	Max      int
	Step     int
	Locale   string
	Disabled []timeutil.DisabledTime
	Initial  timeutil.Time
	Theme    components.Theme
}

// Model is the bubbletea model of a time picker.
type Model struct {
	cfg     Config
	loc     locale.Locale
	keys    KeyMap
	help    help.Model
	input   textinput.Model
	typing  bool
	options []timeutil.Option
	steps   timeutil.StepTable
	fields  []timeutil.Field
	clock12 bool
	focus   int
	value   timeutil.Time
	message string

	committed bool
	quitting  bool
	width     int

	log *logger.Logger
}

// New builds a picker. cache may be nil.
func New(cfg Config, cache *optcache.Cache, log *logger.Logger) Model {
	if cfg.Theme.Name == "" {
		cfg.Theme = components.DefaultTheme()
	}
	loc := locale.Resolve(cfg.Locale)

	var entry optcache.Entry
	if cache != nil {
		entry = cache.Get(optcache.Key{Format: cfg.Format, Min: cfg.Min, Max: cfg.Max, Step: cfg.Step, Locale: cfg.Locale})
	} else {
		options := timeutil.OptionsIn(cfg.Format, cfg.Min, cfg.Max, cfg.Step, loc)
		entry = optcache.Entry{Options: options, Steps: timeutil.Steps(options)}
	}

	in := textinput.New()
	in.Placeholder = cfg.Format
	in.Prompt = "› "
	in.CharLimit = 32

	m := Model{
		cfg:     cfg,
		loc:     loc,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		input:   in,
		options: entry.Options,
		steps:   entry.Steps,
		log:     log.With("picker", cfg.ID),
	}
	m.fields, m.clock12 = fieldsOf(cfg.Format)
	m.value = m.initialValue()
	return m
}

func fieldsOf(format string) ([]timeutil.Field, bool) {
	fields := []timeutil.Field{timeutil.FieldHours, timeutil.FieldMinutes}
	layout, err := timefmt.Compile(format)
	if err != nil {
		return fields, false
	}
	if layout.Has(timefmt.Second) {
		fields = append(fields, timeutil.FieldSeconds)
	}
	clock12 := layout.Has(timefmt.Meridiem)
	if clock12 {
		fields = append(fields, timeutil.FieldAMPM)
	}
	return fields, clock12
}

// initialValue is the configured value, else the first enabled option, else
// midnight.
func (m Model) initialValue() timeutil.Time {
	if !m.cfg.Initial.IsZero() {
		t := m.cfg.Initial
		t.Meridiem = ""
		if t.Seconds == "" {
			t.Seconds = "00"
		}
		return t
	}
	for _, opt := range m.options {
		if !timeutil.IsTimeDisabled(opt.Value.Time, m.cfg.Disabled...) {
			return opt.Value.Time
		}
	}
	return timeutil.Time{Hours: "00", Minutes: "00", Seconds: "00"}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Value returns the current 24-hour value.
func (m Model) Value() timeutil.Time {
	return m.value
}

// Committed reports whether the user chose a value.
func (m Model) Committed() bool {
	return m.committed
}

// Focused returns the focused field.
func (m Model) Focused() timeutil.Field {
	return m.fields[m.focus]
}

// Typing reports whether the text input has the focus.
func (m Model) Typing() bool {
	return m.typing
}

// Message returns the last feedback line.
func (m Model) Message() string {
	return m.message
}

// Options returns the option grid.
func (m Model) Options() []timeutil.Option {
	return m.options
}

// Candidates returns the options matching the typed text, or every option
// when not typing.
func (m Model) Candidates() []timeutil.Option {
	if !m.typing {
		return m.options
	}
	out := make([]timeutil.Option, 0, len(m.options))
	for _, opt := range m.options {
		if components.LabelFilter(opt, m.input.Value()) {
			out = append(out, opt)
		}
	}
	return out
}

// Display renders the value in the picker's format.
func (m Model) Display() string {
	if s, ok := timeutil.FormatTimeIn(m.value, m.cfg.Format, m.loc); ok {
		return s
	}
	return timeutil.FormatISO(m.value)
}

// meridiem returns the AM/PM marker of the value.
func (m Model) meridiem() string {
	h, _ := strconv.Atoi(m.value.Hours)
	if h >= 12 {
		return timeutil.PM
	}
	return timeutil.AM
}

// segment returns the text shown for field f.
func (m Model) segment(f timeutil.Field) string {
	switch f {
	case timeutil.FieldAMPM:
		return m.meridiem()
	case timeutil.FieldHours:
		if !m.clock12 {
			return m.value.Hours
		}
		h, _ := strconv.Atoi(m.value.Hours)
		h %= 12
		if h == 0 {
			h = 12
		}
		return timeutil.Pad2(h)
	default:
		return m.value.Field(f)
	}
}
