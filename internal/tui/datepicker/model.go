// Package datepicker is an interactive date input: typed text validated
// against the disabled days, and a month calendar driven from the keyboard.
package datepicker

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/toolkit/internal/logger"
	"github.com/alexisbeaulieu97/toolkit/internal/ui/components"
	"github.com/alexisbeaulieu97/toolkit/pkg/dateutil"
	"github.com/alexisbeaulieu97/toolkit/pkg/locale"
)

// Config describes one picker.
type Config struct {
	ID           string
	Label        string
	Format       string
	Locale       string
	Today        time.Time
	FirstWeekday time.Weekday
	Disabled     []dateutil.Modifier
	Messages     map[string]string
	Initial      string
	Theme        components.Theme
}

type focusArea int

const (
	focusInput focusArea = iota
	focusCalendar
)

// Model is the bubbletea model of a date picker.
type Model struct {
	cfg    Config
	loc    locale.Locale
	keys   KeyMap
	help   help.Model
	input  textinput.Model
	area   focusArea
	cursor time.Time

	result    dateutil.Result
	touched   bool
	selected  time.Time
	committed bool
	quitting  bool
	width     int

	log *logger.Logger
}

// New builds a picker. A zero Today means the current day.
func New(cfg Config, log *logger.Logger) Model {
	if cfg.Format == "" {
		cfg.Format = dateutil.DefaultFormat
	}
	if cfg.Today.IsZero() {
		cfg.Today = time.Now()
	}
	cfg.Today = dateutil.StartOfDay(cfg.Today)
	if cfg.Theme.Name == "" {
		cfg.Theme = components.DefaultTheme()
	}

	in := textinput.New()
	in.Placeholder = dateutil.Placeholder(cfg.Format)
	in.Prompt = "› "
	in.CharLimit = 40
	in.Focus()

	m := Model{
		cfg:    cfg,
		loc:    locale.Resolve(cfg.Locale),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  in,
		cursor: cfg.Today,
		log:    log.With("picker", cfg.ID),
	}

	if cfg.Initial != "" {
		m.input.SetValue(cfg.Initial)
		m.validate()
		if m.result.OK {
			m.cursor = m.result.Date
			if m.result.Valid() {
				m.selected = m.result.Date
			}
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// validate runs the date rules over the input text.
func (m *Model) validate() {
	m.result = dateutil.ValidateWithMessages(m.cfg.Messages, m.input.Value(), m.cfg.Format, m.cfg.Today, m.loc, m.cfg.Disabled...)
}

// Value returns the chosen day and whether one is set.
func (m Model) Value() (time.Time, bool) {
	return m.selected, !m.selected.IsZero()
}

// Text returns the input text.
func (m Model) Text() string {
	return m.input.Value()
}

// Cursor returns the focused calendar day.
func (m Model) Cursor() time.Time {
	return m.cursor
}

// CalendarFocused reports whether the calendar has the focus.
func (m Model) CalendarFocused() bool {
	return m.area == focusCalendar
}

// Committed reports whether the user chose a day.
func (m Model) Committed() bool {
	return m.committed
}

// Errors returns the validation messages to display. They stay hidden until
// the text is edited.
func (m Model) Errors() map[string]string {
	if !m.touched {
		return nil
	}
	return m.result.Errors
}
