package config

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/toolkit/pkg/dateutil"
	"github.com/alexisbeaulieu97/toolkit/pkg/locale"
	"github.com/alexisbeaulieu97/toolkit/pkg/timefmt"
	"github.com/alexisbeaulieu97/toolkit/pkg/timeutil"
	"github.com/alexisbeaulieu97/toolkit/pkg/validation"
)

// Defaults applied when a widget leaves a field out.
const (
	DefaultTimeFormat = "HH:mm"
	DefaultMin        = "00:00:00"
	DefaultMax        = "23:59:59"
	DefaultStep       = 1800
	DateLayout        = "yyyy-MM-dd"
)

var dateLayout = timefmt.MustCompile(DateLayout)

// Config is a stories document: the widgets the showcase renders.
type Config struct {
	Version     string       `yaml:"version" validate:"required,semver"`
	Name        string       `yaml:"name" validate:"required,min=1,max=100"`
	Description string       `yaml:"description,omitempty"`
	Settings    Settings     `yaml:"settings,omitempty"`
	TimePickers []TimePicker `yaml:"timepickers,omitempty" validate:"omitempty,dive"`
	DatePickers []DatePicker `yaml:"datepickers,omitempty" validate:"omitempty,dive"`
	Fields      []TextField  `yaml:"fields,omitempty" validate:"omitempty,dive"`
}

// Settings holds document-wide presentation defaults.
type Settings struct {
	Locale       string `yaml:"locale,omitempty"`
	FirstWeekday string `yaml:"first_weekday,omitempty" validate:"omitempty,oneof=sunday monday"`
}

// Weekday returns the first day of a calendar row.
func (s Settings) Weekday() time.Weekday {
	if s.FirstWeekday == "monday" {
		return time.Monday
	}
	return time.Sunday
}

// TimePicker describes a time input with its dropdown of options.
type TimePicker struct {
	ID       string                  `yaml:"id" validate:"required,widget_id"`
	Label    string                  `yaml:"label,omitempty"`
	Format   string                  `yaml:"format" validate:"required,time_format"`
	Min      string                  `yaml:"min" validate:"required,iso_time"`
	Max      string                  `yaml:"max" validate:"required,iso_time"`
	Step     int                     `yaml:"step" validate:"min=1,max=86400"`
	Locale   string                  `yaml:"locale,omitempty"`
	Value    string                  `yaml:"value,omitempty"`
	Disabled []timeutil.DisabledTime `yaml:"disabled,omitempty" validate:"omitempty,dive"`
}

// UnmarshalYAML fills defaults for omitted fields.
func (p *TimePicker) UnmarshalYAML(value *yaml.Node) error {
	type rawTimePicker TimePicker
	raw := rawTimePicker{
		Format: DefaultTimeFormat,
		Min:    DefaultMin,
		Max:    DefaultMax,
		Step:   DefaultStep,
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*p = TimePicker(raw)
	return nil
}

// MinSeconds returns Min as seconds since midnight.
func (p TimePicker) MinSeconds() int {
	s, _ := timeutil.ISOToSeconds(p.Min)
	return s
}

// MaxSeconds returns Max as seconds since midnight.
func (p TimePicker) MaxSeconds() int {
	s, _ := timeutil.ISOToSeconds(p.Max)
	return s
}

// Initial parses Value, typed in the picker's format or any known shape.
func (p TimePicker) Initial() (timeutil.Time, bool) {
	if p.Value == "" {
		return timeutil.Time{}, false
	}
	return timeutil.ISOFromText(p.Value, p.Format, locale.Resolve(p.Locale))
}

// DisabledDay is the YAML form of a dateutil.Modifier. Dates use yyyy-MM-dd
// and weekdays count from 0 for Sunday.
type DisabledDay struct {
	Days       []string `yaml:"days,omitempty" validate:"omitempty,dive,iso_date"`
	Before     string   `yaml:"before,omitempty" validate:"omitempty,iso_date"`
	After      string   `yaml:"after,omitempty" validate:"omitempty,iso_date"`
	From       string   `yaml:"from,omitempty" validate:"required_with=To,omitempty,iso_date"`
	To         string   `yaml:"to,omitempty" validate:"required_with=From,omitempty,iso_date"`
	DaysOfWeek []int    `yaml:"days_of_week,omitempty" validate:"omitempty,dive,min=0,max=6"`
}

// Modifier converts the rule.
func (d DisabledDay) Modifier() (dateutil.Modifier, error) {
	var (
		m   dateutil.Modifier
		err error
	)
	for _, s := range d.Days {
		day, perr := ParseDate(s)
		if perr != nil {
			return dateutil.Modifier{}, perr
		}
		m.Days = append(m.Days, day)
	}
	if m.Before, err = optionalDate(d.Before); err != nil {
		return dateutil.Modifier{}, err
	}
	if m.After, err = optionalDate(d.After); err != nil {
		return dateutil.Modifier{}, err
	}
	if m.From, err = optionalDate(d.From); err != nil {
		return dateutil.Modifier{}, err
	}
	if m.To, err = optionalDate(d.To); err != nil {
		return dateutil.Modifier{}, err
	}
	for _, wd := range d.DaysOfWeek {
		m.DaysOfWeek = append(m.DaysOfWeek, time.Weekday(wd))
	}
	return m, nil
}

// DatePicker describes a date input with its calendar.
type DatePicker struct {
	ID       string        `yaml:"id" validate:"required,widget_id"`
	Label    string        `yaml:"label,omitempty"`
	Format   string        `yaml:"format" validate:"required,date_format"`
	Locale   string        `yaml:"locale,omitempty"`
	Value    string        `yaml:"value,omitempty"`
	Today    string        `yaml:"today,omitempty" validate:"omitempty,iso_date"`
	Disabled []DisabledDay `yaml:"disabled,omitempty" validate:"omitempty,dive"`
}

// UnmarshalYAML fills defaults for omitted fields.
func (p *DatePicker) UnmarshalYAML(value *yaml.Node) error {
	type rawDatePicker DatePicker
	raw := rawDatePicker{Format: dateutil.DefaultFormat}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*p = DatePicker(raw)
	return nil
}

// Modifiers converts every disabled-day rule.
func (p DatePicker) Modifiers() ([]dateutil.Modifier, error) {
	mods := make([]dateutil.Modifier, 0, len(p.Disabled))
	for i, d := range p.Disabled {
		m, err := d.Modifier()
		if err != nil {
			return nil, fmt.Errorf("disabled[%d]: %w", i, err)
		}
		mods = append(mods, m)
	}
	return mods, nil
}

// Reference returns Today, or now when Today is empty or malformed.
func (p DatePicker) Reference(now time.Time) time.Time {
	if p.Today == "" {
		return now
	}
	day, err := ParseDate(p.Today)
	if err != nil {
		return now
	}
	return day
}

// TextField describes a validated text input.
type TextField struct {
	ID          string            `yaml:"id" validate:"required,widget_id"`
	Label       string            `yaml:"label,omitempty"`
	Placeholder string            `yaml:"placeholder,omitempty"`
	Value       string            `yaml:"value,omitempty"`
	Validators  []string          `yaml:"validators,omitempty" validate:"omitempty,dive,oneof=required number email time"`
	Messages    map[string]string `yaml:"messages,omitempty"`
}

// Rules maps the configured validator names onto validators.
func (f TextField) Rules() []validation.Validator {
	known := map[string]validation.Validator{
		validation.RuleRequired: validation.Required,
		validation.RuleNumber:   validation.Number,
		validation.RuleEmail:    validation.Email,
		validation.RuleTime:     validation.Time,
	}
	rules := make([]validation.Validator, 0, len(f.Validators))
	for _, name := range f.Validators {
		if v, ok := known[strings.ToLower(name)]; ok {
			rules = append(rules, v)
		}
	}
	return rules
}

// ParseDate reads a yyyy-MM-dd date in UTC.
func ParseDate(s string) (time.Time, error) {
	return dateLayout.Parse(s, time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC), locale.Default())
}

func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
