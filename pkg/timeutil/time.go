// Package timeutil is the value engine behind the time picker: it parses typed
// text into structured times, formats them, builds the discrete option grid a
// picker offers, steps through that grid from the keyboard, and matches times
// against disabled-time rules.
//
// Every function is pure. Results that may be absent use the comma-ok form.
package timeutil

import (
	"fmt"
	"regexp"
	"strings"
)

// Meridiem markers.
const (
	AM = "AM"
	PM = "PM"
)

// Time is a time of day split into two-digit string fields. Meridiem is set
// only for values read from a 12-hour shape. Seconds is empty when the source
// carried none.
type Time struct {
	Hours    string `json:"hours" yaml:"hours"`
	Minutes  string `json:"minutes" yaml:"minutes"`
	Seconds  string `json:"seconds,omitempty" yaml:"seconds,omitempty"`
	Meridiem string `json:"ampm,omitempty" yaml:"ampm,omitempty"`
}

// IsZero reports whether t carries no fields at all.
func (t Time) IsZero() bool {
	return t == Time{}
}

// Field returns the value of the named field.
func (t Time) Field(f Field) string {
	switch f {
	case FieldHours:
		return t.Hours
	case FieldMinutes:
		return t.Minutes
	case FieldSeconds:
		return t.Seconds
	case FieldAMPM:
		return t.Meridiem
	default:
		return ""
	}
}

// With returns a copy of t with field f set to value.
func (t Time) With(f Field, value string) Time {
	switch f {
	case FieldHours:
		t.Hours = value
	case FieldMinutes:
		t.Minutes = value
	case FieldSeconds:
		t.Seconds = value
	case FieldAMPM:
		t.Meridiem = value
	}
	return t
}

// String renders the fields as they are, e.g. "05:30 PM" or "18:40:10".
func (t Time) String() string {
	var b strings.Builder
	b.WriteString(t.Hours)
	b.WriteByte(':')
	b.WriteString(t.Minutes)
	if t.Seconds != "" {
		b.WriteByte(':')
		b.WriteString(t.Seconds)
	}
	if t.Meridiem != "" {
		b.WriteByte(' ')
		b.WriteString(t.Meridiem)
	}
	return b.String()
}

// Pad2 renders n with at least two digits.
func Pad2(n int) string {
	return fmt.Sprintf("%02d", n)
}

func padString(s string) string {
	if len(s) >= 2 {
		return s
	}
	return strings.Repeat("0", 2-len(s)) + s
}

type shape struct {
	format  string
	re      *regexp.Regexp
	seconds bool
	clock12 bool
}

// Shapes in the order ParseTime tries them. The 12-hour shapes without a
// marker are only used by IsTimeValid.
var (
	shape12SecondsMeridiem = shape{format: "hh:mm:ss a", re: regexp.MustCompile(`^(0[1-9]|1[0-2]):([0-5][0-9]):([0-5][0-9]) ?([AaPp][Mm])$`), seconds: true, clock12: true}
	shape12Meridiem        = shape{format: "hh:mm a", re: regexp.MustCompile(`^(0[1-9]|1[0-2]):([0-5][0-9]) ?([AaPp][Mm])$`), clock12: true}
	shape24Seconds         = shape{format: "HH:mm:ss", re: regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9]):([0-5][0-9])$`), seconds: true}
	shape24                = shape{format: "HH:mm", re: regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)}
	shape12Seconds         = shape{format: "hh:mm:ss", re: regexp.MustCompile(`^(0[1-9]|1[0-2]):([0-5][0-9]):([0-5][0-9])$`)}
	shape12                = shape{format: "hh:mm", re: regexp.MustCompile(`^(0[1-9]|1[0-2]):([0-5][0-9])$`)}

	parseShapes = []shape{shape12SecondsMeridiem, shape12Meridiem, shape24Seconds, shape24}
	validShapes = []shape{shape12SecondsMeridiem, shape12Meridiem, shape24Seconds, shape24, shape12Seconds, shape12}
)

// ParseTime reads typed text in one of the shapes "hh:mm:ss a", "hh:mm a",
// "HH:mm:ss" or "HH:mm". The marker may follow the digits with or without a
// space and in any case; it is returned upper-cased. Only the fields present
// in the matched shape are set.
func ParseTime(text string) (Time, bool) {
	if text == "" {
		return Time{}, false
	}
	for _, s := range parseShapes {
		m := s.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		t := Time{Hours: m[1], Minutes: m[2]}
		next := 3
		if s.seconds {
			t.Seconds = m[next]
			next++
		}
		if s.clock12 {
			t.Meridiem = strings.ToUpper(m[next])
		}
		return t, true
	}
	return Time{}, false
}

// IsTimeValid reports whether text has the shape associated with format. An
// empty format accepts any known shape; an unknown format accepts nothing.
func IsTimeValid(text, format string) bool {
	if text == "" {
		return false
	}
	for _, s := range validShapes {
		if format != "" && s.format != format {
			continue
		}
		if s.re.MatchString(text) {
			return true
		}
	}
	return false
}
