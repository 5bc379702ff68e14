// Package dateutil holds the value logic of the date picker: reading typed
// dates, matching days against disabled-day modifiers, validating input and
// moving through a month grid from the keyboard.
package dateutil

import (
	"time"

	"github.com/alexisbeaulieu97/toolkit/pkg/locale"
	"github.com/alexisbeaulieu97/toolkit/pkg/timefmt"
)

// DefaultFormat is the pattern used when a picker names none.
const DefaultFormat = "MM-dd-yyyy"

// Parse reads text with format. When that fails and format has a four-digit
// year, the text is read again without it and the year is taken from ref.
func Parse(text, format string, ref time.Time, loc locale.Locale) (time.Time, bool) {
	if text == "" {
		return time.Time{}, false
	}
	layout, err := timefmt.Compile(format)
	if err != nil {
		return time.Time{}, false
	}
	if t, err := layout.Parse(text, ref, loc); err == nil {
		return t, true
	}
	short, ok := layout.WithoutYear()
	if !ok {
		return time.Time{}, false
	}
	t, err := short.Parse(text, ref, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Format renders t with format.
func Format(t time.Time, format string, loc locale.Locale) (string, bool) {
	s, err := timefmt.Format(format, t, loc)
	if err != nil {
		return "", false
	}
	return s, true
}

// Placeholder is the hint shown in an empty date field.
func Placeholder(format string) string {
	out := []rune(format)
	for i, r := range out {
		if r >= 'a' && r <= 'z' {
			out[i] = r - 'a' + 'A'
		}
	}
	return string(out)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return dayNumber(a) == dayNumber(b)
}

// dayNumber orders calendar dates regardless of clock and location.
func dayNumber(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
