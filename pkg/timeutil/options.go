package timeutil

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/alexisbeaulieu97/toolkit/pkg/locale"
	"github.com/alexisbeaulieu97/toolkit/pkg/timefmt"
)

// Field names a segment of a time input.
type Field string

const (
	FieldHours   Field = "hours"
	FieldMinutes Field = "minutes"
	FieldSeconds Field = "seconds"
	FieldAMPM    Field = "ampm"
)

// Key is a stepping direction.
type Key int

const (
	KeyUp Key = iota
	KeyDown
)

func (k Key) String() string {
	if k == KeyDown {
		return "down"
	}
	return "up"
}

// MaxOptions caps the length of an option list. Callers that take a range
// from users should reject ranges whose OptionCount exceeds it.
const MaxOptions = 1 << 12

// OptionValue is an option's position in its list plus its time.
type OptionValue struct {
	Index int `json:"index"`
	Time
}

// String renders the position and the time, e.g. "#2 01:00:00".
func (v OptionValue) String() string {
	return fmt.Sprintf("#%d %s", v.Index, v.Time)
}

// Option is one selectable entry of a time dropdown.
type Option struct {
	Label string      `json:"label"`
	Value OptionValue `json:"value"`
}

// StepTable holds, per numeric field, the sorted distinct values present in
// an option list.
type StepTable struct {
	Hours   []string `json:"hours"`
	Minutes []string `json:"minutes"`
	Seconds []string `json:"seconds"`
}

// Values returns the table column for f. AMPM has no column.
func (s StepTable) Values(f Field) []string {
	switch f {
	case FieldHours:
		return s.Hours
	case FieldMinutes:
		return s.Minutes
	case FieldSeconds:
		return s.Seconds
	default:
		return nil
	}
}

// Options lists the times from minSeconds to maxSeconds inclusive, step
// seconds apart, labelled with format in the default locale.
func Options(format string, minSeconds, maxSeconds, step int) []Option {
	return OptionsIn(format, minSeconds, maxSeconds, step, locale.Default())
}

// OptionCount returns how many options the range holds before the
// MaxOptions cap, saturating at math.MaxInt.
func OptionCount(minSeconds, maxSeconds, step int) int {
	if step <= 0 || minSeconds > maxSeconds {
		return 0
	}
	span := maxSeconds - minSeconds
	if span < 0 {
		return math.MaxInt
	}
	n := span / step
	if n == math.MaxInt {
		return n
	}
	return n + 1
}

// OptionsIn is Options with an explicit locale. A non-positive step or an
// empty range yields no options, and lists stop after MaxOptions entries.
// Labels that cannot be rendered are empty.
func OptionsIn(format string, minSeconds, maxSeconds, step int, loc locale.Locale) []Option {
	n := min(OptionCount(minSeconds, maxSeconds, step), MaxOptions)
	if n == 0 {
		return []Option{}
	}

	var (
		layout    *timefmt.Layout
		badFormat bool
	)
	if format != "" {
		var err error
		layout, err = timefmt.Compile(format)
		badFormat = err != nil
	}

	options := make([]Option, 0, n)
	for index := 0; index < n; index++ {
		t := TimeFromSeconds(minSeconds + index*step)
		label := ""
		if !badFormat {
			label, _ = formatWith(t, layout, loc)
		}
		options = append(options, Option{
			Label: label,
			Value: OptionValue{Index: index, Time: t},
		})
	}
	return options
}

// Steps derives the step table of options. Empty field values are skipped.
func Steps(options []Option) StepTable {
	hours := map[string]struct{}{}
	minutes := map[string]struct{}{}
	seconds := map[string]struct{}{}
	for _, o := range options {
		addValue(hours, o.Value.Hours)
		addValue(minutes, o.Value.Minutes)
		addValue(seconds, o.Value.Seconds)
	}
	return StepTable{
		Hours:   sortedKeys(hours),
		Minutes: sortedKeys(minutes),
		Seconds: sortedKeys(seconds),
	}
}

func addValue(set map[string]struct{}, v string) {
	if v != "" {
		set[v] = struct{}{}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// NextValue returns the value field takes when key is pressed on current.
//
// Seconds count by one and wrap between 59 and 00. AMPM toggles for either
// key. Hours and minutes move to the nearest table value above (KeyUp) or
// below (KeyDown) the current one and wrap to the other end of the table.
// When steps has no column for the field it is derived from options; with
// neither, the current value is returned.
func NextValue(key Key, field Field, current Time, options []Option, steps StepTable) string {
	switch field {
	case FieldSeconds:
		seconds, err := strconv.Atoi(current.Seconds)
		if err != nil {
			seconds = 0
		}
		if key == KeyUp {
			seconds++
		} else {
			seconds--
		}
		if seconds < 0 {
			seconds = 59
		}
		if seconds > 59 {
			seconds = 0
		}
		return Pad2(seconds)
	case FieldAMPM:
		if current.Meridiem == AM {
			return PM
		}
		return AM
	}

	values := steps.Values(field)
	if len(values) == 0 {
		values = Steps(options).Values(field)
	}
	if len(values) == 0 {
		return current.Field(field)
	}

	value := current.Field(field)
	if key == KeyUp {
		for _, v := range values {
			if v > value {
				return v
			}
		}
		return values[0]
	}
	for i := len(values) - 1; i >= 0; i-- {
		if values[i] < value {
			return values[i]
		}
	}
	return values[len(values)-1]
}
