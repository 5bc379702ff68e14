package dateutil

import (
	"maps"
	"time"

	"github.com/alexisbeaulieu97/toolkit/pkg/locale"
)

// Rule names reported by Validate.
const (
	RuleFormat       = "format"
	RuleMinDate      = "minDate"
	RuleMaxDate      = "maxDate"
	RuleDisabledDate = "disabledDate"
)

// DefaultMessages are the messages reported per rule.
var DefaultMessages = map[string]string{
	RuleFormat:       "The date format is incorrect",
	RuleMinDate:      "Date too far in the past",
	RuleMaxDate:      "Date too far in the future",
	RuleDisabledDate: "This date is not available",
}

// Result is the outcome of validating typed text.
type Result struct {
	Date   time.Time
	OK     bool
	Errors map[string]string
}

// Valid reports whether the text named a selectable day.
func (r Result) Valid() bool {
	return r.OK && len(r.Errors) == 0
}

// Validate reads text with Parse and checks the day against mods using the
// default messages.
func Validate(text, format string, ref time.Time, loc locale.Locale, mods ...Modifier) Result {
	return ValidateWithMessages(DefaultMessages, text, format, ref, loc, mods...)
}

// ValidateWithMessages is Validate with caller messages. Rules missing from
// messages fall back to the defaults. At most one rule is reported: a parse
// failure first, then a bound, then any other disabling modifier.
func ValidateWithMessages(messages map[string]string, text, format string, ref time.Time, loc locale.Locale, mods ...Modifier) Result {
	msgs := maps.Clone(DefaultMessages)
	maps.Copy(msgs, messages)

	date, ok := Parse(text, format, ref, loc)
	if !ok {
		return Result{Errors: map[string]string{RuleFormat: msgs[RuleFormat]}}
	}

	res := Result{Date: date, OK: true, Errors: map[string]string{}}
	for _, m := range mods {
		if m.tooEarly(date) {
			res.Errors[RuleMinDate] = msgs[RuleMinDate]
			return res
		}
		if m.tooLate(date) {
			res.Errors[RuleMaxDate] = msgs[RuleMaxDate]
			return res
		}
	}
	if MatchDay(date, mods...) {
		res.Errors[RuleDisabledDate] = msgs[RuleDisabledDate]
	}
	return res
}
