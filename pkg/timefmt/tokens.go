package timefmt

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/toolkit/pkg/locale"
)

// Component is a bitmask of the calendar fields a pattern mentions.
type Component int

const (
	Year Component = 1 << iota
	Month
	Day
	Hour
	Minute
	Second
	Meridiem
	Weekday
)

// Date covers every date component.
const Date = Year | Month | Day

// Clock covers every time-of-day component.
const Clock = Hour | Minute | Second | Meridiem

type fields struct {
	refYear int
	year    int
	month   time.Month
	day     int
	hour    int
	minute  int
	second  int

	meridiem string
}

type parseFunc func(text string, f *fields, loc locale.Locale) (int, error)

type formatFunc func(t time.Time, loc locale.Locale) string

type tokenInfo struct {
	component Component
	clock12   bool
	clock24   bool
	parse     parseFunc
	format    formatFunc
}

var tokenTable = map[string]*tokenInfo{
	"HH": {
		component: Hour,
		clock24:   true,
		parse:     numberParser("hour", 2, 2, 0, 23, func(f *fields, v int) { f.hour = v }),
		format:    func(t time.Time, _ locale.Locale) string { return fmt.Sprintf("%02d", t.Hour()) },
	},
	"H": {
		component: Hour,
		clock24:   true,
		parse:     numberParser("hour", 1, 2, 0, 23, func(f *fields, v int) { f.hour = v }),
		format:    func(t time.Time, _ locale.Locale) string { return fmt.Sprint(t.Hour()) },
	},
	"hh": {
		component: Hour,
		clock12:   true,
		parse:     numberParser("hour", 2, 2, 1, 12, func(f *fields, v int) { f.hour = v }),
		format:    func(t time.Time, _ locale.Locale) string { return fmt.Sprintf("%02d", hour12(t)) },
	},
	"h": {
		component: Hour,
		clock12:   true,
		parse:     numberParser("hour", 1, 2, 1, 12, func(f *fields, v int) { f.hour = v }),
		format:    func(t time.Time, _ locale.Locale) string { return fmt.Sprint(hour12(t)) },
	},
	"mm": {
		component: Minute,
		parse:     numberParser("minute", 2, 2, 0, 59, func(f *fields, v int) { f.minute = v }),
		format:    func(t time.Time, _ locale.Locale) string { return fmt.Sprintf("%02d", t.Minute()) },
	},
	"m": {
		component: Minute,
		parse:     numberParser("minute", 1, 2, 0, 59, func(f *fields, v int) { f.minute = v }),
		format:    func(t time.Time, _ locale.Locale) string { return fmt.Sprint(t.Minute()) },
	},
	"ss": {
		component: Second,
		parse:     numberParser("second", 2, 2, 0, 59, func(f *fields, v int) { f.second = v }),
		format:    func(t time.Time, _ locale.Locale) string { return fmt.Sprintf("%02d", t.Second()) },
	},
	"s": {
		component: Second,
		parse:     numberParser("second", 1, 2, 0, 59, func(f *fields, v int) { f.second = v }),
		format:    func(t time.Time, _ locale.Locale) string { return fmt.Sprint(t.Second()) },
	},
	"a": {
		component: Meridiem,
		parse:     meridiemParser,
		format: func(t time.Time, _ locale.Locale) string {
			if t.Hour() < 12 {
				return "AM"
			}
			return "PM"
		},
	},
	"yyyy": {
		component: Year,
		parse:     numberParser("year", 4, 4, 0, 9999, func(f *fields, v int) { f.year = v }),
		format:    func(t time.Time, _ locale.Locale) string { return fmt.Sprintf("%04d", t.Year()) },
	},
	"yy": {
		component: Year,
		parse:     numberParser("year", 2, 2, 0, 99, func(f *fields, v int) { f.year = pivotYear(f.refYear, v) }),
		format:    func(t time.Time, _ locale.Locale) string { return fmt.Sprintf("%02d", t.Year()%100) },
	},
	"MMMM": {
		component: Month,
		parse:     monthNameParser,
		format:    func(t time.Time, loc locale.Locale) string { return loc.MonthName(t.Month()) },
	},
	"MMM": {
		component: Month,
		parse:     monthNameParser,
		format:    func(t time.Time, loc locale.Locale) string { return loc.MonthShort(t.Month()) },
	},
	"MM": {
		component: Month,
		parse:     numberParser("month", 2, 2, 1, 12, func(f *fields, v int) { f.month = time.Month(v) }),
		format:    func(t time.Time, _ locale.Locale) string { return fmt.Sprintf("%02d", int(t.Month())) },
	},
	"M": {
		component: Month,
		parse:     numberParser("month", 1, 2, 1, 12, func(f *fields, v int) { f.month = time.Month(v) }),
		format:    func(t time.Time, _ locale.Locale) string { return fmt.Sprint(int(t.Month())) },
	},
	"dd": {
		component: Day,
		parse:     numberParser("day", 2, 2, 1, 31, func(f *fields, v int) { f.day = v }),
		format:    func(t time.Time, _ locale.Locale) string { return fmt.Sprintf("%02d", t.Day()) },
	},
	"d": {
		component: Day,
		parse:     numberParser("day", 1, 2, 1, 31, func(f *fields, v int) { f.day = v }),
		format:    func(t time.Time, _ locale.Locale) string { return fmt.Sprint(t.Day()) },
	},
	"EEEE": {
		component: Weekday,
		parse:     weekdayParser,
		format:    func(t time.Time, loc locale.Locale) string { return loc.Weekday(t.Weekday()) },
	},
	"EEE": {
		component: Weekday,
		parse:     weekdayParser,
		format:    func(t time.Time, loc locale.Locale) string { return loc.WeekdayAbbr(t.Weekday()) },
	},
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		return 12
	}
	return h
}

// pivotYear places a two-digit year in the century closest to ref.
func pivotYear(ref, yy int) int {
	year := ref - ref%100 + yy
	switch {
	case year > ref+50:
		year -= 100
	case year <= ref-50:
		year += 100
	}
	return year
}

// readDigits consumes between minDigits and maxDigits ASCII digits.
func readDigits(text string, minDigits, maxDigits int) (int, int, bool) {
	n, value := 0, 0
	for n < len(text) && n < maxDigits {
		c := text[n]
		if c < '0' || c > '9' {
			break
		}
		value = value*10 + int(c-'0')
		n++
	}
	if n < minDigits {
		return 0, 0, false
	}
	return n, value, true
}

func numberParser(name string, minDigits, maxDigits, lo, hi int, set func(*fields, int)) parseFunc {
	return func(text string, f *fields, _ locale.Locale) (int, error) {
		n, v, ok := readDigits(text, minDigits, maxDigits)
		if !ok {
			return 0, fmt.Errorf("%w: expected %d to %d digits for %s", ErrMismatch, minDigits, maxDigits, name)
		}
		if v < lo || v > hi {
			return 0, fmt.Errorf("%w: %s %d not in [%d, %d]", ErrOutOfRange, name, v, lo, hi)
		}
		set(f, v)
		return n, nil
	}
}

func meridiemParser(text string, f *fields, _ locale.Locale) (int, error) {
	if len(text) < 2 {
		return 0, fmt.Errorf("%w: expected AM or PM", ErrMismatch)
	}
	marker := strings.ToUpper(text[:2])
	if marker != "AM" && marker != "PM" {
		return 0, fmt.Errorf("%w: %q is not AM or PM", ErrMismatch, text[:2])
	}
	f.meridiem = marker
	return 2, nil
}

func monthNameParser(text string, f *fields, loc locale.Locale) (int, error) {
	month, n, ok := loc.LookupMonth(text)
	if !ok {
		return 0, fmt.Errorf("%w: expected a month name", ErrMismatch)
	}
	f.month = month
	return n, nil
}

func weekdayParser(text string, _ *fields, loc locale.Locale) (int, error) {
	lower := strings.ToLower(text)
	longest := 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		for _, name := range []string{loc.Weekday(d), loc.WeekdayAbbr(d)} {
			n := strings.ToLower(name)
			if n != "" && strings.HasPrefix(lower, n) && len(n) > longest {
				longest = len(n)
			}
		}
	}
	if longest == 0 {
		return 0, fmt.Errorf("%w: expected a weekday name", ErrMismatch)
	}
	return longest, nil
}
