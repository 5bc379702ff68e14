package timeutil

import (
	"strconv"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/toolkit/pkg/locale"
	"github.com/alexisbeaulieu97/toolkit/pkg/timefmt"
)

// DefaultFormat is the canonical 24-hour pattern.
const DefaultFormat = "HH:mm:ss"

var now = time.Now

// FormatTime renders t with format in the default locale. See FormatTimeIn.
func FormatTime(t Time, format string) (string, bool) {
	return FormatTimeIn(t, format, locale.Default())
}

// FormatTimeIn places t on today's date and renders it with format, or with
// the locale's medium time when format is empty. Hours and minutes must be
// numeric; empty seconds count as zero. Values past their range roll over
// the way calendar arithmetic does (minutes "75" is 1h15).
func FormatTimeIn(t Time, format string, loc locale.Locale) (string, bool) {
	var layout *timefmt.Layout
	if format != "" {
		l, err := timefmt.Compile(format)
		if err != nil {
			return "", false
		}
		layout = l
	}
	return formatWith(t, layout, loc)
}

func formatWith(t Time, layout *timefmt.Layout, loc locale.Locale) (string, bool) {
	instant, ok := instantToday(t)
	if !ok {
		return "", false
	}
	if layout == nil {
		return loc.FormatTime(instant), true
	}
	return layout.Format(instant, loc), true
}

func instantToday(t Time) (time.Time, bool) {
	h, err := strconv.Atoi(t.Hours)
	if err != nil {
		return time.Time{}, false
	}
	m, err := strconv.Atoi(t.Minutes)
	if err != nil {
		return time.Time{}, false
	}
	s := 0
	if t.Seconds != "" {
		if s, err = strconv.Atoi(t.Seconds); err != nil {
			return time.Time{}, false
		}
	}
	return today().Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second), true
}

// today is midnight of the current local date, expressed in UTC so that clock
// arithmetic never meets a daylight saving gap.
func today() time.Time {
	y, mo, d := now().Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

// ISOFromLocal parses text with format against today's date and returns the
// canonical 24-hour time without a meridiem. Patterns mixing HH with a are
// rejected.
func ISOFromLocal(text, format string) (Time, bool) {
	return ISOFromLocalIn(text, format, locale.Default())
}

// ISOFromLocalIn is ISOFromLocal with an explicit locale for month and
// weekday names.
func ISOFromLocalIn(text, format string, loc locale.Locale) (Time, bool) {
	if text == "" || format == "" {
		return Time{}, false
	}
	instant, err := timefmt.Parse(format, text, today(), loc)
	if err != nil {
		return Time{}, false
	}
	return Time{
		Hours:   Pad2(instant.Hour()),
		Minutes: Pad2(instant.Minute()),
		Seconds: Pad2(instant.Second()),
	}, true
}

// ISOFromText reads text in format, then in any shape ParseTime accepts,
// and returns the canonical 24-hour time.
func ISOFromText(text, format string, loc locale.Locale) (Time, bool) {
	if t, ok := ISOFromLocalIn(text, format, loc); ok {
		return t, true
	}
	t, ok := ParseTime(text)
	if !ok {
		return Time{}, false
	}
	return ISOFromLocal(t.String(), shapeFormat(t))
}

func shapeFormat(t Time) string {
	switch {
	case t.Meridiem != "" && t.Seconds != "":
		return shape12SecondsMeridiem.format
	case t.Meridiem != "":
		return shape12Meridiem.format
	case t.Seconds != "":
		return shape24Seconds.format
	default:
		return shape24.format
	}
}

// ISOToSeconds converts "HH:MM:SS" to the seconds elapsed since midnight.
func ISOToSeconds(iso string) (int, bool) {
	parts := strings.Split(iso, ":")
	if len(parts) != 3 {
		return 0, false
	}
	total := 0
	for i, weight := range []int{3600, 60, 1} {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return 0, false
		}
		total += n * weight
	}
	return total, true
}

// FormatISO renders t as "HH:MM:SS", padding each field. Missing seconds
// render as "00".
func FormatISO(t Time) string {
	return padString(t.Hours) + ":" + padString(t.Minutes) + ":" + padString(t.Seconds)
}

// TimeFromISO splits "HH:MM[:SS]" into its fields without checking ranges.
func TimeFromISO(iso string) (Time, bool) {
	if iso == "" {
		return Time{}, false
	}
	parts := strings.Split(iso, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Time{}, false
	}
	t := Time{Hours: parts[0], Minutes: parts[1]}
	if len(parts) == 3 {
		t.Seconds = parts[2]
	}
	return t, true
}

// TimeFromSeconds decomposes total seconds. Hours are not wrapped at 24.
func TimeFromSeconds(total int) Time {
	hours := total / 3600
	minutes := total/60 - hours*60
	return Time{
		Hours:   Pad2(hours),
		Minutes: Pad2(minutes),
		Seconds: Pad2(total % 60),
	}
}
