package dateutil

import "time"

// Modifier describes a set of days. Set fields are alternatives: a day
// matches when any of them does. Before and After alone match days strictly
// before or after the bound. Together they match the days strictly between
// them when After is earlier than Before, and the days outside otherwise.
type Modifier struct {
	Days       []time.Time
	Before     *time.Time
	After      *time.Time
	From       *time.Time
	To         *time.Time
	DaysOfWeek []time.Weekday
}

// DaysOfWeek is a modifier matching the given weekdays.
func DaysOfWeek(days ...time.Weekday) Modifier {
	return Modifier{DaysOfWeek: days}
}

// Before is a modifier matching the days before t.
func Before(t time.Time) Modifier {
	return Modifier{Before: &t}
}

// After is a modifier matching the days after t.
func After(t time.Time) Modifier {
	return Modifier{After: &t}
}

// Range is a modifier matching the days from from to to, both included.
func Range(from, to time.Time) Modifier {
	return Modifier{From: &from, To: &to}
}

// Days is a modifier matching exactly the given days.
func Days(days ...time.Time) Modifier {
	return Modifier{Days: days}
}

// IsEmpty reports whether the modifier sets nothing.
func (m Modifier) IsEmpty() bool {
	return len(m.Days) == 0 && m.Before == nil && m.After == nil &&
		m.From == nil && m.To == nil && len(m.DaysOfWeek) == 0
}

// Match reports whether day belongs to the modifier.
func (m Modifier) Match(day time.Time) bool {
	return m.matchDays(day) || m.tooEarly(day) || m.tooLate(day) || m.between(day) ||
		m.inRange(day) || m.matchWeekday(day)
}

func (m Modifier) matchDays(day time.Time) bool {
	for _, d := range m.Days {
		if SameDay(d, day) {
			return true
		}
	}
	return false
}

// bounded reports whether Before and After form a single window.
func (m Modifier) bounded() bool {
	return m.Before != nil && m.After != nil && dayNumber(*m.After) < dayNumber(*m.Before)
}

func (m Modifier) tooEarly(day time.Time) bool {
	return m.Before != nil && !m.bounded() && dayNumber(day) < dayNumber(*m.Before)
}

func (m Modifier) tooLate(day time.Time) bool {
	return m.After != nil && !m.bounded() && dayNumber(day) > dayNumber(*m.After)
}

func (m Modifier) between(day time.Time) bool {
	if !m.bounded() {
		return false
	}
	n := dayNumber(day)
	return dayNumber(*m.After) < n && n < dayNumber(*m.Before)
}

func (m Modifier) inRange(day time.Time) bool {
	if m.From == nil || m.To == nil {
		return false
	}
	n := dayNumber(day)
	return dayNumber(*m.From) <= n && n <= dayNumber(*m.To)
}

func (m Modifier) matchWeekday(day time.Time) bool {
	for _, wd := range m.DaysOfWeek {
		if day.Weekday() == wd {
			return true
		}
	}
	return false
}

// MatchDay reports whether any modifier matches day.
func MatchDay(day time.Time, mods ...Modifier) bool {
	for _, m := range mods {
		if m.Match(day) {
			return true
		}
	}
	return false
}
