package dateutil

import "time"

// NavKey is a calendar movement.
type NavKey int

const (
	NavLeft NavKey = iota
	NavRight
	NavUp
	NavDown
	NavPageUp
	NavPageDown
	NavHome
	NavEnd
)

// Navigate moves the focused day: a day sideways, a week vertically, a month
// with the page keys, or to the ends of the month.
func Navigate(day time.Time, key NavKey) time.Time {
	switch key {
	case NavLeft:
		return day.AddDate(0, 0, -1)
	case NavRight:
		return day.AddDate(0, 0, 1)
	case NavUp:
		return day.AddDate(0, 0, -7)
	case NavDown:
		return day.AddDate(0, 0, 7)
	case NavPageUp:
		return AddMonths(day, -1)
	case NavPageDown:
		return AddMonths(day, 1)
	case NavHome:
		return FirstOfMonth(day)
	case NavEnd:
		return LastOfMonth(day)
	default:
		return day
	}
}

// AddMonths shifts t by n months, keeping the day of month when it exists and
// using the last day otherwise (Jan 31 + 1 month is Feb 28 or 29).
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := LastOfMonth(first).Day(); d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}

// FirstOfMonth returns the first day of t's month at t's clock.
func FirstOfMonth(t time.Time) time.Time {
	return t.AddDate(0, 0, 1-t.Day())
}

// LastOfMonth returns the last day of t's month at t's clock.
func LastOfMonth(t time.Time) time.Time {
	return FirstOfMonth(t).AddDate(0, 1, -1)
}

// MonthGrid lays out the month of t as six weeks starting on first. Days of
// the neighbouring months fill the leading and trailing cells.
func MonthGrid(t time.Time, first time.Weekday) [6][7]time.Time {
	start := StartOfDay(FirstOfMonth(t))
	offset := (int(start.Weekday()) - int(first) + 7) % 7
	start = start.AddDate(0, 0, -offset)

	var grid [6][7]time.Time
	for w := range grid {
		for d := range grid[w] {
			grid[w][d] = start.AddDate(0, 0, w*7+d)
		}
	}
	return grid
}

// WeekdayOrder lists the weekdays of a grid row starting on first.
func WeekdayOrder(first time.Weekday) [7]time.Weekday {
	var order [7]time.Weekday
	for i := range order {
		order[i] = time.Weekday((int(first) + i) % 7)
	}
	return order
}
