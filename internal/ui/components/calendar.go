package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/toolkit/pkg/dateutil"
	"github.com/alexisbeaulieu97/toolkit/pkg/locale"
)

// Calendar renders one month as a grid of days.
type Calendar struct {
	BaseComponent
	month    time.Time
	first    time.Weekday
	loc      locale.Locale
	today    time.Time
	selected time.Time
	focused  time.Time
	disabled []dateutil.Modifier
}

// NewCalendar shows the month of month.
func NewCalendar(month time.Time) *Calendar {
	return &Calendar{BaseComponent: NewBaseComponent(), month: month, loc: locale.Default()}
}

// WithFirstWeekday sets the weekday of the first column.
func (c *Calendar) WithFirstWeekday(first time.Weekday) *Calendar {
	c.first = first
	return c
}

// WithLocale sets the month and weekday names.
func (c *Calendar) WithLocale(loc locale.Locale) *Calendar {
	c.loc = loc
	return c
}

// WithToday marks today.
func (c *Calendar) WithToday(today time.Time) *Calendar {
	c.today = today
	return c
}

// WithSelected marks the chosen day.
func (c *Calendar) WithSelected(day time.Time) *Calendar {
	c.selected = day
	return c
}

// WithFocused marks the keyboard cursor.
func (c *Calendar) WithFocused(day time.Time) *Calendar {
	c.focused = day
	return c
}

// WithDisabled sets the modifiers of days that cannot be picked.
func (c *Calendar) WithDisabled(mods ...dateutil.Modifier) *Calendar {
	c.disabled = mods
	return c
}

// WithAppliers adds theme-aware style functions.
func (c *Calendar) WithAppliers(appliers ...StyleFunc) *Calendar {
	c.AddAppliers(appliers...)
	return c
}

// Caption is the localized month and year, e.g. "December 2020".
func (c *Calendar) Caption() string {
	return fmt.Sprintf("%s %d", c.loc.MonthName(c.month.Month()), c.month.Year())
}

// Disabled reports whether day is blocked by a modifier.
func (c *Calendar) Disabled(day time.Time) bool {
	return dateutil.MatchDay(day, c.disabled...)
}

// View renders with the default theme.
func (c *Calendar) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with the context theme.
func (c *Calendar) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	const cell = 4

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(7*cell, lipgloss.Center, theme.Typography.Title.Render(c.Caption())))
	b.WriteByte('\n')

	for _, wd := range dateutil.WeekdayOrder(c.first) {
		name := []rune(c.loc.WeekdayShort(wd))
		if len(name) > 2 {
			name = name[:2]
		}
		b.WriteString(theme.Typography.Muted.Render(fmt.Sprintf("%*s ", cell-1, string(name))))
	}

	for _, week := range dateutil.MonthGrid(c.month, c.first) {
		b.WriteByte('\n')
		for _, day := range week {
			b.WriteString(c.dayStyle(theme, day).Render(fmt.Sprintf("%*d", cell-1, day.Day())))
			b.WriteByte(c.marker(day))
		}
	}
	return c.ComputeStyle(theme).Render(b.String())
}

func (c *Calendar) dayStyle(theme Theme, day time.Time) lipgloss.Style {
	switch {
	case day.Month() != c.month.Month():
		return theme.Typography.Muted
	case c.Disabled(day):
		return theme.Option.Disabled
	case !c.selected.IsZero() && dateutil.SameDay(day, c.selected):
		return theme.Option.Selected
	case !c.focused.IsZero() && dateutil.SameDay(day, c.focused):
		return theme.Option.Focused
	case !c.today.IsZero() && dateutil.SameDay(day, c.today):
		return theme.Option.Today
	default:
		return theme.Option.Normal
	}
}

// marker keeps the cursor visible when colours are stripped.
func (c *Calendar) marker(day time.Time) byte {
	if !c.focused.IsZero() && dateutil.SameDay(day, c.focused) {
		return '<'
	}
	return ' '
}
