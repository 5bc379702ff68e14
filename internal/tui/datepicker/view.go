package datepicker

import (
	"github.com/alexisbeaulieu97/toolkit/internal/ui/components"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.Render() + "\n" + m.help.View(m.keys) + "\n"
}

// Render draws the picker without the key help.
func (m Model) Render() string {
	ctx := components.DefaultContext().WithTheme(m.cfg.Theme).WithWidth(m.width)

	label := m.cfg.Label
	if label == "" {
		label = m.cfg.ID
	}

	field := components.NewTextField(label).
		WithID(m.cfg.ID).
		WithValue(m.input.Value()).
		WithPlaceholder(m.input.Placeholder).
		WithErrors(m.Errors()).
		WithFocus(m.area == focusInput)

	cal := components.NewCalendar(m.cursor).
		WithLocale(m.loc).
		WithFirstWeekday(m.cfg.FirstWeekday).
		WithToday(m.cfg.Today).
		WithDisabled(m.cfg.Disabled...)
	if m.area == focusCalendar {
		cal.WithFocused(m.cursor)
	}
	if day, ok := m.Value(); ok {
		cal.WithSelected(day)
	}

	stack := components.VStack(field, cal)
	if m.committed {
		stack.Add(components.NewBadge("picked " + m.loc.FormatDay(m.selected)).WithVariant(components.BadgeSuccess))
	}
	return stack.ViewWithContext(ctx)
}
