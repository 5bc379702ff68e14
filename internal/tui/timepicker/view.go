package timepicker

import (
	"strings"

	"github.com/alexisbeaulieu97/toolkit/internal/ui/components"
	"github.com/alexisbeaulieu97/toolkit/pkg/timeutil"
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
	theme := m.cfg.Theme
	ctx := components.DefaultContext().WithTheme(theme).WithWidth(m.width)

	label := m.cfg.Label
	if label == "" {
		label = m.cfg.ID
	}

	var input components.Renderable
	if m.typing {
		input = components.NewText(theme.Input.Focus.Render(m.input.View()))
	} else {
		input = components.NewText(theme.Input.Default.Render(m.segments()))
	}

	dropdown := components.NewDropdown(m.options).
		WithSelected(m.value).
		WithDisabled(m.cfg.Disabled...).
		WithHeight(6)
	if m.typing {
		dropdown.WithFilter(m.input.Value())
	}

	stack := components.VStack(
		components.TitleText(label),
		components.MutedText(m.cfg.Format+" · "+m.Display()),
		input,
		dropdown,
	)
	if m.message != "" {
		stack.Add(components.NewText(m.message).WithAppliers(components.Typography(components.TypographyError)))
	}
	if m.committed {
		stack.Add(components.NewBadge("picked " + timeutil.FormatISO(m.value)).WithVariant(components.BadgeSuccess))
	}
	return stack.ViewWithContext(ctx)
}

func (m Model) segments() string {
	theme := m.cfg.Theme
	parts := make([]string, 0, len(m.fields))
	for i, f := range m.fields {
		text := m.segment(f)
		if i == m.focus {
			text = theme.Option.Selected.Render("[" + text + "]")
		} else {
			text = " " + text + " "
		}
		parts = append(parts, text)
	}

	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			if m.fields[i] == timeutil.FieldAMPM {
				b.WriteString(" ")
			} else {
				b.WriteString(":")
			}
		}
		b.WriteString(p)
	}
	return b.String()
}
