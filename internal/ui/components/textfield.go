package components

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// TextField renders a labelled input with its validation messages.
type TextField struct {
	BaseComponent
	id          string
	label       string
	value       string
	placeholder string
	errors      map[string]string
	focused     bool
	disabled    bool
	width       int
}

// NewTextField creates a field with a generated id.
func NewTextField(label string) *TextField {
	return &TextField{
		BaseComponent: NewBaseComponent(),
		id:            uuid.NewString(),
		label:         label,
		width:         24,
	}
}

// ID identifies the field, e.g. to pair it with a label.
func (f *TextField) ID() string {
	return f.id
}

// WithID replaces the generated id.
func (f *TextField) WithID(id string) *TextField {
	f.id = id
	return f
}

// WithValue sets the text.
func (f *TextField) WithValue(value string) *TextField {
	f.value = value
	return f
}

// WithPlaceholder sets the text shown while the value is empty.
func (f *TextField) WithPlaceholder(placeholder string) *TextField {
	f.placeholder = placeholder
	return f
}

// WithErrors sets the validation messages keyed by rule.
func (f *TextField) WithErrors(errors map[string]string) *TextField {
	f.errors = errors
	return f
}

// WithFocus marks the field as focused.
func (f *TextField) WithFocus(focused bool) *TextField {
	f.focused = focused
	return f
}

// WithDisabled marks the field as read-only.
func (f *TextField) WithDisabled(disabled bool) *TextField {
	f.disabled = disabled
	return f
}

// WithWidth sets the inner width of the input frame.
func (f *TextField) WithWidth(width int) *TextField {
	if width > 0 {
		f.width = width
	}
	return f
}

// WithAppliers adds theme-aware style functions.
func (f *TextField) WithAppliers(appliers ...StyleFunc) *TextField {
	f.AddAppliers(appliers...)
	return f
}

// Invalid reports whether the field carries messages.
func (f *TextField) Invalid() bool {
	return len(f.errors) > 0
}

// Messages returns the messages ordered by rule name.
func (f *TextField) Messages() []string {
	rules := make([]string, 0, len(f.errors))
	for rule := range f.errors {
		rules = append(rules, rule)
	}
	slices.Sort(rules)

	out := make([]string, 0, len(rules))
	for _, rule := range rules {
		out = append(out, f.errors[rule])
	}
	return out
}

// View renders with the default theme.
func (f *TextField) View() string {
	return f.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with the context theme.
func (f *TextField) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	content := theme.Typography.Body.Render(f.value)
	if f.value == "" {
		content = theme.Typography.Muted.Render(f.placeholder)
	}

	frame := f.frameStyle(theme).Width(f.width)
	lines := []string{}
	if f.label != "" {
		lines = append(lines, theme.Typography.Label.Render(f.label))
	}
	lines = append(lines, frame.Render(content))
	for _, msg := range f.Messages() {
		lines = append(lines, theme.Typography.Error.Render("✗ "+msg))
	}
	return f.ComputeStyle(theme).Render(strings.Join(lines, "\n"))
}

func (f *TextField) frameStyle(theme Theme) lipgloss.Style {
	switch {
	case f.disabled:
		return theme.Input.Disabled
	case f.Invalid():
		return theme.Input.Invalid
	case f.focused:
		return theme.Input.Focus
	default:
		return theme.Input.Default
	}
}
