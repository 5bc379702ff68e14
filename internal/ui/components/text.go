package components

import "github.com/charmbracelet/lipgloss"

// Text renders styled content.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a text component.
func NewText(content string) *Text {
	return &Text{BaseComponent: NewBaseComponent(), content: content}
}

// TitleText uses the title typography.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyTitle))
}

// MutedText uses the muted typography.
func MutedText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyMuted))
}

// CodeText uses the code typography.
func CodeText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyCode))
}

// View renders with the default theme.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with the context theme.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	return t.ComputeStyle(ctx.Theme).Render(t.content)
}

// Content returns the text.
func (t *Text) Content() string {
	return t.content
}

// WithStyle sets the raw style.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers adds theme-aware style functions.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}
