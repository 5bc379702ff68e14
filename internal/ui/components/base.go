package components

import "github.com/charmbracelet/lipgloss"

// Renderable is anything that renders to terminal text.
type Renderable interface {
	View() string
}

// ContextualRenderable renders with an explicit theme.
type ContextualRenderable interface {
	Renderable
	ViewWithContext(ctx RenderContext) string
}

// StyleFunc applies theme data to a style.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// RenderContext carries the theme and the available width.
type RenderContext struct {
	Theme Theme
	Width int
}

// DefaultContext uses the default theme and no width limit.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a copy of the context using theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithWidth returns a copy of the context limited to width cells.
func (r RenderContext) WithWidth(width int) RenderContext {
	r.Width = width
	return r
}

// BaseComponent holds the raw style and the appliers of a component. Embed
// it to get WithAppliers-style behaviour.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// NewBaseComponent creates a base with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle runs the appliers over the raw style.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	s := b.style
	for _, fn := range b.appliers {
		s = fn(s, theme)
	}
	return s
}

// SetStyle replaces the raw style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// AddAppliers appends appliers. The slice is copied so components cloned
// from one another do not share it.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	next := make([]StyleFunc, 0, len(b.appliers)+len(appliers))
	next = append(next, b.appliers...)
	b.appliers = append(next, appliers...)
}

func render(r Renderable, ctx RenderContext) string {
	if r == nil {
		return ""
	}
	if c, ok := r.(ContextualRenderable); ok {
		return c.ViewWithContext(ctx)
	}
	return r.View()
}
