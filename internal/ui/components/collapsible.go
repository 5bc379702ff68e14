package components

import (
	"fmt"
	"strings"
)

// Collapsible shows the first lines of its content and a toggle revealing
// the rest.
type Collapsible struct {
	BaseComponent
	content  string
	lines    int
	expanded bool
}

// NewCollapsible crops content to lines lines. Values below 1 mean 3.
func NewCollapsible(content string, lines int) *Collapsible {
	if lines < 1 {
		lines = 3
	}
	return &Collapsible{BaseComponent: NewBaseComponent(), content: content, lines: lines}
}

// Toggle expands or crops the content.
func (c *Collapsible) Toggle() *Collapsible {
	c.expanded = !c.expanded
	return c
}

// WithExpanded sets the state.
func (c *Collapsible) WithExpanded(expanded bool) *Collapsible {
	c.expanded = expanded
	return c
}

// Expanded reports the state.
func (c *Collapsible) Expanded() bool {
	return c.expanded
}

// Croppable reports whether the content is longer than the visible lines.
func (c *Collapsible) Croppable() bool {
	return len(c.split()) > c.lines
}

func (c *Collapsible) split() []string {
	return strings.Split(strings.TrimRight(c.content, "\n"), "\n")
}

// View renders with the default theme.
func (c *Collapsible) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with the context theme.
func (c *Collapsible) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	all := c.split()
	if len(all) <= c.lines {
		return c.ComputeStyle(theme).Render(theme.Typography.Body.Render(strings.Join(all, "\n")))
	}

	shown := all
	toggle := "▴ Show less"
	if !c.expanded {
		shown = all[:c.lines]
		toggle = fmt.Sprintf("▾ Show more (%d lines)", len(all)-c.lines)
	}
	body := theme.Typography.Body.Render(strings.Join(shown, "\n"))
	return c.ComputeStyle(theme).Render(body + "\n" + theme.Typography.Muted.Render(toggle))
}
