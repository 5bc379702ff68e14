package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Direction is the axis a Stack lays its children along.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children along one axis with a gap between them.
type Stack struct {
	BaseComponent
	children  []Renderable
	direction Direction
	gap       int
}

// VStack stacks children top to bottom.
func VStack(children ...Renderable) *Stack {
	return &Stack{BaseComponent: NewBaseComponent(), children: children}
}

// HStack places children left to right.
func HStack(children ...Renderable) *Stack {
	return &Stack{BaseComponent: NewBaseComponent(), children: children, direction: DirectionHorizontal}
}

// View renders with the default theme.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders every non-nil child with ctx.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		views = append(views, render(child, ctx))
	}

	var out string
	if s.direction == DirectionHorizontal {
		sep := strings.Repeat(" ", s.gap)
		joined := make([]string, 0, 2*len(views))
		for i, v := range views {
			if i > 0 && s.gap > 0 {
				joined = append(joined, sep)
			}
			joined = append(joined, v)
		}
		out = lipgloss.JoinHorizontal(lipgloss.Top, joined...)
	} else {
		out = strings.Join(views, strings.Repeat("\n", s.gap+1))
	}
	return s.ComputeStyle(ctx.Theme).Render(out)
}

// WithGap sets the number of blank cells or lines between children.
func (s *Stack) WithGap(gap int) *Stack {
	if gap < 0 {
		gap = 0
	}
	s.gap = gap
	return s
}

// Add appends children.
func (s *Stack) Add(children ...Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Len returns the number of children.
func (s *Stack) Len() int {
	return len(s.children)
}

// WithAppliers adds theme-aware style functions.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.AddAppliers(appliers...)
	return s
}
