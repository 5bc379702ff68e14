package components

// CheckState is the state of a Checkbox. Mixed marks a box whose children
// are partly checked.
type CheckState int

const (
	Unchecked CheckState = iota
	Checked
	Mixed
)

// String returns the aria-checked value: "false", "true" or "mixed".
func (s CheckState) String() string {
	switch s {
	case Checked:
		return "true"
	case Mixed:
		return "mixed"
	default:
		return "false"
	}
}

// StateOf summarises how many of total items are checked.
func StateOf(checked, total int) CheckState {
	switch {
	case total > 0 && checked >= total:
		return Checked
	case checked > 0:
		return Mixed
	default:
		return Unchecked
	}
}

// Checkbox is a labelled toggle.
type Checkbox struct {
	BaseComponent
	label    string
	state    CheckState
	disabled bool
	focused  bool
}

// NewCheckbox creates an unchecked box.
func NewCheckbox(label string) *Checkbox {
	return &Checkbox{BaseComponent: NewBaseComponent(), label: label}
}

// WithChecked sets the state to Checked or Unchecked.
func (c *Checkbox) WithChecked(checked bool) *Checkbox {
	c.state = Unchecked
	if checked {
		c.state = Checked
	}
	return c
}

// WithState sets the state.
func (c *Checkbox) WithState(state CheckState) *Checkbox {
	c.state = state
	return c
}

// WithDisabled makes the box read-only.
func (c *Checkbox) WithDisabled(disabled bool) *Checkbox {
	c.disabled = disabled
	return c
}

// WithFocus highlights the box.
func (c *Checkbox) WithFocus(focused bool) *Checkbox {
	c.focused = focused
	return c
}

// Toggle checks an unchecked or mixed box and unchecks a checked one.
// Disabled boxes keep their state.
func (c *Checkbox) Toggle() *Checkbox {
	if c.disabled {
		return c
	}
	if c.state == Checked {
		c.state = Unchecked
	} else {
		c.state = Checked
	}
	return c
}

// Checked reports whether the box is fully checked.
func (c *Checkbox) Checked() bool {
	return c.state == Checked
}

// State returns the state.
func (c *Checkbox) State() CheckState {
	return c.state
}

// View renders with the default theme.
func (c *Checkbox) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with the context theme.
func (c *Checkbox) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	style := theme.Option.Normal
	switch {
	case c.disabled:
		style = theme.Option.Disabled
	case c.focused:
		style = theme.Option.Focused
	}
	return c.ComputeStyle(theme).Render(style.Render(checkMark(c.state) + " " + c.label))
}

func checkMark(s CheckState) string {
	switch s {
	case Checked:
		return "[x]"
	case Mixed:
		return "[-]"
	default:
		return "[ ]"
	}
}
