package timepicker

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/toolkit/pkg/timeutil"
)

// CommittedMsg is emitted when a value is chosen.
type CommittedMsg struct {
	ID    string
	Value timeutil.Time
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.typing {
			return m.handleTyping(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Cancel):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.focus = (m.focus - 1 + len(m.fields)) % len(m.fields)

	case key.Matches(msg, m.keys.Right):
		m.focus = (m.focus + 1) % len(m.fields)

	case key.Matches(msg, m.keys.Up):
		m = m.step(timeutil.KeyUp)

	case key.Matches(msg, m.keys.Down):
		m = m.step(timeutil.KeyDown)

	case key.Matches(msg, m.keys.NextOption):
		m = m.jump(1)

	case key.Matches(msg, m.keys.PrevOption):
		m = m.jump(-1)

	case key.Matches(msg, m.keys.Type):
		m.typing = true
		m.message = ""
		m.input.SetValue(m.Display())
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Commit):
		return m.commit()
	}

	return m, nil
}

func (m Model) handleTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	// Rune keys such as q are text while typing.
	case key.Matches(msg, m.keys.Quit) && msg.Type != tea.KeyRunes:
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		m.typing = false
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Commit):
		text := m.input.Value()
		t, ok := timeutil.ISOFromText(text, m.cfg.Format, m.loc)
		if !ok {
			t, ok = m.soleCandidate()
		}
		if !ok {
			m.message = fmt.Sprintf("%q is not a time in format %s", text, m.cfg.Format)
			return m, nil
		}
		m.value = t
		m.typing = false
		m.input.Blur()
		m.message = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// soleCandidate returns the only enabled option left by the typed filter.
func (m Model) soleCandidate() (timeutil.Time, bool) {
	var found []timeutil.Time
	for _, opt := range m.Candidates() {
		if !timeutil.IsTimeDisabled(opt.Value.Time, m.cfg.Disabled...) {
			found = append(found, opt.Value.Time)
		}
	}
	if len(found) != 1 {
		return timeutil.Time{}, false
	}
	return found[0], true
}

// step moves the focused field through the step table.
func (m Model) step(k timeutil.Key) Model {
	f := m.Focused()
	m.message = ""

	if f == timeutil.FieldAMPM {
		current := m.value
		current.Meridiem = m.meridiem()
		next := timeutil.NextValue(k, f, current, m.options, m.steps)
		h, _ := strconv.Atoi(m.value.Hours)
		switch {
		case next == timeutil.PM && h < 12:
			h += 12
		case next == timeutil.AM && h >= 12:
			h -= 12
		}
		m.value.Hours = timeutil.Pad2(h)
		return m
	}

	m.value = m.value.With(f, timeutil.NextValue(k, f, m.value, m.options, m.steps))
	return m
}

// jump selects the nearest enabled option after (dir 1) or before (dir -1)
// the value.
func (m Model) jump(dir int) Model {
	current := timeutil.FormatISO(m.value)
	if dir > 0 {
		for _, opt := range m.options {
			t := opt.Value.Time
			if timeutil.FormatISO(t) > current && !timeutil.IsTimeDisabled(t, m.cfg.Disabled...) {
				m.value = t
				return m
			}
		}
		return m
	}
	for i := len(m.options) - 1; i >= 0; i-- {
		t := m.options[i].Value.Time
		if timeutil.FormatISO(t) < current && !timeutil.IsTimeDisabled(t, m.cfg.Disabled...) {
			m.value = t
			return m
		}
	}
	return m
}

func (m Model) commit() (tea.Model, tea.Cmd) {
	if timeutil.IsTimeDisabled(m.value, m.cfg.Disabled...) {
		m.message = fmt.Sprintf("%s is not available", m.Display())
		m.log.With("value", timeutil.FormatISO(m.value)).Debug("disabled time rejected")
		return m, nil
	}
	m.committed = true
	m.log.With("value", timeutil.FormatISO(m.value)).Info("time picked")
	value := m.value
	id := m.cfg.ID
	return m, tea.Sequence(
		func() tea.Msg { return CommittedMsg{ID: id, Value: value} },
		tea.Quit,
	)
}
