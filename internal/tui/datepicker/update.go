package datepicker

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/toolkit/pkg/dateutil"
)

// CommittedMsg is emitted when a day is chosen.
type CommittedMsg struct {
	ID   string
	Date time.Time
	Text string
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			return m.toggle()
		}
		if m.area == focusCalendar {
			return m.handleCalendar(msg)
		}
		return m.handleInput(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) toggle() (tea.Model, tea.Cmd) {
	if m.area == focusInput {
		m.area = focusCalendar
		m.input.Blur()
		return m, nil
	}
	m.area = focusInput
	return m, m.input.Focus()
}

func (m Model) handleInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Select) && msg.Type == tea.KeyEnter {
		m.touched = true
		m.validate()
		if !m.result.Valid() {
			return m, nil
		}
		return m.commit(m.result.Date)
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.touched = true
		m.validate()
		if m.result.OK {
			m.cursor = m.result.Date
		}
	}
	return m, cmd
}

func (m Model) handleCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	moves := []struct {
		binding key.Binding
		nav     dateutil.NavKey
	}{
		{m.keys.Left, dateutil.NavLeft},
		{m.keys.Right, dateutil.NavRight},
		{m.keys.Up, dateutil.NavUp},
		{m.keys.Down, dateutil.NavDown},
		{m.keys.PrevMonth, dateutil.NavPageUp},
		{m.keys.NextMonth, dateutil.NavPageDown},
		{m.keys.MonthHome, dateutil.NavHome},
		{m.keys.MonthEnd, dateutil.NavEnd},
	}
	for _, mv := range moves {
		if key.Matches(msg, mv.binding) {
			m.cursor = dateutil.Navigate(m.cursor, mv.nav)
			return m, nil
		}
	}

	if key.Matches(msg, m.keys.Select) {
		text, ok := dateutil.Format(m.cursor, m.cfg.Format, m.loc)
		if !ok {
			return m, nil
		}
		m.input.SetValue(text)
		m.touched = true
		m.validate()
		if !m.result.Valid() {
			m.log.With("day", text).Debug("disabled day rejected")
			return m, nil
		}
		return m.commit(m.result.Date)
	}
	return m, nil
}

func (m Model) commit(day time.Time) (tea.Model, tea.Cmd) {
	m.selected = day
	m.cursor = day
	m.committed = true
	text := m.input.Value()
	m.log.With("day", text).Info("date picked")

	id := m.cfg.ID
	return m, tea.Sequence(
		func() tea.Msg { return CommittedMsg{ID: id, Date: day, Text: text} },
		tea.Quit,
	)
}
