package datepicker

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/toolkit/pkg/dateutil"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func appointmentConfig() Config {
	bounds := dateutil.Modifier{}
	before, after := day(2020, time.January, 1), day(2021, time.January, 1)
	bounds.Before, bounds.After = &before, &after

	return Config{
		ID:     "appointment",
		Label:  "Appointment",
		Format: "MM-dd-yyyy",
		Today:  day(2020, time.December, 10),
		Disabled: []dateutil.Modifier{
			dateutil.DaysOfWeek(time.Sunday, time.Monday),
			bounds,
		},
	}
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()

	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	tab       = tea.KeyMsg{Type: tea.KeyTab}
	enter     = tea.KeyMsg{Type: tea.KeyEnter}
	left      = tea.KeyMsg{Type: tea.KeyLeft}
	right     = tea.KeyMsg{Type: tea.KeyRight}
	down      = tea.KeyMsg{Type: tea.KeyDown}
	pgDown    = tea.KeyMsg{Type: tea.KeyPgDown}
	end       = tea.KeyMsg{Type: tea.KeyEnd}
	esc       = tea.KeyMsg{Type: tea.KeyEsc}
	clearLine = tea.KeyMsg{Type: tea.KeyCtrlU}
)

func TestInitialValue(t *testing.T) {
	t.Parallel()

	cfg := appointmentConfig()
	cfg.Initial = "12-04-2020"
	m := New(cfg, nil)

	got, ok := m.Value()
	require.True(t, ok)
	require.Equal(t, day(2020, time.December, 4), got)
	require.Equal(t, got, m.Cursor())
	require.Nil(t, m.Errors())
	require.False(t, m.Committed())
}

func TestTypedDateMessages(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		want map[string]string
	}{
		{text: "incorrect format", want: map[string]string{dateutil.RuleFormat: "The date format is incorrect"}},
		{text: "12-06-2020", want: map[string]string{dateutil.RuleDisabledDate: "This date is not available"}},
		{text: "12-06-2019", want: map[string]string{dateutil.RuleMinDate: "Date too far in the past"}},
		{text: "12-06-2021", want: map[string]string{dateutil.RuleMaxDate: "Date too far in the future"}},
		{text: "12-04-2020", want: map[string]string{}},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			t.Parallel()

			m := press(t, New(appointmentConfig(), nil), runes(tc.text))
			require.Equal(t, tc.text, m.Text())
			require.Equal(t, tc.want, m.Errors())

			m = press(t, m, enter)
			require.Equal(t, len(tc.want) == 0, m.Committed())
		})
	}
}

func TestCustomMessages(t *testing.T) {
	t.Parallel()

	cfg := appointmentConfig()
	cfg.Messages = map[string]string{dateutil.RuleDisabledDate: "Closed"}
	m := press(t, New(cfg, nil), runes("12-07-2020"))
	require.Equal(t, map[string]string{dateutil.RuleDisabledDate: "Closed"}, m.Errors())
	require.Contains(t, m.Render(), "Closed")
}

func TestTypingMovesCursor(t *testing.T) {
	t.Parallel()

	m := press(t, New(appointmentConfig(), nil), runes("11-03-2020"))
	require.Equal(t, day(2020, time.November, 3), m.Cursor())

	m = press(t, m, clearLine, runes("bogus"))
	require.Equal(t, day(2020, time.November, 3), m.Cursor())
}

func TestCalendarSelection(t *testing.T) {
	t.Parallel()

	m := press(t, New(appointmentConfig(), nil), tab)
	require.True(t, m.CalendarFocused())
	require.Equal(t, day(2020, time.December, 10), m.Cursor())

	m = press(t, m, left, left, left, left, enter)
	require.Equal(t, day(2020, time.December, 6), m.Cursor())
	require.False(t, m.Committed())
	require.Equal(t, map[string]string{dateutil.RuleDisabledDate: "This date is not available"}, m.Errors())

	m = press(t, m, down, right)
	require.Equal(t, day(2020, time.December, 14), m.Cursor())
	m = press(t, m, right)

	next, cmd := m.Update(enter)
	m = next.(Model)
	require.NotNil(t, cmd)
	require.True(t, m.Committed())
	require.Equal(t, "12-15-2020", m.Text())
	got, ok := m.Value()
	require.True(t, ok)
	require.Equal(t, day(2020, time.December, 15), got)
	require.Contains(t, m.Render(), "picked")
}

func TestCalendarMonthKeys(t *testing.T) {
	t.Parallel()

	m := press(t, New(appointmentConfig(), nil), tab, pgDown)
	require.Equal(t, day(2021, time.January, 10), m.Cursor())
	require.Contains(t, m.Render(), "January 2021")

	m = press(t, m, end)
	require.Equal(t, day(2021, time.January, 31), m.Cursor())

	m = press(t, m, tab, runes("x"))
	require.False(t, m.CalendarFocused())
	require.Equal(t, "x", m.Text())
}

func TestQuit(t *testing.T) {
	t.Parallel()

	next, cmd := New(appointmentConfig(), nil).Update(esc)
	m := next.(Model)
	require.NotNil(t, cmd)
	require.False(t, m.Committed())
	require.Empty(t, m.View())
}

func TestProgramCommitsFromCalendar(t *testing.T) {
	tm := teatest.NewTestModel(t, New(appointmentConfig(), nil), teatest.WithInitialTermSize(80, 30))

	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("December 2020"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tab)
	tm.Send(right)
	tm.Send(enter)

	final := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second)).(Model)
	require.True(t, final.Committed())
	require.Equal(t, "12-11-2020", final.Text())
}
