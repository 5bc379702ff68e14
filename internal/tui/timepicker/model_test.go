package timepicker

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/toolkit/internal/optcache"
	"github.com/alexisbeaulieu97/toolkit/pkg/timeutil"
)

func meetingConfig() Config {
	return Config{
		ID:       "meeting",
		Label:    "Meeting",
		Format:   "HH:mm:ss",
		Min:      36000,
		Max:      57600,
		Step:     5400,
		Disabled: []timeutil.DisabledTime{{From: "13:00:00", To: "13:59:59"}},
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
	up        = tea.KeyMsg{Type: tea.KeyUp}
	down      = tea.KeyMsg{Type: tea.KeyDown}
	left      = tea.KeyMsg{Type: tea.KeyLeft}
	right     = tea.KeyMsg{Type: tea.KeyRight}
	enter     = tea.KeyMsg{Type: tea.KeyEnter}
	esc       = tea.KeyMsg{Type: tea.KeyEsc}
	clearLine = tea.KeyMsg{Type: tea.KeyCtrlU}
)

func TestNewPicksFirstEnabledOption(t *testing.T) {
	t.Parallel()

	cfg := meetingConfig()
	cfg.Min = 46800
	m := New(cfg, nil, nil)

	require.Equal(t, timeutil.Time{Hours: "14", Minutes: "30", Seconds: "00"}, m.Value())
	require.Equal(t, timeutil.FieldHours, m.Focused())
	require.Len(t, m.Options(), 3)
}

func TestSteppingSegments(t *testing.T) {
	t.Parallel()

	m := New(meetingConfig(), optcache.New(4, nil), nil)
	require.Equal(t, "10:00:00", m.Display())

	m = press(t, m, up)
	require.Equal(t, "11:00:00", m.Display())

	m = press(t, m, right, up)
	require.Equal(t, timeutil.FieldMinutes, m.Focused())
	require.Equal(t, "11:30:00", m.Display())

	m = press(t, m, right, down)
	require.Equal(t, "11:30:59", m.Display())

	m = press(t, m, right)
	require.Equal(t, timeutil.FieldHours, m.Focused())
	m = press(t, m, down, down)
	require.Equal(t, "16:30:59", m.Display())
}

func TestTypingAndCommit(t *testing.T) {
	t.Parallel()

	m := New(meetingConfig(), nil, nil)

	m = press(t, m, runes("/"))
	require.True(t, m.Typing())

	m = press(t, m, clearLine, runes("soon"), enter)
	require.True(t, m.Typing())
	require.Contains(t, m.Message(), "not a time")

	m = press(t, m, clearLine, runes("1:15 pm"), enter)
	require.True(t, m.Typing())

	m = press(t, m, clearLine, runes("01:15 pm"), enter)
	require.False(t, m.Typing())
	require.Equal(t, timeutil.Time{Hours: "13", Minutes: "15", Seconds: "00"}, m.Value())

	next, cmd := m.Update(enter)
	m = next.(Model)
	require.Nil(t, cmd)
	require.False(t, m.Committed())
	require.Equal(t, "13:15:00 is not available", m.Message())

	m = press(t, m, runes("n"))
	require.Equal(t, "14:30:00", m.Display())

	next, cmd = m.Update(enter)
	m = next.(Model)
	require.NotNil(t, cmd)
	require.True(t, m.Committed())
	require.Contains(t, m.Render(), "picked 14:30:00")
}

func TestPreviousOptionSkipsDisabled(t *testing.T) {
	t.Parallel()

	cfg := meetingConfig()
	cfg.Initial = timeutil.Time{Hours: "14", Minutes: "30"}
	m := New(cfg, nil, nil)
	require.Equal(t, "14:30:00", m.Display())

	m = press(t, m, runes("p"))
	require.Equal(t, "11:30:00", m.Display())
	m = press(t, m, runes("p"), runes("p"))
	require.Equal(t, "10:00:00", m.Display())
}

func TestMeridiemSegment(t *testing.T) {
	t.Parallel()

	m := New(Config{
		ID:      "opening",
		Format:  "hh:mm a",
		Min:     0,
		Max:     86399,
		Step:    1800,
		Initial: timeutil.Time{Hours: "09", Minutes: "30", Meridiem: "AM"},
	}, nil, nil)

	require.Equal(t, "09:30 AM", m.Display())
	m = press(t, m, left)
	require.Equal(t, timeutil.FieldAMPM, m.Focused())

	m = press(t, m, up)
	require.Equal(t, "21", m.Value().Hours)
	require.Equal(t, "09:30 PM", m.Display())
	require.Contains(t, m.segments(), "[PM]")

	m = press(t, m, down)
	require.Equal(t, "09", m.Value().Hours)
}

func TestCancelTypingThenQuit(t *testing.T) {
	t.Parallel()

	m := New(meetingConfig(), nil, nil)
	m = press(t, m, runes("i"), esc)
	require.False(t, m.Typing())
	require.Equal(t, "10:00:00", m.Display())

	next, cmd := m.Update(esc)
	m = next.(Model)
	require.NotNil(t, cmd)
	require.False(t, m.Committed())
	require.Empty(t, m.View())
}

func TestQuitWhileTyping(t *testing.T) {
	t.Parallel()

	m := New(meetingConfig(), nil, nil)
	m = press(t, m, runes("/"), clearLine, runes("q"))
	require.True(t, m.Typing())
	require.Equal(t, "q", m.input.Value())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(Model)
	require.NotNil(t, cmd)
	require.False(t, m.Committed())
	require.Empty(t, m.View())
}

func TestTypingNarrowsCandidates(t *testing.T) {
	t.Parallel()

	m := New(meetingConfig(), nil, nil)
	require.Len(t, m.Candidates(), 5)

	m = press(t, m, runes("/"), clearLine, runes("30"))
	require.Equal(t, []string{"11:30:00", "14:30:00"}, candidateLabels(m))
	out := m.Render()
	require.Contains(t, out, "14:30:00")
	require.NotContains(t, out, "16:00:00")

	// Two candidates remain, so enter cannot pick one.
	m = press(t, m, enter)
	require.True(t, m.Typing())
	require.Contains(t, m.Message(), "not a time")

	// The only match is disabled.
	m = press(t, m, clearLine, runes("13"), enter)
	require.True(t, m.Typing())
	require.Equal(t, []string{"13:00:00"}, candidateLabels(m))

	m = press(t, m, clearLine, runes("14"), enter)
	require.False(t, m.Typing())
	require.Equal(t, "14:30:00", m.Display())
	require.Len(t, m.Candidates(), 5)
}

func candidateLabels(m Model) []string {
	var labels []string
	for _, opt := range m.Candidates() {
		labels = append(labels, opt.Label)
	}
	return labels
}

func TestRenderShowsDropdown(t *testing.T) {
	t.Parallel()

	out := New(meetingConfig(), nil, nil).Render()
	for _, label := range []string{"Meeting", "10:00:00", "11:30:00", "16:00:00"} {
		require.Contains(t, out, label)
	}
}

func TestProgramCommits(t *testing.T) {
	tm := teatest.NewTestModel(t, New(meetingConfig(), nil, nil), teatest.WithInitialTermSize(80, 30))

	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("Meeting"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(up)
	tm.Send(enter)

	final := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second)).(Model)
	require.True(t, final.Committed())
	require.Equal(t, "11:00:00", timeutil.FormatISO(final.Value()))
	require.False(t, strings.Contains(final.Message(), "not available"))
}
