package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stigoleg/movement/internal/watch"
)

func typeText(m Model, s string) Model {
	m, _ = Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}, m)
	return m
}

func press(m Model, k tea.KeyType) (Model, tea.Cmd) {
	return Update(tea.KeyMsg{Type: k}, m)
}

func submit(m Model, s string) Model {
	m = typeText(m, s)
	m, _ = press(m, tea.KeyEnter)
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestInitialModel(t *testing.T) {
	m := InitialModel(false)
	assert.Equal(t, StateStartInput, m.State)
	assert.Empty(t, m.History)
	assert.Empty(t, m.ErrorMessage)
	assert.Contains(t, View(m), "Enter a start time (24-hour display)")

	m = InitialModel(true)
	assert.Contains(t, View(m), "12-hour display")
}

func TestStartAndApply(t *testing.T) {
	m := InitialModel(true)

	m = submit(m, "13:34")
	require.Equal(t, StateRunning, m.State, m.ErrorMessage)
	assert.Equal(t, "01:34:00 PM", m.Watch.String())
	assert.Equal(t, "13:34", m.Start)
	assert.Empty(t, m.Input.Value())

	m = submit(m, "4343")
	assert.Empty(t, m.ErrorMessage)
	assert.Equal(t, "02:46:23 PM", m.Watch.String())
	require.Len(t, m.History, 1)
	assert.Equal(t, "+4343", m.History[0].Op.String())

	view := View(m)
	assert.Contains(t, view, "Started at 13:34")
	assert.Contains(t, view, "02:46:23 PM")
	assert.Contains(t, view, "+4343")
}

func TestDayRolloverIsShown(t *testing.T) {
	m := InitialModel(false)
	m = submit(m, "23:00")
	m = submit(m, "+2:00")

	assert.Equal(t, int64(1), m.Watch.Days())
	view := View(m)
	assert.Contains(t, view, "01:00:00")
	assert.Contains(t, view, "+1 days")
}

func TestInvalidInput(t *testing.T) {
	m := InitialModel(false)

	m, _ = press(m, tea.KeyEnter)
	assert.Equal(t, StateStartInput, m.State)
	assert.Equal(t, "Please enter a start time", m.ErrorMessage)

	m = submit(m, "25:00")
	assert.Equal(t, StateStartInput, m.State)
	assert.Contains(t, m.ErrorMessage, "out of range")
	assert.Contains(t, View(m), "out of range")

	// fix the input and continue
	m.Input.Reset()
	m = submit(m, "10:00")
	require.Equal(t, StateRunning, m.State)
	assert.Empty(t, m.ErrorMessage)

	before := m.Watch
	m = submit(m, "+ab")
	assert.Contains(t, m.ErrorMessage, "malformed input")
	assert.Equal(t, before, m.Watch)
	assert.Empty(t, m.History)
}

func TestToggleMeridiem(t *testing.T) {
	m := InitialModel(false)
	m, _ = press(m, tea.KeyCtrlT)
	assert.True(t, m.Meridiem)

	m = submit(m, "18:30")
	assert.Equal(t, "06:30:00 PM", m.Watch.String())

	m, _ = press(m, tea.KeyCtrlT)
	assert.False(t, m.Meridiem)
	assert.Equal(t, "18:30:00", m.Watch.String())
	assert.Equal(t, 18, m.Watch.Hours())
}

func TestUndo(t *testing.T) {
	m := InitialModel(false)
	m = submit(m, "12:00")
	m = submit(m, "-13:00")
	m = submit(m, "+30")
	require.Len(t, m.History, 2)
	assert.Equal(t, "23:00:30 -1 days", m.Watch.String())

	m, _ = press(m, tea.KeyCtrlZ)
	assert.Equal(t, "23:00:00 -1 days", m.Watch.String())
	m, _ = press(m, tea.KeyCtrlZ)
	assert.Equal(t, "12:00:00", m.Watch.String())
	assert.Empty(t, m.History)

	m, _ = press(m, tea.KeyCtrlZ)
	assert.Equal(t, "Nothing to undo", m.ErrorMessage)
}

func TestUndoKeepsDisplayMode(t *testing.T) {
	m := InitialModel(false)
	m = submit(m, "12:00")
	m = submit(m, "+1")
	m, _ = press(m, tea.KeyCtrlT)
	m, _ = press(m, tea.KeyCtrlZ)
	assert.Equal(t, "12:00:00 PM", m.Watch.String())
}

func TestHistoryIsBounded(t *testing.T) {
	m := InitialModel(false)
	m = submit(m, "00:00")
	for i := 0; i < maxHistory+5; i++ {
		m = submit(m, "1")
	}
	assert.Len(t, m.History, maxHistory)
	assert.Equal(t, int64(maxHistory+5), m.Watch.SecondsOfDay())
}

func TestBackAndQuit(t *testing.T) {
	m := InitialModel(false)
	m = submit(m, "08:00")
	require.Equal(t, StateRunning, m.State)

	m, cmd := press(m, tea.KeyEsc)
	assert.Equal(t, StateStartInput, m.State)
	assert.False(t, isQuit(cmd))

	_, cmd = press(m, tea.KeyEsc)
	assert.True(t, isQuit(cmd))

	_, cmd = press(m, tea.KeyCtrlC)
	assert.True(t, isQuit(cmd))
}

func TestHelpToggle(t *testing.T) {
	m := InitialModel(false)
	assert.NotContains(t, View(m), "Operations:")

	m, _ = press(m, tea.KeyF1)
	assert.True(t, m.ShowHelp)
	view := View(m)
	assert.Contains(t, view, "Operations:")
	assert.Contains(t, view, "Valid formats")

	m, _ = press(m, tea.KeyF1)
	assert.False(t, m.ShowHelp)
}

func TestInitialModelWithStart(t *testing.T) {
	m, err := InitialModelWithStart("2:15:01 A.M", true)
	require.NoError(t, err)
	assert.Equal(t, StateRunning, m.State)

	m = submit(m, "3:14")
	assert.Equal(t, "05:29:01 AM", m.Watch.String())

	_, err = InitialModelWithStart("ab:cd", false)
	assert.ErrorIs(t, err, watch.ErrMalformedInput)
}

func TestVersionInTitle(t *testing.T) {
	m := InitialModel(false)
	m.SetVersion("1.0.0")
	assert.True(t, strings.Contains(View(m), "Movement 1.0.0"))
}

func TestRenderError(t *testing.T) {
	_, err := watch.New("25:00", false)
	require.Error(t, err)

	out := RenderError(err)
	assert.Contains(t, out, "out of range")
	assert.Contains(t, out, "Valid formats")

	out = RenderError(errors.New("something else"))
	assert.Contains(t, out, "something else")
	assert.NotContains(t, out, "Valid formats")
}
