package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/movement/internal/watch"
)

// Update handles messages and updates the model accordingly.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.ToggleHelp):
			m.ShowHelp = !m.ShowHelp
			m.help.ShowAll = m.ShowHelp
			return m, nil
		case key.Matches(msg, m.keys.ToggleMeridiem):
			m.Meridiem = !m.Meridiem
			if m.State == StateRunning {
				m.Watch.ToggleMeridiem()
			}
			return m, nil
		}

		switch m.State {
		case StateStartInput:
			if key.Matches(msg, m.keys.Submit) {
				return submitStart(m), nil
			}
			if key.Matches(msg, m.keys.Back) {
				return m, tea.Quit
			}
		case StateRunning:
			switch {
			case key.Matches(msg, m.keys.Submit):
				return submitOp(m), nil
			case key.Matches(msg, m.keys.Undo):
				return undo(m), nil
			case key.Matches(msg, m.keys.Back):
				m.State = StateStartInput
				m.ErrorMessage = ""
				m.Input.Reset()
				m.Input.Placeholder = "start time, e.g. 13:34 or 1:34 PM"
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func submitStart(m Model) Model {
	start := strings.TrimSpace(m.Input.Value())
	if start == "" {
		m.ErrorMessage = "Please enter a start time"
		return m
	}
	w, err := watch.New(start, m.Meridiem)
	if err != nil {
		m.log.Debug().Err(err).Str("input", start).Msg("start time rejected")
		m.ErrorMessage = err.Error()
		return m
	}
	m.begin(start, w)
	return m
}

func submitOp(m Model) Model {
	input := strings.TrimSpace(m.Input.Value())
	if input == "" {
		m.ErrorMessage = "Please enter an operation"
		return m
	}
	op, err := watch.ParseOp(input)
	if err != nil {
		m.log.Debug().Err(err).Str("input", input).Msg("operation rejected")
		m.ErrorMessage = err.Error()
		return m
	}

	before := m.Watch
	if err := op.Apply(&m.Watch); err != nil {
		m.ErrorMessage = err.Error()
		return m
	}
	m.History = append(m.History, Entry{Op: op, Before: before, After: m.Watch})
	if len(m.History) > maxHistory {
		m.History = m.History[len(m.History)-maxHistory:]
	}
	m.ErrorMessage = ""
	m.Input.Reset()
	m.log.Debug().
		Str("op", op.String()).
		Str("watch", m.Watch.String()).
		Int64("days", m.Watch.Days()).
		Msg("operation applied")
	return m
}

func undo(m Model) Model {
	if len(m.History) == 0 {
		m.ErrorMessage = "Nothing to undo"
		return m
	}
	last := m.History[len(m.History)-1]
	m.History = m.History[:len(m.History)-1]
	meridiem := m.Watch.Meridiem()
	m.Watch = last.Before
	m.Watch.SetMeridiem(meridiem)
	m.ErrorMessage = ""
	m.log.Debug().Str("op", last.Op.String()).Msg("operation undone")
	return m
}
