package ui

import (
	"fmt"
	"strings"

	"github.com/stigoleg/movement/internal/watch"
)

// historyLines is how many recent operations the running view lists.
const historyLines = 8

// View renders the current state of the model to a string.
func View(m Model) string {
	var b strings.Builder

	title := "Movement"
	if m.version != "" {
		title += " " + m.version
	}
	b.WriteString(Current.Title.Render(title))
	b.WriteString("\n\n")

	switch m.State {
	case StateStartInput:
		b.WriteString(startInputView(m))
	case StateRunning:
		b.WriteString(runningView(m))
	}

	if m.ErrorMessage != "" {
		b.WriteString("\n" + Current.Error.Render(m.ErrorMessage))
	}

	if m.ShowHelp {
		b.WriteString("\n\n" + Current.Help.Render(formatsHelp()))
	}

	b.WriteString("\n\n" + Current.Help.Render(m.help.View(m.keys.ForState(m.State))))
	return b.String()
}

func startInputView(m Model) string {
	var b strings.Builder

	mode := "24-hour"
	if m.Meridiem {
		mode = "12-hour"
	}
	b.WriteString(Current.Text.Render(fmt.Sprintf("Enter a start time (%s display):", mode)))
	b.WriteString("\n")
	b.WriteString(Current.InputBox.Render(m.Input.View()))
	b.WriteString("\n")

	return b.String()
}

func runningView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Text.Render("Started at " + m.Start))
	b.WriteString("\n\n")

	clock := m.Watch.Format(m.Watch.Meridiem())
	if days := watch.DaySuffix(m.Watch.Days()); days != "" {
		clock = strings.TrimSuffix(clock, days)
		b.WriteString(Current.Clock.Render(clock) + Current.Days.Render(strings.TrimSpace(days)))
	} else {
		b.WriteString(Current.Clock.Render(clock))
	}
	b.WriteString("\n\n")

	if len(m.History) > 0 {
		from := 0
		if len(m.History) > historyLines {
			from = len(m.History) - historyLines
		}
		for _, e := range m.History[from:] {
			line := fmt.Sprintf("%-12s → %s", e.Op.String(), e.After.Format(m.Watch.Meridiem()))
			b.WriteString(Current.HistoryOp.Render(line) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(Current.Text.Render("Add or subtract:"))
	b.WriteString("\n")
	b.WriteString(Current.InputBox.Render(m.Input.View()))
	b.WriteString("\n")

	return b.String()
}

func formatsHelp() string {
	return `Operations:
  +1:30      add 1 hour 30 minutes
  -0:23:03   subtract 23 minutes 3 seconds
  4343       add 4343 seconds
  -1000      subtract 1000 seconds
  3:00       add 3 hours (a bare number is seconds)

` + watch.FormatHelp
}
