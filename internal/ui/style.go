// Package ui provides the interactive terminal calculator for movement and
// the styled error output shared with the command line.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color scheme used throughout the application
type Colors struct {
	Subtle    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Special   lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
}

var defaultColors = Colors{
	Subtle:    lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"},
	Highlight: lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"},
	Special:   lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"},
	Error:     lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF4040"},
}

// Style represents a collection of styles used in the application
type Style struct {
	Title     lipgloss.Style
	Clock     lipgloss.Style
	Days      lipgloss.Style
	Text      lipgloss.Style
	HistoryOp lipgloss.Style
	InputBox  lipgloss.Style
	Help      lipgloss.Style
	Error     lipgloss.Style
	ErrorBox  lipgloss.Style
}

// DefaultStyle returns the default style configuration
func DefaultStyle() Style {
	base := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	return Style{
		Title: base.
			Bold(true).
			Foreground(defaultColors.Highlight),

		Clock: base.
			Bold(true).
			Foreground(defaultColors.Special),

		Days: base.
			Foreground(defaultColors.Highlight),

		Text: base,

		HistoryOp: base.
			Foreground(defaultColors.Subtle),

		InputBox: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(defaultColors.Highlight).
			Padding(0, 1),

		Help: base.
			Foreground(defaultColors.Subtle),

		Error: base.
			Foreground(defaultColors.Error),

		ErrorBox: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(defaultColors.Error).
			Padding(0, 1),
	}
}

// Current holds the current style configuration
var Current = DefaultStyle()

// DisableColor switches Current to uncolored output.
func DisableColor() {
	plain := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
	Current = Style{
		Title:     plain.Bold(true),
		Clock:     plain.Bold(true),
		Days:      plain,
		Text:      plain,
		HistoryOp: plain,
		InputBox:  plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
		Help:      plain,
		Error:     plain,
		ErrorBox:  plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
	}
}
