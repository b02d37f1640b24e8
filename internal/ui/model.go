package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/movement/internal/logger"
	"github.com/stigoleg/movement/internal/watch"
)

// maxHistory bounds how many applied operations are kept for display and undo.
const maxHistory = 50

// Entry is one applied operation.
type Entry struct {
	Op     watch.Op
	Before watch.Watch
	After  watch.Watch
}

// Model holds the current state of the UI: the watch being moved, the text
// input and the operations applied so far.
type Model struct {
	State        State
	Watch        watch.Watch
	Start        string
	History      []Entry
	Input        textinput.Model
	ErrorMessage string
	ShowHelp     bool

	// Meridiem is the display mode for the next start time.
	Meridiem bool

	keys    KeyMap
	help    help.Model
	log     *logger.Logger
	version string
}

// InitialModel returns a model asking for a start time.
func InitialModel(meridiem bool) Model {
	m := Model{
		State:    StateStartInput,
		Meridiem: meridiem,
		Input:    newInput(),
		keys:     DefaultKeys(),
		help:     NewHelpModel(),
		log:      logger.Nop(),
	}
	m.Input.Placeholder = "start time, e.g. 13:34 or 1:34 PM"
	return m
}

// InitialModelWithStart returns a model already running from start.
func InitialModelWithStart(start string, meridiem bool) (Model, error) {
	m := InitialModel(meridiem)
	w, err := watch.New(start, meridiem)
	if err != nil {
		return m, err
	}
	m.begin(start, w)
	return m, nil
}

func newInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 32
	ti.Width = 32
	ti.Focus()
	return ti
}

// SetLogger sets the logger used for debug output.
func (m *Model) SetLogger(l *logger.Logger) {
	if l == nil {
		l = logger.Nop()
	}
	m.log = l
}

// SetVersion sets the version shown in the title.
func (m *Model) SetVersion(v string) {
	m.version = v
}

func (m *Model) begin(start string, w watch.Watch) {
	m.State = StateRunning
	m.Watch = w
	m.Start = start
	m.History = nil
	m.ErrorMessage = ""
	m.Input.Reset()
	m.Input.Placeholder = "operation, e.g. +1:30, -4343"
	m.log.Debug().Str("start", start).Str("watch", w.String()).Msg("watch started")
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := Update(msg, m)
	return newModel, cmd
}

// View implements tea.Model
func (m Model) View() string {
	return View(m)
}
