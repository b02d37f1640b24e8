package ui

type State int

const (
	StateStartInput State = iota
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateStartInput:
		return "StartInput"
	case StateRunning:
		return "Running"
	default:
		return "Unknown"
	}
}
