package input

// Event is a window or input event that matters to the loop.
type Event int

const (
	EventNone Event = iota
	EventQuit       // Window close, or the terminal's quit keys
)

func (e Event) String() string {
	switch e {
	case EventQuit:
		return "quit"
	default:
		return "none"
	}
}

// Directions is the held state of the four arrow keys for one frame.
type Directions struct {
	Left, Right, Up, Down bool
}

func (d Directions) Any() bool {
	return d.Left || d.Right || d.Up || d.Down
}

// Source is what the loop reads once per frame: first the pending events,
// then the current key state.
type Source interface {
	Events() []Event
	Directions() Directions
}

// Frame is a Source built up front, used by backends that collect input
// before the step and by tests.
type Frame struct {
	Pending []Event
	Held    Directions
}

func (f Frame) Events() []Event        { return f.Pending }
func (f Frame) Directions() Directions { return f.Held }
