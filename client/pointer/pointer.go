package pointer

type EventType int

const (
	EventDown EventType = iota
	EventUp
	EventMove
)

func (t EventType) String() string {
	switch t {
	case EventDown:
		return "down"
	case EventUp:
		return "up"
	case EventMove:
		return "move"
	}
	return "unknown"
}

// Event is a pointer event in screen coordinates.
type Event struct {
	Type EventType
	X    float64
	Y    float64
}

// Source is polled once per tick for the pointer state.
type Source interface {
	Position() (x, y int)
	Pressed() bool
}

// Tracker turns polled pointer state into press, release and move events.
type Tracker struct {
	source  Source
	started bool
	pressed bool
	x, y    int
	events  []Event
}

func NewTracker(source Source) *Tracker {
	return &Tracker{
		source: source,
	}
}

// Poll reads the source and returns the events since the previous poll.
// Press and release come before a move within one poll. The first poll only
// records the position. The returned slice is reused by the next call.
func (t *Tracker) Poll() []Event {
	t.events = t.events[:0]

	x, y := t.source.Position()
	pressed := t.source.Pressed()

	if pressed != t.pressed {
		typ := EventUp
		if pressed {
			typ = EventDown
		}
		t.events = append(t.events, Event{Type: typ, X: float64(x), Y: float64(y)})
		t.pressed = pressed
	}

	if t.started && (x != t.x || y != t.y) {
		t.events = append(t.events, Event{Type: EventMove, X: float64(x), Y: float64(y)})
	}
	t.started = true
	t.x, t.y = x, y

	return t.events
}

// Pressed reports the pressed state seen by the last poll.
func (t *Tracker) Pressed() bool {
	return t.pressed
}
