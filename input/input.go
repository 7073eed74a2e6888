// Package input defines the discrete input events the frame loop consumes.
package input

// Key is a logical game key. Front ends map physical keys onto these.
type Key uint8

const (
	KeyNone Key = iota
	KeyLeftUp
	KeyLeftDown
	KeyRightUp
	KeyRightDown
	KeyRestart
	KeyToggleAI
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeyLeftUp:
		return "left_up"
	case KeyLeftDown:
		return "left_down"
	case KeyRightUp:
		return "right_up"
	case KeyRightDown:
		return "right_down"
	case KeyRestart:
		return "restart"
	case KeyToggleAI:
		return "toggle_ai"
	case KeyQuit:
		return "quit"
	default:
		return "none"
	}
}

// EventKind classifies an Event.
type EventKind uint8

const (
	EventQuit EventKind = iota
	EventKeyDown
	EventKeyUp
)

// Event is a single input occurrence.
type Event struct {
	Kind EventKind
	Key  Key
}

// Quit returns a quit event.
func Quit() Event { return Event{Kind: EventQuit} }

// Down returns a key-down event.
func Down(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }

// Up returns a key-up event.
func Up(k Key) Event { return Event{Kind: EventKeyUp, Key: k} }

// Source produces the events that arrived since the previous Poll.
// Poll must not block when nothing is pending.
type Source interface {
	Poll() []Event
}

// Queue is a Source backed by an in-memory FIFO.
// Front ends that learn about input outside the poll (e.g. GUI buttons)
// push into a Queue; tests use it to script input.
type Queue struct {
	pending []Event
}

// Push appends events to be returned by the next Poll.
func (q *Queue) Push(events ...Event) {
	q.pending = append(q.pending, events...)
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Poll implements Source, draining everything pushed so far.
func (q *Queue) Poll() []Event {
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}

// Merge polls several sources in order and concatenates their events.
type Merge []Source

// Poll implements Source.
func (m Merge) Poll() []Event {
	var out []Event
	for _, s := range m {
		out = append(out, s.Poll()...)
	}
	return out
}
