package terminal

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/pong/input"
)

// numKeys sizes per-key tables.
const numKeys = int(input.KeyQuit) + 1

// partner is the opposite movement key on the same paddle.
var partner = [numKeys]input.Key{
	input.KeyLeftUp:    input.KeyLeftDown,
	input.KeyLeftDown:  input.KeyLeftUp,
	input.KeyRightUp:   input.KeyRightDown,
	input.KeyRightDown: input.KeyRightUp,
}

// Input is an input.Source over tcell key events.
//
// Terminals report key presses and auto-repeats but never releases, so a
// key counts as held from its first press until no repeat has arrived for
// the release timeout, at which point a key-up is synthesized. Pressing a
// movement key releases the opposite key on the same paddle immediately,
// since terminals only repeat the most recent key.
type Input struct {
	events  chan tcell.Event
	done    chan struct{}
	stop    sync.Once
	timeout time.Duration
	now     func() time.Time

	held     [numKeys]bool
	lastSeen [numKeys]time.Time
}

// NewInput starts forwarding screen events. The forwarding goroutine only
// moves events into a channel; it exits once the screen is finalized or
// Close is called, whichever comes first.
func NewInput(screen tcell.Screen, releaseTimeout time.Duration) *Input {
	in := newInput(releaseTimeout, time.Now)
	go in.forward(screen.PollEvent)
	return in
}

func newInput(releaseTimeout time.Duration, now func() time.Time) *Input {
	return &Input{
		events:  make(chan tcell.Event, 100),
		done:    make(chan struct{}),
		timeout: releaseTimeout,
		now:     now,
	}
}

// forward moves events from poll into the channel until poll returns nil
// or the input is closed. A full channel never blocks it past Close.
func (in *Input) forward(poll func() tcell.Event) {
	for {
		ev := poll()
		if ev == nil {
			close(in.events)
			return
		}
		select {
		case in.events <- ev:
		case <-in.done:
			return
		}
	}
}

// Close stops the forwarding goroutine. Safe to call more than once.
func (in *Input) Close() error {
	in.stop.Do(func() { close(in.done) })
	return nil
}

// Poll implements input.Source. It drains every pending event without
// blocking, then synthesizes releases for keys that stopped repeating.
func (in *Input) Poll() []input.Event {
	var out []input.Event
	now := in.now()

drain:
	for {
		select {
		case ev, ok := <-in.events:
			if !ok {
				out = append(out, input.Quit())
				in.events = nil
				break drain
			}
			out = in.translate(ev, now, out)
		default:
			break drain
		}
	}

	for k := range in.held {
		if in.held[k] && now.Sub(in.lastSeen[k]) >= in.timeout {
			in.held[k] = false
			out = append(out, input.Up(input.Key(k)))
		}
	}
	return out
}

// translate appends the game events for one tcell event.
func (in *Input) translate(ev tcell.Event, now time.Time, out []input.Event) []input.Event {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return out
	}

	k := mapKey(kev)
	switch k {
	case input.KeyNone:
		return out
	case input.KeyQuit:
		return append(out, input.Down(input.KeyQuit))
	}

	if p := partner[k]; p != input.KeyNone && in.held[p] {
		in.held[p] = false
		out = append(out, input.Up(p))
	}

	in.lastSeen[k] = now
	if !in.held[k] {
		in.held[k] = true
		out = append(out, input.Down(k))
	}
	return out
}

// mapKey maps a terminal key onto a game key.
func mapKey(ev *tcell.EventKey) input.Key {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.KeyQuit
	case tcell.KeyUp:
		return input.KeyRightUp
	case tcell.KeyDown:
		return input.KeyRightDown
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return input.KeyLeftUp
		case 's', 'S':
			return input.KeyLeftDown
		case 'r', 'R':
			return input.KeyRestart
		case 'a', 'A':
			return input.KeyToggleAI
		}
	}
	return input.KeyNone
}
