// Package event defines the typed input events that travel down the
// drawable tree and the propagation rule that decides, per child,
// whether and in what form an event continues.
package event

import "github.com/ramp-stack/prism/pkg/layout"

// Event is input traveling down the drawable tree.
type Event interface {
	// Pass decides how the event propagates to the children placed
	// at the given areas. The result has one entry per child, in
	// child order: the (possibly transformed) event to deliver, or
	// nil to stop propagation into that child.
	Pass(children []layout.Area) []Event
}

// Position is a point in a drawable's local coordinate space.
type Position struct {
	X, Y float32
}

// MouseState is the pointer change a MouseEvent reports.
type MouseState uint8

const (
	MousePressed MouseState = iota
	MouseMoved
	MouseReleased
	MouseScrolled
)

// MouseEvent is delivered whenever the pointer state changes.
//
// Position is set only on the drawable the pointer is over; every
// other drawable observes the same state change with a nil position.
type MouseEvent struct {
	Position *Position
	State    MouseState

	// Scroll deltas, meaningful when State is MouseScrolled.
	ScrollX, ScrollY float32
}

// Pass hit-tests the children in reverse order, so the topmost child
// in paint order is tested first. At most one child receives the
// position, translated into its local coordinate space; the rest
// receive the event with no position.
func (e MouseEvent) Pass(children []layout.Area) []Event {
	out := make([]Event, len(children))
	claimed := false
	for i := len(children) - 1; i >= 0; i-- {
		child := e
		child.Position = nil
		if e.Position != nil && !claimed {
			a := children[i]
			p := *e.Position
			if p.X > a.Offset.X && p.X < a.Offset.X+a.Size.W &&
				p.Y > a.Offset.Y && p.Y < a.Offset.Y+a.Size.H {
				claimed = true
				child.Position = &Position{p.X - a.Offset.X, p.Y - a.Offset.Y}
			}
		}
		out[i] = child
	}
	return out
}

// KeyboardState is the key change a KeyboardEvent reports.
type KeyboardState uint8

const (
	KeyPressed KeyboardState = iota
	KeyRepeated
	KeyReleased
)

// NamedKey identifies a non-character key.
type NamedKey uint8

const (
	KeyEnter NamedKey = iota
	KeyTab
	KeySpace
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyDelete
)

// Key is either a named control key or a character-producing key.
// A non-empty Char takes precedence over Name.
type Key struct {
	Name NamedKey
	Char string
}

// Named returns a control-key Key.
func Named(n NamedKey) Key { return Key{Name: n} }

// Character returns a character-key Key.
func Character(c string) Key { return Key{Char: c} }

// KeyboardEvent is delivered whenever a key's state changes. Keyboard
// input is broadcast: every child receives it unchanged.
type KeyboardEvent struct {
	Key   Key
	State KeyboardState
}

// Pass broadcasts the event to every child.
func (e KeyboardEvent) Pass(children []layout.Area) []Event {
	return broadcast(e, len(children))
}

// TickEvent is emitted once per frame for continuous or repeated
// actions. Broadcast to every child.
type TickEvent struct{}

// Pass broadcasts the tick to every child.
func (e TickEvent) Pass(children []layout.Area) []Event {
	return broadcast(e, len(children))
}

func broadcast(e Event, n int) []Event {
	out := make([]Event, n)
	for i := range out {
		out[i] = e
	}
	return out
}
