package event

import (
	"testing"

	"github.com/ramp-stack/prism/pkg/layout"
)

func area(x, y, w, h float32) layout.Area {
	return layout.Area{Offset: layout.Offset{X: x, Y: y}, Size: layout.Size{W: w, H: h}}
}

func positioned(events []Event) []int {
	var hits []int
	for i, e := range events {
		if me, ok := e.(MouseEvent); ok && me.Position != nil {
			hits = append(hits, i)
		}
	}
	return hits
}

func TestMousePassHitsAtMostOne(t *testing.T) {
	children := []layout.Area{
		area(0, 0, 100, 100),
		area(0, 0, 100, 100), // overlaps the first entirely
		area(50, 50, 100, 100),
	}
	e := MouseEvent{Position: &Position{60, 60}, State: MousePressed}
	out := e.Pass(children)
	if len(out) != 3 {
		t.Fatalf("got %d results for 3 children", len(out))
	}
	hits := positioned(out)
	if len(hits) != 1 {
		t.Fatalf("positioned deliveries = %v, want exactly one", hits)
	}
}

func TestMousePassTopmostWins(t *testing.T) {
	// Children later in the list paint on top and must claim the
	// hit first.
	children := []layout.Area{
		area(0, 0, 100, 100),
		area(0, 0, 100, 100),
	}
	e := MouseEvent{Position: &Position{10, 10}, State: MouseMoved}
	out := e.Pass(children)
	hits := positioned(out)
	if len(hits) != 1 || hits[0] != 1 {
		t.Errorf("hit children %v, want only the last (topmost)", hits)
	}
}

func TestMousePassTranslatesCoordinates(t *testing.T) {
	children := []layout.Area{area(30, 40, 50, 50)}
	e := MouseEvent{Position: &Position{45, 70}, State: MousePressed}
	out := e.Pass(children)
	me := out[0].(MouseEvent)
	if me.Position == nil {
		t.Fatal("child containing the point received no position")
	}
	if me.Position.X != 15 || me.Position.Y != 30 {
		t.Errorf("local position = (%v, %v), want (15, 30)", me.Position.X, me.Position.Y)
	}
}

func TestMousePassMissedChildrenKeepState(t *testing.T) {
	children := []layout.Area{
		area(0, 0, 10, 10),
		area(50, 50, 10, 10),
	}
	e := MouseEvent{Position: &Position{55, 55}, State: MouseReleased}
	out := e.Pass(children)

	miss := out[0].(MouseEvent)
	if miss.Position != nil {
		t.Error("missed child received a position")
	}
	if miss.State != MouseReleased {
		t.Error("missed child lost the event state")
	}
}

func TestMousePassNoPositionBroadcasts(t *testing.T) {
	children := []layout.Area{area(0, 0, 10, 10), area(20, 0, 10, 10)}
	e := MouseEvent{State: MouseReleased}
	out := e.Pass(children)
	for i, ev := range out {
		me, ok := ev.(MouseEvent)
		if !ok || me.Position != nil || me.State != MouseReleased {
			t.Errorf("child %d received %+v", i, ev)
		}
	}
}

func TestMousePassScrollCarriesDeltas(t *testing.T) {
	children := []layout.Area{area(0, 0, 100, 100)}
	e := MouseEvent{Position: &Position{5, 5}, State: MouseScrolled, ScrollX: 3, ScrollY: -7}
	out := e.Pass(children)
	me := out[0].(MouseEvent)
	if me.ScrollX != 3 || me.ScrollY != -7 {
		t.Errorf("scroll deltas = (%v, %v), want (3, -7)", me.ScrollX, me.ScrollY)
	}
}

func TestMousePassEdgeExclusive(t *testing.T) {
	// A point exactly on the top-left corner does not hit.
	children := []layout.Area{area(10, 10, 20, 20)}
	e := MouseEvent{Position: &Position{10, 10}, State: MousePressed}
	out := e.Pass(children)
	if me := out[0].(MouseEvent); me.Position != nil {
		t.Error("edge point should not register a hit")
	}
}

func TestKeyboardPassBroadcasts(t *testing.T) {
	children := []layout.Area{area(0, 0, 1, 1), area(100, 100, 1, 1), area(-5, -5, 1, 1)}
	e := KeyboardEvent{Key: Named(KeyEnter), State: KeyPressed}
	out := e.Pass(children)
	if len(out) != 3 {
		t.Fatalf("got %d results", len(out))
	}
	for i, ev := range out {
		ke, ok := ev.(KeyboardEvent)
		if !ok || ke != e {
			t.Errorf("child %d received %+v, want the original event", i, ev)
		}
	}
}

func TestTickPassBroadcasts(t *testing.T) {
	children := []layout.Area{area(0, 0, 1, 1), area(2, 2, 1, 1)}
	out := TickEvent{}.Pass(children)
	for i, ev := range out {
		if _, ok := ev.(TickEvent); !ok {
			t.Errorf("child %d received %T", i, ev)
		}
	}
}

func TestPassEmptyChildren(t *testing.T) {
	e := MouseEvent{Position: &Position{1, 1}}
	if out := e.Pass(nil); len(out) != 0 {
		t.Errorf("got %d results for no children", len(out))
	}
}
