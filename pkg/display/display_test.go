package display

import (
	"testing"

	"github.com/ramp-stack/prism/pkg/canvas"
	"github.com/ramp-stack/prism/pkg/drawable"
	"github.com/ramp-stack/prism/pkg/layout"
)

func block(w, h float32) *drawable.Shape {
	return drawable.NewShape(canvas.Shape{Kind: canvas.Rectangle, Width: w, Height: h})
}

func paintCount(t *testing.T, d drawable.Drawable) int {
	t.Helper()
	root := drawable.NewRoot(d)
	return len(root.Frame(layout.Size{W: 500, H: 500}))
}

func TestBinWrapsChild(t *testing.T) {
	child := block(20, 10)
	b := NewBin(&layout.Stack{Padding: layout.Pad(4)}, child)
	if b.Inner() != child {
		t.Error("Inner is not the wrapped child")
	}
	req := b.RequestSize()
	if req.Request.MinWidth() != 28 || req.Request.MinHeight() != 18 {
		t.Errorf("request = %vx%v, want child plus padding 28x18",
			req.Request.MinWidth(), req.Request.MinHeight())
	}
}

func TestOptToggles(t *testing.T) {
	o := NewOpt(block(30, 30), true)
	if !o.IsShowing() {
		t.Fatal("Opt started hidden")
	}
	if got := paintCount(t, o); got != 1 {
		t.Errorf("visible Opt painted %d primitives", got)
	}

	o.Display(false)
	if o.IsShowing() {
		t.Fatal("Opt still showing after Display(false)")
	}
	if got := paintCount(t, o); got != 0 {
		t.Errorf("hidden Opt painted %d primitives", got)
	}
	req := o.RequestSize()
	if req.Request.MinWidth() != 0 || req.Request.MaxWidth() != 0 {
		t.Error("hidden Opt should request zero size")
	}

	o.Display(true)
	if got := paintCount(t, o); got != 1 {
		t.Errorf("re-shown Opt painted %d primitives", got)
	}
}

func TestOptKeepsHiddenChild(t *testing.T) {
	child := block(5, 5)
	o := NewOpt(child, false)
	if o.Inner() != child {
		t.Error("hidden child is not reachable through Inner")
	}
	o.Display(true)
	if o.Inner() != child {
		t.Error("re-shown child is not the original")
	}
}

func TestEitherOrSwitches(t *testing.T) {
	left, right := block(10, 10), block(20, 20)
	e := NewEitherOr(left, right)
	if got := paintCount(t, e); got != 1 {
		t.Fatalf("painted %d primitives, want one side only", got)
	}
	req := e.RequestSize()
	if req.Request.MinWidth() != 10 {
		t.Errorf("showing left, request width = %v, want 10", req.Request.MinWidth())
	}

	e.DisplayLeft(false)
	req = e.RequestSize()
	if req.Request.MinWidth() != 20 {
		t.Errorf("showing right, request width = %v, want 20", req.Request.MinWidth())
	}
	if e.Left() != left || e.Right() != right {
		t.Error("children not reachable after switching")
	}
}

func TestEnumDisplaysOne(t *testing.T) {
	e := NewEnum()
	e.Insert("home", block(10, 10))
	e.Insert("settings", block(20, 20))
	e.Insert("about", block(30, 30))

	if e.Current() != "home" {
		t.Fatalf("initial selection %q, want the first inserted", e.Current())
	}
	if got := paintCount(t, e); got != 1 {
		t.Errorf("painted %d primitives, want 1", got)
	}

	e.Display("about")
	if e.Current() != "about" {
		t.Errorf("selection %q after Display", e.Current())
	}
	req := e.RequestSize()
	if req.Request.MinWidth() != 30 {
		t.Errorf("request width = %v, want the visible child's 30", req.Request.MinWidth())
	}
}

func TestEnumUnknownNameFallsBack(t *testing.T) {
	e := NewEnum()
	e.Insert("first", block(10, 10))
	e.Insert("second", block(20, 20))
	e.Display("second")
	e.Display("missing")
	if e.Current() != "first" {
		t.Errorf("selection %q, want fallback to the first inserted", e.Current())
	}
	if got := paintCount(t, e); got != 1 {
		t.Errorf("painted %d primitives after fallback", got)
	}
}

func TestEnumEmptyDisplay(t *testing.T) {
	e := NewEnum()
	e.Display("anything") // must not panic
	if e.Current() != "" {
		t.Errorf("empty enum reports current %q", e.Current())
	}
}
