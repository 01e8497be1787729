package drawable

import (
	"fmt"

	"github.com/ramp-stack/prism/pkg/canvas"
	"github.com/ramp-stack/prism/pkg/event"
	"github.com/ramp-stack/prism/pkg/host"
	"github.com/ramp-stack/prism/pkg/layout"
)

// Component is what a custom drawable declares: its children and the
// layout policy that arranges them. Embedding Composite and calling
// Init grants the full Drawable protocol.
type Component interface {
	Children() []Drawable
	Layout() layout.Layout
}

// EventHandler lets a Component intercept events before they fan out
// to its children. The returned events propagate instead of the
// original; return nil to consume the event.
type EventHandler interface {
	OnEvent(ctx *host.Context, ev event.Event) []event.Event
}

// Composite implements Drawable for any Component embedding it.
// Call Init with the outer value before first use:
//
//	type Card struct {
//		drawable.Composite
//		...
//	}
//
//	func NewCard() *Card {
//		c := &Card{...}
//		c.Init(c)
//		return c
//	}
type Composite struct {
	self Component
}

// Init records the outer Component so the protocol methods can reach
// its children, layout and event handler.
func (c *Composite) Init(self Component) { c.self = self }

// RequestSize measures every child and folds the child requests
// through the component's layout.
func (c *Composite) RequestSize() RequestTree {
	children := c.self.Children()
	trees := make([]RequestTree, len(children))
	requests := make([]layout.SizeRequest, len(children))
	for i, child := range children {
		trees[i] = child.RequestSize()
		requests[i] = trees[i].Request
	}
	return RequestTree{
		Request:  c.self.Layout().RequestSize(requests),
		Children: trees,
	}
}

// Build clamps the allotted size against the node's own request,
// places the children through the layout, and recurses with each
// child's allotment.
func (c *Composite) Build(size layout.Size, request RequestTree) SizedTree {
	final := request.Request.Get(size)

	children := c.self.Children()
	requests := make([]layout.SizeRequest, len(request.Children))
	for i, t := range request.Children {
		requests[i] = t.Request
	}
	areas := c.self.Layout().Build(final, requests)

	sized := SizedTree{Size: final, Children: make([]SizedChild, len(children))}
	for i, child := range children {
		sized.Children[i] = SizedChild{
			Offset: areas[i].Offset,
			Tree:   child.Build(areas[i].Size, request.Children[i]),
		}
	}
	return sized
}

// Draw flattens the subtree in child order, accumulating offsets and
// intersecting clip bounds on the way down. Subtrees clipped to
// nothing are skipped entirely.
func (c *Composite) Draw(sized *SizedTree, offset layout.Offset, bound canvas.Rect) []Placed {
	children := c.self.Children()
	var out []Placed
	for i := range sized.Children {
		ch := &sized.Children[i]
		at := layout.Offset{X: offset.X + ch.Offset.X, Y: offset.Y + ch.Offset.Y}
		b := bound.Intersect(canvas.Rect{X: at.X, Y: at.Y, W: ch.Tree.Size.W, H: ch.Tree.Size.H})
		if b.Empty() {
			continue
		}
		out = append(out, children[i].Draw(&ch.Tree, at, b)...)
	}
	return out
}

// Event runs the event through the component's handler, if it has
// one, then fans each resulting event out to the children via its
// propagation rule.
func (c *Composite) Event(ctx *host.Context, sized *SizedTree, ev event.Event) {
	events := []event.Event{ev}
	if h, ok := c.self.(EventHandler); ok {
		events = h.OnEvent(ctx, ev)
	}
	if len(events) == 0 {
		return
	}

	children := c.self.Children()
	areas := make([]layout.Area, len(sized.Children))
	for i, ch := range sized.Children {
		areas[i] = layout.Area{Offset: ch.Offset, Size: ch.Tree.Size}
	}
	for _, e := range events {
		if e == nil {
			continue
		}
		for i, passed := range e.Pass(areas) {
			if passed == nil {
				continue
			}
			children[i].Event(ctx, &sized.Children[i].Tree, passed)
		}
	}
}

// Name reports the concrete component type.
func (c *Composite) Name() string { return fmt.Sprintf("%T", c.self) }
