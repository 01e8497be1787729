package drawable

import (
	"github.com/ramp-stack/prism/pkg/canvas"
	"github.com/ramp-stack/prism/pkg/event"
	"github.com/ramp-stack/prism/pkg/host"
	"github.com/ramp-stack/prism/pkg/layout"
)

// Root drives frames for a drawable tree. Frame runs the two layout
// passes and flattens the paint stream; Dispatch delivers events
// against the sized tree of the most recent frame, so hit-testing
// always matches what is on screen.
type Root struct {
	top   Drawable
	sized SizedTree
}

// NewRoot wraps the top of a tree.
func NewRoot(top Drawable) *Root {
	return &Root{top: top}
}

// Frame lays the tree out in the given window size and returns the
// primitives to paint, in paint order.
func (r *Root) Frame(size layout.Size) []Placed {
	request := r.top.RequestSize()
	r.sized = r.top.Build(size, request)
	bound := canvas.Rect{W: size.W, H: size.H}
	return r.top.Draw(&r.sized, layout.Offset{}, bound)
}

// Dispatch delivers an event through the tree laid out by the last
// Frame. Calling Dispatch before any Frame is a no-op tree walk over
// zero-sized children.
func (r *Root) Dispatch(ctx *host.Context, ev event.Event) {
	r.top.Event(ctx, &r.sized, ev)
}

// Size returns the top drawable's size from the last Frame.
func (r *Root) Size() layout.Size { return r.sized.Size }
