package drawable

import (
	"github.com/ramp-stack/prism/pkg/canvas"
	"github.com/ramp-stack/prism/pkg/event"
	"github.com/ramp-stack/prism/pkg/host"
	"github.com/ramp-stack/prism/pkg/layout"
)

// Optional holds zero or one child. With a child it is transparent;
// without one it requests zero size, paints nothing and drops events.
type Optional struct {
	child Drawable
}

// NewOptional wraps child, which may be nil.
func NewOptional(child Drawable) *Optional {
	return &Optional{child: child}
}

// Set replaces the child. A nil child empties the Optional.
func (o *Optional) Set(child Drawable) { o.child = child }

// Inner returns the current child, or nil.
func (o *Optional) Inner() Drawable { return o.child }

func (o *Optional) RequestSize() RequestTree {
	if o.child == nil {
		return RequestTree{Request: layout.Fixed(layout.Size{})}
	}
	return o.child.RequestSize()
}

func (o *Optional) Build(size layout.Size, request RequestTree) SizedTree {
	if o.child == nil {
		return SizedTree{}
	}
	return o.child.Build(size, request)
}

func (o *Optional) Draw(sized *SizedTree, offset layout.Offset, bound canvas.Rect) []Placed {
	if o.child == nil {
		return nil
	}
	return o.child.Draw(sized, offset, bound)
}

func (o *Optional) Event(ctx *host.Context, sized *SizedTree, ev event.Event) {
	if o.child == nil {
		return
	}
	o.child.Event(ctx, sized, ev)
}

func (o *Optional) Name() string {
	if o.child == nil {
		return "Optional(empty)"
	}
	return "Optional(" + o.child.Name() + ")"
}
