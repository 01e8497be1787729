// Package drawable defines the tree protocol a frame runs against:
// size negotiation up, placement down, paint flattened into an ordered
// stream of primitives, and events walked back through the same sized
// tree. Composite gives any Component the full protocol; Root drives
// frames and dispatch.
package drawable

import (
	"github.com/ramp-stack/prism/pkg/canvas"
	"github.com/ramp-stack/prism/pkg/event"
	"github.com/ramp-stack/prism/pkg/host"
	"github.com/ramp-stack/prism/pkg/layout"
)

// RequestTree mirrors the drawable tree with each node's size request.
// Produced once per frame by RequestSize and consumed by Build.
type RequestTree struct {
	Request  layout.SizeRequest
	Children []RequestTree
}

// SizedTree mirrors the drawable tree with each node's resolved size.
// Produced by Build and consumed by both Draw and Event.
type SizedTree struct {
	Size     layout.Size
	Children []SizedChild
}

// SizedChild is a placed subtree, offset in its parent's coordinates.
type SizedChild struct {
	Offset layout.Offset
	Tree   SizedTree
}

// Placed is one paint primitive in window coordinates, ready for a
// renderer.
type Placed struct {
	Area canvas.Area
	Item canvas.Item
}

// Drawable is a node in the tree. RequestSize and Build are the two
// layout passes; Draw and Event walk the sized tree Build produced.
type Drawable interface {
	// RequestSize reports the node's size constraints, with the
	// constraints of its subtree attached.
	RequestSize() RequestTree

	// Build resolves the node's final size from the space its parent
	// allots and places its children. The request must be the tree
	// RequestSize returned this frame.
	Build(size layout.Size, request RequestTree) SizedTree

	// Draw flattens the subtree into paint primitives. offset is the
	// node's position in window coordinates and bound the accumulated
	// clip; nothing may paint outside it.
	Draw(sized *SizedTree, offset layout.Offset, bound canvas.Rect) []Placed

	// Event delivers an event to the subtree.
	Event(ctx *host.Context, sized *SizedTree, ev event.Event)

	// Name identifies the node for debugging.
	Name() string
}
