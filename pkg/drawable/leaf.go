package drawable

import (
	"github.com/ramp-stack/prism/pkg/canvas"
	"github.com/ramp-stack/prism/pkg/event"
	"github.com/ramp-stack/prism/pkg/host"
	"github.com/ramp-stack/prism/pkg/layout"
	"github.com/ramp-stack/prism/pkg/text"
)

// leaf adapts a canvas primitive into a Drawable. Leaves request their
// intrinsic size, paint a single primitive and consume no events.
type leaf struct {
	item canvas.Item
	name string
}

func (l *leaf) RequestSize() RequestTree {
	w, h := l.item.Size()
	return RequestTree{Request: layout.Fixed(layout.Size{W: w, H: h})}
}

func (l *leaf) Build(size layout.Size, request RequestTree) SizedTree {
	return SizedTree{Size: request.Request.Get(size)}
}

func (l *leaf) Draw(sized *SizedTree, offset layout.Offset, bound canvas.Rect) []Placed {
	return []Placed{{
		Area: canvas.Area{X: offset.X, Y: offset.Y, Bounds: bound},
		Item: l.item,
	}}
}

func (l *leaf) Event(ctx *host.Context, sized *SizedTree, ev event.Event) {}

func (l *leaf) Name() string { return l.name }

// Text is a leaf drawable painting a measured text run.
type Text struct {
	leaf
}

// NewText builds a text leaf. A nil font uses the bundled default.
func NewText(content string, color canvas.Color, size float32, font *text.Font) *Text {
	t := &Text{}
	t.item = canvas.NewText(content, color, size, font)
	t.name = "Text"
	return t
}

// Inner returns the underlying text run.
func (t *Text) Inner() *canvas.Text { return t.item.(*canvas.Text) }

// Shape is a leaf drawable painting one geometric primitive.
type Shape struct {
	leaf
}

// NewShape builds a shape leaf.
func NewShape(s canvas.Shape) *Shape {
	sh := &Shape{}
	sh.item = &s
	sh.name = "Shape"
	return sh
}

// Inner returns the underlying shape.
func (s *Shape) Inner() *canvas.Shape { return s.item.(*canvas.Shape) }

// Image is a leaf drawable painting an image.
type Image struct {
	leaf
}

// NewImage builds an image leaf.
func NewImage(img *canvas.Image) *Image {
	i := &Image{}
	i.item = img
	i.name = "Image"
	return i
}

// Inner returns the underlying image.
func (i *Image) Inner() *canvas.Image { return i.item.(*canvas.Image) }
