// Package canvas defines the paint primitives that come out of a
// drawable tree: shapes, text runs and images, each paired with a
// placement area. The layout core treats these as opaque leaf values;
// only a renderer looks inside.
package canvas

import (
	"image"

	"github.com/ramp-stack/prism/pkg/text"
)

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Rect is an axis-aligned rectangle in window coordinates.
type Rect struct {
	X, Y, W, H float32
}

// Intersect returns the overlap of two rectangles. A result with
// non-positive width or height means the rectangles do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x := max(r.X, o.X)
	y := max(r.Y, o.Y)
	return Rect{
		X: x,
		Y: y,
		W: min(r.X+r.W, o.X+o.W) - x,
		H: min(r.Y+r.H, o.Y+o.H) - y,
	}
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Area places an item: its top-left corner in window coordinates and
// the clip bounds accumulated on the way down the tree. Nothing of the
// item may paint outside Bounds.
type Area struct {
	X, Y   float32
	Bounds Rect
}

// Item is a paint primitive. The concrete types are Shape, Text and
// Image; nothing else implements it.
type Item interface {
	// Size returns the item's intrinsic width and height.
	Size() (w, h float32)

	item()
}

// ShapeKind selects a shape's geometry.
type ShapeKind uint8

const (
	Rectangle ShapeKind = iota
	RoundedRectangle
	Ellipse
)

// Shape is a filled or stroked geometric primitive.
type Shape struct {
	Kind          ShapeKind
	Width, Height float32

	// Radius is the corner radius, used by RoundedRectangle.
	Radius float32

	// Stroke is the outline width. Zero means fill.
	Stroke float32

	Color Color
}

func (s *Shape) Size() (float32, float32) { return s.Width, s.Height }
func (s *Shape) item()                    {}

// Text is a single measured run of text.
type Text struct {
	Content  string
	Font     *text.Font
	FontSize float32
	Color    Color

	width, height float32
}

// NewText measures content with the given font and returns the run.
// A nil font uses the bundled default.
func NewText(content string, color Color, size float32, font *text.Font) *Text {
	if font == nil {
		font = text.Default()
	}
	w, h := font.Measure(content, size)
	return &Text{
		Content:  content,
		Font:     font,
		FontSize: size,
		Color:    color,
		width:    w,
		height:   h,
	}
}

func (t *Text) Size() (float32, float32) { return t.width, t.height }
func (t *Text) item()                    {}

// Image paints a decoded image scaled to a display size.
type Image struct {
	Source        image.Image
	Width, Height float32
}

// NewImage wraps src for display at its natural pixel size.
func NewImage(src image.Image) *Image {
	b := src.Bounds()
	return &Image{Source: src, Width: float32(b.Dx()), Height: float32(b.Dy())}
}

func (i *Image) Size() (float32, float32) { return i.Width, i.Height }
func (i *Image) item()                    {}
