// Package render rasterizes the paint stream a drawable tree produces
// into an RGBA image. It is the reference renderer: every primitive is
// clipped to its area bounds, so output matches the tree's clipping
// decisions exactly.
package render

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"github.com/ramp-stack/prism/pkg/canvas"
	"github.com/ramp-stack/prism/pkg/drawable"
)

// Renderer draws paint primitives into a fixed-size RGBA surface.
type Renderer struct {
	ctx *gg.Context
}

// NewRenderer allocates a surface of the given pixel size.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{ctx: gg.NewContext(width, height)}
}

// Clear fills the whole surface with one color.
func (r *Renderer) Clear(c canvas.Color) {
	r.setColor(c)
	r.ctx.Clear()
}

// Render paints the primitives in order. Each primitive is clipped to
// its area bounds before drawing.
func (r *Renderer) Render(items []drawable.Placed) error {
	for _, p := range items {
		b := p.Area.Bounds
		if b.Empty() {
			continue
		}
		r.ctx.Push()
		r.ctx.DrawRectangle(float64(b.X), float64(b.Y), float64(b.W), float64(b.H))
		r.ctx.Clip()

		var err error
		switch it := p.Item.(type) {
		case *canvas.Shape:
			r.shape(p.Area, it)
		case *canvas.Text:
			err = r.text(p.Area, it)
		case *canvas.Image:
			r.image(p.Area, it)
		default:
			err = fmt.Errorf("render: unknown item %T", p.Item)
		}

		r.ctx.ResetClip()
		r.ctx.Pop()
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) shape(a canvas.Area, s *canvas.Shape) {
	x, y := float64(a.X), float64(a.Y)
	w, h := float64(s.Width), float64(s.Height)
	switch s.Kind {
	case canvas.Rectangle:
		r.ctx.DrawRectangle(x, y, w, h)
	case canvas.RoundedRectangle:
		r.ctx.DrawRoundedRectangle(x, y, w, h, float64(s.Radius))
	case canvas.Ellipse:
		r.ctx.DrawEllipse(x+w/2, y+h/2, w/2, h/2)
	}
	r.setColor(s.Color)
	if s.Stroke > 0 {
		r.ctx.SetLineWidth(float64(s.Stroke))
		r.ctx.Stroke()
	} else {
		r.ctx.Fill()
	}
}

func (r *Renderer) text(a canvas.Area, t *canvas.Text) error {
	face, err := t.Font.Face(t.FontSize)
	if err != nil {
		return fmt.Errorf("render: face for %q at %v: %w", t.Font.Name(), t.FontSize, err)
	}
	r.ctx.SetFontFace(face)
	r.setColor(t.Color)
	r.ctx.DrawStringAnchored(t.Content, float64(a.X), float64(a.Y), 0, 1)
	return nil
}

func (r *Renderer) image(a canvas.Area, img *canvas.Image) {
	b := img.Source.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	r.ctx.Translate(float64(a.X), float64(a.Y))
	r.ctx.Scale(float64(img.Width)/float64(b.Dx()), float64(img.Height)/float64(b.Dy()))
	r.ctx.DrawImage(img.Source, 0, 0)
}

func (r *Renderer) setColor(c canvas.Color) {
	r.ctx.SetRGBA255(int(c.R), int(c.G), int(c.B), int(c.A))
}

// Image returns the surface. The result shares memory with the
// renderer; copy it before rendering again if it must survive.
func (r *Renderer) Image() image.Image { return r.ctx.Image() }

// SavePNG writes the surface to a PNG file.
func (r *Renderer) SavePNG(path string) error { return r.ctx.SavePNG(path) }
