package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ramp-stack/prism/pkg/canvas"
	"github.com/ramp-stack/prism/pkg/drawable"
	"github.com/ramp-stack/prism/pkg/layout"
	"github.com/ramp-stack/prism/pkg/render"
)

// scene arranges fixed children with a layout policy.
type scene struct {
	drawable.Composite
	policy layout.Layout
	kids   []drawable.Drawable
}

func newScene(policy layout.Layout, kids ...drawable.Drawable) *scene {
	s := &scene{policy: policy, kids: kids}
	s.Init(s)
	return s
}

func (s *scene) Children() []drawable.Drawable { return s.kids }
func (s *scene) Layout() layout.Layout         { return s.policy }

func text(s string, size float32, c canvas.Color) *drawable.Text {
	return drawable.NewText(s, c, size, nil)
}

func shape(kind canvas.ShapeKind, w, h, radius float32, c canvas.Color) *drawable.Shape {
	return drawable.NewShape(canvas.Shape{Kind: kind, Width: w, Height: h, Radius: radius, Color: c})
}

func main() {
	width := flag.Int("w", 800, "output width in pixels")
	height := flag.Int("h", 600, "output height in pixels")
	output := flag.String("o", "output.png", "output PNG file path")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: prism-render [flags]\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	ink := canvas.Color{R: 20, G: 20, B: 24, A: 255}
	tones := []canvas.Color{
		{R: 239, G: 83, B: 80, A: 255},
		{R: 255, G: 167, B: 38, A: 255},
		{R: 102, G: 187, B: 106, A: 255},
		{R: 66, G: 165, B: 245, A: 255},
	}

	badges := make([]drawable.Drawable, 0, 10)
	for i := 0; i < 10; i++ {
		badges = append(badges, shape(canvas.RoundedRectangle, 70+float32(i%3)*30, 26, 13, tones[i%len(tones)]))
	}

	tree := newScene(layout.NewColumn(16, layout.AlignCenter, layout.SizeFill, layout.Pad(24), false),
		text("prism", 32, ink),
		text("layout core reference render", 16, ink),
		newScene(layout.NewWrap(10, 10), badges...),
		newScene(layout.RowCenter(14),
			shape(canvas.Ellipse, 90, 90, 0, tones[0]),
			shape(canvas.Rectangle, 90, 90, 0, tones[2]),
			shape(canvas.RoundedRectangle, 90, 90, 12, tones[3])),
	)

	root := drawable.NewRoot(tree)
	size := layout.Size{W: float32(*width), H: float32(*height)}

	// Frame twice so width-dependent wrapping settles.
	root.Frame(size)
	placed := root.Frame(size)

	r := render.NewRenderer(*width, *height)
	r.Clear(canvas.Color{R: 250, G: 250, B: 252, A: 255})
	if err := r.Render(placed); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
		os.Exit(1)
	}
	if err := r.SavePNG(*output); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Saved %dx%d render to %s\n", *width, *height, *output)
}
