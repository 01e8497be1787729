package render

import (
	"image/color"
	"testing"

	"github.com/ramp-stack/prism/pkg/canvas"
	"github.com/ramp-stack/prism/pkg/drawable"
)

var (
	white = canvas.Color{R: 255, G: 255, B: 255, A: 255}
	red   = canvas.Color{R: 255, A: 255}
)

func pixel(t *testing.T, r *Renderer, x, y int) color.RGBA {
	t.Helper()
	return color.RGBAModel.Convert(r.Image().At(x, y)).(color.RGBA)
}

func placedShape(x, y float32, s canvas.Shape, bounds canvas.Rect) drawable.Placed {
	return drawable.Placed{
		Area: canvas.Area{X: x, Y: y, Bounds: bounds},
		Item: &s,
	}
}

func TestRenderFillsRectangle(t *testing.T) {
	r := NewRenderer(100, 100)
	r.Clear(white)
	full := canvas.Rect{W: 100, H: 100}
	err := r.Render([]drawable.Placed{
		placedShape(10, 10, canvas.Shape{Kind: canvas.Rectangle, Width: 30, Height: 20, Color: red}, full),
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := pixel(t, r, 20, 15); got.R != 255 || got.G != 0 {
		t.Errorf("pixel inside rectangle = %+v, want red", got)
	}
	if got := pixel(t, r, 5, 5); got.G != 255 {
		t.Errorf("pixel outside rectangle = %+v, want white", got)
	}
}

func TestRenderClipsToBounds(t *testing.T) {
	r := NewRenderer(100, 100)
	r.Clear(white)
	clip := canvas.Rect{X: 0, Y: 0, W: 20, H: 20}
	err := r.Render([]drawable.Placed{
		placedShape(0, 0, canvas.Shape{Kind: canvas.Rectangle, Width: 80, Height: 80, Color: red}, clip),
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := pixel(t, r, 10, 10); got.R != 255 || got.G != 0 {
		t.Errorf("pixel inside clip = %+v, want red", got)
	}
	if got := pixel(t, r, 50, 50); got.G != 255 {
		t.Errorf("pixel outside clip = %+v, want white", got)
	}
}

func TestRenderClipDoesNotLeak(t *testing.T) {
	// The second primitive must not inherit the first one's clip.
	r := NewRenderer(100, 100)
	r.Clear(white)
	err := r.Render([]drawable.Placed{
		placedShape(0, 0, canvas.Shape{Kind: canvas.Rectangle, Width: 10, Height: 10, Color: red},
			canvas.Rect{W: 10, H: 10}),
		placedShape(40, 40, canvas.Shape{Kind: canvas.Rectangle, Width: 10, Height: 10, Color: red},
			canvas.Rect{W: 100, H: 100}),
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := pixel(t, r, 45, 45); got.R != 255 || got.G != 0 {
		t.Errorf("second primitive lost to a leaked clip: %+v", got)
	}
}

func TestRenderSkipsEmptyBounds(t *testing.T) {
	r := NewRenderer(50, 50)
	r.Clear(white)
	err := r.Render([]drawable.Placed{
		placedShape(0, 0, canvas.Shape{Kind: canvas.Rectangle, Width: 50, Height: 50, Color: red},
			canvas.Rect{W: 0, H: 0}),
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := pixel(t, r, 25, 25); got.G != 255 {
		t.Errorf("empty-bounds primitive painted: %+v", got)
	}
}

func TestRenderText(t *testing.T) {
	r := NewRenderer(200, 50)
	r.Clear(white)
	txt := canvas.NewText("Hg", canvas.Color{A: 255}, 24, nil)
	err := r.Render([]drawable.Placed{{
		Area: canvas.Area{X: 5, Y: 5, Bounds: canvas.Rect{W: 200, H: 50}},
		Item: txt,
	}})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	// Some pixel inside the run's box must darken.
	w, h := txt.Size()
	found := false
	for y := 0; y < int(h)+10 && !found; y++ {
		for x := 0; x < int(w)+10; x++ {
			p := pixel(t, r, 5+x, 5+y)
			if p.R < 200 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("text left no mark on the surface")
	}
}
