package main

import (
	"flag"
	"image"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ramp-stack/prism/pkg/canvas"
	"github.com/ramp-stack/prism/pkg/drawable"
	"github.com/ramp-stack/prism/pkg/event"
	"github.com/ramp-stack/prism/pkg/host"
	"github.com/ramp-stack/prism/pkg/layout"
	"github.com/ramp-stack/prism/pkg/render"
)

var background = canvas.Color{R: 24, G: 24, B: 28, A: 255}

// surface is the fyne widget hosting a drawable tree: it runs the
// frame loop into an image and translates fyne input into tree events.
type surface struct {
	widget.BaseWidget

	img *fynecanvas.Image

	mu       sync.Mutex
	root     *drawable.Root
	ctx      *host.Context
	renderer *render.Renderer
	rw, rh   int
}

func newSurface(root *drawable.Root, ctx *host.Context) *surface {
	s := &surface{root: root, ctx: ctx}
	s.img = fynecanvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	s.img.FillMode = fynecanvas.ImageFillOriginal
	s.ExtendBaseWidget(s)
	return s
}

func (s *surface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.img)
}

// frame runs one tick: dispatch the tick event, lay out at the current
// widget size, rasterize, and hand the result to fyne.
func (s *surface) frame() {
	size := s.Size()
	w, h := int(size.Width), int(size.Height)
	if w <= 0 || h <= 0 {
		return
	}

	s.mu.Lock()
	if s.renderer == nil || w != s.rw || h != s.rh {
		s.renderer = render.NewRenderer(w, h)
		s.rw, s.rh = w, h
	}
	s.root.Dispatch(s.ctx, event.TickEvent{})
	placed := s.root.Frame(layout.Size{W: float32(w), H: float32(h)})
	s.renderer.Clear(background)
	err := s.renderer.Render(placed)
	out := s.renderer.Image()
	s.mu.Unlock()

	if err != nil {
		log.Printf("render: %v", err)
		return
	}
	fyne.Do(func() {
		s.img.Image = out
		s.img.Refresh()
	})
}

func (s *surface) dispatch(ev event.Event) {
	s.mu.Lock()
	s.root.Dispatch(s.ctx, ev)
	s.mu.Unlock()
}

func (s *surface) pointer(p fyne.Position, state event.MouseState, dx, dy float32) {
	s.dispatch(event.MouseEvent{
		Position: &event.Position{X: p.X, Y: p.Y},
		State:    state,
		ScrollX:  dx,
		ScrollY:  dy,
	})
}

func (s *surface) MouseDown(e *desktop.MouseEvent) { s.pointer(e.Position, event.MousePressed, 0, 0) }
func (s *surface) MouseUp(e *desktop.MouseEvent)   { s.pointer(e.Position, event.MouseReleased, 0, 0) }
func (s *surface) MouseIn(e *desktop.MouseEvent)   { s.pointer(e.Position, event.MouseMoved, 0, 0) }
func (s *surface) MouseMoved(e *desktop.MouseEvent) {
	s.pointer(e.Position, event.MouseMoved, 0, 0)
}
func (s *surface) MouseOut() { s.dispatch(event.MouseEvent{State: event.MouseMoved}) }

func (s *surface) Scrolled(e *fyne.ScrollEvent) {
	s.pointer(e.Position, event.MouseScrolled, e.Scrolled.DX, e.Scrolled.DY)
}

func namedKey(n fyne.KeyName) (event.NamedKey, bool) {
	switch n {
	case fyne.KeyReturn, fyne.KeyEnter:
		return event.KeyEnter, true
	case fyne.KeyTab:
		return event.KeyTab, true
	case fyne.KeySpace:
		return event.KeySpace, true
	case fyne.KeyDown:
		return event.KeyArrowDown, true
	case fyne.KeyLeft:
		return event.KeyArrowLeft, true
	case fyne.KeyRight:
		return event.KeyArrowRight, true
	case fyne.KeyUp:
		return event.KeyArrowUp, true
	case fyne.KeyDelete, fyne.KeyBackspace:
		return event.KeyDelete, true
	}
	return 0, false
}

func main() {
	fps := flag.Int("fps", 30, "frames per second")
	flag.Parse()

	a := app.New()
	w := a.NewWindow("prism demo")
	w.Resize(fyne.NewSize(900, 640))

	requests := make(chan host.Request, 64)
	ctx := host.NewContext(host.NewState(), requests)
	root := drawable.NewRoot(newPage())
	s := newSurface(root, ctx)

	w.Canvas().SetOnTypedKey(func(k *fyne.KeyEvent) {
		name, ok := namedKey(k.Name)
		if !ok {
			return
		}
		s.dispatch(event.KeyboardEvent{Key: event.Named(name), State: event.KeyPressed})
		s.dispatch(event.KeyboardEvent{Key: event.Named(name), State: event.KeyReleased})
	})
	w.Canvas().SetOnTypedRune(func(r rune) {
		s.dispatch(event.KeyboardEvent{Key: event.Character(string(r)), State: event.KeyPressed})
		s.dispatch(event.KeyboardEvent{Key: event.Character(string(r)), State: event.KeyReleased})
	})

	go func() {
		for req := range requests {
			switch q := req.(type) {
			case host.EventRequest:
				s.dispatch(q.Event)
			case host.HardwareRequest:
				log.Printf("hardware request %d (key=%q value=%q)", q.Action.Kind, q.Action.Key, q.Action.Value)
			case host.ServiceRequest:
				log.Printf("service %q: %s", q.Name, q.Payload)
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(*fps))
	go func() {
		for range ticker.C {
			s.frame()
		}
	}()

	w.SetContent(s)
	w.ShowAndRun()
}
