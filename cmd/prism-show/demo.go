package main

import (
	"fmt"

	"github.com/ramp-stack/prism/pkg/canvas"
	"github.com/ramp-stack/prism/pkg/display"
	"github.com/ramp-stack/prism/pkg/drawable"
	"github.com/ramp-stack/prism/pkg/event"
	"github.com/ramp-stack/prism/pkg/host"
	"github.com/ramp-stack/prism/pkg/layout"
)

var palette = []canvas.Color{
	{R: 239, G: 83, B: 80, A: 255},
	{R: 255, G: 167, B: 38, A: 255},
	{R: 255, G: 238, B: 88, A: 255},
	{R: 102, G: 187, B: 106, A: 255},
	{R: 66, G: 165, B: 245, A: 255},
	{R: 171, G: 71, B: 188, A: 255},
}

var ink = canvas.Color{R: 235, G: 235, B: 240, A: 255}

func label(s string, size float32) *drawable.Text {
	return drawable.NewText(s, ink, size, nil)
}

func chip(c canvas.Color, w, h float32) *drawable.Shape {
	return drawable.NewShape(canvas.Shape{
		Kind: canvas.RoundedRectangle, Width: w, Height: h, Radius: h / 2, Color: c,
	})
}

func panel(c canvas.Color, w, h float32) *drawable.Shape {
	return drawable.NewShape(canvas.Shape{
		Kind: canvas.RoundedRectangle, Width: w, Height: h, Radius: 8, Color: c,
	})
}

// group arranges fixed children with a layout policy.
type group struct {
	drawable.Composite
	policy layout.Layout
	kids   []drawable.Drawable
}

func newGroup(policy layout.Layout, kids ...drawable.Drawable) *group {
	g := &group{policy: policy, kids: kids}
	g.Init(g)
	return g
}

func (g *group) Children() []drawable.Drawable { return g.kids }
func (g *group) Layout() layout.Layout         { return g.policy }

// toggle flips between two panels on click and asks the host for a
// haptic tick.
type toggle struct {
	drawable.Composite
	either *display.EitherOr
	on     bool
}

func newToggle() *toggle {
	t := &toggle{
		either: display.NewEitherOr(panel(palette[4], 180, 60), panel(palette[0], 180, 60)),
		on:     true,
	}
	t.Init(t)
	return t
}

func (t *toggle) Children() []drawable.Drawable { return []drawable.Drawable{t.either} }
func (t *toggle) Layout() layout.Layout         { return &layout.Stack{} }

func (t *toggle) OnEvent(ctx *host.Context, ev event.Event) []event.Event {
	if me, ok := ev.(event.MouseEvent); ok && me.State == event.MousePressed && me.Position != nil {
		t.on = !t.on
		t.either.DisplayLeft(t.on)
		if ctx != nil {
			ctx.Send(host.HardwareRequest{Action: host.Hardware{Kind: host.Haptic}})
		}
		return nil
	}
	return []event.Event{ev}
}

// pager cycles an Enum of pages with the enter key.
type pager struct {
	drawable.Composite
	enum  *display.Enum
	names []string
	idx   int
}

func newPager() *pager {
	p := &pager{enum: display.NewEnum(), names: []string{"red", "green", "blue"}}
	p.enum.Insert("red", panel(palette[0], 240, 80))
	p.enum.Insert("green", panel(palette[3], 240, 80))
	p.enum.Insert("blue", panel(palette[4], 240, 80))
	p.Init(p)
	return p
}

func (p *pager) Children() []drawable.Drawable { return []drawable.Drawable{p.enum} }
func (p *pager) Layout() layout.Layout         { return &layout.Stack{} }

func (p *pager) OnEvent(ctx *host.Context, ev event.Event) []event.Event {
	if ke, ok := ev.(event.KeyboardEvent); ok &&
		ke.State == event.KeyPressed && ke.Key.Char == "" && ke.Key.Name == event.KeyEnter {
		p.idx++
		p.enum.Display(p.names[p.idx%len(p.names)])
		return nil
	}
	return []event.Event{ev}
}

// page is the demo tree: a scrollable column of sections.
type page struct {
	drawable.Composite
	column *layout.Column
	kids   []drawable.Drawable
}

func newPage() *page {
	p := &page{
		column: layout.NewColumn(14, layout.AlignCenter, layout.SizeFill, layout.Pad(16), true),
	}

	chips := make([]drawable.Drawable, 0, 12)
	for i := 0; i < 12; i++ {
		c := palette[i%len(palette)]
		chips = append(chips, chip(c, 60+float32(i%4)*25, 24))
	}

	p.kids = []drawable.Drawable{
		label("prism layout demo", 28),
		label("scroll the column, click the switch, press enter to cycle pages", 14),
		newGroup(layout.NewWrap(8, 8), chips...),
		newGroup(layout.RowCenter(12),
			panel(palette[1], 120, 90), panel(palette[2], 120, 90), panel(palette[5], 120, 90)),
		newToggle(),
		newPager(),
	}
	for i := 0; i < 10; i++ {
		p.kids = append(p.kids,
			newGroup(layout.RowCenter(10),
				label(fmt.Sprintf("row %02d", i+1), 16),
				chip(palette[i%len(palette)], 200, 18)))
	}

	p.Init(p)
	return p
}

func (p *page) Children() []drawable.Drawable { return p.kids }
func (p *page) Layout() layout.Layout         { return p.column }

func (p *page) OnEvent(ctx *host.Context, ev event.Event) []event.Event {
	if me, ok := ev.(event.MouseEvent); ok && me.State == event.MouseScrolled && me.Position != nil {
		p.column.AdjustScroll(-me.ScrollY * 20)
	}
	return []event.Event{ev}
}
