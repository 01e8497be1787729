// Package display provides small structural containers built on the
// drawable Component adapter: a single-child bin, a visibility toggle,
// a two-way switch and a named switch.
package display

import (
	"github.com/ramp-stack/prism/pkg/drawable"
	"github.com/ramp-stack/prism/pkg/layout"
)

// Bin wraps one child with a layout policy.
type Bin struct {
	drawable.Composite
	policy layout.Layout
	child  drawable.Drawable
}

// NewBin wraps child in policy.
func NewBin(policy layout.Layout, child drawable.Drawable) *Bin {
	b := &Bin{policy: policy, child: child}
	b.Init(b)
	return b
}

func (b *Bin) Children() []drawable.Drawable { return []drawable.Drawable{b.child} }
func (b *Bin) Layout() layout.Layout         { return b.policy }

// Inner returns the wrapped child.
func (b *Bin) Inner() drawable.Drawable { return b.child }

// Opt shows or hides one child. A hidden child is held aside, not
// discarded: it keeps its state and returns on the next Display(true),
// but takes no part in layout, paint or events while hidden.
type Opt struct {
	drawable.Composite
	slot   *drawable.Optional
	hidden drawable.Drawable
}

// NewOpt wraps child, initially shown or hidden per show.
func NewOpt(child drawable.Drawable, show bool) *Opt {
	o := &Opt{slot: drawable.NewOptional(nil)}
	if show {
		o.slot.Set(child)
	} else {
		o.hidden = child
	}
	o.Init(o)
	return o
}

func (o *Opt) Children() []drawable.Drawable { return []drawable.Drawable{o.slot} }
func (o *Opt) Layout() layout.Layout         { return &layout.Stack{} }

// Display shows or hides the child.
func (o *Opt) Display(show bool) {
	if show == o.IsShowing() {
		return
	}
	if show {
		o.slot.Set(o.hidden)
		o.hidden = nil
	} else {
		o.hidden = o.slot.Inner()
		o.slot.Set(nil)
	}
}

// IsShowing reports whether the child is visible.
func (o *Opt) IsShowing() bool { return o.slot.Inner() != nil }

// Inner returns the child whether or not it is showing.
func (o *Opt) Inner() drawable.Drawable {
	if c := o.slot.Inner(); c != nil {
		return c
	}
	return o.hidden
}

// EitherOr shows exactly one of two children.
type EitherOr struct {
	drawable.Composite
	left, right *Opt
}

// NewEitherOr wraps two children, showing the left one first.
func NewEitherOr(left, right drawable.Drawable) *EitherOr {
	e := &EitherOr{left: NewOpt(left, true), right: NewOpt(right, false)}
	e.Init(e)
	return e
}

func (e *EitherOr) Children() []drawable.Drawable {
	return []drawable.Drawable{e.left, e.right}
}
func (e *EitherOr) Layout() layout.Layout { return &layout.Stack{} }

// DisplayLeft shows the left child when true, the right otherwise.
func (e *EitherOr) DisplayLeft(left bool) {
	e.left.Display(left)
	e.right.Display(!left)
}

// Left returns the left child.
func (e *EitherOr) Left() drawable.Drawable { return e.left.Inner() }

// Right returns the right child.
func (e *EitherOr) Right() drawable.Drawable { return e.right.Inner() }

// Enum shows exactly one of a set of named children. Insertion order
// is preserved; displaying an unknown name falls back to the first
// inserted child.
type Enum struct {
	drawable.Composite
	names   []string
	items   map[string]*Opt
	current string
}

// NewEnum returns an empty Enum.
func NewEnum() *Enum {
	e := &Enum{items: make(map[string]*Opt)}
	e.Init(e)
	return e
}

// Insert adds a named child, hidden unless it is the first. Inserting
// an existing name replaces that child, keeping its position.
func (e *Enum) Insert(name string, child drawable.Drawable) {
	if old, ok := e.items[name]; ok {
		show := old.IsShowing()
		e.items[name] = NewOpt(child, show)
		return
	}
	first := len(e.names) == 0
	e.names = append(e.names, name)
	e.items[name] = NewOpt(child, first)
	if first {
		e.current = name
	}
}

// Display shows the named child and hides the rest. An unknown name
// selects the first inserted child.
func (e *Enum) Display(name string) {
	if _, ok := e.items[name]; !ok {
		if len(e.names) == 0 {
			return
		}
		name = e.names[0]
	}
	e.current = name
	for n, opt := range e.items {
		opt.Display(n == name)
	}
}

// Current returns the name of the visible child, or "" when empty.
func (e *Enum) Current() string { return e.current }

func (e *Enum) Children() []drawable.Drawable {
	out := make([]drawable.Drawable, len(e.names))
	for i, n := range e.names {
		out[i] = e.items[n]
	}
	return out
}

func (e *Enum) Layout() layout.Layout { return &layout.Stack{} }
