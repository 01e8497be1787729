package layout

import "sync"

// Wrap flows children left to right and breaks to a new line when the
// next child would exceed the allotted width. Each completed line is
// aligned horizontally within the leftover width; lines stack
// vertically with spacing between them.
//
// RequestSize needs to know the eventual line width before it has
// been allotted, so Wrap remembers the width it was last built at and
// uses it to predict wrapping for the next request. The prediction is
// stale for exactly one frame after a resize.
type Wrap struct {
	XSpacing float32
	YSpacing float32
	XAlign   Align // alignment of each line within leftover width
	YAlign   Align // alignment of each child within its line height
	Padding  Padding

	width widthCell
}

type widthCell struct {
	mu   sync.Mutex
	hint float32
}

func (w *widthCell) get() float32 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.hint
}

func (w *widthCell) set(v float32) {
	w.mu.Lock()
	w.hint = v
	w.mu.Unlock()
}

// NewWrap constructs a wrap with centered lines.
func NewWrap(xSpacing, ySpacing float32) *Wrap {
	return &Wrap{XSpacing: xSpacing, YSpacing: ySpacing, XAlign: AlignCenter, YAlign: AlignCenter}
}

// WrapStart left-aligns each line.
func WrapStart(xSpacing, ySpacing float32) *Wrap {
	return &Wrap{XSpacing: xSpacing, YSpacing: ySpacing, XAlign: AlignStart, YAlign: AlignCenter}
}

// WrapEnd right-aligns each line.
func WrapEnd(xSpacing, ySpacing float32) *Wrap {
	return &Wrap{XSpacing: xSpacing, YSpacing: ySpacing, XAlign: AlignEnd, YAlign: AlignCenter}
}

// RequestSize predicts line breaks against the last built width and
// requests the resulting extent as a minimum, remaining free to fill
// any larger space.
func (w *Wrap) RequestSize(children []SizeRequest) SizeRequest {
	avail := w.width.get() - w.Padding.Left - w.Padding.Right

	var (
		lineW, lineH float32
		maxW, totalH float32
		lineNonEmpty bool
		startedALine bool
	)
	for _, c := range children {
		cw, ch := c.MinWidth(), c.MinHeight()
		add := cw
		if lineNonEmpty {
			add += w.XSpacing
		}
		if lineNonEmpty && lineW+add > avail {
			maxW = max(maxW, lineW)
			totalH += lineH + w.YSpacing
			lineW, lineH, lineNonEmpty = 0, 0, false
			add = cw
		}
		lineW += add
		lineH = max(lineH, ch)
		lineNonEmpty = true
		startedALine = true
	}
	if startedALine {
		maxW = max(maxW, lineW)
		totalH += lineH
	}
	return NewSizeRequest(
		maxW+w.Padding.Left+w.Padding.Right,
		totalH+w.Padding.Top+w.Padding.Bottom,
		MaxDim, MaxDim,
	)
}

// Build re-derives line breaks against the allotted width, remembers
// that width for the next request pass, and places each line per the
// horizontal alignment.
func (w *Wrap) Build(size Size, children []SizeRequest) []Area {
	w.width.set(size.W)
	avail := size.W - w.Padding.Left - w.Padding.Right

	type item struct{ w, h float32 }
	var (
		areas        []Area
		line         []item
		lineW, lineH float32
	)
	y := w.Padding.Top

	flush := func() {
		if len(line) == 0 {
			return
		}
		x := w.Padding.Left + w.XAlign.Get(avail, lineW)
		for _, it := range line {
			areas = append(areas, Area{
				Offset: Offset{x, y + w.YAlign.Get(lineH, it.h)},
				Size:   Size{it.w, it.h},
			})
			x += it.w + w.XSpacing
		}
	}

	for _, c := range children {
		cw, ch := c.MinWidth(), c.MinHeight()
		add := cw
		if len(line) > 0 {
			add += w.XSpacing
		}
		// An oversized child still gets its own line; only a
		// non-empty line wraps.
		if len(line) > 0 && lineW+add > avail {
			flush()
			y += lineH + w.YSpacing
			line, lineW, lineH = line[:0], 0, 0
			add = cw
		}
		line = append(line, item{cw, ch})
		lineW += add
		lineH = max(lineH, ch)
	}
	flush()
	return areas
}
