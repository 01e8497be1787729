package layout

import "sync"

// Column places children top to bottom with fixed spacing between
// them. The vertical request is the sum of the children's heights
// plus spacing; the horizontal request follows the configured sizing
// mode.
//
// A scrollable column additionally holds a scroll offset that
// persists across frames. While scrollable, the column's requested
// minimum collapses to zero so it never forces parent growth, and at
// build time the scroll value is clamped to the overflowing content
// extent and subtracted from every child's vertical offset.
type Column struct {
	Spacing float32
	Align   Align  // horizontal alignment of each child
	Size    Sizing // horizontal sizing mode
	Padding Padding

	scroll *scrollCell
}

// scrollCell is the one piece of cross-frame mutable state a column
// may carry. The mutex guards read-modify-write when a layout
// instance is shared across goroutines.
type scrollCell struct {
	mu  sync.Mutex
	val float32
}

// NewColumn constructs a column with explicit configuration.
func NewColumn(spacing float32, align Align, size Sizing, padding Padding, scrollable bool) *Column {
	c := &Column{Spacing: spacing, Align: align, Size: size, Padding: padding}
	if scrollable {
		c.scroll = &scrollCell{}
	}
	return c
}

// ColumnCenter is a fill-width column with horizontally centered
// children.
func ColumnCenter(spacing float32) *Column {
	return &Column{Spacing: spacing, Align: AlignCenter, Size: SizeFill}
}

// ColumnStart is a fit-sized column with left-aligned children.
func ColumnStart(spacing float32) *Column { return &Column{Spacing: spacing, Align: AlignStart} }

// ColumnEnd is a fit-sized column with right-aligned children.
func ColumnEnd(spacing float32) *Column { return &Column{Spacing: spacing, Align: AlignEnd} }

// AdjustScroll shifts the scroll offset by delta. A no-op on
// non-scrollable columns. The value is clamped on the next build.
func (c *Column) AdjustScroll(delta float32) {
	if c.scroll == nil {
		return
	}
	c.scroll.mu.Lock()
	c.scroll.val += delta
	c.scroll.mu.Unlock()
}

// SetScroll makes the column scrollable and sets the offset directly.
func (c *Column) SetScroll(val float32) {
	if c.scroll == nil {
		c.scroll = &scrollCell{}
	}
	c.scroll.mu.Lock()
	c.scroll.val = val
	c.scroll.mu.Unlock()
}

// Scroll reports the current scroll offset and whether the column is
// scrollable.
func (c *Column) Scroll() (float32, bool) {
	if c.scroll == nil {
		return 0, false
	}
	c.scroll.mu.Lock()
	defer c.scroll.mu.Unlock()
	return c.scroll.val, true
}

// RequestSize sums heights and folds widths through the sizing mode.
// A scrollable column collapses its minimums to zero: overflowing
// content scrolls instead of growing the parent.
func (c *Column) RequestSize(children []SizeRequest) SizeRequest {
	if len(children) == 0 {
		return c.Padding.AdjustRequest(SizeRequest{})
	}
	width := c.Size.resolve(widthSpans(children), SpanMax)
	height := SpanSum(heightSpans(children))
	spacing := c.Spacing * float32(len(children)-1)
	if c.scroll != nil {
		return c.Padding.AdjustRequest(
			NewSizeRequest(0, 0, width.Max, height.Max).AddHeight(spacing))
	}
	return c.Padding.AdjustRequest(
		NewSizeRequest(width.Min, height.Min, width.Max, height.Max).AddHeight(spacing))
}

// Build resolves each child's height through the flexible-space
// solver, then walks the children accumulating a running vertical
// offset. On scrollable columns the clamped scroll value is
// subtracted from every offset.
func (c *Column) Build(size Size, children []SizeRequest) []Area {
	inner := c.Padding.AdjustSize(size)
	heights := Expand(heightSpans(children), inner.H, c.Spacing)

	scroll := float32(0)
	if c.scroll != nil {
		content := float32(0)
		for _, child := range children {
			content += child.MinHeight()
		}
		if len(children) > 1 {
			content += c.Spacing * float32(len(children)-1)
		}
		maxScroll := max(content-inner.H, 0)

		c.scroll.mu.Lock()
		c.scroll.val = min(max(c.scroll.val, 0), maxScroll)
		scroll = c.scroll.val
		c.scroll.mu.Unlock()
	}

	areas := make([]Area, len(children))
	offset := float32(0)
	for i, child := range children {
		sz := child.Get(Size{inner.W, heights[i]})
		off := c.Padding.AdjustOffset(Offset{c.Align.Get(inner.W, sz.W), offset})
		off.Y -= scroll
		offset += sz.H + c.Spacing
		areas[i] = Area{Offset: off, Size: sz}
	}
	return areas
}
