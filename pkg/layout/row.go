package layout

// Row places children left to right with fixed spacing between them.
// The horizontal request is the sum of the children's widths plus
// spacing; the vertical request follows the configured sizing mode.
// Children are aligned vertically per the configured alignment.
type Row struct {
	Spacing float32
	Align   Align  // vertical alignment of each child
	Size    Sizing // vertical sizing mode
	Padding Padding
}

// NewRow constructs a row with explicit configuration.
func NewRow(spacing float32, align Align, size Sizing, padding Padding) *Row {
	return &Row{spacing, align, size, padding}
}

// RowCenter is a fit-sized row with vertically centered children.
func RowCenter(spacing float32) *Row { return &Row{Spacing: spacing, Align: AlignCenter} }

// RowStart is a fit-sized row with top-aligned children.
func RowStart(spacing float32) *Row { return &Row{Spacing: spacing, Align: AlignStart} }

// RowEnd is a fit-sized row with bottom-aligned children.
func RowEnd(spacing float32) *Row { return &Row{Spacing: spacing, Align: AlignEnd} }

// RequestSize sums widths and folds heights through the sizing mode.
func (r *Row) RequestSize(children []SizeRequest) SizeRequest {
	if len(children) == 0 {
		return r.Padding.AdjustRequest(SizeRequest{})
	}
	width := SpanSum(widthSpans(children))
	height := r.Size.resolve(heightSpans(children), SpanMax)
	spacing := r.Spacing * float32(len(children)-1)
	return r.Padding.AdjustRequest(
		NewSizeRequest(width.Min, height.Min, width.Max, height.Max).AddWidth(spacing))
}

// Build resolves each child's width through the flexible-space solver,
// then walks the children accumulating a running horizontal offset.
func (r *Row) Build(size Size, children []SizeRequest) []Area {
	inner := r.Padding.AdjustSize(size)
	widths := Expand(widthSpans(children), inner.W, r.Spacing)

	areas := make([]Area, len(children))
	offset := float32(0)
	for i, c := range children {
		sz := c.Get(Size{widths[i], inner.H})
		off := r.Padding.AdjustOffset(Offset{offset, r.Align.Get(inner.H, sz.H)})
		offset += sz.W + r.Spacing
		areas[i] = Area{Offset: off, Size: sz}
	}
	return areas
}
