package layout

// Stack overlays its children. Width and height are resolved
// independently through the sizing modes; every child receives the
// full padded stack size clamped to its own request and is positioned
// by the per-axis alignment.
//
// The zero Stack fits its children and aligns them at the start.
type Stack struct {
	XAlign, YAlign Align
	XSize, YSize   Sizing
	Padding        Padding
}

// NewStack constructs a stack with explicit alignment, sizing and
// padding.
func NewStack(xAlign, yAlign Align, xSize, ySize Sizing, padding Padding) *Stack {
	return &Stack{xAlign, yAlign, xSize, ySize, padding}
}

// CenterStack centers children in both axes, fitting their size.
func CenterStack() *Stack {
	return &Stack{XAlign: AlignCenter, YAlign: AlignCenter}
}

// FillStack centers children and expands to the available space.
func FillStack() *Stack {
	return &Stack{XAlign: AlignCenter, YAlign: AlignCenter, XSize: SizeFill, YSize: SizeFill}
}

// RequestSize aggregates children by per-axis maximum. A stack with no
// children requests zero size.
func (s *Stack) RequestSize(children []SizeRequest) SizeRequest {
	if len(children) == 0 {
		return s.Padding.AdjustRequest(SizeRequest{})
	}
	width := s.XSize.resolve(widthSpans(children), SpanMax)
	height := s.YSize.resolve(heightSpans(children), SpanMax)
	return s.Padding.AdjustRequest(NewSizeRequest(width.Min, height.Min, width.Max, height.Max))
}

// Build gives every child the padded stack size clamped to its own
// request and aligns it per axis.
func (s *Stack) Build(size Size, children []SizeRequest) []Area {
	inner := s.Padding.AdjustSize(size)
	areas := make([]Area, len(children))
	for i, c := range children {
		sz := c.Get(inner)
		off := Offset{
			X: s.XAlign.Get(inner.W, sz.W),
			Y: s.YAlign.Get(inner.H, sz.H),
		}
		areas[i] = Area{Offset: s.Padding.AdjustOffset(off), Size: sz}
	}
	return areas
}
