// Package layout implements the size-negotiation core of the toolkit:
// min/max constraint envelopes, the flexible-space solver, and the
// layout policies (Stack, Row, Column, Wrap) that turn child
// constraints into concrete placements.
package layout

import "math"

// MaxDim is the unbounded extent used by requests that can fill any
// available space.
const MaxDim = float32(math.MaxFloat32)

// Size is a concrete width/height pair in pixels.
type Size struct {
	W, H float32
}

// Offset is a position within a parent's local coordinate space.
type Offset struct {
	X, Y float32
}

// Area is the resolved placement of one child: its offset within the
// parent plus its allotted size. Areas are produced fresh on every
// build pass and never persist across frames.
type Area struct {
	Offset Offset
	Size   Size
}

// Layout converts the size requests of an ordered child list into an
// aggregate request (upward pass) and, given an allotted size, into
// one Area per child in the same order (downward pass).
type Layout interface {
	// RequestSize aggregates the children's requests into the
	// layout's own request.
	RequestSize(children []SizeRequest) SizeRequest

	// Build allocates the allotted size to the children. The result
	// has exactly one Area per child, in input order.
	Build(size Size, children []SizeRequest) []Area
}

// Span is a min/max pair on a single axis.
type Span struct {
	Min, Max float32
}

// SpanMax folds spans by per-field maximum; the aggregate of
// overlaid items.
func SpanMax(spans []Span) Span {
	var out Span
	for i, s := range spans {
		if i == 0 {
			out = s
			continue
		}
		out.Min = max(out.Min, s.Min)
		out.Max = max(out.Max, s.Max)
	}
	return out
}

// SpanSum folds spans by addition; the aggregate of items placed end
// to end.
func SpanSum(spans []Span) Span {
	var out Span
	for _, s := range spans {
		out.Min += s.Min
		out.Max += s.Max
	}
	return out
}

// widthSpans and heightSpans split child requests per axis.
func widthSpans(children []SizeRequest) []Span {
	out := make([]Span, len(children))
	for i, c := range children {
		out[i] = c.WidthSpan()
	}
	return out
}

func heightSpans(children []SizeRequest) []Span {
	out := make([]Span, len(children))
	for i, c := range children {
		out[i] = c.HeightSpan()
	}
	return out
}

// Align positions an item within the space left over on one axis.
type Align struct {
	mode   alignMode
	offset float32
}

type alignMode uint8

const (
	alignStart alignMode = iota
	alignCenter
	alignEnd
	alignStatic
)

// The fixed alignments. The zero Align is AlignStart.
var (
	AlignStart  = Align{mode: alignStart}
	AlignCenter = Align{mode: alignCenter}
	AlignEnd    = Align{mode: alignEnd}
)

// AlignStatic pins the item at a fixed offset regardless of the
// available space.
func AlignStatic(offset float32) Align {
	return Align{mode: alignStatic, offset: offset}
}

// Get resolves the item's offset given the available extent and the
// item's own extent on that axis.
func (a Align) Get(available, item float32) float32 {
	switch a.mode {
	case alignCenter:
		return (available - item) / 2
	case alignEnd:
		return available - item
	case alignStatic:
		return a.offset
	default:
		return 0
	}
}

// Sizing determines how a layout resolves its own extent on one axis.
// The zero Sizing is SizeFit.
type Sizing struct {
	mode   sizingMode
	static float32
	custom func([]Span) Span
}

type sizingMode uint8

const (
	sizeFit sizingMode = iota
	sizeFill
	sizeStatic
	sizeCustom
)

var (
	// SizeFit takes the size of the children, folded by the
	// layout's own aggregation rule.
	SizeFit = Sizing{mode: sizeFit}

	// SizeFill expands to the available space, floored by the
	// children's combined minimum.
	SizeFill = Sizing{mode: sizeFill}
)

// SizeStatic fixes the extent to v.
func SizeStatic(v float32) Sizing {
	return Sizing{mode: sizeStatic, static: v}
}

// SizeCustom resolves the extent with a caller-supplied fold over the
// children's spans.
func SizeCustom(fn func([]Span) Span) Sizing {
	return Sizing{mode: sizeCustom, custom: fn}
}

// resolve folds the children's spans on one axis into the layout's
// own span, using fit as the aggregation for SizeFit.
func (s Sizing) resolve(spans []Span, fit func([]Span) Span) Span {
	switch s.mode {
	case sizeFill:
		floor := float32(0)
		for i, sp := range spans {
			if i == 0 || sp.Min > floor {
				floor = sp.Min
			}
		}
		return Span{floor, MaxDim}
	case sizeStatic:
		return Span{s.static, s.static}
	case sizeCustom:
		return s.custom(spans)
	default:
		return fit(spans)
	}
}

// Padding is the inset applied inside a layout, in pixels.
type Padding struct {
	Left, Top, Right, Bottom float32
}

// Pad returns uniform padding on all four sides.
func Pad(p float32) Padding {
	return Padding{p, p, p, p}
}

// AdjustSize shrinks an outer size to the padded content size.
func (p Padding) AdjustSize(size Size) Size {
	return Size{size.W - p.Left - p.Right, size.H - p.Top - p.Bottom}
}

// AdjustOffset shifts a content-relative offset into the padded frame.
func (p Padding) AdjustOffset(offset Offset) Offset {
	return Offset{offset.X + p.Left, offset.Y + p.Top}
}

// AdjustRequest grows a content request to cover the padding.
func (p Padding) AdjustRequest(request SizeRequest) SizeRequest {
	return request.Add(p.Left+p.Right, p.Top+p.Bottom)
}
