package layout

import "fmt"

// SizeRequest is the minimum and maximum dimensions a drawable is able
// to occupy. Layouts use it to decide how to allocate space during a
// build pass. A SizeRequest is an immutable value; every combinator
// returns a new one.
type SizeRequest struct {
	minWidth, minHeight float32
	maxWidth, maxHeight float32
}

// NewSizeRequest constructs a request from explicit bounds. A minimum
// greater than its maximum on either axis is a contract violation and
// panics: accepting it would corrupt every layout computation that
// consumes the request downstream.
func NewSizeRequest(minWidth, minHeight, maxWidth, maxHeight float32) SizeRequest {
	if minWidth > maxWidth {
		panic(fmt.Sprintf("layout: min width %v greater than max width %v", minWidth, maxWidth))
	}
	if minHeight > maxHeight {
		panic(fmt.Sprintf("layout: min height %v greater than max height %v", minHeight, maxHeight))
	}
	return SizeRequest{minWidth, minHeight, maxWidth, maxHeight}
}

// Fixed returns a request whose minimum and maximum are both size.
func Fixed(size Size) SizeRequest {
	return SizeRequest{size.W, size.H, size.W, size.H}
}

// Fill returns a request that can expand to any available space.
func Fill() SizeRequest {
	return SizeRequest{0, 0, MaxDim, MaxDim}
}

// MinWidth returns the minimum width.
func (r SizeRequest) MinWidth() float32 { return r.minWidth }

// MinHeight returns the minimum height.
func (r SizeRequest) MinHeight() float32 { return r.minHeight }

// MaxWidth returns the maximum width.
func (r SizeRequest) MaxWidth() float32 { return r.maxWidth }

// MaxHeight returns the maximum height.
func (r SizeRequest) MaxHeight() float32 { return r.maxHeight }

// Get clamps a proposed size into the request's bounds per axis. This
// is the single authoritative clamp: every place a concrete size is
// produced from a constraint goes through it.
func (r SizeRequest) Get(size Size) Size {
	return Size{
		W: min(r.maxWidth, max(r.minWidth, size.W)),
		H: min(r.maxHeight, max(r.minHeight, size.H)),
	}
}

// Add shifts both axes of the request by the given deltas.
func (r SizeRequest) Add(w, h float32) SizeRequest {
	return r.AddWidth(w).AddHeight(h)
}

// AddWidth shifts the width bounds by w, keeping flexibility intact.
func (r SizeRequest) AddWidth(w float32) SizeRequest {
	return NewSizeRequest(r.minWidth+w, r.minHeight, r.maxWidth+w, r.maxHeight)
}

// AddHeight shifts the height bounds by h.
func (r SizeRequest) AddHeight(h float32) SizeRequest {
	return NewSizeRequest(r.minWidth, r.minHeight+h, r.maxWidth, r.maxHeight+h)
}

// RemoveHeight shifts the height bounds down by h.
func (r SizeRequest) RemoveHeight(h float32) SizeRequest {
	return NewSizeRequest(r.minWidth, r.minHeight-h, r.maxWidth, r.maxHeight-h)
}

// Max combines two requests by taking the per-field maximum. Overlay
// layouts use it to aggregate sibling constraints.
func (r SizeRequest) Max(other SizeRequest) SizeRequest {
	return NewSizeRequest(
		max(r.minWidth, other.minWidth),
		max(r.minHeight, other.minHeight),
		max(r.maxWidth, other.maxWidth),
		max(r.maxHeight, other.maxHeight),
	)
}

// WidthSpan returns the request's bounds on the horizontal axis.
func (r SizeRequest) WidthSpan() Span { return Span{r.minWidth, r.maxWidth} }

// HeightSpan returns the request's bounds on the vertical axis.
func (r SizeRequest) HeightSpan() Span { return Span{r.minHeight, r.maxHeight} }
