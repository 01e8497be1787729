package layout

import "testing"

func TestSizeRequestClampIdempotent(t *testing.T) {
	requests := []SizeRequest{
		NewSizeRequest(0, 0, 100, 100),
		NewSizeRequest(10, 20, 30, 40),
		Fixed(Size{50, 50}),
		Fill(),
	}
	sizes := []Size{{0, 0}, {5, 5}, {25, 35}, {1000, 1000}, {50, 50}}

	for _, r := range requests {
		for _, s := range sizes {
			once := r.Get(s)
			twice := r.Get(once)
			if once != twice {
				t.Errorf("clamp not idempotent: %+v -> %v then %v", s, once, twice)
			}
		}
	}
}

func TestSizeRequestClampBounds(t *testing.T) {
	r := NewSizeRequest(10, 20, 30, 40)
	sizes := []Size{{0, 0}, {15, 25}, {100, 100}, {-5, -5}}

	for _, s := range sizes {
		got := r.Get(s)
		if got.W < r.MinWidth() || got.W > r.MaxWidth() {
			t.Errorf("Get(%+v).W = %v, want within [%v, %v]", s, got.W, r.MinWidth(), r.MaxWidth())
		}
		if got.H < r.MinHeight() || got.H > r.MaxHeight() {
			t.Errorf("Get(%+v).H = %v, want within [%v, %v]", s, got.H, r.MinHeight(), r.MaxHeight())
		}
	}
}

func TestSizeRequestInvertedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for min width > max width")
		}
	}()
	NewSizeRequest(10, 0, 5, 0)
}

func TestSizeRequestInvertedHeightPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for min height > max height")
		}
	}()
	NewSizeRequest(0, 10, 0, 5)
}

func TestSizeRequestAdd(t *testing.T) {
	r := NewSizeRequest(10, 10, 20, 20).Add(5, 3)
	if r.MinWidth() != 15 || r.MaxWidth() != 25 {
		t.Errorf("width bounds = [%v, %v], want [15, 25]", r.MinWidth(), r.MaxWidth())
	}
	if r.MinHeight() != 13 || r.MaxHeight() != 23 {
		t.Errorf("height bounds = [%v, %v], want [13, 23]", r.MinHeight(), r.MaxHeight())
	}
}

func TestSizeRequestRemoveHeight(t *testing.T) {
	r := NewSizeRequest(0, 10, 100, 50).RemoveHeight(10)
	if r.MinHeight() != 0 || r.MaxHeight() != 40 {
		t.Errorf("height bounds = [%v, %v], want [0, 40]", r.MinHeight(), r.MaxHeight())
	}
}

func TestSizeRequestMax(t *testing.T) {
	a := NewSizeRequest(10, 5, 20, 15)
	b := NewSizeRequest(5, 10, 30, 10)
	got := a.Max(b)
	want := NewSizeRequest(10, 10, 30, 15)
	if got != want {
		t.Errorf("Max = %+v, want %+v", got, want)
	}
}

func TestFixedRequest(t *testing.T) {
	r := Fixed(Size{40, 30})
	if got := r.Get(Size{0, 0}); got != (Size{40, 30}) {
		t.Errorf("fixed request clamped to %+v, want {40 30}", got)
	}
	if got := r.Get(Size{999, 999}); got != (Size{40, 30}) {
		t.Errorf("fixed request clamped to %+v, want {40 30}", got)
	}
}
