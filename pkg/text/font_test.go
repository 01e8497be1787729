package text

import "testing"

func TestDefaultFontLoads(t *testing.T) {
	f := Default()
	if f == nil {
		t.Fatal("no default font")
	}
	if f.Name() == "" {
		t.Error("default font has no name")
	}
	if f != Default() {
		t.Error("Default is not a singleton")
	}
}

func TestMeasureGrowsWithContent(t *testing.T) {
	f := Default()
	short, _ := f.Measure("hi", 16)
	long, _ := f.Measure("hello, world", 16)
	if short <= 0 {
		t.Fatalf("short width = %v, want > 0", short)
	}
	if long <= short {
		t.Errorf("longer string measured %v, shorter %v", long, short)
	}
}

func TestMeasureGrowsWithSize(t *testing.T) {
	f := Default()
	small, smallH := f.Measure("prism", 12)
	big, bigH := f.Measure("prism", 24)
	if big <= small {
		t.Errorf("width at 24px (%v) not larger than at 12px (%v)", big, small)
	}
	if bigH <= smallH {
		t.Errorf("height at 24px (%v) not larger than at 12px (%v)", bigH, smallH)
	}
}

func TestFaceCached(t *testing.T) {
	f := Default()
	a, err := f.Face(18)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	b, err := f.Face(18)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if a != b {
		t.Error("same size produced distinct faces")
	}
}
