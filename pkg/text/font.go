// Package text provides font loading and string measurement for text
// primitives. Measurement runs through the same rasterizer stack used
// for painting, so requested sizes match painted sizes.
package text

import (
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Font is a parsed font that produces faces on demand. Faces are
// cached per size; a Font is safe for concurrent use.
type Font struct {
	name string
	sfnt *sfnt.Font

	mu    sync.Mutex
	faces map[float32]font.Face
}

// Load parses TTF or OTF font data.
func Load(name string, data []byte) (*Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return &Font{name: name, sfnt: f, faces: make(map[float32]font.Face)}, nil
}

var (
	defaultOnce sync.Once
	defaultFont *Font
)

// Default returns the bundled regular font. The font data ships with
// the module, so Default never fails.
func Default() *Font {
	defaultOnce.Do(func() {
		f, err := Load("Go Regular", goregular.TTF)
		if err != nil {
			panic("text: bundled font failed to parse: " + err.Error())
		}
		defaultFont = f
	})
	return defaultFont
}

// Name returns the font's display name.
func (f *Font) Name() string { return f.name }

// Face returns a rendering face at the given pixel size.
func (f *Font) Face(size float32) (font.Face, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.sfnt, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	f.faces[size] = face
	return face, nil
}

// A shared context is enough for measurement; it never rasterizes.
var (
	measureMu  sync.Mutex
	measureCtx = gg.NewContext(1, 1)
)

// Measure returns the painted width and height of s at the given
// pixel size. If a face cannot be produced the result falls back to a
// rough estimate so layout can proceed.
func (f *Font) Measure(s string, size float32) (width, height float32) {
	face, err := f.Face(size)
	if err != nil {
		return float32(len(s)) * size * 0.6, size * 1.2
	}
	measureMu.Lock()
	defer measureMu.Unlock()
	measureCtx.SetFontFace(face)
	w, h := measureCtx.MeasureString(s)
	return float32(w), float32(h)
}
