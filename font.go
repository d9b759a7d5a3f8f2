package sparks

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Font wraps a parsed TrueType/OpenType font for offscreen text rasterization.
// Faces are created per size on demand.
type Font struct {
	src   *opentype.Font
	faces map[float64]font.Face
}

// LoadFont parses raw TTF/OTF data.
func LoadFont(ttfData []byte) (*Font, error) {
	src, err := opentype.Parse(ttfData)
	if err != nil {
		return nil, fmt.Errorf("sparks: failed to parse TTF data: %w", err)
	}
	return &Font{src: src, faces: make(map[float64]font.Face)}, nil
}

// DefaultFont returns Go Regular.
func DefaultFont() *Font {
	f, err := LoadFont(goregular.TTF)
	if err != nil {
		panic(fmt.Sprintf("sparks: embedded Go Regular font: %v", err))
	}
	return f
}

// Face returns an unhinted face at the given pixel size (72 DPI).
func (f *Font) Face(size float64) (font.Face, error) {
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("sparks: face at size %v: %w", size, err)
	}
	f.faces[size] = face
	return face, nil
}

// MeasureString returns the advance width of s in pixels at the given size.
func (f *Font) MeasureString(s string, size float64) (float64, error) {
	face, err := f.Face(size)
	if err != nil {
		return 0, err
	}
	return fixedToFloat(font.MeasureString(face, s)), nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
