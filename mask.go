package sparks

import (
	"fmt"
	"image"
	"math"
	"math/rand/v2"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// MaskPoint is one sampled opaque pixel of a rendered phrase. X and Y are
// normalized to [0, 1] by the offscreen layer size.
type MaskPoint struct {
	X, Y         float64
	OpacityPhase float64
	TwinklePhase float64
}

// MaskGroup holds the points sampled from one TextSegment.
type MaskGroup struct {
	Color  HSL
	Points []MaskPoint
}

// Mask is the cached point cloud of a scene, one group per segment.
// A Mask is never modified once built.
type Mask []MaskGroup

// Len returns the total number of points across all groups.
func (m Mask) Len() int {
	n := 0
	for i := range m {
		n += len(m[i].Points)
	}
	return n
}

// MaskOptions controls the offscreen text layer. Zero fields take defaults.
type MaskOptions struct {
	// LayerWidth is the logical width of the offscreen layer in pixels.
	// Its height is derived from the surface aspect ratio.
	LayerWidth int
	// Fill is the fraction of the layer width the full text should span.
	Fill float64
	// BaseFontSize is the size used for the initial measurement.
	BaseFontSize float64
	// MaxHeight caps the font size as a fraction of the layer height.
	MaxHeight float64
}

const (
	defaultLayerWidth   = 200
	defaultTextFill     = 0.8
	defaultBaseFontSize = 20
	defaultMaxHeight    = 0.8
	baselineShift       = 0.35
)

func (o MaskOptions) withDefaults() MaskOptions {
	if o.LayerWidth <= 0 {
		o.LayerWidth = defaultLayerWidth
	}
	if o.Fill <= 0 {
		o.Fill = defaultTextFill
	}
	if o.BaseFontSize <= 0 {
		o.BaseFontSize = defaultBaseFontSize
	}
	if o.MaxHeight <= 0 {
		o.MaxHeight = defaultMaxHeight
	}
	return o
}

// MaskBuilder turns scene text into point-cloud masks by rasterizing it on a
// private offscreen layer. It never touches the main surface.
type MaskBuilder struct {
	font *Font
	opts MaskOptions
	rng  *rand.Rand
}

// NewMaskBuilder creates a builder. A nil font uses DefaultFont and a nil rng
// uses an unseeded generator.
func NewMaskBuilder(f *Font, opts MaskOptions, rng *rand.Rand) *MaskBuilder {
	if f == nil {
		f = DefaultFont()
	}
	if rng == nil {
		rng = newRand(0)
	}
	return &MaskBuilder{font: f, opts: opts.withDefaults(), rng: rng}
}

// maskLayout is the placement of a scene's text on the layer.
type maskLayout struct {
	width, height int
	size          float64   // font size in pixels; 0 when nothing can be drawn
	baseline      float64   // y of the text baseline
	offsets       []float64 // x of each segment's first glyph
}

// layout picks the font size so the whole line spans Fill of the layer width,
// capped by the layer height, and centers it.
func (b *MaskBuilder) layout(segments []TextSegment, aspect float64) (maskLayout, error) {
	if aspect <= 0 || math.IsNaN(aspect) || math.IsInf(aspect, 0) {
		aspect = 1
	}
	l := maskLayout{
		width:   b.opts.LayerWidth,
		height:  max(1, int(float64(b.opts.LayerWidth)/aspect)),
		offsets: make([]float64, len(segments)),
	}

	all := Scene{Segments: segments}.Text()
	baseW, err := b.font.MeasureString(all, b.opts.BaseFontSize)
	if err != nil {
		return l, err
	}
	if baseW <= 0 {
		return l, nil
	}

	rel := baseW / (float64(l.width) * b.opts.Fill)
	size := math.Min(float64(l.height)*b.opts.MaxHeight, math.Floor(b.opts.BaseFontSize/rel))
	if size < 1 {
		return l, nil
	}
	l.size = size

	fullW, err := b.font.MeasureString(all, size)
	if err != nil {
		return l, err
	}
	left := (float64(l.width) - fullW) / 2
	l.baseline = float64(l.height)/2 + size*baselineShift

	for i, seg := range segments {
		l.offsets[i] = left
		w, err := b.font.MeasureString(seg.Text, size)
		if err != nil {
			return l, err
		}
		left += w
	}
	return l, nil
}

// rasterize clears dst and draws text at (left, baseline).
func (b *MaskBuilder) rasterize(dst *image.Alpha, l maskLayout, text string, left float64) error {
	clear(dst.Pix)
	if l.size <= 0 || text == "" {
		return nil
	}
	face, err := b.font.Face(l.size)
	if err != nil {
		return err
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.Point26_6{X: floatToFixed(left), Y: floatToFixed(l.baseline)},
	}
	d.DrawString(text)
	return nil
}

// Build produces the mask for one scene. Every pixel with non-zero alpha
// becomes a point. Empty text yields an empty group.
func (b *MaskBuilder) Build(segments []TextSegment, aspect float64) (Mask, error) {
	l, err := b.layout(segments, aspect)
	if err != nil {
		return nil, fmt.Errorf("sparks: layout mask: %w", err)
	}

	layer := image.NewAlpha(image.Rect(0, 0, l.width, l.height))
	mask := make(Mask, len(segments))
	for i, seg := range segments {
		if err := b.rasterize(layer, l, seg.Text, l.offsets[i]); err != nil {
			return nil, fmt.Errorf("sparks: rasterize %q: %w", seg.Text, err)
		}
		mask[i] = MaskGroup{Color: seg.Color, Points: b.sample(layer)}
	}
	return mask, nil
}

// BuildAll builds one mask per scene, in scene order.
func (b *MaskBuilder) BuildAll(scenes []Scene, aspect float64) ([]Mask, error) {
	masks := make([]Mask, len(scenes))
	for i, sc := range scenes {
		m, err := b.Build(sc.Segments, aspect)
		if err != nil {
			return nil, fmt.Errorf("scene %d: %w", i, err)
		}
		masks[i] = m
	}
	return masks, nil
}

func (b *MaskBuilder) sample(layer *image.Alpha) []MaskPoint {
	bounds := layer.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	var pts []MaskPoint
	for y := 0; y < bounds.Dy(); y++ {
		row := layer.Pix[y*layer.Stride : y*layer.Stride+bounds.Dx()]
		for x, a := range row {
			if a == 0 {
				continue
			}
			pts = append(pts, MaskPoint{
				X:            float64(x) / w,
				Y:            float64(y) / h,
				OpacityPhase: b.rng.Float64(),
				TwinklePhase: b.rng.Float64(),
			})
		}
	}
	return pts
}
