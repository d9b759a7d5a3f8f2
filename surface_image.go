package sparks

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// ImageSurface is a CPU surface backed by a premultiplied *image.RGBA. It
// fills glyph curves with an anti-aliasing rasterizer and supports the same
// blend modes as the GPU surface. Used for headless rendering and tests.
type ImageSurface struct {
	img    *image.RGBA
	blend  BlendMode
	raster *vector.Rasterizer
	cov    *image.Alpha
}

// NewImageSurface allocates a width x height surface.
func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		raster: vector.NewRasterizer(1, 1),
	}
}

// Image returns the backing image.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

func (s *ImageSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *ImageSurface) Clear(c Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c.toRGBA()), image.Point{}, draw.Src)
}

func (s *ImageSurface) SetBlend(mode BlendMode) {
	s.blend = mode
}

func (s *ImageSurface) Flush() {}

func (s *ImageSurface) FillGlyph(g *Glyph, x, y, scale float64, c Color) {
	cr, cg, cb, ca := c.premultiplied()
	if ca <= 0 || scale <= 0 {
		return
	}

	minX, minY, maxX, maxY := g.Bounds()
	r := image.Rect(
		int(math.Floor(x+minX*scale)), int(math.Floor(y+minY*scale)),
		int(math.Ceil(x+maxX*scale)), int(math.Ceil(y+maxY*scale)),
	).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	bw, bh := r.Dx(), r.Dy()

	ox, oy := x-float64(r.Min.X), y-float64(r.Min.Y)
	pt := func(v Vec2) (float32, float32) {
		return float32(ox + v.X*scale), float32(oy + v.Y*scale)
	}

	s.raster.Reset(bw, bh)
	s.raster.DrawOp = draw.Src
	s.raster.MoveTo(pt(g.Start))
	for _, cv := range g.Curves {
		bx, by := pt(cv.C1)
		cx, cy := pt(cv.C2)
		dx, dy := pt(cv.To)
		s.raster.CubeTo(bx, by, cx, cy, dx, dy)
	}
	s.raster.ClosePath()

	cov := s.coverage(bw, bh)
	s.raster.Draw(cov, cov.Bounds(), image.Opaque, image.Point{})

	for j := 0; j < bh; j++ {
		crow := cov.Pix[j*cov.Stride : j*cov.Stride+bw]
		off := s.img.PixOffset(r.Min.X, r.Min.Y+j)
		for i, m := range crow {
			if m == 0 {
				continue
			}
			k := float64(m) / 255
			p := s.img.Pix[off+i*4 : off+i*4+4 : off+i*4+4]
			composite(p, cr*k, cg*k, cb*k, ca*k, s.blend)
		}
	}
}

// coverage returns a cleared bw x bh alpha buffer, reusing the previous one
// when it is large enough.
func (s *ImageSurface) coverage(bw, bh int) *image.Alpha {
	if s.cov == nil || s.cov.Rect.Dx() < bw || s.cov.Rect.Dy() < bh {
		w, h := bw, bh
		if s.cov != nil {
			w, h = max(w, s.cov.Rect.Dx()), max(h, s.cov.Rect.Dy())
		}
		s.cov = image.NewAlpha(image.Rect(0, 0, w, h))
	}
	sub := s.cov.SubImage(image.Rect(0, 0, bw, bh)).(*image.Alpha)
	for j := 0; j < bh; j++ {
		clear(sub.Pix[j*sub.Stride : j*sub.Stride+bw])
	}
	return sub
}

// composite blends a premultiplied source (components in [0, 1]) into the
// premultiplied 8-bit pixel p.
func composite(p []uint8, r, g, b, a float64, mode BlendMode) {
	src := [4]float64{r * 255, g * 255, b * 255, a * 255}
	switch mode {
	case BlendAdd:
		for i := range 4 {
			p[i] = uint8(math.Min(255, float64(p[i])+src[i]) + 0.5)
		}
	default:
		inv := 1 - a
		for i := range 4 {
			p[i] = uint8(math.Min(255, src[i]+float64(p[i])*inv) + 0.5)
		}
	}
}

// Snapshot returns a straight-alpha copy of the surface.
func (s *ImageSurface) Snapshot() *image.NRGBA {
	b := s.img.Bounds()
	return unpremultiply(s.img.Pix, b.Dx(), b.Dy())
}
