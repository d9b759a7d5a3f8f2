package sparks

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxBatchVertices bounds a single DrawTriangles32 submission.
const maxBatchVertices = 1 << 16

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// ensureWhiteImage lazily creates the solid source image for glyph fills.
// The 1x1 center of a 3x3 image avoids sampling past the edge.
func ensureWhiteImage() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(Color{1, 1, 1, 1}.toRGBA())
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// EbitenSurface draws onto an ebiten.Image. Glyphs are accumulated as
// triangle fans and submitted in a single DrawTriangles32 call per blend mode
// run. Fans never overlap themselves, so additive batches stay additive.
type EbitenSurface struct {
	target *ebiten.Image
	blend  BlendMode
	verts  []ebiten.Vertex
	inds   []uint32
}

// NewEbitenSurface wraps target.
func NewEbitenSurface(target *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{
		target: target,
		verts:  make([]ebiten.Vertex, 0, 4096),
		inds:   make([]uint32, 0, 8192),
	}
}

// Image returns the wrapped image.
func (s *EbitenSurface) Image() *ebiten.Image {
	return s.target
}

func (s *EbitenSurface) Size() (int, int) {
	b := s.target.Bounds()
	return b.Dx(), b.Dy()
}

func (s *EbitenSurface) Clear(c Color) {
	s.Flush()
	s.target.Fill(c.toRGBA())
}

func (s *EbitenSurface) SetBlend(mode BlendMode) {
	if mode == s.blend {
		return
	}
	s.Flush()
	s.blend = mode
}

func (s *EbitenSurface) FillGlyph(g *Glyph, x, y, scale float64, c Color) {
	cr, cg, cb, ca := c.premultiplied()
	if ca <= 0 || scale <= 0 {
		return
	}
	outline := g.Outline()
	if len(outline) < 3 {
		return
	}
	if len(s.verts)+len(outline)+1 > maxBatchVertices {
		s.Flush()
	}

	vertex := func(p Vec2) ebiten.Vertex {
		return ebiten.Vertex{
			DstX:   float32(x + p.X*scale),
			DstY:   float32(y + p.Y*scale),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(cr),
			ColorG: float32(cg),
			ColorB: float32(cb),
			ColorA: float32(ca),
		}
	}

	base := uint32(len(s.verts))
	s.verts = append(s.verts, vertex(g.Center))
	for _, p := range outline {
		s.verts = append(s.verts, vertex(p))
	}
	for i := uint32(1); i < uint32(len(outline)); i++ {
		s.inds = append(s.inds, base, base+i, base+i+1)
	}
}

// Flush submits accumulated glyphs as a single DrawTriangles32 call.
func (s *EbitenSurface) Flush() {
	if len(s.inds) == 0 {
		s.verts = s.verts[:0]
		return
	}

	var triOp ebiten.DrawTrianglesOptions
	triOp.Blend = s.blend.EbitenBlend()
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	triOp.AntiAlias = true

	s.target.DrawTriangles32(s.verts, s.inds, ensureWhiteImage(), &triOp)

	s.verts = s.verts[:0]
	s.inds = s.inds[:0]
}

// Snapshot reads the surface back as straight-alpha NRGBA.
func (s *EbitenSurface) Snapshot() *image.NRGBA {
	s.Flush()
	b := s.target.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	s.target.ReadPixels(pixels)
	return unpremultiply(pixels, b.Dx(), b.Dy())
}
