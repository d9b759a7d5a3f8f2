package sparks

import (
	"github.com/tanema/gween/ease"
)

const (
	defaultPointSize = 1.0 / 150 // glyph size as a fraction of surface width
	glyphUnits       = 10        // glyph units per rendered size unit
	staticAlpha      = 0.5       // peak alpha of a static mask point
	pulseMinSize     = 0.7
	pulseSizeSpread  = 0.6
)

// Renderer draws the active mask and the live particles. It only reads the
// mask and particles.
type Renderer struct {
	// Glyph is the shape drawn for points and particles.
	Glyph *Glyph
	// PointSize is the base glyph size as a fraction of surface width.
	PointSize float64
	// Growth shapes particle size over its life.
	Growth ease.TweenFunc

	colors map[HSL]Color
}

// NewRenderer returns a renderer drawing Heart glyphs.
func NewRenderer() *Renderer {
	return &Renderer{
		Glyph:     Heart,
		PointSize: defaultPointSize,
		Growth:    ease.OutQuad,
		colors:    make(map[HSL]Color),
	}
}

// Render draws both passes with additive blending and restores normal
// blending afterwards.
func (r *Renderer) Render(s Surface, mask Mask, opacity float64, particles []Particle, tick int) {
	s.SetBlend(BlendAdd)
	r.drawStatic(s, mask, opacity, tick)
	r.drawParticles(s, particles, opacity)
	s.SetBlend(BlendNormal)
	s.Flush()
}

// drawStatic draws every mask point with a cosine twinkle.
func (r *Renderer) drawStatic(s Surface, mask Mask, opacity float64, tick int) {
	if opacity <= 0 {
		return
	}
	w, h := s.Size()
	fw, fh := float64(w), float64(h)
	base := fw * r.PointSize

	for gi := range mask {
		grp := &mask[gi]
		if len(grp.Points) == 0 {
			continue
		}
		c := r.color(grp.Color)
		for _, pt := range grp.Points {
			p := pulse(tick, pt.TwinklePhase)
			alpha := p * opacity * pt.OpacityPhase * staticAlpha
			if alpha <= 0 {
				continue
			}
			size := base * (pulseMinSize + p*pulseSizeSpread)
			s.FillGlyph(r.Glyph, pt.X*fw, pt.Y*fh, size/glyphUnits, c.WithAlpha(alpha))
		}
	}
}

// drawParticles draws converging particles, sized by their growth and faded
// in and out over their life. Particles not yet launched have no position
// and are skipped.
func (r *Renderer) drawParticles(s Surface, particles []Particle, opacity float64) {
	if opacity <= 0 {
		return
	}
	w, _ := s.Size()
	base := float64(w) * r.PointSize

	for i := range particles {
		p := &particles[i]
		if p.State != ParticleConverging || p.Life >= 1 {
			continue
		}
		alpha := opacity * lifeAlpha(p.Life)
		if alpha <= 0 {
			continue
		}
		size := base * growth(p.Life, r.Growth)
		s.FillGlyph(r.Glyph, p.X, p.Y, size/glyphUnits, r.color(p.Color).WithAlpha(alpha))
	}
}

// color converts and caches an HSL color.
func (r *Renderer) color(h HSL) Color {
	if c, ok := r.colors[h]; ok {
		return c
	}
	if r.colors == nil {
		r.colors = make(map[HSL]Color)
	}
	c := h.Color(1)
	r.colors[h] = c
	return c
}
