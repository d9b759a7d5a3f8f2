package sparks

// Surface is the drawing capability the renderer needs. Implementations may
// queue work; Flush submits anything pending.
type Surface interface {
	// Size returns the surface size in pixels.
	Size() (width, height int)
	// Clear fills the whole surface with c, ignoring the blend mode.
	Clear(c Color)
	// SetBlend sets the compositing mode for subsequent glyphs.
	SetBlend(mode BlendMode)
	// FillGlyph fills g translated to (x, y) and scaled by scale.
	FillGlyph(g *Glyph, x, y, scale float64, c Color)
	// Flush submits pending draws.
	Flush()
}
