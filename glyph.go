package sparks

import "math"

// Cubic is one cubic Bézier segment continuing from the previous point.
type Cubic struct {
	C1, C2, To Vec2
}

// Glyph is a closed path of cubic curves in glyph units, centered near the
// origin. Surfaces either fill the curves directly or use the flattened
// outline as a triangle fan around Center.
type Glyph struct {
	Start  Vec2
	Curves []Cubic
	// Center must see every outline point, so the fan does not overlap itself.
	Center Vec2

	outline    []Vec2
	minX, minY float64
	maxX, maxY float64
}

// glyphSegments is the number of line segments per flattened curve.
const glyphSegments = 12

// NewGlyph builds a glyph and precomputes its outline and bounds.
func NewGlyph(start, center Vec2, curves ...Cubic) *Glyph {
	g := &Glyph{Start: start, Curves: curves, Center: center}

	g.minX, g.minY = start.X, start.Y
	g.maxX, g.maxY = start.X, start.Y
	grow := func(v Vec2) {
		g.minX, g.maxX = math.Min(g.minX, v.X), math.Max(g.maxX, v.X)
		g.minY, g.maxY = math.Min(g.minY, v.Y), math.Max(g.maxY, v.Y)
	}

	g.outline = append(g.outline, start)
	from := start
	for _, c := range curves {
		grow(c.C1)
		grow(c.C2)
		grow(c.To)
		for i := 1; i <= glyphSegments; i++ {
			g.outline = append(g.outline, cubicAt(from, c, float64(i)/glyphSegments))
		}
		from = c.To
	}
	return g
}

// Heart is the two-lobed glyph drawn for every mask point and particle.
var Heart = NewGlyph(
	Vec2{0, -3},
	Vec2{0, 0},
	Cubic{C1: Vec2{-2, -5}, C2: Vec2{-5, -1}, To: Vec2{0, 3}},
	Cubic{C1: Vec2{5, -1}, C2: Vec2{2, -5}, To: Vec2{0, -3}},
)

// Outline returns the flattened outline, starting at Start. For a closed
// path the last point equals the first. The slice MUST NOT be mutated.
func (g *Glyph) Outline() []Vec2 {
	return g.outline
}

// Bounds returns the glyph's bounding box (control-point hull) in glyph units.
func (g *Glyph) Bounds() (minX, minY, maxX, maxY float64) {
	return g.minX, g.minY, g.maxX, g.maxY
}

func cubicAt(p0 Vec2, c Cubic, t float64) Vec2 {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	d := 3 * u * t * t
	e := t * t * t
	return Vec2{
		X: a*p0.X + b*c.C1.X + d*c.C2.X + e*c.To.X,
		Y: a*p0.Y + b*c.C1.Y + d*c.C2.Y + e*c.To.Y,
	}
}
