package sparks

import "testing"

func TestHeartOutline(t *testing.T) {
	out := Heart.Outline()
	if len(out) != 1+2*glyphSegments {
		t.Fatalf("outline = %d points, want %d", len(out), 1+2*glyphSegments)
	}
	if out[0] != out[len(out)-1] {
		t.Errorf("outline not closed: %v != %v", out[0], out[len(out)-1])
	}
	if out[0] != Heart.Start {
		t.Errorf("outline starts at %v, want %v", out[0], Heart.Start)
	}
}

// Every fan triangle must wind the same way, otherwise the fan folds over
// itself and additive fills double up inside a single glyph.
func TestHeartFanNonOverlapping(t *testing.T) {
	out := Heart.Outline()
	c := Heart.Center
	for i := 0; i+1 < len(out); i++ {
		a, b := out[i], out[i+1]
		cross := (a.X-c.X)*(b.Y-c.Y) - (a.Y-c.Y)*(b.X-c.X)
		if cross >= 0 {
			t.Fatalf("triangle %d winds the wrong way (cross %v)", i, cross)
		}
	}
}

func TestHeartBounds(t *testing.T) {
	minX, minY, maxX, maxY := Heart.Bounds()
	if minX != -5 || minY != -5 || maxX != 5 || maxY != 3 {
		t.Errorf("Bounds = (%v, %v, %v, %v), want (-5, -5, 5, 3)", minX, minY, maxX, maxY)
	}
	for _, p := range Heart.Outline() {
		if p.X < minX || p.X > maxX || p.Y < minY || p.Y > maxY {
			t.Fatalf("outline point %v outside bounds", p)
		}
	}
}

func TestCubicAtEndpoints(t *testing.T) {
	c := Cubic{C1: Vec2{1, 2}, C2: Vec2{3, 4}, To: Vec2{5, 6}}
	p0 := Vec2{-1, -1}
	if got := cubicAt(p0, c, 0); got != p0 {
		t.Errorf("cubicAt(0) = %v, want %v", got, p0)
	}
	if got := cubicAt(p0, c, 1); got != c.To {
		t.Errorf("cubicAt(1) = %v, want %v", got, c.To)
	}
}
