package sparks

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestEbitenSurfaceSize(t *testing.T) {
	s := NewEbitenSurface(ebiten.NewImage(40, 30))
	if w, h := s.Size(); w != 40 || h != 30 {
		t.Errorf("Size = %dx%d, want 40x30", w, h)
	}
}

func TestEbitenSurfaceFanVertices(t *testing.T) {
	s := NewEbitenSurface(ebiten.NewImage(64, 64))
	s.FillGlyph(Heart, 10, 20, 2, Color{1, 0.5, 0, 0.5})

	n := len(Heart.Outline())
	if len(s.verts) != n+1 {
		t.Fatalf("verts = %d, want %d", len(s.verts), n+1)
	}
	if len(s.inds) != 3*(n-1) {
		t.Fatalf("inds = %d, want %d", len(s.inds), 3*(n-1))
	}

	c := s.verts[0]
	if c.DstX != 10 || c.DstY != 20 {
		t.Errorf("center = (%v, %v), want (10, 20)", c.DstX, c.DstY)
	}
	if c.ColorR != 0.5 || c.ColorG != 0.25 || c.ColorB != 0 || c.ColorA != 0.5 {
		t.Errorf("color = (%v, %v, %v, %v), want premultiplied (0.5, 0.25, 0, 0.5)",
			c.ColorR, c.ColorG, c.ColorB, c.ColorA)
	}
	first := s.verts[1]
	if first.DstX != 10 || first.DstY != 14 {
		t.Errorf("outline start = (%v, %v), want (10, 14)", first.DstX, first.DstY)
	}
	for i := 0; i < len(s.inds); i += 3 {
		if s.inds[i] != 0 {
			t.Fatalf("triangle %d does not start at the fan center", i/3)
		}
	}
}

func TestEbitenSurfaceBatchesGlyphs(t *testing.T) {
	s := NewEbitenSurface(ebiten.NewImage(64, 64))
	s.FillGlyph(Heart, 10, 10, 1, Color{1, 1, 1, 1})
	s.FillGlyph(Heart, 30, 30, 1, Color{1, 1, 1, 1})

	n := uint32(len(Heart.Outline()) + 1)
	if len(s.verts) != int(2*n) {
		t.Fatalf("verts = %d, want %d", len(s.verts), 2*n)
	}
	if s.inds[len(s.inds)/2] != n {
		t.Errorf("second fan base index = %d, want %d", s.inds[len(s.inds)/2], n)
	}

	// Re-selecting the current blend mode keeps the batch.
	s.SetBlend(BlendNormal)
	if len(s.verts) != int(2*n) {
		t.Error("SetBlend with the current mode should not flush")
	}
}

func TestEbitenSurfaceSkipsInvisible(t *testing.T) {
	s := NewEbitenSurface(ebiten.NewImage(16, 16))
	s.FillGlyph(Heart, 8, 8, 1, Color{1, 1, 1, 0})
	s.FillGlyph(Heart, 8, 8, 0, Color{1, 1, 1, 1})
	if len(s.verts) != 0 || len(s.inds) != 0 {
		t.Errorf("verts = %d, inds = %d, want none", len(s.verts), len(s.inds))
	}
	s.Flush()
}

func TestEbitenSurfaceImplementsInterfaces(t *testing.T) {
	var _ Surface = (*EbitenSurface)(nil)
	var _ Snapshotter = (*EbitenSurface)(nil)
	var _ Surface = (*ImageSurface)(nil)
	var _ Snapshotter = (*ImageSurface)(nil)
}
