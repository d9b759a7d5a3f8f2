package sparks

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay shows FPS, TPS and the live particle count in the top-left
// corner. The text is refreshed about twice a second.
type fpsOverlay struct {
	img      *ebiten.Image
	interval int
	since    int
}

func newFPSOverlay(tps int) *fpsOverlay {
	// 120x48 is enough for three short DebugPrint lines.
	return &fpsOverlay{
		img:      ebiten.NewImage(120, 48),
		interval: max(1, tps/2),
		since:    -1,
	}
}

func (o *fpsOverlay) update(particles int) {
	o.since++
	if o.since != 0 && o.since < o.interval {
		return
	}
	o.since = 0

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nParticles: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), particles))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
