package sparks

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the initial window size. Zero uses the engine's
	// surface size.
	Width, Height int
	// ShowFPS draws an FPS, TPS and particle count overlay.
	ShowFPS bool
	// Fullscreen starts the window fullscreen.
	Fullscreen bool
}

// game adapts an Engine to ebiten.Game. Frames are rendered in Update at
// the engine tick rate onto an offscreen image that Draw presents.
type game struct {
	ctx       context.Context
	engine    *Engine
	offscreen *EbitenSurface
	fps       *fpsOverlay
}

func newGame(ctx context.Context, e *Engine, showFPS bool) *game {
	g := &game{
		ctx:       ctx,
		engine:    e,
		offscreen: NewEbitenSurface(ebiten.NewImage(e.opts.Width, e.opts.Height)),
	}
	if showFPS {
		g.fps = newFPSOverlay(e.opts.TPS)
	}
	return g
}

func (g *game) Update() error {
	select {
	case <-g.ctx.Done():
		g.engine.Stop()
	default:
	}
	if g.engine.Stopped() {
		return ebiten.Termination
	}

	g.engine.Frame(g.offscreen)
	if g.fps != nil {
		g.fps.update(g.engine.particles.Len())
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.offscreen.Image(), nil)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.engine.opts.Width, g.engine.opts.Height
}

// Run opens a window and drives e until the window is closed, ctx is
// cancelled or e.Stop is called.
func Run(ctx context.Context, e *Engine, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = e.opts.Width, e.opts.Height
	}
	if cfg.Title == "" {
		cfg.Title = "sparks"
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetTPS(e.opts.TPS)

	return ebiten.RunGame(newGame(ctx, e, cfg.ShowFPS))
}
