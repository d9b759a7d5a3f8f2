package sparks

import (
	"fmt"
	"io"
	"os"
	"time"
)

const (
	// DefaultTPS is the tick rate used when Options.TPS is zero.
	DefaultTPS = 60

	defaultWidth         = 1280
	defaultHeight        = 720
	defaultSpawnPerFrame = 100
	defaultAttraction    = 0.05
)

// Options configures an Engine. Zero fields take defaults.
type Options struct {
	// Width and Height are the surface size the masks are laid out for.
	Width, Height int
	// TPS is the tick rate; one tick is one frame.
	TPS int
	// SpawnPerFrame is the particle spawn budget per frame.
	SpawnPerFrame int
	// Attraction is the per-tick pull of particles toward the surface center.
	Attraction float64
	// Background is the clear color. Zero means ColorBackground.
	Background Color
	// Font renders scene text into masks. Nil means Go Regular.
	Font *Font
	// Mask controls the offscreen text layer.
	Mask MaskOptions
	// Particles controls particle launch.
	Particles ParticleOptions
	// Seed seeds mask phases and particles. Zero picks a random seed.
	Seed uint64
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	if o.TPS <= 0 {
		o.TPS = DefaultTPS
	}
	if o.SpawnPerFrame < 0 {
		o.SpawnPerFrame = 0
	} else if o.SpawnPerFrame == 0 {
		o.SpawnPerFrame = defaultSpawnPerFrame
	}
	if o.Attraction <= 0 {
		o.Attraction = defaultAttraction
	}
	if o.Background == (Color{}) {
		o.Background = ColorBackground
	}
	if o.Font == nil {
		o.Font = DefaultFont()
	}
	return o
}

// Engine runs the frame loop: it advances the timeline, spawns particles
// against the active mask, renders, and steps the particle simulation.
// An Engine is not safe for concurrent use; every call happens on the frame
// callback.
type Engine struct {
	opts      Options
	scenes    []Scene
	masks     []Mask
	timeline  *Timeline
	particles *ParticleSystem
	renderer  *Renderer

	tick    int
	stopped bool

	debug bool
	logw  io.Writer
	stats frameStats

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir   string
	screenshotQueue []string
	script          *ScriptRunner
}

// NewEngine builds every scene's mask up front and returns an engine ready
// to run.
func NewEngine(scenes []Scene, opts Options) (*Engine, error) {
	opts = opts.withDefaults()
	rng := newRand(opts.Seed)

	aspect := float64(opts.Width) / float64(opts.Height)
	masks, err := NewMaskBuilder(opts.Font, opts.Mask, rng).BuildAll(scenes, aspect)
	if err != nil {
		return nil, fmt.Errorf("sparks: build masks: %w", err)
	}

	return &Engine{
		opts:          opts,
		scenes:        scenes,
		masks:         masks,
		timeline:      NewTimeline(scenes, masks),
		particles:     NewParticleSystem(opts.Particles, rng),
		renderer:      NewRenderer(),
		logw:          os.Stderr,
		ScreenshotDir: "screenshots",
	}, nil
}

// Options returns the resolved options.
func (e *Engine) Options() Options {
	return e.opts
}

// Masks returns the cached masks, one per scene. MUST NOT be mutated.
func (e *Engine) Masks() []Mask {
	return e.masks
}

// Timeline returns the engine's timeline.
func (e *Engine) Timeline() *Timeline {
	return e.timeline
}

// Particles returns the engine's particle system.
func (e *Engine) Particles() *ParticleSystem {
	return e.particles
}

// Renderer returns the renderer for tuning glyph and sizes.
func (e *Engine) Renderer() *Renderer {
	return e.renderer
}

// Tick returns the number of frames run so far.
func (e *Engine) Tick() int {
	return e.tick
}

// Stop asks the frame loop to end. Run returns after the current frame.
func (e *Engine) Stop() {
	e.stopped = true
}

// Stopped reports whether Stop was called.
func (e *Engine) Stopped() bool {
	return e.stopped
}

// SetDebugMode enables or disables per-second frame stats on stderr.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// Frame runs one full frame onto s.
func (e *Engine) Frame(s Surface) {
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}
	if e.script != nil {
		e.script.step(e)
	}

	e.tick++
	e.timeline.Advance()
	mask := e.timeline.ActiveMask()
	e.lap(&t0, &e.stats.timelineTime)

	e.particles.Spawn(mask, e.opts.SpawnPerFrame)
	e.lap(&t0, &e.stats.spawnTime)

	s.Clear(e.opts.Background)
	e.renderer.Render(s, mask, e.timeline.Opacity(), e.particles.Live(), e.tick)
	e.lap(&t0, &e.stats.renderTime)

	w, h := s.Size()
	e.particles.Advance(float64(w), float64(h), e.opts.Attraction)
	e.lap(&t0, &e.stats.advanceTime)

	e.flushScreenshots(s)

	if e.debug && e.tick%e.opts.TPS == 0 {
		e.stats.particles = e.particles.Len()
		e.stats.points = mask.Len()
		e.debugLog(e.stats)
	}
}

// lap records the time since *t0 into *d and restarts *t0. No-op unless
// debug mode is on.
func (e *Engine) lap(t0 *time.Time, d *time.Duration) {
	if !e.debug {
		return
	}
	now := time.Now()
	*d = now.Sub(*t0)
	*t0 = now
}
