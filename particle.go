package sparks

import (
	"math"
	"math/rand/v2"
)

// ParticleState selects which update a particle receives on Advance.
type ParticleState uint8

const (
	ParticleSpawning   ParticleState = iota // anchored, not yet placed on the surface
	ParticleConverging                      // flying toward the focal point
	ParticleRetired                         // life reached 1; removed on the same Advance
)

func (s ParticleState) String() string {
	switch s {
	case ParticleSpawning:
		return "spawning"
	case ParticleConverging:
		return "converging"
	case ParticleRetired:
		return "retired"
	default:
		return "unknown"
	}
}

// Particle is one converging glyph. X, Y and the velocity are in surface
// pixels and may lie well outside the surface.
type Particle struct {
	X, Y   float64
	VX, VY float64
	// Life grows from 0 by Speed each tick; the particle retires at 1.
	Life  float64
	Speed float64
	Color HSL
	// AnchorX and AnchorY are the normalized mask point the particle was
	// spawned from.
	AnchorX, AnchorY float64
	State            ParticleState
}

// ParticleOptions controls spawning. Zero fields take defaults.
type ParticleOptions struct {
	// MinSpeed is the smallest per-tick life increment.
	MinSpeed float64
	// SpeedSpread scales the random part of the life increment.
	SpeedSpread float64
	// Launch scales the initial velocity toward the focal point.
	Launch float64
	// Distance is how far beyond its anchor a particle starts, in surface
	// extents along the ray from the center through the anchor.
	Distance Range
}

const (
	defaultMinSpeed    = 0.003
	defaultSpeedSpread = 0.1
	defaultLaunch      = 0.01
)

func (o ParticleOptions) withDefaults() ParticleOptions {
	if o.MinSpeed <= 0 {
		o.MinSpeed = defaultMinSpeed
	}
	if o.SpeedSpread < 0 {
		o.SpeedSpread = 0
	} else if o.SpeedSpread == 0 {
		o.SpeedSpread = defaultSpeedSpread
	}
	if o.Launch <= 0 {
		o.Launch = defaultLaunch
	}
	if o.Distance.Min <= 0 && o.Distance.Max <= 0 {
		o.Distance = Range{Min: 1, Max: 2}
	}
	return o
}

// ParticleSystem owns the live particle set. Particles are stored
// contiguously; a retired particle is replaced by the last live one, so order
// is not stable across Advance calls.
type ParticleSystem struct {
	particles []Particle
	opts      ParticleOptions
	rng       *rand.Rand
}

// NewParticleSystem creates an empty system. A nil rng uses an unseeded
// generator.
func NewParticleSystem(opts ParticleOptions, rng *rand.Rand) *ParticleSystem {
	if rng == nil {
		rng = newRand(0)
	}
	return &ParticleSystem{opts: opts.withDefaults(), rng: rng}
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Live returns the live particles. The slice is only valid until the next
// Spawn, Advance or Reset and MUST NOT be mutated.
func (ps *ParticleSystem) Live() []Particle {
	return ps.particles
}

// Reset removes all particles.
func (ps *ParticleSystem) Reset() {
	ps.particles = ps.particles[:0]
}

// Spawn makes count attempts to anchor a new particle to a random point of
// mask: a uniformly random group, then a uniformly random point within it.
// Attempts that land on an empty group are skipped.
func (ps *ParticleSystem) Spawn(mask Mask, count int) {
	if len(mask) == 0 || mask.Len() == 0 {
		return
	}
	for range count {
		g := &mask[ps.rng.IntN(len(mask))]
		if len(g.Points) == 0 {
			continue
		}
		pt := g.Points[ps.rng.IntN(len(g.Points))]
		ps.particles = append(ps.particles, Particle{
			AnchorX: pt.X,
			AnchorY: pt.Y,
			Color:   g.Color,
			State:   ParticleSpawning,
		})
	}
}

// Advance steps every particle once on a width x height surface and removes
// those whose life reached 1.
func (ps *ParticleSystem) Advance(width, height, attraction float64) {
	cx, cy := width/2, height/2

	i := 0
	for i < len(ps.particles) {
		p := &ps.particles[i]

		switch p.State {
		case ParticleSpawning:
			ps.launch(p, width, height)
		case ParticleConverging:
			p.VX += (cx - p.X) * attraction
			p.VY += (cy - p.Y) * attraction
			p.X += p.VX
			p.Y += p.VY
			p.Life += p.Speed
			if p.Life >= 1 {
				p.State = ParticleRetired
			}
		}

		if p.State == ParticleRetired {
			last := len(ps.particles) - 1
			ps.particles[i] = ps.particles[last]
			ps.particles = ps.particles[:last]
			continue
		}
		i++
	}
}

// launch places a spawning particle outside the surface, beyond its anchor
// as seen from the center, and aims it at the center.
func (ps *ParticleSystem) launch(p *Particle, width, height float64) {
	cx, cy := width/2, height/2
	ax, ay := p.AnchorX*width, p.AnchorY*height

	dx, dy := ax-cx, ay-cy
	if d := math.Hypot(dx, dy); d > 1e-9 {
		dx, dy = dx/d, dy/d
	} else {
		a := ps.rng.Float64() * 2 * math.Pi
		dx, dy = math.Cos(a), math.Sin(a)
	}

	dist := ps.opts.Distance.Random(ps.rng)
	p.X = ax + dx*width*dist
	p.Y = ay + dy*height*dist
	p.VX = (cx - p.X) * ps.opts.Launch
	p.VY = (cy - p.Y) * ps.opts.Launch

	r := (ps.rng.Float64() + ps.rng.Float64()) / 2
	p.Speed = ps.opts.MinSpeed + r*ps.opts.SpeedSpread
	p.Life = 0
	p.State = ParticleConverging
}
