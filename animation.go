package sparks

import (
	"math"

	"github.com/tanema/gween/ease"
)

const (
	pulseRate   = 0.05 // radians per tick
	pulseSpread = 10   // radians across the twinkle phase range

	growthFrom = 0.5 // particle size multiplier at birth
	growthTo   = 1.5 // particle size multiplier at retirement
)

// pulse returns the twinkle factor in [0, 1] of a mask point at tick.
func pulse(tick int, twinklePhase float64) float64 {
	return (1 + math.Cos(float64(tick)*pulseRate+twinklePhase*pulseSpread)) / 2
}

// growth returns the size multiplier of a particle at the given life,
// following fn from growthFrom to growthTo. A nil fn is linear.
func growth(life float64, fn ease.TweenFunc) float64 {
	if fn == nil {
		fn = ease.Linear
	}
	t := float32(clamp01(life))
	return float64(fn(t, growthFrom, growthTo-growthFrom, 1))
}

// lifeAlpha peaks at mid-life and is zero at both ends.
func lifeAlpha(life float64) float64 {
	return math.Max(0, math.Sin(clamp01(life)*math.Pi))
}
