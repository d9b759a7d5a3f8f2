package sparks

import (
	"fmt"
	"time"
)

// frameStats holds the timing of the most recent frame.
// Only populated when debug mode is on.
type frameStats struct {
	timelineTime time.Duration
	spawnTime    time.Duration
	renderTime   time.Duration
	advanceTime  time.Duration
	particles    int
	points       int
}

// debugLog prints frame stats to the engine's log writer (stderr).
func (e *Engine) debugLog(stats frameStats) {
	if !e.debug {
		return
	}
	st := e.timeline.State()
	total := stats.timelineTime + stats.spawnTime + stats.renderTime + stats.advanceTime
	_, _ = fmt.Fprintf(e.logw,
		"[sparks] timeline: %v | spawn: %v | render: %v | advance: %v | total: %v\n",
		stats.timelineTime, stats.spawnTime, stats.renderTime, stats.advanceTime, total)
	_, _ = fmt.Fprintf(e.logw,
		"[sparks] tick: %d | scene: %d | phase: %s | opacity: %.2f | particles: %d | points: %d\n",
		e.tick, st.SceneIndex, st.Phase, st.Opacity, stats.particles, stats.points)
}
