package sparks

// Phase is the timeline's position within the current scene.
type Phase uint8

const (
	PhaseIdle     Phase = iota // before the first scene is selected
	PhaseEntering              // opacity rising by FadeInRate per tick
	PhaseHolding               // opacity 1, counting hold ticks
	PhaseExiting               // opacity falling by FadeOutRate per tick
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseEntering:
		return "entering"
	case PhaseHolding:
		return "holding"
	case PhaseExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// TimelineState is a snapshot of the timeline.
type TimelineState struct {
	SceneIndex    int
	Opacity       float64
	Phase         Phase
	HoldTickCount int
}

// Timeline cycles through scenes, driving a global opacity and selecting the
// active mask. Each Advance performs one step of the current phase; phase
// transitions take effect immediately, and the new phase's per-tick work
// starts on the following Advance.
type Timeline struct {
	scenes []Scene
	masks  []Mask
	state  TimelineState
	active Mask
}

// NewTimeline creates an idle timeline. masks[i] is the cached mask of
// scenes[i]; a missing mask is treated as empty.
func NewTimeline(scenes []Scene, masks []Mask) *Timeline {
	return &Timeline{scenes: scenes, masks: masks}
}

// State returns the current timeline state.
func (t *Timeline) State() TimelineState {
	return t.state
}

// ActiveMask returns the mask of the current scene, or nil while idle.
func (t *Timeline) ActiveMask() Mask {
	return t.active
}

// Opacity returns the global opacity in [0, 1].
func (t *Timeline) Opacity() float64 {
	return t.state.Opacity
}

// Scene returns the current scene. Only valid once the timeline has left
// PhaseIdle.
func (t *Timeline) Scene() Scene {
	return t.scenes[t.state.SceneIndex]
}

// Advance moves the timeline forward by one tick.
func (t *Timeline) Advance() {
	if len(t.scenes) == 0 {
		return
	}
	sc := t.scenes[t.state.SceneIndex]

	switch t.state.Phase {
	case PhaseIdle:
		t.selectScene(0)

	case PhaseEntering:
		t.state.Opacity += sc.FadeInRate
		if t.state.Opacity >= 1 {
			t.reachFull(false)
		}

	case PhaseHolding:
		t.state.HoldTickCount++
		if t.state.HoldTickCount >= sc.HoldTicks {
			t.exit()
		}

	case PhaseExiting:
		t.state.Opacity -= sc.FadeOutRate
		if t.state.Opacity <= 0 {
			t.state.Opacity = 0
			t.selectScene(t.state.SceneIndex + 1)
		}
	}
	t.state.Opacity = clamp01(t.state.Opacity)
}

// selectScene makes scene i (wrapped) current and applies its fade-in
// decision.
func (t *Timeline) selectScene(i int) {
	i %= len(t.scenes)
	t.state.SceneIndex = i
	t.state.HoldTickCount = 0
	t.active = nil
	if i < len(t.masks) {
		t.active = t.masks[i]
	}

	if t.scenes[i].FadeInRate > 0 {
		t.state.Phase = PhaseEntering
		return
	}
	t.reachFull(true)
}

// reachFull handles arriving at opacity 1. A scene that appeared instantly
// always holds for at least one tick, so a run of zero-timed scenes flashes
// one scene per tick instead of looping within a single Advance.
func (t *Timeline) reachFull(instant bool) {
	t.state.Opacity = 1
	if t.scenes[t.state.SceneIndex].HoldTicks > 0 || instant {
		t.state.Phase = PhaseHolding
		t.state.HoldTickCount = 0
		return
	}
	t.exit()
}

// exit starts fading out, or cuts straight to the next scene when the scene
// has no fade-out.
func (t *Timeline) exit() {
	if t.scenes[t.state.SceneIndex].FadeOutRate > 0 {
		t.state.Phase = PhaseExiting
		return
	}
	t.state.Opacity = 0
	t.selectScene(t.state.SceneIndex + 1)
}
