package sparks

import "testing"

func testMasks(n int) []Mask {
	masks := make([]Mask, n)
	for i := range masks {
		masks[i] = Mask{{Color: DefaultHSL, Points: []MaskPoint{{X: float64(i) / 10, Y: 0.5}}}}
	}
	return masks
}

type timelineStep struct {
	scene   int
	phase   Phase
	opacity float64
	hold    int
}

func assertStep(t *testing.T, tick int, tl *Timeline, want timelineStep) {
	t.Helper()
	s := tl.State()
	if s.SceneIndex != want.scene || s.Phase != want.phase || s.HoldTickCount != want.hold {
		t.Fatalf("advance %d: scene %d %s hold %d, want scene %d %s hold %d",
			tick, s.SceneIndex, s.Phase, s.HoldTickCount, want.scene, want.phase, want.hold)
	}
	assertNear(t, "opacity", s.Opacity, want.opacity)
}

// --- Cycle ---

func TestTimelineFullCycle(t *testing.T) {
	scenes := []Scene{
		{HoldTicks: 10, FadeInRate: 0.5, FadeOutRate: 0.25},
		{},
	}
	tl := NewTimeline(scenes, testMasks(2))

	if tl.State().Phase != PhaseIdle || tl.ActiveMask() != nil {
		t.Fatal("new timeline should be idle with no mask")
	}

	var steps []timelineStep
	steps = append(steps,
		timelineStep{0, PhaseEntering, 0, 0},
		timelineStep{0, PhaseEntering, 0.5, 0},
		timelineStep{0, PhaseHolding, 1, 0},
	)
	for i := 1; i <= 9; i++ {
		steps = append(steps, timelineStep{0, PhaseHolding, 1, i})
	}
	steps = append(steps,
		timelineStep{0, PhaseExiting, 1, 10},
		timelineStep{0, PhaseExiting, 0.75, 10},
		timelineStep{0, PhaseExiting, 0.5, 10},
		timelineStep{0, PhaseExiting, 0.25, 10},
		timelineStep{1, PhaseHolding, 1, 0},
		timelineStep{0, PhaseEntering, 0, 0},
		timelineStep{0, PhaseEntering, 0.5, 0},
	)

	for i, want := range steps {
		tl.Advance()
		assertStep(t, i+1, tl, want)
		if got := tl.ActiveMask(); len(got) == 0 || got[0].Points[0].X != float64(want.scene)/10 {
			t.Fatalf("advance %d: active mask does not belong to scene %d", i+1, want.scene)
		}
	}
}

func TestTimelineNoFadeOutCutsToNextScene(t *testing.T) {
	scenes := []Scene{
		{HoldTicks: 2, FadeInRate: 1},
		{HoldTicks: 1, FadeInRate: 0.5},
	}
	tl := NewTimeline(scenes, testMasks(2))
	tl.Advance() // enter scene 0
	tl.Advance() // full, holding
	tl.Advance() // hold 1
	tl.Advance() // hold 2: exits straight into scene 1
	assertStep(t, 4, tl, timelineStep{1, PhaseEntering, 0, 0})
}

func TestTimelineZeroHoldAfterFadeIn(t *testing.T) {
	scenes := []Scene{
		{FadeInRate: 0.5, FadeOutRate: 0.5},
	}
	tl := NewTimeline(scenes, testMasks(1))
	tl.Advance()
	tl.Advance()
	tl.Advance() // reaches 1 and starts exiting right away
	assertStep(t, 3, tl, timelineStep{0, PhaseExiting, 1, 0})
	tl.Advance()
	assertStep(t, 4, tl, timelineStep{0, PhaseExiting, 0.5, 0})
}

func TestTimelineInstantScenesFlash(t *testing.T) {
	tl := NewTimeline(make([]Scene, 3), testMasks(3))
	tl.Advance()
	assertStep(t, 1, tl, timelineStep{0, PhaseHolding, 1, 0})
	for i, want := range []int{1, 2, 0, 1} {
		tl.Advance()
		assertStep(t, i+2, tl, timelineStep{want, PhaseHolding, 1, 0})
	}
}

func TestTimelineWrapsAfterLastScene(t *testing.T) {
	scenes := []Scene{{HoldTicks: 2}, {HoldTicks: 2}}
	tl := NewTimeline(scenes, testMasks(2))
	seen := []int{}
	for range 8 {
		tl.Advance()
		seen = append(seen, tl.State().SceneIndex)
	}
	want := []int{0, 0, 1, 1, 0, 0, 1, 1}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("scene sequence = %v, want %v", seen, want)
		}
	}
}

// --- Invariants ---

func TestTimelineOpacityMonotonicPerPhase(t *testing.T) {
	scenes := []Scene{
		{HoldTicks: 3, FadeInRate: 0.3, FadeOutRate: 0.7},
		{HoldTicks: 0, FadeInRate: 0.15, FadeOutRate: 0.4},
		{HoldTicks: 5},
	}
	tl := NewTimeline(scenes, testMasks(3))
	prev := tl.State()
	for i := range 500 {
		tl.Advance()
		s := tl.State()
		if s.Opacity < 0 || s.Opacity > 1 {
			t.Fatalf("advance %d: opacity %v outside [0, 1]", i+1, s.Opacity)
		}
		if s.SceneIndex < 0 || s.SceneIndex >= len(scenes) {
			t.Fatalf("advance %d: scene index %d out of range", i+1, s.SceneIndex)
		}
		if s.SceneIndex == prev.SceneIndex && s.Phase == prev.Phase {
			switch s.Phase {
			case PhaseEntering:
				if s.Opacity < prev.Opacity {
					t.Fatalf("advance %d: opacity fell while entering", i+1)
				}
			case PhaseExiting:
				if s.Opacity > prev.Opacity {
					t.Fatalf("advance %d: opacity rose while exiting", i+1)
				}
			case PhaseHolding:
				if s.Opacity != 1 {
					t.Fatalf("advance %d: holding at opacity %v", i+1, s.Opacity)
				}
			}
		}
		prev = s
	}
}

func TestTimelineNoScenes(t *testing.T) {
	tl := NewTimeline(nil, nil)
	for range 3 {
		tl.Advance()
	}
	if s := tl.State(); s != (TimelineState{}) {
		t.Errorf("state = %+v, want zero", s)
	}
	if tl.ActiveMask() != nil {
		t.Error("ActiveMask should be nil with no scenes")
	}
}

func TestTimelineMissingMask(t *testing.T) {
	tl := NewTimeline([]Scene{{}, {}}, testMasks(1))
	tl.Advance()
	if tl.ActiveMask() == nil {
		t.Fatal("scene 0 should have its mask")
	}
	tl.Advance()
	if tl.State().SceneIndex != 1 || tl.ActiveMask() != nil {
		t.Error("scene without a mask should be active with a nil mask")
	}
}

func TestTimelineScene(t *testing.T) {
	scenes := []Scene{{HoldTicks: 7, Segments: []TextSegment{{Text: "X"}}}}
	tl := NewTimeline(scenes, testMasks(1))
	tl.Advance()
	if got := tl.Scene().Text(); got != "X" {
		t.Errorf("Scene().Text() = %q, want X", got)
	}
	assertNear(t, "Opacity", tl.Opacity(), 1)
}
