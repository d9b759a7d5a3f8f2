package sparks

import (
	"bytes"
	"testing"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "wait", "frames": 3},
			{"action": "stop"}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "wait" || runner.steps[1].Frames != 3 {
		t.Error("step 1 mismatch")
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	if _, err := LoadScript([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadScript_Empty(t *testing.T) {
	if _, err := LoadScript([]byte(`{"steps": []}`)); err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestLoadScript_UnknownAction(t *testing.T) {
	if _, err := LoadScript([]byte(`{"steps": [{"action": "click"}]}`)); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestRunnerStep_Screenshot(t *testing.T) {
	e := newTestEngine(t, nil, Options{Width: 16, Height: 16})
	e.logw = &bytes.Buffer{}
	runner, err := LoadScript([]byte(`{"steps": [{"action": "screenshot", "label": "snap"}]}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.step(e)
	if len(e.screenshotQueue) != 1 || e.screenshotQueue[0] != "snap" {
		t.Errorf("queue = %v, want [snap]", e.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("runner should be done after its last step")
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	e := newTestEngine(t, nil, Options{Width: 16, Height: 16})
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "after"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	for i := range 3 {
		runner.step(e)
		if len(e.screenshotQueue) != 0 {
			t.Fatalf("screenshot queued during wait frame %d", i+1)
		}
	}
	runner.step(e)
	if len(e.screenshotQueue) != 1 {
		t.Errorf("queue len = %d after wait, want 1", len(e.screenshotQueue))
	}
}

func TestRunnerStopsEngine(t *testing.T) {
	e := newTestEngine(t, helloScenes(), Options{Width: 64, Height: 36})
	runner, err := LoadScript([]byte(`{"steps": [{"action": "wait", "frames": 5}, {"action": "stop"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	e.SetScript(runner)

	s := newRecordingSurface(64, 36)
	for i := 0; i < 100 && !e.Stopped(); i++ {
		e.Frame(s)
	}
	if !e.Stopped() || !runner.Done() {
		t.Fatal("script should stop the engine")
	}
	if e.Tick() != 6 {
		t.Errorf("Tick = %d, want 6", e.Tick())
	}
}
