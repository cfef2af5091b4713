package chronogrid

import (
	"math"
	"testing"
)

func TestAngleTrackerFirstCallSeeds(t *testing.T) {
	var a angleTracker

	got := a.target(350)
	if got != 350 {
		t.Errorf("first target = %f, want 350", got)
	}
	if a.cumulative != 350 {
		t.Errorf("cumulative = %f, want 350", a.cumulative)
	}
}

func TestAngleTrackerWrapsForward(t *testing.T) {
	var a angleTracker
	a.target(350)

	// 350 -> 10 is 20 degrees clockwise, not 340 backwards.
	got := a.target(10)
	if got != 370 {
		t.Errorf("target after wrap = %f, want 370", got)
	}
}

func TestAngleTrackerZeroDelta(t *testing.T) {
	var a angleTracker
	a.target(350)
	a.target(10)

	// Same raw angle again: a full no-op, cumulative unchanged.
	got := a.target(10)
	if got != 370 {
		t.Errorf("target after zero delta = %f, want 370", got)
	}
}

func TestAngleTrackerNormalizesInput(t *testing.T) {
	var a angleTracker

	if got := a.target(730); got != 10 {
		t.Errorf("target(730) = %f, want 10", got)
	}
	if got := a.target(-90); got != 270 {
		t.Errorf("target(-90) = %f, want 270 cumulative", got)
	}
}

func TestAngleTrackerMonotonicOverSequence(t *testing.T) {
	var a angleTracker

	angles := []float64{350, 10, 20, 355, 5, 180, 179, 0, 0, 90}
	prev := a.target(angles[0])
	for _, deg := range angles[1:] {
		got := a.target(deg)
		step := got - prev
		if step < 0 || step >= 360 {
			t.Fatalf("step to %f was %f, want in [0,360)", deg, step)
		}
		if math.Mod(got, 360) != normalizeAngle(deg) {
			t.Errorf("cumulative %f is not congruent to raw %f", got, deg)
		}
		prev = got
	}
}

func TestAngleTrackerSetBreaksContinuity(t *testing.T) {
	var a angleTracker
	a.target(350)
	a.target(10) // cumulative 370

	a.set(90)
	if a.cumulative != 90 {
		t.Errorf("cumulative after set = %f, want 90", a.cumulative)
	}

	// Continuity restarts from the forced angle.
	if got := a.target(100); got != 100 {
		t.Errorf("target after set = %f, want 100", got)
	}
}
