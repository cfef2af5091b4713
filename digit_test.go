package chronogrid

import (
	"testing"
	"time"
)

func TestDigitGridSetDigitImmediate(t *testing.T) {
	freezeTime(t, time.Unix(0, 0))

	g := NewDigitGrid(testParams(300 * time.Millisecond))
	g.SetDigitImmediate(1)

	pattern := PatternFor(1)
	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			c := g.Clock(row, col)
			pos := pattern[row][col]
			s := c.State()
			if s.HourAngle != float64(pos.Hour) || s.MinuteAngle != float64(pos.Minute) {
				t.Errorf("cell (%d,%d) = (%f,%f), want (%d,%d)",
					row, col, s.HourAngle, s.MinuteAngle, pos.Hour, pos.Minute)
			}
			wantActive := pos != RestPrimary && pos != RestAlternate
			if c.Active() != wantActive {
				t.Errorf("cell (%d,%d) active = %v, want %v", row, col, c.Active(), wantActive)
			}
		}
	}
}

func TestDigitGridSetDigitAnimatesAllCells(t *testing.T) {
	freezeTime(t, time.Unix(0, 0))

	g := NewDigitGrid(testParams(300 * time.Millisecond))
	g.SetDigitImmediate(8)
	g.SetDigit(0)

	// Every cell enters Animating, including cells whose pose is unchanged
	// between the two digits (zero-delta animations).
	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			if !g.Clock(row, col).Animating() {
				t.Errorf("cell (%d,%d) should be animating after SetDigit", row, col)
			}
		}
	}
	if !g.Animating() {
		t.Error("grid should report animating")
	}
}

func TestDigitGridEightToZeroDeltas(t *testing.T) {
	start := time.Unix(0, 0)
	freezeTime(t, start)

	g := NewDigitGrid(testParams(300 * time.Millisecond))
	g.SetDigitImmediate(8)
	g.SetDigit(0)
	g.Advance(start.Add(400 * time.Millisecond))

	eight := PatternFor(8)
	zero := PatternFor(0)
	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			c := g.Clock(row, col)
			s := c.State()
			if eight[row][col] == zero[row][col] {
				// Unchanged cells settle exactly where they started.
				pos := eight[row][col]
				if s.HourAngle != float64(pos.Hour) || s.MinuteAngle != float64(pos.Minute) {
					t.Errorf("unchanged cell (%d,%d) moved to (%f,%f)", row, col, s.HourAngle, s.MinuteAngle)
				}
			} else {
				// Changed cells land congruent to the new pose, having
				// rotated at most one full turn.
				pos := zero[row][col]
				if normalizeAngle(s.HourAngle) != float64(pos.Hour) {
					t.Errorf("cell (%d,%d) hour = %f, want congruent to %d", row, col, s.HourAngle, pos.Hour)
				}
				if s.HourAngle < float64(eight[row][col].Hour) {
					t.Errorf("cell (%d,%d) hour regressed", row, col)
				}
			}
		}
	}
}

func TestDigitGridAdvanceReportsSettlingSweep(t *testing.T) {
	start := time.Unix(0, 0)
	freezeTime(t, start)

	g := NewDigitGrid(testParams(100 * time.Millisecond))
	g.SetDigit(5)

	if !g.Advance(start.Add(50 * time.Millisecond)) {
		t.Error("mid-flight sweep should report a change")
	}
	// The sweep that settles the animation still mutates state.
	if !g.Advance(start.Add(200 * time.Millisecond)) {
		t.Error("settling sweep should report a change")
	}
	// Fully settled: nothing changes anymore.
	if g.Advance(start.Add(300 * time.Millisecond)) {
		t.Error("settled sweep should report no change")
	}
}

func TestDigitGridInvalidDigitFallsBack(t *testing.T) {
	freezeTime(t, time.Unix(0, 0))

	a := NewDigitGrid(testParams(0))
	b := NewDigitGrid(testParams(0))
	a.SetDigitImmediate(42)
	b.SetDigitImmediate(0)

	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			if a.Clock(row, col).State() != b.Clock(row, col).State() {
				t.Fatalf("cell (%d,%d): invalid digit should render as 0", row, col)
			}
		}
	}
}
