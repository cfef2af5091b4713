package chronogrid

import "testing"

func TestPatternCompleteness(t *testing.T) {
	for digit := 0; digit <= 9; digit++ {
		pattern := PatternFor(digit)
		cells := 0
		for row := 0; row < GridRows; row++ {
			for col := 0; col < GridCols; col++ {
				pos := pattern[row][col]
				cells++
				if pos.Hour < 0 || pos.Hour >= 360 {
					t.Errorf("digit %d cell (%d,%d): hour %d out of [0,360)", digit, row, col, pos.Hour)
				}
				if pos.Minute < 0 || pos.Minute >= 360 {
					t.Errorf("digit %d cell (%d,%d): minute %d out of [0,360)", digit, row, col, pos.Minute)
				}
			}
		}
		if cells != ClocksPerDigit {
			t.Errorf("digit %d has %d cells, want %d", digit, cells, ClocksPerDigit)
		}
	}
}

func TestPatternInvalidDigitFallsBackToZero(t *testing.T) {
	zero := PatternFor(0)
	for _, digit := range []int{-1, 10, 99} {
		if PatternFor(digit) != zero {
			t.Errorf("PatternFor(%d) should fall back to the pattern for 0", digit)
		}
	}
}

func TestPatternRestPose(t *testing.T) {
	if RestPrimary != (Position{Hour: 135, Minute: 315}) {
		t.Errorf("RestPrimary = %+v, want (135, 315)", RestPrimary)
	}
	if RestAlternate != (Position{Hour: 225, Minute: 225}) {
		t.Errorf("RestAlternate = %+v, want (225, 225)", RestAlternate)
	}

	// Digit 1 has background cells at its primary rest pose.
	pattern := PatternFor(1)
	if pattern[2][0] != RestPrimary {
		t.Errorf("digit 1 cell (2,0) = %+v, want the rest pose", pattern[2][0])
	}
}

func TestPatternEightAndZeroDifferOnlyInTheHole(t *testing.T) {
	eight := PatternFor(8)
	zero := PatternFor(0)

	diff := 0
	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			if eight[row][col] != zero[row][col] {
				diff++
			}
		}
	}
	// 8 differs from 0 exactly where the crossbar closes the middle.
	if diff == 0 {
		t.Fatal("patterns for 8 and 0 should not be identical")
	}
	if diff >= ClocksPerDigit {
		t.Fatal("patterns for 8 and 0 should share their outline cells")
	}
}
