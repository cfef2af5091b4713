package chronogrid

import "time"

// DigitGrid owns the 6x4 grid of clocks forming one displayed digit. Clocks
// live in a flat arena indexed by row*GridCols+col; cells are independent
// and are updated in no particular order.
type DigitGrid struct {
	clocks [ClocksPerDigit]*Clock
}

// NewDigitGrid creates a digit grid of settled clocks sharing the given
// parameters.
func NewDigitGrid(params ClockParams) *DigitGrid {
	g := &DigitGrid{}
	for i := range g.clocks {
		g.clocks[i] = NewClock(params)
	}
	return g
}

// SetDigit animates all 24 clocks toward the pattern for the given digit.
// Digits outside 0..9 fall back to 0. Cells whose target equals their
// current pose still receive a zero-delta animation, keeping the state
// machine uniform.
func (g *DigitGrid) SetDigit(digit int) {
	pattern := PatternFor(digit)
	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			pos := pattern[row][col]
			g.Clock(row, col).SetTarget(pos.Hour, pos.Minute)
		}
	}
}

// SetDigitImmediate snaps all 24 clocks to the pattern for the given digit
// without animation.
func (g *DigitGrid) SetDigitImmediate(digit int) {
	pattern := PatternFor(digit)
	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			pos := pattern[row][col]
			g.Clock(row, col).SetImmediate(pos.Hour, pos.Minute)
		}
	}
}

// Advance resolves every clock at the given instant. It reports whether the
// sweep changed any visual state, which includes the sweep that settles an
// animation.
func (g *DigitGrid) Advance(now time.Time) bool {
	changed := false
	for _, c := range g.clocks {
		wasAnimating := c.Animating()
		c.Advance(now)
		if wasAnimating {
			changed = true
		}
	}
	return changed
}

// Animating reports whether any clock in the grid has an animation in
// flight.
func (g *DigitGrid) Animating() bool {
	for _, c := range g.clocks {
		if c.Animating() {
			return true
		}
	}
	return false
}

// Clock returns the clock at the given cell. Row and column are not range
// checked; callers iterate GridRows x GridCols.
func (g *DigitGrid) Clock(row, col int) *Clock {
	return g.clocks[row*GridCols+col]
}
