package chronogrid

import "time"

// Display owns an ordered sequence of digit grids, one per character
// position of the rendered time string ("HHMMSS" for the default six).
type Display struct {
	digits []*DigitGrid
}

// NewDisplay creates a display with the given number of digit positions.
func NewDisplay(positions int, params ClockParams) *Display {
	d := &Display{digits: make([]*DigitGrid, positions)}
	for i := range d.digits {
		d.digits[i] = NewDigitGrid(params)
	}
	return d
}

// Update animates the display toward the given digit string. Each character
// position maps to one digit grid; positions whose character is not a
// decimal digit are skipped, as are characters beyond the display's width.
func (d *Display) Update(digits string) {
	d.update(digits, (*DigitGrid).SetDigit)
}

// UpdateImmediate is Update without animation, used when the display must
// show the correct time instantly (first frame, config reload).
func (d *Display) UpdateImmediate(digits string) {
	d.update(digits, (*DigitGrid).SetDigitImmediate)
}

func (d *Display) update(digits string, set func(*DigitGrid, int)) {
	for i := 0; i < len(digits) && i < len(d.digits); i++ {
		ch := digits[i]
		if ch < '0' || ch > '9' {
			continue
		}
		set(d.digits[i], int(ch-'0'))
	}
}

// Advance resolves every clock in the display at the given instant and
// reports whether any visual state changed.
func (d *Display) Advance(now time.Time) bool {
	changed := false
	for _, g := range d.digits {
		if g.Advance(now) {
			changed = true
		}
	}
	return changed
}

// Animating reports whether any clock in the display has an animation in
// flight.
func (d *Display) Animating() bool {
	for _, g := range d.digits {
		if g.Animating() {
			return true
		}
	}
	return false
}

// Positions returns the number of digit positions.
func (d *Display) Positions() int { return len(d.digits) }

// Digit returns the grid at the given position.
func (d *Display) Digit(i int) *DigitGrid { return d.digits[i] }

// TimeDigits formats a wall-clock instant as the "HHMMSS" digit string
// consumed by Update.
func TimeDigits(t time.Time) string {
	return t.Format("150405")
}
