package chronogrid

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// Lerp returns the component-wise linear interpolation between c and to at t.
// t=0 yields c, t=1 yields to. t is not clamped.
func (c Color) Lerp(to Color, t float64) Color {
	return Color{
		R: c.R + (to.R-c.R)*t,
		G: c.G + (to.G-c.G)*t,
		B: c.B + (to.B-c.B)*t,
		A: c.A + (to.A-c.A)*t,
	}
}

// toRGBA converts a Color to a color.RGBA (premultiplied).
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Palette holds the four colors a clock face is drawn with.
type Palette struct {
	Active   Color // hand color while the clock is part of the digit shape
	Inactive Color // hand color while the clock is background filler
	Face     Color // clock face fill
	Border   Color // clock face outline
}

// Position is a pair of raw hand angles in degrees, each in [0,360).
// 0 points to 12 o'clock, 90 to 3 o'clock, 180 to 6 o'clock, 270 to 9 o'clock.
type Position struct {
	Hour   int
	Minute int
}

// Rest poses. A clock whose target equals one of these is background filler
// and renders in the inactive style. The poses are data, not logic: pass a
// different set via ClockParams.RestPoses to extend them.
var (
	// RestPrimary is the canonical rest pose (SE diagonal).
	RestPrimary = Position{Hour: 135, Minute: 315}
	// RestAlternate is the secondary rest pose (SW diagonal).
	RestAlternate = Position{Hour: 225, Minute: 225}
)

// Grid dimensions of a single digit.
const (
	GridRows = 6
	GridCols = 4

	// ClocksPerDigit is the number of clocks forming one digit.
	ClocksPerDigit = GridRows * GridCols
)

// Center-dot opacities for the two visual styles.
const (
	centerOpacityActive   = 0.5
	centerOpacityInactive = 1.0
)

// normalizeAngle reduces an angle in degrees to [0, 360).
func normalizeAngle(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}
