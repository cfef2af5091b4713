package chronogrid

import (
	"math"
	"time"

	"github.com/tanema/gween/ease"
)

// timeNow is indirected for tests.
var timeNow = time.Now

// angleOffsetDegrees rotates drawing angles so 0 degrees points to
// 12 o'clock instead of 3 o'clock.
const angleOffsetDegrees = -90.0

// degToRad converts degrees to radians with the 12-o'clock offset applied.
func degToRad(deg float64) float64 {
	return (deg + angleOffsetDegrees) * math.Pi / 180
}

// ClockParams configures a Clock at construction. Parameters are not mutable
// mid-run; rebuild the owning display to change them.
type ClockParams struct {
	// Duration of a hand rotation animation. Zero or negative means targets
	// are reached on the first Advance after SetTarget.
	Duration time.Duration

	// Palette supplies the active/inactive hand colors the clock resolves
	// its draw state from, plus the face colors a renderer uses.
	Palette Palette

	// RestPoses are the hand positions that mark a clock as background
	// filler. Nil selects {RestPrimary, RestAlternate}.
	RestPoses []Position
}

func (p ClockParams) withDefaults() ClockParams {
	if p.RestPoses == nil {
		p.RestPoses = []Position{RestPrimary, RestAlternate}
	}
	return p
}

// DrawState is the fully resolved per-frame output of a Clock: everything a
// stateless renderer needs to draw the face.
type DrawState struct {
	HourAngle     float64 // cumulative hour-hand angle, degrees
	MinuteAngle   float64 // cumulative minute-hand angle, degrees
	Hand          Color   // resolved hand color, cross-fade applied
	CenterOpacity float64 // center-dot opacity, cross-fade applied
}

// HourRadians returns the hour-hand drawing angle in radians, with the
// 12-o'clock offset applied.
func (s DrawState) HourRadians() float64 { return degToRad(s.HourAngle) }

// MinuteRadians returns the minute-hand drawing angle in radians, with the
// 12-o'clock offset applied.
func (s DrawState) MinuteRadians() float64 { return degToRad(s.MinuteAngle) }

// Clock is the animation state machine for a single two-handed clock face.
// It is either settled or animating: SetTarget always starts an animation
// (even with a zero angular delta, which may still carry an active/inactive
// cross-fade), Advance settles it once the duration has elapsed, and
// SetImmediate forces the settled state from anywhere.
//
// Hand targets accumulate monotonically: each SetTarget rotates the hands
// along the shortest clockwise path from the previous target, never
// backwards. A SetTarget issued mid-animation restarts interpolation from
// the current, possibly partially animated, angles without a visible jump.
//
// Clocks are not safe for concurrent use; the display and its driver run on
// one logical thread.
type Clock struct {
	hour   angleTracker
	minute angleTracker

	// Displayed cumulative angles, degrees. Trail the trackers while an
	// animation is in flight.
	curHour   float64
	curMinute float64

	startHour    float64
	startMinute  float64
	targetHour   float64
	targetMinute float64

	active       bool
	targetActive bool

	animStart time.Time
	animating bool

	params ClockParams
	draw   DrawState
}

// NewClock creates a settled clock with both hands at 0 degrees, rendered in
// the active style.
func NewClock(params ClockParams) *Clock {
	c := &Clock{
		params:       params.withDefaults(),
		active:       true,
		targetActive: true,
	}
	c.draw = c.settled()
	return c
}

// SetTarget starts an animated transition of both hands toward the given raw
// angles (degrees, reduced modulo 360).
//
// The active flag transitions lazily: the target style is derived from the
// rest-pose test here, but the current style is kept until the animation
// settles so the renderer can cross-fade between the two.
func (c *Clock) SetTarget(hour, minute int) {
	h := normalizeAngle(float64(hour))
	m := normalizeAngle(float64(minute))

	// The first target seeds a hand directly at its angle: the very first
	// assignment implies no rotation, only a possible cross-fade.
	firstHour := !c.hour.seeded
	firstMinute := !c.minute.seeded
	c.targetHour = c.hour.target(h)
	c.targetMinute = c.minute.target(m)
	if firstHour {
		c.curHour = c.targetHour
	}
	if firstMinute {
		c.curMinute = c.targetMinute
	}

	c.startHour = c.curHour
	c.startMinute = c.curMinute

	c.animStart = timeNow()
	c.animating = true
	c.targetActive = !c.atRest(h, m)
}

// SetImmediate snaps both hands to the given raw angles without animation,
// deliberately breaking cumulative continuity, and applies the matching
// active/inactive style with no cross-fade.
func (c *Clock) SetImmediate(hour, minute int) {
	h := normalizeAngle(float64(hour))
	m := normalizeAngle(float64(minute))

	c.hour.set(h)
	c.minute.set(m)
	c.curHour, c.curMinute = h, m
	c.startHour, c.targetHour = h, h
	c.startMinute, c.targetMinute = m, m
	c.animating = false

	active := !c.atRest(h, m)
	c.active = active
	c.targetActive = active
	c.draw = c.settled()
}

// Advance resolves the clock's draw state at the given instant. While an
// animation is in flight it interpolates hand angles, hand color, and
// center-dot opacity with a shared eased progress; once the duration has
// elapsed it snaps to the exact targets and settles. Advancing a settled
// clock is idempotent.
func (c *Clock) Advance(now time.Time) DrawState {
	if !c.animating {
		c.draw = c.settled()
		return c.draw
	}

	elapsed := now.Sub(c.animStart)
	dur := c.params.Duration
	if dur <= 0 || elapsed >= dur {
		c.curHour = c.targetHour
		c.curMinute = c.targetMinute
		c.active = c.targetActive
		c.animating = false
		c.draw = c.settled()
		return c.draw
	}

	progress := clamp01(float64(elapsed) / float64(dur))
	eased := easeInOut(progress)

	c.curHour = c.startHour + (c.targetHour-c.startHour)*eased
	c.curMinute = c.startMinute + (c.targetMinute-c.startMinute)*eased

	hand := c.styleColor(c.active)
	opacity := styleOpacity(c.active)
	if c.active != c.targetActive {
		from := c.styleColor(c.active)
		to := c.styleColor(c.targetActive)
		hand = from.Lerp(to, eased)
		opacity = lerp(styleOpacity(c.active), styleOpacity(c.targetActive), eased)
	}

	c.draw = DrawState{
		HourAngle:     c.curHour,
		MinuteAngle:   c.curMinute,
		Hand:          hand,
		CenterOpacity: opacity,
	}
	return c.draw
}

// State returns the draw state resolved by the most recent Advance,
// SetImmediate, or construction.
func (c *Clock) State() DrawState { return c.draw }

// Animating reports whether an animation is in flight.
func (c *Clock) Animating() bool { return c.animating }

// Active reports the clock's current visual style. During a cross-fade it
// keeps the outgoing style until the animation settles.
func (c *Clock) Active() bool { return c.active }

func (c *Clock) settled() DrawState {
	return DrawState{
		HourAngle:     c.curHour,
		MinuteAngle:   c.curMinute,
		Hand:          c.styleColor(c.active),
		CenterOpacity: styleOpacity(c.active),
	}
}

func (c *Clock) styleColor(active bool) Color {
	if active {
		return c.params.Palette.Active
	}
	return c.params.Palette.Inactive
}

func styleOpacity(active bool) float64 {
	if active {
		return centerOpacityActive
	}
	return centerOpacityInactive
}

// atRest reports whether the raw (hour, minute) pair matches one of the
// configured rest poses. Poses are integer degree pairs, so the comparison
// is exact.
func (c *Clock) atRest(hour, minute float64) bool {
	for _, p := range c.params.RestPoses {
		if hour == float64(p.Hour) && minute == float64(p.Minute) {
			return true
		}
	}
	return false
}

// easeInOut maps linear progress in [0,1] to quadratic ease-in-out progress:
// 2t^2 below the midpoint, -1+(4-2t)t above it. Monotonic, symmetric about
// t=0.5, with easeInOut(0)=0 and easeInOut(1)=1.
func easeInOut(t float64) float64 {
	return float64(ease.InOutQuad(float32(t), 0, 1, 1))
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
