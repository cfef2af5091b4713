package chronogrid

// angleTracker converts raw target angles into a monotonically increasing
// cumulative angle, so a hand crossing the 360->0 boundary keeps rotating
// clockwise instead of snapping backwards.
//
// The tracker owns the authoritative cumulative value: each target call adds
// the shortest clockwise delta, which is always in [0, 360), so the sequence
// of targets never regresses even when a new target arrives while the
// previous animation is still in flight. set breaks that continuity on
// purpose and is reserved for immediate (non-animated) updates.
type angleTracker struct {
	cumulative float64 // cumulative angle of the latest target, degrees
	lastRaw    float64 // last raw target, normalized to [0, 360)
	seeded     bool    // false until the first target or set call
}

// target records raw (degrees, reduced modulo 360) as the new last angle,
// advances the cumulative angle by the shortest clockwise path, and returns
// it. The first call seeds the tracker: cumulative becomes the raw angle
// itself and no rotation is implied.
func (a *angleTracker) target(raw float64) float64 {
	raw = normalizeAngle(raw)
	if !a.seeded {
		a.seeded = true
		a.lastRaw = raw
		a.cumulative = raw
		return raw
	}
	diff := raw - a.lastRaw
	if diff < 0 {
		diff += 360
	}
	a.lastRaw = raw
	a.cumulative += diff
	return a.cumulative
}

// set forces the cumulative angle to raw, resetting continuity. Used by
// immediate updates where no visual rotation occurs.
func (a *angleTracker) set(raw float64) {
	raw = normalizeAngle(raw)
	a.seeded = true
	a.lastRaw = raw
	a.cumulative = raw
}
