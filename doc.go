// Package chronogrid renders a digital time display where every digit is
// built from a 6x4 grid of miniature two-handed analog clocks, driven by
// [Ebitengine].
//
// Each clock animates its hands independently: targets are accumulated so
// hands only ever rotate clockwise, motion is eased with a quadratic
// ease-in-out curve (via [gween]), and clocks cross-fade between an active
// and an inactive style while hand rotation is still in flight.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	cfg := chronogrid.LoadOrDefault(chronogrid.DefaultPath())
//	chronogrid.Run(cfg, chronogrid.RunConfig{
//		Title: "Chronogrid", Width: 1200, Height: 400,
//	})
//
// For full control, own the pieces yourself: build a [Display], push digit
// strings into it, and advance it from any fixed-rate driver:
//
//	display := chronogrid.NewDisplay(6, cfg.ClockParams())
//	display.Update(chronogrid.TimeDigits(time.Now()))
//	// each frame:
//	display.Advance(time.Now())
//
// [Display.Advance] resolves every clock to a draw state (two cumulative
// hand angles, a hand color, a center-dot opacity) that a renderer consumes
// each frame. [Renderer] draws those states with Ebitengine's vector API,
// and [Scheduler] is a standalone ~60 Hz driver for hosts that are not
// games.
//
// # Angle convention
//
// Raw angles are degrees in [0,360): 0 points to 12 o'clock, 90 to
// 3 o'clock, 180 to 6 o'clock, 270 to 9 o'clock. Renderers apply a fixed
// -90 degree offset before converting to drawing radians so 0 points up.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package chronogrid
