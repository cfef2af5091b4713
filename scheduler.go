package chronogrid

import "time"

// DefaultTickInterval is the scheduler cadence, ~60 Hz.
const DefaultTickInterval = 16 * time.Millisecond

// Scheduler is a fixed-rate driver over a display. It holds no per-clock
// state of its own; each tick sweeps Advance across the display tree and
// reports whether a redraw is needed.
//
// Hosts with their own frame loop (an Ebitengine game, for example) skip the
// Scheduler and call Display.Advance directly each update.
type Scheduler struct {
	display  *Display
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

// NewScheduler creates a scheduler driving the given display. A
// non-positive interval selects DefaultTickInterval.
func NewScheduler(display *Display, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Scheduler{
		display:  display,
		interval: interval,
	}
}

// Tick advances the whole display to the given instant and reports whether
// any clock changed, i.e. whether the host needs to redraw. Correctness does
// not depend on the host honoring the signal; redundant redraws are merely
// wasted work.
func (s *Scheduler) Tick(now time.Time) bool {
	return s.display.Advance(now)
}

// Run ticks the display at the configured cadence until Stop is called,
// invoking fn after every sweep with the tick instant and the redraw signal.
// The callback runs on the scheduler goroutine, which is the only goroutine
// that may mutate the display while Run is active: feed SetDigit/Update
// calls from inside fn.
func (s *Scheduler) Run(fn func(now time.Time, redraw bool)) {
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-s.stop:
				return
			case now := <-ticker.C:
				redraw := s.Tick(now)
				if fn != nil {
					fn(now, redraw)
				}
			}
		}
	}()
}

// Stop halts a running scheduler and waits for the tick goroutine to exit.
// Stopping a scheduler that was never started is a no-op.
func (s *Scheduler) Stop() {
	if s.stop == nil {
		return
	}
	close(s.stop)
	<-s.done
	s.stop = nil
}
