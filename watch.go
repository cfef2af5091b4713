package chronogrid

import (
	"os"
	"sync/atomic"
	"time"
)

// Watcher polling and debounce intervals.
const (
	watchPollInterval = 500 * time.Millisecond
	watchDebounce     = 300 * time.Millisecond
)

// ConfigWatcher detects changes to the config file so the application can
// hot-reload it. A background goroutine polls the file's modification time;
// the main loop consumes the pending flag with TakeReload, keeping all
// display mutation on one thread. Rapid successive writes are debounced.
type ConfigWatcher struct {
	path     string
	poll     time.Duration
	debounce time.Duration
	pending  atomic.Bool
	stop     chan struct{}
	done     chan struct{}
}

// WatchConfig starts watching the config file at path. The file does not
// need to exist yet; it is picked up once it appears.
func WatchConfig(path string) *ConfigWatcher {
	return watchConfig(path, watchPollInterval, watchDebounce)
}

func watchConfig(path string, poll, debounce time.Duration) *ConfigWatcher {
	w := &ConfigWatcher{
		path:     path,
		poll:     poll,
		debounce: debounce,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go w.loop()
	return w
}

// TakeReload reports whether the config file changed since the last call,
// clearing the flag. Call it from the thread that owns the display.
func (w *ConfigWatcher) TakeReload() bool {
	return w.pending.Swap(false)
}

// Stop halts the watcher goroutine.
func (w *ConfigWatcher) Stop() {
	close(w.stop)
	<-w.done
}

func (w *ConfigWatcher) loop() {
	defer close(w.done)

	lastMod, _ := w.modTime()
	var lastSignal time.Time

	ticker := time.NewTicker(w.poll)
	defer ticker.Stop()

	for {
		select {
		case <-w.stop:
			return
		case <-ticker.C:
			mod, ok := w.modTime()
			if !ok || mod.Equal(lastMod) {
				continue
			}
			lastMod = mod
			if now := time.Now(); now.Sub(lastSignal) > w.debounce {
				lastSignal = now
				w.pending.Store(true)
			}
		}
	}
}

func (w *ConfigWatcher) modTime() (time.Time, bool) {
	info, err := os.Stat(w.path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}
