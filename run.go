package chronogrid

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig controls the window Run creates.
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// ShowFPS overlays an FPS/TPS readout in the top-left corner.
	ShowFPS bool

	// WatchPath enables config hot-reload: when the file at this path
	// changes, the config is reloaded and the display rebuilt with the
	// current time applied immediately. Empty disables watching.
	WatchPath string
}

// Run opens a window showing the current time as HH:MM:SS and blocks until
// the window is closed. The Ebitengine update loop (60 ticks per second) is
// the animation driver: each tick re-samples the wall clock, pushes a new
// digit string when the second rolls over, and advances every clock.
func Run(cfg *Config, rc RunConfig) error {
	if rc.Width <= 0 {
		rc.Width = 1200
	}
	if rc.Height <= 0 {
		rc.Height = 400
	}
	if rc.Title == "" {
		rc.Title = "Chronogrid"
	}

	a := newApp(cfg, rc)
	if rc.WatchPath != "" {
		a.watcher = WatchConfig(rc.WatchPath)
		defer a.watcher.Stop()
	}

	ebiten.SetWindowTitle(rc.Title)
	ebiten.SetWindowSize(rc.Width, rc.Height)
	ebiten.SetWindowDecorated(cfg.Window.Decorated)

	return ebiten.RunGame(a)
}

// app implements ebiten.Game over a Display.
type app struct {
	rc RunConfig

	display    *Display
	renderer   *Renderer
	background Color

	watcher  *ConfigWatcher
	lastTime string
	fpsText  string
	fpsSince float64
}

func newApp(cfg *Config, rc RunConfig) *app {
	a := &app{rc: rc}
	a.apply(cfg)
	// First frame animates in from the rest state.
	a.lastTime = TimeDigits(timeNow())
	a.display.Update(a.lastTime)
	return a
}

// apply rebuilds the display and renderer from a config. Used at startup
// and on hot reload; animation state does not survive a reload, so the
// caller pushes the current time immediately afterwards.
func (a *app) apply(cfg *Config) {
	a.display = NewDisplay(6, cfg.ClockParams())
	a.renderer = NewRenderer(cfg)

	bg := ParseHexColor(cfg.Colors.WindowBackground)
	bg.A *= clamp01(cfg.Window.Opacity)
	a.background = bg
}

func (a *app) Update() error {
	now := timeNow()

	if a.watcher != nil && a.watcher.TakeReload() {
		a.apply(LoadOrDefault(a.rc.WatchPath))
		a.lastTime = TimeDigits(now)
		a.display.UpdateImmediate(a.lastTime)
	}

	if digits := TimeDigits(now); digits != a.lastTime {
		a.lastTime = digits
		a.display.Update(digits)
	}

	a.display.Advance(now)

	if a.rc.ShowFPS {
		a.fpsSince += 1.0 / float64(ebiten.TPS())
		if a.fpsText == "" || a.fpsSince >= 0.5 {
			a.fpsSince = 0
			a.fpsText = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		}
	}
	return nil
}

func (a *app) Draw(screen *ebiten.Image) {
	screen.Fill(a.background.toRGBA())
	a.renderer.Draw(screen, a.display)
	if a.rc.ShowFPS {
		ebitenutil.DebugPrint(screen, a.fpsText)
	}
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.rc.Width, a.rc.Height
}
