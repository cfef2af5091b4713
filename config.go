package chronogrid

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration. Every field has a default, so
// partial files are fine: unmarshalling overlays the file onto
// DefaultConfig.
type Config struct {
	Colors ColorConfig  `yaml:"colors"`
	Window WindowConfig `yaml:"window"`
	Clock  ClockConfig  `yaml:"clock"`
}

// ColorConfig holds hex color strings (#RRGGBB or #RRGGBBAA).
type ColorConfig struct {
	WindowBackground  string `yaml:"window_background"`
	ClockHandColor    string `yaml:"clock_hand_color"`
	ClockHandInactive string `yaml:"clock_hand_inactive"`
	ClockBg           string `yaml:"clock_bg"`
	ClockBorder       string `yaml:"clock_border"`
	SeparatorColor    string `yaml:"separator_color"`
}

// WindowConfig holds window chrome settings.
type WindowConfig struct {
	// Opacity in [0,1] is multiplied into the window background alpha.
	Opacity float64 `yaml:"opacity"`
	// Decorated enables the native title bar. Off by default.
	Decorated bool `yaml:"decorated"`
}

// ClockConfig holds geometry and animation settings.
type ClockConfig struct {
	// Size is the diameter of one clock face in pixels.
	Size int `yaml:"size"`
	// StrokeWidth is the hand width in pixels.
	StrokeWidth float64 `yaml:"stroke_width"`
	// ClockGap is the spacing between clocks inside a digit, in pixels.
	ClockGap int `yaml:"clock_gap"`
	// DigitGap is the spacing between adjacent digits, in pixels.
	DigitGap int `yaml:"digit_gap"`
	// AnimationDurationMs is the hand rotation duration in milliseconds.
	AnimationDurationMs int `yaml:"animation_duration_ms"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Colors: ColorConfig{
			WindowBackground:  "#0f0c29",
			ClockHandColor:    "#ff6b6b",
			ClockHandInactive: "#ff6b6b26",
			ClockBg:           "#ffffff08",
			ClockBorder:       "#ffffff1a",
			SeparatorColor:    "#ff6b6b",
		},
		Window: WindowConfig{
			Opacity:   1.0,
			Decorated: false,
		},
		Clock: ClockConfig{
			Size:                40,
			StrokeWidth:         2.0,
			ClockGap:            1,
			DigitGap:            8,
			AnimationDurationMs: 300,
		},
	}
}

// Load reads a YAML config file. Missing fields keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads the config at path, falling back to DefaultConfig if
// the file is missing or malformed. This is the recommended entry point for
// applications.
func LoadOrDefault(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// DefaultPath returns the platform config file location,
// e.g. ~/.config/chronogrid/config.yaml on Linux. Falls back to the working
// directory if the user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "chronogrid", "config.yaml")
}

// ClockParams resolves the per-clock animation parameters from the config.
func (c *Config) ClockParams() ClockParams {
	return ClockParams{
		Duration: time.Duration(c.Clock.AnimationDurationMs) * time.Millisecond,
		Palette:  c.Palette(),
	}
}

// Palette resolves the clock colors from the config.
func (c *Config) Palette() Palette {
	return Palette{
		Active:   ParseHexColor(c.Colors.ClockHandColor),
		Inactive: ParseHexColor(c.Colors.ClockHandInactive),
		Face:     ParseHexColor(c.Colors.ClockBg),
		Border:   ParseHexColor(c.Colors.ClockBorder),
	}
}

// ParseHexColor converts a #RRGGBB or #RRGGBBAA hex string to a normalized
// Color. The leading '#' is optional; six digits imply full opacity. Any
// malformed input resolves to opaque black rather than an error, so no bad
// color string ever reaches the animation core.
func ParseHexColor(hex string) Color {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint8 = 0, 0, 0, 255
	switch len(hex) {
	case 6:
		r, g, b = hexByte(hex[0:2]), hexByte(hex[2:4]), hexByte(hex[4:6])
	case 8:
		r, g, b = hexByte(hex[0:2]), hexByte(hex[2:4]), hexByte(hex[4:6])
		a = hexByteDefault(hex[6:8], 255)
	default:
		return Color{R: 0, G: 0, B: 0, A: 1}
	}

	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

func hexByte(s string) uint8 {
	return hexByteDefault(s, 0)
}

func hexByteDefault(s string, def uint8) uint8 {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return def
	}
	return uint8(v)
}
