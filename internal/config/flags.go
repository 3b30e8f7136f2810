package config

import (
	"flag"
	"fmt"

	"github.com/Faultbox/dappled/internal/controls"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging and the FPS overlay")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagSeed       = flag.Uint64("seed", 0, "Plant seed (0 keeps the configured seed)")
	flagWind       = flag.String("wind", "", "Initial wind preset: slow, med or fast")
	flagNight      = flag.Bool("night", false, "Start in night mode")
	flagNoPanel    = flag.Bool("no-panel", false, "Run the keyboard-only host without the panel")
	flagTelemetry  = flag.String("telemetry", "", "Directory for perf.csv and plant.csv")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.UI.ShowFPS = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagSeed != 0 {
		cfg.Scene.Seed = *flagSeed
	}
	if *flagWind != "" {
		if _, err := controls.ParseWind(*flagWind); err != nil {
			return fmt.Errorf("-wind: %w", err)
		}
		cfg.Scene.Wind = *flagWind
	}
	if *flagNight {
		cfg.Scene.Night = true
	}
	if *flagNoPanel {
		cfg.UI.Panel = false
	}
	if *flagTelemetry != "" {
		cfg.Telemetry.OutputDir = *flagTelemetry
	}
	return nil
}
