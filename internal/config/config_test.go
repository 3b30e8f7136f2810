package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/dappled/internal/controls"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if !cfg.UI.Panel {
		t.Error("expected the panel host by default")
	}

	if cfg.Scene.Wind != "med" {
		t.Errorf("expected wind 'med', got %s", cfg.Scene.Wind)
	}
	if cfg.Scene.SunAngle != 0.5 {
		t.Errorf("expected sun angle 0.5, got %f", cfg.Scene.SunAngle)
	}
	if cfg.Scene.Night {
		t.Error("expected day by default")
	}

	if cfg.Camera.FOV != 35 {
		t.Errorf("expected fov 35, got %f", cfg.Camera.FOV)
	}
	if !cfg.Shadows.Enabled || cfg.Shadows.Resolution != 2048 {
		t.Errorf("expected 2048 shadows, got %+v", cfg.Shadows)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Telemetry.OutputDir != "" {
		t.Errorf("expected telemetry output disabled, got %s", cfg.Telemetry.OutputDir)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate cleanly: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  msaa: 8

ui:
  panel: false
  show_fps: true

scene:
  seed: 12345
  wind: fast
  sun_angle: 0.25
  night: true

camera:
  fov: 50
  damping: 0.1

shadows:
  enabled: false

logging:
  level: "debug"
  log_file: "dappled.log"

telemetry:
  output_dir: "runs/a"
  window: 120
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen || cfg.Graphics.VSync {
		t.Error("expected fullscreen without vsync")
	}
	if cfg.Graphics.MSAA != 8 {
		t.Errorf("expected msaa 8, got %d", cfg.Graphics.MSAA)
	}
	if cfg.UI.Panel || !cfg.UI.ShowFPS {
		t.Errorf("ui got %+v", cfg.UI)
	}
	if cfg.Scene.Seed != 12345 || cfg.Scene.Wind != "fast" || cfg.Scene.SunAngle != 0.25 || !cfg.Scene.Night {
		t.Errorf("scene got %+v", cfg.Scene)
	}
	if cfg.Camera.FOV != 50 || cfg.Camera.Damping != 0.1 {
		t.Errorf("camera got %+v", cfg.Camera)
	}
	// Unset keys keep their defaults.
	if cfg.Camera.MaxDistance != 120 {
		t.Errorf("expected max distance default 120, got %f", cfg.Camera.MaxDistance)
	}
	if cfg.Shadows.Enabled {
		t.Error("expected shadows disabled")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "dappled.log" {
		t.Errorf("logging got %+v", cfg.Logging)
	}
	if cfg.Telemetry.OutputDir != "runs/a" || cfg.Telemetry.Window != 120 {
		t.Errorf("telemetry got %+v", cfg.Telemetry)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Fatal("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
	if !strings.Contains(strings.ToLower(dir), "dappled") {
		t.Errorf("ConfigDir should be app specific, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		check   func(*testing.T, *Config)
	}{
		{
			name:   "wind name normalized",
			mutate: func(c *Config) { c.Scene.Wind = " FAST " },
			check: func(t *testing.T, c *Config) {
				if c.Scene.Wind != "fast" || c.WindPreset() != controls.WindFast {
					t.Errorf("wind got %q", c.Scene.Wind)
				}
			},
		},
		{
			name:   "medium alias",
			mutate: func(c *Config) { c.Scene.Wind = "Medium" },
			check: func(t *testing.T, c *Config) {
				if c.Scene.Wind != "med" {
					t.Errorf("wind got %q, want med", c.Scene.Wind)
				}
			},
		},
		{
			name:    "unknown wind falls back to med",
			mutate:  func(c *Config) { c.Scene.Wind = "gale" },
			wantErr: true,
			check: func(t *testing.T, c *Config) {
				if c.WindPreset() != controls.WindMedium {
					t.Errorf("wind got %q, want med", c.Scene.Wind)
				}
			},
		},
		{
			name:    "sun angle clamped high",
			mutate:  func(c *Config) { c.Scene.SunAngle = 1.7 },
			wantErr: true,
			check: func(t *testing.T, c *Config) {
				if c.Scene.SunAngle != 1 {
					t.Errorf("sun angle got %v, want 1", c.Scene.SunAngle)
				}
			},
		},
		{
			name:    "sun angle clamped low",
			mutate:  func(c *Config) { c.Scene.SunAngle = -0.2 },
			wantErr: true,
			check: func(t *testing.T, c *Config) {
				if c.Scene.SunAngle != 0 {
					t.Errorf("sun angle got %v, want 0", c.Scene.SunAngle)
				}
			},
		},
		{
			name:    "non-positive window size",
			mutate:  func(c *Config) { c.Graphics.Width = 0; c.Graphics.Height = -5 },
			wantErr: true,
			check: func(t *testing.T, c *Config) {
				if c.Graphics.Width != 1280 || c.Graphics.Height != 720 {
					t.Errorf("size got %dx%d", c.Graphics.Width, c.Graphics.Height)
				}
			},
		},
		{
			name:   "msaa zero means off",
			mutate: func(c *Config) { c.Graphics.MSAA = 0 },
			check: func(t *testing.T, c *Config) {
				if c.Graphics.MSAA != 1 {
					t.Errorf("msaa got %d, want 1", c.Graphics.MSAA)
				}
			},
		},
		{
			name:    "inverted distance range",
			mutate:  func(c *Config) { c.Camera.MinDistance = 50; c.Camera.MaxDistance = 10 },
			wantErr: true,
			check: func(t *testing.T, c *Config) {
				if c.Camera.MinDistance != 5 || c.Camera.MaxDistance != 120 {
					t.Errorf("range got [%v, %v]", c.Camera.MinDistance, c.Camera.MaxDistance)
				}
			},
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "chatty" },
			wantErr: true,
			check: func(t *testing.T, c *Config) {
				if c.Logging.Level != "info" {
					t.Errorf("level got %q", c.Logging.Level)
				}
			},
		},
		{
			name:   "telemetry window defaulted",
			mutate: func(c *Config) { c.Telemetry.Window = 0 },
			check: func(t *testing.T, c *Config) {
				if c.Telemetry.Window != 60 {
					t.Errorf("window got %d", c.Telemetry.Window)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			tt.check(t, cfg)
		})
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.UI.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "scene flags",
			setup: func() {
				*flagSeed = 99
				*flagWind = "slow"
				*flagNight = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Seed != 99 || cfg.Scene.Wind != "slow" || !cfg.Scene.Night {
					t.Errorf("scene got %+v", cfg.Scene)
				}
			},
			teardown: func() {
				*flagSeed = 0
				*flagWind = ""
				*flagNight = false
			},
		},
		{
			name:  "no-panel flag",
			setup: func() { *flagNoPanel = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.UI.Panel {
					t.Error("expected panel disabled")
				}
			},
			teardown: func() { *flagNoPanel = false },
		},
		{
			name:  "telemetry flag",
			setup: func() { *flagTelemetry = "out" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Telemetry.OutputDir != "out" {
					t.Errorf("expected output dir 'out', got %s", cfg.Telemetry.OutputDir)
				}
			},
			teardown: func() { *flagTelemetry = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			if err := applyFlags(cfg); err != nil {
				t.Fatalf("applyFlags: %v", err)
			}
			tt.verify(t, cfg)
		})
	}
}

func TestApplyFlagsRejectsUnknownWind(t *testing.T) {
	*flagWind = "hurricane"
	defer func() { *flagWind = "" }()

	if err := applyFlags(Default()); err == nil {
		t.Error("expected error for unknown wind preset")
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
scene:
  seed: 7
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width from flag, height and seed from file.
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
	if cfg.Scene.Seed != 7 {
		t.Errorf("expected seed 7 from file, got %d", cfg.Scene.Seed)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Scene.Seed = 4242
	cfg.Scene.Wind = "fast"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if loaded.Scene.Seed != 4242 || loaded.Scene.Wind != "fast" {
		t.Errorf("round trip got %+v", loaded.Scene)
	}
}
