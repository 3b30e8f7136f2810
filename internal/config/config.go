// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	UI        UIConfig        `yaml:"ui"`
	Scene     SceneConfig     `yaml:"scene"`
	Camera    CameraConfig    `yaml:"camera"`
	Shadows   ShadowsConfig   `yaml:"shadows"`
	Logging   LoggingConfig   `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	MSAA       int  `yaml:"msaa"` // samples; 0 or 1 disables
}

// UIConfig holds interface settings.
type UIConfig struct {
	Panel         bool   `yaml:"panel"` // ImGui panel host; false runs the keyboard-only SDL host
	ShowFPS       bool   `yaml:"show_fps"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// SceneConfig holds the initial plant and environment.
type SceneConfig struct {
	Seed     uint64  `yaml:"seed"` // 0 picks a seed from the clock
	Wind     string  `yaml:"wind"` // slow, med or fast
	SunAngle float32 `yaml:"sun_angle"`
	Night    bool    `yaml:"night"`
}

// CameraConfig holds orbit camera settings.
type CameraConfig struct {
	FOV         float32 `yaml:"fov"` // vertical, degrees
	MinDistance float32 `yaml:"min_distance"`
	MaxDistance float32 `yaml:"max_distance"`
	Damping     float32 `yaml:"damping"`
}

// ShadowsConfig holds shadow map settings.
type ShadowsConfig struct {
	Enabled    bool `yaml:"enabled"`
	Resolution int  `yaml:"resolution"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// TelemetryConfig holds frame statistics settings.
type TelemetryConfig struct {
	OutputDir string `yaml:"output_dir"` // empty disables CSV output
	Window    int    `yaml:"window"`     // frames per stats window
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			MSAA:       4,
		},
		UI: UIConfig{
			Panel:         true,
			ShowFPS:       false,
			ScreenshotDir: "screenshots",
		},
		Scene: SceneConfig{
			Seed:     0,
			Wind:     "med",
			SunAngle: 0.5,
			Night:    false,
		},
		Camera: CameraConfig{
			FOV:         35,
			MinDistance: 5,
			MaxDistance: 120,
			Damping:     0.05,
		},
		Shadows: ShadowsConfig{
			Enabled:    true,
			Resolution: 2048,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Telemetry: TelemetryConfig{
			OutputDir: "",
			Window:    60,
		},
	}
}
