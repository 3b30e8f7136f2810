package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/dappled/internal/controls"
)

// Validate normalizes the config in place. Out-of-range values are clamped
// or replaced with defaults; the returned error lists what was changed and
// is meant to be logged as a warning, not treated as fatal.
func (c *Config) Validate() error {
	def := Default()
	var problems []error

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		problems = append(problems, fmt.Errorf("window size %dx%d, using %dx%d",
			c.Graphics.Width, c.Graphics.Height, def.Graphics.Width, def.Graphics.Height))
		c.Graphics.Width, c.Graphics.Height = def.Graphics.Width, def.Graphics.Height
	}
	if c.Graphics.MSAA < 1 {
		c.Graphics.MSAA = 1
	} else if c.Graphics.MSAA > 16 {
		problems = append(problems, fmt.Errorf("msaa %d, using 16", c.Graphics.MSAA))
		c.Graphics.MSAA = 16
	}

	w, err := controls.ParseWind(c.Scene.Wind)
	if err != nil {
		problems = append(problems, err)
	}
	c.Scene.Wind = strings.ToLower(w.String())

	if a := c.Scene.SunAngle; a != a || a < 0 || a > 1 {
		clamped := min(1, max(0, a))
		if a != a {
			clamped = def.Scene.SunAngle
		}
		problems = append(problems, fmt.Errorf("sun angle %v, using %v", a, clamped))
		c.Scene.SunAngle = clamped
	}

	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		problems = append(problems, fmt.Errorf("camera fov %v, using %v", c.Camera.FOV, def.Camera.FOV))
		c.Camera.FOV = def.Camera.FOV
	}
	if c.Camera.MinDistance <= 0 || c.Camera.MaxDistance < c.Camera.MinDistance {
		problems = append(problems, fmt.Errorf("camera distance range [%v, %v], using [%v, %v]",
			c.Camera.MinDistance, c.Camera.MaxDistance, def.Camera.MinDistance, def.Camera.MaxDistance))
		c.Camera.MinDistance, c.Camera.MaxDistance = def.Camera.MinDistance, def.Camera.MaxDistance
	}
	if c.Camera.Damping <= 0 || c.Camera.Damping > 1 {
		problems = append(problems, fmt.Errorf("camera damping %v, using %v", c.Camera.Damping, def.Camera.Damping))
		c.Camera.Damping = def.Camera.Damping
	}

	if c.Shadows.Resolution <= 0 {
		c.Shadows.Resolution = def.Shadows.Resolution
	}

	switch level := strings.ToLower(strings.TrimSpace(c.Logging.Level)); level {
	case "debug", "info", "warn", "warning", "error":
		c.Logging.Level = level
	default:
		problems = append(problems, fmt.Errorf("log level %q, using %q", c.Logging.Level, def.Logging.Level))
		c.Logging.Level = def.Logging.Level
	}

	if c.Telemetry.Window <= 0 {
		c.Telemetry.Window = def.Telemetry.Window
	}

	return errors.Join(problems...)
}

// WindPreset returns the configured wind preset. Call after Validate.
func (c *Config) WindPreset() controls.Wind {
	w, _ := controls.ParseWind(c.Scene.Wind)
	return w
}
