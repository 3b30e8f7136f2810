package controls

import (
	"fmt"
	"strings"
)

// Wind is one of the wind presets offered to the user.
type Wind int

const (
	WindSlow Wind = iota
	WindMedium
	WindFast
)

// Winds lists the presets in display order.
var Winds = []Wind{WindSlow, WindMedium, WindFast}

var windStrengths = [...]float32{
	WindSlow:   0.5,
	WindMedium: 1.5,
	WindFast:   3.5,
}

var windLabels = [...]string{
	WindSlow:   "Slow",
	WindMedium: "Med",
	WindFast:   "Fast",
}

// Strength returns the oscillation multiplier of the preset.
func (w Wind) Strength() float32 {
	if w < WindSlow || w > WindFast {
		return windStrengths[WindMedium]
	}
	return windStrengths[w]
}

// String returns the short panel label.
func (w Wind) String() string {
	if w < WindSlow || w > WindFast {
		return fmt.Sprintf("Wind(%d)", int(w))
	}
	return windLabels[w]
}

// ParseWind accepts a preset name, case-insensitively.
func ParseWind(s string) (Wind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "slow":
		return WindSlow, nil
	case "med", "medium":
		return WindMedium, nil
	case "fast":
		return WindFast, nil
	}
	return WindMedium, fmt.Errorf("unknown wind preset %q (want slow, med or fast)", s)
}

// nearestWind returns the preset whose strength is closest to s.
func nearestWind(s float32) Wind {
	best := WindSlow
	for _, w := range Winds {
		if absf(w.Strength()-s) < absf(best.Strength()-s) {
			best = w
		}
	}
	return best
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
