// Package controls holds the user-facing scene parameters. Input handlers
// write them, the frame loop reads them once per frame on the same
// goroutine, and values are clamped here so the core never sees bad input.
package controls

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/Faultbox/dappled/internal/engine/lighting"
)

// FadeDuration is how long the panel takes to fade in or out, in seconds.
const FadeDuration = 0.6

// SunStep is the keyboard increment of the sun angle.
const SunStep = 0.01

// Options seeds a State.
type Options struct {
	Wind     Wind
	SunAngle float32
	Night    bool
	Panel    bool
}

// Params is the per-frame snapshot read by the frame loop.
type Params struct {
	Wind         Wind
	WindStrength float32
	SunAngle     float32
	Mode         lighting.Mode
	PanelVisible bool
	PanelAlpha   float32
}

// State is the mutable parameter set.
type State struct {
	wind     Wind
	strength float32
	sunAngle float32
	mode     lighting.Mode
	panel    bool

	alpha float32
	fade  *gween.Tween
}

// New creates a State from opts, clamping out-of-range values.
func New(opts Options) *State {
	s := &State{}
	s.SetWind(opts.Wind)
	s.SetSunAngle(opts.SunAngle)
	if opts.Night {
		s.mode = lighting.Night
	}
	s.panel = opts.Panel
	if s.panel {
		s.alpha = 1
	}
	return s
}

// Wind returns the active preset.
func (s *State) Wind() Wind { return s.wind }

// WindStrength returns the active wind multiplier.
func (s *State) WindStrength() float32 { return s.strength }

// SetWind selects a preset.
func (s *State) SetWind(w Wind) {
	if w < WindSlow || w > WindFast {
		w = WindMedium
	}
	s.wind = w
	s.strength = w.Strength()
}

// SetWindStrength sets an arbitrary strength. Negative and NaN values
// become 0. The reported preset is the closest one.
func (s *State) SetWindStrength(v float32) {
	if v != v || v < 0 {
		v = 0
	}
	s.strength = v
	s.wind = nearestWind(v)
}

// SunAngle returns the sun angle in [0, 1].
func (s *State) SunAngle() float32 { return s.sunAngle }

// SetSunAngle sets the sun angle, clamped to [0, 1]. NaN becomes 0.
func (s *State) SetSunAngle(a float32) {
	s.sunAngle = clamp01(a)
}

// NudgeSunAngle moves the sun by delta, clamped.
func (s *State) NudgeSunAngle(delta float32) {
	s.SetSunAngle(s.sunAngle + delta)
}

// Mode returns the lighting mode.
func (s *State) Mode() lighting.Mode { return s.mode }

// SetMode selects the lighting mode.
func (s *State) SetMode(m lighting.Mode) {
	if m != lighting.Night {
		m = lighting.Day
	}
	s.mode = m
}

// ToggleMode switches between day and night.
func (s *State) ToggleMode() { s.mode = s.mode.Toggle() }

// PanelVisible reports whether the panel is shown or fading in.
func (s *State) PanelVisible() bool { return s.panel }

// SetPanelVisible shows or hides the panel, starting a fade from the
// current opacity.
func (s *State) SetPanelVisible(v bool) {
	if v == s.panel {
		return
	}
	s.panel = v
	target := float32(0)
	if v {
		target = 1
	}
	s.fade = gween.New(s.alpha, target, FadeDuration, ease.OutQuad)
}

// TogglePanel flips panel visibility.
func (s *State) TogglePanel() { s.SetPanelVisible(!s.panel) }

// PanelAlpha returns the current panel opacity in [0, 1].
func (s *State) PanelAlpha() float32 { return s.alpha }

// Fading reports whether a panel fade is running.
func (s *State) Fading() bool { return s.fade != nil }

// Update advances the panel fade by dt seconds.
func (s *State) Update(dt float32) {
	if s.fade == nil {
		return
	}
	v, done := s.fade.Update(dt)
	s.alpha = clamp01(v)
	if done {
		s.alpha = 0
		if s.panel {
			s.alpha = 1
		}
		s.fade = nil
	}
}

// Params snapshots the state for one frame.
func (s *State) Params() Params {
	return Params{
		Wind:         s.wind,
		WindStrength: s.strength,
		SunAngle:     s.sunAngle,
		Mode:         s.mode,
		PanelVisible: s.panel,
		PanelAlpha:   s.alpha,
	}
}

func clamp01(v float32) float32 {
	if v != v {
		return 0
	}
	return min(1, max(0, v))
}
