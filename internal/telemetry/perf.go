// Package telemetry measures per-frame phase timings and optionally writes
// them as CSV.
package telemetry

import (
	"time"

	"go.uber.org/zap"
)

// Phase names for one rendered frame.
const (
	PhaseAnimate  = "animate"
	PhaseLighting = "lighting"
	PhaseUpload   = "upload"
	PhaseShadow   = "shadow"
	PhaseDraw     = "draw"
	PhaseUI       = "ui"
)

// Phases lists every frame phase in execution order.
var Phases = []string{PhaseAnimate, PhaseLighting, PhaseUpload, PhaseShadow, PhaseDraw, PhaseUI}

// FrameBudget is the time available per frame at 60 Hz.
const FrameBudget = time.Second / 60

// Sample holds timing data for a single frame.
type Sample struct {
	Frame  time.Duration
	Phases map[string]time.Duration
}

// Collector tracks frame timings over a rolling window.
type Collector struct {
	windowSize    int
	samples       []Sample
	writeIndex    int
	sampleCount   int
	currentPhases map[string]time.Duration
	frameStart    time.Time
	phaseStart    time.Time
	lastPhase     string

	now func() time.Time
}

// NewCollector creates a collector averaging over windowSize frames.
func NewCollector(windowSize int) *Collector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &Collector{
		windowSize:    windowSize,
		samples:       make([]Sample, windowSize),
		currentPhases: make(map[string]time.Duration),
		now:           time.Now,
	}
}

// StartFrame begins timing a new frame.
func (c *Collector) StartFrame() {
	c.frameStart = c.now()
	c.currentPhases = make(map[string]time.Duration, len(Phases))
	c.lastPhase = ""
}

// StartPhase ends the running phase, if any, and starts timing phase.
func (c *Collector) StartPhase(phase string) {
	now := c.now()
	if c.lastPhase != "" {
		c.currentPhases[c.lastPhase] += now.Sub(c.phaseStart)
	}
	c.phaseStart = now
	c.lastPhase = phase
}

// EndFrame finishes the current frame and records the sample.
func (c *Collector) EndFrame() {
	now := c.now()
	if c.lastPhase != "" {
		c.currentPhases[c.lastPhase] += now.Sub(c.phaseStart)
		c.lastPhase = ""
	}

	c.samples[c.writeIndex] = Sample{
		Frame:  now.Sub(c.frameStart),
		Phases: c.currentPhases,
	}
	c.writeIndex = (c.writeIndex + 1) % c.windowSize
	if c.sampleCount < c.windowSize {
		c.sampleCount++
	}
}

// Frames returns how many samples the window currently holds.
func (c *Collector) Frames() int {
	return c.sampleCount
}

// Stats holds aggregated frame statistics.
type Stats struct {
	AvgFrame time.Duration
	MinFrame time.Duration
	MaxFrame time.Duration

	// PhaseAvg is the mean duration of each phase.
	PhaseAvg map[string]time.Duration
	// PhasePct is each phase's share of the mean frame, in percent.
	PhasePct map[string]float64

	FPS float64
	// AnimateBudgetPct is the animate phase as a percentage of FrameBudget.
	AnimateBudgetPct float64
}

// Stats computes aggregated statistics over the current window.
func (c *Collector) Stats() Stats {
	if c.sampleCount == 0 {
		return Stats{
			PhaseAvg: make(map[string]time.Duration),
			PhasePct: make(map[string]float64),
		}
	}

	var total, minFrame, maxFrame time.Duration
	phaseSum := make(map[string]time.Duration)
	for i := 0; i < c.sampleCount; i++ {
		s := c.samples[i]
		total += s.Frame
		if i == 0 || s.Frame < minFrame {
			minFrame = s.Frame
		}
		if s.Frame > maxFrame {
			maxFrame = s.Frame
		}
		for phase, d := range s.Phases {
			phaseSum[phase] += d
		}
	}

	n := time.Duration(c.sampleCount)
	avg := total / n

	phaseAvg := make(map[string]time.Duration, len(phaseSum))
	phasePct := make(map[string]float64, len(phaseSum))
	for phase, sum := range phaseSum {
		phaseAvg[phase] = sum / n
		if avg > 0 {
			phasePct[phase] = float64(phaseAvg[phase]) / float64(avg) * 100
		}
	}

	var fps float64
	if avg > 0 {
		fps = float64(time.Second) / float64(avg)
	}

	return Stats{
		AvgFrame:         avg,
		MinFrame:         minFrame,
		MaxFrame:         maxFrame,
		PhaseAvg:         phaseAvg,
		PhasePct:         phasePct,
		FPS:              fps,
		AnimateBudgetPct: float64(phaseAvg[PhaseAnimate]) / float64(FrameBudget) * 100,
	}
}

// Fields returns the stats as zap fields.
func (s Stats) Fields() []zap.Field {
	fields := []zap.Field{
		zap.Float64("fps", s.FPS),
		zap.Int64("avg_frame_us", s.AvgFrame.Microseconds()),
		zap.Int64("min_frame_us", s.MinFrame.Microseconds()),
		zap.Int64("max_frame_us", s.MaxFrame.Microseconds()),
		zap.Float64("animate_budget_pct", s.AnimateBudgetPct),
	}
	for _, phase := range Phases {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			fields = append(fields, zap.Float64(phase+"_pct", pct))
		}
	}
	return fields
}

// Log writes the stats at debug level.
func (s Stats) Log(log *zap.Logger) {
	log.Debug("perf", s.Fields()...)
}

// StatsCSV is a flat record for CSV export.
type StatsCSV struct {
	Elapsed          float64 `csv:"elapsed_s"`
	Frames           int     `csv:"frames"`
	FPS              float64 `csv:"fps"`
	AvgFrameUS       int64   `csv:"avg_frame_us"`
	MinFrameUS       int64   `csv:"min_frame_us"`
	MaxFrameUS       int64   `csv:"max_frame_us"`
	AnimateBudgetPct float64 `csv:"animate_budget_pct"`
	AnimateUS        int64   `csv:"animate_us"`
	LightingUS       int64   `csv:"lighting_us"`
	UploadUS         int64   `csv:"upload_us"`
	ShadowUS         int64   `csv:"shadow_us"`
	DrawUS           int64   `csv:"draw_us"`
	UIUS             int64   `csv:"ui_us"`
}

// ToCSV flattens the stats for one window ending at elapsed.
func (s Stats) ToCSV(elapsed time.Duration, frames int) StatsCSV {
	return StatsCSV{
		Elapsed:          elapsed.Seconds(),
		Frames:           frames,
		FPS:              s.FPS,
		AvgFrameUS:       s.AvgFrame.Microseconds(),
		MinFrameUS:       s.MinFrame.Microseconds(),
		MaxFrameUS:       s.MaxFrame.Microseconds(),
		AnimateBudgetPct: s.AnimateBudgetPct,
		AnimateUS:        s.PhaseAvg[PhaseAnimate].Microseconds(),
		LightingUS:       s.PhaseAvg[PhaseLighting].Microseconds(),
		UploadUS:         s.PhaseAvg[PhaseUpload].Microseconds(),
		ShadowUS:         s.PhaseAvg[PhaseShadow].Microseconds(),
		DrawUS:           s.PhaseAvg[PhaseDraw].Microseconds(),
		UIUS:             s.PhaseAvg[PhaseUI].Microseconds(),
	}
}
