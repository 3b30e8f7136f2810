// Package game runs the viewer: it builds the plant, owns the host window
// and drives the per-frame animate, light and render loop.
package game

import (
	"fmt"
	gomath "math"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/dappled/internal/animation"
	"github.com/Faultbox/dappled/internal/config"
	"github.com/Faultbox/dappled/internal/controls"
	"github.com/Faultbox/dappled/internal/engine/camera"
	"github.com/Faultbox/dappled/internal/engine/debug"
	"github.com/Faultbox/dappled/internal/engine/input"
	"github.com/Faultbox/dappled/internal/engine/lighting"
	"github.com/Faultbox/dappled/internal/engine/renderer"
	"github.com/Faultbox/dappled/internal/logger"
	"github.com/Faultbox/dappled/internal/plant"
	"github.com/Faultbox/dappled/internal/telemetry"
)

// Title is the window title prefix.
const Title = "Dappled Light"

// Game is the viewer instance.
type Game struct {
	config *config.Config
	log    *zap.Logger

	seed     uint64
	store    *plant.Store
	driver   *animation.Driver
	pose     *animation.Pose
	controls *controls.State
	camera   *camera.OrbitCamera
	renderer *renderer.Renderer
	lights   lighting.Lights

	host host

	perf   *telemetry.Collector
	output *telemetry.Output
	shots  *debug.Screenshotter

	width, height int32 // drawable size in pixels
	start         time.Time
	lastFrame     time.Time
	lastStats     time.Time
	fps           float64
	running       bool
}

// host is the window system the viewer runs in.
type host interface {
	// run calls frame until the viewer quits.
	run(frame func() bool)
	// drawableSize returns the current render size in pixels.
	drawableSize() (int32, int32)
	// present shows the rendered scene and the host's overlays.
	present()
	// notify shows a short status message.
	notify(msg string, failed bool)
	close()
}

// New generates the plant and opens the host window.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config: cfg,
		log:    logger.Named("game"),
	}

	// Generation finishes before any window exists.
	g.seed = plant.ResolveSeed(cfg.Scene.Seed)
	genStart := time.Now()
	g.store = plant.NewGenerator(plant.NewSource(g.seed)).Generate()
	g.log.Info("plant generated",
		zap.Uint64("seed", g.seed),
		zap.Int("segments", g.store.SegmentCount()),
		zap.Int("leaves", g.store.LeafCount()),
		zap.Int("clusters", g.store.ClusterCount()),
		zap.Int("bracts", g.store.BractCount()),
		zap.Duration("took", time.Since(genStart)),
	)

	g.driver = animation.NewDriver(g.store)
	g.pose = animation.NewPose(g.store)
	g.controls = controls.New(controls.Options{
		Wind:     cfg.WindPreset(),
		SunAngle: cfg.Scene.SunAngle,
		Night:    cfg.Scene.Night,
		Panel:    cfg.UI.Panel,
	})
	g.camera = newCamera(cfg.Camera)

	title := fmt.Sprintf("%s (seed %d)", Title, g.seed)
	var err error
	if cfg.UI.Panel {
		g.host, err = newPanelHost(g, title)
	} else {
		g.host, err = newWindowHost(g, title)
	}
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	g.width, g.height = g.host.drawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:            g.width,
		Height:           g.height,
		Samples:          int32(cfg.Graphics.MSAA),
		Shadows:          cfg.Shadows.Enabled,
		ShadowResolution: int32(cfg.Shadows.Resolution),
	}, g.store)
	if err != nil {
		g.host.close()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	g.perf = telemetry.NewCollector(cfg.Telemetry.Window)
	g.output, err = telemetry.NewOutput(cfg.Telemetry.OutputDir)
	if err != nil {
		g.log.Warn("telemetry output disabled", zap.Error(err))
		g.output = nil
	}
	if err := g.output.WritePlant(telemetry.NewPlantRecord(g.seed, g.store)); err != nil {
		g.log.Warn("writing plant summary", zap.Error(err))
	}

	g.shots = debug.NewScreenshotter(cfg.UI.ScreenshotDir, "dappled", g.seed)

	g.log.Info("viewer initialized",
		zap.Bool("panel", cfg.UI.Panel),
		zap.Int32("width", g.width),
		zap.Int32("height", g.height),
	)
	return g, nil
}

func newCamera(cfg config.CameraConfig) *camera.OrbitCamera {
	c := camera.NewOrbitCamera()
	c.FovY = cfg.FOV * gomath.Pi / 180
	c.MinDistance = cfg.MinDistance
	c.MaxDistance = cfg.MaxDistance
	c.Damping = cfg.Damping
	// Re-apply the eye so the distance respects the configured bounds.
	c.LookFrom(camera.DefaultEye)
	return c
}

// Seed returns the seed the plant was generated from.
func (g *Game) Seed() uint64 {
	return g.seed
}

// Run starts the frame loop and blocks until the viewer quits.
func (g *Game) Run() error {
	g.running = true
	g.start = time.Now()
	g.lastFrame = g.start
	g.lastStats = g.start

	g.log.Info("starting frame loop")
	g.host.run(g.frame)
	return nil
}

// frame renders one frame and reports whether to continue.
func (g *Game) frame() bool {
	now := time.Now()
	dt := float32(now.Sub(g.lastFrame).Seconds())
	g.lastFrame = now

	g.perf.StartFrame()

	if w, h := g.host.drawableSize(); w != g.width || h != g.height {
		g.resize(w, h)
	}

	g.controls.Update(dt)
	g.camera.Update(dt)

	g.render(now.Sub(g.start).Seconds())

	g.perf.StartPhase(telemetry.PhaseUI)
	g.host.present()
	g.perf.EndFrame()

	if now.Sub(g.lastStats) >= time.Second {
		g.reportStats(now)
	}
	return g.running
}

// render animates and draws the scene into the renderer's target.
func (g *Game) render(t float64) {
	p := g.controls.Params()

	g.perf.StartPhase(telemetry.PhaseAnimate)
	g.driver.Update(t, p.WindStrength, g.pose)

	g.perf.StartPhase(telemetry.PhaseLighting)
	g.lights = lighting.Compute(p.Mode, p.SunAngle)

	g.perf.StartPhase(telemetry.PhaseUpload)
	g.renderer.Upload(g.pose)

	aspect := float32(1)
	if g.height > 0 {
		aspect = float32(g.width) / float32(g.height)
	}
	frame := renderer.Frame{
		View:       g.camera.ViewMatrix(),
		Projection: g.camera.ProjectionMatrix(aspect),
		CameraPos:  g.camera.Position(),
		Plant:      g.pose.Plant,
		Lights:     g.lights,
	}

	g.perf.StartPhase(telemetry.PhaseShadow)
	g.renderer.ShadowPass(frame)

	g.perf.StartPhase(telemetry.PhaseDraw)
	g.renderer.DrawPass(frame)
}

func (g *Game) resize(w, h int32) {
	if w <= 0 || h <= 0 {
		// Minimized; keep the old target.
		return
	}
	g.width, g.height = w, h
	g.renderer.Resize(w, h)
}

// apply performs a bound action.
func (g *Game) apply(a input.Action) {
	switch a {
	case input.ActionWindSlow:
		g.controls.SetWind(controls.WindSlow)
	case input.ActionWindMedium:
		g.controls.SetWind(controls.WindMedium)
	case input.ActionWindFast:
		g.controls.SetWind(controls.WindFast)
	case input.ActionToggleNight:
		g.controls.ToggleMode()
		g.log.Debug("mode changed", zap.Stringer("mode", g.controls.Mode()))
	case input.ActionSunLeft:
		g.controls.NudgeSunAngle(-controls.SunStep)
	case input.ActionSunRight:
		g.controls.NudgeSunAngle(controls.SunStep)
	case input.ActionTogglePanel:
		g.controls.TogglePanel()
	case input.ActionScreenshot:
		msg, ok := g.screenshot()
		g.host.notify(msg, !ok)
	case input.ActionQuit:
		g.running = false
	}
}

// screenshot saves the last rendered scene and returns a status message.
func (g *Game) screenshot() (string, bool) {
	pixels, w, h := g.renderer.ReadScene()
	path, err := g.shots.Capture(pixels, w, h)
	if err != nil {
		g.log.Error("screenshot failed", zap.Error(err))
		return "Screenshot failed: " + err.Error(), false
	}
	g.log.Info("screenshot saved", zap.String("path", path))
	return "Saved " + path, true
}

func (g *Game) reportStats(now time.Time) {
	g.lastStats = now
	stats := g.perf.Stats()
	g.fps = stats.FPS
	stats.Log(g.log)
	if err := g.output.WritePerf(stats.ToCSV(now.Sub(g.start), g.perf.Frames())); err != nil {
		g.log.Warn("writing perf stats", zap.Error(err))
	}
}

// Close releases GPU resources, then the window.
func (g *Game) Close() {
	g.log.Info("closing viewer")
	g.running = false

	g.releaseGPU()
	if g.host != nil {
		g.host.close()
	}
	if err := g.output.Close(); err != nil {
		g.log.Warn("closing telemetry output", zap.Error(err))
	}
}

// releaseGPU frees renderer resources. It must run while the GL context
// is still current and is safe to call twice.
func (g *Game) releaseGPU() {
	if g.renderer != nil {
		g.renderer.Close()
		g.renderer = nil
	}
}
