package game

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/dappled/internal/controls"
	"github.com/Faultbox/dappled/internal/engine/input"
	engineui "github.com/Faultbox/dappled/internal/engine/ui"
	"github.com/Faultbox/dappled/internal/engine/window"
	"github.com/Faultbox/dappled/internal/game/ui"
)

// windowHost is the keyboard-only SDL window. The scene is blitted straight
// to the default framebuffer.
type windowHost struct {
	g      *Game
	window *window.Window
	input  *input.Input
}

func newWindowHost(g *Game, title string) (*windowHost, error) {
	w, err := window.New(window.Config{
		Title:      title,
		Width:      g.config.Graphics.Width,
		Height:     g.config.Graphics.Height,
		Fullscreen: g.config.Graphics.Fullscreen,
		VSync:      g.config.Graphics.VSync,
	})
	if err != nil {
		return nil, err
	}
	return &windowHost{g: g, window: w, input: input.New()}, nil
}

func (h *windowHost) run(frame func() bool) {
	for {
		if h.input.Update() {
			return
		}
		for _, e := range h.input.Events() {
			switch e.Type {
			case input.EventAction:
				h.g.apply(e.Action)
			case input.EventDrag:
				h.g.camera.HandleDrag(e.DX, e.DY)
			case input.EventZoom:
				h.g.camera.HandleZoom(e.DY)
			}
		}
		if !frame() {
			return
		}
	}
}

func (h *windowHost) drawableSize() (int32, int32) {
	return h.window.DrawableSize()
}

func (h *windowHost) present() {
	h.g.renderer.Present(h.g.width, h.g.height)
	h.window.SwapBuffers()
}

func (h *windowHost) notify(msg string, failed bool) {
	if failed {
		h.g.log.Warn(msg)
		return
	}
	h.g.log.Info(msg)
}

func (h *windowHost) close() {
	h.window.Close()
}

// keyActions maps ImGui keys to the same actions as input.Bindings. The
// sun keys are handled as held keys instead.
var keyActions = map[imgui.Key]input.Action{
	imgui.Key1:   input.ActionWindSlow,
	imgui.Key2:   input.ActionWindMedium,
	imgui.Key3:   input.ActionWindFast,
	imgui.KeyN:   input.ActionToggleNight,
	imgui.KeyH:   input.ActionTogglePanel,
	imgui.KeyF12: input.ActionScreenshot,
}

// panelHost renders the scene into a texture behind the ImGui panel.
type panelHost struct {
	g       *Game
	backend *engineui.Backend
	panel   *ui.Panel
	overlay *ui.Overlay
}

func newPanelHost(g *Game, title string) (*panelHost, error) {
	b, err := engineui.NewBackend(title, int32(g.config.Graphics.Width), int32(g.config.Graphics.Height))
	if err != nil {
		return nil, err
	}
	if g.config.Graphics.Fullscreen {
		g.log.Warn("fullscreen is only supported without the panel", zap.String("flag", "-no-panel"))
	}
	// GPU resources must go before the backend tears down its context.
	b.OnClose(g.releaseGPU)
	return &panelHost{g: g, backend: b, panel: ui.NewPanel(), overlay: ui.NewOverlay()}, nil
}

func (h *panelHost) run(frame func() bool) {
	h.backend.Run(func() {
		h.handleInput()
		if h.g.renderer == nil {
			return
		}
		frame()
	})
}

func (h *panelHost) handleInput() {
	io := imgui.CurrentIO()
	if !io.WantCaptureKeyboard() {
		for key, action := range keyActions {
			if engineui.KeyPressed(key) {
				h.g.apply(action)
			}
		}
		// Held arrows move the sun SunStep per 1/60 s.
		step := controls.SunStep * io.DeltaTime() * 60
		if engineui.KeyDown(imgui.KeyLeftArrow) {
			h.g.controls.NudgeSunAngle(-step)
		}
		if engineui.KeyDown(imgui.KeyRightArrow) {
			h.g.controls.NudgeSunAngle(step)
		}
	}

	p := h.backend.Pointer()
	if p.DragX != 0 || p.DragY != 0 {
		h.g.camera.HandleDrag(p.DragX, p.DragY)
	}
	if p.Wheel != 0 {
		h.g.camera.HandleZoom(p.Wheel)
	}
}

func (h *panelHost) drawableSize() (int32, int32) {
	w, ht := h.backend.DrawableSize(window.MaxPixelRatio)
	if w <= 0 || ht <= 0 {
		// Before the first frame ImGui has no display size yet.
		return int32(h.g.config.Graphics.Width), int32(h.g.config.Graphics.Height)
	}
	return w, ht
}

func (h *panelHost) present() {
	h.backend.DrawSceneTexture(h.g.renderer.SceneTexture())

	width, height := h.backend.DisplaySize()
	h.panel.Render(h.g.controls, h.g.lights, width, height)
	if h.g.config.UI.ShowFPS {
		h.overlay.RenderFPS(h.g.fps, width)
	}
	h.overlay.RenderMessage(width, height)
}

func (h *panelHost) notify(msg string, failed bool) {
	h.overlay.Notify(msg, failed)
}

func (h *panelHost) close() {
	// The backend destroys its window when Run returns.
}
