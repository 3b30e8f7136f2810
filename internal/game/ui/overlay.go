package ui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
)

// MessageDuration is how long a notice stays on screen.
const MessageDuration = 3 * time.Second

// Overlay draws the FPS counter and transient notices.
type Overlay struct {
	message   string
	failed    bool
	messageAt time.Time
}

// NewOverlay creates an overlay.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Notify shows msg for MessageDuration. Failures are shown in red.
func (o *Overlay) Notify(msg string, failed bool) {
	o.message = msg
	o.failed = failed
	o.messageAt = time.Now()
}

// RenderFPS draws an FPS counter in the top-right corner.
func (o *Overlay) RenderFPS(fps float64, width float32) {
	imgui.SetNextWindowPos(imgui.NewVec2(width-100, 5))
	imgui.SetNextWindowBgAlpha(0.5)
	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoInputs |
		imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoSavedSettings
	if imgui.BeginV("##FPS", nil, flags) {
		imgui.Text(fmt.Sprintf("FPS: %.0f", fps))
	}
	imgui.End()
}

// RenderMessage draws the current notice, if any, bottom-center.
func (o *Overlay) RenderMessage(width, height float32) {
	if o.message == "" {
		return
	}
	if time.Since(o.messageAt) > MessageDuration {
		o.message = ""
		return
	}

	msgWidth := float32(360)
	imgui.SetNextWindowPos(imgui.NewVec2((width-msgWidth)/2, height-60))
	imgui.SetNextWindowSize(imgui.NewVec2(msgWidth, 0))
	imgui.SetNextWindowBgAlpha(0.8)
	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoInputs |
		imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoSavedSettings
	if imgui.BeginV("##Message", nil, flags) {
		color := imgui.NewVec4(0.2, 1.0, 0.2, 1.0)
		if o.failed {
			color = imgui.NewVec4(1.0, 0.3, 0.3, 1.0)
		}
		imgui.TextColored(color, o.message)
	}
	imgui.End()
}
