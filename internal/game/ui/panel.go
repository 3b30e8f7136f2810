package ui

import (
	gomath "math"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/dappled/internal/controls"
	"github.com/Faultbox/dappled/internal/engine/lighting"
)

const (
	panelMargin = 40
	panelWidth  = 220
	panelTitle  = "Dappled Light"

	compassRadius = 20
	needleLength  = 14
	needleHalf    = 3
)

// Panel is the environment control panel. It reads and writes a
// controls.State directly.
type Panel struct {
	sun float32 // slider scratch value
}

// NewPanel creates a panel.
func NewPanel() *Panel {
	return &Panel{}
}

// Render draws the panel and the show/hide toggle for a viewport of
// width x height points.
func (p *Panel) Render(state *controls.State, lights lighting.Lights, width, height float32) {
	t := themeFor(state.Mode())

	if alpha := state.PanelAlpha(); alpha > 0 {
		imgui.PushStyleVarFloat(imgui.StyleVarAlpha, alpha)
		p.renderPanel(state, lights, t, !state.PanelVisible())
		imgui.PopStyleVar()
	}
	p.renderToggle(state, t, height)
}

func (p *Panel) renderPanel(state *controls.State, lights lighting.Lights, t theme, fadingOut bool) {
	imgui.SetNextWindowPos(imgui.NewVec2(panelMargin, panelMargin))
	imgui.SetNextWindowSize(imgui.NewVec2(panelWidth+48, 0))

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoCollapse | imgui.WindowFlagsAlwaysAutoResize |
		imgui.WindowFlagsNoSavedSettings
	if fadingOut {
		// A hidden panel ignores clicks while it fades.
		flags |= imgui.WindowFlagsNoInputs
	}

	imgui.PushStyleVarFloat(imgui.StyleVarWindowRounding, 24)
	imgui.PushStyleVarFloat(imgui.StyleVarFrameRounding, 12)
	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(24, 24))
	imgui.PushStyleColorVec4(imgui.ColWindowBg, t.PanelBg)
	imgui.PushStyleColorVec4(imgui.ColBorder, t.Border)

	if imgui.BeginV("##Panel", nil, flags) {
		imgui.TextColored(t.Title, panelTitle)
		imgui.Separator()
		imgui.Spacing()

		p.renderMode(state, t)
		imgui.Spacing()
		p.renderWind(state, t)
		imgui.Spacing()
		p.renderSun(state, lights, t)
	}
	imgui.End()

	imgui.PopStyleColorV(2)
	imgui.PopStyleVarV(3)
}

func (p *Panel) renderMode(state *controls.State, t theme) {
	imgui.TextColored(t.Label, "ENVIRONMENT MODE")
	w := segmentWidth(2)
	if segmentButton("DAY##mode", state.Mode() == lighting.Day, w, t) {
		state.SetMode(lighting.Day)
	}
	imgui.SameLine()
	if segmentButton("NIGHT##mode", state.Mode() == lighting.Night, w, t) {
		state.SetMode(lighting.Night)
	}
}

func (p *Panel) renderWind(state *controls.State, t theme) {
	imgui.TextColored(t.Label, "WIND MOTION")
	w := segmentWidth(len(controls.Winds))
	for i, wind := range controls.Winds {
		if i > 0 {
			imgui.SameLine()
		}
		label := strings.ToUpper(wind.String()) + "##wind"
		if segmentButton(label, state.Wind() == wind, w, t) {
			state.SetWind(wind)
		}
	}
}

func (p *Panel) renderSun(state *controls.State, lights lighting.Lights, t theme) {
	label := "SUN DIRECTION"
	if state.Mode() == lighting.Night {
		label = "MOON DIRECTION"
	}
	imgui.TextColored(t.Label, label)
	imgui.SameLine()
	imgui.SetCursorPosX(imgui.CursorPosX() + imgui.ContentRegionAvail().X - 2*compassRadius)
	drawCompass(lights.Heading, vec4(lights.Accent, 1), t)

	p.sun = state.SunAngle()
	imgui.SetNextItemWidth(-1)
	if imgui.SliderFloatV("##sun", &p.sun, 0, 1, "%.2f", imgui.SliderFlagsNone) {
		state.SetSunAngle(float32(gomath.Round(float64(p.sun)/controls.SunStep)) * controls.SunStep)
	}
}

func (p *Panel) renderToggle(state *controls.State, t theme, height float32) {
	imgui.SetNextWindowPos(imgui.NewVec2(panelMargin-8, height-panelMargin-24))
	imgui.SetNextWindowBgAlpha(0)

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoSavedSettings

	if imgui.BeginV("##Toggle", nil, flags) {
		label := "[ HIDE INTERFACE ]"
		if !state.PanelVisible() {
			label = "[ SHOW INTERFACE ]"
		}
		imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0, 0, 0, 0))
		imgui.PushStyleColorVec4(imgui.ColText, t.Toggle)
		if imgui.Button(label + "##toggle") {
			state.TogglePanel()
		}
		imgui.PopStyleColorV(2)
	}
	imgui.End()
}

// segmentButton draws one button of a segmented control.
func segmentButton(label string, selected bool, width float32, t theme) bool {
	bg, fg := t.Idle, t.IdleFg
	if selected {
		bg, fg = t.Selected, t.SelectedFg
	}
	imgui.PushStyleColorVec4(imgui.ColButton, bg)
	imgui.PushStyleColorVec4(imgui.ColButtonHovered, bg)
	imgui.PushStyleColorVec4(imgui.ColText, fg)
	clicked := imgui.ButtonV(label, imgui.NewVec2(width, 32))
	imgui.PopStyleColorV(3)
	return clicked
}

func segmentWidth(n int) float32 {
	avail := imgui.ContentRegionAvail().X
	gap := float32(8)
	return (avail - gap*float32(n-1)) / float32(n)
}

// drawCompass draws the heading dial at the cursor. heading is in degrees,
// clockwise from north, as CSS rotate() would apply it.
func drawCompass(heading float32, needle imgui.Vec4, t theme) {
	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	cx, cy := origin.X+compassRadius, origin.Y+compassRadius
	center := imgui.NewVec2(cx, cy)

	drawList.AddCircleFilledV(center, compassRadius, imgui.ColorU32Vec4(t.Compass), 32)
	drawList.AddCircleV(center, compassRadius, imgui.ColorU32Vec4(t.Border), 32, 1)

	letters := imgui.ColorU32Vec4(t.Letters)
	drawList.AddTextVec2(imgui.NewVec2(cx-3, origin.Y+1), letters, "N")
	drawList.AddTextVec2(imgui.NewVec2(cx-3, cy+compassRadius-13), letters, "S")
	drawList.AddTextVec2(imgui.NewVec2(origin.X+2, cy-7), letters, "W")
	drawList.AddTextVec2(imgui.NewVec2(cx+compassRadius-9, cy-7), letters, "E")

	tipX, tipY, lx, ly, rx, ry := needlePoints(heading)
	drawList.AddTriangleFilled(
		imgui.NewVec2(cx+tipX, cy+tipY),
		imgui.NewVec2(cx+lx, cy+ly),
		imgui.NewVec2(cx+rx, cy+ry),
		imgui.ColorU32Vec4(needle),
	)
	drawList.AddCircleFilledV(center, 2, imgui.ColorU32Vec4(imgui.NewVec4(1, 1, 1, 1)), 12)

	imgui.Dummy(imgui.NewVec2(2*compassRadius, 2*compassRadius))
}

// needlePoints returns the needle triangle relative to the dial center in
// screen coordinates (y down): the tip, then the two base corners.
func needlePoints(heading float32) (tipX, tipY, lx, ly, rx, ry float32) {
	s, c := gomath.Sincos(float64(heading) * gomath.Pi / 180)
	sin, cos := float32(s), float32(c)
	// Unrotated the needle points up: tip (0, -L), base (±H, 0).
	rot := func(x, y float32) (float32, float32) {
		return x*cos - y*sin, x*sin + y*cos
	}
	tipX, tipY = rot(0, -needleLength)
	lx, ly = rot(-needleHalf, 0)
	rx, ry = rot(needleHalf, 0)
	return
}
