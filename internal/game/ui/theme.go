// Package ui draws the viewer's control panel and overlays with Dear ImGui.
package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/dappled/internal/engine/lighting"
)

// theme holds the panel colors for one lighting mode.
type theme struct {
	Title      imgui.Vec4
	Label      imgui.Vec4
	PanelBg    imgui.Vec4
	Border     imgui.Vec4
	Selected   imgui.Vec4
	SelectedFg imgui.Vec4
	Idle       imgui.Vec4
	IdleFg     imgui.Vec4
	Compass    imgui.Vec4
	Letters    imgui.Vec4
	Toggle     imgui.Vec4
}

var themes = map[lighting.Mode]theme{
	lighting.Day: {
		Title:      rgba(0x111111, 1),
		Label:      rgba(0xaaaaaa, 1),
		PanelBg:    rgba(0xffffff, 0.4),
		Border:     rgba(0xffffff, 0.5),
		Selected:   rgba(0x111111, 1),
		SelectedFg: rgba(0xffffff, 1),
		Idle:       rgba(0x808080, 0.1),
		IdleFg:     rgba(0x666666, 1),
		Compass:    rgba(0xffffff, 0.5),
		Letters:    rgba(0xbbbbbb, 1),
		Toggle:     rgba(0xaaaaaa, 1),
	},
	lighting.Night: {
		Title:      rgba(0xffffff, 1),
		Label:      rgba(0x777788, 1),
		PanelBg:    rgba(0x141932, 0.4),
		Border:     rgba(0xffffff, 0.1),
		Selected:   rgba(0xffffff, 1),
		SelectedFg: rgba(0x111111, 1),
		Idle:       rgba(0xffffff, 0.05),
		IdleFg:     rgba(0x777788, 1),
		Compass:    rgba(0xffffff, 0.05),
		Letters:    rgba(0x444455, 1),
		Toggle:     rgba(0x444455, 1),
	},
}

func themeFor(m lighting.Mode) theme {
	if t, ok := themes[m]; ok {
		return t
	}
	return themes[lighting.Day]
}

func rgba(hex uint32, a float32) imgui.Vec4 {
	return vec4(lighting.Hex(hex), a)
}

func vec4(c lighting.Color, a float32) imgui.Vec4 {
	return imgui.NewVec4(c[0], c[1], c[2], a)
}
