// Package ui hosts the viewer inside a Dear ImGui SDL backend window.
package ui

import (
	"fmt"
	"os"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/dappled/internal/logger"
)

// FontSize is the panel font size in points.
const FontSize = 15

// fontPaths are tried in order; the ImGui default font is used if none exist.
var fontPaths = []string{
	"/System/Library/Fonts/SFNS.ttf",                      // macOS
	"/System/Library/Fonts/Helvetica.ttc",                 // macOS (older)
	"C:\\Windows\\Fonts\\segoeui.ttf",                     // Windows
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",     // Debian/Ubuntu
	"/usr/share/fonts/dejavu-sans-fonts/DejaVuSans.ttf",   // Fedora
	"/usr/share/fonts/TTF/DejaVuSans.ttf",                 // Arch
	"/usr/share/fonts/truetype/noto/NotoSans-Regular.ttf", // Noto
	"/usr/share/fonts/opentype/noto/NotoSans-Regular.ttf", // Noto alt
}

// Pointer is the mouse input meant for the scene this frame, i.e. not
// captured by an ImGui window.
type Pointer struct {
	DragX, DragY float32
	Wheel        float32
}

// Backend wraps the ImGui SDL backend.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	log     *zap.Logger

	lastMouse imgui.Vec2
	dragging  bool
}

// NewBackend creates the ImGui window and its OpenGL context.
func NewBackend(title string, width, height int32) (*Backend, error) {
	b := &Backend{log: logger.Named("ui")}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetAfterCreateContextHook(func() {
		b.loadFont()
	})

	b.backend.SetBgColor(imgui.NewVec4(0.99, 0.98, 0.98, 1.0))
	b.backend.CreateWindow(title, int(width), int(height))

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	b.log.Info("imgui backend created", zap.Int32("width", width), zap.Int32("height", height))
	return b, nil
}

func (b *Backend) loadFont() {
	var fontPath string
	for _, path := range fontPaths {
		if _, err := os.Stat(path); err == nil {
			fontPath = path
			break
		}
	}
	if fontPath == "" {
		b.log.Debug("no system font found, using ImGui default")
		return
	}

	fontCfg := imgui.NewFontConfig()
	defer fontCfg.Destroy()

	imgui.CurrentIO().Fonts().AddFontFromFileTTFV(fontPath, FontSize, fontCfg, nil)
	b.log.Debug("font loaded", zap.String("path", fontPath))
}

// Run starts the backend loop; frame is called once per frame between
// ImGui's NewFrame and Render. It returns when the window is closed.
func (b *Backend) Run(frame func()) {
	b.backend.Run(frame)
}

// OnClose registers fn to run before the GL context is destroyed, which
// happens when Run returns.
func (b *Backend) OnClose(fn func()) {
	b.backend.SetBeforeDestroyContextHook(fn)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// DisplaySize returns the window size in points.
func (b *Backend) DisplaySize() (float32, float32) {
	size := imgui.CurrentIO().DisplaySize()
	return size.X, size.Y
}

// DrawableSize returns the framebuffer size in pixels, with the pixel ratio
// limited to maxRatio.
func (b *Backend) DrawableSize(maxRatio float32) (int32, int32) {
	io := imgui.CurrentIO()
	size := io.DisplaySize()
	scale := io.DisplayFramebufferScale()
	sx, sy := min(scale.X, maxRatio), min(scale.Y, maxRatio)
	return int32(size.X * sx), int32(size.Y * sy)
}

// DrawSceneTexture fills the viewport with a GL texture, behind every
// other window. V is flipped for OpenGL.
func (b *Backend) DrawSceneTexture(textureID uint32) {
	if textureID == 0 {
		return
	}
	w, h := b.DisplaySize()

	imgui.SetNextWindowPos(imgui.NewVec2(0, 0))
	imgui.SetNextWindowSize(imgui.NewVec2(w, h))

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoScrollWithMouse | imgui.WindowFlagsNoBringToFrontOnFocus |
		imgui.WindowFlagsNoInputs | imgui.WindowFlagsNoSavedSettings

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV("##Scene", nil, flags) {
		texRef := imgui.NewTextureRefTextureID(imgui.TextureID(textureID))
		imgui.ImageV(*texRef,
			imgui.NewVec2(w, h),
			imgui.NewVec2(0, 1),
			imgui.NewVec2(1, 0))
	}
	imgui.End()
	imgui.PopStyleVar()
}

// Pointer returns this frame's scene drag and wheel input. Input over an
// ImGui window is ignored, and a drag that starts over one stays ignored
// until the button is released.
func (b *Backend) Pointer() Pointer {
	io := imgui.CurrentIO()
	mouse := imgui.MousePos()
	defer func() { b.lastMouse = mouse }()

	var p Pointer
	if !imgui.IsMouseDown(imgui.MouseButtonLeft) {
		b.dragging = false
	} else if !b.dragging && imgui.IsMouseDragging(imgui.MouseButtonLeft) && !io.WantCaptureMouse() {
		b.dragging = true
	} else if b.dragging {
		p.DragX = mouse.X - b.lastMouse.X
		p.DragY = mouse.Y - b.lastMouse.Y
	}

	if !io.WantCaptureMouse() {
		p.Wheel = io.MouseWheel()
	}
	return p
}

// KeyPressed reports whether key was pressed this frame.
func KeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}

// KeyDown reports whether key is held.
func KeyDown(key imgui.Key) bool {
	return imgui.IsKeyDown(key)
}
