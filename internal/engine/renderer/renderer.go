// Package renderer draws the plant with instanced batches, a shadowed
// floor and one directional light.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/dappled/internal/animation"
	"github.com/Faultbox/dappled/internal/engine/framebuffer"
	"github.com/Faultbox/dappled/internal/engine/geometry"
	"github.com/Faultbox/dappled/internal/engine/lighting"
	"github.com/Faultbox/dappled/internal/engine/shader"
	"github.com/Faultbox/dappled/internal/engine/shadow"
	"github.com/Faultbox/dappled/internal/logger"
	"github.com/Faultbox/dappled/internal/plant"
	"github.com/Faultbox/dappled/pkg/math"
)

// FloorSize is the edge length of the ground square.
const FloorSize = 120

// Config holds renderer configuration.
type Config struct {
	Width, Height    int32 // drawable size in pixels
	Samples          int32 // MSAA samples, 1 disables
	Shadows          bool
	ShadowResolution int32
}

// Frame is everything a frame needs besides instance matrices.
type Frame struct {
	View       math.Mat4
	Projection math.Mat4
	CameraPos  math.Vec3
	Plant      math.Mat4
	Lights     lighting.Lights
}

// Renderer owns all GPU resources of the scene.
type Renderer struct {
	config Config
	log    *zap.Logger

	scene   *framebuffer.Framebuffer
	shadows *shadow.Map

	lit   *shader.Program
	depth *shader.Program

	branches *Batch
	leaves   *Batch
	bracts   *Batch
	centers  *Batch
	floor    *Batch

	lightSpace math.Mat4
}

// New creates the renderer. It must run after the GL context exists.
func New(cfg Config, store *plant.Store) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	r := &Renderer{config: cfg, log: logger.Named("renderer")}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	var err error
	if r.lit, err = shader.NewProgram(litVertexShader, litFragmentShader); err != nil {
		return nil, fmt.Errorf("lit program: %w", err)
	}
	if r.depth, err = shader.NewProgram(depthVertexShader, depthFragmentShader); err != nil {
		r.Close()
		return nil, fmt.Errorf("depth program: %w", err)
	}

	if r.scene, err = framebuffer.New(cfg.Width, cfg.Height, cfg.Samples); err != nil {
		r.Close()
		return nil, err
	}

	if cfg.Shadows {
		if r.shadows, err = shadow.NewMap(cfg.ShadowResolution); err != nil {
			// Shadows are optional; keep going without them.
			r.log.Warn("shadows disabled", zap.Error(err))
			r.shadows = nil
		}
	}

	r.createBatches(store)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r.log.Info("scene uploaded",
		zap.Int("segments", r.branches.Count()),
		zap.Int("leaves", store.LeafCount()),
		zap.Int("bracts", store.BractCount()),
		zap.Int("centers", store.CenterCount()),
		zap.Int32("samples", r.scene.Samples()),
		zap.Bool("shadows", r.shadows != nil),
	)
	return r, nil
}

func (r *Renderer) createBatches(store *plant.Store) {
	r.branches = newBatch("branches", geometry.Branch(), store.SegmentCount(), false, Material{
		Color: lighting.Hex(0x3d2b1f), Roughness: 0.9, Opacity: 1,
		CastShadow: true, FollowPlant: true,
	})
	skeleton := store.Skeleton()
	segs := make([]math.Mat4, len(skeleton))
	for i, s := range skeleton {
		segs[i] = animation.SegmentTransform(s)
	}
	r.branches.Upload(segs)

	r.leaves = newBatch("leaves", geometry.Leaf(), store.LeafCount(), true, Material{
		Color: lighting.Hex(0x3d7a21), Roughness: 0.5, Opacity: 0.98,
		DoubleSided: true, CastShadow: true, FollowPlant: true,
	})
	r.bracts = newBatch("bracts", geometry.Bract(), store.BractCount(), true, Material{
		Color: lighting.Hex(0xc41e5e), Roughness: 0.5, Opacity: 0.92,
		DoubleSided: true, CastShadow: true, FollowPlant: true,
	})
	r.centers = newBatch("centers", geometry.FlowerCenter(), store.CenterCount(), true, Material{
		Color: lighting.Hex(0xffffcc), Roughness: 1, Opacity: 1,
		CastShadow: true, FollowPlant: true,
	})

	r.floor = newBatch("floor", geometry.Plane(FloorSize), 1, false, Material{
		Color: lighting.Hex(0xffffff), Roughness: 1, Opacity: 1,
	})
	r.floor.Upload([]math.Mat4{math.Translate(animation.PlantOrigin)})
}

// Upload copies this frame's instance matrices to the GPU.
func (r *Renderer) Upload(pose *animation.Pose) {
	r.leaves.Upload(pose.Leaves)
	r.bracts.Upload(pose.Bracts)
	r.centers.Upload(pose.Centers)
}

func (r *Renderer) batches() []*Batch {
	return []*Batch{r.floor, r.branches, r.centers, r.leaves, r.bracts}
}

func parent(b *Batch, f Frame) math.Mat4 {
	if b.material.FollowPlant {
		return f.Plant
	}
	return math.Identity()
}

// ShadowPass renders the depth map from the light.
func (r *Renderer) ShadowPass(f Frame) {
	r.lightSpace = f.Lights.Sun.ShadowMatrix(lighting.DefaultShadowFrustum)
	if r.shadows == nil {
		return
	}
	r.shadows.Bind()
	r.depth.Use()
	r.depth.SetMat4("uLightSpace", r.lightSpace)
	for _, b := range r.batches() {
		if !b.material.CastShadow {
			continue
		}
		r.depth.SetMat4("uParent", parent(b, f))
		b.draw()
	}
	r.shadows.Unbind()
}

// DrawPass renders the lit scene into the offscreen target and resolves it.
func (r *Renderer) DrawPass(f Frame) {
	restore := r.scene.BindWithViewport()
	defer restore()

	bg := f.Lights.Background
	r.scene.Clear(bg[0], bg[1], bg[2], 1)
	gl.Enable(gl.DEPTH_TEST)

	p := r.lit
	p.Use()
	p.SetMat4("uView", f.View)
	p.SetMat4("uProjection", f.Projection)
	p.SetMat4("uLightSpace", r.lightSpace)
	p.SetVec3("uCameraPos", f.CameraPos.Array())
	p.SetVec3("uAmbientColor", f.Lights.Ambient.Color)
	p.SetFloat("uAmbientIntensity", f.Lights.Ambient.Intensity)
	p.SetVec3("uLightColor", f.Lights.Sun.Color)
	p.SetFloat("uLightIntensity", f.Lights.Sun.Intensity)
	p.SetVec3("uLightDir", f.Lights.Sun.Direction.Array())

	p.SetBool("uShadows", r.shadows != nil)
	if r.shadows != nil {
		r.shadows.BindTexture(gl.TEXTURE0)
		p.SetInt("uShadowMap", 0)
		p.SetFloat("uShadowBias", lighting.ShadowBias)
		p.SetFloat("uShadowTexel", 1/float32(r.shadows.Resolution))
	}

	for _, b := range r.batches() {
		m := b.material
		if m.DoubleSided {
			gl.Disable(gl.CULL_FACE)
		} else {
			gl.Enable(gl.CULL_FACE)
			gl.CullFace(gl.BACK)
		}
		p.SetMat4("uParent", parent(b, f))
		p.SetVec3("uColor", m.Color)
		p.SetFloat("uRoughness", m.Roughness)
		p.SetFloat("uOpacity", m.Opacity)
		p.SetBool("uDoubleSided", m.DoubleSided)
		b.draw()
	}
	gl.Disable(gl.CULL_FACE)

	r.scene.Resolve()
}

// SceneTexture returns the resolved scene color texture.
func (r *Renderer) SceneTexture() uint32 {
	return r.scene.ColorTexture()
}

// SceneSize returns the offscreen target size.
func (r *Renderer) SceneSize() (int32, int32) {
	return r.scene.Size()
}

// Present copies the scene into the window's default framebuffer.
func (r *Renderer) Present(width, height int32) {
	r.scene.BlitToDefault(width, height)
}

// ReadScene returns the resolved scene as bottom-up RGBA rows.
func (r *Renderer) ReadScene() (pixels []byte, width, height int) {
	w, h := r.scene.Size()
	return r.scene.ReadPixels(), int(w), int(h)
}

// Resize follows a drawable size change.
func (r *Renderer) Resize(width, height int32) {
	if width == r.config.Width && height == r.config.Height {
		return
	}
	r.config.Width, r.config.Height = width, height
	r.scene.Resize(width, height)
	r.log.Debug("renderer resized", zap.Int32("width", width), zap.Int32("height", height))
}

// Close releases every GPU resource.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for _, b := range []*Batch{r.floor, r.branches, r.centers, r.leaves, r.bracts} {
		if b != nil {
			b.destroy()
		}
	}
	if r.shadows != nil {
		r.shadows.Destroy()
		r.shadows = nil
	}
	if r.scene != nil {
		r.scene.Destroy()
		r.scene = nil
	}
	if r.depth != nil {
		r.depth.Delete()
	}
	if r.lit != nil {
		r.lit.Delete()
	}
}
