// Package camera provides the damped orbit camera that circles the plant.
package camera

import (
	gomath "math"

	"github.com/Faultbox/dappled/pkg/math"
)

// Default view, matching a camera at (22, 16, 22) looking at (0, 4.5, 0).
var (
	DefaultEye    = math.Vec3{X: 22, Y: 16, Z: 22}
	DefaultTarget = math.Vec3{Y: 4.5}
)

// OrbitCamera orbits around a target. Input moves the goal angles and
// distance; Update eases the current values toward them.
type OrbitCamera struct {
	Target math.Vec3

	// Current spherical coordinates around Target.
	Distance float32
	Pitch    float32 // elevation above the XZ plane, radians
	Yaw      float32 // around +Y, radians; 0 looks from +Z

	goalDistance, goalPitch, goalYaw float32

	// Lens
	FovY      float32 // radians
	Near, Far float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Damping is the fraction of the remaining gap closed per 1/60 s.
	// 1 disables easing.
	Damping float32

	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates a camera at DefaultEye looking at DefaultTarget.
func NewOrbitCamera() *OrbitCamera {
	c := &OrbitCamera{
		Target:          DefaultTarget,
		FovY:            35 * gomath.Pi / 180,
		Near:            0.1,
		Far:             1000,
		MinDistance:     5,
		MaxDistance:     120,
		MinPitch:        -0.05,
		MaxPitch:        1.5,
		Damping:         0.05,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
	c.LookFrom(DefaultEye)
	return c
}

// LookFrom places the camera at eye, keeping the target, with no easing.
func (c *OrbitCamera) LookFrom(eye math.Vec3) {
	off := eye.Sub(c.Target)
	d := off.Length()
	if d == 0 {
		return
	}
	c.Distance = d
	c.Pitch = float32(gomath.Asin(float64(off.Y / d)))
	c.Yaw = float32(gomath.Atan2(float64(off.X), float64(off.Z)))
	c.goalDistance, c.goalPitch, c.goalYaw = c.Distance, c.Pitch, c.Yaw
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	cp, sp := gomath.Cos(float64(c.Pitch)), gomath.Sin(float64(c.Pitch))
	cy, sy := gomath.Cos(float64(c.Yaw)), gomath.Sin(float64(c.Yaw))
	return c.Target.Add(math.Vec3{
		X: c.Distance * float32(cp*sy),
		Y: c.Distance * float32(sp),
		Z: c.Distance * float32(cp*cy),
	})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Target, math.AxisY)
}

// ProjectionMatrix returns the perspective projection for aspect.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// HandleDrag turns the goal orientation by a mouse drag delta in pixels.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.goalYaw -= deltaX * c.DragSensitivity
	c.goalPitch = clamp(c.goalPitch+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom scales the goal distance by a wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	d := c.goalDistance - delta*c.goalDistance*c.ZoomSensitivity
	c.goalDistance = clamp(d, c.MinDistance, c.MaxDistance)
}

// Update eases the current orientation toward the goal over dt seconds.
func (c *OrbitCamera) Update(dt float32) {
	if c.Damping <= 0 || c.Damping >= 1 {
		c.Distance, c.Pitch, c.Yaw = c.goalDistance, c.goalPitch, c.goalYaw
		return
	}
	k := 1 - float32(gomath.Pow(float64(1-c.Damping), float64(dt*60)))
	c.Distance += (c.goalDistance - c.Distance) * k
	c.Pitch += (c.goalPitch - c.Pitch) * k
	c.Yaw += (c.goalYaw - c.Yaw) * k
}

// Settled reports whether the camera has reached its goal.
func (c *OrbitCamera) Settled() bool {
	const eps = 1e-4
	return absf(c.goalDistance-c.Distance) < eps &&
		absf(c.goalPitch-c.Pitch) < eps &&
		absf(c.goalYaw-c.Yaw) < eps
}

func clamp(v, lo, hi float32) float32 {
	return min(hi, max(lo, v))
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
