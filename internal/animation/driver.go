// Package animation computes the wind-driven pose of every plant instance.
//
// Every function here is a pure function of elapsed time t (seconds) and
// wind strength w over the frozen plant descriptors. Nothing is cached or
// integrated between frames, so w may change at any moment without
// discontinuities.
package animation

import (
	gomath "math"

	"github.com/Faultbox/dappled/internal/plant"
	"github.com/Faultbox/dappled/pkg/math"
)

// PlantOrigin is where the plant root sits in world space.
var PlantOrigin = math.Vec3{Y: -1}

// PlantSway returns the world transform of the plant root.
func PlantSway(t float64, w float32) math.Mat4 {
	ww := float64(w)
	rx := float32(gomath.Sin(t*0.3) * 0.02 * ww)
	rz := float32(gomath.Cos(t*0.25) * 0.02 * ww)
	return math.Translate(PlantOrigin).Mul(math.RotateX(rx)).Mul(math.RotateZ(rz))
}

// LeafRotation returns the base rotation plus the wind flutter.
func LeafRotation(l plant.Leaf, t float64, w float32) math.Euler {
	ww := float64(w)
	s, j := float64(l.Speed), float64(l.Jitter)
	return l.Rotation.Add(math.Euler{
		X: float32(gomath.Sin(t*s+j) * 0.04 * ww),
		Y: float32(gomath.Cos(t*s*0.8+j) * 0.06 * ww),
		Z: float32(gomath.Sin(t*s*1.2+j) * 0.03 * ww),
	})
}

// LeafTransform returns the leaf matrix in plant space.
func LeafTransform(l plant.Leaf, t float64, w float32) math.Mat4 {
	return math.Compose(l.Position, LeafRotation(l, t, w).ToMat4(), uniform(l.Scale))
}

// BractOrientation returns the base orientation followed by a local X
// flap and then a local Y twist.
func BractOrientation(b plant.Bract, t float64, w float32) math.Quat {
	ww := float64(w)
	s, j := float64(b.Speed), float64(b.Jitter)
	flap := float32(gomath.Sin(t*s*2.2+j) * 0.15 * ww)
	twist := float32(gomath.Cos(t*s*2.8+j) * 0.2 * ww)
	return b.BaseOrientation().
		Mul(math.QuatFromAxisAngle(math.AxisX, flap)).
		Mul(math.QuatFromAxisAngle(math.AxisY, twist))
}

// BractTransform returns the bract matrix in plant space.
func BractTransform(b plant.Bract, t float64, w float32) math.Mat4 {
	return math.Compose(b.Position, BractOrientation(b, t, w).ToMat4(), uniform(b.Scale))
}

// CenterTransform returns the flower center matrix in plant space.
func CenterTransform(c plant.Center) math.Mat4 {
	return math.Compose(c.Position, c.Rotation.ToMat4(), uniform(c.Scale))
}

// SegmentTransform places the unit branch cylinder along a segment.
func SegmentTransform(s plant.Segment) math.Mat4 {
	scale := math.Vec3{X: s.Thickness, Y: s.Length, Z: s.Thickness}
	return math.Compose(s.Start, s.Orientation().ToMat4(), scale)
}

func uniform(s float32) math.Vec3 {
	return math.Vec3{X: s, Y: s, Z: s}
}
