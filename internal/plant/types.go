// Package plant grows the flowering vine: a branch skeleton plus frozen
// per-instance descriptors for leaves, bracts and flower centers.
package plant

import (
	"github.com/Faultbox/dappled/pkg/math"
)

// Segment is one branch piece, drawn as a tapered cylinder.
type Segment struct {
	Start     math.Vec3
	Direction math.Vec3 // unit length
	Depth     int
	Length    float32
	Thickness float32 // Depth * ThicknessPerDepth
	Root      int     // index of the root stem this segment descends from
}

// End returns the far end of the segment.
func (s Segment) End() math.Vec3 {
	return s.Start.Add(s.Direction.Scale(s.Length))
}

// Orientation rotates the +Y unit cylinder onto the segment direction.
func (s Segment) Orientation() math.Quat {
	return math.QuatFromUnitVectors(math.AxisY, s.Direction)
}

// Leaf is the static descriptor of one leaf instance.
type Leaf struct {
	Position math.Vec3
	Rotation math.Euler
	Scale    float32
	Jitter   float32
	Speed    float32
}

// Bract is one of the three petal-like bracts of a cluster. Its base
// orientation is ClusterRotation, then Yaw about local Y, then Pitch about
// local X.
type Bract struct {
	Position        math.Vec3
	ClusterRotation math.Euler
	Yaw             float32
	Pitch           float32
	Scale           float32
	Jitter          float32
	Speed           float32
	Cluster         int
}

// BaseOrientation returns the resting orientation of the bract.
func (b Bract) BaseOrientation() math.Quat {
	return b.ClusterRotation.ToQuat().
		Mul(math.QuatFromAxisAngle(math.AxisY, b.Yaw)).
		Mul(math.QuatFromAxisAngle(math.AxisX, b.Pitch))
}

// Center is the flower center of a cluster. It never oscillates.
type Center struct {
	Position math.Vec3
	Rotation math.Euler
	Scale    float32
	Jitter   float32
	Speed    float32
	Cluster  int
}

// Stats counts what generation produced, per depth.
type Stats struct {
	Segments [Iterations + 1]int
	Leaves   [Iterations + 1]int
	Clusters [Iterations + 1]int
}

// Total sums a per-depth counter.
func Total(counts [Iterations + 1]int) int {
	n := 0
	for _, c := range counts {
		n += c
	}
	return n
}

// Bounds is an axis-aligned box in plant space.
type Bounds struct {
	Min, Max math.Vec3
}

func (b *Bounds) extend(p math.Vec3) {
	b.Min = math.Vec3{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y), Z: min(b.Min.Z, p.Z)}
	b.Max = math.Vec3{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y), Z: max(b.Max.Z, p.Z)}
}

// Size returns the extent of the box.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}
