package geometry

import (
	gomath "math"

	"github.com/Faultbox/dappled/pkg/math"
)

// CurveSamples is the number of segments each outline curve is split into.
const CurveSamples = 12

// Point2 is a point in the XY plane of a flat shape.
type Point2 struct{ X, Y float32 }

// Cubic is a cubic Bezier curve.
type Cubic struct {
	P0, P1, P2, P3 Point2
}

// At evaluates the curve at t in [0, 1].
func (c Cubic) At(t float32) Point2 {
	u := 1 - t
	a, b, cc, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return Point2{
		X: a*c.P0.X + b*c.P1.X + cc*c.P2.X + d*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + cc*c.P2.Y + d*c.P3.Y,
	}
}

// LeafOutline is the right half of the leaf; the left half mirrors it.
var LeafOutline = Cubic{
	P0: Point2{0, 0},
	P1: Point2{0.5, 0.2},
	P2: Point2{0.5, 0.8},
	P3: Point2{0, 1.2},
}

// BractOutline is the right half of a bract.
var BractOutline = Cubic{
	P0: Point2{0, 0},
	P1: Point2{0.4, 0.1},
	P2: Point2{0.5, 0.6},
	P3: Point2{0, 1.0},
}

// Outline samples a symmetric closed outline: up the right curve and back
// down its mirror image. The start point is not repeated.
func Outline(half Cubic, samples int) []Point2 {
	pts := make([]Point2, 0, 2*samples)
	for i := 0; i <= samples; i++ {
		pts = append(pts, half.At(float32(i)/float32(samples)))
	}
	for i := samples - 1; i > 0; i-- {
		p := half.At(float32(i) / float32(samples))
		pts = append(pts, Point2{-p.X, p.Y})
	}
	return pts
}

// FlatShape fills a convex outline in the XY plane facing +Z, fanned
// around its centroid. Both sides are lit by the shader.
func FlatShape(outline []Point2) *Mesh {
	m := &Mesh{}
	n := math.AxisZ

	var cx, cy float32
	for _, p := range outline {
		cx += p.X
		cy += p.Y
	}
	cx /= float32(len(outline))
	cy /= float32(len(outline))

	center := m.add(math.Vec3{X: cx, Y: cy}, n)
	first := center + 1
	for _, p := range outline {
		m.add(math.Vec3{X: p.X, Y: p.Y}, n)
	}
	count := uint32(len(outline))
	for i := uint32(0); i < count; i++ {
		m.tri(center, first+i, first+(i+1)%count)
	}
	return m
}

// Leaf returns the leaf mesh.
func Leaf() *Mesh {
	return FlatShape(Outline(LeafOutline, CurveSamples))
}

// Bract returns the bract mesh.
func Bract() *Mesh {
	return FlatShape(Outline(BractOutline, CurveSamples))
}

// Cylinder builds a capped cylinder along +Y centered on the origin, with
// radiusTop at +height/2.
func Cylinder(radiusTop, radiusBottom, height float32, segments int) *Mesh {
	m := &Mesh{}
	half := height / 2
	slope := (radiusBottom - radiusTop) / height

	// Side: one ring at each end, seam vertex duplicated.
	for ring := 0; ring < 2; ring++ {
		y, r := half, radiusTop
		if ring == 1 {
			y, r = -half, radiusBottom
		}
		for s := 0; s <= segments; s++ {
			theta := float64(s) / float64(segments) * 2 * gomath.Pi
			sin, cos := float32(gomath.Sin(theta)), float32(gomath.Cos(theta))
			p := math.Vec3{X: r * sin, Y: y, Z: r * cos}
			n := math.Vec3{X: sin, Y: slope, Z: cos}.Normalize()
			m.add(p, n)
		}
	}
	row := uint32(segments + 1)
	for s := uint32(0); s < uint32(segments); s++ {
		a, b := s, s+row
		m.tri(a, b, a+1)
		m.tri(b, b+1, a+1)
	}

	m.cap(radiusTop, half, segments, true)
	m.cap(radiusBottom, -half, segments, false)
	return m
}

func (m *Mesh) cap(r, y float32, segments int, top bool) {
	if r <= 0 {
		return
	}
	n := math.AxisY
	if !top {
		n = math.Vec3{Y: -1}
	}
	center := m.add(math.Vec3{Y: y}, n)
	for s := 0; s <= segments; s++ {
		theta := float64(s) / float64(segments) * 2 * gomath.Pi
		m.add(math.Vec3{X: r * float32(gomath.Sin(theta)), Y: y, Z: r * float32(gomath.Cos(theta))}, n)
	}
	for s := uint32(0); s < uint32(segments); s++ {
		a, b := center+1+s, center+2+s
		if top {
			m.tri(center, a, b)
		} else {
			m.tri(center, b, a)
		}
	}
}

// Branch returns the unit branch cylinder with its base at the origin.
func Branch() *Mesh {
	return Cylinder(0.08, 0.12, 1, 8).Translate(math.Vec3{Y: 0.5})
}

// FlowerCenter returns the flower center stalk with its base at the origin.
func FlowerCenter() *Mesh {
	return Cylinder(0.04, 0.02, 0.4, 6).Translate(math.Vec3{Y: 0.2})
}

// Plane returns a square of the given size in the XZ plane facing +Y.
func Plane(size float32) *Mesh {
	h := size / 2
	m := &Mesh{}
	n := math.AxisY
	a := m.add(math.Vec3{X: -h, Z: -h}, n)
	b := m.add(math.Vec3{X: -h, Z: h}, n)
	c := m.add(math.Vec3{X: h, Z: h}, n)
	d := m.add(math.Vec3{X: h, Z: -h}, n)
	m.tri(a, b, c)
	m.tri(a, c, d)
	return m
}
