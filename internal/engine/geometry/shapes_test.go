package geometry

import (
	"testing"

	"github.com/Faultbox/dappled/pkg/math"
)

func TestCubicEndpoints(t *testing.T) {
	for _, c := range []Cubic{LeafOutline, BractOutline} {
		if got := c.At(0); got != c.P0 {
			t.Errorf("At(0): got %v, want %v", got, c.P0)
		}
		if got := c.At(1); got != c.P3 {
			t.Errorf("At(1): got %v, want %v", got, c.P3)
		}
	}
}

func TestOutlineIsMirrored(t *testing.T) {
	pts := Outline(LeafOutline, CurveSamples)
	if len(pts) != 2*CurveSamples {
		t.Fatalf("outline points: got %d, want %d", len(pts), 2*CurveSamples)
	}
	if pts[CurveSamples] != LeafOutline.P3 {
		t.Errorf("tip: got %v, want %v", pts[CurveSamples], LeafOutline.P3)
	}
	for i := 1; i < CurveSamples; i++ {
		right, left := pts[i], pts[2*CurveSamples-i]
		if right.X != -left.X || right.Y != left.Y {
			t.Errorf("sample %d: right %v is not mirrored by left %v", i, right, left)
		}
	}
}

func TestFlatShapes(t *testing.T) {
	tests := []struct {
		name   string
		mesh   *Mesh
		height float32
	}{
		{"leaf", Leaf(), 1.2},
		{"bract", Bract(), 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.mesh
			if got, want := m.VertexCount(), 2*CurveSamples+1; got != want {
				t.Errorf("vertices: got %d, want %d", got, want)
			}
			if got, want := len(m.Indices), 3*2*CurveSamples; got != want {
				t.Errorf("indices: got %d, want %d", got, want)
			}
			var top float32
			for i := 0; i < m.VertexCount(); i++ {
				if m.Normal(i) != math.AxisZ {
					t.Errorf("vertex %d normal: got %v, want +Z", i, m.Normal(i))
				}
				top = max(top, m.Position(i).Y)
			}
			if top != tt.height {
				t.Errorf("height: got %v, want %v", top, tt.height)
			}
		})
	}
}

func TestBranchCylinder(t *testing.T) {
	m := Branch()
	var minY, maxY float32 = 1, 0
	for i := 0; i < m.VertexCount(); i++ {
		p := m.Position(i)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
		if n := m.Normal(i).Length(); n < 0.999 || n > 1.001 {
			t.Errorf("vertex %d normal length: got %v", i, n)
		}
	}
	if minY != 0 || maxY != 1 {
		t.Errorf("branch extent: got [%v, %v], want [0, 1]", minY, maxY)
	}
	for _, idx := range m.Indices {
		if int(idx) >= m.VertexCount() {
			t.Fatalf("index %d out of range %d", idx, m.VertexCount())
		}
	}
}

func TestCylinderRadii(t *testing.T) {
	m := Cylinder(0.08, 0.12, 1, 8)
	for i := 0; i < m.VertexCount(); i++ {
		p := m.Position(i)
		r := math.Vec3{X: p.X, Z: p.Z}.Length()
		if r == 0 {
			continue // cap centers
		}
		want := float32(0.08)
		if p.Y < 0 {
			want = 0.12
		}
		if d := r - want; d > 1e-6 || d < -1e-6 {
			t.Errorf("vertex %d radius: got %v, want %v", i, r, want)
		}
	}
}

func TestFlowerCenterAndPlane(t *testing.T) {
	fc := FlowerCenter()
	var maxY float32
	for i := 0; i < fc.VertexCount(); i++ {
		maxY = max(maxY, fc.Position(i).Y)
	}
	if d := maxY - 0.4; d > 1e-6 || d < -1e-6 {
		t.Errorf("flower center height: got %v, want 0.4", maxY)
	}

	p := Plane(120)
	if p.VertexCount() != 4 || len(p.Indices) != 6 {
		t.Errorf("plane: got %d vertices, %d indices", p.VertexCount(), len(p.Indices))
	}
	if p.Position(2) != (math.Vec3{X: 60, Z: 60}) {
		t.Errorf("plane corner: got %v", p.Position(2))
	}
}
