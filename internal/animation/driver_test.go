package animation

import (
	gomath "math"
	"reflect"
	"testing"

	"github.com/Faultbox/dappled/internal/plant"
	"github.com/Faultbox/dappled/pkg/math"
)

func testStore(t *testing.T) *plant.Store {
	t.Helper()
	return plant.NewGenerator(plant.NewSource(42)).Generate()
}

func TestZeroWindIsBasePose(t *testing.T) {
	store := testStore(t)
	pose := NewDriver(store).Evaluate(12.75, 0)

	if pose.Plant != math.Translate(PlantOrigin) {
		t.Errorf("plant sway at w=0: got %v, want plain translation", pose.Plant)
	}
	for i, m := range pose.Leaves {
		l := store.Leaf(i)
		want := math.Compose(l.Position, l.Rotation.ToMat4(), uniform(l.Scale))
		assertMat(t, "leaf", i, m, want, 1e-6)
	}
	for i, m := range pose.Bracts {
		b := store.Bract(i)
		want := math.Compose(b.Position, b.BaseOrientation().ToMat4(), uniform(b.Scale))
		assertMat(t, "bract", i, m, want, 1e-6)
	}
}

func TestDriverIsStateless(t *testing.T) {
	store := testStore(t)
	d := NewDriver(store)

	first := d.Evaluate(3.5, 1.5)
	// A different frame in between must not leak into the next result.
	d.Evaluate(100, 3.5)
	second := d.Evaluate(3.5, 1.5)

	if !reflect.DeepEqual(first, second) {
		t.Error("identical (t, w) produced different poses")
	}

	reused := NewPose(store)
	d.Update(50, 0.5, reused)
	d.Update(3.5, 1.5, reused)
	if !reflect.DeepEqual(first, reused) {
		t.Error("reusing a pose buffer changed the result")
	}
}

func TestDriverDoesNotMutateStore(t *testing.T) {
	store := testStore(t)
	leaves, bracts, centers := store.Leaves(), store.Bracts(), store.Centers()

	d := NewDriver(store)
	for _, tm := range []float64{0, 1, 2.5, 60} {
		d.Evaluate(tm, 3.5)
	}

	if !reflect.DeepEqual(leaves, store.Leaves()) ||
		!reflect.DeepEqual(bracts, store.Bracts()) ||
		!reflect.DeepEqual(centers, store.Centers()) {
		t.Error("animation changed stored descriptors")
	}
}

func TestSlowWindAtTimeZero(t *testing.T) {
	// Slow preset, t = 0: the offset from base is the jitter phase alone.
	const w = 0.5
	store := testStore(t)
	for i := 0; i < store.LeafCount(); i++ {
		l := store.Leaf(i)
		got := LeafRotation(l, 0, w)
		j := float64(l.Jitter)
		want := math.Vec3{
			X: float32(gomath.Sin(j) * 0.04 * w),
			Y: float32(gomath.Cos(j) * 0.06 * w),
			Z: float32(gomath.Sin(j) * 0.03 * w),
		}
		off := math.Vec3{X: got.X - l.Rotation.X, Y: got.Y - l.Rotation.Y, Z: got.Z - l.Rotation.Z}
		if d := off.Sub(want).Length(); d > 1e-6 {
			t.Fatalf("leaf %d offset: got %v, want %v", i, off, want)
		}
	}
}

func TestPlantSway(t *testing.T) {
	const tm, w = 2.0, 3.5
	got := PlantSway(tm, w)
	rx := float32(gomath.Sin(tm*0.3) * 0.02 * w)
	rz := float32(gomath.Cos(tm*0.25) * 0.02 * w)
	want := math.Translate(PlantOrigin).Mul(math.RotateX(rx)).Mul(math.RotateZ(rz))
	assertMat(t, "plant", 0, got, want, 0)
}

func TestBractFlapOrder(t *testing.T) {
	b := plant.Bract{
		ClusterRotation: math.Euler{X: 0.2, Y: 0.4, Z: 0.6},
		Yaw:             float32(2 * gomath.Pi / 3),
		Pitch:           plant.BractPitch,
		Scale:           0.7,
		Jitter:          13,
		Speed:           1.5,
	}
	const tm, w = 1.25, 1.5
	flap := float32(gomath.Sin(tm*1.5*2.2+13) * 0.15 * w)
	twist := float32(gomath.Cos(tm*1.5*2.8+13) * 0.2 * w)

	want := b.ClusterRotation.ToMat4().
		Mul(math.RotateY(b.Yaw)).
		Mul(math.RotateX(b.Pitch)).
		Mul(math.RotateX(flap)).
		Mul(math.RotateY(twist))
	assertMat(t, "bract", 0, BractOrientation(b, tm, w).ToMat4(), want, 1e-5)
}

func TestCenterIgnoresWind(t *testing.T) {
	store := testStore(t)
	calm := NewDriver(store).Evaluate(4, 0)
	windy := NewDriver(store).Evaluate(4, 3.5)
	if !reflect.DeepEqual(calm.Centers, windy.Centers) {
		t.Error("flower centers moved with the wind")
	}
}

func TestSegmentTransform(t *testing.T) {
	s := plant.Segment{
		Start:     math.Vec3{X: 1, Y: 2, Z: 3},
		Direction: math.Vec3{X: 0, Y: 0, Z: 1},
		Depth:     3,
		Length:    2,
		Thickness: 0.6,
	}
	m := SegmentTransform(s)
	if got := m.TransformPoint(math.Vec3{}); got != s.Start {
		t.Errorf("base: got %v, want %v", got, s.Start)
	}
	tip := m.TransformPoint(math.Vec3{Y: 1})
	if d := tip.Sub(s.End()).Length(); d > 1e-5 {
		t.Errorf("tip: got %v, want %v", tip, s.End())
	}
}

func assertMat(t *testing.T, kind string, i int, got, want math.Mat4, eps float32) {
	t.Helper()
	for k := range got {
		d := got[k] - want[k]
		if d < 0 {
			d = -d
		}
		if d > eps {
			t.Fatalf("%s %d element %d: got %v, want %v", kind, i, k, got[k], want[k])
		}
	}
}
