package animation

import (
	"github.com/Faultbox/dappled/internal/plant"
	"github.com/Faultbox/dappled/pkg/math"
)

// Pose holds one frame of instance matrices. Its slices are sized to the
// store once and overwritten every frame.
type Pose struct {
	Plant   math.Mat4
	Leaves  []math.Mat4
	Bracts  []math.Mat4
	Centers []math.Mat4
}

// NewPose allocates a pose with room for every instance in store.
func NewPose(store *plant.Store) *Pose {
	return &Pose{
		Plant:   math.Identity(),
		Leaves:  make([]math.Mat4, store.LeafCount()),
		Bracts:  make([]math.Mat4, store.BractCount()),
		Centers: make([]math.Mat4, store.CenterCount()),
	}
}

// Driver evaluates the pose of a frozen plant.
type Driver struct {
	store *plant.Store
}

// NewDriver creates a driver over store.
func NewDriver(store *plant.Store) *Driver {
	return &Driver{store: store}
}

// Store returns the plant the driver animates.
func (d *Driver) Store() *plant.Store {
	return d.store
}

// Update recomputes every matrix of pose for time t and wind w.
func (d *Driver) Update(t float64, w float32, pose *Pose) {
	pose.Plant = PlantSway(t, w)
	for i := range pose.Leaves {
		pose.Leaves[i] = LeafTransform(d.store.Leaf(i), t, w)
	}
	for i := range pose.Bracts {
		pose.Bracts[i] = BractTransform(d.store.Bract(i), t, w)
	}
	for i := range pose.Centers {
		pose.Centers[i] = CenterTransform(d.store.Center(i))
	}
}

// Evaluate allocates a fresh pose for (t, w).
func (d *Driver) Evaluate(t float64, w float32) *Pose {
	p := NewPose(d.store)
	d.Update(t, w, p)
	return p
}
