package plant

import (
	gomath "math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Faultbox/dappled/pkg/math"
)

// Growth constants.
const (
	Iterations        = 5
	RootStems         = 4
	LengthScale       = 0.76
	BaseLength        = 3.2
	ThicknessPerDepth = 0.2

	// AngleSpread is the perturbation half-angle (35 degrees). Child tilt
	// is drawn from ±AngleSpread*1.1.
	AngleSpread = 35 * gomath.Pi / 180

	LeafDepth    = 3 // leaves grow at depth <= LeafDepth
	ClusterDepth = 2 // clusters grow at depth <= ClusterDepth

	BractsPerCluster = 3
	BractPitch       = 0.5 // radians, about 28.6 degrees
	CenterScale      = 0.5
)

var (
	worldX = r3.Vec{X: 1}
	worldY = r3.Vec{Y: 1}
)

// SegmentLength returns the length of a segment grown at depth.
func SegmentLength(depth int) float64 {
	return gomath.Pow(LengthScale, float64(Iterations-depth)) * BaseLength
}

// LeavesAt returns how many leaves a node at depth spawns.
func LeavesAt(depth int) int {
	switch {
	case depth > LeafDepth:
		return 0
	case depth == 1:
		return 10
	default:
		return 4
	}
}

// ClustersAt returns how many bract clusters a node at depth spawns.
func ClustersAt(depth int) int {
	switch {
	case depth > ClusterDepth:
		return 0
	case depth == 1:
		return 8
	default:
		return 3
	}
}

// ChildrenAt returns the branching factor of a node at depth.
func ChildrenAt(depth int) int {
	switch {
	case depth <= 0:
		return 0
	case depth == Iterations:
		return 5
	default:
		return 2
	}
}

// Generator grows a plant from a random source.
type Generator struct {
	rnd Source
	b   *builder
}

// NewGenerator creates a generator drawing from rnd.
func NewGenerator(rnd Source) *Generator {
	return &Generator{rnd: rnd}
}

// Generate grows RootStems stems and returns the frozen result.
func (g *Generator) Generate() *Store {
	g.b = newBuilder()
	for root := 0; root < RootStems; root++ {
		pos := r3.Vec{X: (g.r() - 0.5) * 0.5, Z: (g.r() - 0.5) * 0.5}
		dir := r3.Unit(r3.Vec{X: (g.r() - 0.5) * 0.2, Y: 1, Z: (g.r() - 0.5) * 0.2})
		g.grow(pos, dir, Iterations, root)
	}
	s := g.b.freeze()
	g.b = nil
	return s
}

// node is a grown segment whose children are still being spawned.
type node struct {
	end     r3.Vec
	dir     r3.Vec
	depth   int
	root    int
	pending int
}

// grow walks one stem depth-first with an explicit stack. Random draws
// happen in the same order a recursive walk would make them.
func (g *Generator) grow(pos, dir r3.Vec, depth, root int) {
	stack := make([]node, 0, Iterations+1)
	stack = append(stack, g.segment(pos, dir, depth, root))
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.pending == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		top.pending--
		child := g.segment(top.end, g.childDirection(top.dir), top.depth-1, top.root)
		stack = append(stack, child)
	}
}

// segment emits one branch segment and the foliage at its end.
func (g *Generator) segment(pos, dir r3.Vec, depth, root int) node {
	length := SegmentLength(depth)
	end := r3.Add(pos, r3.Scale(length, dir))

	g.b.addSegment(Segment{
		Start:     vec(pos),
		Direction: vec(dir),
		Depth:     depth,
		Length:    float32(length),
		Thickness: float32(depth) * ThicknessPerDepth,
		Root:      root,
	})

	for i := 0; i < LeavesAt(depth); i++ {
		g.b.addLeaf(depth, g.leaf(end))
	}
	for c := 0; c < ClustersAt(depth); c++ {
		g.cluster(depth, end)
	}

	return node{end: end, dir: dir, depth: depth, root: root, pending: ChildrenAt(depth)}
}

func (g *Generator) leaf(end r3.Vec) Leaf {
	pos := r3.Add(end, g.noise(0.8))
	return Leaf{
		Position: vec(pos),
		Rotation: g.euler(),
		Scale:    float32(g.r()*0.3 + 0.6),
		Jitter:   float32(g.r() * 100),
		Speed:    float32(0.4 + g.r()*0.2),
	}
}

func (g *Generator) cluster(depth int, end r3.Vec) {
	pos := vec(r3.Add(end, g.noise(1.8)))
	rot := g.euler()
	jitter := float32(g.r() * 100)
	speed := float32(1.3 + g.r()*0.5)

	id := g.b.nextCluster(depth)
	for i := 0; i < BractsPerCluster; i++ {
		g.b.addBract(Bract{
			Position:        pos,
			ClusterRotation: rot,
			Yaw:             float32(float64(i) * 2 * gomath.Pi / BractsPerCluster),
			Pitch:           BractPitch,
			Scale:           float32(0.6 + g.r()*0.2),
			Jitter:          jitter,
			Speed:           speed,
			Cluster:         id,
		})
	}
	g.b.addCenter(Center{
		Position: pos,
		Rotation: rot,
		Scale:    CenterScale,
		Jitter:   jitter,
		Speed:    speed,
		Cluster:  id,
	})
}

// childDirection tilts dir about world X, spins it about world Y and
// renormalizes.
func (g *Generator) childDirection(dir r3.Vec) r3.Vec {
	tilt := (g.r() - 0.5) * AngleSpread * 2.2
	d := r3.NewRotation(tilt, worldX).Rotate(dir)
	d = r3.NewRotation(g.r()*2*gomath.Pi, worldY).Rotate(d)
	return r3.Unit(d)
}

// noise returns a per-axis offset in [-spread/2, spread/2).
func (g *Generator) noise(spread float64) r3.Vec {
	return r3.Vec{
		X: (g.r() - 0.5) * spread,
		Y: (g.r() - 0.5) * spread,
		Z: (g.r() - 0.5) * spread,
	}
}

func (g *Generator) euler() math.Euler {
	return math.Euler{
		X: float32(g.r() * gomath.Pi),
		Y: float32(g.r() * gomath.Pi),
		Z: float32(g.r() * gomath.Pi),
	}
}

func (g *Generator) r() float64 {
	return g.rnd.Float64()
}

func vec(v r3.Vec) math.Vec3 {
	return math.Vec3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
