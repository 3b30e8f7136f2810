package plant

// builder collects descriptors while the generator runs. It is private to
// the generator and consumed by freeze, so nothing can append afterwards.
type builder struct {
	segments []Segment
	leaves   []Leaf
	bracts   []Bract
	centers  []Center
	clusters int
	stats    Stats
}

func newBuilder() *builder {
	return &builder{}
}

func (b *builder) addSegment(s Segment) {
	b.segments = append(b.segments, s)
	b.stats.Segments[s.Depth]++
}

func (b *builder) addLeaf(depth int, l Leaf) {
	b.leaves = append(b.leaves, l)
	b.stats.Leaves[depth]++
}

func (b *builder) nextCluster(depth int) int {
	id := b.clusters
	b.clusters++
	b.stats.Clusters[depth]++
	return id
}

func (b *builder) addBract(br Bract) {
	b.bracts = append(b.bracts, br)
}

func (b *builder) addCenter(c Center) {
	b.centers = append(b.centers, c)
}

// freeze compacts the growable slices into exact-length arrays.
func (b *builder) freeze() *Store {
	s := &Store{
		segments: compact(b.segments),
		leaves:   compact(b.leaves),
		bracts:   compact(b.bracts),
		centers:  compact(b.centers),
		clusters: b.clusters,
		stats:    b.stats,
	}
	s.bounds = s.computeBounds()
	*b = builder{}
	return s
}

func compact[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// Store is the frozen plant model. It has no mutating methods; slices
// handed out are copies.
type Store struct {
	segments []Segment
	leaves   []Leaf
	bracts   []Bract
	centers  []Center
	clusters int
	stats    Stats
	bounds   Bounds
}

// SegmentCount returns the number of branch segments.
func (s *Store) SegmentCount() int { return len(s.segments) }

// Segment returns segment i.
func (s *Store) Segment(i int) Segment { return s.segments[i] }

// Skeleton returns a copy of all branch segments.
func (s *Store) Skeleton() []Segment { return compact(s.segments) }

// LeafCount returns the number of leaves.
func (s *Store) LeafCount() int { return len(s.leaves) }

// Leaf returns leaf i.
func (s *Store) Leaf(i int) Leaf { return s.leaves[i] }

// Leaves returns a copy of all leaves.
func (s *Store) Leaves() []Leaf { return compact(s.leaves) }

// BractCount returns the number of bracts.
func (s *Store) BractCount() int { return len(s.bracts) }

// Bract returns bract i.
func (s *Store) Bract(i int) Bract { return s.bracts[i] }

// Bracts returns a copy of all bracts.
func (s *Store) Bracts() []Bract { return compact(s.bracts) }

// CenterCount returns the number of flower centers.
func (s *Store) CenterCount() int { return len(s.centers) }

// Center returns center i.
func (s *Store) Center(i int) Center { return s.centers[i] }

// Centers returns a copy of all flower centers.
func (s *Store) Centers() []Center { return compact(s.centers) }

// ClusterCount returns the number of bract clusters.
func (s *Store) ClusterCount() int { return s.clusters }

// Stats returns per-depth generation counts.
func (s *Store) Stats() Stats { return s.stats }

// Bounds returns the box enclosing every segment end point and instance
// position.
func (s *Store) Bounds() Bounds { return s.bounds }

func (s *Store) computeBounds() Bounds {
	if len(s.segments) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: s.segments[0].Start, Max: s.segments[0].Start}
	for _, seg := range s.segments {
		b.extend(seg.Start)
		b.extend(seg.End())
	}
	for _, l := range s.leaves {
		b.extend(l.Position)
	}
	for _, c := range s.centers {
		b.extend(c.Position)
	}
	return b
}
