package navigation

import "github.com/lixenwraith/battlefield/core"

const unreachable = 1<<31 - 1

// DistanceField stores terrain-only step counts to a single target
// Occupancy is ignored: an unreachable cell stays unreachable no matter how units move
type DistanceField struct {
	Width, Height int
	Distances     []int // Per-cell steps to target, flat y*width+x

	// Cache state
	Target core.Point // Target this field was computed for
	valid  bool

	// Reusable queue buffer across recomputes
	queue []int
}

// NewDistanceField creates an empty field for the given dimensions
func NewDistanceField(width, height int) *DistanceField {
	return &DistanceField{
		Width:     width,
		Height:    height,
		Distances: make([]int, width*height),
		Target:    core.Point{X: -1, Y: -1},
		queue:     make([]int, 0, width*height/4),
	}
}

// Resize adjusts field dimensions, invalidates cache
func (f *DistanceField) Resize(width, height int) {
	size := width * height
	if cap(f.Distances) < size {
		f.Distances = make([]int, size)
	} else {
		f.Distances = f.Distances[:size]
	}
	f.Width = width
	f.Height = height
	f.valid = false
}

// Invalidate marks field for recomputation
func (f *DistanceField) Invalidate() {
	f.valid = false
}

// Valid returns true if the field holds data for Target
func (f *DistanceField) Valid() bool {
	return f.valid
}

// Distance returns steps from p to target, -1 if unreachable or invalid
func (f *DistanceField) Distance(p core.Point) int {
	if !f.valid || p.X < 0 || p.Y < 0 || p.X >= f.Width || p.Y >= f.Height {
		return -1
	}
	d := f.Distances[p.Y*f.Width+p.X]
	if d == unreachable {
		return -1
	}
	return d
}

// Reachable reports whether p connects to the target over walkable terrain
func (f *DistanceField) Reachable(p core.Point) bool {
	return f.Distance(p) >= 0
}

// Compute floods outward from target over walkable cells
// Uniform step cost makes the breadth-first order a Dijkstra order
func (f *DistanceField) Compute(target core.Point, grid Walkable) {
	if target.X < 0 || target.Y < 0 || target.X >= f.Width || target.Y >= f.Height || !grid.IsWalkable(target) {
		f.valid = false
		return
	}

	w := f.Width
	for i := range f.Distances {
		f.Distances[i] = unreachable
	}

	targetIdx := target.Y*w + target.X
	f.Distances[targetIdx] = 0
	f.queue = append(f.queue[:0], targetIdx)

	for head := 0; head < len(f.queue); head++ {
		idx := f.queue[head]
		cur := core.Point{X: idx % w, Y: idx / w}
		dist := f.Distances[idx]

		for _, d := range core.Directions {
			next := cur.Add(d)
			if !grid.IsWalkable(next) {
				continue
			}
			// Grid may be larger than the field; stay inside our own bounds
			if next.X >= f.Width || next.Y >= f.Height {
				continue
			}
			nIdx := next.Y*w + next.X
			if f.Distances[nIdx] != unreachable {
				continue
			}
			f.Distances[nIdx] = dist + 1
			f.queue = append(f.queue, nIdx)
		}
	}

	f.Target = target
	f.valid = true
}
