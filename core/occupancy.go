package core

import "sort"

// Occupancy is the set of points currently claimed by live units
// Shared by reference; each unit mutates only the points it leaves or enters
type Occupancy map[Point]struct{}

// NewOccupancy creates a set seeded with the given points
func NewOccupancy(points ...Point) Occupancy {
	o := make(Occupancy, len(points))
	for _, p := range points {
		o[p] = struct{}{}
	}
	return o
}

// Has reports whether p is claimed, nil set is empty
func (o Occupancy) Has(p Point) bool {
	_, ok := o[p]
	return ok
}

// Add claims p
func (o Occupancy) Add(p Point) {
	o[p] = struct{}{}
}

// Remove releases p
func (o Occupancy) Remove(p Point) {
	delete(o, p)
}

// Len returns the number of claimed points
func (o Occupancy) Len() int {
	return len(o)
}

// Clone returns an independent copy
func (o Occupancy) Clone() Occupancy {
	c := make(Occupancy, len(o))
	for p := range o {
		c[p] = struct{}{}
	}
	return c
}

// Points returns the claimed points in row-major order
func (o Occupancy) Points() []Point {
	out := make([]Point, 0, len(o))
	for p := range o {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
