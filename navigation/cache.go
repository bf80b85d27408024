package navigation

import "github.com/lixenwraith/battlefield/core"

// DistanceCache lazily computes one distance field per target over a fixed grid
type DistanceCache struct {
	grid          Walkable
	width, height int
	fields        map[core.Point]*DistanceField
}

// NewDistanceCache creates a cache for a width x height grid
func NewDistanceCache(grid Walkable, width, height int) *DistanceCache {
	return &DistanceCache{
		grid:   grid,
		width:  width,
		height: height,
		fields: make(map[core.Point]*DistanceField),
	}
}

// Field returns the distance field toward target, computing it on first use
func (c *DistanceCache) Field(target core.Point) *DistanceField {
	if f, ok := c.fields[target]; ok && f.Valid() {
		return f
	}
	f := NewDistanceField(c.width, c.height)
	f.Compute(target, c.grid)
	c.fields[target] = f
	return f
}

// Reachable reports whether from can ever reach target over terrain
func (c *DistanceCache) Reachable(from, target core.Point) bool {
	return c.Field(target).Reachable(from)
}

// Invalidate drops every cached field, next query recomputes
func (c *DistanceCache) Invalidate() {
	for k := range c.fields {
		delete(c.fields, k)
	}
}

// Len returns the number of cached targets
func (c *DistanceCache) Len() int {
	return len(c.fields)
}
