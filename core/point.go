package core

import "strconv"

// Point is an immutable grid coordinate, usable as a map key
type Point struct {
	X, Y int
}

// Directions are the four axis-aligned steps in expansion order: Up, Down, Left, Right
var Directions = [4]Point{
	{0, -1},
	{0, 1},
	{-1, 0},
	{1, 0},
}

// Add returns the component-wise sum
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// ManhattanDistance returns |dx| + |dy|
func (p Point) ManhattanDistance(o Point) int {
	dx := p.X - o.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - o.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Neighbors returns the four adjacent points in Directions order
func (p Point) Neighbors() [4]Point {
	var out [4]Point
	for i, d := range Directions {
		out[i] = p.Add(d)
	}
	return out
}

// Hash mixes both components into a stable 64-bit value
// Deterministic across runs, unlike the runtime map hash
func (p Point) Hash() uint64 {
	h := uint64(uint32(p.X))*0x9E3779B97F4A7C15 ^ uint64(uint32(p.Y))
	// splitmix64 finalizer
	h ^= h >> 30
	h *= 0xBF58476D1CE4E5B9
	h ^= h >> 27
	h *= 0x94D049BB133111EB
	h ^= h >> 31
	return h
}

func (p Point) String() string {
	return "(" + strconv.Itoa(p.X) + ", " + strconv.Itoa(p.Y) + ")"
}
