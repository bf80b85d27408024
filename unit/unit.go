// Package unit drives one agent along cached paths, re-planning lazily when blocked.
package unit

import (
	"github.com/lixenwraith/battlefield/core"
	"github.com/lixenwraith/battlefield/navigation"
)

// MoveStatus is the observable outcome of one Move call
type MoveStatus uint8

const (
	AtTarget MoveStatus = iota
	NoPath
	Blocked
	Moved
)

func (s MoveStatus) String() string {
	switch s {
	case AtTarget:
		return "at target"
	case NoPath:
		return "no path"
	case Blocked:
		return "blocked"
	case Moved:
		return "moved"
	default:
		return "unknown"
	}
}

// Unit is a single agent with a cached path toward its current target
// Not safe for concurrent use; the simulation serializes Move calls
type Unit struct {
	position core.Point
	path     []core.Point // Remaining route, start excluded, goal included
	cursor   int          // Next step index into path
	goal     core.Point   // Target the cached path was planned for

	pathfinder *navigation.Pathfinder // Borrowed, outlives the unit
}

// New places a unit at start
func New(start core.Point, pathfinder *navigation.Pathfinder) *Unit {
	return &Unit{
		position:   start,
		pathfinder: pathfinder,
	}
}

// Position returns the current cell
func (u *Unit) Position() core.Point {
	return u.position
}

// HasPath reports whether a cached path is held
func (u *Unit) HasPath() bool {
	return len(u.path) > 0
}

// Path returns a copy of the steps not yet taken
func (u *Unit) Path() []core.Point {
	if u.cursor >= len(u.path) {
		return nil
	}
	return append([]core.Point(nil), u.path[u.cursor:]...)
}

// Plan computes a path toward target if none is cached, without moving
// Reads occupancy only; safe to run for different units in parallel against a frozen set
// Returns false when a path is still missing afterwards
func (u *Unit) Plan(target core.Point, occupancy navigation.OccupancyView) bool {
	if u.position == target {
		return false
	}
	if u.HasPath() && u.goal != target {
		u.clearPath()
	}
	if u.HasPath() {
		return true
	}

	path := u.pathfinder.FindPath(u.position, target, occupancy)
	if len(path) == 0 {
		return false
	}
	u.path = path
	u.cursor = 0
	u.goal = target
	return true
}

// Move advances one cell toward target, claiming it in occupancy
//
// A blocked next step drops the cached path so the following call re-plans against fresh occupancy.
// No retry happens within the same call.
func (u *Unit) Move(target core.Point, occupancy core.Occupancy) MoveStatus {
	if u.position == target {
		return AtTarget
	}

	if !u.Plan(target, occupancy) {
		return NoPath
	}

	// Path exhausted without reaching target
	if u.cursor >= len(u.path) {
		return AtTarget
	}

	next := u.path[u.cursor]
	if occupancy.Has(next) {
		u.clearPath()
		return Blocked
	}

	occupancy.Remove(u.position)
	u.position = next
	occupancy.Add(next)
	u.cursor++
	return Moved
}

func (u *Unit) clearPath() {
	u.path = nil
	u.cursor = 0
}
