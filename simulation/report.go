package simulation

import (
	"fmt"

	"github.com/lixenwraith/battlefield/battlefield"
	"github.com/lixenwraith/battlefield/core"
	"github.com/lixenwraith/battlefield/unit"
)

// TickReport counts Move outcomes of a single tick
type TickReport struct {
	Tick     int
	AtTarget int
	NoPath   int
	Blocked  int
	MovedN   int
	Stranded int // Skipped, cannot reach target over terrain
}

// Moved reports whether any unit advanced this tick
func (r TickReport) Moved() bool {
	return r.MovedN > 0
}

func (r *TickReport) count(s unit.MoveStatus) {
	switch s {
	case unit.AtTarget:
		r.AtTarget++
	case unit.NoPath:
		r.NoPath++
	case unit.Blocked:
		r.Blocked++
	case unit.Moved:
		r.MovedN++
	}
}

func (r TickReport) String() string {
	return fmt.Sprintf("tick %d: moved %d, blocked %d, no path %d, at target %d, stranded %d",
		r.Tick, r.MovedN, r.Blocked, r.NoPath, r.AtTarget, r.Stranded)
}

// Stats summarizes a Run
type Stats struct {
	Ticks    int
	Moves    int // Total Moved outcomes
	Blocked  int
	NoPath   int
	Arrived  int // Units at their target when the run ended
	Stranded int
	Units    int
}

func (s *Stats) add(r TickReport) {
	s.Ticks++
	s.Moves += r.MovedN
	s.Blocked += r.Blocked
	s.NoPath += r.NoPath
}

// Frame is a read-only view handed to observers
type Frame struct {
	Field   *battlefield.Field
	Units   []core.Point
	Tick    int
	Report  TickReport
	Arrived int
}

// Occupied reports whether a unit stands on p
func (f Frame) Occupied(p core.Point) bool {
	for _, u := range f.Units {
		if u == p {
			return true
		}
	}
	return false
}
