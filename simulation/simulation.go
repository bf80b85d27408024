// Package simulation drives every unit of a battlefield toward its target, one tick at a time.
package simulation

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/battlefield/battlefield"
	"github.com/lixenwraith/battlefield/core"
	"github.com/lixenwraith/battlefield/navigation"
	"github.com/lixenwraith/battlefield/unit"
)

var (
	ErrNoStarts  = errors.New("battlefield has no start positions")
	ErrNoTargets = errors.New("battlefield has no target positions")
)

// Simulation owns the units, the shared occupancy set and the tick counter
// Not safe for concurrent use
type Simulation struct {
	field      *battlefield.Field
	pathfinder *navigation.Pathfinder
	distances  *navigation.DistanceCache
	occupancy  core.Occupancy

	units    []*unit.Unit
	targets  []core.Point // Per unit, same index
	stranded []bool       // Per unit, terrain alone separates it from its target

	tick int
	last TickReport
	opts Options
}

// New places one unit on every start position of field
func New(field *battlefield.Field, opts ...Option) (*Simulation, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = defaultOptions().Logger
	}

	starts := field.StartPositions()
	if len(starts) == 0 {
		return nil, ErrNoStarts
	}
	targets := field.TargetPositions()
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}

	s := &Simulation{
		field:      field,
		pathfinder: navigation.New(field),
		distances:  navigation.NewDistanceCache(field, field.Width(), field.Height()),
		occupancy:  core.NewOccupancy(starts...),
		units:      make([]*unit.Unit, 0, len(starts)),
		targets:    make([]core.Point, 0, len(starts)),
		stranded:   make([]bool, 0, len(starts)),
		opts:       o,
	}

	for i, start := range starts {
		target := assignTarget(o.Policy, start, targets)
		stranded := start != target && !s.distances.Reachable(start, target)
		if stranded {
			o.Logger.Printf("[Simulation] unit %d at %v cannot reach target %v, skipping", i, start, target)
		}

		s.units = append(s.units, unit.New(start, s.pathfinder))
		s.targets = append(s.targets, target)
		s.stranded = append(s.stranded, stranded)
	}

	o.Logger.Printf("[Simulation] %d units, %d targets, %d stranded, policy %v",
		len(s.units), len(targets), s.strandedCount(), o.Policy)

	s.notify()
	return s, nil
}

// assignTarget picks the target for a unit starting at start
func assignTarget(policy TargetPolicy, start core.Point, targets []core.Point) core.Point {
	if policy != TargetNearest {
		return targets[0]
	}
	best := targets[0]
	bestDist := start.ManhattanDistance(best)
	for _, t := range targets[1:] {
		if d := start.ManhattanDistance(t); d < bestDist {
			best, bestDist = t, d
		}
	}
	return best
}

// Tick moves every non-stranded unit once, in creation order
func (s *Simulation) Tick() TickReport {
	if s.opts.Workers > 1 {
		s.plan()
	}

	s.tick++
	report := TickReport{Tick: s.tick}

	for i, u := range s.units {
		if s.stranded[i] {
			report.Stranded++
			continue
		}

		from := u.Position()
		status := u.Move(s.targets[i], s.occupancy)
		report.count(status)

		switch status {
		case unit.Blocked:
			s.opts.Logger.Printf("[Simulation] unit %d at %v blocked", i, from)
		case unit.NoPath:
			s.opts.Logger.Printf("[Simulation] unit %d at %v has no path to %v", i, from, s.targets[i])
		}
	}

	s.last = report
	s.notify()
	return report
}

// plan computes missing paths concurrently against the tick-start occupancy
// Occupancy is only read during the phase; each goroutine writes its own unit's cache
func (s *Simulation) plan() {
	var g errgroup.Group
	g.SetLimit(s.opts.Workers)

	for i, u := range s.units {
		if s.stranded[i] || u.HasPath() || u.Position() == s.targets[i] {
			continue
		}
		target := s.targets[i]
		g.Go(func() error {
			u.Plan(target, s.occupancy)
			return nil
		})
	}
	_ = g.Wait()
}

// Run ticks until a tick moves nothing, MaxTicks is reached or ctx ends
func (s *Simulation) Run(ctx context.Context) (Stats, error) {
	stats := Stats{Units: len(s.units), Stranded: s.strandedCount()}

	for {
		if err := ctx.Err(); err != nil {
			s.finish(&stats)
			return stats, err
		}
		if s.opts.MaxTicks > 0 && stats.Ticks >= s.opts.MaxTicks {
			break
		}

		report := s.Tick()
		stats.add(report)
		if !report.Moved() {
			break
		}

		if s.opts.TickDelay > 0 {
			timer := time.NewTimer(s.opts.TickDelay)
			select {
			case <-ctx.Done():
				timer.Stop()
				s.finish(&stats)
				return stats, ctx.Err()
			case <-timer.C:
			}
		}
	}

	s.finish(&stats)
	return stats, nil
}

func (s *Simulation) finish(stats *Stats) {
	stats.Arrived = s.arrived()
	s.opts.Logger.Printf("[Simulation] finished after %d ticks: %d moves, %d blocked, %d no path, %d/%d arrived, %d stranded",
		stats.Ticks, stats.Moves, stats.Blocked, stats.NoPath, stats.Arrived, stats.Units, stats.Stranded)
}

func (s *Simulation) notify() {
	if len(s.opts.Observers) == 0 {
		return
	}
	frame := s.Frame()
	for _, fn := range s.opts.Observers {
		fn(frame)
	}
}

// Frame captures the current state
func (s *Simulation) Frame() Frame {
	return Frame{
		Field:   s.field,
		Units:   s.Units(),
		Tick:    s.tick,
		Report:  s.last,
		Arrived: s.arrived(),
	}
}

// Units returns unit positions in creation order
func (s *Simulation) Units() []core.Point {
	out := make([]core.Point, len(s.units))
	for i, u := range s.units {
		out[i] = u.Position()
	}
	return out
}

// Targets returns the target assigned to each unit, same order as Units
func (s *Simulation) Targets() []core.Point {
	return append([]core.Point(nil), s.targets...)
}

// Stranded returns the indices of units that cannot reach their target over terrain
func (s *Simulation) Stranded() []int {
	var out []int
	for i, st := range s.stranded {
		if st {
			out = append(out, i)
		}
	}
	return out
}

// Occupancy returns a copy of the claimed points
func (s *Simulation) Occupancy() core.Occupancy {
	return s.occupancy.Clone()
}

// Ticks returns the number of ticks performed
func (s *Simulation) Ticks() int {
	return s.tick
}

// Field returns the battlefield being simulated
func (s *Simulation) Field() *battlefield.Field {
	return s.field
}

func (s *Simulation) arrived() int {
	n := 0
	for i, u := range s.units {
		if u.Position() == s.targets[i] {
			n++
		}
	}
	return n
}

func (s *Simulation) strandedCount() int {
	n := 0
	for _, st := range s.stranded {
		if st {
			n++
		}
	}
	return n
}
