package navigation

import "github.com/lixenwraith/battlefield/core"

// Walkable answers terrain queries, out-of-range points must report false
type Walkable interface {
	IsWalkable(p core.Point) bool
}

// OccupancyView is the read-only side of the shared occupancy set
type OccupancyView interface {
	Has(p core.Point) bool
}

// Status distinguishes the three outcomes an empty path conflates
type Status uint8

const (
	StatusFound Status = iota
	StatusAlreadyAtGoal
	StatusUnreachable
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusAlreadyAtGoal:
		return "already at goal"
	case StatusUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// Result contains the outcome of a search
type Result struct {
	Status   Status
	Path     []core.Point // Start excluded, goal included; nil unless Found
	Expanded int          // Points popped and expanded
}

// Found reports whether Path holds a route
func (r Result) Found() bool { return r.Status == StatusFound }

// Pathfinder runs A* over a borrowed grid
// Holds no per-search state; concurrent Search calls are safe while the occupancy view is not mutated
type Pathfinder struct {
	grid Walkable
}

// New creates a pathfinder over grid, which must outlive it
func New(grid Walkable) *Pathfinder {
	return &Pathfinder{grid: grid}
}

// FindPath returns the shortest 4-directional path from start to goal avoiding occupied points
// The goal itself may be occupied. Empty when start == goal or no path exists
func (pf *Pathfinder) FindPath(start, goal core.Point, occupied OccupancyView) []core.Point {
	return pf.Search(start, goal, occupied).Path
}

// Search performs A* with a Manhattan heuristic and uniform step cost
//
// Frontier order is (g+h, h, insertion) so equal-cost alternatives resolve the same way every call.
// Each point is expanded at most once, which bounds the search by the reachable cell count.
func (pf *Pathfinder) Search(start, goal core.Point, occupied OccupancyView) Result {
	if start == goal {
		return Result{Status: StatusAlreadyAtGoal}
	}

	visited := make(map[core.Point]struct{})
	gScore := map[core.Point]int{start: 0}
	cameFrom := make(map[core.Point]core.Point)

	var open frontier
	open.push(start, 0, start.ManhattanDistance(goal))

	expanded := 0
	for open.Len() > 0 {
		current := open.pop()

		if current.pos == goal {
			return Result{
				Status:   StatusFound,
				Path:     reconstructPath(cameFrom, start, goal),
				Expanded: expanded,
			}
		}

		// Stale entry superseded by a cheaper push
		if _, done := visited[current.pos]; done {
			continue
		}
		visited[current.pos] = struct{}{}
		expanded++

		for _, d := range core.Directions {
			next := current.pos.Add(d)
			if !pf.passable(next, goal, occupied) {
				continue
			}
			if _, done := visited[next]; done {
				continue
			}

			tentative := current.g + 1
			if best, seen := gScore[next]; seen && tentative >= best {
				continue
			}
			gScore[next] = tentative
			cameFrom[next] = current.pos
			open.push(next, tentative, next.ManhattanDistance(goal))
		}
	}

	return Result{Status: StatusUnreachable, Expanded: expanded}
}

// passable admits walkable points that are free, or the goal even when claimed
func (pf *Pathfinder) passable(p, goal core.Point, occupied OccupancyView) bool {
	if !pf.grid.IsWalkable(p) {
		return false
	}
	if p == goal || occupied == nil {
		return true
	}
	return !occupied.Has(p)
}

// reconstructPath walks predecessors back from goal and reverses, start excluded
func reconstructPath(cameFrom map[core.Point]core.Point, start, goal core.Point) []core.Point {
	path := []core.Point{goal}
	for current := goal; ; {
		prev, ok := cameFrom[current]
		if !ok || prev == start {
			break
		}
		path = append(path, prev)
		current = prev
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
