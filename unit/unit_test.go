package unit

import (
	"testing"

	"github.com/lixenwraith/battlefield/battlefield"
	"github.com/lixenwraith/battlefield/core"
	"github.com/lixenwraith/battlefield/navigation"
)

func newPathfinder(t *testing.T, width, height int) *navigation.Pathfinder {
	t.Helper()
	f, err := battlefield.NewEmpty(width, height)
	if err != nil {
		t.Fatalf("NewEmpty failed: %v", err)
	}
	return navigation.New(f)
}

func TestMoveAtTarget(t *testing.T) {
	pf := newPathfinder(t, 3, 3)
	start := core.Point{X: 1, Y: 1}
	u := New(start, pf)
	occ := core.NewOccupancy(start)

	if got := u.Move(start, occ); got != AtTarget {
		t.Errorf("Expected %v, got %v", AtTarget, got)
	}
	if u.Position() != start || occ.Len() != 1 || !occ.Has(start) {
		t.Error("Expected AtTarget to leave state untouched")
	}
	if u.HasPath() {
		t.Error("Expected no path to be planned when already at target")
	}
}

func TestMoveNoPath(t *testing.T) {
	pf := newPathfinder(t, 5, 5)
	start := core.Point{X: 0, Y: 0}
	target := core.Point{X: 4, Y: 4}
	occ := core.NewOccupancy(start, core.Point{X: 3, Y: 4}, core.Point{X: 4, Y: 3})
	u := New(start, pf)

	if got := u.Move(target, occ); got != NoPath {
		t.Errorf("Expected %v, got %v", NoPath, got)
	}
	if u.Position() != start {
		t.Errorf("Expected unit to stay at %v, got %v", start, u.Position())
	}
	if occ.Len() != 3 || !occ.Has(start) {
		t.Error("Expected NoPath to leave occupancy untouched")
	}

	// Contender leaves, next call succeeds
	occ.Remove(core.Point{X: 3, Y: 4})
	if got := u.Move(target, occ); got != Moved {
		t.Errorf("Expected %v after the wall opened, got %v", Moved, got)
	}
}

func TestMoveClaimsAndReleases(t *testing.T) {
	pf := newPathfinder(t, 4, 1)
	start := core.Point{X: 0, Y: 0}
	target := core.Point{X: 3, Y: 0}
	occ := core.NewOccupancy(start)
	u := New(start, pf)

	for step := 1; step <= 3; step++ {
		if got := u.Move(target, occ); got != Moved {
			t.Fatalf("Step %d: expected %v, got %v", step, Moved, got)
		}
		want := core.Point{X: step, Y: 0}
		if u.Position() != want {
			t.Errorf("Step %d: expected position %v, got %v", step, want, u.Position())
		}
		if occ.Len() != 1 || !occ.Has(want) {
			t.Errorf("Step %d: expected occupancy {%v}, got %v", step, want, occ.Points())
		}
	}

	if got := u.Move(target, occ); got != AtTarget {
		t.Errorf("Expected %v, got %v", AtTarget, got)
	}
}

func TestMoveBlockedThenReplans(t *testing.T) {
	pf := newPathfinder(t, 5, 5)
	start := core.Point{X: 0, Y: 0}
	target := core.Point{X: 2, Y: 2}
	occ := core.NewOccupancy(start)
	u := New(start, pf)

	if got := u.Move(target, occ); got != Moved {
		t.Fatalf("Expected first move, got %v", got)
	}
	afterFirst := u.Position()

	remaining := u.Path()
	if len(remaining) == 0 {
		t.Fatal("Expected a cached path after the first move")
	}
	blocker := remaining[0]
	occ.Add(blocker)

	if got := u.Move(target, occ); got != Blocked {
		t.Fatalf("Expected %v, got %v", Blocked, got)
	}
	if u.HasPath() {
		t.Error("Expected Blocked to clear the cached path")
	}
	if u.Position() != afterFirst {
		t.Errorf("Expected no movement on Blocked, got %v", u.Position())
	}

	ticks := 0
	for {
		got := u.Move(target, occ)
		if got == AtTarget {
			break
		}
		if got != Moved {
			t.Fatalf("Tick %d: expected %v, got %v", ticks, Moved, got)
		}
		if u.Position() == blocker {
			t.Fatalf("Unit stepped onto occupied %v", blocker)
		}
		ticks++
		if ticks > 10 {
			t.Fatal("Unit did not reach target")
		}
	}

	if u.Position() != target {
		t.Errorf("Expected unit at %v, got %v", target, u.Position())
	}
	// Detour around the blocker costs two extra steps at most
	if ticks > afterFirst.ManhattanDistance(target)+2 {
		t.Errorf("Expected a short detour, took %d ticks", ticks)
	}
}

func TestMoveNeverEntersOccupiedGoal(t *testing.T) {
	pf := newPathfinder(t, 3, 1)
	start := core.Point{X: 0, Y: 0}
	target := core.Point{X: 2, Y: 0}
	occ := core.NewOccupancy(start, target)
	u := New(start, pf)

	if got := u.Move(target, occ); got != Moved {
		t.Fatalf("Expected approach move, got %v", got)
	}
	for i := 0; i < 3; i++ {
		if got := u.Move(target, occ); got != Blocked {
			t.Errorf("Attempt %d: expected %v, got %v", i, Blocked, got)
		}
	}
	if u.Position() != (core.Point{X: 1, Y: 0}) {
		t.Errorf("Expected unit to wait next to the goal, got %v", u.Position())
	}
}

func TestMoveTargetChangeReplans(t *testing.T) {
	pf := newPathfinder(t, 5, 5)
	start := core.Point{X: 2, Y: 2}
	occ := core.NewOccupancy(start)
	u := New(start, pf)

	east := core.Point{X: 4, Y: 2}
	if got := u.Move(east, occ); got != Moved {
		t.Fatalf("Expected move east, got %v", got)
	}

	west := core.Point{X: 0, Y: 2}
	if got := u.Move(west, occ); got != Moved {
		t.Fatalf("Expected move west, got %v", got)
	}
	if u.Position() != start {
		t.Errorf("Expected unit back at %v after re-targeting, got %v", start, u.Position())
	}
	path := u.Path()
	if len(path) == 0 || path[len(path)-1] != west {
		t.Errorf("Expected cached path toward %v, got %v", west, path)
	}
}

func TestMoveExhaustedPathFallback(t *testing.T) {
	pf := newPathfinder(t, 3, 3)
	target := core.Point{X: 2, Y: 2}
	u := New(core.Point{X: 0, Y: 0}, pf)
	u.path = []core.Point{{X: 1, Y: 0}}
	u.cursor = 1
	u.goal = target

	occ := core.NewOccupancy(u.Position())
	if got := u.Move(target, occ); got != AtTarget {
		t.Errorf("Expected %v fallback, got %v", AtTarget, got)
	}
	if u.Position() != (core.Point{X: 0, Y: 0}) {
		t.Error("Expected fallback to leave the unit in place")
	}
}

func TestPlanReadOnly(t *testing.T) {
	pf := newPathfinder(t, 4, 4)
	start := core.Point{X: 0, Y: 0}
	target := core.Point{X: 3, Y: 3}
	occ := core.NewOccupancy(start, core.Point{X: 1, Y: 1})
	u := New(start, pf)

	if !u.Plan(target, occ) {
		t.Fatal("Expected Plan to find a path")
	}
	if u.Position() != start {
		t.Error("Expected Plan not to move the unit")
	}
	if occ.Len() != 2 {
		t.Errorf("Expected Plan not to touch occupancy, got %v", occ.Points())
	}
	if len(u.Path()) != 6 {
		t.Errorf("Expected 6-step path, got %v", u.Path())
	}

	if u.Plan(start, occ) {
		t.Error("Expected Plan toward own position to report no path")
	}
}

func TestMoveStatusString(t *testing.T) {
	tests := map[MoveStatus]string{
		AtTarget:       "at target",
		NoPath:         "no path",
		Blocked:        "blocked",
		Moved:          "moved",
		MoveStatus(42): "unknown",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("Expected %q, got %q", want, s.String())
		}
	}
}
