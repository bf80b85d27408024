package generator

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/lixenwraith/battlefield/battlefield"
	"github.com/lixenwraith/battlefield/core"
)

// Cell types
const (
	wall    = true
	passage = false
)

// MazeConfig sizes a maze battlefield
type MazeConfig struct {
	Width, Height int

	// Braiding: 0.0 (Perfect Maze/Tree) to 1.0 (No dead ends/Graph).
	// Higher values add cycles. Constraints (No Plazas/Pillars) take precedence.
	Braiding float64

	Units int
	Seed  int64 // Optional (0 = Random)
}

// Maze carves a braided maze, walls become elevated tiles
// The target sits in the bottom-right room, starts fill the passages closest to the top-left room
func Maze(cfg MazeConfig) (*battlefield.Field, error) {
	if cfg.Width < 3 || cfg.Height < 3 {
		return nil, fmt.Errorf("%w: (%d, %d), maze needs at least 3x3", battlefield.ErrInvalidSize, cfg.Width, cfg.Height)
	}
	if cfg.Units < 0 {
		return nil, fmt.Errorf("unit count cannot be negative: %d", cfg.Units)
	}

	// 1. Carve on the largest odd sub-grid, leftover row/column stays wall
	rows := ensureOdd(cfg.Height)
	cols := ensureOdd(cfg.Width)

	grid := make([][]bool, cfg.Height)
	for i := range grid {
		grid[i] = make([]bool, cfg.Width)
		for j := range grid[i] {
			grid[i][j] = wall
		}
	}

	rng := newRand(cfg.Seed)
	start := core.Point{X: 1, Y: 1}
	end := core.Point{X: cols - 2, Y: rows - 2}

	// 2. Recursive backtracker yields a spanning tree over the rooms
	recursiveBacktracker(grid, rows, cols, start, rng)

	// 3. Braiding introduces cycles while preventing plazas and pillars
	if cfg.Braiding > 0 {
		applySmartBraiding(grid, rows, cols, cfg.Braiding, rng)
	}

	// 4. Pick unit starts, nearest passages to the top-left room first
	candidates := passagesByDistance(grid, start, end)
	if cfg.Units > len(candidates) {
		return nil, fmt.Errorf("%w: %d units do not fit %d passage cells", ErrCapacity, cfg.Units, len(candidates))
	}

	tiles := battlefield.MakeTiles(cfg.Width, cfg.Height)
	for y := range grid {
		for x := range grid[y] {
			if grid[y][x] == wall {
				tiles[y][x] = core.TileElevated
			}
		}
	}
	tiles[end.Y][end.X] = core.TileTarget
	for _, p := range candidates[:cfg.Units] {
		tiles[p.Y][p.X] = core.TileStart
	}

	return battlefield.New(tiles)
}

// --- Core Algorithms ---

func recursiveBacktracker(grid [][]bool, rows, cols int, start core.Point, rng *rand.Rand) {
	stack := []core.Point{start}
	grid[start.Y][start.X] = passage

	jumps := []core.Point{{X: 0, Y: -2}, {X: 0, Y: 2}, {X: -2, Y: 0}, {X: 2, Y: 0}}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates := make([]core.Point, 0, 4)

		for _, d := range jumps {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			// Leave 1 cell border for walls
			if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 && grid[ny][nx] == wall {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		grid[curr.Y+d.Y/2][curr.X+d.X/2] = passage
		next := core.Point{X: curr.X + d.X, Y: curr.Y + d.Y}
		grid[next.Y][next.X] = passage
		stack = append(stack, next)
	}
}

func applySmartBraiding(grid [][]bool, rows, cols int, probability float64, rng *rand.Rand) {
	// Iterate over odd nodes (rooms)
	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			if grid[y][x] == wall {
				continue
			}

			// A dead end has exactly 1 passage neighbor
			exits := 0
			for _, d := range core.Directions {
				if grid[y+d.Y][x+d.X] == passage {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			candidates := make([]core.Point, 0, 4)
			for _, d := range core.Directions {
				nx, ny := x+2*d.X, y+2*d.Y // Neighbor room
				wx, wy := x+d.X, y+d.Y     // Intervening wall
				if nx <= 0 || nx >= cols-1 || ny <= 0 || ny >= rows-1 {
					continue
				}
				if grid[ny][nx] == passage && grid[wy][wx] == wall && canSafelyRemoveWall(grid, wx, wy) {
					candidates = append(candidates, core.Point{X: wx, Y: wy})
				}
			}

			if len(candidates) > 0 {
				c := candidates[rng.Intn(len(candidates))]
				grid[c.Y][c.X] = passage
			}
		}
	}
}

// canSafelyRemoveWall rejects removals that open a 2x2 plaza or isolate a neighboring wall
func canSafelyRemoveWall(grid [][]bool, x, y int) bool {
	rows, cols := len(grid), len(grid[0])

	isP := func(tx, ty int) bool {
		if tx < 0 || tx >= cols || ty < 0 || ty >= rows {
			return false
		}
		return grid[ty][tx] == passage
	}

	// --- No Plazas ---
	if isP(x-1, y-1) && isP(x, y-1) && isP(x-1, y) {
		return false
	}
	if isP(x, y-1) && isP(x+1, y-1) && isP(x+1, y) {
		return false
	}
	if isP(x-1, y) && isP(x-1, y+1) && isP(x, y+1) {
		return false
	}
	if isP(x+1, y) && isP(x, y+1) && isP(x+1, y+1) {
		return false
	}

	// --- No Pillars ---
	for _, d := range core.Directions {
		nx, ny := x+d.X, y+d.Y
		if nx < 0 || nx >= cols || ny < 0 || ny >= rows || grid[ny][nx] == passage {
			continue
		}

		// (x,y) counts as passage already
		wallConnections := 0
		for _, d2 := range core.Directions {
			nnx, nny := nx+d2.X, ny+d2.Y
			if nnx == x && nny == y {
				continue
			}
			if nnx >= 0 && nnx < cols && nny >= 0 && nny < rows && grid[nny][nnx] == wall {
				wallConnections++
			}
		}
		if wallConnections == 0 {
			return false
		}
	}

	return true
}

// --- Helpers ---

func ensureOdd(n int) int {
	if n%2 == 0 {
		return n - 1
	}
	return n
}

// passagesByDistance lists passage cells except exclude, ordered by Manhattan distance to from, then row-major
func passagesByDistance(grid [][]bool, from, exclude core.Point) []core.Point {
	var out []core.Point
	for y := range grid {
		for x := range grid[y] {
			p := core.Point{X: x, Y: y}
			if grid[y][x] == passage && p != exclude {
				out = append(out, p)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ManhattanDistance(from) < out[j].ManhattanDistance(from)
	})
	return out
}
