// Package generator builds battlefields procedurally.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/battlefield/battlefield"
	"github.com/lixenwraith/battlefield/core"
)

// ErrCapacity rejects requests that cannot fit the grid
var ErrCapacity = errors.New("battlefield capacity exceeded")

// RandomConfig sizes a uniformly scattered battlefield
type RandomConfig struct {
	Width, Height int
	Units         int
	Terrains      int
	Seed          int64 // Optional (0 = Random)
}

// Random places one target, then elevated terrain, then unit starts, all on distinct cells
func Random(cfg RandomConfig) (*battlefield.Field, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: (%d, %d)", battlefield.ErrInvalidSize, cfg.Width, cfg.Height)
	}
	if cfg.Units < 0 || cfg.Terrains < 0 {
		return nil, fmt.Errorf("unit and terrain counts cannot be negative: (%d, %d)", cfg.Units, cfg.Terrains)
	}

	cells := cfg.Width * cfg.Height
	if cfg.Units >= cells {
		return nil, fmt.Errorf("%w: %d units do not fit %d cells", ErrCapacity, cfg.Units, cells)
	}
	if cfg.Terrains >= cells {
		return nil, fmt.Errorf("%w: %d terrains do not fit %d cells", ErrCapacity, cfg.Terrains, cells)
	}
	// Every unit needs a free walkable cell besides the target
	if cfg.Units+cfg.Terrains+1 > cells {
		return nil, fmt.Errorf("%w: %d units, %d terrains and a target do not fit %d cells",
			ErrCapacity, cfg.Units, cfg.Terrains, cells)
	}

	rng := newRand(cfg.Seed)
	tiles := battlefield.MakeTiles(cfg.Width, cfg.Height)

	// A single permutation hands out distinct cells in placement order
	order := rng.Perm(cells)
	at := func(i int) core.Point {
		return core.Point{X: order[i] % cfg.Width, Y: order[i] / cfg.Width}
	}

	next := 0
	target := at(next)
	tiles[target.Y][target.X] = core.TileTarget
	next++

	for i := 0; i < cfg.Terrains; i++ {
		p := at(next)
		tiles[p.Y][p.X] = core.TileElevated
		next++
	}

	for i := 0; i < cfg.Units; i++ {
		p := at(next)
		tiles[p.Y][p.X] = core.TileStart
		next++
	}

	return battlefield.New(tiles)
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
