package battlefield

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/battlefield/core"
)

// ErrInvalidSize rejects grids with non-positive or ragged dimensions
var ErrInvalidSize = errors.New("invalid battlefield grid size")

// Field is the grid model: tile classifications plus discovered starts and targets
type Field struct {
	width, height int
	grid          [][]core.TileType // grid[y][x]
	starts        []core.Point
	targets       []core.Point
}

// New builds a field from row-major tiles, collecting start and target cells
// Rows must be non-empty and of equal length
func New(tiles [][]core.TileType) (*Field, error) {
	height := len(tiles)
	if height == 0 {
		return nil, fmt.Errorf("%w: (0, 0)", ErrInvalidSize)
	}
	width := len(tiles[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: (0, %d)", ErrInvalidSize, height)
	}

	f := &Field{
		width:  width,
		height: height,
		grid:   make([][]core.TileType, height),
	}

	for y, row := range tiles {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidSize, y, len(row), width)
		}
		f.grid[y] = make([]core.TileType, width)
		copy(f.grid[y], row)

		for x, t := range row {
			switch t {
			case core.TileStart:
				f.starts = append(f.starts, core.Point{X: x, Y: y})
			case core.TileTarget:
				f.targets = append(f.targets, core.Point{X: x, Y: y})
			}
		}
	}

	return f, nil
}

// NewEmpty builds an all-walkable field
func NewEmpty(width, height int) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrInvalidSize, width, height)
	}
	return New(MakeTiles(width, height))
}

// MakeTiles allocates a walkable row-major tile grid for builders
func MakeTiles(width, height int) [][]core.TileType {
	tiles := make([][]core.TileType, height)
	for y := range tiles {
		tiles[y] = make([]core.TileType, width)
	}
	return tiles
}

// Width returns the column count
func (f *Field) Width() int { return f.width }

// Height returns the row count
func (f *Field) Height() int { return f.height }

// InBounds reports whether p lies inside [0,width) x [0,height)
func (f *Field) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < f.width && p.Y >= 0 && p.Y < f.height
}

// IsWalkable is false outside the grid and on elevated tiles
func (f *Field) IsWalkable(p core.Point) bool {
	if !f.InBounds(p) {
		return false
	}
	return f.grid[p.Y][p.X].Walkable()
}

// Tile returns the classification at p, false when out of bounds
func (f *Field) Tile(p core.Point) (core.TileType, bool) {
	if !f.InBounds(p) {
		return core.TileWalkable, false
	}
	return f.grid[p.Y][p.X], true
}

// Grid returns a deep copy of the classification grid
func (f *Field) Grid() [][]core.TileType {
	out := make([][]core.TileType, f.height)
	for y, row := range f.grid {
		out[y] = make([]core.TileType, f.width)
		copy(out[y], row)
	}
	return out
}

// StartPositions returns start cells in row-major order
func (f *Field) StartPositions() []core.Point {
	return append([]core.Point(nil), f.starts...)
}

// TargetPositions returns target cells in row-major order
func (f *Field) TargetPositions() []core.Point {
	return append([]core.Point(nil), f.targets...)
}
