package core

import "fmt"

// TileType classifies a single battlefield cell
type TileType uint8

const (
	TileWalkable TileType = iota
	TileStart
	TileTarget
	TileElevated // Blocking terrain
)

// Walkable reports whether a unit may stand on the tile
func (t TileType) Walkable() bool {
	return t != TileElevated
}

// Rune returns the layout glyph for the tile
func (t TileType) Rune() rune {
	switch t {
	case TileStart:
		return 'S'
	case TileTarget:
		return 'X'
	case TileElevated:
		return '*'
	default:
		return '.'
	}
}

func (t TileType) String() string {
	switch t {
	case TileWalkable:
		return "walkable"
	case TileStart:
		return "start"
	case TileTarget:
		return "target"
	case TileElevated:
		return "elevated"
	default:
		return fmt.Sprintf("TileType(%d)", uint8(t))
	}
}

// ParseTileRune maps a layout glyph back to its tile type
// Accepts the aliases ' ' (walkable), 'T' (target) and '#' (elevated)
func ParseTileRune(r rune) (TileType, bool) {
	switch r {
	case '.', ' ':
		return TileWalkable, true
	case 'S':
		return TileStart, true
	case 'X', 'T':
		return TileTarget, true
	case '*', '#':
		return TileElevated, true
	}
	return TileWalkable, false
}
