package battlefield

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lixenwraith/battlefield/core"
	"github.com/lixenwraith/battlefield/parameter"
)

// tiledMap mirrors the subset of a Tiled JSON export the loader reads
type tiledMap struct {
	Canvas *struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"canvas"`
	Tilesets []struct {
		TileWidth  int `json:"tilewidth"`
		TileHeight int `json:"tileheight"`
	} `json:"tilesets"`
	Layers []struct {
		Data []int `json:"data"`
	} `json:"layers"`
}

// LoadTiledFile loads a Tiled JSON export from disk
func LoadTiledFile(path string) (*Field, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	f, err := LoadTiled(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// LoadTiled decodes a Tiled JSON export
// Grid size is canvas size divided by tile size; the first layer carries tile ids
func LoadTiled(r io.Reader) (*Field, error) {
	var m tiledMap
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode tiled map: %w", err)
	}

	canvasW, canvasH := 0, 0
	if m.Canvas != nil {
		canvasW, canvasH = m.Canvas.Width, m.Canvas.Height
	}
	if canvasW <= 0 || canvasH <= 0 {
		return nil, fmt.Errorf("%w: invalid canvas size: (%d, %d)", ErrInvalidSize, canvasW, canvasH)
	}

	tileW, tileH := 0, 0
	if len(m.Tilesets) > 0 {
		tileW, tileH = m.Tilesets[0].TileWidth, m.Tilesets[0].TileHeight
	}
	if tileW <= 0 || tileH <= 0 {
		return nil, fmt.Errorf("%w: invalid tile size: (%d, %d)", ErrInvalidSize, tileW, tileH)
	}

	width := canvasW / tileW
	height := canvasH / tileH
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: canvas (%d, %d) smaller than tile (%d, %d)",
			ErrInvalidSize, canvasW, canvasH, tileW, tileH)
	}

	if len(m.Layers) == 0 {
		return nil, errors.New("tiled map has no layers")
	}
	data := m.Layers[0].Data
	if len(data) != width*height {
		return nil, fmt.Errorf("layer data has %d tiles, expected %d (%dx%d)", len(data), width*height, width, height)
	}

	tiles := MakeTiles(width, height)
	for i, id := range data {
		tiles[i/width][i%width] = tiledTileType(id)
	}

	return New(tiles)
}

func tiledTileType(id int) core.TileType {
	switch id {
	case parameter.TiledStartID:
		return core.TileStart
	case parameter.TiledTargetID:
		return core.TileTarget
	case parameter.TiledElevatedID:
		return core.TileElevated
	default:
		return core.TileWalkable
	}
}
