package parameter

// Tiled map tile ids, first layer of an exported tile set
const (
	TiledStartID    = 0
	TiledTargetID   = 8
	TiledElevatedID = 3
)

// Default procedural battlefield dimensions
const (
	DefaultFieldWidth  = 20
	DefaultFieldHeight = 12
	DefaultUnitCount   = 5
	DefaultTerrains    = 30

	// DefaultMazeBraiding is the dead-end removal probability for maze layouts
	DefaultMazeBraiding = 0.2
)

// DefaultMapFile is the bundled woodland tile set
const DefaultMapFile = "resources/tile_set_woodland_1.json"
