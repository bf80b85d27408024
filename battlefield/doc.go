// Package battlefield holds the grid model units move across.
//
// A Field is a fixed-size rectangle of tile classifications plus the start and
// target positions discovered while it was built. Fields come from three
// places:
//
//   - LoadTiled: Tiled-style JSON exports (canvas, tile set, first layer ids)
//   - LoadLayout: YAML documents with one glyph per cell
//   - package generator: procedural layouts
//
// A Field is read-only after construction and safe for concurrent queries.
package battlefield
