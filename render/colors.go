package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/battlefield/core"
)

// RGB color definitions for battlefield glyphs
var (
	RgbUnit       = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
	RgbTarget     = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbElevated   = tcell.NewRGBColor(50, 255, 50)   // Bright Green
	RgbStart      = tcell.NewRGBColor(130, 130, 0)   // Dim olive, start tiles stay visible after units leave
	RgbBorder     = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
)

// Glyphs drawn inside the box
const (
	GlyphUnit     = 'U'
	GlyphTarget   = 'X'
	GlyphElevated = '*'
	GlyphEmpty    = ' '
)

// cellGlyph resolves what a cell shows, units drawn over terrain
func cellGlyph(tile core.TileType, occupied bool) rune {
	if occupied {
		return GlyphUnit
	}
	switch tile {
	case core.TileTarget:
		return GlyphTarget
	case core.TileElevated:
		return GlyphElevated
	default:
		return GlyphEmpty
	}
}

// cellStyle returns the style for a cell on top of base
func cellStyle(base tcell.Style, tile core.TileType, occupied bool) tcell.Style {
	if occupied {
		return base.Foreground(RgbUnit).Bold(true)
	}
	switch tile {
	case core.TileTarget:
		return base.Foreground(RgbTarget).Bold(true)
	case core.TileElevated:
		return base.Foreground(RgbElevated)
	case core.TileStart:
		return base.Background(RgbStart).Dim(true)
	default:
		return base
	}
}
