// Package render draws simulation frames on a tcell screen or as plain text.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/battlefield/core"
	"github.com/lixenwraith/battlefield/simulation"
)

// TerminalRenderer draws frames into a tcell screen
// Layout: bordered box at (originX, originY), two columns per cell, status line below
type TerminalRenderer struct {
	screen   tcell.Screen
	originX  int
	originY  int
	messageY int // Row under the status line, set by RenderFrame
}

// NewTerminalRenderer creates a renderer drawing at the top-left corner of screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// SetOrigin moves the box's top-left corner
func (r *TerminalRenderer) SetOrigin(x, y int) {
	r.originX = x
	r.originY = y
}

// BoxSize returns the on-screen size of the bordered box for a width x height field
func BoxSize(width, height int) (int, int) {
	return width*2 + 2, height + 2
}

// RenderFrame clears the screen, draws the frame and shows it
func (r *TerminalRenderer) RenderFrame(frame simulation.Frame) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	r.drawBox(frame, defaultStyle)
	r.drawStatus(frame, defaultStyle)

	_, boxH := BoxSize(frame.Field.Width(), frame.Field.Height())
	r.messageY = boxH + 1

	r.screen.Show()
}

func (r *TerminalRenderer) drawBox(frame simulation.Frame, base tcell.Style) {
	f := frame.Field
	w, h := f.Width(), f.Height()
	boxW, boxH := BoxSize(w, h)
	border := base.Foreground(RgbBorder)

	occupied := core.NewOccupancy(frame.Units...)

	// Borders
	for _, y := range []int{0, boxH - 1} {
		r.set(0, y, '+', border)
		for i := 1; i < boxW-1; i++ {
			r.set(i, y, '-', border)
		}
		r.set(boxW-1, y, '+', border)
	}

	// Grid contents
	for y := 0; y < h; y++ {
		r.set(0, y+1, '|', border)
		for x := 0; x < w; x++ {
			p := core.Point{X: x, Y: y}
			tile, _ := f.Tile(p)
			unit := occupied.Has(p)
			style := cellStyle(base, tile, unit)

			screenX := x*2 + 1
			r.set(screenX, y+1, cellGlyph(tile, unit), style)
			r.set(screenX+1, y+1, ' ', style)
		}
		r.set(boxW-1, y+1, '|', border)
	}
}

func (r *TerminalRenderer) drawStatus(frame simulation.Frame, base tcell.Style) {
	_, boxH := BoxSize(frame.Field.Width(), frame.Field.Height())
	style := base.Foreground(RgbStatusBar)
	r.drawText(0, boxH, StatusLine(frame), style)
}

// ShowMessage writes one line under the last rendered status line
func (r *TerminalRenderer) ShowMessage(text string) {
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusBar)
	r.drawText(0, r.messageY, text, style)
	r.screen.Show()
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.set(x+i, y, ch, style)
	}
}

func (r *TerminalRenderer) set(x, y int, ch rune, style tcell.Style) {
	r.screen.SetContent(r.originX+x, r.originY+y, ch, nil, style)
}

// StatusLine summarizes a frame in one line
func StatusLine(frame simulation.Frame) string {
	rep := frame.Report
	return fmt.Sprintf("tick %d | units %d | arrived %d | moved %d | blocked %d | no path %d",
		frame.Tick, len(frame.Units), frame.Arrived, rep.MovedN, rep.Blocked, rep.NoPath)
}
