package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/lixenwraith/battlefield/core"
	"github.com/lixenwraith/battlefield/simulation"
)

// WriteText writes the same bordered box as the terminal renderer in plain ASCII
func WriteText(w io.Writer, frame simulation.Frame) error {
	bw := bufio.NewWriter(w)
	f := frame.Field
	width, height := f.Width(), f.Height()
	occupied := core.NewOccupancy(frame.Units...)

	border := "+" + strings.Repeat("-", width*2) + "+\n"
	bw.WriteString(border)
	for y := 0; y < height; y++ {
		bw.WriteByte('|')
		for x := 0; x < width; x++ {
			p := core.Point{X: x, Y: y}
			tile, _ := f.Tile(p)
			bw.WriteRune(cellGlyph(tile, occupied.Has(p)))
			bw.WriteByte(' ')
		}
		bw.WriteString("|\n")
	}
	bw.WriteString(border)
	bw.WriteString(StatusLine(frame))
	bw.WriteByte('\n')

	return bw.Flush()
}

// Text returns WriteText output as a string
func Text(frame simulation.Frame) string {
	var sb strings.Builder
	_ = WriteText(&sb, frame)
	return sb.String()
}
