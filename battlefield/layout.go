package battlefield

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/battlefield/core"
)

// Layout is the YAML text-art form of a field, one glyph per cell
type Layout struct {
	Name string   `yaml:"name,omitempty"`
	Rows []string `yaml:"rows"`
}

// LoadLayoutFile loads a YAML layout from disk
func LoadLayoutFile(path string) (*Field, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	f, err := LoadLayout(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// LoadLayout decodes a YAML layout document
func LoadLayout(r io.Reader) (*Field, error) {
	var l Layout
	if err := yaml.NewDecoder(r).Decode(&l); err != nil {
		return nil, fmt.Errorf("failed to decode layout: %w", err)
	}
	return l.Field()
}

// Field converts the glyph rows into a validated field
func (l Layout) Field() (*Field, error) {
	if len(l.Rows) == 0 {
		return nil, fmt.Errorf("%w: layout has no rows", ErrInvalidSize)
	}

	tiles := make([][]core.TileType, len(l.Rows))
	for y, row := range l.Rows {
		runes := []rune(row)
		tiles[y] = make([]core.TileType, len(runes))
		for x, r := range runes {
			t, ok := core.ParseTileRune(r)
			if !ok {
				return nil, fmt.Errorf("unknown tile glyph %q at row %d, column %d", r, y, x)
			}
			tiles[y][x] = t
		}
	}

	return New(tiles)
}

// LayoutOf renders a field into its glyph rows
func LayoutOf(name string, f *Field) Layout {
	l := Layout{Name: name, Rows: make([]string, f.height)}
	var sb strings.Builder
	for y, row := range f.grid {
		sb.Reset()
		for _, t := range row {
			sb.WriteRune(t.Rune())
		}
		l.Rows[y] = sb.String()
	}
	return l
}

// SaveLayout writes the field as a YAML layout document
func SaveLayout(w io.Writer, name string, f *Field) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(LayoutOf(name, f)); err != nil {
		return fmt.Errorf("failed to encode layout: %w", err)
	}
	return enc.Close()
}

// SaveLayoutFile writes the field as a YAML layout to path
func SaveLayoutFile(path, name string, f *Field) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := SaveLayout(file, name, f); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
