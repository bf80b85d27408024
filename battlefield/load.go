package battlefield

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for map files with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported battlefield format")

// LoadFile picks a loader by extension: .json is Tiled, .yaml/.yml is a layout
func LoadFile(path string) (*Field, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadTiledFile(path)
	case ".yaml", ".yml":
		return LoadLayoutFile(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// IsMapFile reports whether LoadFile understands the path's extension
func IsMapFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
