package battlefield

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/battlefield/core"
)

func TestLoadLayout(t *testing.T) {
	doc := `
name: ridge
rows:
  - "S..#."
  - "S.*.T"
  - ".   X"
`
	f, err := LoadLayout(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 5, f.Width())
	assert.Equal(t, 3, f.Height())
	assert.Equal(t, []core.Point{{X: 0, Y: 0}, {X: 0, Y: 1}}, f.StartPositions())
	assert.Equal(t, []core.Point{{X: 4, Y: 1}, {X: 4, Y: 2}}, f.TargetPositions())
	assert.False(t, f.IsWalkable(core.Point{X: 3, Y: 0}))
	assert.False(t, f.IsWalkable(core.Point{X: 2, Y: 1}))
	assert.True(t, f.IsWalkable(core.Point{X: 2, Y: 2}))
}

func TestLoadLayoutErrors(t *testing.T) {
	_, err := LoadLayout(strings.NewReader("rows:\n  - \"S.?\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 0, column 2")

	_, err = LoadLayout(strings.NewReader("name: empty\nrows: []\n"))
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = LoadLayout(strings.NewReader("rows:\n  - \"S..\"\n  - \"X\"\n"))
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = LoadLayout(strings.NewReader("rows: [unterminated"))
	assert.Error(t, err)
}

func TestSaveLayoutRoundTrip(t *testing.T) {
	tiles := MakeTiles(4, 2)
	tiles[0][0] = core.TileStart
	tiles[0][2] = core.TileElevated
	tiles[1][3] = core.TileTarget
	f, err := New(tiles)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, SaveLayout(&buf, "pass", f))
	assert.Contains(t, buf.String(), "name: pass")
	assert.Contains(t, buf.String(), "S.*.")

	back, err := LoadLayout(&buf)
	require.NoError(t, err)
	assert.Equal(t, f.Grid(), back.Grid())
	assert.Equal(t, f.StartPositions(), back.StartPositions())
	assert.Equal(t, f.TargetPositions(), back.TargetPositions())
}

func TestSaveLayoutFile(t *testing.T) {
	f, err := NewEmpty(3, 3)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "open.yaml")
	require.NoError(t, SaveLayoutFile(path, "open", f))

	back, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, back.Width())
	assert.Equal(t, 3, back.Height())
}
