package sheet_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkualquiera/leveltool/sheet"
)

// testImage paints each 4x4 cell of a cols x rows sheet a distinct shade
// so tests can tell cells apart by their pixels.
func testImage(cols, rows int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cols*4, rows*4))
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := color.RGBA{R: uint8(col * 16), G: uint8(row * 16), B: 0, A: 255}
			for y := row * 4; y < (row+1)*4; y++ {
				for x := col * 4; x < (col+1)*4; x++ {
					img.SetRGBA(x, y, c)
				}
			}
		}
	}
	return img
}

func TestNewErrors(t *testing.T) {
	img := testImage(2, 2)

	_, err := sheet.New(img, 0, 2)
	assert.ErrorIs(t, err, sheet.ErrBadGrid)

	_, err = sheet.NewWithTileSize(img, 4, 0)
	assert.ErrorIs(t, err, sheet.ErrBadGrid)
}

func TestNewWithTileSize(t *testing.T) {
	s, err := sheet.NewWithTileSize(testImage(3, 2), 4, 4)
	require.NoError(t, err)

	cols, rows := s.Grid()
	assert.Equal(t, 3, cols)
	assert.Equal(t, 2, rows)

	tw, th := s.TileSize()
	assert.Equal(t, 4, tw)
	assert.Equal(t, 4, th)
}

func TestRegister(t *testing.T) {
	s, err := sheet.New(testImage(2, 2), 2, 2)
	require.NoError(t, err)

	require.NoError(t, s.Register(3, sheet.Pos{Col: 1, Row: 0}))

	err = s.Register(3, sheet.Pos{Col: 0, Row: 0})
	assert.ErrorIs(t, err, sheet.ErrDuplicateID)

	err = s.Register(4, sheet.Pos{Col: 1, Row: 0})
	assert.ErrorIs(t, err, sheet.ErrDuplicatePosition)

	err = s.Register(5, sheet.Pos{Col: 2, Row: 0})
	assert.ErrorIs(t, err, sheet.ErrPositionRange)
}

func TestAllocateDense(t *testing.T) {
	s, err := sheet.New(testImage(3, 3), 3, 3)
	require.NoError(t, err)

	// Ids are handed out densely in first-registration order.
	positions := []sheet.Pos{
		{Col: 2, Row: 1},
		{Col: 0, Row: 0},
		{Col: 1, Row: 2},
	}
	for i, p := range positions {
		id, err := s.Allocate(p)
		require.NoError(t, err)
		assert.Equal(t, uint32(i), id)
	}

	// Re-allocating returns the existing id.
	id, err := s.Allocate(positions[0])
	require.NoError(t, err)
	assert.Equal(t, uint32(0), id)
	assert.Equal(t, 3, s.Len())

	_, err = s.Allocate(sheet.Pos{Col: 3, Row: 0})
	assert.ErrorIs(t, err, sheet.ErrPositionRange)
}

func TestAllocateSkipsRegisteredIDs(t *testing.T) {
	s, err := sheet.New(testImage(2, 2), 2, 2)
	require.NoError(t, err)

	require.NoError(t, s.Register(1, sheet.Pos{Col: 1, Row: 1}))

	a, err := s.Allocate(sheet.Pos{Col: 0, Row: 0})
	require.NoError(t, err)
	b, err := s.Allocate(sheet.Pos{Col: 1, Row: 0})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, uint32(1), a)
	assert.NotEqual(t, uint32(1), b)
}

func TestTile(t *testing.T) {
	s, err := sheet.New(testImage(3, 2), 3, 2)
	require.NoError(t, err)

	id, err := s.Allocate(sheet.Pos{Col: 2, Row: 1})
	require.NoError(t, err)

	tile, ok := s.Tile(id)
	require.True(t, ok)

	b := tile.Bounds()
	assert.Equal(t, 4, b.Dx())
	assert.Equal(t, 4, b.Dy())

	// The view shows the cell's own pixels.
	want := color.RGBA{R: 32, G: 16, B: 0, A: 255}
	assert.Equal(t, want, tile.At(b.Min.X, b.Min.Y))

	_, ok = s.Tile(99)
	assert.False(t, ok)
}

func TestCanonical(t *testing.T) {
	s, err := sheet.New(testImage(4, 4), 4, 4)
	require.NoError(t, err)

	region := image.Rect(1, 1, 3, 3)
	air := sheet.Pos{Col: 0, Row: 0}

	c, err := s.Canonical(region, air)
	require.NoError(t, err)

	// Air is id 0, region cells follow row-major from 1.
	p, ok := c.Lookup(0)
	require.True(t, ok)
	assert.Equal(t, air, p)

	wantOrder := []sheet.Pos{
		{Col: 1, Row: 1}, {Col: 2, Row: 1},
		{Col: 1, Row: 2}, {Col: 2, Row: 2},
	}
	for i, want := range wantOrder {
		p, ok := c.Lookup(uint32(i + 1))
		require.True(t, ok, "id %d", i+1)
		assert.Equal(t, want, p, "id %d", i+1)
	}
	assert.Equal(t, 5, c.Len())
}

func TestCanonicalErrors(t *testing.T) {
	s, err := sheet.New(testImage(4, 4), 4, 4)
	require.NoError(t, err)

	_, err = s.Canonical(image.Rect(0, 0, 5, 2), sheet.Pos{Col: 0, Row: 3})
	assert.ErrorIs(t, err, sheet.ErrRegionRange)

	_, err = s.Canonical(image.Rect(2, 2, 2, 2), sheet.Pos{Col: 0, Row: 0})
	assert.ErrorIs(t, err, sheet.ErrRegionRange)

	_, err = s.Canonical(image.Rect(0, 0, 2, 2), sheet.Pos{Col: 4, Row: 0})
	assert.ErrorIs(t, err, sheet.ErrPositionRange)

	_, err = s.Canonical(image.Rect(0, 0, 2, 2), sheet.Pos{Col: 1, Row: 1})
	assert.ErrorIs(t, err, sheet.ErrDuplicatePosition)
}
