package tilegrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkualquiera/leveltool/tilegrid"
)

func TestWindowGetSet(t *testing.T) {
	var w tilegrid.Window

	// The zero window is empty everywhere.
	for dy := -tilegrid.WindowRadius; dy <= tilegrid.WindowRadius; dy++ {
		for dx := -tilegrid.WindowRadius; dx <= tilegrid.WindowRadius; dx++ {
			assert.False(t, w.Get(dx, dy).OK, "(%d,%d)", dx, dy)
		}
	}

	w.Set(0, 0, 5)
	w.Set(-3, 3, 7)
	w.Set(2, -1, 0)

	assert.Equal(t, tilegrid.Value{V: 5, OK: true}, w.Center())
	assert.Equal(t, tilegrid.Value{V: 7, OK: true}, w.Get(-3, 3))

	// A stored 0 is a value, not absence.
	assert.Equal(t, tilegrid.Value{V: 0, OK: true}, w.Get(2, -1))
}

func TestWindowOutOfRange(t *testing.T) {
	var w tilegrid.Window

	// Writes outside [-3,3]^2 are silently discarded; reads come back
	// empty.
	w.Set(4, 0, 9)
	w.Set(0, -4, 9)
	w.Set(-7, 7, 9)

	assert.Equal(t, tilegrid.Value{}, w.Get(4, 0))
	assert.Equal(t, tilegrid.Value{}, w.Get(0, -4))
	w.Each(func(dx, dy int, v tilegrid.Value) {
		assert.False(t, v.OK, "(%d,%d)", dx, dy)
	})
}

func TestWindowRowCol(t *testing.T) {
	var w tilegrid.Window
	for dx := -tilegrid.WindowRadius; dx <= tilegrid.WindowRadius; dx++ {
		w.Set(dx, 1, uint32(dx+10))
	}
	w.Set(2, -3, 40)
	w.Set(2, 3, 41)

	row := w.Row(1)
	for i, v := range row {
		assert.True(t, v.OK)
		assert.Equal(t, uint32(i-tilegrid.WindowRadius+10), v.V)
	}

	col := w.Col(2)
	assert.Equal(t, tilegrid.Value{V: 40, OK: true}, col[0])
	assert.Equal(t, tilegrid.Value{V: 12, OK: true}, col[4])
	assert.Equal(t, tilegrid.Value{V: 41, OK: true}, col[6])
}

func TestWindowEachOrder(t *testing.T) {
	var w tilegrid.Window

	var offsets [][2]int
	w.Each(func(dx, dy int, _ tilegrid.Value) {
		offsets = append(offsets, [2]int{dx, dy})
	})

	assert.Len(t, offsets, tilegrid.WindowSpan*tilegrid.WindowSpan)
	assert.Equal(t, [2]int{-3, -3}, offsets[0])
	assert.Equal(t, [2]int{3, -3}, offsets[6])
	assert.Equal(t, [2]int{-3, -2}, offsets[7])
	assert.Equal(t, [2]int{3, 3}, offsets[48])
}
