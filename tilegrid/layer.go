// Package tilegrid implements the tile layer algebra behind the level
// compiler: immutable 2D grids of tile ids, a generalized 7x7 convolution,
// cell-wise combination, and rule-based autotiling over 3x3 adjacency
// patterns.
package tilegrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for layer construction and combination. All of them
// indicate an authoring mistake in a build script, not a runtime condition
// to recover from.
var (
	ErrBadBounds         = errors.New("tilegrid: layer dimensions must be positive")
	ErrDataLength        = errors.New("tilegrid: data length does not match layer size")
	ErrDimensionMismatch = errors.New("tilegrid: layers differ in size")
)

// Layer is a fixed-size 2D grid of tile ids, row-major. Layers are value
// objects: every operation returns a new layer and never mutates its
// receiver, so layers from one pipeline can be combined freely.
type Layer struct {
	width, height int
	cells         []uint32
}

// New returns a w by h layer with every cell 0.
func New(w, h int) (*Layer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadBounds, w, h)
	}
	return &Layer{width: w, height: h, cells: make([]uint32, w*h)}, nil
}

// FromValues returns a w by h layer populated from data in row-major
// order. The data length must be exactly w*h.
func FromValues(w, h int, data []uint32) (*Layer, error) {
	l, err := New(w, h)
	if err != nil {
		return nil, err
	}
	if len(data) != w*h {
		return nil, fmt.Errorf("%w: have %d values, want %d", ErrDataLength, len(data), w*h)
	}
	copy(l.cells, data)
	return l, nil
}

// Width returns the number of columns.
func (l *Layer) Width() int {
	return l.width
}

// Height returns the number of rows.
func (l *Layer) Height() int {
	return l.height
}

// InBounds reports whether (x,y) lies within the layer.
func (l *Layer) InBounds(x, y int) bool {
	return x >= 0 && x < l.width && y >= 0 && y < l.height
}

// At returns the tile id at (x,y). The coordinates must be in bounds.
func (l *Layer) At(x, y int) uint32 {
	return l.cells[y*l.width+x]
}

// Values returns a copy of the raw cells in row-major order, for consumers
// such as collision maps that want the grid without the layer around it.
func (l *Layer) Values() []uint32 {
	out := make([]uint32, len(l.cells))
	copy(out, l.cells)
	return out
}

// derived returns a zeroed layer of the same size.
func (l *Layer) derived() *Layer {
	return &Layer{width: l.width, height: l.height, cells: make([]uint32, len(l.cells))}
}

// ValueWhere returns a layer holding v where pred accepts the source cell
// and 0 elsewhere.
func (l *Layer) ValueWhere(pred func(uint32) bool, v uint32) *Layer {
	out := l.derived()
	for i, c := range l.cells {
		if pred(c) {
			out.cells[i] = v
		}
	}
	return out
}

// OneWhere is the binary-mask form of ValueWhere: 1 where pred accepts the
// cell, 0 elsewhere.
func (l *Layer) OneWhere(pred func(uint32) bool) *Layer {
	return l.ValueWhere(pred, 1)
}

// Convolve applies f to the 7x7 window around every cell and collects the
// results into a new layer. Window positions outside the layer are left
// empty; f decides what absence means. f must be a pure function of the
// window contents.
func (l *Layer) Convolve(f func(*Window) uint32) *Layer {
	out := l.derived()
	for y := 0; y < l.height; y++ {
		for x := 0; x < l.width; x++ {
			var w Window
			for dy := -WindowRadius; dy <= WindowRadius; dy++ {
				for dx := -WindowRadius; dx <= WindowRadius; dx++ {
					if l.InBounds(x+dx, y+dy) {
						w.Set(dx, dy, l.At(x+dx, y+dy))
					}
				}
			}
			out.cells[y*l.width+x] = f(&w)
		}
	}
	return out
}

// ZipWith combines two layers cell-wise through f. The layers must agree
// in size; mismatches fail rather than truncate or pad.
func (l *Layer) ZipWith(other *Layer, f func(a, b uint32) uint32) (*Layer, error) {
	if l.width != other.width || l.height != other.height {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrDimensionMismatch, l.width, l.height, other.width, other.height)
	}
	out := l.derived()
	for i := range l.cells {
		out.cells[i] = f(l.cells[i], other.cells[i])
	}
	return out, nil
}
