package tilegrid

// WindowRadius bounds the relative offsets a Window can address;
// WindowSpan is the full width of the window in cells.
const (
	WindowRadius = 3
	WindowSpan   = 2*WindowRadius + 1
)

// Value is an optional cell value. OK is false for positions the source
// layer had nothing to offer, typically because they fall outside its
// bounds. Absence is distinct from a value of 0 so that every consumer can
// apply its own padding policy.
type Value struct {
	V  uint32
	OK bool
}

// Window is a snapshot of the surroundings of one layer cell, addressed by
// relative offsets in [-3,3] on both axes. The zero Window has every
// position empty.
type Window struct {
	cells [WindowSpan * WindowSpan]Value
}

func windowIndex(dx, dy int) (int, bool) {
	if dx < -WindowRadius || dx > WindowRadius || dy < -WindowRadius || dy > WindowRadius {
		return 0, false
	}
	return (dy+WindowRadius)*WindowSpan + dx + WindowRadius, true
}

// Get returns the value at offset (dx,dy) from the window's center.
// Offsets outside [-3,3]^2 read as empty.
func (w *Window) Get(dx, dy int) Value {
	i, ok := windowIndex(dx, dy)
	if !ok {
		return Value{}
	}
	return w.cells[i]
}

// Set stores a value at offset (dx,dy). Writes outside [-3,3]^2 are
// silently discarded.
func (w *Window) Set(dx, dy int, v uint32) {
	if i, ok := windowIndex(dx, dy); ok {
		w.cells[i] = Value{V: v, OK: true}
	}
}

// Center returns the value the window was built around, Get(0,0).
func (w *Window) Center() Value {
	return w.Get(0, 0)
}

// Row returns the 7 values at vertical offset dy, ordered left to right.
func (w *Window) Row(dy int) [WindowSpan]Value {
	var row [WindowSpan]Value
	for i := range row {
		row[i] = w.Get(i-WindowRadius, dy)
	}
	return row
}

// Col returns the 7 values at horizontal offset dx, ordered top to bottom.
func (w *Window) Col(dx int) [WindowSpan]Value {
	var col [WindowSpan]Value
	for i := range col {
		col[i] = w.Get(dx, i-WindowRadius)
	}
	return col
}

// Each calls fn for all 49 positions in row-major order, top-left first.
func (w *Window) Each(fn func(dx, dy int, v Value)) {
	for dy := -WindowRadius; dy <= WindowRadius; dy++ {
		for dx := -WindowRadius; dx <= WindowRadius; dx++ {
			fn(dx, dy, w.Get(dx, dy))
		}
	}
}
