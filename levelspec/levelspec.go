/*
Package levelspec compiles color-coded layout images into tile layers.

Every pixel of a layout image names a tile category by its exact RGB color.
A Spec pairs such a layout with a registration table from colors to tile
sheet positions; compiling it produces the sheet with dense ids allocated
in registration order and a layer holding one id per pixel. Compilation
fails loudly on the first problem it finds, since the inputs are
hand-authored assets and a silently broken level is worse than no level.
*/
package levelspec

import (
	"errors"
	"fmt"
	"image"

	"github.com/mkualquiera/leveltool/sheet"
	"github.com/mkualquiera/leveltool/tilegrid"
)

// Sentinel errors for registration and compilation.
var (
	ErrDuplicateColor    = errors.New("levelspec: color already registered")
	ErrDuplicatePosition = errors.New("levelspec: tile position already registered to another color")
	ErrUnregisteredColor = errors.New("levelspec: color not registered in color map")
	ErrUnusedColor       = errors.New("levelspec: registered color never used in the layout")
)

// Color is an exact RGB key into the registration table. Alpha is ignored
// when reading the layout.
type Color struct {
	R, G, B uint8
}

func (c Color) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

type entry struct {
	color Color
	pos   sheet.Pos
}

// Spec accumulates the inputs of one level compilation.
type Spec struct {
	layout       image.Image
	tileset      image.Image
	tileW, tileH int
	entries      []entry
}

// New pairs a layout image with its tile sheet image. tileW and tileH give
// the pixel size of one sheet cell.
func New(layout, tileset image.Image, tileW, tileH int) *Spec {
	return &Spec{
		layout:  layout,
		tileset: tileset,
		tileW:   tileW,
		tileH:   tileH,
	}
}

// Register binds a layout color to a tile sheet position. Colors and
// positions must both be unique across the spec.
func (s *Spec) Register(c Color, p sheet.Pos) error {
	for _, e := range s.entries {
		if e.color == c {
			return fmt.Errorf("%w: %v", ErrDuplicateColor, c)
		}
		if e.pos == p {
			return fmt.Errorf("%w: (%d, %d)", ErrDuplicatePosition, p.Col, p.Row)
		}
	}
	s.entries = append(s.entries, entry{color: c, pos: p})
	return nil
}

type options struct {
	allowUnused bool
}

// Option adjusts compilation behavior.
type Option func(*options)

// WithAllowUnusedColors skips the check that every registered color
// appears in the layout. Shared palettes covering many levels register
// colors any single level has no use for.
func WithAllowUnusedColors() Option {
	return func(o *options) {
		o.allowUnused = true
	}
}

// Compile walks the layout pixel by pixel, resolving every color through
// the registration table into a dense tile id. Tile ids follow the
// registration order of the color table, not the pixel order of the
// layout. The first unregistered color fails compilation, identifying the
// color and its pixel coordinate.
func (s *Spec) Compile(opts ...Option) (*sheet.Sheet, *tilegrid.Layer, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	sh, err := sheet.NewWithTileSize(s.tileset, s.tileW, s.tileH)
	if err != nil {
		return nil, nil, err
	}

	byColor := make(map[Color]sheet.Pos, len(s.entries))
	for _, e := range s.entries {
		byColor[e.color] = e.pos
		if _, err := sh.Allocate(e.pos); err != nil {
			return nil, nil, err
		}
	}

	b := s.layout.Bounds()
	w, h := b.Dx(), b.Dy()
	cells := make([]uint32, 0, w*h)
	used := make(map[Color]struct{})

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := s.layout.At(b.Min.X+x, b.Min.Y+y).RGBA()
			c := Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8)}

			pos, ok := byColor[c]
			if !ok {
				return nil, nil, fmt.Errorf("%w: %v at (%d, %d)", ErrUnregisteredColor, c, x, y)
			}
			id, err := sh.Allocate(pos)
			if err != nil {
				return nil, nil, err
			}
			cells = append(cells, id)
			used[c] = struct{}{}
		}
	}

	if !o.allowUnused {
		for _, e := range s.entries {
			if _, ok := used[e.color]; !ok {
				return nil, nil, fmt.Errorf("%w: %v", ErrUnusedColor, e.color)
			}
		}
	}
	// Unreachable through the per-pixel lookup above; kept as a guard for
	// the invariant rather than the code path.
	for c := range used {
		if _, ok := byColor[c]; !ok {
			return nil, nil, fmt.Errorf("%w: %v", ErrUnregisteredColor, c)
		}
	}

	layer, err := tilegrid.FromValues(w, h, cells)
	if err != nil {
		return nil, nil, err
	}
	return sh, layer, nil
}
