/*
Package sheet maps dense tile ids onto the cells of a tile sheet image.

A sheet divides an RGBA image into a fixed grid of equal-size cells and
keeps a bidirectional mapping between unsigned tile ids and cell positions.
The mapping is always consistent: no two ids share a position and no two
positions share an id.
*/
package sheet

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
)

// Sentinel errors for sheet construction and registration. They indicate
// asset-authoring mistakes and are never retried.
var (
	ErrBadGrid           = errors.New("sheet: tile grid must have positive dimensions")
	ErrDuplicateID       = errors.New("sheet: tile id already registered")
	ErrDuplicatePosition = errors.New("sheet: position already registered to another tile id")
	ErrPositionRange     = errors.New("sheet: position outside the tile grid")
	ErrRegionRange       = errors.New("sheet: region outside the tile grid")
)

// Pos addresses one cell of a sheet by column and row, both starting at 0.
type Pos struct {
	Col, Row int
}

// Sheet is an id-to-cell mapping over a tile sheet image. The zero value
// is not usable; construct with New or NewWithTileSize.
type Sheet struct {
	img        *image.RGBA
	cols, rows int
	byID       map[uint32]Pos
	byPos      map[Pos]uint32
}

// New divides img into cols by rows equal cells. The image is copied into
// RGBA form once so that cell views share storage afterwards.
func New(img image.Image, cols, rows int) (*Sheet, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadGrid, cols, rows)
	}

	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Rect, img, b.Min, draw.Src)
	}

	return &Sheet{
		img:   rgba,
		cols:  cols,
		rows:  rows,
		byID:  make(map[uint32]Pos),
		byPos: make(map[Pos]uint32),
	}, nil
}

// NewWithTileSize derives the grid from the pixel size of one tile.
func NewWithTileSize(img image.Image, tileW, tileH int) (*Sheet, error) {
	if tileW <= 0 || tileH <= 0 {
		return nil, fmt.Errorf("%w: tile size %dx%d", ErrBadGrid, tileW, tileH)
	}
	b := img.Bounds()
	return New(img, b.Dx()/tileW, b.Dy()/tileH)
}

// Grid returns the number of columns and rows.
func (s *Sheet) Grid() (cols, rows int) {
	return s.cols, s.rows
}

// TileSize returns the pixel size of one cell.
func (s *Sheet) TileSize() (w, h int) {
	b := s.img.Bounds()
	return b.Dx() / s.cols, b.Dy() / s.rows
}

func (s *Sheet) inGrid(p Pos) bool {
	return p.Col >= 0 && p.Col < s.cols && p.Row >= 0 && p.Row < s.rows
}

// Register binds a specific tile id to a cell position.
func (s *Sheet) Register(id uint32, p Pos) error {
	if !s.inGrid(p) {
		return fmt.Errorf("%w: (%d, %d)", ErrPositionRange, p.Col, p.Row)
	}
	if _, ok := s.byID[id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateID, id)
	}
	if _, ok := s.byPos[p]; ok {
		return fmt.Errorf("%w: (%d, %d)", ErrDuplicatePosition, p.Col, p.Row)
	}
	s.byID[id] = p
	s.byPos[p] = id
	return nil
}

// Allocate returns the id mapped to p, assigning the next free dense id on
// first sight. Ids start at 0 and follow first-registration order.
func (s *Sheet) Allocate(p Pos) (uint32, error) {
	if !s.inGrid(p) {
		return 0, fmt.Errorf("%w: (%d, %d)", ErrPositionRange, p.Col, p.Row)
	}
	if id, ok := s.byPos[p]; ok {
		return id, nil
	}
	id := uint32(len(s.byPos))
	for {
		if _, taken := s.byID[id]; !taken {
			break
		}
		id++
	}
	s.byID[id] = p
	s.byPos[p] = id
	return id, nil
}

// Lookup returns the position mapped to id.
func (s *Sheet) Lookup(id uint32) (Pos, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// ID returns the id mapped to a position.
func (s *Sheet) ID(p Pos) (uint32, bool) {
	id, ok := s.byPos[p]
	return id, ok
}

// Len returns the number of mapped tiles.
func (s *Sheet) Len() int {
	return len(s.byID)
}

// Tile returns the sub-image for id, sharing pixels with the sheet. ok is
// false for unmapped ids.
func (s *Sheet) Tile(id uint32) (image.Image, bool) {
	p, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	tw, th := s.TileSize()
	r := image.Rect(p.Col*tw, p.Row*th, (p.Col+1)*tw, (p.Row+1)*th)
	return s.img.SubImage(r), true
}

// Canonical restricts the sheet to a rectangular region of cells, re-keyed
// to a fresh dense id space: air becomes id 0 and the region's cells
// become 1..n in row-major order. The region uses cell coordinates with
// Min inclusive and Max exclusive and must lie inside the grid; air must
// lie outside the region so the numbering stays dense. The encoding lines
// up with autotiling, where rule index i produces tile id i+1 and 0 is the
// empty tile.
func (s *Sheet) Canonical(region image.Rectangle, air Pos) (*Sheet, error) {
	if region.Min.X < 0 || region.Min.Y < 0 || region.Max.X > s.cols || region.Max.Y > s.rows || region.Empty() {
		return nil, fmt.Errorf("%w: %v", ErrRegionRange, region)
	}
	if !s.inGrid(air) {
		return nil, fmt.Errorf("%w: air (%d, %d)", ErrPositionRange, air.Col, air.Row)
	}
	if (image.Point{X: air.Col, Y: air.Row}).In(region) {
		return nil, fmt.Errorf("%w: air (%d, %d) inside region %v", ErrDuplicatePosition, air.Col, air.Row, region)
	}

	out := &Sheet{
		img:   s.img,
		cols:  s.cols,
		rows:  s.rows,
		byID:  make(map[uint32]Pos),
		byPos: make(map[Pos]uint32),
	}
	out.byID[0] = air
	out.byPos[air] = 0

	id := uint32(1)
	for row := region.Min.Y; row < region.Max.Y; row++ {
		for col := region.Min.X; col < region.Max.X; col++ {
			p := Pos{Col: col, Row: row}
			out.byID[id] = p
			out.byPos[p] = id
			id++
		}
	}
	return out, nil
}
