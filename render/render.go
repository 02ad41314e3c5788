/*
Package render turns compiled tile layers into build outputs: rasterized
images, plain-text grid dumps and quantized previews.
*/
package render

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"github.com/mkualquiera/leveltool/sheet"
	"github.com/mkualquiera/leveltool/tilegrid"
)

// ErrMissingTile reports a layer cell whose tile id has no entry in the
// tile sheet.
var ErrMissingTile = errors.New("render: tile id not found in tile sheet")

// Image rasterizes a layer through a tile sheet into a fresh RGBA image.
// Every cell must resolve to a sheet entry; a miss fails the render naming
// the id and the cell.
func Image(l *tilegrid.Layer, s *sheet.Sheet) (*image.RGBA, error) {
	tw, th := s.TileSize()
	out := image.NewRGBA(image.Rect(0, 0, l.Width()*tw, l.Height()*th))
	if err := drawLayer(out, l, s, draw.Src); err != nil {
		return nil, err
	}
	return out, nil
}

// Over composites a decoration layer onto an existing render in place.
// Transparent pixels in the sheet's tiles let the underlying render show
// through, so canonical sheets with a transparent air tile at id 0 stack
// cleanly.
func Over(dst *image.RGBA, l *tilegrid.Layer, s *sheet.Sheet) error {
	return drawLayer(dst, l, s, draw.Over)
}

func drawLayer(dst *image.RGBA, l *tilegrid.Layer, s *sheet.Sheet, op draw.Op) error {
	tw, th := s.TileSize()
	for y := 0; y < l.Height(); y++ {
		for x := 0; x < l.Width(); x++ {
			id := l.At(x, y)
			tile, ok := s.Tile(id)
			if !ok {
				return fmt.Errorf("%w: %d at (%d, %d)", ErrMissingTile, id, x, y)
			}
			r := image.Rect(x*tw, y*th, (x+1)*tw, (y+1)*th)
			draw.Draw(dst, r, tile, tile.Bounds().Min, op)
		}
	}
	return nil
}
