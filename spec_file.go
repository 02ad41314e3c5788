package leveltool

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// SpecExt is the filename suffix Scan looks for.
const SpecExt = ".level.json"

// Sentinel errors for spec file validation.
var (
	ErrMissingInput = errors.New("leveltool: spec must name a layout and a tileset")
	ErrBadTileSize  = errors.New("leveltool: tile_size must hold two positive values")
	ErrNoColors     = errors.New("leveltool: spec registers no colors")
	ErrNoOutputs    = errors.New("leveltool: spec declares no outputs")
)

// SpecFile is the on-disk description of one level build. Paths are
// relative to the file's own directory.
type SpecFile struct {
	Layout            string      `json:"layout"`
	Tileset           string      `json:"tileset"`
	TileSize          [2]int      `json:"tile_size"`
	Colors            []ColorSpec `json:"colors"`
	AllowUnusedColors bool        `json:"allow_unused_colors,omitempty"`

	// Outputs; at least one must be set.
	Render  string `json:"render,omitempty"`
	Grid    string `json:"grid,omitempty"`
	Preview string `json:"preview,omitempty"`
}

// ColorSpec binds one layout color to a tile sheet cell.
type ColorSpec struct {
	RGB  [3]uint8 `json:"rgb"`
	Tile [2]int   `json:"tile"` // column, row
}

// ReadSpecFile parses and validates a level spec document, resolving its
// paths against the file's directory. Unknown fields are rejected: a typo
// in a spec key should fail the build, not silently drop an output.
func ReadSpecFile(file string) (*SpecFile, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()

	var s SpecFile
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("leveltool: %s: %w", file, err)
	}

	if s.Layout == "" || s.Tileset == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingInput, file)
	}
	if s.TileSize[0] <= 0 || s.TileSize[1] <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrBadTileSize, file)
	}
	if len(s.Colors) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoColors, file)
	}
	if s.Render == "" && s.Grid == "" && s.Preview == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoOutputs, file)
	}

	dir := filepath.Dir(file)
	s.Layout = resolve(dir, s.Layout)
	s.Tileset = resolve(dir, s.Tileset)
	s.Render = resolve(dir, s.Render)
	s.Grid = resolve(dir, s.Grid)
	s.Preview = resolve(dir, s.Preview)

	return &s, nil
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
