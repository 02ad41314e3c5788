package leveltool

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/mkualquiera/leveltool/levelspec"
	"github.com/mkualquiera/leveltool/render"
	"github.com/mkualquiera/leveltool/sheet"
	"github.com/mkualquiera/leveltool/tilegrid"
)

func loadImage(file string) (image.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("leveltool: %s: %w", file, err)
	}
	return m, nil
}

// Compile builds a single level spec file and writes its declared outputs.
func (m *LevelTool) Compile(file string) error {
	spec, err := ReadSpecFile(file)
	if err != nil {
		return err
	}
	return m.build(file, spec)
}

// Dump compiles the level described by file and writes its tile grid to w,
// ignoring the outputs the spec declares.
func (m *LevelTool) Dump(w io.Writer, file string) error {
	spec, err := ReadSpecFile(file)
	if err != nil {
		return err
	}

	_, layer, err := m.compile(file, spec)
	if err != nil {
		return err
	}
	return render.WriteGrid(w, layer)
}

func (m *LevelTool) compile(file string, spec *SpecFile) (*sheet.Sheet, *tilegrid.Layer, error) {
	layout, err := loadImage(spec.Layout)
	if err != nil {
		return nil, nil, err
	}
	tileset, err := loadImage(spec.Tileset)
	if err != nil {
		return nil, nil, err
	}

	ls := levelspec.New(layout, tileset, spec.TileSize[0], spec.TileSize[1])
	for _, c := range spec.Colors {
		color := levelspec.Color{R: c.RGB[0], G: c.RGB[1], B: c.RGB[2]}
		pos := sheet.Pos{Col: c.Tile[0], Row: c.Tile[1]}
		if err := ls.Register(color, pos); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", file, err)
		}
	}

	var opts []levelspec.Option
	if spec.AllowUnusedColors {
		opts = append(opts, levelspec.WithAllowUnusedColors())
	}

	sh, layer, err := ls.Compile(opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", file, err)
	}
	return sh, layer, nil
}

func (m *LevelTool) build(file string, spec *SpecFile) error {
	sh, layer, err := m.compile(file, spec)
	if err != nil {
		return err
	}

	if spec.Render != "" || spec.Preview != "" {
		img, err := render.Image(layer, sh)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if spec.Render != "" {
			if err := writeOutput(spec.Render, func(f *os.File) error {
				return png.Encode(f, img)
			}); err != nil {
				return err
			}
			m.logger.Printf("wrote \"%s\"\n", spec.Render)
		}
		if spec.Preview != "" {
			if err := writeOutput(spec.Preview, func(f *os.File) error {
				return render.EncodePreview(f, img)
			}); err != nil {
				return err
			}
			m.logger.Printf("wrote \"%s\"\n", spec.Preview)
		}
	}

	if spec.Grid != "" {
		if err := writeOutput(spec.Grid, func(f *os.File) error {
			return render.WriteGrid(f, layer)
		}); err != nil {
			return err
		}
		m.logger.Printf("wrote \"%s\"\n", spec.Grid)
	}

	return nil
}

func writeOutput(file string, fn func(*os.File) error) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
