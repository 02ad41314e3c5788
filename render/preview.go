package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
)

const previewColors = 64

// EncodePreview writes a palette-quantized PNG of m to w. Previews trade
// color fidelity for size so a whole directory of rendered levels can be
// skimmed cheaply.
func EncodePreview(w io.Writer, m image.Image) error {
	b := m.Bounds()

	pm, _ := m.(*image.Paletted)
	if pm == nil || len(pm.Palette) > previewColors {
		q := quantize.MedianCutQuantizer{AddTransparent: true}
		pm = image.NewPaletted(b, q.Quantize(make(color.Palette, 0, previewColors), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	return png.Encode(w, pm)
}
