package render

import (
	"bufio"
	"io"
	"strconv"

	"github.com/mkualquiera/leveltool/tilegrid"
)

// WriteGrid writes the layer's raw cell values as plain text: one line per
// row, values comma-separated, no header. The game runtime reads this back
// as a collision or semantic map.
func WriteGrid(w io.Writer, l *tilegrid.Layer) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for y := 0; y < l.Height(); y++ {
		buf = buf[:0]
		for x := 0; x < l.Width(); x++ {
			if x > 0 {
				buf = append(buf, ',')
			}
			buf = strconv.AppendUint(buf, uint64(l.At(x, y)), 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
