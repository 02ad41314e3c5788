package tilegrid

// AbyssPolicy decides what occupancy to assume for neighbors beyond the
// edge of a layer.
type AbyssPolicy int

const (
	// PadWithAir treats everything beyond the layer as open space, so the
	// material grows edges and corners along the map boundary.
	PadWithAir AbyssPolicy = iota
	// PadWithSelf treats the boundary as if the material continued past
	// it, so cells on the edge tile as fully surrounded.
	PadWithSelf
)

// CanonicalAdjacency autotiles a binary mask. For every cell the 3x3
// occupancy pattern is read off the convolution window (a neighbor counts
// as occupied when its value is 1; missing neighbors count as
// padWithAdjacent) and resolved through the matcher. The cell receives the
// matched rule index plus one, or 0 when no rule matches, keeping 0 as the
// empty tile across the pipeline.
func (l *Layer) CanonicalAdjacency(m *Matcher, padWithAdjacent bool) *Layer {
	return l.Convolve(func(w *Window) uint32 {
		var n [9]bool
		i := 0
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if v := w.Get(dx, dy); v.OK {
					n[i] = v.V == 1
				} else {
					n[i] = padWithAdjacent
				}
				i++
			}
		}
		index, ok := m.Match(n)
		if !ok {
			return 0
		}
		return uint32(index) + 1
	})
}

// AutotileWith extracts the cells holding value as a binary mask and runs
// canonical adjacency over it under the given abyss policy.
func (l *Layer) AutotileWith(m *Matcher, value uint32, policy AbyssPolicy) *Layer {
	mask := l.OneWhere(func(v uint32) bool { return v == value })
	return mask.CanonicalAdjacency(m, policy == PadWithSelf)
}
