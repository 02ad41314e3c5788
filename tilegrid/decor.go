package tilegrid

// Decoration passes derive dressing layers from a solidity mask (1 where
// material stands, 0 where it is open). Walls, Ceilings and DoorShadows
// return binary masks ready for ValueWhere re-mapping onto concrete sheet
// ids; AmbientOcclusion returns rule ids in the usual index+1 encoding.

// Walls marks the south faces of a solidity mask: solid cells whose cell
// below is open or off the map.
func Walls(solid *Layer) *Layer {
	return solid.Convolve(func(w *Window) uint32 {
		if c := w.Center(); !c.OK || c.V != 1 {
			return 0
		}
		if below := w.Get(0, 1); below.OK && below.V == 1 {
			return 0
		}
		return 1
	})
}

// Ceilings marks the top edge of a solidity mask: solid cells whose cell
// above is open or off the map.
func Ceilings(solid *Layer) *Layer {
	return solid.Convolve(func(w *Window) uint32 {
		if c := w.Center(); !c.OK || c.V != 1 {
			return 0
		}
		if above := w.Get(0, -1); above.OK && above.V == 1 {
			return 0
		}
		return 1
	})
}

// DoorShadows marks the open cell directly below every door. doors holds 1
// at door positions; solid is the solidity mask of the same level, and the
// two must agree in size. A shadow is only cast onto open floor.
func DoorShadows(doors, solid *Layer) (*Layer, error) {
	below := doors.Convolve(func(w *Window) uint32 {
		if above := w.Get(0, -1); above.OK && above.V == 1 {
			return 1
		}
		return 0
	})
	return below.ZipWith(solid, func(shadow, wall uint32) uint32 {
		if shadow == 1 && wall == 0 {
			return 1
		}
		return 0
	})
}

// AmbientOcclusion shades the open space around a solidity mask. The
// catalog's rules are fixed up and then inverted, so they fire on open
// cells and describe how solid material crowds each one; the result holds
// inverted-rule index+1 on shaded cells and 0 elsewhere.
func AmbientOcclusion(solid *Layer, c Catalog, policy AbyssPolicy) *Layer {
	m := NewPreparedMatcher(c.Fixed().Inverted())
	return solid.CanonicalAdjacency(m, policy == PadWithSelf)
}
