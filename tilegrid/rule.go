package tilegrid

// Cell is one position of a 3x3 adjacency rule. Raw rules use only Absent
// and Present; Fixup introduces Wildcard.
type Cell int8

const (
	Absent   Cell = -1
	Wildcard Cell = 0
	Present  Cell = 1
)

// matches reports whether an observed occupancy satisfies the cell.
func (c Cell) matches(occupied bool) bool {
	switch c {
	case Wildcard:
		return true
	case Present:
		return occupied
	default:
		return !occupied
	}
}

// Rule is a 3x3 adjacency pattern in row-major order: top-left, top,
// top-right, left, center, right, bottom-left, bottom, bottom-right.
type Rule [9]Cell

// Offsets into a Rule.
const (
	topLeft = iota
	top
	topRight
	left
	center
	right
	bottomLeft
	bottom
	bottomRight
)

// Complexity is the rule's specificity score: the number of Present cells.
// Score a rule in its raw form; Fixup can erase Present corners and the
// score must not move with them.
func (r Rule) Complexity() int {
	n := 0
	for _, c := range r {
		if c == Present {
			n++
		}
	}
	return n
}

// Fixup derives the matchable form of a raw rule: whenever an orthogonal
// edge cell is Absent, the two corners touching that edge become Wildcard.
// A corner along an absent edge carries no usable information, so rules
// only need to spell out their orthogonal story. Idempotent.
func (r Rule) Fixup() Rule {
	f := r
	if r[top] == Absent {
		f[topLeft], f[topRight] = Wildcard, Wildcard
	}
	if r[right] == Absent {
		f[topRight], f[bottomRight] = Wildcard, Wildcard
	}
	if r[bottom] == Absent {
		f[bottomLeft], f[bottomRight] = Wildcard, Wildcard
	}
	if r[left] == Absent {
		f[topLeft], f[bottomLeft] = Wildcard, Wildcard
	}
	return f
}

// Inverted swaps Present and Absent, leaving Wildcard cells alone. The
// ambient occlusion rules are the adjacency rules read against open space
// instead of solid material.
func (r Rule) Inverted() Rule {
	var inv Rule
	for i, c := range r {
		inv[i] = -c
	}
	return inv
}
