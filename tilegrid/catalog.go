package tilegrid

// Catalog is an ordered list of raw adjacency rules. Order matters twice:
// a rule's position becomes part of the output encoding (a cell matched by
// rule i receives tile id i+1, leaving 0 for "nothing here"), and among
// equally complex matches the later rule wins, so later entries can refine
// earlier ones.
type Catalog []Rule

// Fixed returns the catalog with every rule fixed up, preserving order.
func (c Catalog) Fixed() Catalog {
	out := make(Catalog, len(c))
	for i, r := range c {
		out[i] = r.Fixup()
	}
	return out
}

// Inverted returns the catalog with every rule inverted, preserving order.
func (c Catalog) Inverted() Catalog {
	out := make(Catalog, len(c))
	for i, r := range c {
		out[i] = r.Inverted()
	}
	return out
}

// defaultPatterns is the built-in rule table: 47 occupancy patterns chosen
// empirically to cover isolated cells, straight edges, inner and outer
// corners, T-junctions and crossings. 1 is Present, 0 is Absent; the
// diagonal variants fall out of Fixup rather than being spelled out.
var defaultPatterns = [][9]uint8{
	{0, 0, 0, 0, 1, 1, 0, 1, 1},
	{0, 1, 1, 0, 1, 1, 0, 1, 1},
	{0, 1, 1, 0, 1, 1, 0, 0, 0},
	{0, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 0, 1, 1},
	{0, 0, 0, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 0, 0, 0},
	{1, 1, 0, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 0},
	{0, 0, 0, 1, 1, 0, 1, 1, 0},
	{1, 1, 0, 1, 1, 0, 1, 1, 0},
	{1, 1, 0, 1, 1, 0, 0, 0, 0},
	{0, 0, 0, 0, 1, 0, 0, 0, 0},
	{0, 1, 0, 1, 1, 1, 0, 1, 0},
	{0, 0, 0, 0, 1, 1, 0, 1, 0},
	{0, 1, 0, 0, 1, 1, 0, 0, 0},
	{0, 0, 0, 0, 1, 0, 0, 1, 0},
	{0, 1, 0, 0, 1, 0, 0, 1, 0},
	{0, 1, 0, 0, 1, 0, 0, 0, 0},
	{0, 0, 0, 1, 1, 0, 0, 1, 0},
	{0, 1, 0, 1, 1, 0, 0, 0, 0},
	{0, 1, 1, 1, 1, 1, 1, 1, 0},
	{1, 1, 0, 1, 1, 1, 0, 1, 1},
	{0, 0, 0, 0, 1, 1, 0, 0, 0},
	{0, 0, 0, 1, 1, 1, 0, 1, 1},
	{0, 1, 1, 1, 1, 1, 0, 0, 0},
	{0, 1, 0, 0, 1, 1, 0, 1, 1},
	{0, 1, 1, 0, 1, 1, 0, 1, 0},
	{0, 0, 0, 1, 1, 1, 0, 0, 0},
	{0, 0, 0, 1, 1, 1, 1, 1, 0},
	{1, 1, 0, 1, 1, 1, 0, 0, 0},
	{0, 1, 0, 1, 1, 0, 1, 1, 0},
	{1, 1, 0, 1, 1, 0, 0, 1, 0},
	{0, 0, 0, 1, 1, 0, 0, 0, 0},
	{0, 1, 1, 1, 1, 1, 0, 1, 1},
	{1, 1, 1, 1, 1, 1, 0, 1, 0},
	{0, 1, 0, 0, 1, 1, 0, 1, 0},
	{0, 1, 0, 1, 1, 1, 0, 0, 0},
	{1, 1, 0, 1, 1, 1, 1, 1, 0},
	{0, 1, 0, 1, 1, 1, 1, 1, 1},
	{0, 0, 0, 1, 1, 1, 0, 1, 0},
	{0, 1, 0, 1, 1, 0, 0, 1, 0},
	{0, 1, 0, 1, 1, 1, 0, 1, 1},
	{0, 1, 1, 1, 1, 1, 0, 1, 0},
	{0, 1, 0, 1, 1, 1, 1, 1, 0},
	{1, 1, 0, 1, 1, 1, 0, 1, 0},
}

// DefaultCatalog returns a fresh copy of the built-in rule set.
func DefaultCatalog() Catalog {
	rules := make(Catalog, len(defaultPatterns))
	for i, p := range defaultPatterns {
		for j, v := range p {
			if v == 1 {
				rules[i][j] = Present
			} else {
				rules[i][j] = Absent
			}
		}
	}
	return rules
}
