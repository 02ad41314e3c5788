package tilegrid

// Matcher resolves an observed 3x3 occupancy pattern to the catalog rule
// that describes it best. A matcher is safe for concurrent use once built.
type Matcher struct {
	rules        []Rule
	complexities []int
}

// NewMatcher prepares a matcher for a catalog of raw rules. Each rule is
// scored and fixed up once; the catalog itself is not retained.
func NewMatcher(c Catalog) *Matcher {
	m := &Matcher{
		rules:        make([]Rule, len(c)),
		complexities: make([]int, len(c)),
	}
	for i, r := range c {
		m.rules[i] = r.Fixup()
		m.complexities[i] = r.Complexity()
	}
	return m
}

// NewPreparedMatcher prepares a matcher for rules that are already in
// their matchable form, such as fixed-up rules run through Inverted. The
// rules are used as given, wildcards included, and scored as given.
func NewPreparedMatcher(c Catalog) *Matcher {
	m := &Matcher{
		rules:        make([]Rule, len(c)),
		complexities: make([]int, len(c)),
	}
	for i, r := range c {
		m.rules[i] = r
		m.complexities[i] = r.Complexity()
	}
	return m
}

// Match returns the index of the most specific rule matching the observed
// neighborhood, given in the same row-major order as rules. A Wildcard
// cell matches either value; Present and Absent must agree exactly. Among
// matches the highest complexity wins, and among equally complex matches
// the one later in the catalog wins. ok is false when nothing matches.
func (m *Matcher) Match(neighborhood [9]bool) (index int, ok bool) {
	best := -1
	for i, r := range m.rules {
		if !m.ruleMatches(r, neighborhood) {
			continue
		}
		if best < 0 || m.complexities[i] >= m.complexities[best] {
			best = i
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

func (m *Matcher) ruleMatches(r Rule, n [9]bool) bool {
	for i, c := range r {
		if !c.matches(n[i]) {
			return false
		}
	}
	return true
}

// Len returns the number of rules the matcher was built with.
func (m *Matcher) Len() int {
	return len(m.rules)
}
