package feed

// CriteriaSet accumulates the predicates compiled for one domain. Each entry
// is either a single predicate or an already combined group.
type CriteriaSet struct {
	domain  Domain
	entries []Predicate
}

// NewCriteriaSet returns an empty set for domain d
func NewCriteriaSet(d Domain) *CriteriaSet {
	return &CriteriaSet{domain: d}
}

// Domain returns the domain the set filters
func (c *CriteriaSet) Domain() Domain {
	return c.domain
}

// Add appends p as one entry. Nil predicates are ignored.
func (c *CriteriaSet) Add(p Predicate) {
	if p == nil {
		return
	}
	c.entries = append(c.entries, p)
}

// AddAllOf appends ps as a single AND group entry
func (c *CriteriaSet) AddAllOf(ps ...Predicate) {
	c.Add(group(ps, func(ps []Predicate) Predicate { return And(ps) }))
}

// AddAnyOf appends ps as a single OR group entry
func (c *CriteriaSet) AddAnyOf(ps ...Predicate) {
	c.Add(group(ps, func(ps []Predicate) Predicate { return Or(ps) }))
}

// Len returns the number of entries
func (c *CriteriaSet) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the accumulated entries
func (c *CriteriaSet) Entries() []Predicate {
	out := make([]Predicate, len(c.entries))
	copy(out, c.entries)
	return out
}

// Assemble conjuncts every entry. An empty set yields nil, meaning the
// domain is not filtered at all.
func (c *CriteriaSet) Assemble() Predicate {
	switch len(c.entries) {
	case 0:
		return nil
	case 1:
		return c.entries[0]
	}
	return And(c.Entries())
}

func group(ps []Predicate, combine func([]Predicate) Predicate) Predicate {
	kept := make([]Predicate, 0, len(ps))
	for _, p := range ps {
		if p != nil {
			kept = append(kept, p)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	}
	return combine(kept)
}
