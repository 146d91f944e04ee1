package feed

import "math"

// Domain is one of the independently queried record kinds
type Domain string

const (
	DomainNote  Domain = "note"
	DomainActor Domain = "actor"
)

// Join declares a relation that must be included in a domain query before
// predicates referencing the relation's fields are applied. On is written
// against relation aliases, Args bind its placeholders.
type Join struct {
	Table string
	Alias string
	On    string
	Args  []interface{}
}

// QueryBuilder collects the joins registered for one domain query
type QueryBuilder struct {
	domain Domain
	joins  []Join
	seen   map[string]struct{}
}

// NewQueryBuilder returns a builder for domain d
func NewQueryBuilder(d Domain) *QueryBuilder {
	return &QueryBuilder{
		domain: d,
		seen:   map[string]struct{}{},
	}
}

// Domain returns the domain being queried
func (b *QueryBuilder) Domain() Domain {
	return b.domain
}

// LeftJoin registers j. A join whose alias is already registered is ignored.
func (b *QueryBuilder) LeftJoin(j Join) *QueryBuilder {
	if j.Alias == "" {
		j.Alias = j.Table
	}
	if _, ok := b.seen[j.Alias]; ok {
		return b
	}
	b.seen[j.Alias] = struct{}{}
	b.joins = append(b.joins, j)
	return b
}

// HasJoin reports whether a join with the alias was registered
func (b *QueryBuilder) HasJoin(alias string) bool {
	_, ok := b.seen[alias]
	return ok
}

// Joins returns the registered joins in registration order
func (b *QueryBuilder) Joins() []Join {
	out := make([]Join, len(b.joins))
	copy(out, b.joins)
	return out
}

// Order is one ordering key
type Order struct {
	Field      Field
	Descending bool
}

// Window is the page of records to fetch
type Window struct {
	Limit  int
	Offset int
}

// PageWindow returns the window covering 1-based page of size pageSize.
// Pages past MaxPage saturate the offset instead of wrapping around.
func PageWindow(page, pageSize int) Window {
	if page < 1 {
		page = 1
	}
	if page > MaxPage(pageSize) {
		return Window{Limit: pageSize, Offset: math.MaxInt}
	}
	return Window{
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	}
}

// MaxPage is the last page whose offset is representable for pageSize
func MaxPage(pageSize int) int {
	if pageSize <= 1 {
		return math.MaxInt
	}
	return math.MaxInt/pageSize + 1
}

// DefaultOrder sorts newest first with ties broken by the highest identity,
// which makes the order total
func DefaultOrder(d Domain) []Order {
	return []Order{
		{Field: Field(string(d) + ".created"), Descending: true},
		{Field: Field(string(d) + ".id"), Descending: true},
	}
}

// Fetch is a fully described read over one domain
type Fetch struct {
	Domain    Domain
	Joins     []Join
	Predicate Predicate
	Order     []Order
	Window    Window
}
