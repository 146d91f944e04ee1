package feed

import (
	"github.com/goto/gossip/core/actor"
	"github.com/goto/salt/log"
)

// SearchContext is what the compiler knows about the request besides the
// query text. Actor is nil for anonymous requests.
type SearchContext struct {
	Language string
	Actor    *actor.Actor

	// Terms is the whole tokenized query, letting extensions relate a term
	// to its siblings
	Terms []Term
}

// Criteria holds the assembled predicate of each domain. A nil predicate
// leaves the domain unfiltered.
type Criteria struct {
	Notes  Predicate
	Actors Predicate
}

// Compiler turns query strings into per domain predicates
type Compiler struct {
	registry *Registry
	logger   log.Logger
}

// Compile tokenizes query and compiles every term. Unknown filters and
// malformed values never fail; they contribute nothing.
func (c *Compiler) Compile(query string, sc SearchContext) Criteria {
	terms := Tokenize(query)
	sc.Terms = terms
	notes, actors := c.CompileTerms(terms, sc)
	return Criteria{
		Notes:  notes.Assemble(),
		Actors: actors.Assemble(),
	}
}

// CompileTerms compiles already tokenized terms into unassembled sets
func (c *Compiler) CompileTerms(terms []Term, sc SearchContext) (notes, actors *CriteriaSet) {
	notes = NewCriteriaSet(DomainNote)
	actors = NewCriteriaSet(DomainActor)
	if sc.Terms == nil {
		sc.Terms = terms
	}

	for _, t := range terms {
		switch term := t.(type) {
		case TextTerm:
			notes.Add(Contains{Field: FieldNoteContent, Text: term.Text})
			c.registry.CompileTerm(term, sc, notes, actors)
		case FilterTerm:
			if r, ok := lookupRule(term.Key); ok {
				r(term, sc, notes, actors)
				continue
			}
			if !c.registry.CompileTerm(term, sc, notes, actors) {
				c.logger.Debug("dropping unresolved filter", "key", term.Key, "value", term.Raw)
			}
		}
	}
	return notes, actors
}

// NewCompiler initializes a compiler consulting registry for terms it does
// not recognize
func NewCompiler(logger log.Logger, registry *Registry) *Compiler {
	if logger == nil {
		logger = log.NewNoop()
	}
	return &Compiler{
		registry: registry,
		logger:   logger,
	}
}
