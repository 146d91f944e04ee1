package feed

import (
	"fmt"
)

// BuildQueryFunc may register joins on either domain query
type BuildQueryFunc func(sc SearchContext, notes, actors *QueryBuilder)

// CompileTermFunc may contribute predicates to either domain for a term the
// built-in rules do not claim, or for free text
type CompileTermFunc func(t Term, sc SearchContext, notes, actors *CriteriaSet)

// Extension is a named set of callbacks invoked at the compiler extension
// points. Either callback may be nil.
type Extension struct {
	Name        string
	BuildQuery  BuildQueryFunc
	CompileTerm CompileTermFunc
}

// Registry is the ordered, immutable list of extensions resolved at startup
type Registry struct {
	extensions []Extension
}

// NewRegistry validates and freezes exts in the given order
func NewRegistry(exts ...Extension) (*Registry, error) {
	seen := map[string]struct{}{}
	list := make([]Extension, 0, len(exts))
	for _, ext := range exts {
		if ext.Name == "" {
			return nil, fmt.Errorf("register extension: %w", ErrEmptyExtensionName)
		}
		if _, ok := seen[ext.Name]; ok {
			return nil, DuplicateExtensionError{Name: ext.Name}
		}
		seen[ext.Name] = struct{}{}
		list = append(list, ext)
	}
	return &Registry{extensions: list}, nil
}

// Names returns the registered extension names in invocation order
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, len(r.extensions))
	for i, ext := range r.extensions {
		names[i] = ext.Name
	}
	return names
}

// BuildQuery invokes every BuildQuery callback in order
func (r *Registry) BuildQuery(sc SearchContext, notes, actors *QueryBuilder) {
	if r == nil {
		return
	}
	for _, ext := range r.extensions {
		if ext.BuildQuery != nil {
			ext.BuildQuery(sc, notes, actors)
		}
	}
}

// CompileTerm invokes every CompileTerm callback in order and reports
// whether any predicate was contributed
func (r *Registry) CompileTerm(t Term, sc SearchContext, notes, actors *CriteriaSet) bool {
	if r == nil {
		return false
	}
	before := notes.Len() + actors.Len()
	for _, ext := range r.extensions {
		if ext.CompileTerm != nil {
			ext.CompileTerm(t, sc, notes, actors)
		}
	}
	return notes.Len()+actors.Len() > before
}
