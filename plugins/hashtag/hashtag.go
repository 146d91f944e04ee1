// Package hashtag lets searches narrow notes down to those carrying tags,
// e.g. `tags:golang,#Databases`. Values of one term match any of the tags;
// repeated terms must all match, `tag:golang tag:databases` finds notes
// tagged with both.
package hashtag

import (
	"fmt"

	"github.com/goto/gossip/core/feed"
	"github.com/goto/gossip/core/note"
)

const (
	Name = "hashtag"

	tableAlias = "note_tag"
)

// FieldCanonical is the canonical tag of the note_tag row joined for the
// first tag term
const FieldCanonical feed.Field = "note_tag.canonical"

var keys = map[string]struct{}{
	"tag":  {},
	"tags": {},
}

// Extension claims the `tag` and `tags` filters
func Extension() feed.Extension {
	return feed.Extension{
		Name:        Name,
		BuildQuery:  buildQuery,
		CompileTerm: compileTerm,
	}
}

func compileTerm(t feed.Term, sc feed.SearchContext, notes, _ *feed.CriteriaSet) {
	term, ok := t.(feed.FilterTerm)
	if !ok || !isTagTerm(term) {
		return
	}

	tags := canonicalTags(term.Values)
	if len(tags) == 0 {
		return
	}
	notes.Add(feed.In{Field: CanonicalField(termIndex(term, sc.Terms)), Values: tags})
}

// buildQuery joins note_tag once per tag term so that each term is matched
// against its own row. The store selects distinct notes whenever joins are
// present so a note with many tags is returned once.
func buildQuery(sc feed.SearchContext, notes, _ *feed.QueryBuilder) {
	for i := range tagTerms(sc.Terms) {
		alias := joinAlias(i)
		notes.LeftJoin(feed.Join{
			Table: "note_tag",
			Alias: alias,
			On:    alias + ".note_id = note.id",
		})
	}
}

// CanonicalField is the canonical tag column of the join serving the i-th
// tag term, counting from zero
func CanonicalField(i int) feed.Field {
	return feed.Field(joinAlias(i) + ".canonical")
}

func joinAlias(i int) string {
	if i == 0 {
		return tableAlias
	}
	return fmt.Sprintf("%s_%d", tableAlias, i+1)
}

// tagTerms lists the tag terms holding at least one tag, without repeating
// identical terms
func tagTerms(terms []feed.Term) []feed.FilterTerm {
	var (
		list []feed.FilterTerm
		seen = map[string]struct{}{}
	)
	for _, t := range terms {
		term, ok := t.(feed.FilterTerm)
		if !ok || !isTagTerm(term) || len(canonicalTags(term.Values)) == 0 {
			continue
		}
		if _, dup := seen[term.String()]; dup {
			continue
		}
		seen[term.String()] = struct{}{}
		list = append(list, term)
	}
	return list
}

func termIndex(term feed.FilterTerm, terms []feed.Term) int {
	for i, t := range tagTerms(terms) {
		if t.String() == term.String() {
			return i
		}
	}
	return 0
}

func isTagTerm(term feed.FilterTerm) bool {
	_, ok := keys[term.Key]
	return ok
}

func canonicalTags(values []string) []interface{} {
	seen := map[string]struct{}{}
	tags := []interface{}{}
	for _, v := range values {
		c := note.CanonicalTag(v)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		tags = append(tags, c)
	}
	return tags
}
