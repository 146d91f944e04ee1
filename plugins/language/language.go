// Package language filters notes by the locale they are written in
package language

import (
	"strings"

	"github.com/goto/gossip/core/feed"
)

const (
	Name = "language"

	tableAlias = "note_language"
)

// FieldLocale is the locale of the joined language row
const FieldLocale feed.Field = "note_language.locale"

var keys = map[string]struct{}{
	"note-language": {},
	"lang":          {},
}

// Extension claims the `note-language` and `lang` filters. A filter without
// values falls back to the language the search was made in.
func Extension() feed.Extension {
	return feed.Extension{
		Name:        Name,
		BuildQuery:  buildQuery,
		CompileTerm: compileTerm,
	}
}

func buildQuery(_ feed.SearchContext, notes, _ *feed.QueryBuilder) {
	notes.LeftJoin(feed.Join{
		Table: "language",
		Alias: tableAlias,
		On:    "note.language_id = note_language.id",
	})
}

func compileTerm(t feed.Term, sc feed.SearchContext, notes, _ *feed.CriteriaSet) {
	term, ok := t.(feed.FilterTerm)
	if !ok {
		return
	}
	if _, ok := keys[term.Key]; !ok {
		return
	}

	values := term.Values
	if len(values) == 0 && sc.Language != "" {
		values = []string{sc.Language}
	}

	locales := []interface{}{}
	seen := map[string]struct{}{}
	for _, v := range values {
		locale := normalize(v)
		if locale == "" {
			continue
		}
		if _, ok := seen[locale]; ok {
			continue
		}
		seen[locale] = struct{}{}
		locales = append(locales, locale)
	}
	if len(locales) == 0 {
		return
	}
	notes.Add(feed.In{Field: FieldLocale, Values: locales})
}

// normalize writes locales the way they are stored: `pt_br` becomes `pt-BR`
func normalize(locale string) string {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	lang, region, found := strings.Cut(locale, "-")
	lang = strings.ToLower(lang)
	if !found || region == "" {
		return lang
	}
	return lang + "-" + strings.ToUpper(region)
}
