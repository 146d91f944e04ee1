package language_test

import (
	"testing"

	"github.com/goto/gossip/core/feed"
	"github.com/goto/gossip/internal/testutils"
	"github.com/goto/gossip/plugins/language"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileTerm(t *testing.T) {
	type testCase struct {
		Description string
		Query       string
		Language    string
		Expected    feed.Predicate
	}

	var testCases = []testCase{
		{
			Description: "locales are normalized",
			Query:       "note-language:EN,pt_br,en",
			Expected:    feed.In{Field: language.FieldLocale, Values: []interface{}{"en", "pt-BR"}},
		},
		{
			Description: "short key is accepted",
			Query:       "lang:fr",
			Language:    "en",
			Expected:    feed.In{Field: language.FieldLocale, Values: []interface{}{"fr"}},
		},
		{
			Description: "missing value falls back to the search language",
			Query:       "lang:",
			Language:    "de-at",
			Expected:    feed.In{Field: language.FieldLocale, Values: []interface{}{"de-AT"}},
		},
		{
			Description: "missing value without a search language is a no-op",
			Query:       "lang:",
		},
		{
			Description: "other filters are ignored",
			Query:       "language:en",
		},
	}

	registry, err := feed.NewRegistry(append(feed.DefaultExtensions(), language.Extension())...)
	require.NoError(t, err)
	compiler := feed.NewCompiler(nil, registry)

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			criteria := compiler.Compile(tc.Query, feed.SearchContext{Language: tc.Language})
			testutils.AssertEqualPredicate(t, tc.Expected, criteria.Notes)
		})
	}
}

func TestBuildQuery(t *testing.T) {
	notes := feed.NewQueryBuilder(feed.DomainNote)
	actors := feed.NewQueryBuilder(feed.DomainActor)
	language.Extension().BuildQuery(feed.SearchContext{}, notes, actors)

	assert.Equal(t, []feed.Join{{Table: "language", Alias: "note_language", On: "note.language_id = note_language.id"}}, notes.Joins())
	assert.Empty(t, actors.Joins())
}
