package feed_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/goto/gossip/core/feed"
)

func TestTokenize(t *testing.T) {
	type testCase struct {
		Description string
		Query       string
		Expected    []feed.Term
	}

	var testCases = []testCase{
		{
			Description: "empty query yields no terms",
			Query:       "",
		},
		{
			Description: "blank query yields no terms",
			Query:       " \t\n ",
		},
		{
			Description: "free text is split on whitespace",
			Query:       "hello   world",
			Expected: []feed.Term{
				feed.TextTerm{Text: "hello"},
				feed.TextTerm{Text: "world"},
			},
		},
		{
			Description: "key value chunk becomes a filter term",
			Query:       "note-local:true",
			Expected: []feed.Term{
				feed.FilterTerm{Key: "note-local", Raw: "true", Values: []string{"true"}},
			},
		},
		{
			Description: "values are split on commas",
			Query:       "note-from:subscribed-bot,subscribed-actors",
			Expected: []feed.Term{
				feed.FilterTerm{
					Key:    "note-from",
					Raw:    "subscribed-bot,subscribed-actors",
					Values: []string{"subscribed-bot", "subscribed-actors"},
				},
			},
		},
		{
			Description: "missing value yields empty values",
			Query:       "note-local:",
			Expected: []feed.Term{
				feed.FilterTerm{Key: "note-local", Raw: "", Values: []string{}},
			},
		},
		{
			Description: "only the first colon separates key from value",
			Query:       "a:b:c",
			Expected: []feed.Term{
				feed.FilterTerm{Key: "a", Raw: "b:c", Values: []string{"b:c"}},
			},
		},
		{
			Description: "keys are lower cased and empty values dropped",
			Query:       "  Note-Types:Text,,words  ",
			Expected: []feed.Term{
				feed.FilterTerm{Key: "note-types", Raw: "Text,,words", Values: []string{"Text", "words"}},
			},
		},
		{
			Description: "text and filters keep their order",
			Query:       "cats note-local:1\tdogs",
			Expected: []feed.Term{
				feed.TextTerm{Text: "cats"},
				feed.FilterTerm{Key: "note-local", Raw: "1", Values: []string{"1"}},
				feed.TextTerm{Text: "dogs"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			actual := feed.Tokenize(tc.Query)
			if len(tc.Expected) == 0 {
				if len(actual) != 0 {
					t.Fatalf("expected no terms but got %+v", actual)
				}
				return
			}
			if diff := cmp.Diff(tc.Expected, actual); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterTermHasValue(t *testing.T) {
	term := feed.FilterTerm{Key: "note-types", Values: []string{"image", "words"}}
	if !term.HasValue("text", "words") {
		t.Fatalf("expected words to match")
	}
	if term.HasValue("text") {
		t.Fatalf("expected text not to match")
	}
}
