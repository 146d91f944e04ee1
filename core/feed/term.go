package feed

import (
	"strings"
)

// Term is one whitespace delimited unit of a search query. It is either a
// TextTerm or a FilterTerm.
type Term interface {
	isTerm()
	String() string
}

// TextTerm is free text to look for in note content
type TextTerm struct {
	Text string
}

// FilterTerm is a `key:value1,value2` unit. Raw holds everything after the
// first colon, Values is Raw split on commas with empty tokens dropped.
type FilterTerm struct {
	Key    string
	Raw    string
	Values []string
}

func (TextTerm) isTerm()   {}
func (FilterTerm) isTerm() {}

func (t TextTerm) String() string { return t.Text }

func (t FilterTerm) String() string { return t.Key + ":" + t.Raw }

// HasValue reports whether any of the term values equals one of candidates
func (t FilterTerm) HasValue(candidates ...string) bool {
	for _, v := range t.Values {
		for _, c := range candidates {
			if v == c {
				return true
			}
		}
	}
	return false
}

// Tokenize splits a query into terms. Chunks are separated by whitespace;
// a chunk holding a colon becomes a FilterTerm keyed by the text before the
// first colon. No escaping is supported and malformed chunks never fail.
func Tokenize(query string) []Term {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	chunks := strings.Fields(query)
	terms := make([]Term, 0, len(chunks))
	for _, chunk := range chunks {
		key, raw, ok := strings.Cut(chunk, ":")
		if !ok {
			terms = append(terms, TextTerm{Text: chunk})
			continue
		}
		terms = append(terms, FilterTerm{
			Key:    strings.ToLower(key),
			Raw:    raw,
			Values: splitValues(raw),
		})
	}
	return terms
}

func splitValues(raw string) []string {
	values := []string{}
	for _, v := range strings.Split(raw, ",") {
		if v == "" {
			continue
		}
		values = append(values, v)
	}
	return values
}
