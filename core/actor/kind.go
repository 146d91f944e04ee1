package actor

import (
	"database/sql/driver"
	"strings"
)

// Kind is the type of an actor, stored as a small integer
type Kind int

const (
	KindPerson       Kind = 1
	KindGroup        Kind = 2
	KindOrganization Kind = 3
	KindBusiness     Kind = 4
	KindBot          Kind = 5
)

// AllKinds lists every known actor kind in their canonical order
var AllKinds = []Kind{
	KindPerson,
	KindGroup,
	KindOrganization,
	KindBusiness,
	KindBot,
}

var kindSynonyms = map[Kind][]string{
	KindPerson:       {"person", "people"},
	KindGroup:        {"group", "groups"},
	KindOrganization: {"org", "orgs", "organization", "organizations", "organisation", "organisations"},
	KindBusiness:     {"business", "businesses"},
	KindBot:          {"bot", "bots"},
}

// AnyKindSynonyms are the words that denote an actor of whatever kind
var AnyKindSynonyms = []string{"actor", "actors"}

// Synonyms returns the words accepted in queries to name the kind
func (k Kind) Synonyms() []string {
	return kindSynonyms[k]
}

// String returns the canonical lower case name of the kind
func (k Kind) String() string {
	if s := kindSynonyms[k]; len(s) > 0 {
		return s[0]
	}
	return "unknown"
}

// Value implements driver.Valuer so kinds bind as plain integers
func (k Kind) Value() (driver.Value, error) {
	return int64(k), nil
}

// IsValid will validate whether the kind is known or not
func (k Kind) IsValid() bool {
	_, ok := kindSynonyms[k]
	return ok
}

// ParseKind resolves a kind from any of its synonyms, case insensitive
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range AllKinds {
		for _, syn := range kindSynonyms[k] {
			if syn == s {
				return k, true
			}
		}
	}
	return 0, false
}

// IsAnyKind reports whether s names "any actor" rather than a specific kind
func IsAnyKind(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, syn := range AnyKindSynonyms {
		if syn == s {
			return true
		}
	}
	return false
}
