package feed

import (
	"strconv"
	"strings"

	"github.com/goto/gossip/core/actor"
)

// rule compiles one recognized filter term
type rule func(t FilterTerm, sc SearchContext, notes, actors *CriteriaSet)

// namespaces maps key prefixes to the domain whose rule set they select
var namespaces = []struct {
	prefix string
	domain Domain
}{
	{prefix: "notes-", domain: DomainNote},
	{prefix: "note-", domain: DomainNote},
	{prefix: "actors-", domain: DomainActor},
	{prefix: "actor-", domain: DomainActor},
}

// operators is the static vocabulary of built-in filter keys per domain
var operators = newOperatorTable()

func newOperatorTable() map[Domain]map[string]rule {
	return map[Domain]map[string]rule{
		DomainNote: {
			"note-local":        compileNoteLocal,
			"note-types":        compileNoteTypes,
			"notes-include":     compileNoteTypes,
			"note-filter":       compileNoteTypes,
			"note-conversation": compileNoteConversation,
			"note-from":         compileNoteFrom,
			"notes-from":        compileNoteFrom,
		},
		DomainActor: {
			"actor-types":    compileActorTypes,
			"actors-include": compileActorTypes,
			"actor-filter":   compileActorTypes,
			"actor-local":    compileActorTypes,
		},
	}
}

// lookupRule finds the built-in rule for key. The namespace prefix alone
// selects which domain's rule set is consulted.
func lookupRule(key string) (rule, bool) {
	for _, ns := range namespaces {
		if !strings.HasPrefix(key, ns.prefix) {
			continue
		}
		r, ok := operators[ns.domain][key]
		return r, ok
	}
	return nil, false
}

// Operators lists the built-in filter keys of domain d
func Operators(d Domain) []string {
	keys := make([]string, 0, len(operators[d]))
	for k := range operators[d] {
		keys = append(keys, k)
	}
	return keys
}

func compileNoteLocal(t FilterTerm, _ SearchContext, notes, _ *CriteriaSet) {
	local, ok := parseBool(t.Raw)
	if !ok {
		return
	}
	notes.Add(Eq{Field: FieldNoteIsLocal, Value: local})
}

func compileNoteTypes(t FilterTerm, _ SearchContext, notes, _ *CriteriaSet) {
	if len(t.Values) == 0 {
		return
	}
	if t.HasValue("text", "words") {
		notes.Add(NotEq{Field: FieldNoteContent, Value: nil})
		return
	}
	notes.Add(Eq{Field: FieldNoteContent, Value: nil})
}

func compileNoteConversation(t FilterTerm, _ SearchContext, notes, _ *CriteriaSet) {
	id, err := strconv.ParseInt(strings.TrimSpace(t.Raw), 10, 64)
	if err != nil {
		return
	}
	notes.Add(Eq{Field: FieldNoteConversationID, Value: id})
}

// compileNoteFrom resolves the viewer relative "authored by whom" filter.
// An unconditional subscription filter wins over a kind restricted one,
// which wins over no filter at all.
func compileNoteFrom(t FilterTerm, sc SearchContext, notes, _ *CriteriaSet) {
	if sc.Actor == nil || len(t.Values) == 0 {
		return
	}
	subscribed := Eq{Field: FieldSubscriptionSubscriber, Value: sc.Actor.ID}

	anyKind := len(t.Values) == 1 && t.Values[0] == "subscribed"
	var kinds []interface{}
	seen := map[actor.Kind]struct{}{}
	for _, from := range t.Values {
		name, ok := strings.CutPrefix(from, "subscribed-")
		if !ok {
			continue
		}
		// only the first dash separated word names the kind
		name, _, _ = strings.Cut(name, "-")
		if actor.IsAnyKind(name) {
			anyKind = true
			continue
		}
		kind, ok := actor.ParseKind(name)
		if !ok {
			continue
		}
		if _, dup := seen[kind]; dup {
			continue
		}
		seen[kind] = struct{}{}
		kinds = append(kinds, kind)
	}

	switch {
	case anyKind:
		notes.Add(subscribed)
	case len(kinds) > 0:
		notes.AddAllOf(subscribed, In{Field: FieldNoteActorType, Values: kinds})
	}
}

// compileActorTypes emits one predicate per known kind: Eq when any of the
// kind synonyms was asked for, NotEq otherwise. Asking for one kind thus
// excludes every other.
func compileActorTypes(t FilterTerm, _ SearchContext, _, actors *CriteriaSet) {
	if len(t.Values) == 0 {
		return
	}
	values := make([]string, len(t.Values))
	for i, v := range t.Values {
		values[i] = strings.ToLower(v)
	}
	lowered := FilterTerm{Key: t.Key, Raw: t.Raw, Values: values}

	preds := make([]Predicate, 0, len(actor.AllKinds))
	for _, kind := range actor.AllKinds {
		if lowered.HasValue(kind.Synonyms()...) {
			preds = append(preds, Eq{Field: FieldActorType, Value: kind})
		} else {
			preds = append(preds, NotEq{Field: FieldActorType, Value: kind})
		}
	}
	actors.AddAllOf(preds...)
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes":
		return true, true
	case "0", "false", "off", "no":
		return false, true
	}
	return false, false
}
