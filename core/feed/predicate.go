package feed

import (
	"fmt"
	"strings"
)

// Field is a qualified `relation.column` reference
type Field string

const (
	FieldNoteID             Field = "note.id"
	FieldNoteCreated        Field = "note.created"
	FieldNoteContent        Field = "note.content"
	FieldNoteIsLocal        Field = "note.is_local"
	FieldNoteConversationID Field = "note.conversation_id"
	FieldNoteActorType      Field = "note_actor.type"

	FieldSubscriptionSubscriber Field = "subscription.subscriber"

	FieldActorID      Field = "actor.id"
	FieldActorCreated Field = "actor.created"
	FieldActorType    Field = "actor.type"
)

// Relation returns the relation (table alias) part of the field
func (f Field) Relation() string {
	rel, _, _ := strings.Cut(string(f), ".")
	return rel
}

// Column returns the column part of the field
func (f Field) Column() string {
	_, col, _ := strings.Cut(string(f), ".")
	return col
}

// Predicate is a boolean test over one domain's records. The set of
// implementations is closed: Eq, NotEq, Contains, In, And and Or.
type Predicate interface {
	isPredicate()
	String() string
}

// Eq tests Field = Value. A nil Value tests for NULL.
type Eq struct {
	Field Field
	Value interface{}
}

// NotEq tests Field <> Value. A nil Value tests for NOT NULL.
type NotEq struct {
	Field Field
	Value interface{}
}

// Contains tests whether the text column holds Text as a substring
type Contains struct {
	Field Field
	Text  string
}

// In tests whether Field equals any of Values
type In struct {
	Field  Field
	Values []interface{}
}

// And holds when all of its predicates hold
type And []Predicate

// Or holds when any of its predicates holds
type Or []Predicate

func (Eq) isPredicate()       {}
func (NotEq) isPredicate()    {}
func (Contains) isPredicate() {}
func (In) isPredicate()       {}
func (And) isPredicate()      {}
func (Or) isPredicate()       {}

func (p Eq) String() string       { return fmt.Sprintf("%s = %s", p.Field, formatValue(p.Value)) }
func (p NotEq) String() string    { return fmt.Sprintf("%s <> %s", p.Field, formatValue(p.Value)) }
func (p Contains) String() string { return fmt.Sprintf("%s CONTAINS %q", p.Field, p.Text) }

func (p In) String() string {
	vals := make([]string, len(p.Values))
	for i, v := range p.Values {
		vals[i] = formatValue(v)
	}
	return fmt.Sprintf("%s IN (%s)", p.Field, strings.Join(vals, ", "))
}

func (p And) String() string { return joinPredicates(p, " AND ") }
func (p Or) String() string  { return joinPredicates(p, " OR ") }

func joinPredicates(ps []Predicate, sep string) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, sep) + ")"
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return fmt.Sprintf("%q", val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// Walk visits p and every predicate nested in it, depth first. Visiting
// stops early when fn returns false.
func Walk(p Predicate, fn func(Predicate) bool) bool {
	if p == nil {
		return true
	}
	if !fn(p) {
		return false
	}
	var children []Predicate
	switch pp := p.(type) {
	case And:
		children = pp
	case Or:
		children = pp
	}
	for _, c := range children {
		if !Walk(c, fn) {
			return false
		}
	}
	return true
}

// Fields lists the distinct fields referenced by p, in visiting order
func Fields(p Predicate) []Field {
	var (
		fields []Field
		seen   = map[Field]struct{}{}
	)
	Walk(p, func(p Predicate) bool {
		var f Field
		switch pp := p.(type) {
		case Eq:
			f = pp.Field
		case NotEq:
			f = pp.Field
		case Contains:
			f = pp.Field
		case In:
			f = pp.Field
		default:
			return true
		}
		if _, ok := seen[f]; !ok {
			seen[f] = struct{}{}
			fields = append(fields, f)
		}
		return true
	})
	return fields
}
