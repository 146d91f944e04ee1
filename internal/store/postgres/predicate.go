package postgres

import (
	"fmt"
	"regexp"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/goto/gossip/core/feed"
)

var (
	fieldPattern      = regexp.MustCompile(`^[a-z_][a-z0-9_]*\.[a-z_][a-z0-9_]*$`)
	identifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

	likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
)

// buildPredicate translates a predicate tree into a squirrel condition. Every
// field is checked before it is interpolated into the query.
func buildPredicate(p feed.Predicate) (sq.Sqlizer, error) {
	switch pp := p.(type) {
	case feed.Eq:
		col, err := column(pp.Field)
		if err != nil {
			return nil, err
		}
		return sq.Eq{col: pp.Value}, nil
	case feed.NotEq:
		col, err := column(pp.Field)
		if err != nil {
			return nil, err
		}
		return sq.NotEq{col: pp.Value}, nil
	case feed.Contains:
		col, err := column(pp.Field)
		if err != nil {
			return nil, err
		}
		return sq.ILike{col: "%" + escapeLike(pp.Text) + "%"}, nil
	case feed.In:
		col, err := column(pp.Field)
		if err != nil {
			return nil, err
		}
		if len(pp.Values) == 0 {
			return sq.Expr("FALSE"), nil
		}
		return sq.Eq{col: pp.Values}, nil
	case feed.And:
		if len(pp) == 0 {
			return sq.Expr("TRUE"), nil
		}
		conj := make(sq.And, 0, len(pp))
		for _, child := range pp {
			c, err := buildPredicate(child)
			if err != nil {
				return nil, err
			}
			conj = append(conj, c)
		}
		return conj, nil
	case feed.Or:
		if len(pp) == 0 {
			return sq.Expr("FALSE"), nil
		}
		disj := make(sq.Or, 0, len(pp))
		for _, child := range pp {
			c, err := buildPredicate(child)
			if err != nil {
				return nil, err
			}
			disj = append(disj, c)
		}
		return disj, nil
	}
	return nil, fmt.Errorf("unsupported predicate %T", p)
}

func column(f feed.Field) (string, error) {
	if !fieldPattern.MatchString(string(f)) {
		return "", fmt.Errorf("%w: field %q", errInvalidIdentifier, f)
	}
	return string(f), nil
}

func identifier(s string) (string, error) {
	if !identifierPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q", errInvalidIdentifier, s)
	}
	return s, nil
}

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
