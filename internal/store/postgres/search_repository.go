package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/goto/gossip/core/actor"
	"github.com/goto/gossip/core/feed"
	"github.com/goto/gossip/core/note"
)

var (
	noteColumns = []string{
		"note.id", "note.actor_id", "note.content", "note.is_local",
		"note.conversation_id", "note.language_id", "note.created", "note.modified",
	}
	actorColumns = []string{
		"actor.id", "actor.nickname", "actor.fullname", "actor.type",
		"actor.is_local", "actor.created", "actor.modified",
	}
)

// SearchRepository reads pages of notes and actors described by feed fetches
type SearchRepository struct {
	client *Client
}

// FetchNotes returns the notes window of f
func (r *SearchRepository) FetchNotes(ctx context.Context, f feed.Fetch) ([]note.Note, error) {
	if f.Domain != feed.DomainNote {
		return nil, fmt.Errorf("%w: %s", errDomainMismatch, f.Domain)
	}
	query, args, err := buildFetchSQL(f, noteColumns)
	if err != nil {
		return nil, fmt.Errorf("error building fetch notes query: %w", err)
	}

	var nms NoteModels
	if err := r.client.SelectContext(ctx, &nms, query, args...); err != nil {
		return nil, fmt.Errorf("error fetching notes: %w", err)
	}
	return nms.toNotes(), nil
}

// FetchActors returns the actors window of f
func (r *SearchRepository) FetchActors(ctx context.Context, f feed.Fetch) ([]actor.Actor, error) {
	if f.Domain != feed.DomainActor {
		return nil, fmt.Errorf("%w: %s", errDomainMismatch, f.Domain)
	}
	query, args, err := buildFetchSQL(f, actorColumns)
	if err != nil {
		return nil, fmt.Errorf("error building fetch actors query: %w", err)
	}

	var ams ActorModels
	if err := r.client.SelectContext(ctx, &ams, query, args...); err != nil {
		return nil, fmt.Errorf("error fetching actors: %w", err)
	}
	return ams.toActors(), nil
}

// buildFetchSQL selects columns from the domain table. Joined rows may repeat
// a domain row, hence DISTINCT as soon as a join is present.
func buildFetchSQL(f feed.Fetch, columns []string) (string, []interface{}, error) {
	table, err := identifier(string(f.Domain))
	if err != nil {
		return "", nil, err
	}
	if f.Window.Limit < 0 || f.Window.Offset < 0 {
		return "", nil, fmt.Errorf("%w: limit %d offset %d", errInvalidWindow, f.Window.Limit, f.Window.Offset)
	}

	builder := sq.Select(columns...).From(table)
	if len(f.Joins) > 0 {
		builder = builder.Distinct()
	}
	for _, j := range f.Joins {
		joinTable, err := identifier(j.Table)
		if err != nil {
			return "", nil, err
		}
		alias, err := identifier(j.Alias)
		if err != nil {
			return "", nil, err
		}
		builder = builder.LeftJoin(fmt.Sprintf("%s AS %s ON %s", joinTable, alias, j.On), j.Args...)
	}

	if f.Predicate != nil {
		cond, err := buildPredicate(f.Predicate)
		if err != nil {
			return "", nil, err
		}
		builder = builder.Where(cond)
	}

	for _, o := range f.Order {
		col, err := column(o.Field)
		if err != nil {
			return "", nil, err
		}
		direction := "ASC"
		if o.Descending {
			direction = "DESC"
		}
		builder = builder.OrderBy(col + " " + direction)
	}

	if f.Window.Limit > 0 {
		builder = builder.Limit(uint64(f.Window.Limit))
	}
	if f.Window.Offset > 0 {
		builder = builder.Offset(uint64(f.Window.Offset))
	}

	return builder.PlaceholderFormat(sq.Dollar).ToSql()
}

// NewSearchRepository initializes search repository clients
func NewSearchRepository(c *Client) (*SearchRepository, error) {
	if c == nil {
		return nil, errNilPostgresClient
	}
	return &SearchRepository{
		client: c,
	}, nil
}
