package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/goto/gossip/core/actor"
)

// ActorRepository is a type that manages actor operation to the primary database
type ActorRepository struct {
	client *Client
}

// GetByID retrieves an actor given its id
func (r *ActorRepository) GetByID(ctx context.Context, id int64) (actor.Actor, error) {
	am, err := r.getWithPredicate(ctx, sq.Eq{"id": id})
	if errors.Is(err, sql.ErrNoRows) {
		return actor.Actor{}, actor.NotFoundError{ID: id}
	}
	if err != nil {
		return actor.Actor{}, err
	}
	return am.toActor(), nil
}

// GetByNickname retrieves an actor given its nickname
func (r *ActorRepository) GetByNickname(ctx context.Context, nickname string) (actor.Actor, error) {
	am, err := r.getWithPredicate(ctx, sq.Eq{"nickname": nickname})
	if errors.Is(err, sql.ErrNoRows) {
		return actor.Actor{}, actor.NotFoundError{Nickname: nickname}
	}
	if err != nil {
		return actor.Actor{}, err
	}
	return am.toActor(), nil
}

func (r *ActorRepository) getWithPredicate(ctx context.Context, pred sq.Eq) (ActorModel, error) {
	query, args, err := buildSQL(sq.Select("id", "nickname", "fullname", "type", "is_local", "created", "modified").
		From("actor").
		Where(pred))
	if err != nil {
		return ActorModel{}, fmt.Errorf("error building get actor query: %w", err)
	}

	var am ActorModel
	if err := r.client.GetContext(ctx, &am, query, args...); err != nil {
		return ActorModel{}, err
	}
	return am, nil
}

// Create inserts an actor and returns its id
func (r *ActorRepository) Create(ctx context.Context, a *actor.Actor) (int64, error) {
	if a == nil || a.Nickname == "" {
		return 0, actor.ErrNoActorInformation
	}
	kind := a.Kind
	if !kind.IsValid() {
		kind = actor.KindPerson
	}

	builder := sq.Insert("actor").
		Columns("nickname", "fullname", "type", "is_local").
		Values(a.Nickname, nullString(a.FullName), kind, a.IsLocal)
	if !a.Created.IsZero() {
		builder = sq.Insert("actor").
			Columns("nickname", "fullname", "type", "is_local", "created", "modified").
			Values(a.Nickname, nullString(a.FullName), kind, a.IsLocal, a.Created, a.Created)
	}
	query, args, err := buildSQL(builder.Suffix("RETURNING id"))
	if err != nil {
		return 0, fmt.Errorf("error building insert actor query: %w", err)
	}

	var id int64
	if err := r.client.GetContext(ctx, &id, query, args...); err != nil {
		err = checkPostgresError(err)
		if errors.Is(err, errDuplicateKey) {
			return 0, actor.DuplicateRecordError{Nickname: a.Nickname}
		}
		return 0, fmt.Errorf("error inserting actor: %w", err)
	}
	return id, nil
}

// NewActorRepository initializes actor repository clients
func NewActorRepository(c *Client) (*ActorRepository, error) {
	if c == nil {
		return nil, errNilPostgresClient
	}
	return &ActorRepository{
		client: c,
	}, nil
}
