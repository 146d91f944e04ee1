package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/goto/gossip/core/actor"
)

// SubscriptionRepository manages which actors follow which
type SubscriptionRepository struct {
	client *Client
}

// Subscribe makes subscriber follow subscribed. Subscribing twice is a no-op.
func (r *SubscriptionRepository) Subscribe(ctx context.Context, subscriber, subscribed int64) error {
	if subscriber == subscribed {
		return errors.New("an actor cannot subscribe to itself")
	}
	query, args, err := buildSQL(sq.Insert("subscription").
		Columns("subscriber", "subscribed").
		Values(subscriber, subscribed).
		Suffix("ON CONFLICT DO NOTHING"))
	if err != nil {
		return fmt.Errorf("error building subscribe query: %w", err)
	}
	if _, err := r.client.ExecContext(ctx, query, args...); err != nil {
		err = checkPostgresError(err)
		if errors.Is(err, errForeignKeyViolation) {
			return actor.NotFoundError{}
		}
		return fmt.Errorf("error subscribing: %w", err)
	}
	return nil
}

// NewSubscriptionRepository initializes subscription repository clients
func NewSubscriptionRepository(c *Client) (*SubscriptionRepository, error) {
	if c == nil {
		return nil, errNilPostgresClient
	}
	return &SubscriptionRepository{
		client: c,
	}, nil
}
