package feed_test

import (
	"errors"
	"testing"

	"github.com/goto/gossip/core/actor"
	"github.com/goto/gossip/core/feed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	t.Run("should keep registration order", func(t *testing.T) {
		registry, err := feed.NewRegistry(
			feed.Extension{Name: "b"},
			feed.Extension{Name: "a"},
			feed.Extension{Name: "c"},
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a", "c"}, registry.Names())
	})

	t.Run("should reject duplicate names", func(t *testing.T) {
		_, err := feed.NewRegistry(
			feed.SubscriptionExtension(),
			feed.Extension{Name: feed.SubscriptionExtensionName},
		)
		assert.Equal(t, feed.DuplicateExtensionError{Name: "subscription"}, err)
		assert.EqualError(t, err, `extension "subscription" is already registered`)
	})

	t.Run("should reject empty names", func(t *testing.T) {
		_, err := feed.NewRegistry(feed.Extension{})
		assert.True(t, errors.Is(err, feed.ErrEmptyExtensionName))
	})

	t.Run("nil registry is a registry without extensions", func(t *testing.T) {
		var registry *feed.Registry
		assert.Nil(t, registry.Names())
		assert.False(t, registry.CompileTerm(feed.TextTerm{Text: "x"}, feed.SearchContext{},
			feed.NewCriteriaSet(feed.DomainNote), feed.NewCriteriaSet(feed.DomainActor)))
		registry.BuildQuery(feed.SearchContext{}, feed.NewQueryBuilder(feed.DomainNote), feed.NewQueryBuilder(feed.DomainActor))
	})
}

func TestRegistryInvocation(t *testing.T) {
	var order []string
	record := func(name string) feed.Extension {
		return feed.Extension{
			Name: name,
			BuildQuery: func(sc feed.SearchContext, notes, actors *feed.QueryBuilder) {
				order = append(order, "build:"+name)
			},
			CompileTerm: func(term feed.Term, sc feed.SearchContext, notes, actors *feed.CriteriaSet) {
				order = append(order, "compile:"+name)
			},
		}
	}
	registry, err := feed.NewRegistry(record("first"), feed.Extension{Name: "empty"}, record("second"))
	require.NoError(t, err)

	registry.BuildQuery(feed.SearchContext{}, feed.NewQueryBuilder(feed.DomainNote), feed.NewQueryBuilder(feed.DomainActor))
	contributed := registry.CompileTerm(feed.TextTerm{Text: "x"}, feed.SearchContext{},
		feed.NewCriteriaSet(feed.DomainNote), feed.NewCriteriaSet(feed.DomainActor))

	assert.False(t, contributed)
	assert.Equal(t, []string{"build:first", "build:second", "compile:first", "compile:second"}, order)
}

func TestSubscriptionExtension(t *testing.T) {
	authorJoin := feed.Join{Table: "actor", Alias: "note_actor", On: "note.actor_id = note_actor.id"}

	t.Run("anonymous search joins the author only", func(t *testing.T) {
		notes := feed.NewQueryBuilder(feed.DomainNote)
		actors := feed.NewQueryBuilder(feed.DomainActor)
		feed.SubscriptionExtension().BuildQuery(feed.SearchContext{}, notes, actors)

		assert.Equal(t, []feed.Join{authorJoin}, notes.Joins())
		assert.Empty(t, actors.Joins())
	})

	t.Run("known viewer also joins their subscriptions", func(t *testing.T) {
		notes := feed.NewQueryBuilder(feed.DomainNote)
		actors := feed.NewQueryBuilder(feed.DomainActor)
		sc := feed.SearchContext{Actor: &actor.Actor{ID: 7}}
		feed.SubscriptionExtension().BuildQuery(sc, notes, actors)

		assert.Equal(t, []feed.Join{
			authorJoin,
			{
				Table: "subscription",
				Alias: "subscription",
				On:    "note.actor_id = subscription.subscribed AND subscription.subscriber = ?",
				Args:  []interface{}{int64(7)},
			},
		}, notes.Joins())
	})
}
