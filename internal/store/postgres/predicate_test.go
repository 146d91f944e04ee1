package postgres

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/goto/gossip/core/actor"
	"github.com/goto/gossip/core/feed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPredicate(t *testing.T) {
	type testCase struct {
		Description  string
		Predicate    feed.Predicate
		ExpectedSQL  string
		ExpectedArgs []interface{}
		ErrIs        error
	}

	var testCases = []testCase{
		{
			Description:  "equality binds the value",
			Predicate:    feed.Eq{Field: feed.FieldNoteIsLocal, Value: true},
			ExpectedSQL:  "note.is_local = ?",
			ExpectedArgs: []interface{}{true},
		},
		{
			Description: "nil equality is a null test",
			Predicate:   feed.Eq{Field: feed.FieldNoteContent, Value: nil},
			ExpectedSQL: "note.content IS NULL",
		},
		{
			Description: "nil inequality is a not null test",
			Predicate:   feed.NotEq{Field: feed.FieldNoteContent, Value: nil},
			ExpectedSQL: "note.content IS NOT NULL",
		},
		{
			Description:  "contains escapes like metacharacters",
			Predicate:    feed.Contains{Field: feed.FieldNoteContent, Text: `100%_sure\`},
			ExpectedSQL:  "note.content ILIKE ?",
			ExpectedArgs: []interface{}{`%100\%\_sure\\%`},
		},
		{
			Description:  "membership expands the values",
			Predicate:    feed.In{Field: feed.FieldNoteActorType, Values: []interface{}{actor.KindBot, actor.KindGroup}},
			ExpectedSQL:  "note_actor.type IN (?,?)",
			ExpectedArgs: []interface{}{actor.KindBot, actor.KindGroup},
		},
		{
			Description: "empty membership matches nothing",
			Predicate:   feed.In{Field: feed.FieldNoteActorType},
			ExpectedSQL: "FALSE",
		},
		{
			Description: "groups nest in parentheses",
			Predicate: feed.And{
				feed.Eq{Field: feed.FieldSubscriptionSubscriber, Value: int64(4)},
				feed.Or{
					feed.Eq{Field: feed.FieldNoteConversationID, Value: int64(1)},
					feed.Eq{Field: feed.FieldNoteContent, Value: nil},
				},
			},
			ExpectedSQL:  "(subscription.subscriber = ? AND (note.conversation_id = ? OR note.content IS NULL))",
			ExpectedArgs: []interface{}{int64(4), int64(1)},
		},
		{
			Description: "empty conjunction holds",
			Predicate:   feed.And{},
			ExpectedSQL: "TRUE",
		},
		{
			Description: "empty disjunction does not hold",
			Predicate:   feed.Or{},
			ExpectedSQL: "FALSE",
		},
		{
			Description: "unqualified field is rejected",
			Predicate:   feed.Eq{Field: "is_local", Value: true},
			ErrIs:       errInvalidIdentifier,
		},
		{
			Description: "field with sql in it is rejected",
			Predicate:   feed.And{feed.Contains{Field: "note.content; DROP TABLE note", Text: "x"}},
			ErrIs:       errInvalidIdentifier,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			cond, err := buildPredicate(tc.Predicate)
			if tc.ErrIs != nil {
				assert.True(t, errors.Is(err, tc.ErrIs), "got %v", err)
				return
			}
			require.NoError(t, err)

			query, args, err := cond.ToSql()
			require.NoError(t, err)
			assert.Equal(t, tc.ExpectedSQL, query)
			assert.Equal(t, len(tc.ExpectedArgs), len(args))
			if len(tc.ExpectedArgs) > 0 {
				assert.Equal(t, tc.ExpectedArgs, args)
			}
		})
	}
}

func TestBuildFetchSQL(t *testing.T) {
	t.Run("without joins selects plainly", func(t *testing.T) {
		query, args, err := buildFetchSQL(feed.Fetch{
			Domain:    feed.DomainActor,
			Joins:     []feed.Join{},
			Predicate: feed.Eq{Field: feed.FieldActorType, Value: int64(5)},
			Order:     feed.DefaultOrder(feed.DomainActor),
			Window:    feed.PageWindow(1, 32),
		}, actorColumns)

		require.NoError(t, err)
		assert.Equal(t, "SELECT actor.id, actor.nickname, actor.fullname, actor.type, actor.is_local, actor.created, actor.modified "+
			"FROM actor WHERE actor.type = $1 ORDER BY actor.created DESC, actor.id DESC LIMIT 32", query)
		assert.Equal(t, []interface{}{int64(5)}, args)
	})

	t.Run("joins make the select distinct and bind their args first", func(t *testing.T) {
		query, args, err := buildFetchSQL(feed.Fetch{
			Domain: feed.DomainNote,
			Joins: []feed.Join{
				{Table: "actor", Alias: "note_actor", On: "note.actor_id = note_actor.id"},
				{
					Table: "subscription",
					Alias: "subscription",
					On:    "note.actor_id = subscription.subscribed AND subscription.subscriber = ?",
					Args:  []interface{}{int64(42)},
				},
			},
			Predicate: feed.Eq{Field: feed.FieldSubscriptionSubscriber, Value: int64(42)},
			Order:     feed.DefaultOrder(feed.DomainNote),
			Window:    feed.PageWindow(3, 10),
		}, noteColumns)

		require.NoError(t, err)
		assert.Equal(t, "SELECT DISTINCT note.id, note.actor_id, note.content, note.is_local, note.conversation_id, note.language_id, note.created, note.modified "+
			"FROM note "+
			"LEFT JOIN actor AS note_actor ON note.actor_id = note_actor.id "+
			"LEFT JOIN subscription AS subscription ON note.actor_id = subscription.subscribed AND subscription.subscriber = $1 "+
			"WHERE subscription.subscriber = $2 "+
			"ORDER BY note.created DESC, note.id DESC LIMIT 10 OFFSET 20", query)
		assert.Equal(t, []interface{}{int64(42), int64(42)}, args)
	})

	t.Run("nil predicate leaves the domain unfiltered", func(t *testing.T) {
		query, _, err := buildFetchSQL(feed.Fetch{Domain: feed.DomainNote}, noteColumns)
		require.NoError(t, err)
		assert.NotContains(t, query, "WHERE")
	})

	t.Run("rejects a malformed join alias", func(t *testing.T) {
		_, _, err := buildFetchSQL(feed.Fetch{
			Domain: feed.DomainNote,
			Joins:  []feed.Join{{Table: "actor", Alias: "a; --", On: "true"}},
		}, noteColumns)
		assert.ErrorIs(t, err, errInvalidIdentifier)
	})

	t.Run("rejects a malformed order field", func(t *testing.T) {
		_, _, err := buildFetchSQL(feed.Fetch{
			Domain: feed.DomainNote,
			Order:  []feed.Order{{Field: "created"}},
		}, noteColumns)
		assert.ErrorIs(t, err, errInvalidIdentifier)
	})

	t.Run("rejects a negative window", func(t *testing.T) {
		for _, w := range []feed.Window{{Limit: 32, Offset: math.MinInt}, {Limit: -1}} {
			_, _, err := buildFetchSQL(feed.Fetch{Domain: feed.DomainNote, Window: w}, noteColumns)
			assert.ErrorIs(t, err, errInvalidWindow)
		}
	})

	t.Run("saturated offset is kept", func(t *testing.T) {
		query, _, err := buildFetchSQL(feed.Fetch{Domain: feed.DomainNote, Window: feed.PageWindow(math.MaxInt, 32)}, noteColumns)
		require.NoError(t, err)
		assert.Contains(t, query, fmt.Sprintf("LIMIT 32 OFFSET %d", math.MaxInt))
	})
}
