package feed_test

import (
	"math"
	"testing"

	"github.com/goto/gossip/core/feed"
	"github.com/stretchr/testify/assert"
)

func TestQueryBuilderLeftJoin(t *testing.T) {
	t.Run("alias defaults to the table name", func(t *testing.T) {
		qb := feed.NewQueryBuilder(feed.DomainNote)
		qb.LeftJoin(feed.Join{Table: "note_tag", On: "note_tag.note_id = note.id"})

		assert.True(t, qb.HasJoin("note_tag"))
		assert.Equal(t, []feed.Join{{Table: "note_tag", Alias: "note_tag", On: "note_tag.note_id = note.id"}}, qb.Joins())
	})

	t.Run("registering the same alias twice keeps the first join", func(t *testing.T) {
		qb := feed.NewQueryBuilder(feed.DomainNote)
		first := feed.Join{Table: "actor", Alias: "note_actor", On: "note.actor_id = note_actor.id"}
		qb.LeftJoin(first).LeftJoin(feed.Join{Table: "actor", Alias: "note_actor", On: "1 = 1"})

		assert.Equal(t, []feed.Join{first}, qb.Joins())
	})

	t.Run("the same table may be joined under different aliases", func(t *testing.T) {
		qb := feed.NewQueryBuilder(feed.DomainNote)
		qb.LeftJoin(feed.Join{Table: "actor", Alias: "a1", On: "x"})
		qb.LeftJoin(feed.Join{Table: "actor", Alias: "a2", On: "y"})

		assert.Len(t, qb.Joins(), 2)
		assert.False(t, qb.HasJoin("actor"))
	})

	t.Run("no joins yields an empty slice", func(t *testing.T) {
		qb := feed.NewQueryBuilder(feed.DomainActor)
		assert.Equal(t, feed.DomainActor, qb.Domain())
		assert.Equal(t, []feed.Join{}, qb.Joins())
	})
}

func TestPageWindow(t *testing.T) {
	type testCase struct {
		Description string
		Page        int
		PageSize    int
		Expected    feed.Window
	}

	var testCases = []testCase{
		{Description: "first page", Page: 1, PageSize: 32, Expected: feed.Window{Limit: 32, Offset: 0}},
		{Description: "third page", Page: 3, PageSize: 10, Expected: feed.Window{Limit: 10, Offset: 20}},
		{Description: "page below one is the first page", Page: 0, PageSize: 5, Expected: feed.Window{Limit: 5, Offset: 0}},
		{Description: "last representable page", Page: feed.MaxPage(32), PageSize: 32, Expected: feed.Window{Limit: 32, Offset: math.MaxInt / 32 * 32}},
		{Description: "offset saturates instead of overflowing", Page: math.MaxInt/32 + 2, PageSize: 32, Expected: feed.Window{Limit: 32, Offset: math.MaxInt}},
		{Description: "single record pages reach the largest page", Page: math.MaxInt, PageSize: 1, Expected: feed.Window{Limit: 1, Offset: math.MaxInt - 1}},
		{Description: "largest page saturates", Page: math.MaxInt, PageSize: 3, Expected: feed.Window{Limit: 3, Offset: math.MaxInt}},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			assert.Equal(t, tc.Expected, feed.PageWindow(tc.Page, tc.PageSize))
		})
	}
}

func TestDefaultOrder(t *testing.T) {
	assert.Equal(t, []feed.Order{
		{Field: feed.FieldNoteCreated, Descending: true},
		{Field: feed.FieldNoteID, Descending: true},
	}, feed.DefaultOrder(feed.DomainNote))
	assert.Equal(t, []feed.Order{
		{Field: feed.FieldActorCreated, Descending: true},
		{Field: feed.FieldActorID, Descending: true},
	}, feed.DefaultOrder(feed.DomainActor))
}
