package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/goto/gossip/core/actor"
	"github.com/goto/gossip/core/note"
)

// NoteRepository writes notes along with their tags
type NoteRepository struct {
	client *Client
}

// Create inserts a note and returns its id
func (r *NoteRepository) Create(ctx context.Context, n *note.Note) (int64, error) {
	if n == nil {
		return 0, errors.New("note is nil")
	}

	columns := []string{"actor_id", "content", "is_local", "conversation_id", "language_id"}
	values := []interface{}{n.ActorID, nullStringPtr(n.Content), n.IsLocal, nullInt64Ptr(n.ConversationID), nullInt64Ptr(n.LanguageID)}
	if !n.Created.IsZero() {
		columns = append(columns, "created", "modified")
		values = append(values, n.Created, n.Created)
	}
	query, args, err := buildSQL(sq.Insert("note").Columns(columns...).Values(values...).Suffix("RETURNING id"))
	if err != nil {
		return 0, fmt.Errorf("error building insert note query: %w", err)
	}

	var id int64
	if err := r.client.GetContext(ctx, &id, query, args...); err != nil {
		err = checkPostgresError(err)
		if errors.Is(err, errForeignKeyViolation) {
			return 0, actor.NotFoundError{ID: n.ActorID}
		}
		return 0, fmt.Errorf("error inserting note: %w", err)
	}
	return id, nil
}

// Tag attaches tags to a note, stored both as written and canonical
func (r *NoteRepository) Tag(ctx context.Context, noteID int64, tags ...string) error {
	if len(tags) == 0 {
		return nil
	}
	builder := sq.Insert("note_tag").Columns("note_id", "tag", "canonical")
	for _, tag := range tags {
		builder = builder.Values(noteID, tag, note.CanonicalTag(tag))
	}
	query, args, err := buildSQL(builder.Suffix("ON CONFLICT DO NOTHING"))
	if err != nil {
		return fmt.Errorf("error building insert note tags query: %w", err)
	}
	if _, err := r.client.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("error inserting note tags: %w", checkPostgresError(err))
	}
	return nil
}

// CreateLanguage registers locale and returns its id, reusing the existing
// row when the locale is already known
func (r *NoteRepository) CreateLanguage(ctx context.Context, locale string) (int64, error) {
	query, args, err := buildSQL(sq.Insert("language").
		Columns("locale").
		Values(locale).
		Suffix("ON CONFLICT (locale) DO UPDATE SET locale = EXCLUDED.locale RETURNING id"))
	if err != nil {
		return 0, fmt.Errorf("error building insert language query: %w", err)
	}

	var id int64
	if err := r.client.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("error inserting language: %w", err)
	}
	return id, nil
}

// NewNoteRepository initializes note repository clients
func NewNoteRepository(c *Client) (*NoteRepository, error) {
	if c == nil {
		return nil, errNilPostgresClient
	}
	return &NoteRepository{
		client: c,
	}, nil
}
