package postgres

import (
	"database/sql"
	"time"

	"github.com/goto/gossip/core/actor"
	"github.com/goto/gossip/core/note"
)

type ActorModel struct {
	ID       int64          `db:"id"`
	Nickname string         `db:"nickname"`
	FullName sql.NullString `db:"fullname"`
	Type     int16          `db:"type"`
	IsLocal  bool           `db:"is_local"`
	Created  time.Time      `db:"created"`
	Modified time.Time      `db:"modified"`
}

func (m ActorModel) toActor() actor.Actor {
	return actor.Actor{
		ID:       m.ID,
		Nickname: m.Nickname,
		FullName: m.FullName.String,
		Kind:     actor.Kind(m.Type),
		IsLocal:  m.IsLocal,
		Created:  m.Created,
		Modified: m.Modified,
	}
}

type ActorModels []ActorModel

func (ms ActorModels) toActors() []actor.Actor {
	actors := make([]actor.Actor, 0, len(ms))
	for _, m := range ms {
		actors = append(actors, m.toActor())
	}
	return actors
}

type NoteModel struct {
	ID             int64          `db:"id"`
	ActorID        int64          `db:"actor_id"`
	Content        sql.NullString `db:"content"`
	IsLocal        bool           `db:"is_local"`
	ConversationID sql.NullInt64  `db:"conversation_id"`
	LanguageID     sql.NullInt64  `db:"language_id"`
	Created        time.Time      `db:"created"`
	Modified       time.Time      `db:"modified"`
}

func (m NoteModel) toNote() note.Note {
	n := note.Note{
		ID:       m.ID,
		ActorID:  m.ActorID,
		IsLocal:  m.IsLocal,
		Created:  m.Created,
		Modified: m.Modified,
	}
	if m.Content.Valid {
		content := m.Content.String
		n.Content = &content
	}
	if m.ConversationID.Valid {
		id := m.ConversationID.Int64
		n.ConversationID = &id
	}
	if m.LanguageID.Valid {
		id := m.LanguageID.Int64
		n.LanguageID = &id
	}
	return n
}

type NoteModels []NoteModel

func (ms NoteModels) toNotes() []note.Note {
	notes := make([]note.Note, 0, len(ms))
	for _, m := range ms {
		notes = append(notes, m.toNote())
	}
	return notes
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullStringPtr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt64Ptr(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *i, Valid: true}
}
