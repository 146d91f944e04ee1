package note

import "time"

// Note is a post authored by an actor. Content is nil for notes that carry
// no text, e.g. media-only notes.
type Note struct {
	ID             int64     `json:"id" db:"id"`
	ActorID        int64     `json:"actor_id" db:"actor_id"`
	Content        *string   `json:"content" db:"content"`
	IsLocal        bool      `json:"is_local" db:"is_local"`
	ConversationID *int64    `json:"conversation_id,omitempty" db:"conversation_id"`
	LanguageID     *int64    `json:"language_id,omitempty" db:"language_id"`
	Created        time.Time `json:"created" db:"created"`
	Modified       time.Time `json:"modified" db:"modified"`
}

// HasText reports whether the note carries textual content
func (n Note) HasText() bool {
	return n.Content != nil
}
