package actor

//go:generate mockery --name=Repository -r --case underscore --with-expecter --structname ActorRepository --filename actor_repository.go --output=./mocks
import (
	"context"
	"time"
)

// Actor is an account able to author notes: a person, a group, a bot...
type Actor struct {
	ID       int64     `json:"id" db:"id"`
	Nickname string    `json:"nickname" db:"nickname"`
	FullName string    `json:"fullname,omitempty" db:"fullname"`
	Kind     Kind      `json:"type" db:"type"`
	IsLocal  bool      `json:"is_local" db:"is_local"`
	Created  time.Time `json:"created" db:"created"`
	Modified time.Time `json:"modified" db:"modified"`
}

// IsZero reports whether a is the empty actor, i.e. no actor at all
func (a Actor) IsZero() bool {
	return a.ID == 0
}

// Repository contains interface of supported methods
type Repository interface {
	GetByID(ctx context.Context, id int64) (Actor, error)
	GetByNickname(ctx context.Context, nickname string) (Actor, error)
}
