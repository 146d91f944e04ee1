package actor

import (
	"errors"
	"fmt"
)

var (
	ErrNoActorInformation = errors.New("no actor information")
)

type NotFoundError struct {
	ID       int64
	Nickname string
}

func (e NotFoundError) Error() string {
	cause := "could not find actor"
	if e.ID != 0 {
		cause += fmt.Sprintf(" with id \"%d\"", e.ID)
	}
	if e.Nickname != "" {
		cause += fmt.Sprintf(" with nickname \"%s\"", e.Nickname)
	}
	return cause
}

type DuplicateRecordError struct {
	Nickname string
}

func (e DuplicateRecordError) Error() string {
	return fmt.Sprintf("duplicate actor with nickname \"%s\"", e.Nickname)
}
