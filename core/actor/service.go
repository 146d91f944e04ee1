package actor

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/goto/salt/log"
)

// Service is a type of service that manages business process
type Service struct {
	repository Repository
	logger     log.Logger
}

// Identify resolves the actor named by an identity value, which is either a
// numeric actor id or a nickname
func (s *Service) Identify(ctx context.Context, identity string) (Actor, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return Actor{}, ErrNoActorInformation
	}

	var (
		act Actor
		err error
	)
	if id, perr := strconv.ParseInt(identity, 10, 64); perr == nil {
		act, err = s.repository.GetByID(ctx, id)
	} else {
		act, err = s.repository.GetByNickname(ctx, strings.TrimPrefix(identity, "@"))
	}
	if err != nil {
		var nf NotFoundError
		if !errors.As(err, &nf) {
			s.logger.Error("error when identifying actor", "identity", identity, "err", err)
		}
		return Actor{}, err
	}
	return act, nil
}

// NewService initializes actor service
func NewService(logger log.Logger, repository Repository) *Service {
	return &Service{
		repository: repository,
		logger:     logger,
	}
}
