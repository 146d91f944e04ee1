package postgres_test

import (
	"context"
	"testing"

	"github.com/goto/gossip/core/actor"
	"github.com/goto/gossip/internal/store/postgres"
	"github.com/goto/salt/log"
	"github.com/stretchr/testify/suite"
)

type ActorRepositoryTestSuite struct {
	suite.Suite
	ctx        context.Context
	client     *postgres.Client
	repository *postgres.ActorRepository
}

func (r *ActorRepositoryTestSuite) SetupSuite() {
	var err error

	logger := log.NewNoop()
	r.client, err = newTestClient(r.T(), logger)
	if err != nil {
		r.T().Fatal(err)
	}

	r.ctx = context.TODO()
	r.repository, err = postgres.NewActorRepository(r.client)
	if err != nil {
		r.T().Fatal(err)
	}
}

func (r *ActorRepositoryTestSuite) TestCreate() {
	r.Run("return id if successfully create actor", func() {
		id, err := r.repository.Create(r.ctx, &actor.Actor{Nickname: "created", Kind: actor.KindBusiness})
		r.NoError(err)
		r.NotZero(id)
	})

	r.Run("return ErrNoActorInformation if actor is nil", func() {
		id, err := r.repository.Create(r.ctx, nil)
		r.ErrorIs(err, actor.ErrNoActorInformation)
		r.Zero(id)
	})

	r.Run("return DuplicateRecordError if nickname is taken", func() {
		_, err := r.repository.Create(r.ctx, &actor.Actor{Nickname: "twice"})
		r.NoError(err)

		id, err := r.repository.Create(r.ctx, &actor.Actor{Nickname: "twice"})
		r.ErrorAs(err, new(actor.DuplicateRecordError))
		r.Zero(id)
	})
}

func (r *ActorRepositoryTestSuite) TestGet() {
	created, err := createActor(r.repository, "getme", actor.KindOrganization, 5)
	r.Require().NoError(err)

	r.Run("get by id", func() {
		a, err := r.repository.GetByID(r.ctx, created.ID)
		r.NoError(err)
		r.Equal("getme", a.Nickname)
		r.Equal(actor.KindOrganization, a.Kind)
		r.True(a.Created.Equal(created.Created))
	})

	r.Run("get by nickname", func() {
		a, err := r.repository.GetByNickname(r.ctx, "getme")
		r.NoError(err)
		r.Equal(created.ID, a.ID)
	})

	r.Run("return NotFoundError for unknown actors", func() {
		_, err := r.repository.GetByID(r.ctx, 999999)
		r.ErrorIs(err, actor.NotFoundError{ID: 999999})

		_, err = r.repository.GetByNickname(r.ctx, "nobody")
		r.ErrorIs(err, actor.NotFoundError{Nickname: "nobody"})
	})
}

func TestActorRepository(t *testing.T) {
	suite.Run(t, &ActorRepositoryTestSuite{})
}
