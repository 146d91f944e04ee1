package actor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goto/gossip/core/actor"
	"github.com/goto/gossip/core/actor/mocks"
	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"
)

func TestIdentify(t *testing.T) {
	alice := actor.Actor{ID: 12, Nickname: "alice", Kind: actor.KindPerson}

	type testCase struct {
		Description string
		Identity    string
		Setup       func(ctx context.Context, repo *mocks.ActorRepository)
		Expected    actor.Actor
		ExpectErr   error
	}

	var testCases = []testCase{
		{
			Description: "should return no actor error when identity is empty",
			Identity:    "  ",
			ExpectErr:   actor.ErrNoActorInformation,
		},
		{
			Description: "should look up by id when identity is numeric",
			Identity:    "12",
			Setup: func(ctx context.Context, repo *mocks.ActorRepository) {
				repo.EXPECT().GetByID(ctx, int64(12)).Return(alice, nil)
			},
			Expected: alice,
		},
		{
			Description: "should look up by nickname and strip the mention sign",
			Identity:    "@alice",
			Setup: func(ctx context.Context, repo *mocks.ActorRepository) {
				repo.EXPECT().GetByNickname(ctx, "alice").Return(alice, nil)
			},
			Expected: alice,
		},
		{
			Description: "should return not found error from repository",
			Identity:    "bob",
			Setup: func(ctx context.Context, repo *mocks.ActorRepository) {
				repo.EXPECT().GetByNickname(ctx, "bob").Return(actor.Actor{}, actor.NotFoundError{Nickname: "bob"})
			},
			ExpectErr: actor.NotFoundError{Nickname: "bob"},
		},
		{
			Description: "should return repository failure",
			Identity:    "bob",
			Setup: func(ctx context.Context, repo *mocks.ActorRepository) {
				repo.EXPECT().GetByNickname(ctx, "bob").Return(actor.Actor{}, errors.New("connection refused"))
			},
			ExpectErr: errors.New("connection refused"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			ctx := context.TODO()

			repo := mocks.NewActorRepository(t)
			if tc.Setup != nil {
				tc.Setup(ctx, repo)
			}

			svc := actor.NewService(log.NewNoop(), repo)
			got, err := svc.Identify(ctx, tc.Identity)
			assert.Equal(t, tc.ExpectErr, err)
			assert.Equal(t, tc.Expected, got)
		})
	}
}
