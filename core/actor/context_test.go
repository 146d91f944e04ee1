package actor_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/goto/gossip/core/actor"
)

func TestContext(t *testing.T) {
	t.Run("should return passed actor if exist in context", func(t *testing.T) {
		passedActor := actor.Actor{ID: 7, Nickname: "alice", Kind: actor.KindPerson}
		actorCtx := actor.NewContext(context.Background(), passedActor)
		actual, ok := actor.FromContext(actorCtx)
		if !ok {
			t.Fatalf("expected actor to be found in context")
		}
		if !cmp.Equal(passedActor, actual) {
			t.Fatalf("actual is \"%+v\" but expected was \"%+v\"", actual, passedActor)
		}
	})

	t.Run("should return empty actor if not exist in context", func(t *testing.T) {
		actual, ok := actor.FromContext(context.Background())
		if ok || actual != (actor.Actor{}) {
			t.Fatalf("actual is \"%+v\" but expected was \"%+v\"", actual, actor.Actor{})
		}
	})

	t.Run("should treat a zero actor as absent", func(t *testing.T) {
		_, ok := actor.FromContext(actor.NewContext(context.Background(), actor.Actor{}))
		if ok {
			t.Fatalf("zero actor must not be reported as present")
		}
	})
}
