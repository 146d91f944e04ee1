package actor

import (
	"context"
)

type contextKeyType struct{}

// actorContextKey is the key used for actor.FromContext and
// actor.NewContext.
var actorContextKey = contextKeyType(struct{}{})

// NewContext returns a new context.Context that carries the requesting
// actor.
func NewContext(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorContextKey, a)
}

// FromContext returns the requesting actor from the context if present, and
// ok false otherwise.
func FromContext(ctx context.Context) (Actor, bool) {
	if ctx == nil {
		return Actor{}, false
	}
	if a, ok := ctx.Value(actorContextKey).(Actor); ok && !a.IsZero() {
		return a, true
	}
	return Actor{}, false
}
