package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/goto/gossip/core/actor"
	handlersv1beta1 "github.com/goto/gossip/internal/server/v1beta1"
	"github.com/goto/salt/log"
)

// ActorIdentity resolves the actor named in the identity header and
// propagates it within the request context. Requests without the header stay
// anonymous; use `actor.FromContext` to get the actor.
func ActorIdentity(headerKey string, actorSvc handlersv1beta1.ActorService, logger log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := strings.TrimSpace(r.Header.Get(headerKey))
			if identity == "" {
				next.ServeHTTP(w, r)
				return
			}

			a, err := actorSvc.Identify(r.Context(), identity)
			if err != nil {
				var notFound actor.NotFoundError
				if errors.As(err, &notFound) {
					handlersv1beta1.WriteError(w, http.StatusUnauthorized, notFound.Error())
					return
				}
				handlersv1beta1.InternalServerError(w, logger, fmt.Sprintf("error identifying actor: %s", err))
				return
			}

			next.ServeHTTP(w, r.WithContext(actor.NewContext(r.Context(), a)))
		})
	}
}
