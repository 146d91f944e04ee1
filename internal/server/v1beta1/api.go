package handlersv1beta1

//go:generate mockery --name=FeedService -r --case underscore --with-expecter --structname FeedService --filename feed_service.go --output=./mocks
//go:generate mockery --name=ActorService -r --case underscore --with-expecter --structname ActorService --filename actor_service.go --output=./mocks
import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/goto/gossip/core/actor"
	"github.com/goto/gossip/core/feed"
	"github.com/goto/salt/log"
)

type FeedService interface {
	Search(ctx context.Context, q feed.Query) (feed.SearchResult, error)
}

type ActorService interface {
	Identify(ctx context.Context, identity string) (actor.Actor, error)
}

type APIServer struct {
	feedService FeedService
	logger      log.Logger
}

// ErrorResponse is the body of every non 2xx response
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewAPIServer(logger log.Logger, feedService FeedService) *APIServer {
	return &APIServer{
		feedService: feedService,
		logger:      logger,
	}
}

// Ping reports the server is able to serve requests
func (server *APIServer) Ping(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "SERVING"})
}

// WriteJSON writes v as the JSON response body
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes an ErrorResponse carrying msg
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, ErrorResponse{Code: status, Message: msg})
}

// InternalServerError logs msg under a reference the client can report and
// answers with a generic 500 carrying that reference
func InternalServerError(w http.ResponseWriter, logger log.Logger, msg string) {
	ref := time.Now().Unix()

	logger.Error(msg, "ref", ref)
	WriteError(w, http.StatusInternalServerError, fmt.Sprintf(
		"%s - ref (%d)",
		http.StatusText(http.StatusInternalServerError),
		ref,
	))
}
