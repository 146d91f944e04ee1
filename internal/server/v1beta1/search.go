package handlersv1beta1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goto/gossip/core/actor"
	"github.com/goto/gossip/core/feed"
	"github.com/goto/gossip/core/note"
)

var errMissingActor = errors.New("this feed requires an identified actor")

type SearchResponse struct {
	Notes  []note.Note   `json:"notes"`
	Actors []actor.Actor `json:"actors"`
	Page   int           `json:"page"`
}

// Search runs the query in `q` for the optional viewer found in the request
func (server *APIServer) Search(w http.ResponseWriter, r *http.Request) {
	server.search(w, r, r.URL.Query().Get("q"))
}

// PublicFeed lists local notes
func (server *APIServer) PublicFeed(w http.ResponseWriter, r *http.Request) {
	server.search(w, r, feed.PublicFeedQuery)
}

// HomeFeed lists notes of the actors the viewer is subscribed to
func (server *APIServer) HomeFeed(w http.ResponseWriter, r *http.Request) {
	if _, ok := actor.FromContext(r.Context()); !ok {
		WriteError(w, http.StatusUnauthorized, errMissingActor.Error())
		return
	}
	server.search(w, r, feed.HomeFeedQuery)
}

func (server *APIServer) search(w http.ResponseWriter, r *http.Request, text string) {
	ctx := r.Context()

	page, err := parsePage(r.URL.Query().Get("page"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	q := feed.Query{
		Text:     strings.TrimSpace(text),
		Page:     page,
		Language: r.URL.Query().Get("lang"),
	}
	if a, ok := actor.FromContext(ctx); ok {
		q.Actor = &a
	}

	result, err := server.feedService.Search(ctx, q)
	if err != nil {
		var invalid feed.InvalidQueryError
		switch {
		case errors.As(err, &invalid):
			WriteError(w, http.StatusBadRequest, invalid.Error())
		case errors.Is(err, context.Canceled):
			server.logger.Warn("search cancelled by client", "query", q.Text)
		default:
			InternalServerError(w, server.logger, fmt.Sprintf("error searching: %s", err))
		}
		return
	}

	WriteJSON(w, http.StatusOK, SearchResponse{
		Notes:  result.Notes.Records,
		Actors: result.Actors.Records,
		Page:   page,
	})
}

// parsePage reads the 1-based page number, defaulting to the first page
func parsePage(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("page %q is not a number", raw)
	}
	return page, nil
}
