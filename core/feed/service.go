package feed

//go:generate mockery --name=Repository -r --case underscore --with-expecter --structname FeedRepository --filename feed_repository.go --output=./mocks
import (
	"context"
	"fmt"
	"strings"

	"github.com/goto/gossip/core/actor"
	"github.com/goto/gossip/core/note"
	"github.com/goto/gossip/core/validator"
	"github.com/goto/salt/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultPageSize = 32

	PublicFeedQuery = "note-local:true"
	HomeFeedQuery   = "note-from:subscribed"

	instrumentationName = "github.com/goto/gossip/core/feed"
)

// Repository is the data store read by searches
type Repository interface {
	FetchNotes(ctx context.Context, f Fetch) ([]note.Note, error)
	FetchActors(ctx context.Context, f Fetch) ([]actor.Actor, error)
}

// Query is a search request
type Query struct {
	Text     string       `json:"q"`
	Page     int          `json:"page" validate:"gte=1"`
	Language string       `json:"lang" validate:"omitempty,max=35,locale"`
	Actor    *actor.Actor `json:"-"`
}

// Validate will check whether fields in the query fulfills the constraint
func (q Query) Validate() error {
	return validator.ValidateStruct(q)
}

// ResultPage is one ordered page of a domain's records
type ResultPage[T any] struct {
	Domain  Domain `json:"domain"`
	Records []T    `json:"records"`
}

// SearchResult pairs the note page with the actor page
type SearchResult struct {
	Notes  ResultPage[note.Note]   `json:"notes"`
	Actors ResultPage[actor.Actor] `json:"actors"`
}

// Service runs searches: it compiles the query, lets extensions register
// joins, and fetches one page of each domain
type Service struct {
	repository Repository
	registry   *Registry
	compiler   *Compiler
	pageSize   int
	logger     log.Logger

	searchCounter metric.Int64Counter
}

// Search fetches the requested page of notes and actors matching q. Both
// fetches run concurrently; if either fails the whole search fails.
func (s *Service) Search(ctx context.Context, q Query) (result SearchResult, err error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "feed.Search")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		s.searchCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.Bool("search.anonymous", q.Actor == nil),
			attribute.Bool("operation.success", err == nil),
		))
	}()

	if err := q.Validate(); err != nil {
		return SearchResult{}, InvalidQueryError{Reason: err.Error()}
	}
	if maxPage := MaxPage(s.pageSize); q.Page > maxPage {
		return SearchResult{}, InvalidQueryError{Reason: fmt.Sprintf("page cannot be greater than %d", maxPage)}
	}
	span.SetAttributes(
		attribute.String("search.query", q.Text),
		attribute.Int("search.page", q.Page),
		attribute.Bool("search.anonymous", q.Actor == nil),
	)

	sc := SearchContext{
		Language: strings.TrimSpace(q.Language),
		Actor:    q.Actor,
		Terms:    Tokenize(q.Text),
	}
	criteria := s.compiler.Compile(q.Text, sc)
	s.logger.Debug("search compiled", "query", q.Text, "notes", criteria.Notes, "actors", criteria.Actors)

	noteQB := NewQueryBuilder(DomainNote)
	actorQB := NewQueryBuilder(DomainActor)
	s.registry.BuildQuery(sc, noteQB, actorQB)

	window := PageWindow(q.Page, s.pageSize)
	noteFetch := Fetch{
		Domain:    DomainNote,
		Joins:     noteQB.Joins(),
		Predicate: criteria.Notes,
		Order:     DefaultOrder(DomainNote),
		Window:    window,
	}
	actorFetch := Fetch{
		Domain:    DomainActor,
		Joins:     actorQB.Joins(),
		Predicate: criteria.Actors,
		Order:     DefaultOrder(DomainActor),
		Window:    window,
	}

	var (
		notes  []note.Note
		actors []actor.Actor
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		notes, err = s.repository.FetchNotes(gctx, noteFetch)
		if err != nil {
			return StoreError{Domain: DomainNote, Err: err}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		actors, err = s.repository.FetchActors(gctx, actorFetch)
		if err != nil {
			return StoreError{Domain: DomainActor, Err: err}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return SearchResult{}, ctxErr
		}
		return SearchResult{}, fmt.Errorf("search %q page %d: %w", q.Text, q.Page, err)
	}

	return merge(notes, actors, s.pageSize), nil
}

// merge packages both pages verbatim, trimming anything past the page size
func merge(notes []note.Note, actors []actor.Actor, pageSize int) SearchResult {
	if notes == nil {
		notes = []note.Note{}
	}
	if actors == nil {
		actors = []actor.Actor{}
	}
	if len(notes) > pageSize {
		notes = notes[:pageSize]
	}
	if len(actors) > pageSize {
		actors = actors[:pageSize]
	}
	return SearchResult{
		Notes:  ResultPage[note.Note]{Domain: DomainNote, Records: notes},
		Actors: ResultPage[actor.Actor]{Domain: DomainActor, Records: actors},
	}
}

// PageSize returns the number of records fetched per domain and page
func (s *Service) PageSize() int {
	return s.pageSize
}

// NewService initializes the search service. A nil registry behaves as one
// without extensions; a non positive page size falls back to the default.
func NewService(logger log.Logger, repository Repository, registry *Registry, pageSize int) *Service {
	if logger == nil {
		logger = log.NewNoop()
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	searchCounter, err := otel.Meter(instrumentationName).Int64Counter("gossip.feed.search")
	if err != nil {
		otel.Handle(err)
	}

	return &Service{
		repository: repository,
		registry:   registry,
		compiler:   NewCompiler(logger, registry),
		pageSize:   pageSize,
		logger:     logger,

		searchCounter: searchCounter,
	}
}
