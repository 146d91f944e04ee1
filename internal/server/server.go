package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/goto/gossip/internal/server/middleware"
	handlersv1beta1 "github.com/goto/gossip/internal/server/v1beta1"
	"github.com/goto/gossip/internal/store/postgres"
	"github.com/goto/gossip/pkg/statsd"
	"github.com/goto/salt/log"
)

const gracePeriod = 5 * time.Second

type Config struct {
	Host string `mapstructure:"host" default:"0.0.0.0"`
	Port int    `mapstructure:"port" default:"8080"`

	// Actor Identity
	Identity IdentityConfig `mapstructure:"identity"`

	Search SearchConfig `mapstructure:"search"`
}

func (cfg Config) addr() string { return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port) }

type IdentityConfig struct {
	HeaderKeyActor string `yaml:"headerkey_actor" mapstructure:"headerkey_actor" default:"Gossip-Actor"`
}

type SearchConfig struct {
	PageSize int `yaml:"page_size" mapstructure:"page_size" default:"32"`
}

// NewHandler wires the routes and middlewares of the HTTP API
func NewHandler(
	config Config,
	logger log.Logger,
	statsdReporter middleware.StatsDClient,
	feedService handlersv1beta1.FeedService,
	actorService handlersv1beta1.ActorService,
) http.Handler {
	v1beta1Handler := handlersv1beta1.NewAPIServer(logger, feedService)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.StatsD(statsdReporter))

	r.Get("/ping", v1beta1Handler.Ping)
	r.Route("/v1beta1", func(r chi.Router) {
		r.Use(middleware.ActorIdentity(config.Identity.HeaderKeyActor, actorService, logger))
		r.Get("/search", v1beta1Handler.Search)
		r.Get("/feeds/public", v1beta1Handler.PublicFeed)
		r.Get("/feeds/home", v1beta1Handler.HomeFeed)
	})
	return r
}

// Serve listens until ctx is cancelled, then shuts down gracefully
func Serve(
	ctx context.Context,
	config Config,
	logger log.Logger,
	pgClient *postgres.Client,
	statsdReporter *statsd.Reporter,
	feedService handlersv1beta1.FeedService,
	actorService handlersv1beta1.ActorService,
) error {
	defer func() {
		if pgClient != nil {
			logger.Warn("closing db...")
			if err := pgClient.Close(); err != nil {
				logger.Error("error when closing db", "err", err)
			}
			logger.Warn("db closed...")
		}
	}()

	var reporter middleware.StatsDClient
	if statsdReporter != nil {
		reporter = statsdReporter
	}

	srv := &http.Server{
		Addr:         config.addr(),
		Handler:      NewHandler(config, logger, reporter, feedService, actorService),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "http_port", config.addr())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), gracePeriod)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("error shutting down server", "err", err)
		}
	}

	logger.Info("server stopped")
	return nil
}
