package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/gossip/core/actor"
	"github.com/goto/gossip/core/feed"
	gossipserver "github.com/goto/gossip/internal/server"
	"github.com/goto/gossip/internal/store/postgres"
	"github.com/goto/gossip/pkg/statsd"
	"github.com/goto/gossip/pkg/telemetry"
	"github.com/goto/gossip/plugins/hashtag"
	"github.com/goto/gossip/plugins/language"
	"github.com/goto/salt/log"
	"github.com/spf13/cobra"
)

// Version of the current build. overridden by the build system.
// see "Makefile" for more information
var (
	Version string
)

func serverCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "server <command>",
		Aliases: []string{"s"},
		Short:   "Run gossip server",
		Long:    "Server management commands.",
		Example: heredoc.Doc(`
			$ gossip server start
			$ gossip server start -c ./config.yaml
			$ gossip server migrate
			$ gossip server migrate --down
		`),
	}

	cmd.AddCommand(
		serverStartCommand(cfg),
		serverMigrateCommand(cfg),
	)

	return cmd
}

func serverStartCommand(cfg *Config) *cobra.Command {
	c := &cobra.Command{
		Use:     "start",
		Short:   "Start server on default port 8080",
		Example: "gossip server start",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runServer(cmd.Context(), cfg); err != nil {
				return fmt.Errorf("run server: %w", err)
			}
			return nil
		},
	}

	return c
}

func serverMigrateCommand(cfg *Config) *cobra.Command {
	var down bool
	c := &cobra.Command{
		Use:   "migrate",
		Short: "Run storage migration",
		Example: heredoc.Doc(`
			$ gossip server migrate
			$ gossip server migrate --down
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(cfg, down)
		},
	}
	c.Flags().BoolVar(&down, "down", false, "Roll back the latest migration")

	return c
}

// services bundles what both the server and the search command run on
type services struct {
	pgClient *postgres.Client
	feed     *feed.Service
	actor    *actor.Service
}

func runServer(ctx context.Context, config *Config) error {
	logger := initLogger(config.LogLevel)
	logger.Info("gossip starting", "version", Version)

	config.Telemetry.AppVersion = Version
	cleanUpTelemetry, err := telemetry.Init(ctx, config.Telemetry, logger)
	if err != nil {
		return err
	}
	defer cleanUpTelemetry()

	statsdReporter, err := statsd.Init(logger, config.StatsD)
	if err != nil {
		return err
	}
	defer statsdReporter.Close()

	svcs, err := initServices(logger, config)
	if err != nil {
		return err
	}

	return gossipserver.Serve(
		ctx,
		config.Service,
		logger,
		svcs.pgClient,
		statsdReporter,
		svcs.feed,
		svcs.actor,
	)
}

func initServices(logger log.Logger, config *Config) (services, error) {
	pgClient, err := initPostgres(logger, config)
	if err != nil {
		return services{}, err
	}

	actorRepository, err := postgres.NewActorRepository(pgClient)
	if err != nil {
		return services{}, fmt.Errorf("create new actor repository: %w", err)
	}
	searchRepository, err := postgres.NewSearchRepository(pgClient)
	if err != nil {
		return services{}, fmt.Errorf("create new search repository: %w", err)
	}

	registry, err := newRegistry()
	if err != nil {
		return services{}, err
	}
	logger.Info("search extensions registered", "extensions", registry.Names())

	return services{
		pgClient: pgClient,
		feed:     feed.NewService(logger, searchRepository, registry, config.Service.Search.PageSize),
		actor:    actor.NewService(logger, actorRepository),
	}, nil
}

func newRegistry() (*feed.Registry, error) {
	exts := append(feed.DefaultExtensions(), hashtag.Extension(), language.Extension())
	registry, err := feed.NewRegistry(exts...)
	if err != nil {
		return nil, fmt.Errorf("register search extensions: %w", err)
	}
	return registry, nil
}

func initLogger(logLevel string) *log.Logrus {
	logger := log.NewLogrus(
		log.LogrusWithLevel(logLevel),
		log.LogrusWithWriter(os.Stdout),
	)
	return logger
}

func initPostgres(logger log.Logger, config *Config) (*postgres.Client, error) {
	pgClient, err := postgres.NewClient(config.DB)
	if err != nil {
		return nil, fmt.Errorf("error creating postgres client: %w", err)
	}
	logger.Info("connected to postgres server", "host", config.DB.Host, "port", config.DB.Port)

	return pgClient, nil
}

func runMigrations(config *Config, down bool) error {
	fmt.Println("Preparing migration...")

	logger := initLogger(config.LogLevel)
	logger.Info("gossip is migrating", "version", Version)

	logger.Info("Migrating Postgres...")
	if err := migratePostgres(logger, config, down); err != nil {
		return err
	}
	logger.Info("Migration Postgres done.")

	return nil
}

func migratePostgres(logger log.Logger, config *Config, down bool) (err error) {
	logger.Info("Initiating Postgres client...")

	pgClient, err := postgres.NewClient(config.DB)
	if err != nil {
		logger.Error("failed to prepare migration", "error", err)
		return err
	}
	defer func() {
		if cerr := pgClient.Close(); cerr != nil {
			logger.Warn("error closing postgres client", "err", cerr)
		}
	}()

	migrate := pgClient.Migrate
	if down {
		migrate = pgClient.MigrateDown
	}
	ver, err := migrate()
	if err != nil {
		return fmt.Errorf("problem with migration %w", err)
	}
	logger.Info("postgres schema version", "version", ver)

	return nil
}
