package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/goto/gossip/internal/store/postgres"
	"github.com/goto/salt/log"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	logLevelDebug = "debug"

	pgImage     = "postgres"
	pgImageTag  = "14-alpine"
	pgExpirySec = 180
)

// RunTestPG starts a disposable postgres container and returns the config
// to reach it. The container is purged when t finishes.
func RunTestPG(t *testing.T, logger log.Logger) (postgres.Config, error) {
	t.Helper()

	cfg := postgres.Config{
		Host:     "localhost",
		Name:     "gossip_test",
		User:     "gossip",
		Password: "gossip_pass",
		SSLMode:  "disable",
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		return cfg, fmt.Errorf("new test PG: create dockertest pool: %w", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: pgImage,
		Tag:        pgImageTag,
		Env: []string{
			"POSTGRES_PASSWORD=" + cfg.Password,
			"POSTGRES_USER=" + cfg.User,
			"POSTGRES_DB=" + cfg.Name,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return cfg, fmt.Errorf("new test PG: start resource: %w", err)
	}
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Errorf("purge test PG: %s", err)
		}
	})

	cfg.Port, err = strconv.Atoi(resource.GetPort("5432/tcp"))
	if err != nil {
		return cfg, fmt.Errorf("new test PG: parse external port of container to int: %w", err)
	}

	if logger.Level() == logLevelDebug {
		if err := attachLogs(pool, resource, logger); err != nil {
			return cfg, err
		}
	}

	if err := resource.Expire(pgExpirySec); err != nil {
		return cfg, err
	}

	pool.MaxWait = 60 * time.Second
	if err := pool.Retry(func() error {
		db, err := sql.Open("pgx", cfg.ConnectionURL().String())
		if err != nil {
			return err
		}
		defer db.Close()

		return db.Ping()
	}); err != nil {
		return cfg, fmt.Errorf("could not connect to docker: %w", err)
	}

	return cfg, nil
}

// attachLogs streams the container output into the logger until it stops
func attachLogs(pool *dockertest.Pool, resource *dockertest.Resource, logger log.Logger) error {
	logWaiter, err := pool.Client.AttachToContainerNonBlocking(docker.AttachToContainerOptions{
		Container:    resource.Container.ID,
		OutputStream: logger.Writer(),
		ErrorStream:  logger.Writer(),
		Stderr:       true,
		Stdout:       true,
		Stream:       true,
	})
	if err != nil {
		return fmt.Errorf("new test PG: connect to postgres container log output: %w", err)
	}
	go func() {
		if err := logWaiter.Wait(); err != nil {
			logger.Error("could not wait for container log to close", "error", err)
		}
	}()
	return nil
}

// NewPGClient starts a container, connects to it and applies every
// migration on a fresh schema
func NewPGClient(t *testing.T, logger log.Logger) (*postgres.Client, error) {
	t.Helper()

	cfg, err := RunTestPG(t, logger)
	if err != nil {
		return nil, err
	}

	pgClient, err := postgres.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	t.Cleanup(func() {
		if err := pgClient.Close(); err != nil {
			t.Errorf("close test PG client: %s", err)
		}
	})

	if err := RunMigrationsWithClient(t, pgClient); err != nil {
		return nil, err
	}
	return pgClient, nil
}

// RunMigrationsWithClient resets the public schema and migrates it up
func RunMigrationsWithClient(t *testing.T, pgClient *postgres.Client) error {
	t.Helper()

	queries := []string{
		"DROP SCHEMA public CASCADE",
		"CREATE SCHEMA public",
	}
	if err := pgClient.ExecQueries(context.Background(), queries); err != nil {
		return err
	}

	_, err := pgClient.Migrate()
	return err
}
