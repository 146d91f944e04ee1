package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
	"go.nhat.io/otelsql"
	semconv "go.opentelemetry.io/otel/semconv/v1.20.0"
)

//go:embed migrations/*.sql
var fs embed.FS

const driverName = "pgx"

// Client is a wrapper over sqlx
type Client struct {
	db *sqlx.DB
}

func (c *Client) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return c.db.GetContext(ctx, dest, query, args...)
}

func (c *Client) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return c.db.SelectContext(ctx, dest, query, args...)
}

func (c *Client) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return c.db.ExecContext(ctx, query, args...)
}

func (c *Client) RunWithinTx(ctx context.Context, f func(tx *sqlx.Tx) error) error {
	tx, err := c.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	if err := f(tx); err != nil {
		if txErr := tx.Rollback(); txErr != nil {
			return fmt.Errorf("rollback transaction error: %v (original error: %w)", txErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Migrate applies every pending migration and returns the resulting version
func (c *Client) Migrate() (ver uint, err error) {
	m, err := c.initMigration()
	if err != nil {
		return 0, fmt.Errorf("migration failed: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("migration failed: %w", err)
	}
	if ver, _, err = m.Version(); err != nil {
		return ver, err
	}
	return ver, nil
}

// MigrateDown reverts the latest migration
func (c *Client) MigrateDown() (ver uint, err error) {
	m, err := c.initMigration()
	if err != nil {
		return 0, fmt.Errorf("migration failed: %w", err)
	}
	if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("migration failed: %w", err)
	}
	if ver, _, err = m.Version(); err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return 0, nil
		}
		return ver, err
	}
	return ver, nil
}

// ExecQueries runs the queries in order within a single transaction
func (c *Client) ExecQueries(ctx context.Context, queries []string) error {
	return c.RunWithinTx(ctx, func(tx *sqlx.Tx) error {
		for _, query := range queries {
			if _, err := tx.ExecContext(ctx, query); err != nil {
				return fmt.Errorf("exec %q: %w", query, err)
			}
		}
		return nil
	})
}

func (c *Client) Close() error {
	return c.db.Close()
}

func (c *Client) initMigration() (*migrate.Migrate, error) {
	iofsDriver, err := iofs.New(fs, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open migration source: %w", err)
	}
	dbDriver, err := migratepostgres.WithInstance(c.db.DB, &migratepostgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("open migration database: %w", err)
	}
	return migrate.NewWithInstance("iofs", iofsDriver, "postgres", dbDriver)
}

// NewClient initializes a traced database connection
func NewClient(cfg Config) (*Client, error) {
	tracedDriver, err := otelsql.Register(driverName,
		otelsql.TraceQueryWithoutArgs(),
		otelsql.TraceRowsClose(),
		otelsql.TraceRowsAffected(),
		otelsql.WithSystem(semconv.DBSystemPostgreSQL),
	)
	if err != nil {
		return nil, fmt.Errorf("register traced sql driver: %w", err)
	}

	sqlDB, err := sql.Open(tracedDriver, cfg.ConnectionURL().String())
	if err != nil {
		return nil, fmt.Errorf("error creating DB: %w", err)
	}
	if sqlDB == nil {
		return nil, errNilDBClient
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("error connecting DB: %w", err)
	}
	if err := otelsql.RecordStats(sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("record sql stats: %w", err)
	}

	return NewClientWithDB(sqlDB), nil
}

// NewClientWithDB wraps an already opened database
func NewClientWithDB(db *sql.DB) *Client {
	return &Client{db: sqlx.NewDb(db, driverName)}
}

func buildSQL(builder sq.Sqlizer) (string, []interface{}, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, err
	}
	query, err = sq.Dollar.ReplacePlaceholders(query)
	if err != nil {
		return "", nil, err
	}
	return query, args, nil
}

func checkPostgresError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%w [%s]", errDuplicateKey, pgErr.Detail)
		case pgerrcode.CheckViolation:
			return fmt.Errorf("%w [%s]", errCheckViolation, pgErr.Detail)
		case pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%w [%s]", errForeignKeyViolation, pgErr.Detail)
		}
	}
	return err
}
