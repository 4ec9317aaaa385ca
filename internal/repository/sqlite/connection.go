// Package sqlite implements the repository on an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/dacaceros97/mentorias-backend/config"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// SQLite wraps a database/sql handle on the modernc driver.
type SQLite struct {
	log    *zap.SugaredLogger
	db     *sql.DB
	path   string
	policy string
}

// New creates a SQLite repository instance.
func New(log *zap.SugaredLogger, cfg *config.Config) *SQLite {
	return &SQLite{
		log:    log.Named("repo.sqlite"),
		path:   cfg.SQLite.Path,
		policy: cfg.Assignment.Policy,
	}
}

// OnStart opens the database and applies embedded migrations.
func (s *SQLite) OnStart(ctx context.Context) error {
	db, err := sql.Open("sqlite", dsn(s.path))
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("ping sqlite: %w", err)
	}

	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("migrations fs: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("migrate provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("migrate: %w", err)
	}

	s.db = db
	s.log.Infow("sqlite ready", "path", s.path, "migrations_applied", len(results))
	return nil
}

// OnStop closes the database handle.
func (s *SQLite) OnStop(_ context.Context) error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Ping checks that the database handle is usable.
func (s *SQLite) Ping(ctx context.Context) error {
	if s.db == nil {
		return errors.New("sqlite not started")
	}
	return s.db.PingContext(ctx)
}

func dsn(path string) string {
	const pragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	if path == ":memory:" {
		return "file::memory:?" + pragmas
	}
	if strings.Contains(path, "?") {
		return "file:" + path + "&" + pragmas
	}
	return "file:" + path + "?" + pragmas
}
