package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"

	"github.com/s0up4200/tmdbkit/store/migrations"

	_ "modernc.org/sqlite"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite
const DriverName = "sqlite"

// Store is the local SQLite cache of movies and session tokens
type Store struct {
	db     *sqlx.DB
	logger zerolog.Logger

	mu       sync.Mutex
	watchers map[int]map[*watcher]struct{}
	closed   bool
	done     chan struct{}
}

// Open connects to the SQLite database at dsn and applies pending migrations.
// Use ":memory:" for a throwaway database.
func Open(ctx context.Context, dsn string, logger zerolog.Logger) (*Store, error) {
	db, err := sqlx.ConnectContext(ctx, DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	// SQLite allows a single writer; in-memory databases are per connection
	db.SetMaxOpenConns(1)

	s := New(db, logger)
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an existing connection. The schema is expected to be migrated.
func New(db *sqlx.DB, logger zerolog.Logger) *Store {
	return &Store{
		db:       db,
		logger:   logger,
		watchers: make(map[int]map[*watcher]struct{}),
		done:     make(chan struct{}),
	}
}

// Migrate applies the embedded schema migrations
func (s *Store) Migrate(ctx context.Context) error {
	goose.SetBaseFS(migrations.FS())
	goose.SetLogger(gooseLogger{s.logger})

	if err := goose.SetDialect(string(goose.DialectSQLite3)); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, s.db.DB, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// DB exposes the underlying connection
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close stops every watcher and closes the database
func (s *Store) Close() error {
	s.mu.Lock()
	if !s.closed {
		close(s.done)
	}
	s.closed = true
	for id, set := range s.watchers {
		for w := range set {
			close(w.ch)
		}
		delete(s.watchers, id)
	}
	s.mu.Unlock()

	return s.db.Close()
}

// gooseLogger routes migration output through zerolog
type gooseLogger struct {
	logger zerolog.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.logger.Debug().Msgf(format, v...)
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.logger.Fatal().Msgf(format, v...)
}
