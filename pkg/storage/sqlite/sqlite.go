package sqlite

import (
	"context"
	"database/sql"
	"sync"

	"github.com/kasuboski/dvrdispatch/pkg/logger"
	"github.com/kasuboski/dvrdispatch/pkg/storage"
	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
	mu sync.Mutex
}

// New creates a new sqlite database given a path to the database file.
// Migrations are not applied until RunMigrations is called.
func New(ctx context.Context, filePath string) (storage.Storage, error) {
	log := logger.FromCtx(ctx)

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}

	// a single connection keeps :memory: databases shared and serializes writers
	db.SetMaxOpenConns(1)

	log.Debugw("opened sqlite database", "path", filePath)
	return &SQLite{
		db: db,
	}, nil
}

// RunMigrations applies any pending schema migrations
func (s *SQLite) RunMigrations(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return migrateUp(ctx, s.db)
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
