package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/kasuboski/dvrdispatch/pkg/logger"
)

const migrationsTable = "schema_migrations"

//go:embed migrations/*.sql
var migrationFiles embed.FS

// migrateUp applies the embedded fault_queue and user_profile migrations
func migrateUp(ctx context.Context, db *sql.DB) error {
	log := logger.FromCtx(ctx)

	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("failed to read embedded migrations: %w", err)
	}

	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{
		MigrationsTable: migrationsTable,
		NoTxWrap:        true,
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		log.Debug("database schema is up to date")
		return nil
	case err != nil:
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	version, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	log.Infow("migrated database", "version", version)

	return nil
}

// MigrationVersion reports the applied schema version.
// It fails on a database RunMigrations has never touched.
func (s *SQLite) MigrationVersion(ctx context.Context) (version uint, dirty bool, err error) {
	var v sql.NullInt64
	row := s.db.QueryRowContext(ctx, `SELECT version, dirty FROM `+migrationsTable+` LIMIT 1`)
	err = row.Scan(&v, &dirty)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read schema version: %w", err)
	}

	return uint(v.Int64), dirty, nil
}
