package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/dvrdispatch/pkg/storage"
	"github.com/kasuboski/dvrdispatch/pkg/storage/sqlite/schema/gen/table"
)

// AddFault stores a new fault entry in the failed state
func (s *SQLite) AddFault(ctx context.Context, entry storage.FaultEntry) (int64, error) {
	if entry.State == "" {
		err := entry.Transition(storage.FaultStateFailed)
		if err != nil {
			return 0, err
		}
	}

	if entry.Dts.IsZero() {
		entry.Dts = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stmt := table.FaultQueue.
		INSERT(table.FaultQueue.MutableColumns).
		MODEL(entry.FaultQueue)

	result, err := stmt.ExecContext(ctx, s.db)
	if err != nil {
		return 0, fmt.Errorf("failed to add fault for request %d: %w", entry.RequestID, err)
	}

	return result.LastInsertId()
}

// FindFaultByRequestID returns the fault entry recorded for a request
func (s *SQLite) FindFaultByRequestID(ctx context.Context, requestID int64) (*storage.FaultEntry, error) {
	stmt := table.FaultQueue.
		SELECT(table.FaultQueue.AllColumns).
		FROM(table.FaultQueue).
		WHERE(table.FaultQueue.RequestID.EQ(sqlite.Int64(requestID)))

	entry := new(storage.FaultEntry)
	err := stmt.QueryContext(ctx, s.db, entry)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fault for request %d: %w", requestID, err)
	}

	return entry, nil
}

// SaveFault persists the mutable fields of an existing fault entry
func (s *SQLite) SaveFault(ctx context.Context, entry storage.FaultEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stmt := table.FaultQueue.
		UPDATE(
			table.FaultQueue.Error,
			table.FaultQueue.RetryCount,
			table.FaultQueue.Payload,
			table.FaultQueue.State,
			table.FaultQueue.Completed,
		).
		MODEL(entry.FaultQueue).
		WHERE(table.FaultQueue.ID.EQ(sqlite.Int32(entry.ID)))

	result, err := stmt.ExecContext(ctx, s.db)
	if err != nil {
		return fmt.Errorf("failed to save fault %d: %w", entry.ID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// CountFaults counts the fault entries matching every where expression
func (s *SQLite) CountFaults(ctx context.Context, where ...sqlite.BoolExpression) (int, error) {
	stmt := table.FaultQueue.
		SELECT(sqlite.COUNT(table.FaultQueue.ID)).
		FROM(table.FaultQueue)

	if len(where) > 0 {
		stmt = stmt.WHERE(sqlite.AND(where...))
	}

	query, args := stmt.Sql()

	var count int64
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count faults: %w", err)
	}

	return int(count), nil
}

// ListFaults lists fault entries oldest first. All where expressions must match.
func (s *SQLite) ListFaults(ctx context.Context, offset, limit int, where ...sqlite.BoolExpression) ([]*storage.FaultEntry, error) {
	stmt := table.FaultQueue.
		SELECT(table.FaultQueue.AllColumns).
		FROM(table.FaultQueue).
		ORDER_BY(table.FaultQueue.Dts.ASC(), table.FaultQueue.ID.ASC())

	if len(where) > 0 {
		stmt = stmt.WHERE(sqlite.AND(where...))
	}

	if limit > 0 {
		stmt = stmt.LIMIT(int64(limit)).OFFSET(int64(offset))
	}

	entries := make([]*storage.FaultEntry, 0)
	err := stmt.QueryContext(ctx, s.db, &entries)
	if err != nil {
		return nil, fmt.Errorf("failed to list faults: %w", err)
	}

	return entries, nil
}
