package sqlite

import (
	"context"
	"fmt"

	"github.com/kasuboski/dvrdispatch/pkg/storage"
)

// GetFaultStatsByState returns fault entry counts aggregated by state in a single query
func (s *SQLite) GetFaultStatsByState(ctx context.Context) ([]storage.FaultStatsByState, error) {
	// jet does not scan aggregates into custom structs
	s.mu.Lock()
	rows, err := s.db.QueryContext(ctx, `
		SELECT state,
		       COUNT(id) AS count,
		       MAX(retry_count) AS max_retries
		FROM fault_queue
		GROUP BY state
		ORDER BY state
	`)
	s.mu.Unlock()

	if err != nil {
		return nil, fmt.Errorf("failed to get fault stats: %w", err)
	}
	defer rows.Close()

	var dest []storage.FaultStatsByState
	for rows.Next() {
		var stat storage.FaultStatsByState
		if err := rows.Scan(&stat.State, &stat.Count, &stat.MaxRetries); err != nil {
			return nil, err
		}
		dest = append(dest, stat)
	}

	return dest, rows.Err()
}
