package storage

import (
	"context"
)

// StatisticsStorage interface for aggregate queries over the fault queue
type StatisticsStorage interface {
	GetFaultStatsByState(ctx context.Context) ([]FaultStatsByState, error)
}

type FaultStatsByState struct {
	State      FaultState `json:"state"`
	Count      int        `json:"count"`
	MaxRetries int        `json:"maxRetries"`
}

// FaultStats summarizes the fault queue
type FaultStats struct {
	Total   int                `json:"total"`
	ByState map[FaultState]int `json:"byState"`
	// MaxRetries is the highest retry count of any open entry
	MaxRetries int `json:"maxRetries"`
}

// NewFaultStats folds per state rows into a summary
func NewFaultStats(rows []FaultStatsByState) FaultStats {
	stats := FaultStats{ByState: make(map[FaultState]int)}
	for _, r := range rows {
		stats.Total += r.Count
		stats.ByState[r.State] = r.Count
		if r.State == FaultStateFailed {
			stats.MaxRetries = r.MaxRetries
		}
	}
	return stats
}
