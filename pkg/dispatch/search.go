package dispatch

import (
	"context"
	"fmt"

	"github.com/kasuboski/dvrdispatch/pkg/logger"
)

// SearchTrigger asks the DVR to search for what a reconcile pass just monitored
type SearchTrigger struct {
	client PrimaryDVRClient
}

func NewSearchTrigger(client PrimaryDVRClient) SearchTrigger {
	return SearchTrigger{client: client}
}

// Search issues a season search when the whole season was requested and an episode search otherwise.
// Seasons the reconcile pass did not change are left alone.
func (s SearchTrigger) Search(ctx context.Context, request ShowRequest, rec *Reconciliation) error {
	log := logger.FromCtx(ctx, "series_id", rec.Series.ID)

	for _, season := range request.Seasons {
		n := season.SeasonNumber
		ids := rec.Monitored[n]
		if rec.Skipped[n] || (!rec.Flipped[n] && len(ids) == 0) {
			continue
		}

		total := 0
		for _, e := range rec.Episodes {
			if e.SeasonNumber == n {
				total++
			}
		}

		if total == len(season.Episodes) {
			log.Debugw("searching season", "season", n)
			err := s.client.TriggerSeasonSearch(ctx, rec.Series.ID, n)
			if err != nil {
				return fmt.Errorf("failed to search season %d: %w", n, err)
			}
			continue
		}

		if len(ids) == 0 {
			continue
		}

		log.Debugw("searching episodes", "season", n, "episodes", len(ids))
		err := s.client.TriggerEpisodeSearch(ctx, ids)
		if err != nil {
			return fmt.Errorf("failed to search episodes in season %d: %w", n, err)
		}
	}

	return nil
}
