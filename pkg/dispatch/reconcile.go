package dispatch

import (
	"context"
	"fmt"
	"slices"

	"github.com/kasuboski/dvrdispatch/pkg/logger"
	"github.com/kasuboski/dvrdispatch/pkg/sonarr"
)

// SeasonEpisodeReconciler sets season and episode monitoring so the DVR tracks exactly what was requested
type SeasonEpisodeReconciler struct {
	client PrimaryDVRClient
	policy RetryPolicy
}

func NewSeasonEpisodeReconciler(client PrimaryDVRClient, policy RetryPolicy) SeasonEpisodeReconciler {
	return SeasonEpisodeReconciler{client: client, policy: policy}
}

// Reconciliation is what a reconcile pass changed
type Reconciliation struct {
	Series *sonarr.Series
	// Episodes is the episode list as fetched before any monitoring changes
	Episodes []sonarr.Episode
	// Monitored holds the episodes switched to monitored, by season
	Monitored map[int][]int64
	// Flipped holds the seasons whose monitored flag was switched on
	Flipped map[int]bool
	// Skipped holds requested seasons that never showed up on the DVR
	Skipped map[int]bool
}

func (r SeasonEpisodeReconciler) Reconcile(ctx context.Context, request ShowRequest, series *sonarr.Series, tags []int) (*Reconciliation, error) {
	log := logger.FromCtx(ctx, "series_id", series.ID)

	rec := &Reconciliation{
		Monitored: make(map[int][]int64),
		Flipped:   make(map[int]bool),
		Skipped:   make(map[int]bool),
	}

	var err error
	for _, season := range request.Seasons {
		var found bool
		series, found, err = r.waitForSeason(ctx, series, season.SeasonNumber)
		if err != nil {
			return nil, err
		}
		if !found {
			log.Warnw("season never appeared, skipping it", "season", season.SeasonNumber)
			rec.Skipped[season.SeasonNumber] = true
		}
	}

	if len(tags) > 0 {
		merged, added := mergeTags(series.Tags, tags)
		if added {
			series.Tags = merged
			series, err = r.client.UpdateSeries(ctx, *series)
			if err != nil {
				return nil, fmt.Errorf("failed to update series tags: %w", err)
			}
			log.Debugw("updated series tags", "tags", merged)
		}
	}

	if request.IsAnime() && series.SeriesType != sonarr.SeriesTypeAnime {
		series.SeriesType = sonarr.SeriesTypeAnime
		series, err = r.client.UpdateSeries(ctx, *series)
		if err != nil {
			return nil, fmt.Errorf("failed to update series type: %w", err)
		}
	}

	episodes, err := poll(ctx, r.policy.EpisodePollInterval, r.policy.EpisodePollTimeout, ErrEpisodesNotReady,
		func(ctx context.Context) ([]sonarr.Episode, bool, error) {
			eps, err := r.client.ListEpisodes(ctx, series.ID)
			return eps, len(eps) > 0, err
		})
	if err != nil {
		return nil, fmt.Errorf("failed to list episodes for series %d: %w", series.ID, err)
	}
	rec.Episodes = episodes

	type key struct{ season, episode int }
	byNumber := make(map[key]sonarr.Episode, len(episodes))
	for _, e := range episodes {
		byNumber[key{e.SeasonNumber, e.EpisodeNumber}] = e
	}

	// a season about to be flipped gets all of its episodes unmonitored below,
	// so its requested episodes are monitored again even if they already were
	var toMonitor []int64
	for _, season := range request.Seasons {
		if rec.Skipped[season.SeasonNumber] {
			continue
		}

		s, _ := series.Season(season.SeasonNumber)
		flipping := s != nil && !s.Monitored
		for _, number := range season.Episodes {
			e, ok := byNumber[key{season.SeasonNumber, number}]
			if !ok || (e.Monitored && !flipping) || slices.Contains(toMonitor, e.ID) {
				continue
			}
			toMonitor = append(toMonitor, e.ID)
			rec.Monitored[season.SeasonNumber] = append(rec.Monitored[season.SeasonNumber], e.ID)
		}
	}

	for _, season := range request.Seasons {
		if rec.Skipped[season.SeasonNumber] {
			continue
		}

		s, ok := series.Season(season.SeasonNumber)
		if !ok || s.Monitored {
			continue
		}

		s.Monitored = true
		series, err = r.client.UpdateSeries(ctx, *series)
		if err != nil {
			return nil, fmt.Errorf("failed to monitor season %d: %w", season.SeasonNumber, err)
		}
		rec.Flipped[season.SeasonNumber] = true

		// monitoring the season monitored every episode in it
		unmonitor := unmonitorSeason(episodes, season.SeasonNumber)
		if len(unmonitor) > 0 {
			err = r.client.SetEpisodesMonitored(ctx, unmonitor, false)
			if err != nil {
				return nil, fmt.Errorf("failed to unmonitor season %d: %w", season.SeasonNumber, err)
			}
		}
		log.Debugw("monitored season", "season", season.SeasonNumber, "unmonitored", len(unmonitor))
	}

	if len(toMonitor) > 0 {
		err = r.client.SetEpisodesMonitored(ctx, toMonitor, true)
		if err != nil {
			return nil, fmt.Errorf("failed to monitor episodes: %w", err)
		}
		log.Debugw("monitored episodes", "count", len(toMonitor))
	}

	rec.Series = series
	return rec, nil
}

// waitForSeason re-fetches the series until it lists the season or the retries run out
func (r SeasonEpisodeReconciler) waitForSeason(ctx context.Context, series *sonarr.Series, number int) (*sonarr.Series, bool, error) {
	if _, ok := series.Season(number); ok {
		return series, true, nil
	}

	log := logger.FromCtx(ctx)
	log.Debugw("season not found yet, waiting for metadata", "season", number)
	if err := sleep(ctx, r.policy.SeasonDelay); err != nil {
		return series, false, err
	}

	current := series
	_, found, err := find(ctx, r.policy.SeasonAttempts, r.policy.SeasonDelay, func(ctx context.Context) (*sonarr.Series, bool, error) {
		s, err := r.client.GetSeriesByID(ctx, series.ID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to get series %d: %w", series.ID, err)
		}
		current = s

		_, ok := s.Season(number)
		return s, ok, nil
	})

	return current, found, err
}

// unmonitorSeason returns the ids of every episode in the season, working on a copy of the list
func unmonitorSeason(episodes []sonarr.Episode, season int) []int64 {
	working := slices.Clone(episodes)

	var ids []int64
	for i := range working {
		if working[i].SeasonNumber != season {
			continue
		}
		working[i].Monitored = false
		ids = append(ids, working[i].ID)
	}

	return ids
}
