package dispatch

import (
	"context"
	"fmt"
	"slices"

	"github.com/kasuboski/dvrdispatch/config"
	"github.com/kasuboski/dvrdispatch/pkg/logger"
	"github.com/kasuboski/dvrdispatch/pkg/sonarr"
)

// SeriesProvisioner finds the requested series on the primary DVR or creates it
type SeriesProvisioner struct {
	client PrimaryDVRClient
}

func NewSeriesProvisioner(client PrimaryDVRClient) SeriesProvisioner {
	return SeriesProvisioner{client: client}
}

// Ensure returns the series for the request's show. A created series may not have its seasons or episodes yet.
func (p SeriesProvisioner) Ensure(ctx context.Context, settings config.Sonarr, request ShowRequest, resolved ResolvedConfig) (*sonarr.Series, error) {
	log := logger.FromCtx(ctx, "tvdb_id", request.Show.TvDbID)

	all, err := p.client.ListSeries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list series: %w", err)
	}

	for i := range all {
		if all[i].TvdbID == request.Show.TvDbID {
			log.Debugw("series already exists", "series_id", all[i].ID)
			return &all[i], nil
		}
	}

	if resolved.RootFolderPath == "" {
		return nil, fmt.Errorf("cannot create series %q: %w", request.Show.Title, ErrRootFolderNotFound)
	}

	resp, err := p.client.CreateSeries(ctx, newSeries(settings, request, resolved))
	if err != nil {
		return nil, fmt.Errorf("failed to create series %q: %w", request.Show.Title, err)
	}
	if len(resp.ErrorMessages) > 0 {
		return nil, &ProviderRejectedError{Messages: resp.ErrorMessages}
	}

	log.Infow("created series", "series_id", resp.ID)
	series, err := p.client.GetSeriesByID(ctx, resp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get created series %d: %w", resp.ID, err)
	}

	return series, nil
}

// newSeries builds the creation payload. Every season starts unmonitored and searching is left to the reconciler.
func newSeries(settings config.Sonarr, request ShowRequest, resolved ResolvedConfig) sonarr.Series {
	seasons := make([]sonarr.Season, 0, request.Show.TotalSeasons+1)
	for i := 0; i <= request.Show.TotalSeasons; i++ {
		seasons = append(seasons, sonarr.Season{SeasonNumber: i})
	}

	tags := slices.Clone(resolved.Tags)
	if tags == nil {
		tags = []int{}
	}

	return sonarr.Series{
		Title:             request.Show.Title,
		CleanTitle:        request.Show.Title,
		TitleSlug:         request.Show.Title,
		TvdbID:            request.Show.TvDbID,
		ImdbID:            request.Show.ImdbID,
		QualityProfileID:  resolved.QualityProfileID,
		LanguageProfileID: resolved.LanguageProfileID,
		RootFolderPath:    resolved.RootFolderPath,
		SeriesType:        resolved.SeriesType,
		SeasonFolder:      settings.SeasonFolders,
		Monitored:         true,
		Seasons:           seasons,
		Tags:              tags,
		AddOptions:        &sonarr.AddOptions{},
	}
}
