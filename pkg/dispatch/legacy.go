package dispatch

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/kasuboski/dvrdispatch/config"
	"github.com/kasuboski/dvrdispatch/pkg/logger"
	"github.com/kasuboski/dvrdispatch/pkg/sickrage"
)

// LegacyProvider sends requests to SickRage by marking episodes wanted
type LegacyProvider struct {
	settings SettingsProvider
	factory  ClientFactory
	policy   RetryPolicy
}

func NewLegacyProvider(settings SettingsProvider, factory ClientFactory, policy RetryPolicy) *LegacyProvider {
	return &LegacyProvider{
		settings: settings,
		factory:  factory,
		policy:   policy,
	}
}

func (p *LegacyProvider) Name() string {
	return "sickrage"
}

func (p *LegacyProvider) Enabled(ctx context.Context) (bool, error) {
	s, err := p.settings.SickRageSettings(ctx)
	if err != nil {
		return false, err
	}
	return s.Enabled, nil
}

// Send reports false when SickRage refused to add the show
func (p *LegacyProvider) Send(ctx context.Context, request ShowRequest) (bool, error) {
	log := logger.FromCtx(ctx, "provider", p.Name(), "tvdb_id", request.Show.TvDbID)
	ctx = logger.WithCtx(ctx, log)

	settings, err := p.settings.SickRageSettings(ctx)
	if err != nil {
		return false, err
	}

	client := p.factory.Secondary(settings)
	tvdbID := request.Show.TvDbID

	show, err := client.GetShow(ctx, tvdbID)
	if err != nil {
		return false, fmt.Errorf("failed to get show: %w", err)
	}

	if strings.EqualFold(show.Message, sickrage.MessageShowNotFound) {
		quality := legacyQuality(settings, request.Show.LegacyQuality)
		added, err := client.AddSeries(ctx, tvdbID, quality, sickrage.StatusIgnored)
		if err != nil {
			return false, fmt.Errorf("failed to add show: %w", err)
		}

		log.Debugw("added show", "result", added.Result, "message", added.Message)
		if added.Failed() {
			return false, nil
		}
	}

	for _, season := range request.Seasons {
		n := season.SeasonNumber
		episodes, found, err := find(ctx, p.policy.LegacyAttempts+1, p.policy.LegacyDelay, func(ctx context.Context) (*sickrage.SeasonResponse, bool, error) {
			resp, err := client.GetEpisodesForSeason(ctx, tvdbID, n)
			if err != nil {
				return nil, false, fmt.Errorf("failed to get season %d: %w", n, err)
			}
			return resp, !seasonMissing(resp), nil
		})
		if err != nil {
			return false, err
		}
		if !found {
			log.Warnw("could not find the season, using what was returned", "season", n, "message", episodes.Message)
		}

		if len(episodes.Episodes) == len(season.Episodes) {
			resp, err := client.SetEpisodeStatus(ctx, tvdbID, sickrage.StatusWanted, n, nil)
			if err != nil {
				return false, fmt.Errorf("failed to set season %d wanted: %w", n, err)
			}
			log.Debugw("set season wanted", "season", n, "result", resp.Result)
			continue
		}

		for _, number := range season.Episodes {
			current, ok := episodes.Episodes[number]
			if !ok || strings.EqualFold(current.Status, sickrage.StatusWanted) {
				continue
			}

			resp, err := client.SetEpisodeStatus(ctx, tvdbID, sickrage.StatusWanted, n, &number)
			if err != nil {
				return false, fmt.Errorf("failed to set episode %d of season %d wanted: %w", number, n, err)
			}
			log.Debugw("set episode wanted", "season", n, "episode", number, "result", resp.Result)
		}
	}

	return true, nil
}

// legacyQuality uses the requested quality only when SickRage is configured with it
func legacyQuality(settings config.SickRage, requested string) string {
	if requested != "" && slices.Contains(settings.Qualities, requested) {
		return requested
	}
	return settings.QualityProfile
}

func seasonMissing(resp *sickrage.SeasonResponse) bool {
	return strings.EqualFold(resp.Message, sickrage.MessageShowNotFound) ||
		(strings.EqualFold(resp.Message, sickrage.MessageSeasonNotFound) && len(resp.Episodes) == 0)
}
