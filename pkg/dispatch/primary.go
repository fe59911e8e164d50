package dispatch

import (
	"context"

	"github.com/kasuboski/dvrdispatch/pkg/logger"
)

// PrimaryProvider sends requests to Sonarr
type PrimaryProvider struct {
	settings SettingsProvider
	factory  ClientFactory
	users    UserOverrideStore
	policy   RetryPolicy
}

func NewPrimaryProvider(settings SettingsProvider, factory ClientFactory, users UserOverrideStore, policy RetryPolicy) *PrimaryProvider {
	return &PrimaryProvider{
		settings: settings,
		factory:  factory,
		users:    users,
		policy:   policy,
	}
}

func (p *PrimaryProvider) Name() string {
	return "sonarr"
}

func (p *PrimaryProvider) Enabled(ctx context.Context) (bool, error) {
	s, err := p.settings.SonarrSettings(ctx)
	if err != nil {
		return false, err
	}
	return s.Enabled, nil
}

// Send resolves, provisions, reconciles and searches. It reports false without an api key so the secondary provider gets a chance.
func (p *PrimaryProvider) Send(ctx context.Context, request ShowRequest) (bool, error) {
	log := logger.FromCtx(ctx, "provider", p.Name())
	ctx = logger.WithCtx(ctx, log)

	settings, err := p.settings.SonarrSettings(ctx)
	if err != nil {
		return false, err
	}

	if settings.APIKey == "" {
		log.Warn("sonarr is enabled without an api key")
		return false, nil
	}

	client := p.factory.Primary(settings)

	resolved, err := NewConfigResolver(client, p.users).Resolve(ctx, settings, request)
	if err != nil {
		return false, err
	}

	series, err := NewSeriesProvisioner(client).Ensure(ctx, settings, request, resolved)
	if err != nil {
		return false, err
	}

	rec, err := NewSeasonEpisodeReconciler(client, p.policy).Reconcile(ctx, request, series, resolved.Tags)
	if err != nil {
		return false, err
	}

	if settings.AddOnly {
		log.Debug("add only, skipping search")
		return true, nil
	}

	err = NewSearchTrigger(client).Search(ctx, request, rec)
	if err != nil {
		return false, err
	}

	log.Infow("sent request", "series_id", rec.Series.ID)
	return true, nil
}
