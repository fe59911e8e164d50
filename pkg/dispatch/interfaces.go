package dispatch

import (
	"context"

	"github.com/kasuboski/dvrdispatch/config"
	"github.com/kasuboski/dvrdispatch/pkg/sickrage"
	"github.com/kasuboski/dvrdispatch/pkg/sonarr"
	"github.com/kasuboski/dvrdispatch/pkg/storage"
	"github.com/kasuboski/dvrdispatch/pkg/storage/sqlite/schema/gen/model"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_dispatch.go github.com/kasuboski/dvrdispatch/pkg/dispatch PrimaryDVRClient,SecondaryDVRClient,SettingsProvider,UserOverrideStore,FaultQueueStore,NotificationSink,Provider,ClientFactory

// PrimaryDVRClient is the Sonarr surface the primary path needs
type PrimaryDVRClient interface {
	ListSeries(ctx context.Context) ([]sonarr.Series, error)
	GetSeriesByID(ctx context.Context, id int64) (*sonarr.Series, error)
	CreateSeries(ctx context.Context, series sonarr.Series) (*sonarr.NewSeriesResponse, error)
	UpdateSeries(ctx context.Context, series sonarr.Series) (*sonarr.Series, error)
	ListEpisodes(ctx context.Context, seriesID int64) ([]sonarr.Episode, error)
	SetEpisodesMonitored(ctx context.Context, ids []int64, monitored bool) error
	ListTags(ctx context.Context) ([]sonarr.Tag, error)
	CreateTag(ctx context.Context, label string) (*sonarr.Tag, error)
	GetRootFolders(ctx context.Context) ([]sonarr.RootFolder, error)
	TriggerSeasonSearch(ctx context.Context, seriesID int64, seasonNumber int) error
	TriggerEpisodeSearch(ctx context.Context, episodeIDs []int64) error
}

// SecondaryDVRClient is the SickRage surface the legacy path needs
type SecondaryDVRClient interface {
	GetShow(ctx context.Context, tvdbID int) (*sickrage.Response, error)
	AddSeries(ctx context.Context, tvdbID int, quality, status string) (*sickrage.Response, error)
	GetEpisodesForSeason(ctx context.Context, tvdbID, season int) (*sickrage.SeasonResponse, error)
	SetEpisodeStatus(ctx context.Context, tvdbID int, status string, season int, episode *int) (*sickrage.Response, error)
}

type SettingsProvider interface {
	SonarrSettings(ctx context.Context) (config.Sonarr, error)
	SickRageSettings(ctx context.Context) (config.SickRage, error)
}

// UserOverrideStore returns storage.ErrNotFound when a user has no overrides
type UserOverrideStore interface {
	GetUserProfile(ctx context.Context, userID string) (*model.UserProfile, error)
}

type FaultQueueStore interface {
	FindFaultByRequestID(ctx context.Context, requestID int64) (*storage.FaultEntry, error)
	AddFault(ctx context.Context, entry storage.FaultEntry) (int64, error)
	SaveFault(ctx context.Context, entry storage.FaultEntry) error
}

// NotificationSink delivers events about a request. Delivery is best effort.
type NotificationSink interface {
	Notify(ctx context.Context, request ShowRequest, kind NotificationType) error
}

// ClientFactory builds DVR clients for the current settings
type ClientFactory interface {
	Primary(settings config.Sonarr) PrimaryDVRClient
	Secondary(settings config.SickRage) SecondaryDVRClient
}

// Provider is one way of getting a request onto a DVR
type Provider interface {
	Name() string
	Enabled(ctx context.Context) (bool, error)
	// Send reports whether the provider handled the request
	Send(ctx context.Context, request ShowRequest) (bool, error)
}
