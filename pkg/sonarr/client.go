package sonarr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strconv"

	"github.com/kasuboski/dvrdispatch/pkg/logger"
	"golift.io/starr"
	starrsonarr "golift.io/starr/sonarr"
)

const apiVersion = "v3"

// Client adapts the starr Sonarr client to the calls the dispatcher makes
type Client struct {
	api *starrsonarr.Sonarr
}

// NewClient builds a client for the Sonarr instance at scheme://host
func NewClient(client *http.Client, scheme, host, apiKey string) *Client {
	if scheme == "" {
		scheme = "https"
	}

	return &Client{
		api: starrsonarr.New(&starr.Config{
			URL:    scheme + "://" + host,
			APIKey: apiKey,
			Client: client,
		}),
	}
}

// ListSeries lists every series Sonarr knows about
func (c *Client) ListSeries(ctx context.Context) ([]Series, error) {
	all, err := c.api.GetAllSeriesContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list series: %w", err)
	}

	series := make([]Series, 0, len(all))
	for _, s := range all {
		series = append(series, fromSeries(s))
	}
	return series, nil
}

func (c *Client) GetSeriesByID(ctx context.Context, id int64) (*Series, error) {
	s, err := c.api.GetSeriesByIDContext(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get series %d: %w", id, err)
	}

	series := fromSeries(s)
	return &series, nil
}

// CreateSeries adds a new series. A 400 carrying validation failures is reported through ErrorMessages, not as an error.
func (c *Client) CreateSeries(ctx context.Context, series Series) (*NewSeriesResponse, error) {
	body, err := json.Marshal(series)
	if err != nil {
		return nil, err
	}

	var created starrsonarr.Series
	err = c.api.PostInto(ctx, starr.Request{URI: path.Join(apiVersion, "series"), Body: bytes.NewReader(body)}, &created)

	var reqErr *starr.ReqError
	if errors.As(err, &reqErr) && reqErr.Code == http.StatusBadRequest {
		var failures []validationFailure
		if jsonErr := json.Unmarshal(reqErr.Body, &failures); jsonErr != nil || len(failures) == 0 {
			return nil, err
		}

		resp := &NewSeriesResponse{}
		for _, f := range failures {
			resp.ErrorMessages = append(resp.ErrorMessages, f.ErrorMessage)
		}
		return resp, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create series %q: %w", series.Title, err)
	}

	return &NewSeriesResponse{ID: created.ID}, nil
}

// UpdateSeries writes the monitored flags, series type and tags of series back to Sonarr.
// The current resource is read first and only those fields are replaced, so
// everything else Sonarr stores on the series is sent back unchanged.
func (c *Client) UpdateSeries(ctx context.Context, series Series) (*Series, error) {
	uri := path.Join(apiVersion, "series", strconv.FormatInt(series.ID, 10))

	var current map[string]json.RawMessage
	err := c.api.GetInto(ctx, starr.Request{URI: uri}, &current)
	if err != nil {
		return nil, fmt.Errorf("failed to read series %d: %w", series.ID, err)
	}

	merged, err := overlay(current, series)
	if err != nil {
		return nil, fmt.Errorf("failed to merge series %d: %w", series.ID, err)
	}

	body, err := json.Marshal(merged)
	if err != nil {
		return nil, err
	}

	var updated starrsonarr.Series
	err = c.api.PutInto(ctx, starr.Request{URI: uri, Body: bytes.NewReader(body)}, &updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update series %d: %w", series.ID, err)
	}

	out := fromSeries(&updated)
	return &out, nil
}

func (c *Client) ListEpisodes(ctx context.Context, seriesID int64) ([]Episode, error) {
	all, err := c.api.GetSeriesEpisodesContext(ctx, seriesID)
	if err != nil {
		return nil, fmt.Errorf("failed to list episodes of series %d: %w", seriesID, err)
	}

	episodes := make([]Episode, 0, len(all))
	for _, e := range all {
		episodes = append(episodes, Episode{
			ID:            e.ID,
			SeriesID:      e.SeriesID,
			SeasonNumber:  int(e.SeasonNumber),
			EpisodeNumber: int(e.EpisodeNumber),
			Title:         e.Title,
			HasFile:       e.HasFile,
			Monitored:     e.Monitored,
		})
	}
	return episodes, nil
}

func (c *Client) SetEpisodesMonitored(ctx context.Context, ids []int64, monitored bool) error {
	if len(ids) == 0 {
		return nil
	}

	logger.FromCtx(ctx).Debugw("setting episodes monitored", "episodes", ids, "monitored", monitored)
	_, err := c.api.MonitorEpisodeContext(ctx, ids, monitored)
	if err != nil {
		return fmt.Errorf("failed to set %d episodes monitored=%t: %w", len(ids), monitored, err)
	}
	return nil
}

func (c *Client) ListTags(ctx context.Context) ([]Tag, error) {
	all, err := c.api.GetTagsContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	tags := make([]Tag, 0, len(all))
	for _, t := range all {
		tags = append(tags, Tag{ID: int(t.ID), Label: t.Label})
	}
	return tags, nil
}

func (c *Client) CreateTag(ctx context.Context, label string) (*Tag, error) {
	created, err := c.api.AddTagContext(ctx, &starr.Tag{Label: label})
	if err != nil {
		return nil, fmt.Errorf("failed to create tag %q: %w", label, err)
	}
	return &Tag{ID: int(created.ID), Label: created.Label}, nil
}

func (c *Client) GetRootFolders(ctx context.Context) ([]RootFolder, error) {
	all, err := c.api.GetRootFoldersContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list root folders: %w", err)
	}

	folders := make([]RootFolder, 0, len(all))
	for _, f := range all {
		folders = append(folders, RootFolder{ID: int(f.ID), Path: f.Path})
	}
	return folders, nil
}

// TriggerSeasonSearch queues a SeasonSearch command.
// starr's CommandRequest has no season number so the command is posted directly.
func (c *Client) TriggerSeasonSearch(ctx context.Context, seriesID int64, seasonNumber int) error {
	body, err := json.Marshal(seasonSearch{Name: "SeasonSearch", SeriesID: seriesID, SeasonNumber: seasonNumber})
	if err != nil {
		return err
	}

	var resp starrsonarr.CommandResponse
	err = c.api.PostInto(ctx, starr.Request{URI: path.Join(apiVersion, "command"), Body: bytes.NewReader(body)}, &resp)
	if err != nil {
		return fmt.Errorf("failed to search season %d of series %d: %w", seasonNumber, seriesID, err)
	}

	logger.FromCtx(ctx).Debugw("queued season search", "series_id", seriesID, "season", seasonNumber, "command_id", resp.ID)
	return nil
}

func (c *Client) TriggerEpisodeSearch(ctx context.Context, episodeIDs []int64) error {
	if len(episodeIDs) == 0 {
		return nil
	}

	resp, err := c.api.SendCommandContext(ctx, &starrsonarr.CommandRequest{
		Name:       "EpisodeSearch",
		EpisodeIDs: episodeIDs,
	})
	if err != nil {
		return fmt.Errorf("failed to search %d episodes: %w", len(episodeIDs), err)
	}

	logger.FromCtx(ctx).Debugw("queued episode search", "episodes", episodeIDs, "command_id", resp.ID)
	return nil
}

func fromSeries(s *starrsonarr.Series) Series {
	series := Series{
		ID:                s.ID,
		Title:             s.Title,
		CleanTitle:        s.CleanTitle,
		TitleSlug:         s.TitleSlug,
		TvdbID:            int(s.TvdbID),
		ImdbID:            s.ImdbID,
		QualityProfileID:  int(s.QualityProfileID),
		LanguageProfileID: int(s.LanguageProfileID),
		RootFolderPath:    s.RootFolderPath,
		Path:              s.Path,
		SeriesType:        s.SeriesType,
		SeasonFolder:      s.SeasonFolder,
		Monitored:         s.Monitored,
		Tags:              s.Tags,
	}

	for _, season := range s.Seasons {
		series.Seasons = append(series.Seasons, Season{
			SeasonNumber: int(season.SeasonNumber),
			Monitored:    season.Monitored,
		})
	}

	return series
}
