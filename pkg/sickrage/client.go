package sickrage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	mhttp "github.com/kasuboski/dvrdispatch/pkg/http"
	"github.com/kasuboski/dvrdispatch/pkg/logger"
)

const (
	StatusWanted  = "wanted"
	StatusIgnored = "ignored"

	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultFatal   = "fatal"

	MessageShowNotFound   = "Show not found"
	MessageSeasonNotFound = "Season not found"
)

// StatusError is returned when SickRage answers with a non-2xx status
type StatusError struct {
	Command    string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sickrage %s returned %d: %s", e.Command, e.StatusCode, e.Body)
}

// Response is the envelope every SickRage api command answers with
type Response struct {
	Result  string          `json:"result"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Failed reports whether the command was refused
func (r Response) Failed() bool {
	return r.Result == ResultFailure || r.Result == ResultFatal
}

type EpisodeStatus struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// SeasonResponse holds the episodes of one season keyed by episode number
type SeasonResponse struct {
	Result   string
	Message  string
	Episodes map[int]EpisodeStatus
}

// Client talks to the SickRage/SickChill api
type Client struct {
	http   mhttp.HTTPClient
	scheme string
	host   string
	apiKey string
}

func NewClient(http mhttp.HTTPClient, scheme, host, apiKey string) *Client {
	if scheme == "" {
		scheme = "http"
	}

	return &Client{
		http:   http,
		scheme: scheme,
		host:   host,
		apiKey: apiKey,
	}
}

// GetShow looks a show up by its tvdb id. A missing show is reported through Message.
func (c *Client) GetShow(ctx context.Context, tvdbID int) (*Response, error) {
	q := url.Values{}
	q.Set("tvdbid", strconv.Itoa(tvdbID))
	return c.do(ctx, "show", q)
}

func (c *Client) AddSeries(ctx context.Context, tvdbID int, quality, status string) (*Response, error) {
	q := url.Values{}
	q.Set("tvdbid", strconv.Itoa(tvdbID))
	q.Set("status", status)
	if quality != "" {
		q.Set("initial", quality)
	}
	return c.do(ctx, "show.addnew", q)
}

func (c *Client) GetEpisodesForSeason(ctx context.Context, tvdbID, season int) (*SeasonResponse, error) {
	q := url.Values{}
	q.Set("tvdbid", strconv.Itoa(tvdbID))
	q.Set("season", strconv.Itoa(season))

	resp, err := c.do(ctx, "show.seasons", q)
	if err != nil {
		return nil, err
	}

	out := &SeasonResponse{
		Result:   resp.Result,
		Message:  resp.Message,
		Episodes: make(map[int]EpisodeStatus),
	}

	// an unknown season comes back with an empty list instead of an object
	data := bytes.TrimSpace(resp.Data)
	if len(data) > 0 && data[0] == '{' {
		err = json.Unmarshal(data, &out.Episodes)
		if err != nil {
			return nil, fmt.Errorf("failed to decode season %d episodes: %w", season, err)
		}
	}

	return out, nil
}

// SetEpisodeStatus sets the status of a single episode, or of the whole season when episode is nil
func (c *Client) SetEpisodeStatus(ctx context.Context, tvdbID int, status string, season int, episode *int) (*Response, error) {
	q := url.Values{}
	q.Set("tvdbid", strconv.Itoa(tvdbID))
	q.Set("status", status)
	q.Set("season", strconv.Itoa(season))
	if episode != nil {
		q.Set("episode", strconv.Itoa(*episode))
	}
	return c.do(ctx, "episode.setstatus", q)
}

func (c *Client) do(ctx context.Context, cmd string, q url.Values) (*Response, error) {
	log := logger.FromCtx(ctx)
	if c.http == nil {
		return nil, errors.New("http client is nil")
	}

	q.Set("cmd", cmd)
	u := url.URL{
		Scheme:   c.scheme,
		Host:     c.host,
		Path:     fmt.Sprintf("/api/%s/", c.apiKey),
		RawQuery: q.Encode(),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	log.Debugw("sickrage request", "cmd", cmd)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{
			Command:    cmd,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(b)),
		}
	}

	out := new(Response)
	err = json.Unmarshal(b, out)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", cmd, err)
	}

	return out, nil
}
