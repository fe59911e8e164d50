package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/kasuboski/dvrdispatch/config"
	"github.com/kasuboski/dvrdispatch/pkg/dispatch"
	mhttp "github.com/kasuboski/dvrdispatch/pkg/http"
	"github.com/kasuboski/dvrdispatch/pkg/logger"
)

// New builds the sink for the notify settings. Events are always logged and also posted when a webhook is configured.
func New(cfg config.Notify, client mhttp.HTTPClient) dispatch.NotificationSink {
	sinks := []dispatch.NotificationSink{LogSink{}}
	if cfg.WebhookURL != "" {
		sinks = append(sinks, NewWebhookSink(client, cfg.WebhookURL))
	}
	return Multi(sinks)
}

// LogSink writes events to the context logger
type LogSink struct{}

func (LogSink) Notify(ctx context.Context, request dispatch.ShowRequest, kind dispatch.NotificationType) error {
	logger.FromCtx(ctx).Infow("notification",
		"type", kind,
		"request_id", request.ID,
		"title", request.Show.Title,
		"user", request.RequestedUserName,
	)
	return nil
}

// Event is the body posted to a webhook
type Event struct {
	Type              dispatch.NotificationType `json:"type"`
	RequestID         int64                     `json:"requestId"`
	Title             string                    `json:"title"`
	TvDbID            int                       `json:"tvDbId"`
	RequestedUserID   string                    `json:"requestedUserId,omitempty"`
	RequestedUserName string                    `json:"requestedUserName,omitempty"`
	Seasons           []int                     `json:"seasons"`
}

func newEvent(request dispatch.ShowRequest, kind dispatch.NotificationType) Event {
	seasons := make([]int, 0, len(request.Seasons))
	for _, s := range request.Seasons {
		seasons = append(seasons, s.SeasonNumber)
	}

	return Event{
		Type:              kind,
		RequestID:         request.ID,
		Title:             request.Show.Title,
		TvDbID:            request.Show.TvDbID,
		RequestedUserID:   request.RequestedUserID,
		RequestedUserName: request.RequestedUserName,
		Seasons:           seasons,
	}
}

// WebhookSink posts events as json
type WebhookSink struct {
	http mhttp.HTTPClient
	url  string
}

func NewWebhookSink(client mhttp.HTTPClient, url string) *WebhookSink {
	return &WebhookSink{http: client, url: url}
}

func (w *WebhookSink) Notify(ctx context.Context, request dispatch.ShowRequest, kind dispatch.NotificationType) error {
	body, err := json.Marshal(newEvent(request, kind))
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("webhook returned %d: %s", resp.StatusCode, string(b))
	}

	return nil
}

// Multi delivers to every sink and joins their errors
type Multi []dispatch.NotificationSink

func (m Multi) Notify(ctx context.Context, request dispatch.ShowRequest, kind dispatch.NotificationType) error {
	var errs []error
	for _, s := range m {
		err := s.Notify(ctx, request, kind)
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
