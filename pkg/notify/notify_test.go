package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kasuboski/dvrdispatch/config"
	"github.com/kasuboski/dvrdispatch/pkg/dispatch"
	"github.com/kasuboski/dvrdispatch/pkg/dispatch/mocks"
	mhttp "github.com/kasuboski/dvrdispatch/pkg/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testRequest() dispatch.ShowRequest {
	return dispatch.ShowRequest{
		ID:                42,
		RequestedUserID:   "u1",
		RequestedUserName: "Alice",
		Show:              dispatch.Show{Title: "Andor", TvDbID: 393189, TotalSeasons: 2},
		Seasons: []dispatch.SeasonRequest{
			{SeasonNumber: 1, Episodes: []int{1}},
			{SeasonNumber: 2, Episodes: []int{1, 2}},
		},
	}
}

func TestWebhookSink(t *testing.T) {
	ctx := context.Background()

	t.Run("posts the event", func(t *testing.T) {
		var got Event
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		sink := NewWebhookSink(mhttp.NewRetryingClient(), srv.URL)
		require.NoError(t, sink.Notify(ctx, testRequest(), dispatch.ItemAddedToFaultQueue))

		assert.Equal(t, Event{
			Type:              dispatch.ItemAddedToFaultQueue,
			RequestID:         42,
			Title:             "Andor",
			TvDbID:            393189,
			RequestedUserID:   "u1",
			RequestedUserName: "Alice",
			Seasons:           []int{1, 2},
		}, got)
	})

	t.Run("error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusBadRequest)
		}))
		defer srv.Close()

		sink := NewWebhookSink(mhttp.NewRetryingClient(), srv.URL)
		err := sink.Notify(ctx, testRequest(), dispatch.ItemAddedToFaultQueue)
		assert.ErrorContains(t, err, "webhook returned 400")
	})
}

func TestMulti(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	first := mocks.NewMockNotificationSink(ctrl)
	second := mocks.NewMockNotificationSink(ctrl)
	first.EXPECT().Notify(gomock.Any(), testRequest(), dispatch.ItemAddedToFaultQueue).Return(errors.New("down"))
	second.EXPECT().Notify(gomock.Any(), testRequest(), dispatch.ItemAddedToFaultQueue).Return(nil)

	err := Multi{first, second}.Notify(ctx, testRequest(), dispatch.ItemAddedToFaultQueue)
	assert.ErrorContains(t, err, "down")
}

func TestNew(t *testing.T) {
	sink := New(config.Notify{}, nil)
	require.IsType(t, Multi{}, sink)
	assert.Len(t, sink.(Multi), 1)

	sink = New(config.Notify{WebhookURL: "http://hooks.local/dvr"}, mhttp.NewRetryingClient())
	assert.Len(t, sink.(Multi), 2)

	assert.NoError(t, LogSink{}.Notify(context.Background(), testRequest(), dispatch.ItemAddedToFaultQueue))
}
