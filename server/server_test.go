package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kasuboski/dvrdispatch/config"
	"github.com/kasuboski/dvrdispatch/pkg/dispatch"
	"github.com/kasuboski/dvrdispatch/pkg/manager"
	"github.com/kasuboski/dvrdispatch/pkg/manager/mocks"
	"github.com/kasuboski/dvrdispatch/pkg/storage"
	"github.com/kasuboski/dvrdispatch/pkg/storage/sqlite"
	"github.com/kasuboski/dvrdispatch/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, d manager.Dispatcher) (Server, storage.Storage) {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	require.NoError(t, store.RunMigrations(ctx))
	t.Cleanup(func() { store.Close() })

	return New(zap.NewNop().Sugar(), manager.New(d, store, config.Manager{})), store
}

func do(t *testing.T, s Server, method, path, body string) (*httptest.ResponseRecorder, GenericResponse) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)

	var response GenericResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response), rr.Body.String())
	return rr, response
}

func TestServer_Healthz(t *testing.T) {
	t.Run("healthz", func(t *testing.T) {
		s := Server{baseLogger: zap.NewNop().Sugar()}

		req, err := http.NewRequest("GET", "/healthz", nil)
		assert.NoError(t, err)

		rr := httptest.NewRecorder()

		handler := s.Healthz()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		assert.Equal(t, "application/json", rr.Header().Get("content-type"))

		var response GenericResponse
		err = json.Unmarshal(rr.Body.Bytes(), &response)

		assert.NoError(t, err)
		assert.Equal(t, "ok", response.Response)
	})

	t.Run("router sets a request id", func(t *testing.T) {
		s := Server{baseLogger: zap.NewNop().Sugar()}
		rr, _ := do(t, s, http.MethodGet, "/healthz", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
	})
}

func TestServer_Dispatch(t *testing.T) {
	body := `{"id": 3, "show": {"title": "Dark", "tvDbId": 334824, "totalSeasons": 3}, "seasons": [{"seasonNumber": 1, "episodes": [1, 2]}]}`

	t.Run("returns the dispatch result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := mocks.NewMockDispatcher(ctrl)
		d.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r dispatch.ShowRequest) dispatch.Result {
			assert.Equal(t, int64(3), r.ID)
			assert.Equal(t, "Dark", r.Show.Title)
			assert.Equal(t, []int{1, 2}, r.Seasons[0].Episodes)
			return dispatch.Result{Sent: true, Success: true}
		})

		s, _ := newTestServer(t, d)
		rr, response := do(t, s, http.MethodPost, "/api/v1/dispatch", body)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, map[string]any{"sent": true, "success": true}, response.Response)
	})

	t.Run("bad json", func(t *testing.T) {
		s, _ := newTestServer(t, nil)
		rr, response := do(t, s, http.MethodPost, "/api/v1/dispatch", "{")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, response.Error, "invalid request body")
	})
}

func TestServer_Faults(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	d := mocks.NewMockDispatcher(ctrl)
	s, store := newTestServer(t, d)

	payload := `{"id":9,"show":{"title":"Dark","tvDbId":334824,"totalSeasons":3},"seasons":[{"seasonNumber":1,"episodes":[1]}]}`
	_, err := store.AddFault(ctx, storage.FaultEntry{FaultQueue: model.FaultQueue{
		RequestID: 9,
		Type:      storage.RequestTypeTV,
		Error:     "sonarr is down",
		Payload:   &payload,
	}})
	require.NoError(t, err)

	t.Run("list", func(t *testing.T) {
		rr, response := do(t, s, http.MethodGet, "/api/v1/faults?state=failed&page=1&pageSize=10", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		page, ok := response.Response.(map[string]any)
		require.True(t, ok)
		faults, ok := page["faults"].([]any)
		require.True(t, ok)
		assert.Len(t, faults, 1)
		assert.Equal(t, map[string]any{"page": float64(1), "pageSize": float64(10), "totalItems": float64(1), "totalPages": float64(1)}, page["meta"])
	})

	t.Run("list with invalid page", func(t *testing.T) {
		rr, response := do(t, s, http.MethodGet, "/api/v1/faults?page=0", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, response.Error, "invalid page")
	})

	t.Run("stats", func(t *testing.T) {
		rr, response := do(t, s, http.MethodGet, "/api/v1/faults/stats", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		stats, ok := response.Response.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(1), stats["total"])
	})

	t.Run("list with invalid state", func(t *testing.T) {
		rr, _ := do(t, s, http.MethodGet, "/api/v1/faults?state=broken", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("retry one", func(t *testing.T) {
		d.EXPECT().Retry(gomock.Any(), gomock.Any()).Return(dispatch.Result{Sent: true, Success: true}, nil)
		rr, _ := do(t, s, http.MethodPost, "/api/v1/faults/9/retry", "")
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("retry unknown", func(t *testing.T) {
		rr, _ := do(t, s, http.MethodPost, "/api/v1/faults/404/retry", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("retry all", func(t *testing.T) {
		d.EXPECT().Retry(gomock.Any(), gomock.Any()).Return(dispatch.Result{Message: "still down"}, nil)
		rr, response := do(t, s, http.MethodPost, "/api/v1/faults/retry", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, map[string]any{"attempted": float64(1), "succeeded": float64(0), "failed": float64(1)}, response.Response)
	})
}

func TestServer_UserProfile(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rr, _ := do(t, s, http.MethodGet, "/api/v1/users/u1/profile", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr, _ = do(t, s, http.MethodPut, "/api/v1/users/u1/profile", `{"qualityProfile": 6, "rootPathAnime": 2}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr, response := do(t, s, http.MethodGet, "/api/v1/users/u1/profile", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, map[string]any{
		"userId":              "u1",
		"qualityProfile":      float64(6),
		"qualityProfileAnime": float64(0),
		"rootPath":            float64(0),
		"rootPathAnime":       float64(2),
	}, response.Response)

	rr, _ = do(t, s, http.MethodPut, "/api/v1/users/u1/profile", `{"rootPath": -4}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
