package sickrage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	return NewClient(srv.Client(), u.Scheme, u.Host, "secret")
}

func TestClient_GetShow(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/secret/", r.URL.Path)
		assert.Equal(t, "show", r.URL.Query().Get("cmd"))
		assert.Equal(t, "100", r.URL.Query().Get("tvdbid"))
		w.Write([]byte(`{"data":{},"message":"Show not found","result":"failure"}`))
	})

	resp, err := client.GetShow(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, MessageShowNotFound, resp.Message)
	assert.True(t, resp.Failed())
}

func TestClient_AddSeries(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "show.addnew", q.Get("cmd"))
		assert.Equal(t, "hd720p", q.Get("initial"))
		assert.Equal(t, StatusIgnored, q.Get("status"))
		w.Write([]byte(`{"data":{"name":"Show"},"message":"Show has been queued to be added","result":"success"}`))
	})

	resp, err := client.AddSeries(context.Background(), 100, "hd720p", StatusIgnored)
	require.NoError(t, err)
	assert.Equal(t, ResultSuccess, resp.Result)
	assert.False(t, resp.Failed())
}

func TestClient_GetEpisodesForSeason(t *testing.T) {
	t.Run("episodes", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "show.seasons", r.URL.Query().Get("cmd"))
			assert.Equal(t, "2", r.URL.Query().Get("season"))
			w.Write([]byte(`{"data":{"1":{"name":"Pilot","status":"Wanted"},"2":{"name":"Second","status":"Skipped"}},"message":"","result":"success"}`))
		})

		resp, err := client.GetEpisodesForSeason(context.Background(), 100, 2)
		require.NoError(t, err)
		assert.Len(t, resp.Episodes, 2)
		assert.Equal(t, "Wanted", resp.Episodes[1].Status)
		assert.Equal(t, "Skipped", resp.Episodes[2].Status)
	})

	t.Run("season not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":[],"message":"Season not found","result":"failure"}`))
		})

		resp, err := client.GetEpisodesForSeason(context.Background(), 100, 9)
		require.NoError(t, err)
		assert.Equal(t, MessageSeasonNotFound, resp.Message)
		assert.Empty(t, resp.Episodes)
	})
}

func TestClient_SetEpisodeStatus(t *testing.T) {
	var queries []url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query())
		w.Write([]byte(`{"data":{},"message":"","result":"success"}`))
	})

	_, err := client.SetEpisodeStatus(context.Background(), 100, StatusWanted, 1, nil)
	require.NoError(t, err)

	ep := 3
	_, err = client.SetEpisodeStatus(context.Background(), 100, StatusWanted, 1, &ep)
	require.NoError(t, err)

	require.Len(t, queries, 2)
	assert.False(t, queries[0].Has("episode"))
	assert.Equal(t, "3", queries[1].Get("episode"))
	assert.Equal(t, "episode.setstatus", queries[1].Get("cmd"))
	assert.Equal(t, StatusWanted, queries[1].Get("status"))
}

func TestClient_StatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("denied"))
	})

	_, err := client.GetShow(context.Background(), 1)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Equal(t, "sickrage show returned 401: denied", err.Error())
}
