package dispatch

import (
	"encoding/json"
	"testing"

	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*ShowRequest)
		wantErr bool
	}{
		{name: "valid", modify: func(*ShowRequest) {}},
		{name: "missing id", modify: func(r *ShowRequest) { r.ID = 0 }, wantErr: true},
		{name: "missing title", modify: func(r *ShowRequest) { r.Show.Title = "" }, wantErr: true},
		{name: "missing tvdb id", modify: func(r *ShowRequest) { r.Show.TvDbID = 0 }, wantErr: true},
		{name: "no seasons", modify: func(r *ShowRequest) { r.Seasons = nil }, wantErr: true},
		{name: "season without episodes", modify: func(r *ShowRequest) { r.Seasons[0].Episodes = nil }, wantErr: true},
		{name: "negative episode", modify: func(r *ShowRequest) { r.Seasons[0].Episodes = []int{-1} }, wantErr: true},
		{name: "unknown series type", modify: func(r *ShowRequest) { r.SeriesType = "documentary" }, wantErr: true},
		{name: "empty series type", modify: func(r *ShowRequest) { r.SeriesType = "" }},
		{name: "season past the last one", modify: func(r *ShowRequest) { r.Seasons = append(r.Seasons, season(4, 1)) }, wantErr: true},
		{name: "specials", modify: func(r *ShowRequest) { r.Seasons = []SeasonRequest{season(0, 1)} }},
		{name: "duplicate episode", modify: func(r *ShowRequest) { r.Seasons[0].Episodes = []int{1, 2, 1} }, wantErr: true},
		{name: "duplicate season", modify: func(r *ShowRequest) { r.Seasons = append(r.Seasons, season(1, 3)) }, wantErr: true},
		{name: "same episode in two seasons", modify: func(r *ShowRequest) { r.Seasons = append(r.Seasons, season(2, 1, 2)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := request(1, 100, 3, season(1, 1, 2))
			tt.modify(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestShowRequest_JSON(t *testing.T) {
	body := `{
		"id": 7,
		"requestedUserId": "u1",
		"seriesType": "anime",
		"show": {"title": "Frieren", "tvDbId": 424536, "totalSeasons": 1, "qualityOverride": 9, "rootFolder": null},
		"seasons": [{"seasonNumber": 1, "episodes": [1, 2]}]
	}`

	var req ShowRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	require.NoError(t, req.Validate())
	assert.True(t, req.IsAnime())

	quality, ok := positive(req.Show.QualityOverride)
	assert.True(t, ok)
	assert.Equal(t, 9, quality)

	_, ok = positive(req.Show.RootFolder)
	assert.False(t, ok)
	_, ok = positive(req.Show.LanguageProfile)
	assert.False(t, ok)
}

func TestPositive(t *testing.T) {
	_, ok := positive(nullable.NewNullableWithValue(0))
	assert.False(t, ok)

	_, ok = positive(nullable.NewNullableWithValue(-3))
	assert.False(t, ok)

	_, ok = positive(nullable.NewNullNullable[int]())
	assert.False(t, ok)

	v, ok := positive(nullable.NewNullableWithValue(2))
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}
