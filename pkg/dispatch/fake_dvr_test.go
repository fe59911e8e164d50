package dispatch

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/kasuboski/dvrdispatch/config"
	"github.com/kasuboski/dvrdispatch/pkg/sonarr"
)

type monitorCall struct {
	ids       []int64
	monitored bool
}

type seasonSearch struct {
	seriesID int64
	season   int
}

// fakeDVR is an in-memory Sonarr. Switching a season to monitored monitors all of its episodes like the real thing.
type fakeDVR struct {
	mu sync.Mutex

	series   map[int64]*sonarr.Series
	episodes map[int64][]sonarr.Episode
	tags     []sonarr.Tag
	folders  []sonarr.RootFolder
	nextID   int64

	// catalog is the number of episodes per season the DVR scrapes for a tvdb id
	catalog map[int]map[int]int
	// hidden seasons only show up after the series was fetched revealAfter times
	hidden      map[int64][]sonarr.Season
	revealAfter int
	fetches     map[int64]int
	// emptyEpisodeLists is how many episode listings come back empty first
	emptyEpisodeLists int
	rejectWith        []string

	created         []sonarr.Series
	updates         []sonarr.Series
	monitorCalls    []monitorCall
	seasonSearches  []seasonSearch
	episodeSearches [][]int64
	createdTags     []string
}

func newFakeDVR() *fakeDVR {
	return &fakeDVR{
		series:   make(map[int64]*sonarr.Series),
		episodes: make(map[int64][]sonarr.Episode),
		folders:  []sonarr.RootFolder{{ID: 1, Path: "/tv"}, {ID: 2, Path: "/anime"}},
		nextID:   1,
		catalog:  make(map[int]map[int]int),
		hidden:   make(map[int64][]sonarr.Season),
		fetches:  make(map[int64]int),
	}
}

func episodeID(seriesID int64, season, episode int) int64 {
	return seriesID*10000 + int64(season)*100 + int64(episode)
}

// seed adds an existing series. perSeason maps a season number to its episode count.
func (f *fakeDVR) seed(tvdbID int, perSeason map[int]int, seasonMonitored, episodesMonitored bool) *sonarr.Series {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++

	s := &sonarr.Series{
		ID:         id,
		Title:      fmt.Sprintf("Show %d", tvdbID),
		TvdbID:     tvdbID,
		SeriesType: sonarr.SeriesTypeStandard,
		Monitored:  true,
	}

	numbers := make([]int, 0, len(perSeason))
	for n := range perSeason {
		numbers = append(numbers, n)
	}
	slices.Sort(numbers)

	for _, n := range numbers {
		s.Seasons = append(s.Seasons, sonarr.Season{SeasonNumber: n, Monitored: seasonMonitored})
		for e := 1; e <= perSeason[n]; e++ {
			f.episodes[id] = append(f.episodes[id], sonarr.Episode{
				ID:            episodeID(id, n, e),
				SeriesID:      id,
				SeasonNumber:  n,
				EpisodeNumber: e,
				Monitored:     episodesMonitored,
			})
		}
	}

	f.series[id] = s
	return copySeries(s)
}

// hide removes a season until the series has been fetched revealAfter times
func (f *fakeDVR) hide(seriesID int64, number int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := f.series[seriesID]
	for i, season := range s.Seasons {
		if season.SeasonNumber == number {
			f.hidden[seriesID] = append(f.hidden[seriesID], season)
			s.Seasons = slices.Delete(s.Seasons, i, i+1)
			return
		}
	}
}

func (f *fakeDVR) episode(seriesID int64, season, number int) sonarr.Episode {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, e := range f.episodes[seriesID] {
		if e.SeasonNumber == season && e.EpisodeNumber == number {
			return e
		}
	}
	panic(fmt.Sprintf("no episode S%02dE%02d", season, number))
}

func (f *fakeDVR) seasonMonitored(seriesID int64, number int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, s := range f.series[seriesID].Seasons {
		if s.SeasonNumber == number {
			return s.Monitored
		}
	}
	return false
}

func (f *fakeDVR) writes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.updates) + len(f.monitorCalls) + len(f.seasonSearches) + len(f.episodeSearches)
}

func copySeries(s *sonarr.Series) *sonarr.Series {
	c := *s
	c.Seasons = slices.Clone(s.Seasons)
	c.Tags = slices.Clone(s.Tags)
	return &c
}

func (f *fakeDVR) ListSeries(ctx context.Context) ([]sonarr.Series, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]sonarr.Series, 0, len(f.series))
	for id := int64(1); id < f.nextID; id++ {
		if s, ok := f.series[id]; ok {
			out = append(out, *copySeries(s))
		}
	}
	return out, nil
}

func (f *fakeDVR) GetSeriesByID(ctx context.Context, id int64) (*sonarr.Series, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.series[id]
	if !ok {
		return nil, fmt.Errorf("series %d not found", id)
	}

	f.fetches[id]++
	if hidden := f.hidden[id]; len(hidden) > 0 && f.fetches[id] >= f.revealAfter {
		s.Seasons = append(s.Seasons, hidden...)
		slices.SortFunc(s.Seasons, func(a, b sonarr.Season) int { return a.SeasonNumber - b.SeasonNumber })
		delete(f.hidden, id)
	}

	return copySeries(s), nil
}

func (f *fakeDVR) CreateSeries(ctx context.Context, series sonarr.Series) (*sonarr.NewSeriesResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.created = append(f.created, series)
	if len(f.rejectWith) > 0 {
		return &sonarr.NewSeriesResponse{ErrorMessages: f.rejectWith}, nil
	}

	id := f.nextID
	f.nextID++

	s := copySeries(&series)
	s.ID = id
	s.AddOptions = nil
	f.series[id] = s

	for season, count := range f.catalog[series.TvdbID] {
		for e := 1; e <= count; e++ {
			f.episodes[id] = append(f.episodes[id], sonarr.Episode{
				ID:            episodeID(id, season, e),
				SeriesID:      id,
				SeasonNumber:  season,
				EpisodeNumber: e,
			})
		}
	}
	slices.SortFunc(f.episodes[id], func(a, b sonarr.Episode) int { return int(a.ID - b.ID) })

	return &sonarr.NewSeriesResponse{ID: id}, nil
}

func (f *fakeDVR) UpdateSeries(ctx context.Context, series sonarr.Series) (*sonarr.Series, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	current, ok := f.series[series.ID]
	if !ok {
		return nil, fmt.Errorf("series %d not found", series.ID)
	}
	f.updates = append(f.updates, *copySeries(&series))

	for _, next := range series.Seasons {
		for _, prev := range current.Seasons {
			if prev.SeasonNumber != next.SeasonNumber || prev.Monitored || !next.Monitored {
				continue
			}
			for i := range f.episodes[series.ID] {
				if f.episodes[series.ID][i].SeasonNumber == next.SeasonNumber {
					f.episodes[series.ID][i].Monitored = true
				}
			}
		}
	}

	f.series[series.ID] = copySeries(&series)
	return copySeries(&series), nil
}

func (f *fakeDVR) ListEpisodes(ctx context.Context, seriesID int64) ([]sonarr.Episode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.emptyEpisodeLists > 0 {
		f.emptyEpisodeLists--
		return []sonarr.Episode{}, nil
	}
	return slices.Clone(f.episodes[seriesID]), nil
}

func (f *fakeDVR) SetEpisodesMonitored(ctx context.Context, ids []int64, monitored bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.monitorCalls = append(f.monitorCalls, monitorCall{ids: slices.Clone(ids), monitored: monitored})
	for seriesID := range f.episodes {
		for i := range f.episodes[seriesID] {
			if slices.Contains(ids, f.episodes[seriesID][i].ID) {
				f.episodes[seriesID][i].Monitored = monitored
			}
		}
	}
	return nil
}

func (f *fakeDVR) ListTags(ctx context.Context) ([]sonarr.Tag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.tags), nil
}

func (f *fakeDVR) CreateTag(ctx context.Context, label string) (*sonarr.Tag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	tag := sonarr.Tag{ID: len(f.tags) + 1, Label: label}
	f.tags = append(f.tags, tag)
	f.createdTags = append(f.createdTags, label)
	return &tag, nil
}

func (f *fakeDVR) GetRootFolders(ctx context.Context) ([]sonarr.RootFolder, error) {
	return slices.Clone(f.folders), nil
}

func (f *fakeDVR) TriggerSeasonSearch(ctx context.Context, seriesID int64, seasonNumber int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seasonSearches = append(f.seasonSearches, seasonSearch{seriesID: seriesID, season: seasonNumber})
	return nil
}

func (f *fakeDVR) TriggerEpisodeSearch(ctx context.Context, episodeIDs []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.episodeSearches = append(f.episodeSearches, slices.Clone(episodeIDs))
	return nil
}

type fakeFactory struct {
	primary   PrimaryDVRClient
	secondary SecondaryDVRClient
}

func (f fakeFactory) Primary(config.Sonarr) PrimaryDVRClient {
	return f.primary
}

func (f fakeFactory) Secondary(config.SickRage) SecondaryDVRClient {
	return f.secondary
}

func testPolicy() RetryPolicy {
	return RetryPolicy{
		SeasonAttempts:      3,
		SeasonDelay:         time.Millisecond,
		LegacyAttempts:      3,
		LegacyDelay:         time.Millisecond,
		EpisodePollInterval: time.Millisecond,
		EpisodePollTimeout:  200 * time.Millisecond,
	}
}

func testSonarrSettings() config.Sonarr {
	return config.Sonarr{
		Enabled:        true,
		Host:           "sonarr",
		APIKey:         "key",
		QualityProfile: "4",
		RootPath:       "1",
		SeasonFolders:  true,
	}
}

func request(id int64, tvdbID, totalSeasons int, seasons ...SeasonRequest) ShowRequest {
	return ShowRequest{
		ID:                id,
		RequestedUserID:   "u1",
		RequestedUserName: "Alice",
		SeriesType:        SeriesTypeStandard,
		Show: Show{
			Title:        "Show",
			TvDbID:       tvdbID,
			TotalSeasons: totalSeasons,
		},
		Seasons: seasons,
	}
}

func season(number int, episodes ...int) SeasonRequest {
	return SeasonRequest{SeasonNumber: number, Episodes: episodes}
}
