package sonarr

const (
	SeriesTypeStandard = "standard"
	SeriesTypeAnime    = "anime"
)

// Series is the subset of the Sonarr v3 series resource this service reads and writes
type Series struct {
	ID                int64       `json:"id,omitempty"`
	Title             string      `json:"title"`
	CleanTitle        string      `json:"cleanTitle,omitempty"`
	TitleSlug         string      `json:"titleSlug,omitempty"`
	TvdbID            int         `json:"tvdbId"`
	ImdbID            string      `json:"imdbId,omitempty"`
	QualityProfileID  int         `json:"qualityProfileId"`
	LanguageProfileID int         `json:"languageProfileId,omitempty"`
	RootFolderPath    string      `json:"rootFolderPath,omitempty"`
	Path              string      `json:"path,omitempty"`
	SeriesType        string      `json:"seriesType"`
	SeasonFolder      bool        `json:"seasonFolder"`
	Monitored         bool        `json:"monitored"`
	Seasons           []Season    `json:"seasons"`
	Tags              []int       `json:"tags"`
	AddOptions        *AddOptions `json:"addOptions,omitempty"`
}

// Season returns the season with the given number if the series has it
func (s *Series) Season(number int) (*Season, bool) {
	for i := range s.Seasons {
		if s.Seasons[i].SeasonNumber == number {
			return &s.Seasons[i], true
		}
	}
	return nil, false
}

type Season struct {
	SeasonNumber int  `json:"seasonNumber"`
	Monitored    bool `json:"monitored"`
}

type AddOptions struct {
	IgnoreEpisodesWithFiles    bool `json:"ignoreEpisodesWithFiles"`
	IgnoreEpisodesWithoutFiles bool `json:"ignoreEpisodesWithoutFiles"`
	SearchForMissingEpisodes   bool `json:"searchForMissingEpisodes"`
}

type Episode struct {
	ID            int64  `json:"id"`
	SeriesID      int64  `json:"seriesId"`
	SeasonNumber  int    `json:"seasonNumber"`
	EpisodeNumber int    `json:"episodeNumber"`
	Title         string `json:"title,omitempty"`
	HasFile       bool   `json:"hasFile"`
	Monitored     bool   `json:"monitored"`
}

type Tag struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

type RootFolder struct {
	ID   int    `json:"id"`
	Path string `json:"path"`
}

// NewSeriesResponse is the outcome of a create call. ErrorMessages is set when Sonarr rejected the series.
type NewSeriesResponse struct {
	ID            int64
	ErrorMessages []string
}

type validationFailure struct {
	PropertyName string `json:"propertyName"`
	ErrorMessage string `json:"errorMessage"`
}

type seasonSearch struct {
	Name         string `json:"name"`
	SeriesID     int64  `json:"seriesId"`
	SeasonNumber int    `json:"seasonNumber"`
}
