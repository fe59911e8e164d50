package dispatch

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/oapi-codegen/nullable"
)

type SeriesType string

const (
	SeriesTypeStandard SeriesType = "standard"
	SeriesTypeAnime    SeriesType = "anime"
)

type NotificationType string

const (
	ItemAddedToFaultQueue NotificationType = "ItemAddedToFaultQueue"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ShowRequest is an approved request for some seasons and episodes of a show
type ShowRequest struct {
	ID                int64           `json:"id" validate:"required"`
	RequestedUserID   string          `json:"requestedUserId"`
	RequestedUserName string          `json:"requestedUserName"`
	SeriesType        SeriesType      `json:"seriesType" validate:"omitempty,oneof=standard anime"`
	Show              Show            `json:"show"`
	Seasons           []SeasonRequest `json:"seasons" validate:"required,min=1,unique=SeasonNumber,dive"`
}

// Show is the parent show of a request along with request level overrides.
// Overrides are only applied when set to a positive value.
type Show struct {
	Title           string                 `json:"title" validate:"required"`
	TvDbID          int                    `json:"tvDbId" validate:"gt=0"`
	ImdbID          string                 `json:"imdbId,omitempty"`
	TotalSeasons    int                    `json:"totalSeasons" validate:"gte=0"`
	QualityOverride nullable.Nullable[int] `json:"qualityOverride,omitempty"`
	RootFolder      nullable.Nullable[int] `json:"rootFolder,omitempty"`
	LanguageProfile nullable.Nullable[int] `json:"languageProfile,omitempty"`
	// LegacyQuality is the quality name sent to the secondary DVR
	LegacyQuality string `json:"legacyQuality,omitempty"`
}

type SeasonRequest struct {
	SeasonNumber int   `json:"seasonNumber" validate:"gte=0"`
	Episodes     []int `json:"episodes" validate:"required,min=1,unique,dive,gte=0"`
}

// IsAnime reports whether the request targets the anime branch of the settings
func (r ShowRequest) IsAnime() bool {
	return r.SeriesType == SeriesTypeAnime
}

// Validate checks the request shape before anything is sent to a DVR
func (r ShowRequest) Validate() error {
	err := validate.Struct(r)
	if err != nil {
		return fmt.Errorf("invalid request %d: %w", r.ID, err)
	}

	var errs []error
	for _, s := range r.Seasons {
		if s.SeasonNumber > r.Show.TotalSeasons {
			errs = append(errs, fmt.Errorf("season %d is past the last season %d", s.SeasonNumber, r.Show.TotalSeasons))
		}
	}

	return errors.Join(errs...)
}

// Result is what a dispatch returns to its caller.
// Success with Sent false means no provider was enabled.
type Result struct {
	Sent    bool   `json:"sent"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// positive returns the value of an override that is set to a positive id
func positive(n nullable.Nullable[int]) (int, bool) {
	if !n.IsSpecified() || n.IsNull() {
		return 0, false
	}

	v := n.MustGet()
	return v, v > 0
}
