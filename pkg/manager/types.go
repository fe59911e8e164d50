package manager

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kasuboski/dvrdispatch/pkg/dispatch"
	"github.com/kasuboski/dvrdispatch/pkg/pagination"
	"github.com/kasuboski/dvrdispatch/pkg/storage"
	"github.com/kasuboski/dvrdispatch/pkg/storage/sqlite/schema/gen/model"
)

var (
	ErrInvalidState    = errors.New("invalid fault state")
	ErrRetryInProgress = errors.New("a fault retry is already running")
	ErrFaultCompleted  = errors.New("fault is already completed")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Fault is a fault queue entry as returned to clients
type Fault struct {
	ID         int32                 `json:"id"`
	RequestID  int64                 `json:"requestId"`
	Type       string                `json:"type"`
	State      string                `json:"state"`
	Error      string                `json:"error"`
	RetryCount int32                 `json:"retryCount"`
	Created    time.Time             `json:"created"`
	Completed  *time.Time            `json:"completed,omitempty"`
	Request    *dispatch.ShowRequest `json:"request,omitempty"`
}

func newFault(e storage.FaultEntry) Fault {
	f := Fault{
		ID:         e.ID,
		RequestID:  e.RequestID,
		Type:       e.Type,
		State:      e.State,
		Error:      e.Error,
		RetryCount: e.RetryCount,
		Created:    e.Dts,
		Completed:  e.Completed,
	}

	req, err := dispatch.DecodeRequest(e)
	if err == nil {
		f.Request = &req
	}

	return f
}

// FaultPage is one page of fault entries
type FaultPage struct {
	Faults []Fault          `json:"faults"`
	Meta   pagination.Meta `json:"meta"`
}

// RetrySummary counts the outcome of a fault retry pass
type RetrySummary struct {
	Attempted int `json:"attempted"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// UserProfile holds per user overrides. Zero values fall back to the provider settings.
type UserProfile struct {
	UserID              string `json:"userId" validate:"required"`
	QualityProfile      int32  `json:"qualityProfile" validate:"gte=0"`
	QualityProfileAnime int32  `json:"qualityProfileAnime" validate:"gte=0"`
	RootPath            int32  `json:"rootPath" validate:"gte=0"`
	RootPathAnime       int32  `json:"rootPathAnime" validate:"gte=0"`
}

func (p UserProfile) model() model.UserProfile {
	return model.UserProfile{
		UserID:              p.UserID,
		QualityProfile:      p.QualityProfile,
		QualityProfileAnime: p.QualityProfileAnime,
		RootPath:            p.RootPath,
		RootPathAnime:       p.RootPathAnime,
	}
}
