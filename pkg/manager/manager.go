package manager

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/dvrdispatch/config"
	"github.com/kasuboski/dvrdispatch/pkg/dispatch"
	mhttp "github.com/kasuboski/dvrdispatch/pkg/http"
	"github.com/kasuboski/dvrdispatch/pkg/logger"
	"github.com/kasuboski/dvrdispatch/pkg/notify"
	"github.com/kasuboski/dvrdispatch/pkg/pagination"
	"github.com/kasuboski/dvrdispatch/pkg/storage"
	"github.com/kasuboski/dvrdispatch/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/dvrdispatch/pkg/storage/sqlite/schema/gen/table"
	"go.uber.org/zap"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_manager.go github.com/kasuboski/dvrdispatch/pkg/manager Dispatcher

// Dispatcher sends requests to the DVRs
type Dispatcher interface {
	Send(ctx context.Context, request dispatch.ShowRequest) dispatch.Result
	Retry(ctx context.Context, entry storage.FaultEntry) (dispatch.Result, error)
}

// Manager is the application service behind the server and the cli
type Manager struct {
	dispatcher Dispatcher
	storage    storage.Storage
	config     config.Manager

	retrying sync.Mutex
}

func New(dispatcher Dispatcher, storage storage.Storage, config config.Manager) *Manager {
	return &Manager{
		dispatcher: dispatcher,
		storage:    storage,
		config:     config,
	}
}

// NewFromConfig wires the dispatcher, its fault queue and notifications from the configuration
func NewFromConfig(cfg config.Config, store storage.Storage, client mhttp.HTTPClient) *Manager {
	faults := dispatch.NewFaultQueue(store, notify.New(cfg.Notify, client))
	d := dispatch.New(cfg, dispatch.NewClientFactory(client), store, faults, dispatch.NewRetryPolicy(cfg.Dispatch))
	return New(d, store, cfg.Manager)
}

// Dispatch sends a request. Failures are recorded in the fault queue by the dispatcher.
func (m *Manager) Dispatch(ctx context.Context, request dispatch.ShowRequest) dispatch.Result {
	return m.dispatcher.Send(ctx, request)
}

// ListFaults pages through fault entries, optionally only those in one state
func (m *Manager) ListFaults(ctx context.Context, state storage.FaultState, params pagination.Params) (FaultPage, error) {
	var page FaultPage

	var where []sqlite.BoolExpression
	switch state {
	case storage.FaultStateNew:
	case storage.FaultStateFailed, storage.FaultStateCompleted:
		where = append(where, table.FaultQueue.State.EQ(sqlite.String(string(state))))
	default:
		return page, fmt.Errorf("%w: %q", ErrInvalidState, state)
	}

	total, err := m.storage.CountFaults(ctx, where...)
	if err != nil {
		return page, err
	}

	offset, limit := params.CalculateOffsetLimit()
	entries, err := m.storage.ListFaults(ctx, offset, limit, where...)
	if err != nil {
		return page, err
	}

	page.Faults = make([]Fault, 0, len(entries))
	for _, e := range entries {
		page.Faults = append(page.Faults, newFault(*e))
	}
	page.Meta = params.BuildMeta(total)

	return page, nil
}

// FaultStats summarizes the fault queue by state
func (m *Manager) FaultStats(ctx context.Context) (storage.FaultStats, error) {
	rows, err := m.storage.GetFaultStatsByState(ctx)
	if err != nil {
		return storage.FaultStats{}, err
	}
	return storage.NewFaultStats(rows), nil
}

// RetryFaults re-dispatches every open fault entry. Only one pass runs at a time.
func (m *Manager) RetryFaults(ctx context.Context) (RetrySummary, error) {
	var summary RetrySummary
	if !m.retrying.TryLock() {
		return summary, ErrRetryInProgress
	}
	defer m.retrying.Unlock()

	log := logger.FromCtx(ctx)

	open, err := m.storage.ListFaults(ctx, 0, 0, table.FaultQueue.State.EQ(sqlite.String(string(storage.FaultStateFailed))))
	if err != nil {
		return summary, err
	}

	for _, entry := range open {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}

		summary.Attempted++
		result, err := m.dispatcher.Retry(ctx, *entry)
		if err != nil {
			log.Errorw("failed to retry fault", "request_id", entry.RequestID, zap.Error(err))
			summary.Failed++
			continue
		}

		if result.Success {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}

	if summary.Attempted > 0 {
		log.Infow("retried faults", "attempted", summary.Attempted, "succeeded", summary.Succeeded, "failed", summary.Failed)
	}

	return summary, nil
}

// RetryFault re-dispatches the open fault entry of one request
func (m *Manager) RetryFault(ctx context.Context, requestID int64) (dispatch.Result, error) {
	entry, err := m.storage.FindFaultByRequestID(ctx, requestID)
	if err != nil {
		return dispatch.Result{}, err
	}

	if storage.FaultState(entry.State) != storage.FaultStateFailed {
		return dispatch.Result{}, fmt.Errorf("%w: request %d", ErrFaultCompleted, requestID)
	}

	return m.dispatcher.Retry(ctx, *entry)
}

// SetUserProfile stores the overrides used for a user's requests
func (m *Manager) SetUserProfile(ctx context.Context, profile UserProfile) (UserProfile, error) {
	err := validate.Struct(profile)
	if err != nil {
		return profile, fmt.Errorf("invalid user profile: %w", err)
	}

	err = m.storage.UpsertUserProfile(ctx, profile.model())
	if err != nil {
		return profile, err
	}

	logger.FromCtx(ctx).Debugw("set user profile", "user", profile.UserID)
	return profile, nil
}

func (m *Manager) GetUserProfile(ctx context.Context, userID string) (UserProfile, error) {
	p, err := m.storage.GetUserProfile(ctx, userID)
	if err != nil {
		return UserProfile{}, err
	}
	return newUserProfile(*p), nil
}

// IsNotFound reports whether err means the requested record does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}

func newUserProfile(p model.UserProfile) UserProfile {
	return UserProfile{
		UserID:              p.UserID,
		QualityProfile:      p.QualityProfile,
		QualityProfileAnime: p.QualityProfileAnime,
		RootPath:            p.RootPath,
		RootPathAnime:       p.RootPathAnime,
	}
}
