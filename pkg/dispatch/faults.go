package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kasuboski/dvrdispatch/pkg/cache"
	"github.com/kasuboski/dvrdispatch/pkg/logger"
	"github.com/kasuboski/dvrdispatch/pkg/storage"
	"github.com/kasuboski/dvrdispatch/pkg/storage/sqlite/schema/gen/model"
)

// FaultQueue records failed dispatches. Only the first failure of a request notifies.
type FaultQueue struct {
	store    FaultQueueStore
	notifier NotificationSink
	locks    *cache.Cache[int64, *requestLock]
}

// requestLock serializes work on one request. refs is only touched under the cache lock.
type requestLock struct {
	mu   sync.Mutex
	refs int
}

func NewFaultQueue(store FaultQueueStore, notifier NotificationSink) *FaultQueue {
	return &FaultQueue{
		store:    store,
		notifier: notifier,
		locks:    cache.New[int64, *requestLock](),
	}
}

// lock holds the request's mutex. The entry is dropped once nobody holds or waits on it.
func (q *FaultQueue) lock(requestID int64) func() {
	var l *requestLock
	q.locks.Update(requestID, func(current *requestLock, ok bool) (*requestLock, bool) {
		if !ok {
			current = &requestLock{}
		}
		current.refs++
		l = current
		return current, true
	})

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		q.locks.Update(requestID, func(current *requestLock, _ bool) (*requestLock, bool) {
			current.refs--
			return current, current.refs > 0
		})
	}
}

// Record finds or creates the fault entry for a request.
// An existing entry has its retry count bumped and its error replaced.
func (q *FaultQueue) Record(ctx context.Context, request ShowRequest, cause error) error {
	log := logger.FromCtx(ctx)
	defer q.lock(request.ID)()

	existing, err := q.store.FindFaultByRequestID(ctx, request.ID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to find fault for request %d: %w", request.ID, err)
	}

	if existing != nil {
		if storage.FaultState(existing.State) == storage.FaultStateCompleted {
			err = existing.Transition(storage.FaultStateFailed)
			if err != nil {
				return err
			}
			existing.Completed = nil
		}

		existing.RetryCount++
		existing.Error = cause.Error()
		log.Debugw("updating fault", "retry_count", existing.RetryCount)
		return q.store.SaveFault(ctx, *existing)
	}

	payload, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to encode request %d: %w", request.ID, err)
	}
	p := string(payload)

	entry := storage.FaultEntry{
		FaultQueue: model.FaultQueue{
			RequestID: request.ID,
			Type:      storage.RequestTypeTV,
			Error:     cause.Error(),
			Payload:   &p,
			Dts:       time.Now().UTC(),
		},
	}
	err = entry.Transition(storage.FaultStateFailed)
	if err != nil {
		return err
	}

	_, err = q.store.AddFault(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to add fault for request %d: %w", request.ID, err)
	}

	log.Infow("added request to the fault queue")
	if q.notifier == nil {
		return nil
	}

	err = q.notifier.Notify(ctx, request, ItemAddedToFaultQueue)
	if err != nil {
		log.Warnw("failed to send fault notification", "error", err)
	}

	return nil
}

// Resolve marks the fault entry of a request as completed. A request without an open entry is a no-op.
func (q *FaultQueue) Resolve(ctx context.Context, requestID int64) error {
	defer q.lock(requestID)()

	entry, err := q.store.FindFaultByRequestID(ctx, requestID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if storage.FaultState(entry.State) != storage.FaultStateFailed {
		return nil
	}

	err = entry.Transition(storage.FaultStateCompleted)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	entry.Completed = &now

	return q.store.SaveFault(ctx, *entry)
}

// DecodeRequest reads the request stored with a fault entry
func DecodeRequest(entry storage.FaultEntry) (ShowRequest, error) {
	var request ShowRequest
	if entry.Payload == nil {
		return request, fmt.Errorf("fault %d has no request payload", entry.ID)
	}

	err := json.Unmarshal([]byte(*entry.Payload), &request)
	return request, err
}
