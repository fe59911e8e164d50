package dispatch

import (
	"context"
	"time"

	"github.com/kasuboski/dvrdispatch/pkg/logger"
	"github.com/kasuboski/dvrdispatch/pkg/storage"
	"go.uber.org/zap"
)

const MessageSecondaryFailed = "secondary provider failed"

const recordTimeout = 10 * time.Second

// Dispatcher tries the primary provider, then the secondary one.
// Every error from either path ends here and is recorded in the fault queue.
type Dispatcher struct {
	primary   Provider
	secondary Provider
	faults    *FaultQueue
}

// New builds a dispatcher with Sonarr as the primary provider and SickRage as the secondary one
func New(settings SettingsProvider, factory ClientFactory, users UserOverrideStore, faults *FaultQueue, policy RetryPolicy) *Dispatcher {
	return NewWithProviders(
		NewPrimaryProvider(settings, factory, users, policy),
		NewLegacyProvider(settings, factory, policy),
		faults,
	)
}

func NewWithProviders(primary, secondary Provider, faults *FaultQueue) *Dispatcher {
	return &Dispatcher{
		primary:   primary,
		secondary: secondary,
		faults:    faults,
	}
}

// Send dispatches a request. It never returns Sent without Success.
func (d *Dispatcher) Send(ctx context.Context, request ShowRequest) Result {
	log := logger.FromCtx(ctx, "request_id", request.ID)
	ctx = logger.WithCtx(ctx, log)

	result, err := d.send(ctx, request)
	if err == nil {
		return result
	}

	log.Errorw("failed to dispatch request, adding it to the fault queue", zap.Error(err))
	if d.faults != nil {
		// a caller that gave up must not lose the fault
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
		defer cancel()

		ferr := d.faults.Record(rctx, request, err)
		if ferr != nil {
			log.Errorw("failed to record fault", zap.Error(ferr))
		}
	}

	return Result{Success: false, Message: err.Error()}
}

func (d *Dispatcher) send(ctx context.Context, request ShowRequest) (Result, error) {
	log := logger.FromCtx(ctx)

	err := request.Validate()
	if err != nil {
		return Result{}, err
	}

	enabled, err := d.primary.Enabled(ctx)
	if err != nil {
		return Result{}, err
	}
	if enabled {
		handled, err := d.primary.Send(ctx, request)
		if err != nil {
			return Result{}, err
		}
		if handled {
			return Result{Sent: true, Success: true}, nil
		}
		log.Debugw("primary provider did not handle the request", "provider", d.primary.Name())
	}

	enabled, err = d.secondary.Enabled(ctx)
	if err != nil {
		return Result{}, err
	}
	if enabled {
		ok, err := d.secondary.Send(ctx, request)
		if err != nil {
			return Result{}, err
		}
		if ok {
			return Result{Sent: true, Success: true}, nil
		}
		return Result{Success: false, Message: MessageSecondaryFailed}, nil
	}

	log.Debug("no provider enabled")
	return Result{Sent: false, Success: true}, nil
}

// Retry dispatches the request stored in a fault entry again and resolves the entry when it succeeds.
// A failed retry goes through the fault queue like any other failure.
func (d *Dispatcher) Retry(ctx context.Context, entry storage.FaultEntry) (Result, error) {
	request, err := DecodeRequest(entry)
	if err != nil {
		return Result{}, err
	}

	result := d.Send(ctx, request)
	if !result.Success || d.faults == nil {
		return result, nil
	}

	return result, d.faults.Resolve(ctx, request.ID)
}
