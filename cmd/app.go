package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gofrs/flock"
	"github.com/kasuboski/dvrdispatch/config"
	mhttp "github.com/kasuboski/dvrdispatch/pkg/http"
	"github.com/kasuboski/dvrdispatch/pkg/manager"
	"github.com/kasuboski/dvrdispatch/pkg/storage"
	"github.com/kasuboski/dvrdispatch/pkg/storage/sqlite"
	"github.com/spf13/viper"
)

const (
	defaultFaultRetry  = time.Minute * 30
	defaultHTTPTimeout = time.Second * 30
)

// app is what every command needs: validated config, migrated storage and the manager on top of them
type app struct {
	config  config.Config
	storage storage.Storage
	manager *manager.Manager
	lock    *flock.Flock
}

type access int

const (
	readOnly access = iota
	// writer commands hold <db>.lock so that one process at a time changes the fault queue
	writer
)

// withApp opens the app, runs fn and always closes the app before returning
func withApp(ctx context.Context, mode access, fn func(a *app) error) error {
	a, err := newApp(ctx, mode)
	if err != nil {
		return err
	}

	err = fn(a)
	return errors.Join(err, a.Close())
}

func newApp(ctx context.Context, mode access) (*app, error) {
	cfg, err := config.New(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("failed to read configurations: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	var lock *flock.Flock
	if mode == writer {
		lock, err = lockWriter(cfg.Storage.FilePath)
		if err != nil {
			return nil, err
		}
	}

	store, err := sqlite.New(ctx, cfg.Storage.FilePath)
	if err != nil {
		unlock(lock)
		return nil, fmt.Errorf("failed to create storage connection: %w", err)
	}

	err = store.RunMigrations(ctx)
	if err != nil {
		store.Close()
		unlock(lock)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	client := mhttp.NewRetryingClient(mhttp.WithHTTPClient(&http.Client{Timeout: defaultHTTPTimeout}))

	return &app{
		config:  cfg,
		storage: store,
		manager: manager.NewFromConfig(cfg, store, client),
		lock:    lock,
	}, nil
}

func lockWriter(dbPath string) (*flock.Flock, error) {
	lock := flock.New(dbPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another dvrdispatch process is writing to %s", dbPath)
	}
	return lock, nil
}

func unlock(lock *flock.Flock) error {
	if lock == nil {
		return nil
	}
	return lock.Unlock()
}

func (a *app) Close() error {
	return errors.Join(a.storage.Close(), unlock(a.lock))
}
