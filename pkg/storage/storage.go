package storage

import (
	"context"
	"errors"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/dvrdispatch/pkg/machine"
	"github.com/kasuboski/dvrdispatch/pkg/storage/sqlite/schema/gen/model"
)

var ErrNotFound = errors.New("not found in storage")

type Storage interface {
	RunMigrations(ctx context.Context) error
	MigrationVersion(ctx context.Context) (version uint, dirty bool, err error)
	Close() error
	FaultStorage
	UserProfileStorage
	StatisticsStorage
}

type FaultState string

const (
	FaultStateNew       FaultState = ""
	FaultStateFailed    FaultState = "failed"
	FaultStateCompleted FaultState = "completed"
)

// RequestTypeTV is the only request type recorded in the fault queue
const RequestTypeTV = "tv"

// FaultEntry is a failed dispatch waiting to be retried
type FaultEntry struct {
	model.FaultQueue
}

func (f FaultEntry) Machine() *machine.StateMachine[FaultState] {
	return machine.New(FaultState(f.State),
		machine.From(FaultStateNew).To(FaultStateFailed),
		machine.From(FaultStateFailed).To(FaultStateCompleted),
		machine.From(FaultStateCompleted).To(FaultStateFailed),
	)
}

// Transition moves the entry to the given state if the move is allowed
func (f *FaultEntry) Transition(to FaultState) error {
	err := f.Machine().ToState(to)
	if err != nil {
		return err
	}

	f.State = string(to)
	return nil
}

type FaultStorage interface {
	AddFault(ctx context.Context, entry FaultEntry) (int64, error)
	FindFaultByRequestID(ctx context.Context, requestID int64) (*FaultEntry, error)
	SaveFault(ctx context.Context, entry FaultEntry) error
	// ListFaults pages through entries oldest first. A limit of 0 lists everything.
	ListFaults(ctx context.Context, offset, limit int, where ...sqlite.BoolExpression) ([]*FaultEntry, error)
	CountFaults(ctx context.Context, where ...sqlite.BoolExpression) (int, error)
}

type UserProfileStorage interface {
	GetUserProfile(ctx context.Context, userID string) (*model.UserProfile, error)
	UpsertUserProfile(ctx context.Context, profile model.UserProfile) error
}
