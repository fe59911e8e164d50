package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/dvrdispatch/pkg/storage"
	"github.com/kasuboski/dvrdispatch/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/dvrdispatch/pkg/storage/sqlite/schema/gen/table"
)

// GetUserProfile returns the stored overrides for a user
func (s *SQLite) GetUserProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	stmt := table.UserProfile.
		SELECT(table.UserProfile.AllColumns).
		FROM(table.UserProfile).
		WHERE(table.UserProfile.UserID.EQ(sqlite.String(userID)))

	profile := new(model.UserProfile)
	err := stmt.QueryContext(ctx, s.db, profile)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user profile %q: %w", userID, err)
	}

	return profile, nil
}

// UpsertUserProfile creates or replaces the overrides for profile.UserID
func (s *SQLite) UpsertUserProfile(ctx context.Context, profile model.UserProfile) error {
	if profile.UserID == "" {
		return errors.New("user id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stmt := table.UserProfile.
		INSERT(table.UserProfile.MutableColumns).
		MODEL(profile).
		ON_CONFLICT(table.UserProfile.UserID).
		DO_UPDATE(sqlite.SET(
			table.UserProfile.QualityProfile.SET(table.UserProfile.EXCLUDED.QualityProfile),
			table.UserProfile.QualityProfileAnime.SET(table.UserProfile.EXCLUDED.QualityProfileAnime),
			table.UserProfile.RootPath.SET(table.UserProfile.EXCLUDED.RootPath),
			table.UserProfile.RootPathAnime.SET(table.UserProfile.EXCLUDED.RootPathAnime),
		))

	_, err := stmt.ExecContext(ctx, s.db)
	if err != nil {
		return fmt.Errorf("failed to upsert user profile %q: %w", profile.UserID, err)
	}

	return nil
}
