package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kasuboski/dvrdispatch/config"
	"github.com/kasuboski/dvrdispatch/pkg/logger"
	"github.com/kasuboski/dvrdispatch/pkg/sonarr"
	"github.com/kasuboski/dvrdispatch/pkg/storage"
	"github.com/kasuboski/dvrdispatch/pkg/storage/sqlite/schema/gen/model"
	"go.uber.org/zap"
)

// ResolvedConfig is the effective configuration for sending one request to the primary DVR
type ResolvedConfig struct {
	QualityProfileID  int
	LanguageProfileID int
	RootFolderID      int
	RootFolderPath    string
	SeriesType        string
	Tags              []int
}

// ConfigResolver layers settings, user overrides and request overrides.
// Each layer only replaces the values it sets.
type ConfigResolver struct {
	client PrimaryDVRClient
	users  UserOverrideStore
	tags   TagSynchronizer
}

func NewConfigResolver(client PrimaryDVRClient, users UserOverrideStore) ConfigResolver {
	return ConfigResolver{
		client: client,
		users:  users,
		tags:   NewTagSynchronizer(client),
	}
}

func (r ConfigResolver) Resolve(ctx context.Context, settings config.Sonarr, request ShowRequest) (ResolvedConfig, error) {
	log := logger.FromCtx(ctx)

	resolved := ResolvedConfig{
		LanguageProfileID: settings.LanguageProfile,
		SeriesType:        sonarr.SeriesTypeStandard,
	}

	profile, err := r.userOverride(ctx, request.RequestedUserID)
	if err != nil {
		return resolved, err
	}

	var tag *int
	if request.IsAnime() {
		resolved.QualityProfileID, err = parseWithFallback("quality profile", settings.QualityProfileAnime, settings.QualityProfile)
		if err != nil {
			return resolved, err
		}

		resolved.RootFolderID, err = parseWithFallback("root folder", settings.RootPathAnime, settings.RootPath)
		if err != nil {
			return resolved, err
		}

		if settings.LanguageProfileAnime > 0 {
			resolved.LanguageProfileID = settings.LanguageProfileAnime
		}

		if profile != nil {
			if profile.RootPathAnime > 0 {
				resolved.RootFolderID = int(profile.RootPathAnime)
			}
			if profile.QualityProfileAnime > 0 {
				resolved.QualityProfileID = int(profile.QualityProfileAnime)
			}
		}

		resolved.SeriesType = sonarr.SeriesTypeAnime
		tag = settings.AnimeTag
	} else {
		resolved.QualityProfileID, err = parseID("quality profile", settings.QualityProfile)
		if err != nil {
			return resolved, err
		}

		resolved.RootFolderID, err = parseID("root folder", settings.RootPath)
		if err != nil {
			return resolved, err
		}

		if profile != nil {
			if profile.RootPath > 0 {
				resolved.RootFolderID = int(profile.RootPath)
			}
			if profile.QualityProfile > 0 {
				resolved.QualityProfileID = int(profile.QualityProfile)
			}
		}

		tag = settings.Tag
	}

	if v, ok := positive(request.Show.QualityOverride); ok {
		resolved.QualityProfileID = v
	}
	if v, ok := positive(request.Show.RootFolder); ok {
		resolved.RootFolderID = v
	}
	if v, ok := positive(request.Show.LanguageProfile); ok {
		resolved.LanguageProfileID = v
	}

	resolved.RootFolderPath, err = r.rootFolderPath(ctx, resolved.RootFolderID)
	if errors.Is(err, ErrRootFolderNotFound) {
		// an empty path fails provisioning later, existing series can still be reconciled
		log.Errorw("root folder could not be resolved", "root_folder_id", resolved.RootFolderID, zap.Error(err))
	} else if err != nil {
		return resolved, err
	}

	if tag != nil {
		resolved.Tags = append(resolved.Tags, *tag)
	}

	if settings.SendUserTags {
		label := requesterLabel(request)
		if label == "" {
			log.Warn("request has no requester to tag")
		} else {
			id, err := r.tags.RequesterTag(ctx, label)
			if err != nil {
				return resolved, err
			}
			resolved.Tags = append(resolved.Tags, id)
		}
	}

	log.Debugw("resolved provider config",
		"quality_profile", resolved.QualityProfileID,
		"language_profile", resolved.LanguageProfileID,
		"root_folder", resolved.RootFolderPath,
		"series_type", resolved.SeriesType,
		"tags", resolved.Tags,
	)

	return resolved, nil
}

func (r ConfigResolver) userOverride(ctx context.Context, userID string) (*model.UserProfile, error) {
	if r.users == nil || userID == "" {
		return nil, nil
	}

	profile, err := r.users.GetUserProfile(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get overrides for user %q: %w", userID, err)
	}

	logger.FromCtx(ctx).Debugw("found user override", "user", userID)
	return profile, nil
}

// rootFolderPath maps a root folder id to its path. Id 0 is the first folder the DVR lists.
func (r ConfigResolver) rootFolderPath(ctx context.Context, id int) (string, error) {
	folders, err := r.client.GetRootFolders(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list root folders: %w", err)
	}

	if len(folders) == 0 {
		return "", fmt.Errorf("%w: no root folders configured", ErrRootFolderNotFound)
	}

	if id == 0 {
		return folders[0].Path, nil
	}

	for _, f := range folders {
		if f.ID == id {
			return f.Path, nil
		}
	}

	return "", fmt.Errorf("%w: id %d", ErrRootFolderNotFound, id)
}

func requesterLabel(request ShowRequest) string {
	if request.RequestedUserName != "" {
		return request.RequestedUserName
	}
	return request.RequestedUserID
}

func parseID(name, value string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an id", ErrConfiguration, name, value)
	}
	return id, nil
}

// parseWithFallback parses value and falls back to the standard value when it is unset or unparsable
func parseWithFallback(name, value, fallback string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(value))
	if err == nil {
		return id, nil
	}

	return parseID(name, fallback)
}
