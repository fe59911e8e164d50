package dispatch

import (
	"context"
	"fmt"
	"slices"

	"github.com/kasuboski/dvrdispatch/pkg/logger"
	"golang.org/x/text/cases"
)

// TagSynchronizer makes sure the tags a request needs exist and are attached to the series
type TagSynchronizer struct {
	client PrimaryDVRClient
}

func NewTagSynchronizer(client PrimaryDVRClient) TagSynchronizer {
	return TagSynchronizer{client: client}
}

// RequesterTag returns the id of the tag labelled with the requester, creating it when missing.
// Labels are compared case-insensitively.
func (t TagSynchronizer) RequesterTag(ctx context.Context, label string) (int, error) {
	log := logger.FromCtx(ctx)

	tags, err := t.client.ListTags(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list tags: %w", err)
	}

	fold := cases.Fold()
	want := fold.String(label)
	for _, tag := range tags {
		if fold.String(tag.Label) == want {
			return tag.ID, nil
		}
	}

	log.Debugw("creating requester tag", "label", label)
	created, err := t.client.CreateTag(ctx, label)
	if err != nil {
		return 0, fmt.Errorf("failed to create tag %q: %w", label, err)
	}

	return created.ID, nil
}

// mergeTags unions desired into existing and reports whether anything was added
func mergeTags(existing, desired []int) ([]int, bool) {
	merged := slices.Clone(existing)
	added := false
	for _, id := range desired {
		if slices.Contains(merged, id) {
			continue
		}
		merged = append(merged, id)
		added = true
	}

	return merged, added
}
