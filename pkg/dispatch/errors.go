package dispatch

import (
	"errors"
	"strings"
)

var (
	// ErrConfiguration means an id in the settings could not be parsed and had no usable fallback
	ErrConfiguration = errors.New("invalid provider configuration")
	// ErrProviderRejected means the DVR refused to create the series
	ErrProviderRejected = errors.New("provider rejected the series")
	// ErrEpisodesNotReady means the DVR never listed any episodes before the poll timed out
	ErrEpisodesNotReady = errors.New("episodes not available before timeout")
	// ErrRootFolderNotFound means the configured root folder id is not known to the DVR
	ErrRootFolderNotFound = errors.New("root folder not found")
)

type ProviderRejectedError struct {
	Messages []string
}

func (e *ProviderRejectedError) Error() string {
	return ErrProviderRejected.Error() + ": " + strings.Join(e.Messages, ",")
}

func (e *ProviderRejectedError) Unwrap() error {
	return ErrProviderRejected
}
