package config

import (
	"fmt"
	"strings"
)

// ConfigError aggregates configuration validation errors.
type ConfigError struct {
	Errors []string
}

func (e *ConfigError) Error() string {
	if len(e.Errors) == 0 {
		return ""
	}

	parts := []string{"validation failed:"}
	for _, err := range e.Errors {
		parts = append(parts, fmt.Sprintf("  - %s", err))
	}

	return strings.Join(parts, "\n")
}
