// Package settings provides read access to host settings, primarily
// the active interface language.
package settings

import (
	"context"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=settingsmock github.com/vttbr/compendium-i18n/internal/repositories/settings Repository

// Well-known setting keys
const (
	// KeyActiveLocale is the host's active interface language code
	KeyActiveLocale = "core.language"
)

// GetInput contains parameters for reading a setting
type GetInput struct {
	Key string
}

// GetOutput contains the result of reading a setting
type GetOutput struct {
	Value string
}

// SetInput contains parameters for writing a setting
type SetInput struct {
	Key   string
	Value string
}

// Repository defines the interface for host settings access
type Repository interface {
	// Get reads a setting value; NotFound when the host never set it
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Set writes a setting value
	Set(ctx context.Context, input SetInput) error
}
