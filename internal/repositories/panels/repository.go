// Package panels provides the repository interface and types for
// rendered UI panel snapshots.
package panels

import (
	"context"

	"github.com/vttbr/compendium-i18n/internal/entities/compendium"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=panelsmock github.com/vttbr/compendium-i18n/internal/repositories/panels Repository

// GetInput contains parameters for retrieving a panel snapshot
type GetInput struct {
	ID string
}

// GetOutput contains the result of retrieving a panel snapshot
type GetOutput struct {
	Panel *compendium.Panel
}

// Repository defines the interface for panel snapshot storage
type Repository interface {
	// Get retrieves a panel snapshot by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save stores a panel snapshot, replacing any existing one
	Save(ctx context.Context, panel *compendium.Panel) error
}
