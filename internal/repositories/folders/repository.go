// Package folders provides the repository interface and types for
// host-managed folder records.
package folders

import (
	"context"

	"github.com/vttbr/compendium-i18n/internal/entities/compendium"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=foldersmock github.com/vttbr/compendium-i18n/internal/repositories/folders Repository

// CreateInput contains parameters for creating a folder record
type CreateInput struct {
	Folder *compendium.Folder
}

// CreateOutput contains the result of creating a folder record
type CreateOutput struct {
	Folder *compendium.Folder
}

// GetInput contains parameters for retrieving a folder record
type GetInput struct {
	ID string
}

// GetOutput contains the result of retrieving a folder record
type GetOutput struct {
	Folder *compendium.Folder
}

// ListInput contains parameters for listing folder records.
// An empty Kind lists every folder.
type ListInput struct {
	Kind string
}

// ListOutput contains the result of listing folder records
type ListOutput struct {
	Folders []*compendium.Folder
}

// Repository defines the interface for folder storage operations
type Repository interface {
	// Create stores a new folder record
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a folder record by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List retrieves folder records, optionally filtered by kind
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Update replaces an existing folder record (renames, flag writes)
	Update(ctx context.Context, folder *compendium.Folder) error
}
