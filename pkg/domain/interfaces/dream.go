package interfaces

import (
	"context"

	"github.com/oneirolab/dreamvault/pkg/domain/model"
	"github.com/oneirolab/dreamvault/pkg/domain/types"
)

// DreamRepository defines the interface for dream record access.
// Implementations own the authoritative collection: callers receive and
// hand over deep copies, never shared references.
type DreamRepository interface {
	// Create inserts a new record. An empty ID is assigned; a duplicate ID
	// is rejected.
	Create(ctx context.Context, dream *model.Dream) (*model.Dream, error)

	// Get retrieves a record by ID
	Get(ctx context.Context, id types.DreamID) (*model.Dream, error)

	// List retrieves all records, most recent first
	List(ctx context.Context) ([]*model.Dream, error)

	// Update replaces the record matching the given ID
	Update(ctx context.Context, dream *model.Dream) (*model.Dream, error)

	// Delete removes a record by ID. Deleting an absent ID is not an error.
	Delete(ctx context.Context, id types.DreamID) error
}
