package ports

import (
	"context"

	"github.com/khadamat/marketplace-api/internal/core/domain"
)

// CategoryRepository reads the delivery_categories reference table.
type CategoryRepository interface {
	// ListActive returns active categories ordered by name.
	ListActive(ctx context.Context) ([]domain.Category, error)
}

// StoreRepository defines persistence for delivery stores.
type StoreRepository interface {
	// ListByOwner returns the owner's stores with category names resolved.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Store, error)
	// ListActive returns public stores ordered by rating descending.
	// Equal ratings are ordered by id so the ranking is deterministic.
	ListActive(ctx context.Context) ([]domain.Store, error)
	// Delete removes a store by id, scoped to its owner. Returns
	// domain.ErrStoreNotFound when no matching document exists.
	Delete(ctx context.Context, ownerID, id string) error
}
