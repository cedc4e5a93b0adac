package ports

import (
	"context"

	"github.com/khadamat/marketplace-api/internal/core/domain"
)

// Catalog is the public storefront view: active categories and active
// stores ranked by rating.
type Catalog struct {
	Categories []domain.Category
	Stores     []domain.Store
	// Degraded is true when at least one slot defaulted to empty after a
	// query failure.
	Degraded bool
}

// CatalogService loads the public catalog. Search and category filtering
// happen over the fetched list, never by re-querying.
type CatalogService interface {
	FetchCatalog(ctx context.Context) (*Catalog, error)
}
