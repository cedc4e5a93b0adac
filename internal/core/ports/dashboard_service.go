package ports

import (
	"context"

	"github.com/khadamat/marketplace-api/internal/core/domain"
)

// Collection names a deletable dashboard collection. Orders are read-only
// and deliberately absent.
type Collection string

const (
	CollectionStores     Collection = "stores"
	CollectionProperties Collection = "properties"
	CollectionVehicles   Collection = "vehicles"
)

// Valid reports whether c names a known deletable collection.
func (c Collection) Valid() bool {
	switch c {
	case CollectionStores, CollectionProperties, CollectionVehicles:
		return true
	}
	return false
}

// DashboardStats carries the per-collection counts for the stats cards.
type DashboardStats struct {
	Stores     int `json:"stores"`
	Properties int `json:"properties"`
	Vehicles   int `json:"vehicles"`
	Orders     int `json:"orders"`
}

// DashboardSnapshot is the composite view of everything the current user
// owns, plus their orders. A failed slot arrives empty, never nil-crashes
// the rest of the page.
type DashboardSnapshot struct {
	Stores     []domain.Store
	Properties []domain.Property
	Vehicles   []domain.Vehicle
	Orders     []domain.Order
	Stats      DashboardStats
}

// DashboardService orchestrates the ownership-scoped dashboard view.
type DashboardService interface {
	// FetchAll loads all four collections for the user. Individual query
	// failures degrade that slot to empty; only context cancellation
	// aborts the whole fetch.
	FetchAll(ctx context.Context, userID string) (*DashboardSnapshot, error)
	// Delete removes one record and resynchronises by refetching the full
	// snapshot. On failure the caller's previous snapshot remains valid.
	Delete(ctx context.Context, userID string, collection Collection, id string) (*DashboardSnapshot, error)
}
