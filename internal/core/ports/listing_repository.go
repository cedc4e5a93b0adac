package ports

import (
	"context"

	"github.com/khadamat/marketplace-api/internal/core/domain"
)

// PropertyRepository defines persistence for real-estate listings.
type PropertyRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Property, error)
	// Delete removes a property by id, scoped to its owner. Returns
	// domain.ErrPropertyNotFound when no matching document exists.
	Delete(ctx context.Context, ownerID, id string) error
}

// VehicleRepository defines persistence for vehicle listings.
type VehicleRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Vehicle, error)
	// Delete removes a vehicle by id, scoped to its owner. Returns
	// domain.ErrVehicleNotFound when no matching document exists.
	Delete(ctx context.Context, ownerID, id string) error
}

// OrderRepository reads a customer's orders. Orders are never mutated from
// the dashboard; the delivery backend owns their lifecycle.
type OrderRepository interface {
	// ListByCustomer returns the customer's orders with store names resolved.
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
}
