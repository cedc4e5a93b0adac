package ports

import (
	"context"

	"github.com/khadamat/marketplace-api/internal/core/domain"
)

// UserRepository defines persistence for account records.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrUserExists when the
	// email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
