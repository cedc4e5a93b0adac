package ports

import (
	"context"

	"github.com/khadamat/marketplace-api/internal/core/domain"
)

// SignUpResult distinguishes the two possible sign-up outcomes: a session
// established immediately, or an account parked until its email is
// confirmed. Token is empty in the pending case.
type SignUpResult struct {
	User                *domain.User
	Token               string
	PendingConfirmation bool
}

// SessionService exposes the auth operations and the current-user lookup.
type SessionService interface {
	SignUp(ctx context.Context, email, password, fullName string) (*SignUpResult, error)
	SignIn(ctx context.Context, email, password string) (string, *domain.User, error)
	// SignOut clears the server-side session. It succeeds even when the
	// session is already gone.
	SignOut(ctx context.Context, token string) error
	// Restore resolves a token back to its user. An expired, revoked, or
	// malformed token restores to a nil user with no error; only
	// infrastructure failures surface as errors.
	Restore(ctx context.Context, token string) (*domain.User, error)
}
