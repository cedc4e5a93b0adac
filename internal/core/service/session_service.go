package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/khadamat/marketplace-api/internal/core/domain"
	"github.com/khadamat/marketplace-api/internal/core/ports"
)

const minPasswordLength = 8

// SessionStore abstracts the server-side session state (Redis). A session
// that has expired out of the store is indistinguishable from one that was
// revoked: both restore to a nil user.
type SessionStore interface {
	Save(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	// Lookup returns the user id for a session, or "" when the session is
	// unknown or expired.
	Lookup(ctx context.Context, sessionID string) (string, error)
	Revoke(ctx context.Context, sessionID string) error
}

// SessionService implements sign-up, sign-in, sign-out, and session restore.
type SessionService struct {
	users    ports.UserRepository
	sessions SessionStore
	logger   zerolog.Logger

	jwtSecret string
	tokenTTL  time.Duration
	// requireConfirmation parks new accounts until email confirmation
	// instead of establishing a session at sign-up.
	requireConfirmation bool
}

func NewSessionService(users ports.UserRepository, sessions SessionStore, logger zerolog.Logger, jwtSecret string, tokenTTL time.Duration, requireConfirmation bool) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &SessionService{
		users:               users,
		sessions:            sessions,
		logger:              logger,
		jwtSecret:           jwtSecret,
		tokenTTL:            tokenTTL,
		requireConfirmation: requireConfirmation,
	}
}

func (s *SessionService) SignUp(ctx context.Context, email, password, fullName string) (*ports.SignUpResult, error) {
	if email == "" || password == "" || fullName == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if len(password) < minPasswordLength {
		return nil, domain.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	if s.requireConfirmation {
		s.logger.Info().Str("email", user.Email).Msg("account created, awaiting confirmation")
		return &ports.SignUpResult{User: user, PendingConfirmation: true}, nil
	}

	token, err := s.establishSession(ctx, user)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", user.ID).Msg("account created, session established")
	return &ports.SignUpResult{User: user, Token: token}, nil
}

func (s *SessionService) SignIn(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// Unknown email reports the same way as a wrong password.
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.establishSession(ctx, user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("signed in")
	return token, user, nil
}

// SignOut clears the server-side session. A malformed token or an already
// revoked session is not an error the caller has to act on.
func (s *SessionService) SignOut(ctx context.Context, token string) error {
	sessionID, _, ok := s.parseToken(token)
	if !ok {
		return nil
	}
	if err := s.sessions.Revoke(ctx, sessionID); err != nil {
		s.logger.Warn().Err(err).Msg("session revoke failed")
		return nil
	}
	s.logger.Info().Str("session_id", sessionID).Msg("signed out")
	return nil
}

// Restore resolves a token back to its user. Expired, revoked, or invalid
// tokens restore to a nil user; only infrastructure failures return errors.
func (s *SessionService) Restore(ctx context.Context, token string) (*domain.User, error) {
	sessionID, userID, ok := s.parseToken(token)
	if !ok {
		return nil, nil
	}

	storedUserID, err := s.sessions.Lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if storedUserID == "" || storedUserID != userID {
		return nil, nil
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (s *SessionService) establishSession(ctx context.Context, user *domain.User) (string, error) {
	sessionID := uuid.NewString()
	if err := s.sessions.Save(ctx, sessionID, user.ID, s.tokenTTL); err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"sid":   sessionID,
		"email": user.Email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// parseToken validates the token signature and expiry and extracts the
// session and user ids. ok is false for anything that should be treated as
// signed out.
func (s *SessionService) parseToken(token string) (sessionID, userID string, ok bool) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return "", "", false
	}

	sessionID, _ = claims["sid"].(string)
	userID, _ = claims["sub"].(string)
	if sessionID == "" || userID == "" {
		return "", "", false
	}
	return sessionID, userID, true
}
