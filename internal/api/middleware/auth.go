package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// SessionChecker verifies a session id is still live. Satisfied by the
// Redis session store.
type SessionChecker interface {
	Lookup(ctx context.Context, sessionID string) (string, error)
}

// Auth validates the JWT, confirms the session has not been revoked or
// expired server-side, and injects the user identity into context.
func Auth(jwtSecret string, sessions SessionChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := BearerToken(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
				if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sessionID, _ := claims["sid"].(string)
			userID, _ := claims["sub"].(string)
			if sessionID == "" || userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing session identity")
			}

			// A structurally valid token whose session was revoked or
			// expired reads as signed out.
			storedUserID, err := sessions.Lookup(c.Request().Context(), sessionID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "session check failed")
			}
			if storedUserID == "" || storedUserID != userID {
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
			}

			c.Set("user_id", userID)
			c.Set("session_id", sessionID)
			c.Set("email", claims["email"])

			return next(c)
		}
	}
}

// BearerToken extracts the bearer token from the Authorization header.
func BearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
