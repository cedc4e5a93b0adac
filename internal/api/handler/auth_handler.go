package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/khadamat/marketplace-api/internal/api/metrics"
	"github.com/khadamat/marketplace-api/internal/api/middleware"
	"github.com/khadamat/marketplace-api/internal/core/domain"
	"github.com/khadamat/marketplace-api/internal/core/ports"
)

// AuthHandler handles the session provider endpoints.
type AuthHandler struct {
	sessions ports.SessionService
}

func NewAuthHandler(sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type signUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Token               string       `json:"token,omitempty"`
	User                *domain.User `json:"user"`
	PendingConfirmation bool         `json:"pending_confirmation,omitempty"`
}

// SignUp creates a new account.
//
// @Summary      Create a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Registration details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.sessions.SignUp(c.Request().Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		return err
	}

	if !result.PendingConfirmation {
		metrics.SessionsIssuedTotal.WithLabelValues("signup").Inc()
	}

	return c.JSON(http.StatusCreated, sessionResponse{
		Token:               result.Token,
		User:                result.User,
		PendingConfirmation: result.PendingConfirmation,
	})
}

// SignIn authenticates a user and establishes a session.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.sessions.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	metrics.SessionsIssuedTotal.WithLabelValues("signin").Inc()
	return c.JSON(http.StatusOK, sessionResponse{Token: token, User: user})
}

// SignOut clears the session. Always succeeds from the caller's point of
// view, even with a stale or malformed token.
//
// @Summary      Sign out
// @Tags         auth
// @Success      204
// @Router       /v1/auth/signout [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	if token, ok := middleware.BearerToken(c); ok {
		if err := h.sessions.SignOut(c.Request().Context(), token); err != nil {
			return err
		}
		metrics.SessionsRevokedTotal.Inc()
	}
	return c.NoContent(http.StatusNoContent)
}

// Session restores the current user from a bearer token. Absent, expired,
// or revoked sessions report a null user rather than an error.
//
// @Summary      Restore the current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /v1/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	token, ok := middleware.BearerToken(c)
	if !ok {
		return c.JSON(http.StatusOK, sessionResponse{User: nil})
	}

	user, err := h.sessions.Restore(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{User: user})
}
