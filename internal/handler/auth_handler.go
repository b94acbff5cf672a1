package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"taskdeck/internal/auth"
	apperrors "taskdeck/internal/errors"
	"taskdeck/internal/middleware"
	"taskdeck/internal/service"
)

// refreshCookieName carries the refresh token. It is never returned in a
// JSON body.
const refreshCookieName = "refreshToken"

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a registration request.
type RegisterRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6,max=24"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6,max=24"`
}

// TokenResponse carries a fresh access token. The refresh token travels only
// in the cookie.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.BadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.authService.Register(c.Request().Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			return apperrors.BadRequest("User already exists")
		}
		return apperrors.Internal("Error creating user")
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message": "User created successfully",
	})
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.BadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	pair, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return apperrors.Unauthorized("Invalid credentials")
		}
		return apperrors.Internal("Error logging in")
	}

	setRefreshCookie(c, pair.RefreshToken)
	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: pair.AccessToken,
		ExpiresIn:   int(auth.AccessTokenTTL.Seconds()),
	})
}

// Reissue godoc
// @Summary Exchange the refresh cookie for a new token pair
// @Tags auth
// @Produce json
// @Success 200 {object} TokenResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/reissue-token [post]
func (h *AuthHandler) Reissue(c echo.Context) error {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		return apperrors.Unauthorized("Refresh token is required")
	}

	pair, err := h.authService.Reissue(c.Request().Context(), cookie.Value)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidToken) {
			return apperrors.Unauthorized("Invalid token")
		}
		return apperrors.Internal("Error reissuing token")
	}

	// Rotation-on-use: the cookie is replaced on every successful reissue.
	setRefreshCookie(c, pair.RefreshToken)
	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: pair.AccessToken,
		ExpiresIn:   int(auth.AccessTokenTTL.Seconds()),
	})
}

// Status godoc
// @Summary Report whether the bearer token is valid
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/status [post]
func (h *AuthHandler) Status(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return apperrors.Unauthorized("Invalid token")
	}
	return c.JSON(http.StatusOK, echo.Map{"userId": userID})
}

func setRefreshCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/api/v1/auth",
		MaxAge:   int(auth.RefreshTokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
