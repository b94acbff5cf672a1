package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	apperrors "taskdeck/internal/errors"
)

const (
	// TokenTypeAccess and TokenTypeRefresh discriminate token usage. A token
	// of one type is never accepted where the other is expected.
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	// AccessTokenTTL is the duration for which access tokens are valid.
	AccessTokenTTL = time.Hour
	// RefreshTokenTTL is the duration for which refresh tokens are valid.
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// Claims represents the signed token payload.
type Claims struct {
	UserID    uint   `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, expiring tokens. Access and
// refresh tokens are signed with different secrets, so a leaked access
// secret cannot forge refresh tokens.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
}

// NewTokenService creates a token service with distinct secrets per type.
func NewTokenService(accessSecret, refreshSecret string) *TokenService {
	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
	}
}

// IssueAccessToken signs a short-lived access token for the user.
func (s *TokenService) IssueAccessToken(userID uint) (string, error) {
	return s.issue(userID, TokenTypeAccess, s.accessSecret, AccessTokenTTL)
}

// IssueRefreshToken signs a long-lived refresh token for the user. Each
// refresh token carries a unique JTI, so rotation always produces a
// distinct token even within the same second.
func (s *TokenService) IssueRefreshToken(userID uint) (string, error) {
	return s.issue(userID, TokenTypeRefresh, s.refreshSecret, RefreshTokenTTL)
}

// VerifyAccessToken validates signature, expiry and the access discriminator.
func (s *TokenService) VerifyAccessToken(token string) (*Claims, error) {
	return s.verify(token, s.accessSecret, TokenTypeAccess)
}

// VerifyRefreshToken validates signature, expiry and the refresh discriminator.
func (s *TokenService) VerifyRefreshToken(token string) (*Claims, error) {
	return s.verify(token, s.refreshSecret, TokenTypeRefresh)
}

func (s *TokenService) issue(userID uint, tokenType string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// verify collapses every failure mode (malformed input, bad signature,
// expiry, type mismatch) into ErrInvalidToken so callers cannot leak which
// check failed.
func (s *TokenService) verify(tokenString string, secret []byte, expectedType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if claims.TokenType != expectedType {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
