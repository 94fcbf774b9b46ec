package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for boarding access tokens. The subject
// is the boarding session ID, so a token grants access to one session only.
type Claims struct {
	SessionID uuid.UUID
	Email     string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a new access token scoped to a boarding session.
	GenerateToken(sessionID uuid.UUID, email string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// GetTokenDuration returns the configured lifetime of access tokens.
	GetTokenDuration() time.Duration
}
