// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"boarding/config"
	"boarding/internal/domain/service"
)

const defaultBoardingTokenTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   string        // Secret key for signing boarding tokens.
	tokenTTL time.Duration // Time-to-live for boarding tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Boarding == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultBoardingTokenTTL
	if cfg.Auth != nil && cfg.Auth.BoardingTokenTTL > 0 {
		ttl = cfg.Auth.BoardingTokenTTL
	}

	return &jwtService{
		secret:   cfg.SecretKey.Boarding,
		tokenTTL: ttl,
	}, nil
}

// GenerateToken creates a new access token scoped to a boarding session.
func (s *jwtService) GenerateToken(sessionID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := service.Claims{
		SessionID: sessionID,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the validity of a token string.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	// Older tokens only carry the subject; recover the session ID from it.
	if claims.SessionID == uuid.Nil && claims.Subject != "" {
		id, parseErr := uuid.Parse(claims.Subject)
		if parseErr != nil {
			return nil, jwt.ErrTokenInvalidSubject
		}
		claims.SessionID = id
	}

	return claims, nil
}

// GetTokenDuration returns the configured lifetime of access tokens.
func (s *jwtService) GetTokenDuration() time.Duration {
	return s.tokenTTL
}
