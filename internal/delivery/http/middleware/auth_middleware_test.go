package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "boarding/internal/delivery/context"
	"boarding/internal/domain/service"
	mockservice "boarding/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	sessionID := uuid.New()

	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("valid.jwt.token").Return(&service.Claims{
		SessionID: sessionID,
		Email:     "ada@example.com",
	}, nil)

	m := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/boarding/session/saved-data", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	next := func(c echo.Context) error {
		called = true
		assert.Equal(t, sessionID, deliverycontext.GetSessionID(c))

		return nil
	}

	assert.NoError(t, m.Authenticate(next)(c))
	assert.True(t, called)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/boarding/session/saved-data", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		t.Fatal("next handler should not run")

		return nil
	}

	assert.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("garbage").Return(nil, errors.New("token is malformed"))

	m := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/boarding/session/saved-data", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		t.Fatal("next handler should not run")

		return nil
	}

	assert.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, uuid.Nil, deliverycontext.GetSessionID(c))
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/boarding/session/saved-data", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return nil }

	assert.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
