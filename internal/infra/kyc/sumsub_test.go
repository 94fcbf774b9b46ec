package kyc

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSign(t *testing.T) {
	sig := sign("secret", "1700000000", http.MethodPost, "/resources/accessTokens?userId=abc", nil)

	mac := hmac.New(sha256.New, []byte("secret"))
	mac.Write([]byte("1700000000POST/resources/accessTokens?userId=abc"))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), sig)
}

func TestSign_WithBody(t *testing.T) {
	body := []byte(`{"key":"value"}`)
	withBody := sign("secret", "1700000000", http.MethodPost, "/path", body)
	withoutBody := sign("secret", "1700000000", http.MethodPost, "/path", nil)

	assert.NotEqual(t, withoutBody, withBody)
}

func TestCreateAccessToken(t *testing.T) {
	var gotToken, gotSig, gotTs string
	var gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-App-Token")
		gotSig = r.Header.Get("X-App-Access-Sig")
		gotTs = r.Header.Get("X-App-Access-Ts")
		gotPath = r.URL.RequestURI()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"sdk-token","userId":"ext-user-1"}`))
	}))
	defer srv.Close()

	provider := &sumsubProvider{
		baseURL:   srv.URL,
		appToken:  "app-token",
		secretKey: "app-secret",
		levelName: "basic-kyc",
		tokenTTL:  10 * time.Minute,
		client:    srv.Client(),
		logger:    slog.New(slog.DiscardHandler),
		now:       func() time.Time { return time.Unix(1700000000, 0) },
	}

	token, err := provider.CreateAccessToken(context.Background(), "ext-user-1")
	require.NoError(t, err)
	assert.Equal(t, "sdk-token", token.Token)
	assert.Equal(t, "ext-user-1", token.UserID)

	assert.Equal(t, "app-token", gotToken)
	assert.Equal(t, "1700000000", gotTs)
	assert.Equal(t, sign("app-secret", "1700000000", http.MethodPost, gotPath, nil), gotSig)

	assert.Contains(t, gotPath, "userId=ext-user-1")
	assert.Contains(t, gotPath, "levelName=basic-kyc")
	assert.Contains(t, gotPath, "ttlInSecs=600")
}

func TestCreateAccessToken_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"description":"invalid app token"}`))
	}))
	defer srv.Close()

	provider := &sumsubProvider{
		baseURL:   srv.URL,
		appToken:  "bad-token",
		secretKey: "app-secret",
		levelName: "basic-kyc",
		tokenTTL:  10 * time.Minute,
		client:    srv.Client(),
		logger:    slog.New(slog.DiscardHandler),
		now:       time.Now,
	}

	token, err := provider.CreateAccessToken(context.Background(), "ext-user-1")
	assert.Error(t, err)
	assert.Nil(t, token)
	assert.Contains(t, err.Error(), "401")
}
