package openbanking

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"boarding/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProvider(apiURL, authURL string) *truelayerProvider {
	return &truelayerProvider{
		authURL:      authURL,
		apiURL:       apiURL,
		clientID:     "client-id",
		clientSecret: "client-secret",
		redirectURI:  "https://api.example.com/bank/callback",
		providers:    "uk-ob-all",
		client:       &http.Client{Timeout: 5 * time.Second},
		logger:       slog.New(slog.DiscardHandler),
	}
}

func TestAuthURL(t *testing.T) {
	provider := testProvider("", "https://auth.example.com")

	raw := provider.AuthURL("invite-token-123")
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "client-id", query.Get("client_id"))
	assert.Equal(t, "info accounts verification", query.Get("scope"))
	assert.Equal(t, "uk-ob-all", query.Get("providers"))
	assert.Equal(t, "invite-token-123", query.Get("state"))
}

func TestExchangeCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "auth-code", r.PostForm.Get("code"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"access-123","token_type":"Bearer","expires_in":3600}`))
	}))
	defer srv.Close()

	provider := testProvider("", srv.URL)

	token, err := provider.ExchangeCode(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "access-123", token)
}

func TestFetchConnectedUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"full_name":"Ada Lovelace"}]}`))
	}))
	defer srv.Close()

	provider := testProvider(srv.URL, "")

	user, err := provider.FetchConnectedUser(context.Background(), "access-123")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", user.FullName)
}

func TestFetchAccounts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/v1/accounts", r.URL.Path)
		assert.Equal(t, "Bearer access-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[
			{"display_name":"Current Account","account_number":{"sort_code":"04-11-34","number":"12345678","iban":"GB29NWBK60161331926819"}},
			{"display_name":"Savings","account_number":{"iban":"GB82WEST12345698765432"}}
		]}`))
	}))
	defer srv.Close()

	provider := testProvider(srv.URL, "")

	accounts, err := provider.FetchAccounts(context.Background(), "access-123")
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "Current Account", accounts[0].DisplayName)
	assert.Equal(t, "04-11-34", accounts[0].SortCode)
	assert.Equal(t, "12345678", accounts[0].AccountNumber)
	assert.Equal(t, "GB82WEST12345698765432", accounts[1].IBAN)
	assert.Empty(t, accounts[1].SortCode)
}

func TestVerifyAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Ada Lovelace", req["name"])
		assert.Equal(t, "041134", req["sort_code"])
		assert.Equal(t, "12345678", req["account_number"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"verified":true,"match":true,"account_holder_names":["ADA LOVELACE"]}`))
	}))
	defer srv.Close()

	provider := testProvider(srv.URL, "")

	result, err := provider.VerifyAccount(context.Background(), "access-123", service.AccountDetails{
		AccountHolderName: "Ada Lovelace",
		SortCode:          "041134",
		AccountNumber:     "12345678",
	})
	require.NoError(t, err)
	assert.True(t, result.Verified)
	assert.True(t, result.Match)
	assert.Equal(t, []string{"ADA LOVELACE"}, result.AccountHolderNames)
}

func TestVerifyAccount_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	provider := testProvider(srv.URL, "")

	result, err := provider.VerifyAccount(context.Background(), "access-123", service.AccountDetails{})
	assert.Error(t, err)
	assert.Nil(t, result)
}
