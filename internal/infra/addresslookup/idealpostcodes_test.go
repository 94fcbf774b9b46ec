package addresslookup

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLookupProvider(baseURL string) *idealPostcodesProvider {
	return &idealPostcodesProvider{
		baseURL: baseURL,
		apiKey:  "api-key-123",
		client:  &http.Client{Timeout: 5 * time.Second},
		logger:  slog.New(slog.DiscardHandler),
	}
}

func TestLookupPostcode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/postcodes/SW1A 2AA", r.URL.Path)
		assert.Equal(t, "api-key-123", r.URL.Query().Get("api_key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":2000,"result":[
			{"line_1":"10 Downing Street","line_2":"","post_town":"LONDON","postcode":"SW1A 2AA"},
			{"line_1":"11 Downing Street","line_2":"Westminster","town_or_city":"London","postcode":""},
			{"line_1":"","line_2":"Orphan Row","post_town":"LONDON","postcode":"SW1A 2AA"}
		]}`))
	}))
	defer srv.Close()

	provider := testLookupProvider(srv.URL)

	addresses, err := provider.LookupPostcode(context.Background(), "SW1A 2AA")
	require.NoError(t, err)
	require.Len(t, addresses, 2)

	assert.Equal(t, "10 Downing Street", addresses[0].Line1)
	assert.Equal(t, "LONDON", addresses[0].Town)
	assert.Equal(t, "SW1A 2AA", addresses[0].Postcode)

	// The second row has no post_town and no postcode, so the town falls
	// back to town_or_city and the postcode to the queried one.
	assert.Equal(t, "Westminster", addresses[1].Line2)
	assert.Equal(t, "London", addresses[1].Town)
	assert.Equal(t, "SW1A 2AA", addresses[1].Postcode)
}

func TestLookupPostcode_CreditExhausted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"code":4020,"message":"Balance depleted"}`))
	}))
	defer srv.Close()

	provider := testLookupProvider(srv.URL)

	addresses, err := provider.LookupPostcode(context.Background(), "SW1A 2AA")
	require.Error(t, err)
	assert.Nil(t, addresses)
	assert.Contains(t, err.Error(), "credit has run out")
}

func TestLookupPostcode_VendorError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	provider := testLookupProvider(srv.URL)

	addresses, err := provider.LookupPostcode(context.Background(), "SW1A 2AA")
	assert.Error(t, err)
	assert.Nil(t, addresses)
}
