// Package addresslookup implements the UK postcode address lookup client.
package addresslookup

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"boarding/config"
	"boarding/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultBaseURL = "https://api.ideal-postcodes.co.uk"

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// idealPostcodesProvider implements service.AddressLookupProvider against
// the Ideal Postcodes API.
type idealPostcodesProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *slog.Logger
}

// NewIdealPostcodesProvider is the constructor for idealPostcodesProvider.
func NewIdealPostcodesProvider(params Params) (service.AddressLookupProvider, error) {
	cfg := params.Config.AddressLookup
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("address lookup API key must be provided")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &idealPostcodesProvider{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  params.Logger,
	}, nil
}

type lookupResponse struct {
	Code   int `json:"code"`
	Result []struct {
		Line1      string `json:"line_1"`
		Line2      string `json:"line_2"`
		PostTown   string `json:"post_town"`
		TownOrCity string `json:"town_or_city"`
		Postcode   string `json:"postcode"`
	} `json:"result"`
}

// LookupPostcode retrieves the deliverable addresses for a UK postcode. The
// vendor treats the path segment as case and space insensitive.
func (p *idealPostcodesProvider) LookupPostcode(ctx context.Context, postcode string) ([]service.Address, error) {
	lookupURL := p.baseURL + "/v1/postcodes/" + url.PathEscape(postcode) + "?api_key=" + url.QueryEscape(p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build postcode lookup request")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "address lookup request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read address lookup response")
	}

	// 402 means the account ran out of lookups, either credit (4020) or
	// the configured daily limit (4021).
	if resp.StatusCode == http.StatusPaymentRequired {
		var vendor struct {
			Code int `json:"code"`
		}
		_ = json.Unmarshal(body, &vendor)

		p.logger.ErrorContext(ctx, "Address lookup account exhausted",
			slog.Int("vendor_code", vendor.Code),
		)

		switch vendor.Code {
		case 4020:
			return nil, errors.New("address lookup credit has run out")
		case 4021:
			return nil, errors.New("address lookup daily limit reached")
		}

		return nil, errors.New("address lookup credit or limit reached")
	}

	if resp.StatusCode != http.StatusOK {
		p.logger.ErrorContext(ctx, "Address lookup request rejected",
			slog.Int("status", resp.StatusCode),
		)

		return nil, errors.Errorf("address lookup returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed lookupResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.Wrap(err, "failed to decode address lookup response")
	}

	addresses := make([]service.Address, 0, len(parsed.Result))
	for _, result := range parsed.Result {
		if result.Line1 == "" {
			continue
		}

		town := result.PostTown
		if town == "" {
			town = result.TownOrCity
		}
		pc := result.Postcode
		if pc == "" {
			pc = postcode
		}

		addresses = append(addresses, service.Address{
			Line1:    result.Line1,
			Line2:    result.Line2,
			Town:     town,
			Postcode: pc,
		})
	}

	return addresses, nil
}
