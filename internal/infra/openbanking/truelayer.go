// Package openbanking implements the bank account verification provider client.
package openbanking

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"boarding/config"
	"boarding/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// truelayerProvider implements service.BankDataProvider against the
// TrueLayer data and verification APIs.
type truelayerProvider struct {
	authURL      string
	apiURL       string
	clientID     string
	clientSecret string
	redirectURI  string
	providers    string
	client       *http.Client
	logger       *slog.Logger
}

// NewTrueLayerProvider is the constructor for truelayerProvider.
func NewTrueLayerProvider(params Params) (service.BankDataProvider, error) {
	cfg := params.Config.OpenBanking
	if cfg == nil || cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, errors.New("open banking credentials must be provided")
	}

	return &truelayerProvider{
		authURL:      cfg.AuthURL,
		apiURL:       cfg.APIURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		redirectURI:  cfg.RedirectURI,
		providers:    cfg.Providers,
		client:       &http.Client{Timeout: 30 * time.Second},
		logger:       params.Logger,
	}, nil
}

// AuthURL builds the user-facing authorization URL. The state value is
// round-tripped through the vendor and returned on the callback.
func (p *truelayerProvider) AuthURL(state string) string {
	query := url.Values{}
	query.Set("response_type", "code")
	query.Set("client_id", p.clientID)
	query.Set("scope", "info accounts verification")
	query.Set("redirect_uri", p.redirectURI)
	if p.providers != "" {
		query.Set("providers", p.providers)
	}
	query.Set("state", state)

	return p.authURL + "/?" + query.Encode()
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// ExchangeCode swaps an authorization code for an access token.
func (p *truelayerProvider) ExchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("client_id", p.clientID)
	form.Set("client_secret", p.clientSecret)
	form.Set("redirect_uri", p.redirectURI)
	form.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.authURL+"/connect/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "failed to build token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := p.send(ctx, req)
	if err != nil {
		return "", err
	}

	var resp tokenResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", errors.Wrap(err, "failed to decode token response")
	}
	if resp.AccessToken == "" {
		return "", errors.New("bank provider returned empty access token")
	}

	return resp.AccessToken, nil
}

type infoResponse struct {
	Results []struct {
		FullName string `json:"full_name"`
	} `json:"results"`
}

// FetchConnectedUser retrieves the identity of the connected bank user.
func (p *truelayerProvider) FetchConnectedUser(ctx context.Context, accessToken string) (*service.ConnectedUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.apiURL+"/data/v1/info", nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build info request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	body, err := p.send(ctx, req)
	if err != nil {
		return nil, err
	}

	var resp infoResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to decode info response")
	}
	if len(resp.Results) == 0 {
		return nil, errors.New("bank provider returned no connected user")
	}

	return &service.ConnectedUser{FullName: resp.Results[0].FullName}, nil
}

type accountsResponse struct {
	Results []struct {
		DisplayName   string `json:"display_name"`
		AccountNumber struct {
			SortCode string `json:"sort_code"`
			Number   string `json:"number"`
			IBAN     string `json:"iban"`
		} `json:"account_number"`
	} `json:"results"`
}

// FetchAccounts lists the accounts visible through the connection.
func (p *truelayerProvider) FetchAccounts(ctx context.Context, accessToken string) ([]service.ConnectedAccount, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.apiURL+"/data/v1/accounts", nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build accounts request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	body, err := p.send(ctx, req)
	if err != nil {
		return nil, err
	}

	var resp accountsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to decode accounts response")
	}

	accounts := make([]service.ConnectedAccount, 0, len(resp.Results))
	for _, result := range resp.Results {
		accounts = append(accounts, service.ConnectedAccount{
			DisplayName:   result.DisplayName,
			SortCode:      result.AccountNumber.SortCode,
			AccountNumber: result.AccountNumber.Number,
			IBAN:          result.AccountNumber.IBAN,
		})
	}

	return accounts, nil
}

type verifyRequest struct {
	Name          string `json:"name"`
	SortCode      string `json:"sort_code,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	IBAN          string `json:"iban,omitempty"`
}

type verifyResponse struct {
	Verified           bool     `json:"verified"`
	Match              bool     `json:"match"`
	AccountHolderNames []string `json:"account_holder_names"`
}

// VerifyAccount asks the vendor whether the connected user owns an account
// matching the given details under the given holder name.
func (p *truelayerProvider) VerifyAccount(ctx context.Context, accessToken string, details service.AccountDetails) (*service.AccountVerification, error) {
	payload, err := json.Marshal(verifyRequest{
		Name:          details.AccountHolderName,
		SortCode:      details.SortCode,
		AccountNumber: details.AccountNumber,
		IBAN:          details.IBAN,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode verify request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL+"/verification/v1/verify", strings.NewReader(string(payload)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build verify request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	body, err := p.send(ctx, req)
	if err != nil {
		return nil, err
	}

	var resp verifyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to decode verify response")
	}

	return &service.AccountVerification{
		Verified:           resp.Verified,
		Match:              resp.Match,
		AccountHolderNames: resp.AccountHolderNames,
	}, nil
}

func (p *truelayerProvider) send(ctx context.Context, req *http.Request) ([]byte, error) {
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "bank provider request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read bank provider response")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		p.logger.ErrorContext(ctx, "Bank provider request rejected",
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
		)

		return nil, errors.Errorf("bank provider returned status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
