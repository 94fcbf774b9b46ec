// Package kyc implements the identity verification provider client.
package kyc

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"boarding/config"
	"boarding/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultTokenTTL = 10 * time.Minute

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// sumsubProvider implements service.KYCProvider against the Sumsub REST API.
// Every request carries an HMAC-SHA256 signature over
// "{unix-ts}{METHOD}{path+query}{body}" keyed with the app secret.
type sumsubProvider struct {
	baseURL   string
	appToken  string
	secretKey string
	levelName string
	tokenTTL  time.Duration
	client    *http.Client
	logger    *slog.Logger
	now       func() time.Time
}

// NewSumsubProvider is the constructor for sumsubProvider.
func NewSumsubProvider(params Params) (service.KYCProvider, error) {
	cfg := params.Config.KYC
	if cfg == nil || cfg.AppToken == "" || cfg.SecretKey == "" {
		return nil, errors.New("kyc provider credentials must be provided")
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &sumsubProvider{
		baseURL:   cfg.BaseURL,
		appToken:  cfg.AppToken,
		secretKey: cfg.SecretKey,
		levelName: cfg.LevelName,
		tokenTTL:  ttl,
		client:    &http.Client{Timeout: 30 * time.Second},
		logger:    params.Logger,
		now:       time.Now,
	}, nil
}

type accessTokenResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

// CreateAccessToken issues an SDK access token for the given external user ID.
func (p *sumsubProvider) CreateAccessToken(ctx context.Context, externalUserID string) (*service.KYCAccessToken, error) {
	query := url.Values{}
	query.Set("userId", externalUserID)
	query.Set("levelName", p.levelName)
	query.Set("ttlInSecs", strconv.Itoa(int(p.tokenTTL.Seconds())))

	path := "/resources/accessTokens?" + query.Encode()

	body, err := p.do(ctx, http.MethodPost, path, nil)
	if err != nil {
		return nil, err
	}

	var resp accessTokenResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to decode access token response")
	}
	if resp.Token == "" {
		return nil, errors.New("kyc provider returned empty access token")
	}

	return &service.KYCAccessToken{
		Token:  resp.Token,
		UserID: resp.UserID,
	}, nil
}

// do executes a signed request against the vendor API.
func (p *sumsubProvider) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build kyc request")
	}

	ts := strconv.FormatInt(p.now().Unix(), 10)
	req.Header.Set("X-App-Token", p.appToken)
	req.Header.Set("X-App-Access-Sig", sign(p.secretKey, ts, method, path, payload))
	req.Header.Set("X-App-Access-Ts", ts)
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "kyc request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read kyc response")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		p.logger.ErrorContext(ctx, "KYC provider request rejected",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)

		return nil, errors.Errorf("kyc provider returned status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// sign computes the request signature: hex(HMAC-SHA256(secret, ts + METHOD + path + body)).
func sign(secret, ts, method, path string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s%s%s", ts, method, path)
	if len(payload) > 0 {
		mac.Write(payload)
	}

	return hex.EncodeToString(mac.Sum(nil))
}
