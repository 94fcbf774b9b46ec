// Package esign implements the e-signature provider client.
package esign

import (
	"bytes"
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"boarding/config"
	"boarding/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	jwtGrantType     = "urn:ietf:params:oauth:grant-type:jwt-bearer"
	assertionTTL     = time.Hour
	tokenExpirySkew  = time.Minute
	signerClientID   = "1000" // Embedded signing recipient client user ID.
	signingAuthType  = "none"
	documentFileExt  = "pdf"
	combinedDocument = "combined"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// docusignProvider implements service.SignatureProvider against the
// DocuSign eSignature REST API using the JWT grant flow.
type docusignProvider struct {
	authServer     string
	basePath       string
	integrationKey string
	userID         string
	accountID      string
	privateKey     *rsa.PrivateKey
	client         *http.Client
	logger         *slog.Logger
	now            func() time.Time

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewDocuSignProvider is the constructor for docusignProvider.
func NewDocuSignProvider(params Params) (service.SignatureProvider, error) {
	cfg := params.Config.ESign
	if cfg == nil || cfg.IntegrationKey == "" || cfg.UserID == "" || cfg.AccountID == "" {
		return nil, errors.New("e-signature credentials must be provided")
	}

	key, err := loadPrivateKey(cfg.PrivateKey)
	if err != nil {
		return nil, err
	}

	return &docusignProvider{
		authServer:     cfg.AuthServer,
		basePath:       cfg.BasePath,
		integrationKey: cfg.IntegrationKey,
		userID:         cfg.UserID,
		accountID:      cfg.AccountID,
		privateKey:     key,
		client:         &http.Client{Timeout: 60 * time.Second},
		logger:         params.Logger,
		now:            time.Now,
	}, nil
}

// loadPrivateKey accepts either PEM contents or a path to a PEM file.
func loadPrivateKey(raw string) (*rsa.PrivateKey, error) {
	pemData := []byte(raw)
	if !strings.Contains(raw, "-----BEGIN") {
		data, err := os.ReadFile(raw)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read e-signature private key file")
		}
		pemData = data
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM(pemData)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse e-signature private key")
	}

	return key, nil
}

type oauthTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// token returns a cached OAuth access token, refreshing via the JWT grant
// when the cached one is absent or near expiry.
func (p *docusignProvider) token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.accessToken != "" && p.now().Before(p.tokenExpiry.Add(-tokenExpirySkew)) {
		return p.accessToken, nil
	}

	now := p.now()
	claims := jwt.MapClaims{
		"iss":   p.integrationKey,
		"sub":   p.userID,
		"aud":   p.authServer,
		"iat":   now.Unix(),
		"exp":   now.Add(assertionTTL).Unix(),
		"scope": "signature impersonation",
	}

	assertion, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(p.privateKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign jwt assertion")
	}

	form := url.Values{}
	form.Set("grant_type", jwtGrantType)
	form.Set("assertion", assertion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://"+p.authServer+"/oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "failed to build oauth request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := p.send(ctx, req)
	if err != nil {
		return "", err
	}

	var resp oauthTokenResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", errors.Wrap(err, "failed to decode oauth response")
	}
	if resp.AccessToken == "" {
		return "", errors.New("e-signature provider returned empty access token")
	}

	p.accessToken = resp.AccessToken
	p.tokenExpiry = now.Add(time.Duration(resp.ExpiresIn) * time.Second)

	return p.accessToken, nil
}

type envelopeDocument struct {
	DocumentBase64 string `json:"documentBase64"`
	Name           string `json:"name"`
	FileExtension  string `json:"fileExtension"`
	DocumentID     string `json:"documentId"`
}

type envelopeSigner struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	RecipientID  string `json:"recipientId"`
	ClientUserID string `json:"clientUserId"`
}

type envelopeDefinition struct {
	EmailSubject string             `json:"emailSubject"`
	Documents    []envelopeDocument `json:"documents"`
	Recipients   struct {
		Signers []envelopeSigner `json:"signers"`
	} `json:"recipients"`
	Status string `json:"status"`
}

type envelopeResponse struct {
	EnvelopeID string `json:"envelopeId"`
}

// CreateEnvelope submits a document for signing and returns the envelope ID.
func (p *docusignProvider) CreateEnvelope(ctx context.Context, reqData service.EnvelopeRequest) (string, error) {
	definition := envelopeDefinition{
		EmailSubject: "Please sign your services agreement",
		Documents: []envelopeDocument{{
			DocumentBase64: base64.StdEncoding.EncodeToString(reqData.DocumentPDF),
			Name:           reqData.DocumentName,
			FileExtension:  documentFileExt,
			DocumentID:     "1",
		}},
		Status: "sent",
	}
	definition.Recipients.Signers = []envelopeSigner{{
		Email:        reqData.SignerEmail,
		Name:         reqData.SignerName,
		RecipientID:  "1",
		ClientUserID: signerClientID,
	}}

	body, err := p.post(ctx, "/envelopes", definition)
	if err != nil {
		return "", err
	}

	var resp envelopeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", errors.Wrap(err, "failed to decode envelope response")
	}
	if resp.EnvelopeID == "" {
		return "", errors.New("e-signature provider returned empty envelope ID")
	}

	return resp.EnvelopeID, nil
}

type recipientViewRequest struct {
	ReturnURL            string `json:"returnUrl"`
	AuthenticationMethod string `json:"authenticationMethod"`
	Email                string `json:"email"`
	UserName             string `json:"userName"`
	ClientUserID         string `json:"clientUserId"`
}

type recipientViewResponse struct {
	URL string `json:"url"`
}

// SigningURL returns the embedded signing ceremony URL for an envelope.
func (p *docusignProvider) SigningURL(ctx context.Context, envelopeID, signerName, signerEmail, returnURL string) (string, error) {
	body, err := p.post(ctx, "/envelopes/"+envelopeID+"/views/recipient", recipientViewRequest{
		ReturnURL:            returnURL,
		AuthenticationMethod: signingAuthType,
		Email:                signerEmail,
		UserName:             signerName,
		ClientUserID:         signerClientID,
	})
	if err != nil {
		return "", err
	}

	var resp recipientViewResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", errors.Wrap(err, "failed to decode recipient view response")
	}
	if resp.URL == "" {
		return "", errors.New("e-signature provider returned empty signing URL")
	}

	return resp.URL, nil
}

// DownloadSignedDocument retrieves the combined signed document for an envelope.
func (p *docusignProvider) DownloadSignedDocument(ctx context.Context, envelopeID string) ([]byte, error) {
	token, err := p.token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.accountURL()+"/envelopes/"+envelopeID+"/documents/"+combinedDocument, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build document request")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	return p.send(ctx, req)
}

func (p *docusignProvider) accountURL() string {
	return p.basePath + "/v2.1/accounts/" + p.accountID
}

func (p *docusignProvider) post(ctx context.Context, path string, payload any) ([]byte, error) {
	token, err := p.token(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode request payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.accountURL()+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build e-signature request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	return p.send(ctx, req)
}

func (p *docusignProvider) send(ctx context.Context, req *http.Request) ([]byte, error) {
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "e-signature request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read e-signature response")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		p.logger.ErrorContext(ctx, "E-signature provider request rejected",
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
		)

		return nil, errors.Errorf("e-signature provider returned status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
