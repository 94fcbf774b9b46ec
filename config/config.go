package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Boarding string `json:"boarding" yaml:"boarding"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Boarding configuration for the merchant onboarding workflow
	Boarding *BoardingConfig `json:"boarding" yaml:"boarding"`

	// SMTP configuration for outbound mail (verification codes, completion)
	SMTP *SMTPConfig `json:"smtp" yaml:"smtp"`

	// KYC configuration for the identity verification provider
	KYC *KYCConfig `json:"kyc" yaml:"kyc"`

	// OpenBanking configuration for the bank account verification provider
	OpenBanking *OpenBankingConfig `json:"openBanking" yaml:"openBanking"`

	// AddressLookup configuration for the UK postcode lookup provider
	AddressLookup *AddressLookupConfig `json:"addressLookup" yaml:"addressLookup"`

	// ESign configuration for the e-signature provider
	ESign *ESignConfig `json:"esign" yaml:"esign"`

	// Documents configuration for agreement artifact storage
	Documents *DocumentsConfig `json:"documents" yaml:"documents"`

	// PubSub configuration for boarding lifecycle event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for invite resume-link QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

// AuthConfig defines credential and session-token configuration
type AuthConfig struct {
	BcryptCost       int           `json:"bcryptCost" yaml:"bcryptCost"`
	BoardingTokenTTL time.Duration `json:"boardingTokenTtl" yaml:"boardingTokenTtl"`
}

// BoardingConfig defines workflow-level settings for the boarding wizard
type BoardingConfig struct {
	// Base URL of the wizard frontend; invite links are {base}/board/{token}
	FrontendBaseURL string `json:"frontendBaseUrl" yaml:"frontendBaseUrl"`

	// Invite link validity window in days from issuance
	InviteExpireDays int `json:"inviteExpireDays" yaml:"inviteExpireDays"`

	// Email verification code validity
	CodeExpiry time.Duration `json:"codeExpiry" yaml:"codeExpiry"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SMTPConfig defines outbound mail configuration
type SMTPConfig struct {
	Host      string `json:"host" yaml:"host"`
	Port      int    `json:"port" yaml:"port"`
	Username  string `json:"username" yaml:"username"`
	Password  string `json:"password" yaml:"password"`
	FromName  string `json:"fromName" yaml:"fromName"`
	FromEmail string `json:"fromEmail" yaml:"fromEmail"`
	LogoURL   string `json:"logoUrl" yaml:"logoUrl"`
}

// KYCConfig defines the identity verification provider credentials
type KYCConfig struct {
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	AppToken  string        `json:"appToken" yaml:"appToken"`
	SecretKey string        `json:"secretKey" yaml:"secretKey"`
	LevelName string        `json:"levelName" yaml:"levelName"`
	TokenTTL  time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
}

// OpenBankingConfig defines the bank verification provider credentials
type OpenBankingConfig struct {
	AuthURL      string `json:"authUrl" yaml:"authUrl"`
	APIURL       string `json:"apiUrl" yaml:"apiUrl"`
	ClientID     string `json:"clientId" yaml:"clientId"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
	RedirectURI  string `json:"redirectUri" yaml:"redirectUri"`

	// Provider filter passed on the authorization URL
	Providers string `json:"providers" yaml:"providers"`
}

// AddressLookupConfig defines the postcode lookup provider credentials
type AddressLookupConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	APIKey  string `json:"apiKey" yaml:"apiKey"`
}

// ESignConfig defines the e-signature provider credentials
type ESignConfig struct {
	AuthServer     string `json:"authServer" yaml:"authServer"`
	BasePath       string `json:"basePath" yaml:"basePath"`
	IntegrationKey string `json:"integrationKey" yaml:"integrationKey"`
	UserID         string `json:"userId" yaml:"userId"`
	AccountID      string `json:"accountId" yaml:"accountId"`

	// RSA private key contents (PEM) or a path to a PEM file
	PrivateKey string `json:"privateKey" yaml:"privateKey"`

	// Base URL the provider redirects back to after signing
	ReturnURLBase string `json:"returnUrlBase" yaml:"returnUrlBase"`
}

// DocumentsConfig defines agreement artifact storage
type DocumentsConfig struct {
	// gocloud.dev blob URL, e.g. "file:///var/lib/boarding/agreements" or "gs://bucket"
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Blob key under which the blank specimen agreement is cached
	ServicesAgreementKey string `json:"servicesAgreementKey" yaml:"servicesAgreementKey"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: OPENBANKING_CLIENTID -> openBanking.clientId (not openbanking.clientid)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
