package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
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

	// Database holds GORM tuning shared by every connection
	Database struct {
		SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
	} `json:"database" yaml:"database"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Scraper configuration for zone scraping runs
	Scraper *ScraperConfig `json:"scraper" yaml:"scraper"`

	// Qualification rubric thresholds
	Qualification *QualificationConfig `json:"qualification" yaml:"qualification"`

	// Provider configuration for the business listing provider
	Provider *ProviderConfig `json:"provider" yaml:"provider"`

	// Strategy configuration for zone generation
	Strategy *StrategyConfig `json:"strategy" yaml:"strategy"`

	// Payment configuration for the billing provider and its webhook
	Payment *PaymentConfig `json:"payment" yaml:"payment"`

	Activation *ActivationConfig `json:"activation" yaml:"activation"`

	Sites *SitesConfig `json:"sites" yaml:"sites"`

	ShortLink *ShortLinkConfig `json:"shortLink" yaml:"shortLink"`

	// QRCode configuration for short link QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Filter *FilterConfig `json:"filter" yaml:"filter"`

	// Redis configuration for the report cache, optional
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Cache *CacheConfig `json:"cache" yaml:"cache"`

	// Archive configuration for raw provider payloads, optional
	Archive *ArchiveConfig `json:"archive" yaml:"archive"`

	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	TokenTTL   time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// ScraperConfig defines retry and scheduling settings for zone scrapes
type ScraperConfig struct {
	MaxAttempts    int           `json:"maxAttempts" yaml:"maxAttempts"`
	InitialBackoff time.Duration `json:"initialBackoff" yaml:"initialBackoff"`
	MaxBackoff     time.Duration `json:"maxBackoff" yaml:"maxBackoff"`
	ResultLimit    int           `json:"resultLimit" yaml:"resultLimit"`

	// Zones left in_progress longer than this are returned to pending by the sweeper
	StaleThreshold time.Duration `json:"staleThreshold" yaml:"staleThreshold"`
	SweepInterval  time.Duration `json:"sweepInterval" yaml:"sweepInterval"`

	// Maximum number of concurrent publishes when dispatching a whole strategy
	DispatchConcurrency int `json:"dispatchConcurrency" yaml:"dispatchConcurrency"`
}

// QualificationConfig defines the scoring rubric thresholds
type QualificationConfig struct {
	Threshold  int     `json:"threshold" yaml:"threshold"`
	MinRating  float64 `json:"minRating" yaml:"minRating"`
	MinReviews int     `json:"minReviews" yaml:"minReviews"`

	// Hosts whose websites are flagged for manual review (social pages, directories)
	ReviewHosts []string `json:"reviewHosts" yaml:"reviewHosts"`
}

// ProviderConfig defines the scraping provider HTTP client
type ProviderConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	APIKey  string        `json:"apiKey" yaml:"apiKey"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// StrategyConfig defines how zone strategies are generated
type StrategyConfig struct {
	// Generator type: "grid" for the built-in tile partition or "remote" for the HTTP collaborator
	Generator   string        `json:"generator" yaml:"generator"`
	BaseURL     string        `json:"baseUrl" yaml:"baseUrl"`
	APIKey      string        `json:"apiKey" yaml:"apiKey"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`
	MaxAttempts int           `json:"maxAttempts" yaml:"maxAttempts"`
	GridZoom    int           `json:"gridZoom" yaml:"gridZoom"`
	MaxZones    int           `json:"maxZones" yaml:"maxZones"`
}

// PaymentConfig defines the payment provider client and webhook verification
type PaymentConfig struct {
	BaseURL       string        `json:"baseUrl" yaml:"baseUrl"`
	APIKey        string        `json:"apiKey" yaml:"apiKey"`
	Timeout       time.Duration `json:"timeout" yaml:"timeout"`
	PlanID        string        `json:"planId" yaml:"planId"`
	WebhookSecret string        `json:"webhookSecret" yaml:"webhookSecret"`
}

// ActivationConfig defines the activation pipeline settings
type ActivationConfig struct {
	LeaseDuration  time.Duration `json:"leaseDuration" yaml:"leaseDuration"`
	StorageRetries int           `json:"storageRetries" yaml:"storageRetries"`
	RetryBackoff   time.Duration `json:"retryBackoff" yaml:"retryBackoff"`
}

// SitesConfig defines where generated sites are served
type SitesConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// ShortLinkConfig defines short link issuance
type ShortLinkConfig struct {
	// BaseURL is the public origin of the redirect server; tokens are served under /l/.
	BaseURL          string `json:"baseUrl" yaml:"baseUrl"`
	TokenLength      int    `json:"tokenLength" yaml:"tokenLength"`
	MaxIssueAttempts int    `json:"maxIssueAttempts" yaml:"maxIssueAttempts"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// FilterConfig defines business search pagination and export limits
type FilterConfig struct {
	DefaultPageSize int `json:"defaultPageSize" yaml:"defaultPageSize"`
	MaxPageSize     int `json:"maxPageSize" yaml:"maxPageSize"`
	ExportLimit     int `json:"exportLimit" yaml:"exportLimit"`
}

// RedisConfig defines the Redis connection used for caching
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// CacheConfig defines cache TTLs
type CacheConfig struct {
	ReportTTL time.Duration `json:"reportTtl" yaml:"reportTtl"`
}

// ArchiveConfig defines the blob bucket for raw provider payloads
type ArchiveConfig struct {
	// Bucket URL understood by gocloud.dev/blob, e.g. gs://bucket, file:///tmp/archive, mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	Prefix    string `json:"prefix" yaml:"prefix"`
}

// WorkerConfig defines the scrape worker pool
type WorkerConfig struct {
	Concurrency int `json:"concurrency" yaml:"concurrency"`
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
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
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
	// Local runs keep secrets in .env; deployed environments set real variables.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	ApplyDefaults(cfg)

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
