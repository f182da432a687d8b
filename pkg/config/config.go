package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// AppEnvDev and AppEnvProd are the recognized runtime environments.
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Checkout CheckoutConfig
	Payments PaymentsConfig
	Cart     CartConfig
	GenAI    GenAIConfig
	Sweeper  SweeperConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"WARUNGKITA_APP_ENV" default:"development"`
	Port         string `envconfig:"WARUNGKITA_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"WARUNGKITA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"WARUNGKITA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// DBConfig describes the catalog store. The default DSN keeps the whole
// catalog in process memory so a restart resets every row.
type DBConfig struct {
	DSN          string `envconfig:"WARUNGKITA_DB_DSN" default:"file::memory:?cache=shared"`
	MaxOpenConns int    `envconfig:"WARUNGKITA_DB_MAX_OPEN_CONNS" default:"1"`
	MaxIdleConns int    `envconfig:"WARUNGKITA_DB_MAX_IDLE_CONNS" default:"1"`
}

type CheckoutConfig struct {
	SessionTTLMinutes int `envconfig:"WARUNGKITA_CHECKOUT_SESSION_TTL_MINUTES" default:"30"`
}

// SessionTTL returns the checkout session TTL configured in minutes.
func (c CheckoutConfig) SessionTTL() time.Duration {
	if c.SessionTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

type PaymentsConfig struct {
	// ConfirmationDelay is how long the simulated QRIS confirmation waits
	// before flipping confirming to confirmed. There is no gateway behind it.
	ConfirmationDelay time.Duration `envconfig:"WARUNGKITA_PAYMENTS_CONFIRMATION_DELAY" default:"3s"`
}

type CartConfig struct {
	// RemovalGraceMS is returned to clients as an animation hint only. The
	// cart mutates before the response is written.
	RemovalGraceMS int `envconfig:"WARUNGKITA_CART_REMOVAL_GRACE_MS" default:"300"`
}

type GenAIConfig struct {
	APIKey  string `envconfig:"WARUNGKITA_GENAI_API_KEY"`
	BaseURL string `envconfig:"WARUNGKITA_GENAI_BASE_URL"`
}

type SweeperConfig struct {
	Interval time.Duration `envconfig:"WARUNGKITA_SWEEPER_INTERVAL" default:"5m"`
}
