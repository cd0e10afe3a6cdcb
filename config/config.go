package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "TIPDESK"

type Config struct {
	App    AppConfig
	DB     DBConfig
	JWT    JWTConfig
	Stripe StripeConfig
}

type AppConfig struct {
	Env  string `envconfig:"TIPDESK_APP_ENV" default:"development"`
	Port string `envconfig:"TIPDESK_APP_PORT" default:"8080"`
	// BaseURL is the public origin baked into room QR codes
	// (<BaseURL>/tip/<room_id>).
	BaseURL  string `envconfig:"TIPDESK_BASE_URL" default:"http://localhost:8080"`
	LogLevel string `envconfig:"TIPDESK_LOG_LEVEL" default:"info"`
}

func (a AppConfig) IsProduction() bool {
	return a.Env == "production"
}

type DBConfig struct {
	// mysql or sqlite
	Driver string `envconfig:"TIPDESK_DB_DRIVER" default:"mysql"`
	DSN    string `envconfig:"TIPDESK_DB_DSN"`

	Host     string `envconfig:"TIPDESK_DB_HOST" default:"127.0.0.1"`
	Port     int    `envconfig:"TIPDESK_DB_PORT" default:"3306"`
	User     string `envconfig:"TIPDESK_DB_USER"`
	Password string `envconfig:"TIPDESK_DB_PASSWORD"`
	Name     string `envconfig:"TIPDESK_DB_NAME" default:"tipdesk"`
}

type JWTConfig struct {
	Secret   string `envconfig:"TIPDESK_JWT_SECRET"`
	TTLHours int    `envconfig:"TIPDESK_JWT_TTL_HOURS" default:"24"`
}

type StripeConfig struct {
	SecretKey      string `envconfig:"TIPDESK_STRIPE_SECRET_KEY"`
	PublishableKey string `envconfig:"TIPDESK_STRIPE_PUBLISHABLE_KEY"`
	WebhookSecret  string `envconfig:"TIPDESK_STRIPE_WEBHOOK_SECRET"`
	Currency       string `envconfig:"TIPDESK_STRIPE_CURRENCY" default:"usd"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.DB.DSN == "" && cfg.DB.Driver == "mysql" {
		cfg.DB.DSN = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DB.User, cfg.DB.Password, cfg.DB.Host, cfg.DB.Port, cfg.DB.Name)
	}
	return &cfg, nil
}
