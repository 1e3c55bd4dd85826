package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/almasezhe/warauction/internal/cart"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const defaultConfigPath = "./config/local.yaml"

type HTTPServer struct {
	Addr            string        `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"15s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"5s"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER" env-required:"true"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD" env-required:"true"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME" env-required:"true"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env-default:"25"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env-default:"5m"`
	ConnMaxIdleTime time.Duration `yaml:"CONN_MAX_IDLE_TIME" env-default:"1m"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"5m"`
	CatalogTTL time.Duration `yaml:"catalog_ttl" env:"CACHE_CATALOG_TTL" env-default:"1m"`
	SessionTTL time.Duration `yaml:"session_ttl" env:"CACHE_SESSION_TTL" env-default:"24h"`
}

// RateLimit bounds checkout submissions per user within a sliding window.
type RateLimit struct {
	WindowSize  time.Duration `yaml:"window_size" env:"RATE_WINDOW_SIZE" env-default:"1m"`
	MaxAttempts int64         `yaml:"max_attempts" env:"RATE_MAX_ATTEMPTS" env-default:"5"`
}

type Security struct {
	JWTKey string `yaml:"JWT_KEY" env:"JWT_KEY" env-required:"true"`
}

type Stripe struct {
	APIKey        string `yaml:"STRIPE_API_KEY" env:"STRIPE_API_KEY" env-default:""`
	WebhookSecret string `yaml:"STRIPE_WEBHOOK_SECRET" env:"STRIPE_WEBHOOK_SECRET" env-default:""`
	Currency      string `yaml:"STRIPE_CURRENCY" env:"STRIPE_CURRENCY" env-default:"usd"`
}

type SendGrid struct {
	APIKey    string `yaml:"API_KEY" env:"SENDGRID_API_KEY" env-default:""`
	FromEmail string `yaml:"FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:"orders@warauction.local"`
	FromName  string `yaml:"FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"War Auction"`
}

type Otel struct {
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"warauction"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:""`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

// PricingProfile overrides one named pricing profile. Amounts are whole currency units.
type PricingProfile struct {
	FreeChars       int   `yaml:"free_chars"`
	PerCharRate     int64 `yaml:"per_char_rate"`
	RushFee         int64 `yaml:"rush_fee"`
	ExtraServiceFee int64 `yaml:"extra_service_fee"`
}

type Pricing struct {
	DefaultProfile string                    `yaml:"default_profile" env:"PRICING_DEFAULT_PROFILE" env-default:"cart"`
	Profiles       map[string]PricingProfile `yaml:"profiles"`
}

type Config struct {
	Env          string       `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer   HTTPServer   `yaml:"http_server"`
	Database     Database     `yaml:"database"`
	RedisConnect RedisConnect `yaml:"redis"`
	Cache        CacheConfig  `yaml:"cache"`
	RateLimit    RateLimit    `yaml:"rate_limit"`
	Security     Security     `yaml:"security"`
	Stripe       Stripe       `yaml:"stripe"`
	SendGrid     SendGrid     `yaml:"sendgrid"`
	Otel         Otel         `yaml:"otel"`
	Pricing      Pricing      `yaml:"pricing"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "path to the config file")
		flag.Parse()

		configPath = *flags
	}

	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return cfg
}

func LoadConfigFromPath(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if _, err := cfg.Pricing.Profile(cfg.Pricing.DefaultProfile); err != nil {
		return nil, err
	}

	if _, err := currency.ParseISO(cfg.Stripe.Currency); err != nil {
		return nil, fmt.Errorf("invalid stripe currency %q: %w", cfg.Stripe.Currency, err)
	}

	return &cfg, nil
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s", r.Username, r.Password, r.Host, r.Port)
}

// Profile resolves a named pricing profile. The built-in "cart" and "single"
// profiles are always available; entries under pricing.profiles replace them
// or add new ones.
func (p Pricing) Profile(name string) (cart.Profile, error) {
	if override, ok := p.Profiles[name]; ok {
		if override.FreeChars < 0 || override.PerCharRate < 0 || override.RushFee < 0 || override.ExtraServiceFee < 0 {
			return cart.Profile{}, fmt.Errorf("pricing profile %q has negative values", name)
		}

		return cart.Profile{
			Name:            name,
			FreeChars:       override.FreeChars,
			PerCharRate:     decimal.NewFromInt(override.PerCharRate),
			RushFee:         decimal.NewFromInt(override.RushFee),
			ExtraServiceFee: decimal.NewFromInt(override.ExtraServiceFee),
		}, nil
	}

	switch name {
	case cart.ProfileCart:
		return cart.CartProfile(), nil
	case cart.ProfileSingle:
		return cart.SingleProfile(), nil
	}

	return cart.Profile{}, fmt.Errorf("unknown pricing profile %q", name)
}
