package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	FeatureFlags FeatureFlagsConfig
	Stripe       StripeConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ECOBAG_APP_ENV" required:"true"`
	Port         string `envconfig:"ECOBAG_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"ECOBAG_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ECOBAG_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"ECOBAG_DB_DSN"`

	Host     string `envconfig:"ECOBAG_DB_HOST"`
	Port     int    `envconfig:"ECOBAG_DB_PORT" default:"5432"`
	User     string `envconfig:"ECOBAG_DB_USER"`
	Password string `envconfig:"ECOBAG_DB_PASSWORD"`
	Name     string `envconfig:"ECOBAG_DB_NAME"`
	SSLMode  string `envconfig:"ECOBAG_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"ECOBAG_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"ECOBAG_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"ECOBAG_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ECOBAG_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"ECOBAG_REDIS_URL"`
	Address      string        `envconfig:"ECOBAG_REDIS_ADDR"`
	Password     string        `envconfig:"ECOBAG_REDIS_PASSWORD"`
	DB           int           `envconfig:"ECOBAG_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ECOBAG_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ECOBAG_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ECOBAG_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ECOBAG_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ECOBAG_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"ECOBAG_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"ECOBAG_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"ECOBAG_JWT_EXPIRATION_MINUTES" default:"60"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"ECOBAG_AUTO_MIGRATE" default:"false"`
}

type StripeConfig struct {
	APIKey        string `envconfig:"ECOBAG_STRIPE_API_KEY"`
	WebhookSecret string `envconfig:"ECOBAG_STRIPE_WEBHOOK_SECRET"`
	Env           string `envconfig:"ECOBAG_STRIPE_ENV" default:"test"`
}

// Configured reports whether payment processing can be enabled at all.
// An unset key is the explicit degraded mode: payment endpoints answer 503.
func (s StripeConfig) Configured() bool {
	return strings.TrimSpace(s.APIKey) != "" && strings.TrimSpace(s.WebhookSecret) != ""
}

// Environment returns the normalized Stripe environment (test/live).
func (s StripeConfig) Environment() string {
	env := strings.TrimSpace(strings.ToLower(s.Env))
	if env == "" {
		return "test"
	}
	return env
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	required := map[string]string{
		"ECOBAG_DB_HOST": db.Host,
		"ECOBAG_DB_USER": db.User,
		"ECOBAG_DB_NAME": db.Name,
	}
	for _, env := range []string{"ECOBAG_DB_HOST", "ECOBAG_DB_USER", "ECOBAG_DB_NAME"} {
		if required[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either ECOBAG_DB_DSN or %s are required", strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
