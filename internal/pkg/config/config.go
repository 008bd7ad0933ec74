package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   gateway credentials), security settings
// - default: Values common across all environments (timeouts, TTLs), standard
//   settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	Gateway   GatewayConfig
	Shortlink ShortlinkConfig
	CORS      CORSConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// GatewayConfig holds the MercadoPago credentials and webhook policy.
// WebhookSecret empty means signature verification runs in open mode.
type GatewayConfig struct {
	AccessToken     string        `envconfig:"MP_ACCESS_TOKEN" required:"true"`
	WebhookSecret   string        `envconfig:"MP_WEBHOOK_SECRET" default:""`
	APIBaseURL      string        `envconfig:"MP_API_BASE_URL" default:"https://api.mercadopago.com"`
	RequestTimeout  time.Duration `envconfig:"MP_REQUEST_TIMEOUT" default:"5s"`
	TimestampWindow time.Duration `envconfig:"MP_TIMESTAMP_WINDOW" default:"10m"`
}

type ShortlinkConfig struct {
	BaseURL            string        `envconfig:"BASE_URL" required:"true"`
	ReturnURL          string        `envconfig:"MP_RETURN_URL" required:"true"`
	AmountCents        int64         `envconfig:"TRANSACTION_AMOUNT_CENTS" required:"true"`
	CurrencyID         string        `envconfig:"TRANSACTION_CURRENCY" default:"BRL"`
	DedupTTL           time.Duration `envconfig:"WEBHOOK_DEDUP_TTL" default:"10m"`
	AllocationAttempts int           `envconfig:"SHORT_CODE_ATTEMPTS" default:"5"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Signature,X-Request-Id"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	// Best effort: a missing .env is fine outside local development.
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Redis: RedisConfig{
			Addr: "localhost:16379",
		},
		Gateway: GatewayConfig{
			AccessToken:     "TEST-access-token",
			WebhookSecret:   "test-webhook-secret",
			APIBaseURL:      "https://api.mercadopago.com",
			RequestTimeout:  5 * time.Second,
			TimestampWindow: 10 * time.Minute,
		},
		Shortlink: ShortlinkConfig{
			BaseURL:            "https://sho.rt",
			ReturnURL:          "https://front.example.com",
			AmountCents:        990,
			CurrencyID:         "BRL",
			DedupTTL:           10 * time.Minute,
			AllocationAttempts: 5,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Signature", "X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
