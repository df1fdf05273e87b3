package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Upstream  UpstreamConfig
	Telemetry TelemetryConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type UpstreamConfig struct {
	BaseURL string `envconfig:"UPSTREAM_BASE_URL" default:"http://localhost:4000"`
	PushURL string `envconfig:"UPSTREAM_PUSH_URL" default:"ws://localhost:4000/ws"`
	// ServiceToken authorises BFF data reads; the kiosk relies on session cookies instead.
	ServiceToken string        `envconfig:"UPSTREAM_SERVICE_TOKEN" default:""`
	Timeout      time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`
}

type TelemetryConfig struct {
	EnrichLatestWeight   bool          `envconfig:"TELEMETRY_ENRICH_LATEST_WEIGHT" default:"true"`
	EnrichConcurrency    int           `envconfig:"TELEMETRY_ENRICH_CONCURRENCY" default:"8"`
	PendingLimit         int           `envconfig:"TELEMETRY_PENDING_LIMIT" default:"256"`
	SummaryInterval      time.Duration `envconfig:"TELEMETRY_SUMMARY_INTERVAL" default:"30s"`
	PingInterval         time.Duration `envconfig:"TELEMETRY_PING_INTERVAL" default:"30s"`
	ReconnectMaxInterval time.Duration `envconfig:"TELEMETRY_RECONNECT_MAX_INTERVAL" default:"30s"`
}

// KioskConfig is the subset the terminal kiosk reads; it has no database or cookies.
type KioskConfig struct {
	Log       LogConfig
	Upstream  UpstreamConfig
	Telemetry TelemetryConfig
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func LoadKioskConfig() (KioskConfig, error) {
	var cfg KioskConfig
	err := envconfig.Process("", &cfg)
	if err != nil {
		return KioskConfig{}, fmt.Errorf("failed to process env config: %w", err)
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
			TimeZone: "UTC",
			MaxConns: 4,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-dashboard-tests",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Upstream: UpstreamConfig{
			BaseURL: "http://127.0.0.1:4000",
			PushURL: "ws://127.0.0.1:4000/ws",
			Timeout: 2 * time.Second,
		},
		Telemetry: TelemetryConfig{
			EnrichLatestWeight:   true,
			EnrichConcurrency:    4,
			PendingLimit:         16,
			SummaryInterval:      time.Second,
			PingInterval:         time.Second,
			ReconnectMaxInterval: 200 * time.Millisecond,
		},
	}
}
