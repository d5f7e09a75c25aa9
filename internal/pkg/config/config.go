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
	Server     ServerConfig
	DB         DBConfig
	Redis      RedisConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	FX         FXConfig
	Commission CommissionConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Mexico_City"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"REDIS_CACHE_TTL" default:"30s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Mexico_City"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-21600"` // -6*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// FXConfig points the rate resolver at its primary and fallback sources.
// The resolver has no retry policy; a short timeout and a typed failure are
// the whole contract.
type FXConfig struct {
	PrimaryURL   string        `envconfig:"FX_PRIMARY_URL" default:"https://www.banxico.org.mx/SieAPIRest/service/v1/series/SF43718/datos"`
	PrimaryToken string        `envconfig:"FX_PRIMARY_TOKEN" default:""`
	FallbackURL  string        `envconfig:"FX_FALLBACK_URL" default:"https://sidofqa.segob.gob.mx/dof/sidof/indicadores/158"`
	Timeout      time.Duration `envconfig:"FX_TIMEOUT" default:"4s"`
}

// CommissionConfig holds the vendor rate per sale segment as a percentage.
// A rate change only affects sales that settle afterwards; settled sales keep
// the commission frozen on the row.
type CommissionConfig struct {
	GeneralRatePercent       float64 `envconfig:"COMMISSION_GENERAL_RATE" default:"10"`
	NationalRatePercent      float64 `envconfig:"COMMISSION_NATIONAL_RATE" default:"10"`
	InternationalRatePercent float64 `envconfig:"COMMISSION_INTERNATIONAL_RATE" default:"10"`
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
			TimeZone: "America/Mexico_City",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Mexico_City",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -21600,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "24h",
		},
		Commission: CommissionConfig{
			GeneralRatePercent:       10,
			NationalRatePercent:      10,
			InternationalRatePercent: 10,
		},
	}
}
