package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "AMORA"

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Geocode  GeocodeConfig
	Matching MatchingConfig
}

type ServerConfig struct {
	Port         string        `envconfig:"AMORA_SERVER_PORT" default:"8080"`
	Env          string        `envconfig:"AMORA_ENV" default:"development"`
	LogLevel     string        `envconfig:"AMORA_LOG_LEVEL" default:"info"`
	LogFormat    string        `envconfig:"AMORA_LOG_FORMAT" default:"json"`
	ReadTimeout  time.Duration `envconfig:"AMORA_SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout time.Duration `envconfig:"AMORA_SERVER_WRITE_TIMEOUT" default:"10s"`
}

type DatabaseConfig struct {
	DSN             string        `envconfig:"AMORA_DB_DSN" default:"amora:amora@tcp(localhost:3306)/amora?charset=utf8mb4&parseTime=True&loc=Local"`
	MaxIdleConns    int           `envconfig:"AMORA_DB_MAX_IDLE_CONNS" default:"10"`
	MaxOpenConns    int           `envconfig:"AMORA_DB_MAX_OPEN_CONNS" default:"100"`
	ConnMaxLifetime time.Duration `envconfig:"AMORA_DB_CONN_MAX_LIFETIME" default:"1h"`
}

type RedisConfig struct {
	// Empty address disables the geocode cache.
	Address     string        `envconfig:"AMORA_REDIS_ADDR"`
	Password    string        `envconfig:"AMORA_REDIS_PASSWORD"`
	DB          int           `envconfig:"AMORA_REDIS_DB" default:"0"`
	GeocodeTTL  time.Duration `envconfig:"AMORA_REDIS_GEOCODE_TTL" default:"720h"`
	DialTimeout time.Duration `envconfig:"AMORA_REDIS_DIAL_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	AccessSecret string        `envconfig:"AMORA_JWT_ACCESS_SECRET" default:"change-me-in-production"`
	AccessExpiry time.Duration `envconfig:"AMORA_JWT_ACCESS_EXPIRY" default:"15m"`
	Issuer       string        `envconfig:"AMORA_JWT_ISSUER" default:"amora"`
}

type GeocodeConfig struct {
	// Empty key puts the geocoder in offline fallback mode.
	APIKey  string        `envconfig:"AMORA_GEOCODE_API_KEY"`
	BaseURL string        `envconfig:"AMORA_GEOCODE_BASE_URL"`
	Timeout time.Duration `envconfig:"AMORA_GEOCODE_TIMEOUT" default:"10s"`
}

type MatchingConfig struct {
	// Hard cap on the nearby search radius regardless of user preference.
	MaxRadiusKm  float64 `envconfig:"AMORA_MATCHING_MAX_RADIUS_KM" default:"500"`
	NearbyLimit  int     `envconfig:"AMORA_MATCHING_NEARBY_LIMIT" default:"50"`
	MinAge       int     `envconfig:"AMORA_MATCHING_MIN_AGE" default:"18"`
}

// Load reads .env when present, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
