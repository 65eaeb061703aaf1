package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/scribekit/scribe/internal/provider/openai"
	redisstore "github.com/scribekit/scribe/internal/store/redis"
)

// Config represents the service configuration.
type Config struct {
	Server ServerConfig
	CORS   CORSConfig
	Quota  QuotaConfig
	OpenAI openai.Config
	Redis  redisstore.Config
}

// ServerConfig contains HTTP server settings. WriteTimeout defaults to 0
// (disabled) because streamed generations can legitimately run for minutes;
// the hosting platform's request ceiling is the backstop.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"0"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// QuotaConfig contains word-quota thresholds. Limits below Floor are treated
// as stale records and raised to TrialLimit on first use.
type QuotaConfig struct {
	Floor      int `env:"QUOTA_FLOOR"       envDefault:"1000"`
	TrialLimit int `env:"QUOTA_TRIAL_LIMIT" envDefault:"25000"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out

	Server *ServerConfig
	CORS   *CORSConfig
	Quota  *QuotaConfig
	OpenAI *openai.Config
	Redis  *redisstore.Config
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		Out:    dig.Out{},
		Server: &cfg.Server,
		CORS:   &cfg.CORS,
		Quota:  &cfg.Quota,
		OpenAI: &cfg.OpenAI,
		Redis:  &cfg.Redis,
	}
}
