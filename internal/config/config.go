package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	pkgRetry "github.com/n46/deckgen/internal/pkg/retry"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR,notEmpty"`

	// Database configuration
	DatabaseURL         string        `env:"DATABASE_URL,notEmpty"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int           `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`

	// Gamma generation service
	GammaConnectorCfg GammaConnectorConfig `envPrefix:"GAMMA_"`

	// Theme list cache
	ThemeCacheTTL time.Duration `env:"THEME_CACHE_TTL" envDefault:"15m"`

	// Progress snapshots for finished jobs stay readable for this long
	ProgressTTL time.Duration `env:"PROGRESS_TTL" envDefault:"30m"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL,notEmpty"`

	// CORS configuration
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS,notEmpty"`

	// Environment (set from flag, not from env var)
	Environment string
}

// GammaConnectorConfig holds everything needed to talk to the Gamma API.
type GammaConnectorConfig struct {
	HTTPClientConfig
	APIKey              string               `env:"API_KEY,notEmpty"`
	GenerationsEndpoint string               `env:"GENERATIONS_ENDPOINT" envDefault:"/generations"`
	ThemesEndpoint      string               `env:"THEMES_ENDPOINT" envDefault:"/themes"`
	Retry               pkgRetry.RetryConfig `envPrefix:"RETRY_"`

	// Polling schedule for in-flight generations
	PollInitialDelay time.Duration `env:"POLL_INITIAL_DELAY" envDefault:"2s"`
	PollGrowthFactor float64       `env:"POLL_GROWTH_FACTOR" envDefault:"1.2"`
	PollMaxDelay     time.Duration `env:"POLL_MAX_DELAY" envDefault:"5s"`
	PollMaxAttempts  int           `env:"POLL_MAX_ATTEMPTS" envDefault:"60"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT,notEmpty"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT,notEmpty"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE,notEmpty"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT,notEmpty"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT,notEmpty"`
	Url                   string        `env:"SERVICE_URL,notEmpty"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		return fmt.Errorf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns)
	}

	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns)
	}

	gamma := cfg.GammaConnectorCfg
	if gamma.PollGrowthFactor < 1.0 {
		return fmt.Errorf("GAMMA_POLL_GROWTH_FACTOR must be >= 1.0, got %v", gamma.PollGrowthFactor)
	}

	if gamma.PollMaxAttempts < 1 {
		return fmt.Errorf("GAMMA_POLL_MAX_ATTEMPTS must be >= 1, got %d", gamma.PollMaxAttempts)
	}

	if gamma.PollInitialDelay <= 0 || gamma.PollMaxDelay < gamma.PollInitialDelay {
		return fmt.Errorf("invalid gamma poll delays: initial=%v max=%v", gamma.PollInitialDelay, gamma.PollMaxDelay)
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
