package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
// The env tag names the variable a field is read from; validate holds its rules.
type Config struct {
	Port        int    `env:"PORT" validate:"min=1,max=65535"`
	LogLevel    string `env:"LOG_LEVEL" validate:"oneof=debug info warn warning error"`
	LogFormat   string `env:"LOG_FORMAT" validate:"oneof=text json"`
	LogDir      string `env:"LOG_DIR"`
	Environment string `env:"ENVIRONMENT"`
	ServiceName string `env:"SERVICE_NAME"`
	Version     string `env:"VERSION"`

	DBUser            string        `env:"DB_USER" validate:"required"`
	DBPassword        string        `env:"DB_PASSWORD"`
	DBHost            string        `env:"DB_HOST" validate:"required"`
	DBPort            string        `env:"DB_PORT" validate:"required,numeric"`
	DBName            string        `env:"DB_NAME" validate:"required"`
	DBMaxConns        int32         `env:"DB_MAX_CONNS" validate:"min=1"`
	DBMaxConnIdle     time.Duration `env:"DB_MAX_CONN_IDLE" validate:"gte=0s"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" validate:"gte=0s"`
	RunMigrations     bool          `env:"RUN_MIGRATIONS"`

	APIKey         string   `env:"API_KEY"` // Guards price submission when set
	TrustedProxies []string `env:"TRUSTED_PROXIES" validate:"dive,ip|cidr"`

	SeedFile              string        `env:"CATALOG_SEED_FILE"` // Synced into the database at startup when set
	PriceCacheSize        int           `env:"PRICE_CACHE_SIZE" validate:"min=1"`
	PriceCacheTTL         time.Duration `env:"PRICE_CACHE_TTL" validate:"gte=0s"`
	CatalogReloadInterval time.Duration `env:"CATALOG_RELOAD_INTERVAL" validate:"gte=0s"` // 0 disables reloads
	RankingWorkers        int           `env:"RANKING_WORKERS" validate:"min=1"`
	RankingLimit          int           `env:"RANKING_LIMIT" validate:"min=1"`

	DiscordWebhookURL string `env:"DISCORD_WEBHOOK_URL" validate:"omitempty,url"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:          strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:         strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:            getEnv("LOG_DIR", DefaultLogDir),
		Environment:       getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName:       getEnv("SERVICE_NAME", DefaultServiceName),
		Version:           getEnv("VERSION", DefaultVersion),
		DBUser:            getEnv("DB_USER", DefaultDBUser),
		DBPassword:        getEnv("DB_PASSWORD", DefaultDBPassword),
		DBHost:            getEnv("DB_HOST", DefaultDBHost),
		DBPort:            getEnv("DB_PORT", DefaultDBPort),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		APIKey:            getEnv("API_KEY", ""),
		DiscordWebhookURL: getEnv("DISCORD_WEBHOOK_URL", ""),
		SeedFile:          getEnv("CATALOG_SEED_FILE", ""),
	}

	cfg.TrustedProxies = splitList(getEnv("TRUSTED_PROXIES", ""))

	var err error
	if cfg.Port, err = getEnvInt("PORT", DefaultPort); err != nil {
		return nil, err
	}

	maxConns, err := getEnvInt("DB_MAX_CONNS", DefaultDBMaxConns)
	if err != nil {
		return nil, err
	}
	cfg.DBMaxConns = int32(maxConns)

	if cfg.DBMaxConnIdle, err = getEnvDuration("DB_MAX_CONN_IDLE", DefaultDBMaxConnIdle); err != nil {
		return nil, err
	}
	if cfg.DBMaxConnLifetime, err = getEnvDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime); err != nil {
		return nil, err
	}
	if cfg.RunMigrations, err = getEnvBool("RUN_MIGRATIONS", true); err != nil {
		return nil, err
	}
	if cfg.PriceCacheSize, err = getEnvInt("PRICE_CACHE_SIZE", DefaultPriceCacheSize); err != nil {
		return nil, err
	}
	if cfg.PriceCacheTTL, err = getEnvDuration("PRICE_CACHE_TTL", DefaultPriceCacheTTL); err != nil {
		return nil, err
	}
	if cfg.CatalogReloadInterval, err = getEnvDuration("CATALOG_RELOAD_INTERVAL", DefaultCatalogReloadInterval); err != nil {
		return nil, err
	}
	if cfg.RankingWorkers, err = getEnvInt("RANKING_WORKERS", DefaultRankingWorkers); err != nil {
		return nil, err
	}
	if cfg.RankingLimit, err = getEnvInt("RANKING_LIMIT", DefaultRankingLimit); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// splitList parses a comma-separated value, dropping blanks
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
