package config

import "time"

// Defaults applied when the environment leaves a value unset
const (
	DefaultPort        = 8080
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultEnvironment = "dev"
	DefaultServiceName = "craft-market"
	DefaultVersion     = "dev"

	DefaultDBUser     = "postgres"
	DefaultDBPassword = "postgres"
	DefaultDBHost     = "localhost"
	DefaultDBPort     = "5432"
	DefaultDBName     = "craftmarket"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdle     = 5 * time.Minute
	DefaultDBMaxConnLifetime = time.Hour

	DefaultPriceCacheSize        = 10000
	DefaultPriceCacheTTL         = 30 * time.Second
	DefaultCatalogReloadInterval = 15 * time.Minute
	DefaultRankingWorkers        = 8
	DefaultRankingLimit          = 50
)
