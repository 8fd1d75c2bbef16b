// Package config collects environment configuration. A .env file in the
// working directory is honored; real environment variables win over it.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"platechat/internal/domain"
)

// Environment variable names.
const (
	EnvAPIEndpoint = "PLATECHAT_API_ENDPOINT"
	EnvAPIKey      = "PLATECHAT_API_KEY"
	EnvModel       = "PLATECHAT_MODEL"
	EnvStorage     = "PLATECHAT_STORAGE"
	EnvDataDir     = "PLATECHAT_DATA_DIR"
	EnvRegion      = "PLATECHAT_REGION"
	EnvPremium     = "PLATECHAT_PREMIUM"
)

// Storage backend names accepted in EnvStorage.
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

// Config is everything the wiring layer needs. The engine itself only ever
// reads the credential, the region, and the premium flag — entitlement and
// purchase flows live outside this program.
type Config struct {
	APIEndpoint string
	APIKey      string // empty means demo mode
	Model       string
	Storage     string // StorageFile or StorageSQLite
	DataDir     string
	Region      domain.RegionFilter
	Premium     bool
}

// Load reads .env (if present) and the environment, applying defaults.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		APIEndpoint: getenv(EnvAPIEndpoint, "https://api.openai.com/v1/chat/completions"),
		APIKey:      os.Getenv(EnvAPIKey),
		Model:       getenv(EnvModel, "gpt-4o-mini"),
		Storage:     getenv(EnvStorage, StorageFile),
		DataDir:     getenv(EnvDataDir, ".platechat"),
		Region:      domain.RegionFilterAll,
		Premium:     boolenv(EnvPremium),
	}

	if r := os.Getenv(EnvRegion); r != "" && r != string(domain.RegionFilterAll) {
		cfg.Region = domain.RegionFilter(domain.ParseRegion(r))
	}
	if cfg.Storage != StorageSQLite {
		cfg.Storage = StorageFile
	}
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func boolenv(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
