package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port            string
	DBPath          string
	LogMode         string
	ModelPath       string
	DistrictAvgXLSX string
	YieldJitter     bool

	// EnvFileErr is set when no .env could be loaded; main logs it once the logger exists.
	EnvFileErr error
}

func Load() AppConfig {
	envErr := godotenv.Load()

	get := func(k, def string) string {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
		return def
	}
	return AppConfig{
		Port:            get("PORT", "8080"),
		DBPath:          get("DB_PATH", "krishi.db"),
		LogMode:         get("LOG_MODE", "dev"),
		ModelPath:       get("MODEL_PATH", ""),
		DistrictAvgXLSX: get("DISTRICT_AVG_XLSX", ""),
		YieldJitter:     !strings.EqualFold(get("YIELD_JITTER", "true"), "false"),
		EnvFileErr:      envErr,
	}
}
