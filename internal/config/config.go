package config

import (
	"os"
	"strconv"
)

// Config keyworker-data configuration. Everything comes from environment
// variables with defaults suited to a single-site desktop install.
type Config struct {
	Database struct {
		// Path of the sqlite database file. Kept next to the executable
		// by default so existing installs find their data.
		Path string
		// BusyTimeoutMS guards against a double-click firing two saves
		// into the same file at once.
		BusyTimeoutMS int
	}
	Bootstrap struct {
		// Password given to the seeded supervisor account on first run.
		// The account is created with first_login set, so whatever this
		// is, it has to be rotated on first use.
		SupervisorPassword string
	}
	Log struct {
		Level  string
		Format string
	}
}

func Load() *Config {
	cfg := &Config{}
	cfg.Database.Path = getEnv("KW_DB_PATH", "alyson_house.db")
	cfg.Database.BusyTimeoutMS = parseInt(getEnv("KW_DB_BUSY_TIMEOUT_MS", "5000"), 5000)

	cfg.Bootstrap.SupervisorPassword = getEnv("KW_BOOTSTRAP_PASSWORD", "password")

	cfg.Log.Level = getEnv("KW_LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("KW_LOG_FORMAT", "console")

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
