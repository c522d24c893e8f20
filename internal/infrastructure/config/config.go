package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Storage
	DataDir        string // bank/stats files and attachment folders
	StorageBackend string // "json" (default) or "sqlite"
	SQLitePath     string // used when StorageBackend is "sqlite"
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	dataDir := getenvDefault("DATA_DIR", "qb_data")
	return &Config{
		ServerAddress:   mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout: mustGetDuration("SHUTDOWN_TIMEOUT"),
		DataDir:         dataDir,
		StorageBackend:  getenvDefault("STORAGE_BACKEND", "json"),
		SQLitePath:      getenvDefault("SQLITE_PATH", filepath.Join(dataDir, "quizbank.db")),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
