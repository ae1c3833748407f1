package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the service configuration, read from the environment.
type Config struct {
	MongoURI      string
	MongoDB       string
	RedisAddr     string
	HTTPPort      string
	ExportTimeout time.Duration
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "rawdati"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:      getEnv("PORT", "8080"),
		ExportTimeout: time.Duration(getEnvInt("EXPORT_TIMEOUT_MS", 120000)) * time.Millisecond,
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
