package config

import (
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort      string
	Env             string
	MySQLDSN        string
	LogDir          string
	LogForwardURL   string
	LogForwardToken string
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	Version         string
	SwaggerHost     string
}

// Load builds Config from environment with sensible defaults. The log forward
// URL and token have no defaults on purpose: leaving either empty disables
// forwarding instead of failing startup.
func Load() *Config {
	return &Config{
		ServerPort:      getEnv("PORT", "3000"),
		Env:             getEnv("APP_ENV", "development"),
		MySQLDSN:        getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/usuarios?charset=utf8mb4&parseTime=True&loc=Local"),
		LogDir:          getEnv("LOG_DIR", "logs"),
		LogForwardURL:   os.Getenv("LOG_FORWARD_URL"),
		LogForwardToken: os.Getenv("LOG_FORWARD_TOKEN"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RedisPass:       os.Getenv("REDIS_PASSWORD"),
		Version:         getEnv("APP_VERSION", "1.0.0"),
		SwaggerHost:     os.Getenv("SWAGGER_HOST"),
	}
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
