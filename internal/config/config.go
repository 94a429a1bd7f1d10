package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	BackendAPIURL         string
	RedisURL              string
	ServerPort            string
	RequestTimeout        int
	CartTTL               int
	SessionTTL            int
	TickerRefreshInterval int
	TickerRefreshJitter   int
}

func Load() *Config {
	// Load .env file if exists
	godotenv.Load()

	return &Config{
		BackendAPIURL:         getEnv("BACKEND_API_URL", "http://localhost:8000"),
		RedisURL:              getEnv("REDIS_URL", "redis://localhost:6379"),
		ServerPort:            getEnv("SERVER_PORT", "8080"),
		RequestTimeout:        getEnvAsInt("REQUEST_TIMEOUT", 30),
		CartTTL:               getEnvAsInt("CART_TTL", 7*24*3600),
		SessionTTL:            getEnvAsInt("SESSION_TTL", 24*3600),
		TickerRefreshInterval: getEnvAsInt("TICKER_REFRESH_INTERVAL", 30),
		TickerRefreshJitter:   getEnvAsInt("TICKER_REFRESH_JITTER", 5),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
