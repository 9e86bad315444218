package configs

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL      string
	SocketURL       string
	CartDB          string
	TableNumber     string
	RefreshInterval time.Duration
	AdminToken      string
}

func LoadConfig() *Config {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	return &Config{
		APIBaseURL:      getEnv("API_BASE_URL", "http://localhost:3000/api/v1"),
		SocketURL:       getEnv("SOCKET_URL", "ws://localhost:3000/ws/orders"),
		CartDB:          getEnv("CART_DB", "carts.db"),
		TableNumber:     os.Getenv("TABLE_NUMBER"),
		RefreshInterval: getDuration("REFRESH_INTERVAL", 4*time.Minute),
		AdminToken:      os.Getenv("ADMIN_TOKEN"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
