package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort            = "8080"
	DefaultConnectAttempts = 5
	DefaultConnectDelay    = 5 * time.Second
	DefaultMaxConns        = 5
	DefaultHealthCacheTTL  = 5 * time.Second
)

type Config struct {
	Port        string
	DatabaseURL string

	ConnectAttempts int
	ConnectDelay    time.Duration
	// FailFast exits the process when the database never came up during provisioning.
	FailFast        bool
	MaxConns        int32

	AllowedOrigins []string
	HealthCacheTTL time.Duration
}

// Load reads configuration from the environment, merging .env first if present.
func Load() Config {
	return LoadFrom()
}

// LoadFrom is Load with explicit env files. Values already set in the
// process environment are never overridden by a file.
func LoadFrom(files ...string) Config {
	// Load .env file if present
	_ = godotenv.Load(files...)

	return Config{
		Port:            getEnv("PORT", DefaultPort),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		ConnectAttempts: getEnvInt("DB_CONNECT_ATTEMPTS", DefaultConnectAttempts),
		ConnectDelay:    getEnvDuration("DB_CONNECT_DELAY", DefaultConnectDelay),
		FailFast:        getEnvBool("DB_PROVISION_FAIL_FAST", true),
		MaxConns:        int32(getEnvInt("DB_MAX_CONNS", DefaultMaxConns)),
		AllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		HealthCacheTTL:  getEnvDuration("HEALTH_CACHE_TTL", DefaultHealthCacheTTL),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		log.Printf("ERROR: Invalid %s value %q, using %d", key, value, fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || d < 0 {
		log.Printf("ERROR: Invalid %s value %q, using %s", key, value, fallback)
		return fallback
	}
	return d
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		log.Printf("ERROR: Invalid %s value %q, using %t", key, value, fallback)
		return fallback
	}
	return b
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
