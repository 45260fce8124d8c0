// config/config.go - Runtime configuration from environment
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	CORSOrigins string

	RateLimitMaxRequests int
	RateLimitWindowMS    int
}

// Load reads configuration from the environment. DATABASE_URL wins over the
// discrete DB_* parts, mirroring how the connection string is assembled for
// local setups without a full URL.
func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:               getEnv("APP_ENV", EnvDevelopment),
		Port:                 getEnv("PORT", "5000"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		CORSOrigins:          getEnv("CORS_ORIGINS", "*"),
		RateLimitMaxRequests: getEnvInt("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitWindowMS:    getEnvInt("RATE_LIMIT_WINDOW_MS", 900000),
	}

	if cfg.AppEnv != EnvDevelopment && cfg.AppEnv != EnvProduction {
		return nil, fmt.Errorf("invalid APP_ENV %q: must be %q or %q",
			cfg.AppEnv, EnvDevelopment, EnvProduction)
	}

	if cfg.DatabaseURL == "" {
		host := getEnv("DB_HOST", "localhost")
		port := getEnv("DB_PORT", "5432")
		user := getEnv("DB_USER", "postgres")
		password := getEnv("DB_PASSWORD", "")
		dbname := getEnv("DB_NAME", "teamplay")
		sslmode := getEnv("DB_SSLMODE", "disable")

		cfg.DatabaseURL = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			host, port, user, password, dbname, sslmode)
	}

	return cfg, nil
}

// Validate warns about configurations that are legal but almost certainly
// wrong outside local development.
func (c *Config) Validate() {
	if c.AppEnv == EnvProduction && c.CORSOrigins == "*" {
		log.Println("WARNING: CORS_ORIGINS not properly configured for production")
	}
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		log.Printf("Warning: invalid %s value %q, using default %d", key, val, defaultVal)
		return defaultVal
	}
	return n
}
