package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI string
	DBName   string
	Port     string
}

// Load reads configuration from the environment. A .env file is picked up
// when present. MONGODB_URI has no sane default and is required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		return nil, fmt.Errorf("MONGODB_URI is not set")
	}

	return &Config{
		MongoURI: uri,
		DBName:   getEnv("DB_NAME", "catalog"),
		Port:     getEnv("PORT", "3000"),
	}, nil
}

// RedactedURI returns the connection string with userinfo credentials masked,
// safe for startup logs.
func (c *Config) RedactedURI() string {
	u, err := url.Parse(c.MongoURI)
	if err != nil {
		return "<unparseable connection string>"
	}
	if u.User != nil {
		u.User = url.UserPassword("****", "****")
	}
	return u.String()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
