package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds application configuration values.
type Config struct {
	AppPort       string
	Env           string
	DataDir       string
	JWTSecret     string
	TokenExpires  time.Duration
	AdminEmail    string
	AdminPassword string
	AdminExpires  time.Duration

	EmailProvider  string
	EmailFrom      string
	ResendAPIKey   string
	SendgridAPIKey string

	WhatsAppPhone string
	RedisURL      string
}

// Production reports whether the app runs with production behavior (e.g. OTPs
// are never echoed in responses).
func (c *Config) Production() bool {
	return c.Env == "production"
}

// Load reads environment variables and returns a populated Config.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:       getEnv("APP_PORT", "8080"),
		Env:           getEnv("APP_ENV", "development"),
		DataDir:       getEnv("DATA_DIR", "data"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		TokenExpires:  getEnvDuration("JWT_TTL_HOURS", 24*7) * time.Hour,
		AdminEmail:    getEnv("ADMIN_EMAIL", "contact@jhelumkesarco.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		AdminExpires:  getEnvDuration("ADMIN_JWT_TTL_HOURS", 12) * time.Hour,

		EmailProvider:  getEnv("EMAIL_PROVIDER", "log"),
		EmailFrom:      getEnv("EMAIL_FROM", "Jhelum Kesar Co. <noreply@jhelumkesarco.com>"),
		ResendAPIKey:   getEnv("RESEND_API_KEY", ""),
		SendgridAPIKey: getEnv("SENDGRID_API_KEY", ""),

		WhatsAppPhone: getEnv("WHATSAPP_PHONE", ""),
		RedisURL:      getEnv("REDIS_URL", ""),
	}

	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET must be set")
	}

	if cfg.AdminPassword == "" {
		logrus.Warn("ADMIN_PASSWORD not set; admin login disabled")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback int) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return time.Duration(parsed)
		}
	}
	return time.Duration(fallback)
}
