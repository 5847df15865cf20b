package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Notifier drivers. The driver is chosen explicitly by configuration, never
// inferred from which credentials happen to be present.
const (
	NotifierTelegram = "telegram"
	NotifierSMTP     = "smtp"
	NotifierMock     = "mock"
)

type ServerConfig struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	TokenTTLHours int
	LogLevel      string

	BaseAdminEmail string

	NotifierDriver string
	TelegramToken  string
	TelegramChatID string
	SMTPHost       string
	SMTPPort       int
	SMTPFrom       string
	SMTPUsername   string
	SMTPPassword   string
}

// Load reads configuration from the environment (plus an optional .env file)
// and returns it as an explicit value to be passed down the wiring.
func Load() (*ServerConfig, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, relying on environment")
	}

	cfg := &ServerConfig{
		Port:           getEnv("SERVER_PORT", "8080"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		TokenTTLHours:  int(getEnvAsInt("TOKEN_TTL_HOURS", 72)),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		BaseAdminEmail: getEnv("BASE_ADMIN_EMAIL", ""),
		NotifierDriver: getEnv("NOTIFIER_DRIVER", NotifierMock),
		TelegramToken:  getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID: getEnv("TELEGRAM_CHAT_ID", ""),
		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPPort:       int(getEnvAsInt("SMTP_PORT", 587)),
		SMTPFrom:       getEnv("SMTP_FROM", ""),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("could not get db url")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("could not get jwt secret")
	}

	switch cfg.NotifierDriver {
	case NotifierTelegram, NotifierSMTP, NotifierMock:
	default:
		return nil, errors.New("unknown notifier driver: " + cfg.NotifierDriver)
	}

	return cfg, nil
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return int64(val)
	}

	return defaultVal
}
