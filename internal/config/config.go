package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// JWT Config
	JWTSecret   string        `env:"JWT_SECRET"`
	JWTTokenTTL time.Duration `env:"JWT_TOKEN_TTL" envDefault:"24h"`

	// Push Relay Config
	PushRelayURL        string        `env:"PUSH_RELAY_URL"`
	PushServerKey       string        `env:"PUSH_SERVER_KEY"`
	PushRelayTimeout    time.Duration `env:"PUSH_RELAY_TIMEOUT" envDefault:"5s"`
	PushRelayMaxRetries int           `env:"PUSH_RELAY_MAX_RETRIES" envDefault:"3"`
	PushRelayBaseDelay  time.Duration `env:"PUSH_RELAY_BASE_DELAY" envDefault:"1s"`

	// Uploads Config
	UploadDir         string `env:"UPLOAD_DIR" envDefault:"./uploads"`
	MaxUploadSizeMB   int    `env:"MAX_UPLOAD_SIZE_MB" envDefault:"5"`
	PublicUploadsBase string `env:"PUBLIC_UPLOADS_BASE" envDefault:"/uploads"`

	// Presence Config
	PresenceThreshold time.Duration `env:"PRESENCE_THRESHOLD" envDefault:"5m"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		JWTTokenTTL:         getEnvAsDuration("JWT_TOKEN_TTL", 24*time.Hour),
		PushRelayURL:        os.Getenv("PUSH_RELAY_URL"),
		PushServerKey:       os.Getenv("PUSH_SERVER_KEY"),
		PushRelayTimeout:    getEnvAsDuration("PUSH_RELAY_TIMEOUT", 5*time.Second),
		PushRelayMaxRetries: getEnvAsInt("PUSH_RELAY_MAX_RETRIES", 3),
		PushRelayBaseDelay:  getEnvAsDuration("PUSH_RELAY_BASE_DELAY", time.Second),
		UploadDir:           getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadSizeMB:     getEnvAsInt("MAX_UPLOAD_SIZE_MB", 5),
		PublicUploadsBase:   getEnv("PUBLIC_UPLOADS_BASE", "/uploads"),
		PresenceThreshold:   getEnvAsDuration("PRESENCE_THRESHOLD", 5*time.Minute),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
