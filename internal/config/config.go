package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Topics   TopicConfig
	Seed     SeedConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	StudioName         string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type TopicConfig struct {
	GiftCardDelivered string
}

// SeedConfig holds the initial staff credentials consumed by cmd/seed.
type SeedConfig struct {
	AdminEmail         string
	AdminPassword      string
	SuperadminEmail    string
	SuperadminPassword string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			StudioName:         getEnv("STUDIO_NAME", "Ink & Iron Tattoo"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Gift Card Register"),
		},
		Topics: TopicConfig{
			GiftCardDelivered: getEnv("GIFTCARD_DELIVERED_TOPIC_NAME", "GIFTCARD_DELIVERED"),
		},
		Seed: SeedConfig{
			AdminEmail:         getEnv("SEED_ADMIN_EMAIL", "admin@studio.local"),
			AdminPassword:      getEnv("SEED_ADMIN_PASSWORD", ""),
			SuperadminEmail:    getEnv("SEED_SUPERADMIN_EMAIL", "superadmin@studio.local"),
			SuperadminPassword: getEnv("SEED_SUPERADMIN_PASSWORD", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
