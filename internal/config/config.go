package config

import (
	"os"
)

type S3Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

type EmailConfig struct {
	ResendAPIKey string
	FromAddress  string
	FromName     string
}

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	FrontendURL string
	S3          S3Config
	Email       EmailConfig
}

func LoadConfig() *Config {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		FrontendURL: os.Getenv("FRONTEND_URL"),
	}

	cfg.S3.Endpoint = os.Getenv("S3_ENDPOINT")
	cfg.S3.Region = getEnv("S3_REGION", "auto")
	cfg.S3.AccessKeyID = os.Getenv("S3_ACCESS_KEY_ID")
	cfg.S3.SecretAccessKey = os.Getenv("S3_SECRET_ACCESS_KEY")
	cfg.S3.Bucket = os.Getenv("S3_BUCKET")
	cfg.S3.PublicURL = os.Getenv("S3_PUBLIC_URL")

	cfg.Email.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = os.Getenv("EMAIL_FROM_ADDRESS")
	cfg.Email.FromName = os.Getenv("EMAIL_FROM_NAME")

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
