package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource string
	Port     string
	HostURL  string

	JWTSecret string
	JWTTTL    time.Duration

	MicrosoftClientID     string
	MicrosoftClientSecret string
	AllowedEmailDomain    string

	PaymongoSecretKey     string
	PaymongoWebhookSecret string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading config from environment")
	}

	return &Config{
		DBSource: getEnv("DB_SOURCE", "reservations.db"),
		Port:     getEnv("PORT", "8000"),
		HostURL:  getEnv("HOST_URL", "http://localhost:8000/"),

		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    time.Duration(24) * time.Hour,

		MicrosoftClientID:     os.Getenv("MICROSOFT_CLIENT_ID"),
		MicrosoftClientSecret: os.Getenv("MICROSOFT_CLIENT_SECRET"),
		AllowedEmailDomain:    getEnv("ALLOWED_EMAIL_DOMAIN", "cclcentrex.edu.ph"),

		PaymongoSecretKey:     os.Getenv("PAYMONGO_SECRET_KEY"),
		PaymongoWebhookSecret: os.Getenv("PAYMONGO_WEBHOOK_SECRET"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
