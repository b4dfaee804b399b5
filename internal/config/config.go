package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries all process configuration. Values come from the
// environment, with a .env file loaded first when present.
type Config struct {
	MongoURI      string
	MongoDatabase string
	Port          string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPass     string
	ContactInbox string

	JWTSecret         string
	AdminPassword     string
	AdminPasswordHash string

	FrontendOrigin string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		MongoURI:          getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:     getenv("MONGO_DB", "portfolio"),
		Port:              getenv("PORT", "5000"),
		SMTPHost:          getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:          getenv("SMTP_PORT", "587"),
		SMTPUser:          os.Getenv("EMAIL_USER"),
		SMTPPass:          os.Getenv("EMAIL_PASS"),
		ContactInbox:      os.Getenv("CONTACT_INBOX"),
		JWTSecret:         getenv("JWT_SECRET", "portfolio-dev-secret"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		FrontendOrigin:    getenv("FRONTEND_ORIGIN", "*"),
	}

	// Contact messages go to the operator's own inbox unless overridden.
	if cfg.ContactInbox == "" {
		cfg.ContactInbox = cfg.SMTPUser
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
