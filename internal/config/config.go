package config

import "os"

// Config holds all process-wide settings, loaded once in main and injected
// into the services that need them.
type Config struct {
	Port        string
	DatabaseURL string

	AdminUsername string
	// AdminPassword is compared as-is. If AdminPasswordHash is set it takes
	// precedence and is compared with bcrypt.
	AdminPassword     string
	AdminPasswordHash string
	JWTSecret         string

	SendGridAPIKey string
	AdminEmail     string
	BusinessEmail  string
	BusinessName   string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
}

func Load() Config {
	return Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         os.Getenv("JWT_SECRET"),

		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		AdminEmail:     getEnv("ADMIN_EMAIL", "admin@phillymounting.com"),
		BusinessEmail:  getEnv("BUSINESS_EMAIL", "info@phillymounting.com"),
		BusinessName:   getEnv("BUSINESS_NAME", "Philly TV Mounting"),

		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
