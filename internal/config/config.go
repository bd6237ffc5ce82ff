package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	ZohoRefreshToken string
	ZohoClientID     string
	ZohoClientSecret string
	ZohoTokenURL     string
	ZohoOrgID        string
	ZohoBaseURL      string
	Location         *time.Location

	DatabaseURL string

	RabbitUser string
	RabbitPass string
	RabbitHost string
	RabbitPort string

	MailHost    string
	MailPort    int
	MailUser    string
	MailPass    string
	MailFrom    string
	DealerEmail string
}

// Load reads .env when present, then the environment. The meeting timezone
// is resolved here once; a bad name falls back to UTC with a log line
// instead of taking the service down.
func Load() *Config {
	_ = godotenv.Load()

	tzName := getEnv("ZOHO_TIMEZONE", "America/Toronto")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		log.Printf("[config] unknown timezone %q, falling back to UTC", tzName)
		loc = time.UTC
	}

	return &Config{
		Port: getEnv("PORT", "8080"),

		ZohoRefreshToken: os.Getenv("ZOHO_REFRESH_TOKEN"),
		ZohoClientID:     os.Getenv("ZOHO_CLIENT_ID"),
		ZohoClientSecret: os.Getenv("ZOHO_CLIENT_SECRET"),
		ZohoTokenURL:     os.Getenv("ZOHO_REFRESH_TOKEN_URL"),
		ZohoOrgID:        os.Getenv("ZOHO_ORG_ID"),
		ZohoBaseURL:      os.Getenv("ZOHO_API_URL"),
		Location:         loc,

		DatabaseURL: os.Getenv("DATABASE_URL"),

		RabbitUser: getEnv("RABBITMQ_USER", "guest"),
		RabbitPass: getEnv("RABBITMQ_PASS", "guest"),
		RabbitHost: os.Getenv("RABBITMQ_HOST"),
		RabbitPort: getEnv("RABBITMQ_PORT", "5672"),

		MailHost:    os.Getenv("MAIL_HOST"),
		MailPort:    getEnvInt("MAIL_PORT", 587),
		MailUser:    os.Getenv("MAIL_USER"),
		MailPass:    os.Getenv("MAIL_PASS"),
		MailFrom:    getEnv("MAIL_FROM", "no-reply@canchoice.example"),
		DealerEmail: os.Getenv("DEALER_NOTIFY_EMAIL"),
	}
}

// MailConfigured reports whether the notification worker can actually
// deliver: it needs an SMTP host and a dealer recipient.
func (c *Config) MailConfigured() bool {
	return c.MailHost != "" && c.DealerEmail != ""
}

// CRMConfigured reports whether every setting the CRM calls need is present.
func (c *Config) CRMConfigured() bool {
	return c.ZohoRefreshToken != "" && c.ZohoClientID != "" &&
		c.ZohoClientSecret != "" && c.ZohoTokenURL != "" && c.ZohoOrgID != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return n
}
