package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is built once at start-up and handed to every provider that needs it.
// Provider credentials are never read from the environment anywhere else.
type Config struct {
	Port   string
	AppEnv string

	DBDriver    string // "postgres" or "sqlite"
	PostgresURL string
	SQLitePath  string

	StripeSecretKey string

	ResendAPIKey string
	SMTP         SMTPConfig

	MailFrom           string
	MailReservationsTo string
	MailSalesTo        string
	AppName            string
	Timezone           string

	GalleryDir  string
	CORSOrigins []string

	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string

	RateLimitPerMinute int
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Load reads .env (if present) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found; using process environment")
	}

	return Config{
		Port:   getEnvWithDefault("PORT", "8080"),
		AppEnv: getEnvWithDefault("APP_ENV", "development"),

		DBDriver:    strings.ToLower(getEnvWithDefault("DB_DRIVER", "postgres")),
		PostgresURL: firstNonEmpty(os.Getenv("POSTGRES_URL"), os.Getenv("DATABASE_URL")),
		SQLitePath:  getEnvWithDefault("SQLITE_PATH", "safari.db"),

		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),

		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getIntWithDefault("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},

		MailFrom:           getEnvWithDefault("MAIL_FROM", "Safari Tours <noreply@safaritours.example>"),
		MailReservationsTo: getEnvWithDefault("MAIL_RESERVATIONS_TO", "reservations@safaritours.example"),
		MailSalesTo:        getEnvWithDefault("MAIL_SALES_TO", "sales@safaritours.example"),
		AppName:            getEnvWithDefault("APP_NAME", "Safari Tours"),
		Timezone:           getEnvWithDefault("TIMEZONE", "Africa/Nairobi"),

		GalleryDir:  getEnvWithDefault("GALLERY_DIR", "public/gallery"),
		CORSOrigins: parseList(os.Getenv("CORS_ORIGINS"), "*"),

		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminUsername:     getEnvWithDefault("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		RateLimitPerMinute: getIntWithDefault("RATE_LIMIT_PER_MINUTE", 0),
	}
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func (c Config) PaymentsEnabled() bool {
	return c.StripeSecretKey != ""
}

func (c Config) AdminEnabled() bool {
	return c.JWTSecret != "" && c.AdminPasswordHash != ""
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getIntWithDefault(key string, defaultValue int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, raw, defaultValue)
		return defaultValue
	}
	return n
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func parseList(raw, fallback string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{fallback}
	}
	return out
}
