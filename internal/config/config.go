package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/phuslu/log"
	"github.com/spf13/viper"
)

var AppEnv Config

type Config struct {
	Port            string
	MongoURI        string
	DBName          string
	AllowedOrigins  []string
	LogLevel        string
	ShutdownTimeout time.Duration
	Mail            MailConfig
}

// MailConfig selects and configures the confirmation email transport.
type MailConfig struct {
	Provider      string
	From          string
	ResendAPIKey  string
	ResendBaseURL string
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
	SMTPTimeout   time.Duration
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Info().Err(err).Msg(".env not loaded")
	}
	AppEnv = FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_NAME", "registration")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)
	v.SetDefault("MAIL_PROVIDER", ProviderNone)
	v.SetDefault("MAIL_FROM", "Registration <no-reply@example.com>")
	v.SetDefault("RESEND_BASE_URL", "https://api.resend.com")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_TIMEOUT_SECONDS", 10)
	return v
}

// FromViper reads a Config out of v. Load uses an env-backed instance.
func FromViper(v *viper.Viper) Config {
	return Config{
		Port:            strings.TrimSpace(v.GetString("PORT")),
		MongoURI:        strings.TrimSpace(v.GetString("MONGO_URI")),
		DBName:          strings.TrimSpace(v.GetString("DB_NAME")),
		AllowedOrigins:  splitList(v.GetString("ALLOWED_ORIGINS")),
		LogLevel:        strings.TrimSpace(v.GetString("LOG_LEVEL")),
		ShutdownTimeout: seconds(v, "SHUTDOWN_TIMEOUT_SECONDS"),
		Mail: MailConfig{
			Provider:      strings.ToLower(strings.TrimSpace(v.GetString("MAIL_PROVIDER"))),
			From:          strings.TrimSpace(v.GetString("MAIL_FROM")),
			ResendAPIKey:  strings.TrimSpace(v.GetString("RESEND_API_KEY")),
			ResendBaseURL: strings.TrimRight(strings.TrimSpace(v.GetString("RESEND_BASE_URL")), "/"),
			SMTPHost:      strings.TrimSpace(v.GetString("SMTP_HOST")),
			SMTPPort:      v.GetInt("SMTP_PORT"),
			SMTPUsername:  strings.TrimSpace(v.GetString("SMTP_USERNAME")),
			SMTPPassword:  v.GetString("SMTP_PASSWORD"),
			SMTPTimeout:   seconds(v, "SMTP_TIMEOUT_SECONDS"),
		},
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func seconds(v *viper.Viper, key string) time.Duration {
	n := v.GetInt(key)
	if n <= 0 {
		n = 10
	}
	return time.Duration(n) * time.Second
}
