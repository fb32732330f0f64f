package config

import (
	"fmt"
	"strings"
)

const (
	ProviderNone   = "none"
	ProviderResend = "resend"
	ProviderSMTP   = "smtp"
)

// Validate reports every required setting that is missing for the selected
// mail provider, in one error.
func (c Config) Validate() error {
	var missing []string
	if c.MongoURI == "" {
		missing = append(missing, "MONGO_URI")
	}
	if len(c.AllowedOrigins) == 0 {
		missing = append(missing, "ALLOWED_ORIGINS")
	}

	switch c.Mail.Provider {
	case "", ProviderNone:
	case ProviderResend:
		if c.Mail.ResendAPIKey == "" {
			missing = append(missing, "RESEND_API_KEY")
		}
		if c.Mail.From == "" {
			missing = append(missing, "MAIL_FROM")
		}
	case ProviderSMTP:
		if c.Mail.SMTPHost == "" {
			missing = append(missing, "SMTP_HOST")
		}
		if c.Mail.From == "" {
			missing = append(missing, "MAIL_FROM")
		}
	default:
		return fmt.Errorf("unknown MAIL_PROVIDER %q", c.Mail.Provider)
	}

	if len(missing) > 0 {
		return fmt.Errorf("ENV %s is required", strings.Join(missing, ", "))
	}
	return nil
}
