package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// SMTPSettings holds the outbound mail relay configuration. All six values
// are required before a submission email can be dispatched.
type SMTPSettings struct {
	Host      string
	Port      string
	Username  string
	Password  string
	FromEmail string
	ToEmail   string
}

// Validate returns an error naming the first missing variable. Values are
// never included so the error can be logged as-is.
func (s SMTPSettings) Validate() error {
	checks := []struct {
		name  string
		value string
	}{
		{"SMTP_HOST", s.Host},
		{"SMTP_PORT", s.Port},
		{"SMTP_USER", s.Username},
		{"SMTP_PASS", s.Password},
		{"FROM_EMAIL", s.FromEmail},
		{"TO_EMAIL", s.ToEmail},
	}
	for _, check := range checks {
		if strings.TrimSpace(check.value) == "" {
			return fmt.Errorf("%s is niet geconfigureerd", check.name)
		}
	}
	return nil
}

// Configured reports whether every relay variable is present.
func (s SMTPSettings) Configured() bool {
	return s.Validate() == nil
}

// Address returns the host:port dial target for the relay.
func (s SMTPSettings) Address() string {
	return s.Host + ":" + s.Port
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr           string
	Timezone       string
	ServerLog      *log.Logger
	AllowedOrigins []string
	MailTimeout    time.Duration
	SiteName       string
	SMTP           SMTPSettings
}

// Load reads environment variables and returns a fully populated Config.
// Missing SMTP variables do not abort startup: the site keeps serving and
// every submission fails closed with a configuration error instead.
func Load() Config {
	mailTimeout := 15 * time.Second
	if raw := strings.TrimSpace(os.Getenv("MAIL_TIMEOUT")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			mailTimeout = parsed
		}
	}

	cfg := Config{
		Addr:           envOrDefault("HTTP_ADDR", ":8080"),
		Timezone:       envOrDefault("TIMEZONE", "Europe/Amsterdam"),
		ServerLog:      log.New(os.Stdout, "[horeca-advies-api] ", log.LstdFlags|log.Lshortfile),
		AllowedOrigins: parseList("API_ALLOWED_ORIGINS", []string{"*"}),
		MailTimeout:    mailTimeout,
		SiteName:       envOrDefault("SITE_NAME", "Horeca Advies"),
		SMTP: SMTPSettings{
			Host:      strings.TrimSpace(os.Getenv("SMTP_HOST")),
			Port:      strings.TrimSpace(os.Getenv("SMTP_PORT")),
			Username:  strings.TrimSpace(os.Getenv("SMTP_USER")),
			Password:  os.Getenv("SMTP_PASS"),
			FromEmail: strings.TrimSpace(os.Getenv("FROM_EMAIL")),
			ToEmail:   strings.TrimSpace(os.Getenv("TO_EMAIL")),
		},
	}

	if !cfg.SMTP.Configured() {
		cfg.ServerLog.Printf("mailconfiguratie onvolledig: %v (inzendingen geven 500 tot dit is opgelost)", cfg.SMTP.Validate())
	}

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
