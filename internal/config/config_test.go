package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_ADDR", "TIMEZONE", "API_ALLOWED_ORIGINS", "MAIL_TIMEOUT", "SITE_NAME",
		"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "FROM_EMAIL", "TO_EMAIL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "Europe/Amsterdam", cfg.Timezone)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 15*time.Second, cfg.MailTimeout)
	assert.Equal(t, "Horeca Advies", cfg.SiteName)
	assert.False(t, cfg.SMTP.Configured())
	require.NotNil(t, cfg.ServerLog)
}

func TestLoadReadsEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("API_ALLOWED_ORIGINS", "https://horeca-advies.nl, https://www.horeca-advies.nl")
	t.Setenv("MAIL_TIMEOUT", "30s")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "587")
	t.Setenv("SMTP_USER", "relay")
	t.Setenv("SMTP_PASS", "geheim")
	t.Setenv("FROM_EMAIL", "noreply@example.com")
	t.Setenv("TO_EMAIL", "eigenaar@example.com")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, []string{"https://horeca-advies.nl", "https://www.horeca-advies.nl"}, cfg.AllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.MailTimeout)
	assert.True(t, cfg.SMTP.Configured())
	assert.Equal(t, "smtp.example.com:587", cfg.SMTP.Address())
}

func TestLoadIgnoresInvalidMailTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAIL_TIMEOUT", "straks")

	cfg := Load()
	assert.Equal(t, 15*time.Second, cfg.MailTimeout)
}

func TestValidateNamesFirstMissingVariable(t *testing.T) {
	complete := SMTPSettings{
		Host:      "smtp.example.com",
		Port:      "587",
		Username:  "relay",
		Password:  "geheim",
		FromEmail: "noreply@example.com",
		ToEmail:   "eigenaar@example.com",
	}
	require.NoError(t, complete.Validate())

	cases := []struct {
		clear func(s *SMTPSettings)
		want  string
	}{
		{func(s *SMTPSettings) { s.Host = "" }, "SMTP_HOST is niet geconfigureerd"},
		{func(s *SMTPSettings) { s.Port = " " }, "SMTP_PORT is niet geconfigureerd"},
		{func(s *SMTPSettings) { s.Username = "" }, "SMTP_USER is niet geconfigureerd"},
		{func(s *SMTPSettings) { s.Password = "" }, "SMTP_PASS is niet geconfigureerd"},
		{func(s *SMTPSettings) { s.FromEmail = "" }, "FROM_EMAIL is niet geconfigureerd"},
		{func(s *SMTPSettings) { s.ToEmail = "" }, "TO_EMAIL is niet geconfigureerd"},
	}

	for _, tc := range cases {
		settings := complete
		tc.clear(&settings)
		err := settings.Validate()
		require.Error(t, err)
		assert.Equal(t, tc.want, err.Error())
	}
}

func TestValidateReportsHostFirst(t *testing.T) {
	err := SMTPSettings{}.Validate()
	require.Error(t, err)
	assert.Equal(t, "SMTP_HOST is niet geconfigureerd", err.Error())
}
