package mailer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvdveer/horeca-advies-services/api/internal/config"
)

func TestSendWithoutConfiguration(t *testing.T) {
	m := NewSMTP(config.SMTPSettings{}, "Horeca Advies", time.Second, nil)

	err := m.Send(context.Background(), Message{Subject: "test"})

	require.ErrorIs(t, err, ErrNotConfigured)
	assert.Contains(t, err.Error(), "SMTP_HOST")
}

func TestSendWithPartialConfiguration(t *testing.T) {
	settings := config.SMTPSettings{
		Host:     "smtp.example.com",
		Port:     "587",
		Username: "relay",
		Password: "geheim",
	}
	m := NewSMTP(settings, "Horeca Advies", time.Second, nil)

	err := m.Send(context.Background(), Message{Subject: "test"})

	require.ErrorIs(t, err, ErrNotConfigured)
	assert.Contains(t, err.Error(), "FROM_EMAIL")
}

func TestBuildEnvelopeHeaders(t *testing.T) {
	settings := config.SMTPSettings{
		Host:      "smtp.example.com",
		Port:      "587",
		Username:  "relay",
		Password:  "geheim",
		FromEmail: "noreply@example.com",
		ToEmail:   "eigenaar@example.com",
	}
	m := NewSMTP(settings, "Horeca Advies", time.Second, nil)

	raw, err := m.buildEnvelope(Message{
		Subject:      "Nieuwe aanvraag",
		TextBody:     "Naam: Jane Doe\n",
		HTMLBody:     "<table><tr><th>Naam</th><td>Jane Doe</td></tr></table>",
		ReplyToName:  "Jane Doe",
		ReplyToEmail: "jane@example.com",
	})
	require.NoError(t, err)

	envelope := string(raw)
	assert.Contains(t, envelope, "noreply@example.com")
	assert.Contains(t, envelope, "Horeca Advies")
	assert.Contains(t, envelope, "eigenaar@example.com")
	assert.Contains(t, envelope, "Reply-To:")
	assert.Contains(t, envelope, "jane@example.com")
	assert.Contains(t, envelope, "Subject: Nieuwe aanvraag")
	assert.Contains(t, envelope, "multipart/alternative")
}

func TestNewSMTPDefaultsTimeout(t *testing.T) {
	m := NewSMTP(config.SMTPSettings{}, "Horeca Advies", 0, nil)
	assert.Equal(t, 15*time.Second, m.timeout)
}
