// Package mailer verstuurt de notificatiemail van een inzending via de
// geconfigureerde SMTP-relay. Sending is atomic: the mail is delivered or
// the call errors, there is no queue and no retry.
package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"net"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/jhillyerd/enmime"

	"github.com/mvdveer/horeca-advies-services/api/internal/config"
)

// ErrNotConfigured signals that one or more relay variables are missing.
// Callers map it to a configuration error, never to a delivery error.
var ErrNotConfigured = errors.New("mail relay is niet geconfigureerd")

// Message is one outbound owner notification. Reply-To points at the
// submitter so the owner can answer a lead directly.
type Message struct {
	Subject      string
	TextBody     string
	HTMLBody     string
	ReplyToName  string
	ReplyToEmail string
}

// Mailer delivers a single message.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTP sends messages through the configured relay with explicit dial and
// command timeouts, so a wedged relay surfaces as a delivery error instead
// of a hanging request.
type SMTP struct {
	settings   config.SMTPSettings
	senderName string
	timeout    time.Duration
	logger     *log.Logger
}

// NewSMTP builds a relay client from settings. timeout bounds the dial and
// every subsequent SMTP command.
func NewSMTP(settings config.SMTPSettings, senderName string, timeout time.Duration, logger *log.Logger) *SMTP {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &SMTP{settings: settings, senderName: senderName, timeout: timeout, logger: logger}
}

// Send encodes msg as a multipart MIME mail and hands it to the relay.
func (m *SMTP) Send(ctx context.Context, msg Message) error {
	if err := m.settings.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrNotConfigured, err)
	}

	envelope, err := m.buildEnvelope(msg)
	if err != nil {
		return fmt.Errorf("mail opbouwen mislukt: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	dialer := &net.Dialer{Timeout: m.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", m.settings.Address())
	if err != nil {
		return fmt.Errorf("verbinding met mailrelay mislukt: %w", err)
	}

	tlsConfig := &tls.Config{ServerName: m.settings.Host}
	implicitTLS := m.settings.Port == "465"
	if implicitTLS {
		conn = tls.Client(conn, tlsConfig)
	}

	client := smtp.NewClient(conn)
	defer client.Close()
	client.CommandTimeout = m.timeout
	client.SubmissionTimeout = m.timeout

	if !implicitTLS {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(tlsConfig); err != nil {
				return fmt.Errorf("starttls mislukt: %w", err)
			}
		}
	}

	if m.settings.Username != "" {
		auth := sasl.NewPlainClient("", m.settings.Username, m.settings.Password)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("aanmelden bij mailrelay mislukt: %w", err)
		}
	}

	if err := client.Mail(m.settings.FromEmail, nil); err != nil {
		return fmt.Errorf("afzender geweigerd: %w", err)
	}
	if err := client.Rcpt(m.settings.ToEmail, nil); err != nil {
		return fmt.Errorf("ontvanger geweigerd: %w", err)
	}
	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("datacommando mislukt: %w", err)
	}
	if _, err := writer.Write(envelope); err != nil {
		writer.Close()
		return fmt.Errorf("mail versturen mislukt: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("mail versturen mislukt: %w", err)
	}

	if err := client.Quit(); err != nil && m.logger != nil {
		m.logger.Printf("afsluiten van relayverbinding gaf een fout: %v", err)
	}
	return nil
}

// buildEnvelope assembles the MIME message with text and HTML alternatives.
func (m *SMTP) buildEnvelope(msg Message) ([]byte, error) {
	builder := enmime.Builder().
		From(m.senderName, m.settings.FromEmail).
		To("", m.settings.ToEmail).
		Subject(msg.Subject)

	if msg.ReplyToEmail != "" {
		builder = builder.ReplyTo(msg.ReplyToName, msg.ReplyToEmail)
	}
	if msg.TextBody != "" {
		builder = builder.Text([]byte(msg.TextBody))
	}
	if msg.HTMLBody != "" {
		builder = builder.HTML([]byte(msg.HTMLBody))
	}

	part, err := builder.Build()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := part.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
