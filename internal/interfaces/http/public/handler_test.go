package public

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/mvdveer/horeca-advies-services/api/internal/catalog"
	"github.com/mvdveer/horeca-advies-services/api/internal/config"
	"github.com/mvdveer/horeca-advies-services/api/internal/infrastructure/mailer"
)

// mailerStub records every message handed to Send.
type mailerStub struct {
	sent []mailer.Message
	err  error
}

func (m *mailerStub) Send(_ context.Context, msg mailer.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func testSMTPSettings() config.SMTPSettings {
	return config.SMTPSettings{
		Host:      "smtp.example.com",
		Port:      "587",
		Username:  "relay",
		Password:  "geheim",
		FromEmail: "noreply@example.com",
		ToEmail:   "eigenaar@example.com",
	}
}

func newTestHandler(stub *mailerStub, smtp config.SMTPSettings) *Handler {
	h := NewHandler(Config{
		Logger:   log.New(io.Discard, "", 0),
		Mailer:   stub,
		SMTP:     smtp,
		Catalogs: catalog.Default(),
		Location: time.UTC,
		SiteName: "Horeca Advies",
	})
	h.now = func() time.Time {
		return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	}
	return h
}

// postJSON sends body through the mounted router and returns the recorder.
func postJSON(t *testing.T, h *Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		h.Register(r)
	})

	var payload []byte
	switch v := body.(type) {
	case string:
		payload = []byte(v)
	default:
		var err error
		payload, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	OK       bool   `json:"ok"`
	Error    string `json:"error"`
	Analysis string `json:"analysis"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}
