// Package application bouwt het inzendpakket van een afgeronde wizard en
// verstuurt het naar het bijbehorende endpoint.
package application

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mvdveer/horeca-advies-services/api/internal/catalog"
	"github.com/mvdveer/horeca-advies-services/api/internal/intake/domain"
)

// HoneypotField is included empty in every payload. The server treats a
// non-empty value as an automated submission.
const HoneypotField = "honey"

// SubmitService resolves a wizard's answer codes to display labels and posts
// the resulting payload. Exactly one network call is made per Submit; there
// are no retries.
type SubmitService struct {
	endpoint string
	client   *http.Client
	catalogs catalog.Set
	now      func() time.Time
}

// NewSubmitService builds a service posting to endpoint. A nil client falls
// back to a default with a 15 second timeout.
func NewSubmitService(endpoint string, client *http.Client, catalogs catalog.Set) *SubmitService {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &SubmitService{
		endpoint: strings.TrimSpace(endpoint),
		client:   client,
		catalogs: catalogs,
		now:      time.Now,
	}
}

// BuildPayload converts the answers into the wire format: every code-valued
// field resolved to its label (unknown codes pass through verbatim), booleans
// and free text copied as-is, a submission timestamp and an empty honeypot.
func (s *SubmitService) BuildPayload(a *domain.Answers) map[string]any {
	payload := make(map[string]any)

	for field, value := range a.Values() {
		if cat, ok := s.catalogs.ForField(field); ok {
			payload[field] = cat.ResolveLabel(value)
			continue
		}
		payload[field] = value
	}
	for field, values := range a.MultiValues() {
		if cat, ok := s.catalogs.ForField(field); ok {
			payload[field] = cat.ResolveLabels(values)
			continue
		}
		payload[field] = values
	}
	for field, value := range a.Flags() {
		payload[field] = value
	}

	payload["submittedAt"] = s.now().UTC().Format(time.RFC3339)
	payload[HoneypotField] = ""
	return payload
}

// Submit posts the payload and maps a rejection to domain.RejectedError so
// the wizard can surface the server's message verbatim.
func (s *SubmitService) Submit(ctx context.Context, a *domain.Answers) error {
	body, err := json.Marshal(s.BuildPayload(a))
	if err != nil {
		return fmt.Errorf("inzendpakket opbouwen mislukt: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("inzendverzoek opbouwen mislukt: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("inzendverzoek mislukt: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		var envelope struct {
			OK    bool   `json:"ok"`
			Error string `json:"error"`
		}
		raw, _ := io.ReadAll(io.LimitReader(res.Body, 1<<16))
		message := ""
		if err := json.Unmarshal(raw, &envelope); err == nil {
			message = strings.TrimSpace(envelope.Error)
		}
		if message == "" {
			message = "Versturen is niet gelukt. Probeer het opnieuw."
		}
		return &domain.RejectedError{Message: message}
	}

	return nil
}
