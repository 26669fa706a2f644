package public

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mvdveer/horeca-advies-services/api/internal/infrastructure/mailer"
	"github.com/mvdveer/horeca-advies-services/api/internal/intake/domain"
	"github.com/mvdveer/horeca-advies-services/api/internal/interfaces/http/common"
)

// quickScanRequest is the payload of the multi-step quick scan. The wizard
// sends resolved labels; older clients send raw codes. Both pass through the
// catalog, which leaves unknown values verbatim.
type quickScanRequest struct {
	Consent       bool     `json:"consent"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	ReasonNow     string   `json:"reasonNow"`
	Outcome90     string   `json:"outcome90"`
	SuccessMetric string   `json:"successMetric"`
	RevenueFocus  []string `json:"revenueFocus"`
	PrimaryAction string   `json:"primaryAction"`
	Leaks         []string `json:"leaks"`
	Timeline      string   `json:"timeline"`
	Remarks       string   `json:"remarks"`
	SubmittedAt   string   `json:"submittedAt"`
	Honey         string   `json:"honey"`
}

// validate re-checks every step block in wizard order and returns the first
// failure, so the client can tell the user exactly which step is incomplete.
func (req *quickScanRequest) validate() string {
	if blank(req.ReasonNow) || blank(req.Outcome90) {
		return "Stap 1 is niet compleet."
	}
	if blank(req.SuccessMetric) || len(cleanList(req.RevenueFocus)) == 0 || blank(req.PrimaryAction) {
		return "Stap 2 is niet compleet."
	}
	if len(cleanList(req.RevenueFocus)) > domain.MaxRevenueFocus {
		return fmt.Sprintf("Kies maximaal %d omzetgebieden.", domain.MaxRevenueFocus)
	}
	if len(cleanList(req.Leaks)) == 0 || blank(req.Timeline) {
		return "Stap 3 is niet compleet."
	}
	if len(cleanList(req.Leaks)) > domain.MaxLeaks {
		return fmt.Sprintf("Kies maximaal %d kostenlekken.", domain.MaxLeaks)
	}
	if blank(req.Name) || !validEmailAddress(req.Email) {
		return "Stap 4 is niet compleet."
	}
	if !req.Consent {
		return "Geef toestemming voor het verwerken van je gegevens."
	}
	return ""
}

func (h *Handler) quickScanHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req quickScanRequest
		if !h.decodeJSON(w, r, &req) {
			return
		}

		if h.spamTrap(w, "quick-scan", req.Honey) {
			return
		}

		if msg := req.validate(); msg != "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, msg)
			return
		}

		ref := uuid.NewString()
		if h.deliver(r.Context(), w, h.buildQuickScanEmail(req, ref), "quick-scan", ref) {
			common.WriteOK(h.logger, w)
		}
	}
}

// receivedAt validates the client timestamp and substitutes the server clock
// when it is absent or not valid RFC 3339.
func (h *Handler) receivedAt(submittedAt string) time.Time {
	parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(submittedAt))
	if err != nil {
		return h.now()
	}
	return parsed
}

func (h *Handler) buildQuickScanEmail(req quickScanRequest, ref string) mailer.Message {
	subject := subjectLine("Quick scan van %s [%s]", strings.TrimSpace(req.Name), shortRef(ref))
	received := h.receivedAt(req.SubmittedAt).In(h.location)

	fields := []emailField{
		{"Naam", short(req.Name)},
		{"E-mail", short(req.Email)},
		{"Telefoon", short(req.Phone)},
		{"Wat speelt er nu", h.catalogs.Reasons.ResolveLabel(req.ReasonNow)},
		{"Doel over 90 dagen", h.catalogs.Outcomes.ResolveLabel(req.Outcome90)},
		{"Succes afgemeten aan", h.catalogs.Metrics.ResolveLabel(req.SuccessMetric)},
		{"Omzetfocus", strings.Join(h.catalogs.RevenueFocus.ResolveLabels(cleanList(req.RevenueFocus)), ", ")},
		{"Eerstvolgende actie", h.catalogs.Actions.ResolveLabel(req.PrimaryAction)},
		{"Kostenlekken", strings.Join(h.catalogs.Leaks.ResolveLabels(cleanList(req.Leaks)), ", ")},
		{"Termijn", h.catalogs.Timelines.ResolveLabel(req.Timeline)},
		{"Opmerkingen", long(req.Remarks)},
		{"Ingediend op", received.Format("02-01-2006 15:04")},
		{"Referentie", ref},
	}

	text, htmlBody := buildBodies("Nieuwe quick scan", fields)
	return mailer.Message{
		Subject:      subject,
		TextBody:     text,
		HTMLBody:     htmlBody,
		ReplyToName:  strings.TrimSpace(req.Name),
		ReplyToEmail: strings.TrimSpace(req.Email),
	}
}
