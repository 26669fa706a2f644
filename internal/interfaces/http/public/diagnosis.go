package public

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/mvdveer/horeca-advies-services/api/internal/infrastructure/mailer"
	"github.com/mvdveer/horeca-advies-services/api/internal/intake/domain"
	"github.com/mvdveer/horeca-advies-services/api/internal/interfaces/http/common"
)

// diagnosisRequest carries the short diagnosis wizard. The per-track detail
// answers arrive as a free-form map because each track renders its own
// field set.
type diagnosisRequest struct {
	Track       string            `json:"track"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Consent     bool              `json:"consent"`
	Answers     map[string]string `json:"answers"`
	SubmittedAt string            `json:"submittedAt"`
	Honey       string            `json:"honey"`
}

func (req *diagnosisRequest) validate() string {
	if !domain.Track(strings.TrimSpace(req.Track)).Valid() {
		return "Kies waarover de diagnose moet gaan."
	}
	if blank(req.Name) {
		return "Vul je naam in."
	}
	if !validEmailAddress(req.Email) {
		return "Vul een geldig e-mailadres in."
	}
	if !req.Consent {
		return "Geef toestemming voor het verwerken van je gegevens."
	}
	return ""
}

// analysisFor returns the first-pass reading shown to the user while the
// real advice is prepared by hand.
func analysisFor(track domain.Track) string {
	switch track {
	case domain.TrackWebsite:
		return "Bedankt! Op basis van je antwoorden kijken we eerst naar je online vindbaarheid en de route van bezoeker naar reservering. Je ontvangt binnen één werkdag een persoonlijke terugkoppeling."
	case domain.TrackCatering:
		return "Bedankt! We beoordelen je aanvraag op haalbaarheid van datum, aantal gasten en budget. Je ontvangt binnen één werkdag een voorstel."
	default:
		return "Bedankt! We leggen je antwoorden naast onze branchecijfers en kijken waar de grootste winst zit. Je ontvangt binnen één werkdag een persoonlijke terugkoppeling."
	}
}

func (h *Handler) diagnosisHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req diagnosisRequest
		if !h.decodeJSON(w, r, &req) {
			return
		}

		track := domain.Track(strings.TrimSpace(req.Track))

		if h.spamTrap(w, "diagnosis", req.Honey) {
			return
		}

		if msg := req.validate(); msg != "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, msg)
			return
		}

		ref := uuid.NewString()
		if h.deliver(r.Context(), w, h.buildDiagnosisEmail(req, track, ref), "diagnosis", ref) {
			common.WriteJSON(h.logger, w, http.StatusOK, common.Envelope{OK: true, Analysis: analysisFor(track)})
		}
	}
}

func (h *Handler) buildDiagnosisEmail(req diagnosisRequest, track domain.Track, ref string) mailer.Message {
	trackLabel := h.catalogs.Tracks.ResolveLabel(string(track))
	subject := subjectLine("Diagnose-aanvraag (%s) van %s [%s]", trackLabel, strings.TrimSpace(req.Name), shortRef(ref))
	received := h.receivedAt(req.SubmittedAt).In(h.location)

	fields := []emailField{
		{"Onderwerp", trackLabel},
		{"Naam", short(req.Name)},
		{"E-mail", short(req.Email)},
		{"Telefoon", short(req.Phone)},
	}
	for _, key := range sortedKeys(req.Answers) {
		fields = append(fields, emailField{Label: short(key), Value: short(req.Answers[key])})
	}
	fields = append(fields,
		emailField{"Ingediend op", received.Format("02-01-2006 15:04")},
		emailField{"Referentie", ref},
	)

	text, htmlBody := buildBodies("Nieuwe diagnose-aanvraag", fields)
	return mailer.Message{
		Subject:      subject,
		TextBody:     text,
		HTMLBody:     htmlBody,
		ReplyToName:  strings.TrimSpace(req.Name),
		ReplyToEmail: strings.TrimSpace(req.Email),
	}
}
