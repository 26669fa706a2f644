package public

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/mvdveer/horeca-advies-services/api/internal/infrastructure/mailer"
	"github.com/mvdveer/horeca-advies-services/api/internal/interfaces/http/common"
)

// contactRequest is the general contact form. The optional tail covers the
// service-specific sub-blocks the frontend renders per dienst.
type contactRequest struct {
	Service string     `json:"service" validate:"required"`
	Name    string     `json:"name" validate:"required"`
	Email   string     `json:"email" validate:"required,email"`
	City    string     `json:"city" validate:"required"`
	Message string     `json:"message" validate:"required"`
	Phone   string     `json:"phone"`
	Website string     `json:"website"`
	Goal    string     `json:"goal"`
	Date    string     `json:"date"`
	Guests  flexString `json:"guests"`
	Budget  string     `json:"budget"`
	Package string     `json:"package"`
}

func (h *Handler) contactHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if !h.decodeJSON(w, r, &req) {
			return
		}

		if err := h.validate.Struct(req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Missing required fields")
			return
		}

		ref := uuid.NewString()
		if h.deliver(r.Context(), w, h.buildContactEmail(req, ref), "contact", ref) {
			common.WriteOK(h.logger, w)
		}
	}
}

func (h *Handler) buildContactEmail(req contactRequest, ref string) mailer.Message {
	subject := subjectLine("Nieuwe aanvraag (%s) van %s uit %s", strings.TrimSpace(req.Service), strings.TrimSpace(req.Name), strings.TrimSpace(req.City))

	fields := []emailField{
		{"Dienst", h.catalogs.Services.ResolveLabel(req.Service)},
		{"Naam", short(req.Name)},
		{"E-mail", short(req.Email)},
		{"Telefoon", short(req.Phone)},
		{"Plaats", short(req.City)},
		{"Website", short(req.Website)},
		{"Doel", short(req.Goal)},
		{"Gewenste datum", short(req.Date)},
		{"Aantal gasten", short(req.Guests.String())},
		{"Budget", h.catalogs.Budgets.ResolveLabel(req.Budget)},
		{"Pakket", short(req.Package)},
		{"Bericht", long(req.Message)},
		{"Referentie", ref},
	}

	text, htmlBody := buildBodies("Nieuwe aanvraag via het contactformulier", fields)
	return mailer.Message{
		Subject:      subject,
		TextBody:     text,
		HTMLBody:     htmlBody,
		ReplyToName:  strings.TrimSpace(req.Name),
		ReplyToEmail: strings.TrimSpace(req.Email),
	}
}
