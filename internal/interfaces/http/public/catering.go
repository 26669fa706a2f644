package public

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/mvdveer/horeca-advies-services/api/internal/infrastructure/mailer"
	"github.com/mvdveer/horeca-advies-services/api/internal/interfaces/http/common"
)

type cateringRequest struct {
	Type     string     `json:"type" validate:"required"`
	Date     string     `json:"date" validate:"required"`
	Location string     `json:"location" validate:"required"`
	People   flexString `json:"people" validate:"required"`
	Name     string     `json:"name" validate:"required"`
	Email    string     `json:"email" validate:"required,email"`
	Phone    string     `json:"phone"`
	Budget   string     `json:"budget"`
	Message  string     `json:"message"`
	Honeypot string     `json:"honeypot"`
}

func (h *Handler) cateringHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req cateringRequest
		if !h.decodeJSON(w, r, &req) {
			return
		}

		if h.spamTrap(w, "catering-inquiry", req.Honeypot) {
			return
		}

		if err := h.validate.Struct(req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Vul alle verplichte velden in.")
			return
		}

		ref := uuid.NewString()
		if h.deliver(r.Context(), w, h.buildCateringEmail(req, ref), "catering-inquiry", ref) {
			common.WriteOK(h.logger, w)
		}
	}
}

func (h *Handler) buildCateringEmail(req cateringRequest, ref string) mailer.Message {
	typeLabel := h.catalogs.CateringTypes.ResolveLabel(req.Type)

	subject := subjectLine("Cateringaanvraag (%s) van %s", typeLabel, strings.TrimSpace(req.Name))
	if people, ok := common.ParsePositiveInt(req.People.String(), 0); ok {
		subject = subjectLine("Cateringaanvraag (%s, %d gasten) van %s", typeLabel, people, strings.TrimSpace(req.Name))
	}

	fields := []emailField{
		{"Soort gelegenheid", typeLabel},
		{"Datum", short(req.Date)},
		{"Locatie", short(req.Location)},
		{"Aantal personen", short(req.People.String())},
		{"Naam", short(req.Name)},
		{"E-mail", short(req.Email)},
		{"Telefoon", short(req.Phone)},
		{"Budget", h.catalogs.Budgets.ResolveLabel(req.Budget)},
		{"Bericht", long(req.Message)},
		{"Referentie", ref},
	}

	text, htmlBody := buildBodies("Nieuwe cateringaanvraag", fields)
	return mailer.Message{
		Subject:      subject,
		TextBody:     text,
		HTMLBody:     htmlBody,
		ReplyToName:  strings.TrimSpace(req.Name),
		ReplyToEmail: strings.TrimSpace(req.Email),
	}
}
