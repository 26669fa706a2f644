package public

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"sort"
	"strings"

	"github.com/mvdveer/horeca-advies-services/api/internal/infrastructure/mailer"
	"github.com/mvdveer/horeca-advies-services/api/internal/interfaces/http/common"
)

// decodeJSON reads a bounded JSON body into dst, writing the 400 envelope on
// malformed input.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, common.MaxIntakeRequestBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		common.WriteError(h.logger, w, http.StatusBadRequest, "Ongeldige aanvraag.")
		return false
	}
	return true
}

// spamTrap short-circuits honeypot submissions: respond success-shaped
// without sending mail, so automated submitters learn nothing.
func (h *Handler) spamTrap(w http.ResponseWriter, form, honeypot string) bool {
	if strings.TrimSpace(honeypot) == "" {
		return false
	}
	if h.logger != nil {
		h.logger.Printf("honeypot gevuld bij %s, inzending stil genegeerd", form)
	}
	common.WriteOK(h.logger, w)
	return true
}

// deliver checks the relay configuration and performs the single mail
// dispatch, mapping failures onto the error envelope. Returns true when the
// mail went out; callers then write their own success envelope.
func (h *Handler) deliver(ctx context.Context, w http.ResponseWriter, msg mailer.Message, form, ref string) bool {
	if err := h.smtp.Validate(); err != nil {
		if h.logger != nil {
			h.logger.Printf("inzending %s %s geweigerd, mailconfiguratie onvolledig: %v", form, ref, err)
		}
		common.WriteError(h.logger, w, http.StatusInternalServerError, "De server is niet goed geconfigureerd. Probeer het later opnieuw.")
		return false
	}

	if err := h.mailer.Send(ctx, msg); err != nil {
		if errors.Is(err, mailer.ErrNotConfigured) {
			if h.logger != nil {
				h.logger.Printf("inzending %s %s geweigerd: %v", form, ref, err)
			}
			common.WriteError(h.logger, w, http.StatusInternalServerError, "De server is niet goed geconfigureerd. Probeer het later opnieuw.")
			return false
		}
		if h.logger != nil {
			h.logger.Printf("mail versturen voor %s %s mislukt: %v", form, ref, err)
		}
		common.WriteError(h.logger, w, http.StatusInternalServerError, "Versturen is niet gelukt. Probeer het later opnieuw.")
		return false
	}

	if h.logger != nil {
		h.logger.Printf("inzending %s %s doorgestuurd", form, ref)
	}
	return true
}

func blank(value string) bool {
	return strings.TrimSpace(value) == ""
}

func validEmailAddress(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" || len(value) > 254 {
		return false
	}
	_, err := mail.ParseAddress(value)
	return err == nil
}

// sortedKeys gives map iteration a stable order for email rendering.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// cleanList drops blank entries from a multi-select value.
func cleanList(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			continue
		}
		result = append(result, strings.TrimSpace(value))
	}
	return result
}

// flexString accepts both JSON strings and numbers, since the wizard sends
// whatever the input element held.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func (f flexString) String() string {
	return string(f)
}
