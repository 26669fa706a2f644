package public

import (
	"log"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mvdveer/horeca-advies-services/api/internal/catalog"
	"github.com/mvdveer/horeca-advies-services/api/internal/config"
	"github.com/mvdveer/horeca-advies-services/api/internal/infrastructure/mailer"
)

// Handler wires the public intake endpoints to the mail relay. Handlers are
// stateless per request; the only shared resource is the relay configuration.
type Handler struct {
	logger   *log.Logger
	mailer   mailer.Mailer
	smtp     config.SMTPSettings
	catalogs catalog.Set
	location *time.Location
	siteName string
	validate *validator.Validate
	now      func() time.Time
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger   *log.Logger
	Mailer   mailer.Mailer
	SMTP     config.SMTPSettings
	Catalogs catalog.Set
	Location *time.Location
	SiteName string
}

// NewHandler constructs the public intake handler set.
func NewHandler(cfg Config) *Handler {
	location := cfg.Location
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		logger:   cfg.Logger,
		mailer:   cfg.Mailer,
		smtp:     cfg.SMTP,
		catalogs: cfg.Catalogs,
		location: location,
		siteName: cfg.SiteName,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Register mounts all intake routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/contact", h.contactHandler())
	r.Post("/catering-inquiry", h.cateringHandler())
	r.Post("/quick-scan", h.quickScanHandler())
	r.Post("/diagnosis", h.diagnosisHandler())
}
