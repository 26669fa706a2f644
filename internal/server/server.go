package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mvdveer/horeca-advies-services/api/internal/catalog"
	"github.com/mvdveer/horeca-advies-services/api/internal/config"
	"github.com/mvdveer/horeca-advies-services/api/internal/infrastructure/mailer"
	commonhttp "github.com/mvdveer/horeca-advies-services/api/internal/interfaces/http/common"
	publichttp "github.com/mvdveer/horeca-advies-services/api/internal/interfaces/http/public"
)

// Server manages the HTTP lifecycle and injects dependencies into the
// intake handlers. It is the composition root of the application.
type Server struct {
	logger         *log.Logger
	mailer         mailer.Mailer
	smtp           config.SMTPSettings
	location       *time.Location
	siteName       string
	addr           string
	allowedOrigins []string
}

// Run starts the HTTP server with the intake routes mounted under /api and
// blocks until shutdown.
func (s *Server) Run() error {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/healthz", s.healthHandler())

	intakeHandler := publichttp.NewHandler(publichttp.Config{
		Logger:   s.logger,
		Mailer:   s.mailer,
		SMTP:     s.smtp,
		Catalogs: catalog.Default(),
		Location: s.location,
		SiteName: s.siteName,
	})
	router.Route("/api", func(r chi.Router) {
		intakeHandler.Register(r)
	})

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("HTTP-server gestart op http://%s", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	waitForShutdown(httpServer, errChan, s.logger)
	return nil
}

// withCORS adds CORS headers for the configured origins.
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && len(allowed) > 0 && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// healthHandler reports liveness and whether the mail relay is configured.
// It reports state only; variable values never leave the process.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		mailState := "configured"
		if !s.smtp.Configured() {
			mailState = "unconfigured"
		}
		commonhttp.WriteJSON(s.logger, w, http.StatusOK, map[string]string{
			"status": "ok",
			"mail":   mailState,
			"time":   time.Now().In(s.location).Format(time.RFC3339),
		})
	}
}

// waitForShutdown watches ListenAndServe and OS signals for a graceful stop.
func waitForShutdown(httpServer *http.Server, errChan <-chan error, logger *log.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server onverwacht gestopt: %v", err)
		}
	case sig := <-sigChan:
		logger.Printf("signaal %s ontvangen, server wordt gestopt", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Printf("fout bij stoppen van server: %v", err)
		}
	}
}

// New assembles the Server from configuration.
func New(cfg config.Config) *Server {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		location = time.UTC
		cfg.ServerLog.Printf("tijdzone %s laden mislukt: %v, UTC wordt gebruikt", cfg.Timezone, err)
	}

	return &Server{
		logger:         cfg.ServerLog,
		mailer:         mailer.NewSMTP(cfg.SMTP, cfg.SiteName, cfg.MailTimeout, cfg.ServerLog),
		smtp:           cfg.SMTP,
		location:       location,
		siteName:       cfg.SiteName,
		addr:           cfg.Addr,
		allowedOrigins: append([]string(nil), cfg.AllowedOrigins...),
	}
}
