package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/mvdveer/horeca-advies-services/api/internal/config"
	"github.com/mvdveer/horeca-advies-services/api/internal/server"
)

func main() {
	// Local development reads SMTP settings from .env; on the host they come
	// from the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	app := server.New(cfg)
	if err := app.Run(); err != nil {
		log.Fatalf("server starten mislukt: %v", err)
	}
}
