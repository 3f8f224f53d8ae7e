package main

import (
	"os"

	"github.com/nsounjou2-stack/inscription-concours/internal/pkg/logger"
	"github.com/nsounjou2-stack/inscription-concours/internal/server"
)

// @title Inscription Concours API
// @version 1.0
// @description API for contest registration: candidate submissions, payment tracking and the admin dashboard

// @contact.name API Support
// @contact.email support@concours.cm

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
