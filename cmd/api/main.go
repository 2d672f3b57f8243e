package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/emreo/coursereg/internal/pkg/logger"
	"github.com/emreo/coursereg/internal/server"
)

func main() {
	// A .env file is optional; real deployments set environment variables
	// directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("Could not load .env file")
	}

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
