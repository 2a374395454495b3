package main

import (
	"os"

	"github.com/certichain/certichain/internal/pkg/logger"
	"github.com/certichain/certichain/internal/server"
)

// @title CertiChain API
// @version 1.0
// @description Blockchain-anchored certificate issuance and verification service

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /api
// @schemes http https

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
	os.Exit(0)
}
