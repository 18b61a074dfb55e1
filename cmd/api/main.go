package main

import (
	"context"
	"os"

	"github.com/yigit/schooladmin/internal/pkg/logger"
	"github.com/yigit/schooladmin/internal/server"
)

func main() {
	// NewServer orchestrates config, logger, database, migrations, seed and router setup
	srv, err := server.NewServer(context.Background())
	if err != nil {
		// Details are logged within the setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
