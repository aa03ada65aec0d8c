package main

import (
	"github.com/joho/godotenv"

	"github.com/infogrowkro/growkroweb/internal/logging"
	"github.com/infogrowkro/growkroweb/internal/server"
)

func main() {
	logging.Setup()
	logger := logging.NewLogger("main")

	if err := godotenv.Load(".env"); err != nil {
		logger.Warn().Msg("no .env file found, using process environment")
	}

	if err := server.Start(); err != nil {
		logger.Fatal().Err(err).Msg("server failed to start")
	}
}
