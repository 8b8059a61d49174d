package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/campushire/campushire/internal/pkg/logger"
	"github.com/campushire/campushire/internal/server"
)

// @title CampusHire API
// @version 1.0
// @description Campus placement portal connecting students, colleges and recruiters

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT access token, sent as "Bearer <token>"

func main() {
	// A missing .env file is fine; the environment may carry everything.
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}
}
