package main

import (
	"context"
	"fmt"

	"github.com/dpramesti/hris-directory/internal/config"
	"github.com/dpramesti/hris-directory/internal/handler"
	"github.com/dpramesti/hris-directory/internal/logger"
	"github.com/dpramesti/hris-directory/internal/server"
	"github.com/dpramesti/hris-directory/internal/service"
	"github.com/dpramesti/hris-directory/internal/store"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("hris-directory")

	// .env is optional: a missing file simply means all configuration comes
	// from the real environment, flags, or the JSON file.
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	authDB, err := store.NewConnectPostgres(ctx, cfg.Storage.AuthDB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to the auth database")
	}
	defer authDB.Close()

	if err := authDB.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error migrating the auth database")
	}

	infoDB, err := store.NewConnectPostgres(ctx, cfg.Storage.InfoDB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to the information database")
	}
	defer infoDB.Close()

	repositories := store.NewRepositories(authDB, infoDB, log)
	services := service.NewServices(repositories, cfg.App, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().Str("address", cfg.Server.HTTPAddress).Msg("starting server")
	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
