package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Anish-A1/pricewise/internal/adapter"
	"github.com/Anish-A1/pricewise/internal/config"
	handler "github.com/Anish-A1/pricewise/internal/handler/http"
	"github.com/Anish-A1/pricewise/internal/logger"
	"github.com/Anish-A1/pricewise/internal/server"
	"github.com/Anish-A1/pricewise/internal/service"
	"github.com/Anish-A1/pricewise/internal/store"
	"github.com/Anish-A1/pricewise/internal/validators"
	"github.com/Anish-A1/pricewise/internal/workers"
	"github.com/Anish-A1/pricewise/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const startupTimeout = 30 * time.Second

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger("pricewise-server", cfg.App.LogLevel)

	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	storages, err := store.NewStorages(startupCtx, cfg.Storage, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(context.Background()); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	classifier, err := adapter.NewHTTPClassifier(cfg.Adapter.Classifier, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating classifier client")
	}
	mailer, err := adapter.NewSMTPMailer(cfg.Adapter.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mailer")
	}

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, service.Adapters{
		Classifier: classifier,
		Mailer:     mailer,
	}, cfg.App, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	h := handler.NewHandler(services, validators.NewRequestValidator(), handler.SettingsFromConfig(cfg), log)
	ws := workers.NewWorkers(cfg.Workers, storages.TrackingRepository, mailer, log)

	srv, err := server.NewServer(h.Init(), ws, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	fmt.Printf("Build version: %s\n", orNA(buildVersion))
	fmt.Printf("Build date: %s\n", orNA(buildDate))
	fmt.Printf("Build commit: %s\n", orNA(buildCommit))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
