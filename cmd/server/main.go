package main

import (
	"context"
	"fmt"

	"github.com/apexglitch/crm/internal/config"
	"github.com/apexglitch/crm/internal/handler"
	"github.com/apexglitch/crm/internal/logger"
	"github.com/apexglitch/crm/internal/notify"
	"github.com/apexglitch/crm/internal/server"
	"github.com/apexglitch/crm/internal/service"
	"github.com/apexglitch/crm/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("crm-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, *cfg, newNotifier(*cfg, log), log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newNotifier picks the notification backend: the SMTP mailer when mail is
// enabled in the config, a no-op otherwise. Either way delivery runs through
// the asynchronous dispatcher so request handling never waits on SMTP.
func newNotifier(cfg config.StructuredConfig, log *logger.Logger) notify.Notifier {
	if !cfg.Mail.Enabled {
		log.Info().Msg("notification mail disabled, using no-op notifier")
		return notify.NewDispatcher(notify.NewNop(), log)
	}

	mailer, err := notify.NewMailer(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mailer")
	}

	return notify.NewDispatcher(mailer, log)
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
