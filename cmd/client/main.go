package main

import (
	"context"
	"fmt"

	"github.com/dkoval/go-mail-sync/internal/adapter"
	"github.com/dkoval/go-mail-sync/internal/client"
	"github.com/dkoval/go-mail-sync/internal/config"
	handlerhttp "github.com/dkoval/go-mail-sync/internal/handler/http"
	"github.com/dkoval/go-mail-sync/internal/logger"
	"github.com/dkoval/go-mail-sync/internal/service"
	"github.com/dkoval/go-mail-sync/internal/store"
	"github.com/dkoval/go-mail-sync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("mail-sync")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	eventProvider, err := adapter.NewHTTPEventProvider(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create events adapter")
	}

	localStorage, err := store.NewClientStorages(log.WithContext(context.Background()), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	syncLane := workers.NewLane("sync", log)
	asyncLane := workers.NewLane("async", log)

	refetcher := service.NewLaneRefetcher(asyncLane, service.RefetchHooks{}, log)
	registry := service.NewRegistry(cfg.App, eventProvider, localStorage, refetcher, syncLane, asyncLane, log)
	syncJob := service.NewSyncJob(registry)

	handler := handlerhttp.NewHandler(registry, log)

	app, err := client.NewApp(registry, syncJob, handler, syncLane, asyncLane, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
