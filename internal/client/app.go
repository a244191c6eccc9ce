package client

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dkoval/go-mail-sync/internal/config"
	handlerhttp "github.com/dkoval/go-mail-sync/internal/handler/http"
	"github.com/dkoval/go-mail-sync/internal/logger"
	"github.com/dkoval/go-mail-sync/internal/service"
	"github.com/dkoval/go-mail-sync/internal/workers"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	syncService service.SyncService
	syncJob     service.SyncJob

	syncLane  *workers.Lane
	asyncLane *workers.Lane

	server       *http.Server
	syncInterval time.Duration

	logger *logger.Logger
}

func NewApp(syncService service.SyncService, syncJob service.SyncJob, handler *handlerhttp.Handler, syncLane, asyncLane *workers.Lane, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	if syncService == nil || syncJob == nil || handler == nil {
		return nil, errors.New("nil dependency passed to client app")
	}

	server := &http.Server{
		Addr:    cfg.Control.HTTPAddress,
		Handler: handler.Init(),
	}

	return &App{
		syncService:  syncService,
		syncJob:      syncJob,
		syncLane:     syncLane,
		asyncLane:    asyncLane,
		server:       server,
		syncInterval: cfg.Workers.SyncInterval,
		logger:       log,
	}, nil
}

// Run starts the lanes, the control API and the periodic sync job, performs
// one initial sync of every account, and blocks until SIGINT/SIGTERM. On
// shutdown the control API drains first, then the lanes finish their queued
// work.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	workers.NewWorkers(a.syncLane, a.asyncLane).Run()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info().Str("addr", a.server.Addr).Msg("control api listening")
		if err := a.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.server.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		// Sync failures stay silent at this layer: the replica is simply
		// stale until the next cycle succeeds.
		if err := a.syncService.SyncAll(gctx); err != nil {
			a.logger.Err(err).Msg("initial sync incomplete")
		}

		a.syncJob.Start(gctx, a.syncInterval)
		<-gctx.Done()
		a.syncJob.Stop()
		return nil
	})

	err := g.Wait()

	a.syncLane.Close()
	a.asyncLane.Close()
	a.logger.Info().Msg("daemon stopped")

	return err
}
