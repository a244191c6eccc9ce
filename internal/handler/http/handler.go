// Package http exposes the daemon's local control API: trigger a sync
// cycle, read per-account status, log an account out. The UI process and
// the external scheduler are its only intended clients.
package http

import (
	"github.com/dkoval/go-mail-sync/internal/logger"
	"github.com/dkoval/go-mail-sync/internal/service"
)

type Handler struct {
	syncService service.SyncService

	logger *logger.Logger
}

func NewHandler(syncService service.SyncService, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		syncService: syncService,
		logger:      logger,
	}
}
