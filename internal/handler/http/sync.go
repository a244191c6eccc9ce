package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dkoval/go-mail-sync/internal/logger"
	"github.com/dkoval/go-mail-sync/internal/service"
	"github.com/dkoval/go-mail-sync/internal/utils"
)

// syncNow runs one full sync cycle for the account and blocks until it
// finishes. Cycle failures map to 502: the replica stays stale and the
// caller is expected to retry later.
func (h *Handler) syncNow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID := chi.URLParam(r, "accountID")
	if accountID == "" {
		http.Error(w, "no account ID was given", http.StatusBadRequest)
		return
	}

	if err := h.syncService.Sync(ctx, accountID); err != nil {
		log.Err(err).Str("func", "*Handler.syncNow").Msg("error running sync cycle")
		if errors.Is(err, service.ErrUnknownAccount) {
			http.Error(w, "unknown account", http.StatusNotFound)
			return
		}
		http.Error(w, "sync cycle failed", http.StatusBadGateway)
		return
	}

	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.syncService.Status(), http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID := chi.URLParam(r, "accountID")
	if accountID == "" {
		http.Error(w, "no account ID was given", http.StatusBadRequest)
		return
	}

	if err := h.syncService.Logout(ctx, accountID); err != nil {
		log.Err(err).Str("func", "*Handler.logout").Msg("error logging account out")
		if errors.Is(err, service.ErrUnknownAccount) {
			http.Error(w, "unknown account", http.StatusNotFound)
			return
		}
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
