// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dkoval/go-mail-sync/internal/adapter"
	"github.com/dkoval/go-mail-sync/internal/logger"
	"github.com/dkoval/go-mail-sync/internal/store"
	"github.com/dkoval/go-mail-sync/internal/workers"
	"github.com/dkoval/go-mail-sync/models"
)

// syncHandler owns one account's synchronization state: its feed cursor,
// the staged-message arena of the batch in flight, and the bootstrap lock.
// Handlers are created on first use by the [Registry] and live until
// logout. All handler methods run on the serialized sync lane; the only
// concurrent entry points are the status accessors.
type syncHandler struct {
	accountID string

	provider adapter.EventProvider
	events   store.EventRepository
	messages store.MessageRepository
	labels   store.LabelRepository
	contacts store.ContactRepository
	counters store.CounterRepository
	settings store.SettingsRepository

	guard   *pendingGuard
	refetch Refetcher
	async   *workers.Lane

	// bootstrapMu guards the lock-cursor/clear-caches sequence against a
	// reentrant bootstrap arriving from outside the sync lane.
	bootstrapMu sync.Mutex

	statusMu sync.Mutex
	lastSync time.Time
	lastErr  error

	logger *logger.Logger
}

func newSyncHandler(accountID string, provider adapter.EventProvider, storages *store.ClientStorages, refetch Refetcher, async *workers.Lane, log *logger.Logger) *syncHandler {
	return &syncHandler{
		accountID: accountID,
		provider:  provider,
		events:    storages.Events,
		messages:  storages.Messages,
		labels:    storages.Labels,
		contacts:  storages.Contacts,
		counters:  storages.Counters,
		settings:  storages.Settings,
		guard:     newPendingGuard(storages.Pending),
		refetch:   refetch,
		async:     async,
		logger:    log,
	}
}

// sync runs one full cycle for the account: bootstrap if the cursor is not
// valid, then fetch/stage/apply/advance, looping while the feed reports
// more pages. Any failure leaves the cursor untouched so the next cycle
// redelivers the same batch.
func (h *syncHandler) sync(ctx context.Context) error {
	log := logger.FromContext(ctx)

	for {
		cursor, err := h.events.NextEventID(ctx, h.accountID)
		if err != nil {
			return fmt.Errorf("read cursor: %w", err)
		}

		if cursor.State != models.CursorValid {
			log.Info().
				Str("cursor_state", cursor.State.String()).
				Msg("cursor not resumable, bootstrapping account")
			if err = h.bootstrap(ctx); err != nil {
				return fmt.Errorf("bootstrap: %w", err)
			}
			continue
		}

		event, err := h.provider.GetEvents(ctx, h.accountID, cursor.EventID)
		if err != nil {
			return fmt.Errorf("check cursor %s: %w", cursor.EventID, err)
		}

		if event.NeedsFullRefresh() {
			// The reset supersedes the page: nothing from it is applied and
			// the cursor is not advanced past it. Bootstrap re-baselines
			// from the feed head.
			log.Warn().Msg("feed requested full refresh, resetting replica")
			return h.bootstrap(ctx)
		}
		if event.NeedsContactsRefresh() {
			log.Warn().Msg("feed requested contact refresh, resetting contact cache")
			if err = h.resetContacts(ctx); err != nil {
				return fmt.Errorf("contact refresh: %w", err)
			}
		}

		staged, err := h.stageMessages(ctx, event)
		if err != nil {
			return fmt.Errorf("stage batch at %s: %w", cursor.EventID, err)
		}
		if err = h.applyEvent(ctx, event, staged); err != nil {
			return fmt.Errorf("apply batch at %s: %w", cursor.EventID, err)
		}

		if err = h.events.WriteNextEventID(ctx, h.accountID, event.EventID); err != nil {
			return fmt.Errorf("advance cursor to %s: %w", event.EventID, err)
		}
		log.Debug().
			Str("event_id", event.EventID).
			Bool("has_more", event.More).
			Msg("batch applied, cursor advanced")

		if !event.More {
			return nil
		}
	}
}

// bootstrap re-baselines the account: the cursor is locked first so a crash
// mid-reset cannot leave a stale resumable token, local caches are cleared,
// a user re-fetch is queued, and the feed head becomes the new cursor.
func (h *syncHandler) bootstrap(ctx context.Context) error {
	h.bootstrapMu.Lock()
	defer h.bootstrapMu.Unlock()

	if err := h.events.LockNextEventID(ctx, h.accountID); err != nil {
		return fmt.Errorf("lock cursor: %w", err)
	}

	if err := h.messages.ClearMailbox(ctx, h.accountID); err != nil {
		return fmt.Errorf("clear mailbox: %w", err)
	}
	if err := h.resetContacts(ctx); err != nil {
		return err
	}
	h.refetch.RefetchUser(h.accountID)

	latest, err := h.provider.GetLatestEventID(ctx, h.accountID)
	if err != nil {
		return fmt.Errorf("fetch latest event id: %w", err)
	}
	if err = h.events.WriteNextEventID(ctx, h.accountID, latest); err != nil {
		return fmt.Errorf("persist baseline cursor: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("event_id", latest).
		Msg("account bootstrapped")
	return nil
}

func (h *syncHandler) resetContacts(ctx context.Context) error {
	if err := h.contacts.ClearContacts(ctx, h.accountID); err != nil {
		return fmt.Errorf("clear contacts: %w", err)
	}
	if err := h.labels.DeleteContactGroups(ctx, h.accountID); err != nil {
		return fmt.Errorf("clear contact groups: %w", err)
	}
	h.refetch.RefetchContacts(h.accountID)
	return nil
}

func (h *syncHandler) recordResult(err error) {
	h.statusMu.Lock()
	defer h.statusMu.Unlock()
	h.lastSync = time.Now()
	h.lastErr = err
}

func (h *syncHandler) status(ctx context.Context) AccountStatus {
	cursor, err := h.events.NextEventID(ctx, h.accountID)
	cursorState := cursor.State.String()
	if err != nil {
		cursorState = "unknown"
	}

	h.statusMu.Lock()
	defer h.statusMu.Unlock()

	st := AccountStatus{
		AccountID: h.accountID,
		Cursor:    cursorState,
		LastSync:  h.lastSync,
	}
	if h.lastErr != nil {
		st.LastError = h.lastErr.Error()
	}
	return st
}
