// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/dkoval/go-mail-sync/internal/adapter"
	"github.com/dkoval/go-mail-sync/internal/config"
	"github.com/dkoval/go-mail-sync/internal/logger"
	"github.com/dkoval/go-mail-sync/internal/store"
	"github.com/dkoval/go-mail-sync/internal/workers"
)

// ErrUnknownAccount is returned when an account id is not in the configured
// account list.
var ErrUnknownAccount = errors.New("unknown account")

// Registry implements [SyncService]. It owns the account-to-handler map
// (create on first use, destroy on logout) and funnels every account's
// sync work onto the single serialized sync lane. Accounts are synced
// sequentially, never concurrently.
type Registry struct {
	accounts []string

	provider adapter.EventProvider
	storages *store.ClientStorages
	refetch  Refetcher

	syncLane  *workers.Lane
	asyncLane *workers.Lane

	mu       sync.Mutex
	handlers map[string]*syncHandler

	logger *logger.Logger
}

func NewRegistry(appCfg config.ClientApp, provider adapter.EventProvider, storages *store.ClientStorages, refetch Refetcher, syncLane, asyncLane *workers.Lane, log *logger.Logger) *Registry {
	return &Registry{
		accounts:  appCfg.Accounts,
		provider:  provider,
		storages:  storages,
		refetch:   refetch,
		syncLane:  syncLane,
		asyncLane: asyncLane,
		handlers:  make(map[string]*syncHandler),
		logger:    log,
	}
}

// handler returns the account's cached handler, creating it on first use.
func (r *Registry) handler(accountID string) (*syncHandler, error) {
	if !r.knownAccount(accountID) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, accountID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.handlers[accountID]
	if !ok {
		h = newSyncHandler(accountID, r.provider, r.storages, r.refetch, r.asyncLane, r.logger)
		r.handlers[accountID] = h
	}
	return h, nil
}

func (r *Registry) knownAccount(accountID string) bool {
	for _, id := range r.accounts {
		if id == accountID {
			return true
		}
	}
	return false
}

// Sync implements [SyncService]. The cycle runs on the sync lane; Sync
// blocks until it completes and returns its error. Each cycle carries a
// fresh sync id in its context logger.
func (r *Registry) Sync(ctx context.Context, accountID string) error {
	h, err := r.handler(accountID)
	if err != nil {
		return err
	}

	log := &logger.Logger{Logger: r.logger.With().
		Str("account_id", accountID).
		Str("sync_id", uuid.NewString()).
		Logger()}

	err = r.syncLane.Do(ctx, func() error {
		return h.sync(log.WithContext(ctx))
	})
	h.recordResult(err)

	if err != nil {
		// Failures never surface to the user at this layer: the replica
		// stays stale until the next successful cycle.
		log.Err(err).Msg("sync cycle failed")
		return fmt.Errorf("sync account %s: %w", accountID, err)
	}

	log.Info().Msg("sync cycle completed")
	return nil
}

// SyncAll implements [SyncService]. Accounts are processed sequentially;
// one account's failure does not stop the others.
func (r *Registry) SyncAll(ctx context.Context) error {
	var errs []error
	for _, accountID := range r.accounts {
		if err := r.Sync(ctx, accountID); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Logout implements [SyncService]. It drops the account's cached handler,
// removes its cursor row and clears its replica rows, so the next sync
// starts from a fresh bootstrap.
func (r *Registry) Logout(ctx context.Context, accountID string) error {
	if !r.knownAccount(accountID) {
		return fmt.Errorf("%w: %s", ErrUnknownAccount, accountID)
	}

	r.mu.Lock()
	delete(r.handlers, accountID)
	r.mu.Unlock()

	return r.syncLane.Do(ctx, func() error {
		if err := r.storages.Events.ClearNextEventID(ctx, accountID); err != nil {
			return fmt.Errorf("clear cursor: %w", err)
		}
		if err := r.storages.Messages.ClearMailbox(ctx, accountID); err != nil {
			return fmt.Errorf("clear mailbox: %w", err)
		}
		if err := r.storages.Contacts.ClearContacts(ctx, accountID); err != nil {
			return fmt.Errorf("clear contacts: %w", err)
		}
		if err := r.storages.Labels.DeleteContactGroups(ctx, accountID); err != nil {
			return fmt.Errorf("clear contact groups: %w", err)
		}
		r.logger.Info().Str("account_id", accountID).Msg("account logged out")
		return nil
	})
}

// Status implements [SyncService]. Accounts without a live handler are
// reported with their persisted cursor state only.
func (r *Registry) Status() []AccountStatus {
	ctx := r.logger.WithContext(context.Background())

	r.mu.Lock()
	handlers := make(map[string]*syncHandler, len(r.handlers))
	for id, h := range r.handlers {
		handlers[id] = h
	}
	r.mu.Unlock()

	statuses := make([]AccountStatus, 0, len(r.accounts))
	for _, accountID := range r.accounts {
		if h, ok := handlers[accountID]; ok {
			statuses = append(statuses, h.status(ctx))
			continue
		}

		cursor, err := r.storages.Events.NextEventID(ctx, accountID)
		state := cursor.State.String()
		if err != nil {
			state = "unknown"
		}
		statuses = append(statuses, AccountStatus{AccountID: accountID, Cursor: state})
	}

	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].AccountID < statuses[j].AccountID
	})
	return statuses
}
