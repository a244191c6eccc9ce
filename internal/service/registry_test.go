// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoval/go-mail-sync/internal/config"
	"github.com/dkoval/go-mail-sync/internal/logger"
	"github.com/dkoval/go-mail-sync/internal/store"
	"github.com/dkoval/go-mail-sync/internal/workers"
	"github.com/dkoval/go-mail-sync/models"
)

func newTestRegistry(t *testing.T, f *handlerFixture, accounts ...string) *Registry {
	t.Helper()

	syncLane := workers.NewLane("sync", logger.Nop())
	syncLane.Run()
	t.Cleanup(syncLane.Close)

	storages := &store.ClientStorages{
		Events:   f.events,
		Messages: f.messages,
		Labels:   f.labels,
		Contacts: f.contacts,
		Counters: f.counters,
		Pending:  f.pending,
		Settings: f.settings,
	}
	return NewRegistry(
		config.ClientApp{Accounts: accounts},
		f.provider, storages, f.refetch, syncLane, f.async, logger.Nop(),
	)
}

func TestRegistry_Sync_UnknownAccount(t *testing.T) {
	f := newHandlerFixture(t)
	r := newTestRegistry(t, f, "acc-1")

	err := r.Sync(context.Background(), "stranger")
	assert.ErrorIs(t, err, ErrUnknownAccount)
}

func TestRegistry_Sync_RunsCycle(t *testing.T) {
	f := newHandlerFixture(t)
	f.events.cursor = models.ValidCursor("T0")
	f.provider.pages["T0"] = &models.Event{EventID: "T1"}
	r := newTestRegistry(t, f, "acc-1")

	err := r.Sync(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Equal(t, models.ValidCursor("T1"), f.events.cursor)
}

func TestRegistry_Sync_FailureSurfacesInStatus(t *testing.T) {
	f := newHandlerFixture(t)
	f.events.cursor = models.ValidCursor("T0")
	f.provider.pagesErr = errors.New("server down")
	r := newTestRegistry(t, f, "acc-1")

	err := r.Sync(context.Background(), "acc-1")
	require.Error(t, err)

	statuses := r.Status()
	require.Len(t, statuses, 1)
	assert.Contains(t, statuses[0].LastError, "server down")
}

func TestRegistry_HandlerIsCached(t *testing.T) {
	f := newHandlerFixture(t)
	r := newTestRegistry(t, f, "acc-1")

	first, err := r.handler("acc-1")
	require.NoError(t, err)
	second, err := r.handler("acc-1")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestRegistry_SyncAll_CollectsPerAccountErrors(t *testing.T) {
	f := newHandlerFixture(t)
	f.events.cursor = models.ValidCursor("T0")
	f.provider.pagesErr = errors.New("server down")
	r := newTestRegistry(t, f, "acc-1", "acc-2")

	err := r.SyncAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "acc-1")
	assert.Contains(t, err.Error(), "acc-2")
}

func TestRegistry_Logout(t *testing.T) {
	f := newHandlerFixture(t)
	f.events.cursor = models.ValidCursor("T0")
	r := newTestRegistry(t, f, "acc-1")

	_, err := r.handler("acc-1")
	require.NoError(t, err)

	err = r.Logout(context.Background(), "acc-1")
	require.NoError(t, err)

	assert.Equal(t, 1, f.events.clears)
	assert.Equal(t, 1, f.messages.clears)
	assert.Equal(t, 1, f.contacts.clears)
	assert.Equal(t, 1, f.labels.groupDeletes)

	r.mu.Lock()
	_, live := r.handlers["acc-1"]
	r.mu.Unlock()
	assert.False(t, live, "logout drops the cached handler")

	assert.ErrorIs(t, r.Logout(context.Background(), "stranger"), ErrUnknownAccount)
}

func TestRegistry_Status_SortedAndCoversIdleAccounts(t *testing.T) {
	f := newHandlerFixture(t)
	f.events.cursor = models.ValidCursor("T0")
	f.provider.pages["T0"] = &models.Event{EventID: "T1"}
	r := newTestRegistry(t, f, "acc-b", "acc-a")

	// Only acc-b has run; acc-a is reported from its persisted cursor alone.
	require.NoError(t, r.Sync(context.Background(), "acc-b"))

	statuses := r.Status()
	require.Len(t, statuses, 2)
	assert.Equal(t, "acc-a", statuses[0].AccountID)
	assert.True(t, statuses[0].LastSync.IsZero())
	assert.Equal(t, "acc-b", statuses[1].AccountID)
	assert.False(t, statuses[1].LastSync.IsZero())
}
