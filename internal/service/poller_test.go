// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoval/go-mail-sync/models"
)

func TestSync_BootstrapsUnsetAccount(t *testing.T) {
	f := newHandlerFixture(t)
	f.provider.latest = "T0"
	f.provider.pages["T0"] = &models.Event{EventID: "T1"}

	err := f.handler.sync(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, f.events.locks, "cursor is locked before caches are cleared")
	assert.Equal(t, 1, f.messages.clears)
	assert.Equal(t, 1, f.contacts.clears)
	assert.Equal(t, 1, f.labels.groupDeletes)
	assert.Equal(t, 1, f.refetch.user)
	assert.Equal(t, 1, f.refetch.contacts)

	// After the baseline cursor lands the cycle continues from it.
	assert.Equal(t, []string{"T0", "T1"}, f.events.writes)
	assert.Equal(t, []string{"T0"}, f.provider.checked)
	assert.Equal(t, models.ValidCursor("T1"), f.events.cursor)
}

func TestSync_BootstrapsLockedAccount(t *testing.T) {
	f := newHandlerFixture(t)
	f.events.cursor = models.Cursor{State: models.CursorLocked}
	f.provider.latest = "T0"
	f.provider.pages["T0"] = &models.Event{EventID: "T1"}

	err := f.handler.sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ValidCursor("T1"), f.events.cursor)
}

func TestSync_AppliesFlagsDeltaAndAdvancesCursor(t *testing.T) {
	f := newHandlerFixture(t)
	f.events.cursor = models.ValidCursor("T0")
	f.messages.put(&models.Message{ID: "m1", AccountID: "acc-1", Unread: false})

	patch := models.NewPatch()
	unread := true
	patch.Unread = &unread

	f.provider.pages["T0"] = &models.Event{
		EventID: "T1",
		Messages: []models.MessageDelta{
			{ID: "m1", Action: models.ActionUpdateFlags, Message: patch},
		},
	}

	err := f.handler.sync(context.Background())
	require.NoError(t, err)

	assert.True(t, f.messages.get("m1").Unread)
	assert.Equal(t, models.ValidCursor("T1"), f.events.cursor)
}

func TestSync_LoopsWhileMorePages(t *testing.T) {
	f := newHandlerFixture(t)
	f.events.cursor = models.ValidCursor("T0")
	f.provider.pages["T0"] = &models.Event{EventID: "T1", More: true}
	f.provider.pages["T1"] = &models.Event{EventID: "T2"}

	err := f.handler.sync(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"T0", "T1"}, f.provider.checked)
	assert.Equal(t, models.ValidCursor("T2"), f.events.cursor)
}

func TestSync_FeedErrorLeavesCursorUntouched(t *testing.T) {
	f := newHandlerFixture(t)
	f.events.cursor = models.ValidCursor("T0")
	f.provider.pagesErr = errors.New("server down")

	err := f.handler.sync(context.Background())
	assert.Error(t, err)
	assert.Equal(t, models.ValidCursor("T0"), f.events.cursor)
}

func TestSync_StagingFailureLeavesCursorUntouched(t *testing.T) {
	f := newHandlerFixture(t)
	f.events.cursor = models.ValidCursor("T0")
	f.provider.msgErrs["m1"] = errors.New("transport down")
	f.provider.pages["T0"] = &models.Event{
		EventID: "T1",
		Messages: []models.MessageDelta{
			{ID: "m1", Action: models.ActionUpdate},
		},
	}

	err := f.handler.sync(context.Background())
	assert.Error(t, err)
	assert.Equal(t, models.ValidCursor("T0"), f.events.cursor)
	assert.Empty(t, f.messages.ops)
}

func TestSync_FullRefreshSupersedesPage(t *testing.T) {
	f := newHandlerFixture(t)
	f.events.cursor = models.ValidCursor("T0")
	f.provider.latest = "B1"

	createPatch := models.NewPatch()
	createPatch.Sender = &models.EmailAddress{Address: "a@b.c"}
	f.provider.pages["T0"] = &models.Event{
		EventID: "T9",
		Refresh: models.RefreshAll,
		Messages: []models.MessageDelta{
			{ID: "m1", Action: models.ActionCreate, Message: createPatch},
		},
	}

	err := f.handler.sync(context.Background())
	require.NoError(t, err)

	// The page's deltas are discarded; the replica is rebuilt from the feed
	// head instead of advancing past T9.
	assert.Nil(t, f.messages.get("m1"))
	assert.Equal(t, 1, f.messages.clears)
	assert.Equal(t, models.ValidCursor("B1"), f.events.cursor)
}

func TestSync_ContactRefreshResetsCacheAndContinues(t *testing.T) {
	f := newHandlerFixture(t)
	f.events.cursor = models.ValidCursor("T0")

	createPatch := models.NewPatch()
	createPatch.Sender = &models.EmailAddress{Address: "a@b.c"}
	f.provider.pages["T0"] = &models.Event{
		EventID: "T1",
		Refresh: models.RefreshContacts,
		Messages: []models.MessageDelta{
			{ID: "m1", Action: models.ActionCreate, Message: createPatch},
		},
	}

	err := f.handler.sync(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, f.contacts.clears)
	assert.Equal(t, 1, f.labels.groupDeletes)
	assert.Equal(t, 1, f.refetch.contacts)
	// Unlike a full refresh, the page itself is still applied.
	assert.NotNil(t, f.messages.get("m1"))
	assert.Equal(t, models.ValidCursor("T1"), f.events.cursor)
}

func TestStatus_ReportsCursorAndLastError(t *testing.T) {
	f := newHandlerFixture(t)
	f.events.cursor = models.ValidCursor("T0")
	f.handler.recordResult(errors.New("boom"))

	st := f.handler.status(context.Background())
	assert.Equal(t, "acc-1", st.AccountID)
	assert.Equal(t, "valid", st.Cursor)
	assert.Equal(t, "boom", st.LastError)
	assert.False(t, st.LastSync.IsZero())

	f.handler.recordResult(nil)
	st = f.handler.status(context.Background())
	assert.Empty(t, st.LastError)
}
