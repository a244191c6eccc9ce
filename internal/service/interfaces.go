// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package service

import (
	"context"
	"time"

	"github.com/dkoval/go-mail-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService drives change-feed synchronization for the configured
// accounts. Sync runs one account's full cycle on the serialized sync lane
// and blocks until it finishes; SyncAll runs every account sequentially.
type SyncService interface {
	Sync(ctx context.Context, accountID string) error
	SyncAll(ctx context.Context) error
	Logout(ctx context.Context, accountID string) error
	Status() []AccountStatus
}

// SyncJob periodically triggers SyncAll. The job is idle until Start is
// called.
type SyncJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

// Refetcher hands off work the sync engine must not do inline: authoritative
// re-fetches of entities for which the feed is only a change notification,
// and conversation deltas, which a separate subsystem merges. All methods
// are fire-and-forget.
type Refetcher interface {
	RefetchUser(accountID string)
	RefetchAddresses(accountID string)
	RefetchMailSettings(accountID string)
	RefetchContacts(accountID string)
	DelegateConversations(accountID string, deltas []models.ConversationDelta)
}

// AccountStatus is one account's entry in the status report.
type AccountStatus struct {
	AccountID string    `json:"accountID"`
	Cursor    string    `json:"cursor"`
	LastSync  time.Time `json:"lastSync,omitzero"`
	LastError string    `json:"lastError,omitempty"`
}
