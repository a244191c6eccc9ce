// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package store

import (
	"context"

	"github.com/dkoval/go-mail-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// EventRepository persists each account's position in the remote change
// feed. The position has three states (see [models.Cursor]): a missing row
// is unset, an empty token is the locked sentinel written during bootstrap,
// anything else is a valid resumable token.
type EventRepository interface {
	NextEventID(ctx context.Context, accountID string) (models.Cursor, error)
	WriteNextEventID(ctx context.Context, accountID, eventID string) error
	LockNextEventID(ctx context.Context, accountID string) error
	ClearNextEventID(ctx context.Context, accountID string) error
}

// MessageRepository is the replica's message table. Find methods return
// (nil, nil) when no row matches.
type MessageRepository interface {
	SaveMessage(ctx context.Context, msg *models.Message) error
	FindMessageByID(ctx context.Context, accountID, messageID string) (*models.Message, error)
	DeleteMessage(ctx context.Context, accountID, messageID string) error
	DeleteAttachments(ctx context.Context, accountID, messageID string) error
	ClearMailbox(ctx context.Context, accountID string) error
}

// LabelRepository covers mailbox labels, folders and contact groups.
// FindLabelByID returns (nil, nil) when no row matches.
type LabelRepository interface {
	SaveLabel(ctx context.Context, label *models.Label) error
	FindLabelByID(ctx context.Context, accountID, labelID string) (*models.Label, error)
	DeleteLabel(ctx context.Context, accountID, labelID string) error
	DeleteContactGroups(ctx context.Context, accountID string) error
}

// ContactRepository covers contacts and their email rows. FindContactByID
// returns ErrContactTooLarge when the stored blob exceeds the read bound,
// and (nil, nil) when no row matches.
type ContactRepository interface {
	SaveContact(ctx context.Context, contact *models.Contact) error
	FindContactByID(ctx context.Context, accountID, contactID string) (*models.Contact, error)
	DeleteContact(ctx context.Context, accountID, contactID string) error
	SaveContactEmail(ctx context.Context, email *models.ContactEmail) error
	DeleteContactEmail(ctx context.Context, accountID, contactEmailID string) error
	ClearContacts(ctx context.Context, accountID string) error
}

// CounterRepository bulk-upserts per-label unread counters.
type CounterRepository interface {
	UpsertMessageCounts(ctx context.Context, accountID string, counters []models.UnreadCounter) error
	UpsertConversationCounts(ctx context.Context, accountID string, counters []models.UnreadCounter) error
}

// PendingRepository reads the send subsystem's in-flight records. Both
// lookups return (nil, nil) when no row matches.
type PendingRepository interface {
	FindSendByMessageID(ctx context.Context, accountID, messageID string) (*models.PendingSend, error)
	FindSendByOfflineID(ctx context.Context, accountID, offlineID string) (*models.PendingSend, error)
}

// SettingsRepository persists the account's mail settings and used space.
type SettingsRepository interface {
	SaveMailSettings(ctx context.Context, settings *models.MailSettings) error
	FindMailSettings(ctx context.Context, accountID string) (*models.MailSettings, error)
	SaveUsedSpace(ctx context.Context, accountID string, usedSpace int64) error
}
