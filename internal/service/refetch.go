// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package service

import (
	"context"

	"github.com/dkoval/go-mail-sync/internal/logger"
	"github.com/dkoval/go-mail-sync/internal/workers"
	"github.com/dkoval/go-mail-sync/models"
)

// RefetchHooks are the callbacks of the subsystems that own authoritative
// data: user profile, addresses, mail settings, contacts, and the
// conversation merger. Nil hooks are allowed; the trigger is then only
// logged. The sync engine never performs these fetches itself.
type RefetchHooks struct {
	User         func(ctx context.Context, accountID string) error
	Addresses    func(ctx context.Context, accountID string) error
	MailSettings func(ctx context.Context, accountID string) error
	Contacts     func(ctx context.Context, accountID string) error

	Conversations func(ctx context.Context, accountID string, deltas []models.ConversationDelta) error
}

// laneRefetcher implements [Refetcher] by queueing each hook on the async
// lane, keeping refetch round-trips off the serialized sync lane.
type laneRefetcher struct {
	lane   *workers.Lane
	hooks  RefetchHooks
	logger *logger.Logger
}

func NewLaneRefetcher(lane *workers.Lane, hooks RefetchHooks, log *logger.Logger) Refetcher {
	return &laneRefetcher{lane: lane, hooks: hooks, logger: log}
}

func (r *laneRefetcher) RefetchUser(accountID string) {
	r.submit("user", accountID, r.hooks.User)
}

func (r *laneRefetcher) RefetchAddresses(accountID string) {
	r.submit("addresses", accountID, r.hooks.Addresses)
}

func (r *laneRefetcher) RefetchMailSettings(accountID string) {
	r.submit("mail_settings", accountID, r.hooks.MailSettings)
}

func (r *laneRefetcher) RefetchContacts(accountID string) {
	r.submit("contacts", accountID, r.hooks.Contacts)
}

func (r *laneRefetcher) DelegateConversations(accountID string, deltas []models.ConversationDelta) {
	if r.hooks.Conversations == nil {
		r.logger.Debug().
			Str("account_id", accountID).
			Int("deltas", len(deltas)).
			Msg("no conversation hook registered, deltas dropped")
		return
	}

	ctx := r.logger.WithContext(context.Background())
	r.lane.Submit(func() error {
		return r.hooks.Conversations(ctx, accountID, deltas)
	})
}

func (r *laneRefetcher) submit(kind, accountID string, hook func(ctx context.Context, accountID string) error) {
	if hook == nil {
		r.logger.Debug().
			Str("account_id", accountID).
			Str("kind", kind).
			Msg("no refetch hook registered")
		return
	}

	ctx := r.logger.WithContext(context.Background())
	r.lane.Submit(func() error {
		return hook(ctx, accountID)
	})
}
