// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkoval/go-mail-sync/internal/logger"
	"github.com/dkoval/go-mail-sync/internal/workers"
	"github.com/dkoval/go-mail-sync/models"
)

func TestLaneRefetcher_HooksRunOnLane(t *testing.T) {
	lane := workers.NewLane("async", logger.Nop())
	lane.Run()

	var (
		mu     sync.Mutex
		called []string
	)
	record := func(kind string) func(context.Context, string) error {
		return func(_ context.Context, accountID string) error {
			mu.Lock()
			defer mu.Unlock()
			called = append(called, kind+":"+accountID)
			return nil
		}
	}

	var deltas []models.ConversationDelta
	r := NewLaneRefetcher(lane, RefetchHooks{
		User:         record("user"),
		Addresses:    record("addresses"),
		MailSettings: record("mail_settings"),
		Contacts:     record("contacts"),
		Conversations: func(_ context.Context, accountID string, d []models.ConversationDelta) error {
			mu.Lock()
			defer mu.Unlock()
			called = append(called, "conversations:"+accountID)
			deltas = d
			return nil
		},
	}, logger.Nop())

	r.RefetchUser("acc-1")
	r.RefetchAddresses("acc-1")
	r.RefetchMailSettings("acc-1")
	r.RefetchContacts("acc-1")
	r.DelegateConversations("acc-1", []models.ConversationDelta{{ID: "conv-1"}})
	lane.Close()

	assert.Equal(t, []string{
		"user:acc-1",
		"addresses:acc-1",
		"mail_settings:acc-1",
		"contacts:acc-1",
		"conversations:acc-1",
	}, called)
	assert.Equal(t, []models.ConversationDelta{{ID: "conv-1"}}, deltas)
}

func TestLaneRefetcher_NilHooksAreSafe(t *testing.T) {
	lane := workers.NewLane("async", logger.Nop())
	lane.Run()
	defer lane.Close()

	r := NewLaneRefetcher(lane, RefetchHooks{}, logger.Nop())

	r.RefetchUser("acc-1")
	r.RefetchAddresses("acc-1")
	r.RefetchMailSettings("acc-1")
	r.RefetchContacts("acc-1")
	r.DelegateConversations("acc-1", nil)
}
