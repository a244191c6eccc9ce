// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/dkoval/go-mail-sync/internal/adapter"
	"github.com/dkoval/go-mail-sync/internal/logger"
	"github.com/dkoval/go-mail-sync/internal/store"
	"github.com/dkoval/go-mail-sync/internal/workers"
	"github.com/dkoval/go-mail-sync/models"
)

// Простые стабы вместо сгенерированных моков — пакет mock импортирует
// service, получился бы цикл импортов.

type fakeEvents struct {
	mu       sync.Mutex
	cursor   models.Cursor
	readErr  error
	writeErr error
	writes   []string
	locks    int
	clears   int
}

func (f *fakeEvents) NextEventID(_ context.Context, _ string) (models.Cursor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cursor, f.readErr
}

func (f *fakeEvents) WriteNextEventID(_ context.Context, _ string, eventID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.cursor = models.ValidCursor(eventID)
	f.writes = append(f.writes, eventID)
	return nil
}

func (f *fakeEvents) LockNextEventID(_ context.Context, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cursor = models.Cursor{State: models.CursorLocked}
	f.locks++
	return nil
}

func (f *fakeEvents) ClearNextEventID(_ context.Context, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cursor = models.Cursor{}
	f.clears++
	return nil
}

// fakeMessages keeps the replica in a map and logs every mutation in order,
// which is what the ordering tests assert against.
type fakeMessages struct {
	mu       sync.Mutex
	byID     map[string]*models.Message
	ops      []string
	attDrops []string
	clears   int
	findErr  error
	saveErr  error
}

func newFakeMessages() *fakeMessages {
	return &fakeMessages{byID: make(map[string]*models.Message)}
}

func (f *fakeMessages) put(msg *models.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[msg.ID] = msg
}

func (f *fakeMessages) get(id string) *models.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byID[id]
}

func (f *fakeMessages) SaveMessage(_ context.Context, msg *models.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	copied := *msg
	f.byID[msg.ID] = &copied
	f.ops = append(f.ops, "save:"+msg.ID)
	return nil
}

func (f *fakeMessages) FindMessageByID(_ context.Context, _ string, messageID string) (*models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	msg, ok := f.byID[messageID]
	if !ok {
		return nil, nil
	}
	copied := *msg
	return &copied, nil
}

func (f *fakeMessages) DeleteMessage(_ context.Context, _ string, messageID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, messageID)
	f.ops = append(f.ops, "delete:"+messageID)
	return nil
}

func (f *fakeMessages) DeleteAttachments(_ context.Context, _ string, messageID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attDrops = append(f.attDrops, messageID)
	return nil
}

func (f *fakeMessages) ClearMailbox(_ context.Context, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID = make(map[string]*models.Message)
	f.clears++
	return nil
}

type fakeLabels struct {
	mu           sync.Mutex
	byID         map[string]*models.Label
	deleted      []string
	groupDeletes int
}

func newFakeLabels() *fakeLabels {
	return &fakeLabels{byID: make(map[string]*models.Label)}
}

func (f *fakeLabels) put(label *models.Label) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[label.ID] = label
}

func (f *fakeLabels) SaveLabel(_ context.Context, label *models.Label) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *label
	f.byID[label.ID] = &copied
	return nil
}

func (f *fakeLabels) FindLabelByID(_ context.Context, _ string, labelID string) (*models.Label, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	label, ok := f.byID[labelID]
	if !ok {
		return nil, nil
	}
	copied := *label
	return &copied, nil
}

func (f *fakeLabels) DeleteLabel(_ context.Context, _ string, labelID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, labelID)
	f.deleted = append(f.deleted, labelID)
	return nil
}

func (f *fakeLabels) DeleteContactGroups(_ context.Context, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.groupDeletes++
	return nil
}

type fakeContacts struct {
	mu            sync.Mutex
	byID          map[string]*models.Contact
	emails        map[string]*models.ContactEmail
	deleted       []string
	emailsDeleted []string
	clears        int
	findErr       error
}

func newFakeContacts() *fakeContacts {
	return &fakeContacts{
		byID:   make(map[string]*models.Contact),
		emails: make(map[string]*models.ContactEmail),
	}
}

func (f *fakeContacts) SaveContact(_ context.Context, contact *models.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *contact
	f.byID[contact.ID] = &copied
	return nil
}

func (f *fakeContacts) FindContactByID(_ context.Context, _ string, contactID string) (*models.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	contact, ok := f.byID[contactID]
	if !ok {
		return nil, nil
	}
	return contact, nil
}

func (f *fakeContacts) DeleteContact(_ context.Context, _ string, contactID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, contactID)
	f.deleted = append(f.deleted, contactID)
	return nil
}

func (f *fakeContacts) SaveContactEmail(_ context.Context, email *models.ContactEmail) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *email
	f.emails[email.ID] = &copied
	return nil
}

func (f *fakeContacts) DeleteContactEmail(_ context.Context, _ string, contactEmailID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.emails, contactEmailID)
	f.emailsDeleted = append(f.emailsDeleted, contactEmailID)
	return nil
}

func (f *fakeContacts) ClearContacts(_ context.Context, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID = make(map[string]*models.Contact)
	f.emails = make(map[string]*models.ContactEmail)
	f.clears++
	return nil
}

type fakeCounters struct {
	mu            sync.Mutex
	messages      [][]models.UnreadCounter
	conversations [][]models.UnreadCounter
}

func (f *fakeCounters) UpsertMessageCounts(_ context.Context, _ string, counters []models.UnreadCounter) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, counters)
	return nil
}

func (f *fakeCounters) UpsertConversationCounts(_ context.Context, _ string, counters []models.UnreadCounter) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.conversations = append(f.conversations, counters)
	return nil
}

type fakePending struct {
	byMessage map[string]bool
	byOffline map[string]bool
	err       error
}

func newFakePending() *fakePending {
	return &fakePending{byMessage: make(map[string]bool), byOffline: make(map[string]bool)}
}

func (f *fakePending) FindSendByMessageID(_ context.Context, accountID, messageID string) (*models.PendingSend, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.byMessage[messageID] {
		return &models.PendingSend{AccountID: accountID, MessageID: messageID}, nil
	}
	return nil, nil
}

func (f *fakePending) FindSendByOfflineID(_ context.Context, accountID, offlineID string) (*models.PendingSend, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.byOffline[offlineID] {
		return &models.PendingSend{AccountID: accountID, OfflineID: offlineID}, nil
	}
	return nil, nil
}

type fakeSettings struct {
	mu        sync.Mutex
	saved     []*models.MailSettings
	usedSpace []int64
}

func (f *fakeSettings) SaveMailSettings(_ context.Context, settings *models.MailSettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *settings
	f.saved = append(f.saved, &copied)
	return nil
}

func (f *fakeSettings) FindMailSettings(_ context.Context, _ string) (*models.MailSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.saved) == 0 {
		return nil, nil
	}
	return f.saved[len(f.saved)-1], nil
}

func (f *fakeSettings) SaveUsedSpace(_ context.Context, _ string, usedSpace int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.usedSpace = append(f.usedSpace, usedSpace)
	return nil
}

// fakeProvider serves event pages keyed by the cursor they were requested
// with, and full messages keyed by id.
type fakeProvider struct {
	mu        sync.Mutex
	latest    string
	latestErr error
	pages     map[string]*models.Event
	pagesErr  error
	messages  map[string]*models.Message
	msgErrs   map[string]error
	checked   []string
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		pages:    make(map[string]*models.Event),
		messages: make(map[string]*models.Message),
		msgErrs:  make(map[string]error),
	}
}

func (f *fakeProvider) GetLatestEventID(_ context.Context, _ string) (string, error) {
	return f.latest, f.latestErr
}

func (f *fakeProvider) GetEvents(_ context.Context, _ string, eventID string) (*models.Event, error) {
	f.mu.Lock()
	f.checked = append(f.checked, eventID)
	f.mu.Unlock()
	if f.pagesErr != nil {
		return nil, f.pagesErr
	}
	page, ok := f.pages[eventID]
	if !ok {
		return nil, fmt.Errorf("no page recorded at %s", eventID)
	}
	return page, nil
}

func (f *fakeProvider) GetMessage(_ context.Context, _ string, messageID string) (*models.Message, error) {
	if err, ok := f.msgErrs[messageID]; ok {
		return nil, err
	}
	msg, ok := f.messages[messageID]
	if !ok {
		return nil, adapter.ErrMessageNotAvailable
	}
	copied := *msg
	return &copied, nil
}

type fakeRefetcher struct {
	mu            sync.Mutex
	user          int
	addresses     int
	mailSettings  int
	contacts      int
	conversations [][]models.ConversationDelta
}

func (f *fakeRefetcher) RefetchUser(string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.user++
}

func (f *fakeRefetcher) RefetchAddresses(string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addresses++
}

func (f *fakeRefetcher) RefetchMailSettings(string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mailSettings++
}

func (f *fakeRefetcher) RefetchContacts(string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contacts++
}

func (f *fakeRefetcher) DelegateConversations(_ string, deltas []models.ConversationDelta) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.conversations = append(f.conversations, deltas)
}

type handlerFixture struct {
	provider *fakeProvider
	events   *fakeEvents
	messages *fakeMessages
	labels   *fakeLabels
	contacts *fakeContacts
	counters *fakeCounters
	pending  *fakePending
	settings *fakeSettings
	refetch  *fakeRefetcher
	async    *workers.Lane
	handler  *syncHandler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	f := &handlerFixture{
		provider: newFakeProvider(),
		events:   &fakeEvents{},
		messages: newFakeMessages(),
		labels:   newFakeLabels(),
		contacts: newFakeContacts(),
		counters: &fakeCounters{},
		pending:  newFakePending(),
		settings: &fakeSettings{},
		refetch:  &fakeRefetcher{},
	}

	f.async = workers.NewLane("async", logger.Nop())
	f.async.Run()
	t.Cleanup(f.async.Close)

	storages := &store.ClientStorages{
		Events:   f.events,
		Messages: f.messages,
		Labels:   f.labels,
		Contacts: f.contacts,
		Counters: f.counters,
		Pending:  f.pending,
		Settings: f.settings,
	}
	f.handler = newSyncHandler("acc-1", f.provider, storages, f.refetch, f.async, logger.Nop())
	return f
}

// drain waits for every queued async job before the test asserts on state
// written from the async lane.
func (f *handlerFixture) drain() {
	f.async.Close()
}
