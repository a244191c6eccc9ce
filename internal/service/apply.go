// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dkoval/go-mail-sync/internal/logger"
	"github.com/dkoval/go-mail-sync/internal/store"
	"github.com/dkoval/go-mail-sync/models"
)

// applyEvent commits one staged batch to the replica. Entity types go in a
// fixed order so later steps can rely on earlier ones being durable: labels,
// messages, conversations (delegated), contacts, contact emails, mail
// settings, the refetch-only notifications, then counters and used space.
// Label writes are dispatched onto the async lane and not awaited; every
// other write blocks so the cursor only advances past durable state.
func (h *syncHandler) applyEvent(ctx context.Context, event *models.Event, staged stagedArena) error {
	h.applyLabels(ctx, event.Labels)

	if err := h.applyMessages(ctx, event.Messages, staged); err != nil {
		return err
	}

	if len(event.Conversations) > 0 {
		h.refetch.DelegateConversations(h.accountID, event.Conversations)
	}

	if err := h.applyContacts(ctx, event.Contacts); err != nil {
		return err
	}
	if err := h.applyContactEmails(ctx, event.ContactEmails); err != nil {
		return err
	}

	if event.MailSettings != nil {
		settings := *event.MailSettings
		settings.AccountID = h.accountID
		if err := h.settings.SaveMailSettings(ctx, &settings); err != nil {
			return err
		}
		// The feed's settings payload can be partial; what the server holds
		// now is fetched authoritatively on the side.
		h.refetch.RefetchMailSettings(h.accountID)
	}

	// User and user-settings payloads are change notifications only, never
	// merged locally.
	if event.UserSettings != nil || event.User != nil {
		h.refetch.RefetchUser(h.accountID)
	}
	if len(event.Addresses) > 0 {
		h.refetch.RefetchAddresses(h.accountID)
	}

	if len(event.MessageCounts) > 0 {
		if err := h.counters.UpsertMessageCounts(ctx, h.accountID, event.MessageCounts); err != nil {
			return err
		}
	}
	if len(event.ConversationCounts) > 0 {
		if err := h.counters.UpsertConversationCounts(ctx, h.accountID, event.ConversationCounts); err != nil {
			return err
		}
	}

	if event.UsedSpace > 0 {
		if err := h.settings.SaveUsedSpace(ctx, h.accountID, event.UsedSpace); err != nil {
			return err
		}
	}

	return nil
}

// applyLabels queues label writes on the async lane. Labels include contact
// groups; both kinds are written the same way and neither blocks the apply
// pass.
func (h *syncHandler) applyLabels(ctx context.Context, deltas []models.LabelDelta) {
	log := logger.FromContext(ctx)
	asyncCtx := h.asyncContext()

	for _, delta := range deltas {
		switch delta.Action {
		case models.ActionDelete:
			labelID := delta.ID
			h.async.Submit(func() error {
				return h.labels.DeleteLabel(asyncCtx, h.accountID, labelID)
			})
		case models.ActionCreate, models.ActionUpdate:
			if delta.Label == nil {
				log.Warn().
					Str("label_id", delta.ID).
					Msg("label delta without payload, skipping")
				continue
			}
			label := *delta.Label
			label.ID = delta.ID
			label.AccountID = h.accountID
			h.async.Submit(func() error {
				return h.labels.SaveLabel(asyncCtx, &label)
			})
		default:
			log.Warn().
				Str("label_id", delta.ID).
				Int("action", int(delta.Action)).
				Msg("unknown label action, ignoring")
		}
	}
}

// applyMessages applies the batch's message deltas one at a time, pre-sorted
// by descending numeric action kind. The sort is stable so deltas of the
// same kind keep their feed order.
func (h *syncHandler) applyMessages(ctx context.Context, deltas []models.MessageDelta, staged stagedArena) error {
	sorted := make([]models.MessageDelta, len(deltas))
	copy(sorted, deltas)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Action > sorted[j].Action
	})

	for _, delta := range sorted {
		if err := h.applyMessage(ctx, delta, staged); err != nil {
			return fmt.Errorf("apply message %s: %w", delta.ID, err)
		}
	}

	return nil
}

func (h *syncHandler) applyMessage(ctx context.Context, delta models.MessageDelta, staged stagedArena) error {
	log := logger.FromContext(ctx)

	switch delta.Action {
	case models.ActionDelete:
		// Never gated: a remote delete wins over an in-flight local send.
		return h.deleteMessage(ctx, delta.ID)
	case models.ActionCreate:
		return h.createMessage(ctx, delta)
	case models.ActionUpdate:
		return h.updateMessage(ctx, delta, staged)
	case models.ActionUpdateFlags:
		return h.updateMessageFlags(ctx, delta)
	default:
		log.Warn().
			Str("message_id", delta.ID).
			Int("action", int(delta.Action)).
			Msg("unknown message action, ignoring")
		return nil
	}
}

func (h *syncHandler) deleteMessage(ctx context.Context, messageID string) error {
	local, err := h.messages.FindMessageByID(ctx, h.accountID, messageID)
	if err != nil {
		return err
	}
	if local == nil {
		return nil
	}

	h.dropAttachments(messageID)
	return h.messages.DeleteMessage(ctx, h.accountID, messageID)
}

func (h *syncHandler) createMessage(ctx context.Context, delta models.MessageDelta) error {
	log := logger.FromContext(ctx)

	local, err := h.messages.FindMessageByID(ctx, h.accountID, delta.ID)
	if err != nil {
		return err
	}
	if local != nil {
		// Duplicate create after a crash-and-replay. Idempotent: fall
		// through to the sparse merge with whatever the payload carries.
		if delta.Message == nil {
			return nil
		}
		return h.mergeMessage(ctx, local, delta.Message)
	}

	if delta.Message == nil || delta.Message.Sender == nil {
		log.Warn().
			Str("message_id", delta.ID).
			Msg("malformed create delta, skipping")
		return nil
	}

	msg := h.messageFromPatch(ctx, delta)
	return h.messages.SaveMessage(ctx, msg)
}

func (h *syncHandler) updateMessage(ctx context.Context, delta models.MessageDelta, staged stagedArena) error {
	log := logger.FromContext(ctx)

	skip, err := h.guard.ShouldSkip(ctx, h.accountID, delta.ID)
	if err != nil {
		return err
	}
	if skip {
		log.Debug().
			Str("message_id", delta.ID).
			Msg("local write in flight, not applying remote update")
		return nil
	}

	stagedMsg, ok := staged[delta.ID]
	if !ok {
		// Dropped or skipped during staging.
		return nil
	}
	delete(staged, delta.ID)

	local, err := h.messages.FindMessageByID(ctx, h.accountID, delta.ID)
	if err != nil {
		return err
	}

	replaced := false
	switch {
	case local == nil:
		local = stagedMsg
		replaced = true
	case stagedMsg.Time > local.Time:
		// The fetched copy is strictly newer: body and attachment set are
		// replaced wholesale.
		local = stagedMsg
		replaced = true
	}
	if replaced {
		local.Location = h.locationFor(ctx, local.LabelIDs)
	}

	if delta.Message != nil {
		return h.mergeMessage(ctx, local, delta.Message)
	}
	if replaced {
		return h.messages.SaveMessage(ctx, local)
	}
	return nil
}

func (h *syncHandler) updateMessageFlags(ctx context.Context, delta models.MessageDelta) error {
	log := logger.FromContext(ctx)

	skip, err := h.guard.ShouldSkip(ctx, h.accountID, delta.ID)
	if err != nil {
		return err
	}
	if skip {
		log.Debug().
			Str("message_id", delta.ID).
			Msg("local write in flight, not applying remote flags")
		return nil
	}

	local, err := h.messages.FindMessageByID(ctx, h.accountID, delta.ID)
	if err != nil {
		return err
	}
	if local == nil || delta.Message == nil {
		return nil
	}

	return h.mergeMessage(ctx, local, delta.Message)
}

// mergeMessage applies the patch's non-sentinel fields onto msg and persists
// the result. A field holding its sentinel (negative expiration or flags,
// non-positive size and attachment count, nil pointers and slices) leaves
// the local value untouched. If the merged expiration marks the message
// already expired it is deleted instead of saved.
func (h *syncHandler) mergeMessage(ctx context.Context, msg *models.Message, patch *models.MessagePatch) error {
	if patch.Subject != nil {
		msg.Subject = *patch.Subject
	}
	if patch.Unread != nil {
		msg.Unread = *patch.Unread
	}
	if patch.Sender != nil {
		msg.Sender = *patch.Sender
	}
	if patch.ToList != nil {
		msg.ToList = patch.ToList
	}
	if patch.CCList != nil {
		msg.CCList = patch.CCList
	}
	if patch.BCCList != nil {
		msg.BCCList = patch.BCCList
	}
	if patch.Time > 0 {
		msg.Time = patch.Time
	}
	if patch.Size > 0 {
		msg.Size = patch.Size
	}
	if patch.NumAttachments > 0 {
		msg.NumAttachments = patch.NumAttachments
	}
	if patch.ExpirationTime != models.ExpirationUnchanged {
		msg.ExpirationTime = patch.ExpirationTime
	}
	if patch.Flags != models.FlagsUnchanged {
		msg.ApplyFlagsMask(patch.Flags)
	}
	if patch.AddressID != nil {
		msg.AddressID = *patch.AddressID
	}
	if patch.ConversationID != nil {
		msg.ConversationID = *patch.ConversationID
	}

	if patch.LabelIDs != nil {
		msg.LabelIDs = patch.LabelIDs
	}
	if len(patch.LabelIDsAdded) > 0 {
		for _, id := range patch.LabelIDsAdded {
			if !msg.HasLabel(id) {
				msg.LabelIDs = append(msg.LabelIDs, id)
			}
		}
		msg.Location = h.locationFor(ctx, msg.LabelIDs)
	}
	if len(patch.LabelIDsRemoved) > 0 {
		kept := make([]string, 0, len(msg.LabelIDs))
		for _, id := range msg.LabelIDs {
			removed := false
			for _, gone := range patch.LabelIDsRemoved {
				if id == gone {
					removed = true
					break
				}
			}
			if !removed {
				kept = append(kept, id)
			}
		}
		msg.LabelIDs = kept
		msg.Location = h.locationFor(ctx, msg.LabelIDs)
	}

	if msg.ExpirationTime == models.ExpirationExpired {
		h.dropAttachments(msg.ID)
		return h.messages.DeleteMessage(ctx, h.accountID, msg.ID)
	}

	return h.messages.SaveMessage(ctx, msg)
}

// locationFor derives the mailbox location from a label set: the first
// system label wins, otherwise any exclusive custom label means a folder,
// otherwise the message only lives in All Mail.
func (h *syncHandler) locationFor(ctx context.Context, labelIDs []string) int {
	for _, id := range labelIDs {
		if loc, ok := models.SystemLocation(id); ok && loc != models.LocationAllMail {
			return loc
		}
	}
	for _, id := range labelIDs {
		label, err := h.labels.FindLabelByID(ctx, h.accountID, id)
		if err != nil || label == nil {
			continue
		}
		if label.Exclusive {
			return models.LocationFolder
		}
	}
	return models.LocationAllMail
}

func (h *syncHandler) messageFromPatch(ctx context.Context, delta models.MessageDelta) *models.Message {
	p := delta.Message

	msg := &models.Message{
		ID:        delta.ID,
		AccountID: h.accountID,
		Sender:    *p.Sender,
		ToList:    p.ToList,
		CCList:    p.CCList,
		BCCList:   p.BCCList,
		Time:      p.Time,
		LabelIDs:  p.LabelIDs,
	}
	if p.Subject != nil {
		msg.Subject = *p.Subject
	}
	if p.Unread != nil {
		msg.Unread = *p.Unread
	}
	if p.AddressID != nil {
		msg.AddressID = *p.AddressID
	}
	if p.ConversationID != nil {
		msg.ConversationID = *p.ConversationID
	}
	if p.Size > 0 {
		msg.Size = p.Size
	}
	if p.NumAttachments > 0 {
		msg.NumAttachments = p.NumAttachments
	}
	if p.ExpirationTime != models.ExpirationUnchanged {
		msg.ExpirationTime = p.ExpirationTime
	}
	if p.Flags != models.FlagsUnchanged {
		msg.ApplyFlagsMask(p.Flags)
	}
	msg.Location = h.locationFor(ctx, msg.LabelIDs)

	return msg
}

func (h *syncHandler) applyContacts(ctx context.Context, deltas []models.ContactDelta) error {
	log := logger.FromContext(ctx)

	for _, delta := range deltas {
		switch delta.Action {
		case models.ActionDelete:
			if err := h.contacts.DeleteContact(ctx, h.accountID, delta.ID); err != nil {
				return err
			}
		case models.ActionCreate, models.ActionUpdate:
			if delta.Contact == nil {
				log.Warn().
					Str("contact_id", delta.ID).
					Msg("contact delta without payload, skipping")
				continue
			}
			// An oversized stored blob reads as absent; either way the
			// incoming record overwrites it.
			if _, err := h.contacts.FindContactByID(ctx, h.accountID, delta.ID); err != nil && !errors.Is(err, store.ErrContactTooLarge) {
				return err
			}
			contact := *delta.Contact
			contact.ID = delta.ID
			contact.AccountID = h.accountID
			if err := h.contacts.SaveContact(ctx, &contact); err != nil {
				return err
			}
		default:
			log.Warn().
				Str("contact_id", delta.ID).
				Int("action", int(delta.Action)).
				Msg("unknown contact action, ignoring")
		}
	}

	return nil
}

func (h *syncHandler) applyContactEmails(ctx context.Context, deltas []models.ContactEmailDelta) error {
	log := logger.FromContext(ctx)

	for _, delta := range deltas {
		switch delta.Action {
		case models.ActionDelete:
			if err := h.contacts.DeleteContactEmail(ctx, h.accountID, delta.ID); err != nil {
				return err
			}
		case models.ActionCreate, models.ActionUpdate:
			if delta.ContactEmail == nil {
				log.Warn().
					Str("contact_email_id", delta.ID).
					Msg("contact email delta without payload, skipping")
				continue
			}
			email := *delta.ContactEmail
			email.ID = delta.ID
			email.AccountID = h.accountID
			if err := h.contacts.SaveContactEmail(ctx, &email); err != nil {
				return err
			}
		default:
			log.Warn().
				Str("contact_email_id", delta.ID).
				Int("action", int(delta.Action)).
				Msg("unknown contact email action, ignoring")
		}
	}

	return nil
}

// dropAttachments deletes a message's attachment rows on the async lane so
// the apply pass never waits on them.
func (h *syncHandler) dropAttachments(messageID string) {
	asyncCtx := h.asyncContext()
	h.async.Submit(func() error {
		return h.messages.DeleteAttachments(asyncCtx, h.accountID, messageID)
	})
}

func (h *syncHandler) asyncContext() context.Context {
	return h.logger.WithContext(context.Background())
}
