// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package models

// Result codes returned by the events API. Anything other than CodeOK fails
// the whole sync cycle; the message-fetch codes below are the only ones the
// staging phase is allowed to swallow.
const (
	CodeOK                = 1000
	CodeMessageNotFound   = 2501
	CodeMessageRestricted = 2028
)

// Refresh bitmask on an event page. RefreshContacts requests a full contact
// reset before the page's deltas are applied; RefreshAll supersedes the page
// entirely.
const (
	RefreshContacts = 1
	RefreshAll      = 255
)

// Event is one page of the per-account change feed, as returned by
// GET /events/{cursor}.
type Event struct {
	Code    int    `json:"code"`
	EventID string `json:"eventID"`
	Refresh int    `json:"refresh"`
	More    bool   `json:"has_more"`

	Messages      []MessageDelta      `json:"messageUpdates,omitempty"`
	Conversations []ConversationDelta `json:"conversationUpdates,omitempty"`
	Contacts      []ContactDelta      `json:"contactUpdates,omitempty"`
	ContactEmails []ContactEmailDelta `json:"contactEmailsUpdates,omitempty"`
	Labels        []LabelDelta        `json:"labelUpdates,omitempty"`

	User         *User         `json:"userUpdates,omitempty"`
	UserSettings *UserSettings `json:"userSettingsUpdates,omitempty"`
	MailSettings *MailSettings `json:"mailSettingsUpdates,omitempty"`
	Addresses    []Address     `json:"addresses,omitempty"`

	MessageCounts      []UnreadCounter `json:"messageCounts,omitempty"`
	ConversationCounts []UnreadCounter `json:"conversationCounts,omitempty"`
	UsedSpace          int64           `json:"usedSpace,omitempty"`
}

// NeedsFullRefresh reports whether the page invalidates the whole replica.
func (e *Event) NeedsFullRefresh() bool {
	return e.Refresh&RefreshAll == RefreshAll
}

// NeedsContactsRefresh reports whether the page invalidates the contact cache.
func (e *Event) NeedsContactsRefresh() bool {
	return e.Refresh&RefreshContacts != 0
}

// LatestEvent is the response of GET /events/latest: the baseline cursor for
// an account that has just been bootstrapped.
type LatestEvent struct {
	Code    int    `json:"code"`
	EventID string `json:"eventID"`
}

// MessageResponse wraps a full message fetched by id during staging.
type MessageResponse struct {
	Code    int      `json:"code"`
	Message *Message `json:"message,omitempty"`
}
