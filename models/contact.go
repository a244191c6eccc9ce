// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package models

// Contact is one replica contact row. Data holds the encoded vCard blob as
// received from the feed; this layer never decodes it.
type Contact struct {
	ID        string `json:"ID"`
	AccountID string `json:"-"`
	Name      string `json:"name"`
	Data      string `json:"data,omitempty"`
}

type ContactEmail struct {
	ID        string   `json:"ID"`
	AccountID string   `json:"-"`
	ContactID string   `json:"contactID"`
	Email     string   `json:"email"`
	Name      string   `json:"name,omitempty"`
	LabelIDs  []string `json:"labelIDs,omitempty"`
}

type ContactDelta struct {
	ID      string        `json:"ID"`
	Action  MessageAction `json:"action"`
	Contact *Contact      `json:"contact,omitempty"`
}

type ContactEmailDelta struct {
	ID           string        `json:"ID"`
	Action       MessageAction `json:"action"`
	ContactEmail *ContactEmail `json:"contactEmail,omitempty"`
}

// ConversationDelta is a change notification for a conversation. The sync
// engine does not merge conversations itself; deltas are handed off to the
// conversation subsystem.
type ConversationDelta struct {
	ID     string        `json:"ID"`
	Action MessageAction `json:"action"`
}
