// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package models

// MailSettings is the account's mail configuration. The feed may deliver a
// partial object; the engine persists what it got and still triggers an
// authoritative re-fetch.
type MailSettings struct {
	AccountID        string `json:"-"`
	DisplayName      string `json:"displayName,omitempty"`
	Signature        string `json:"signature,omitempty"`
	AutoSaveContacts int    `json:"autoSaveContacts,omitempty"`
	ShowImages       int    `json:"showImages,omitempty"`
	UsedSpace        int64  `json:"usedSpace,omitempty"`
}

// UserSettings, User and Address deltas are change notifications only: the
// feed's payload is not trusted as the full truth, so the engine re-fetches
// instead of merging. The types exist to decode the notification.
type UserSettings struct {
	Email struct {
		Value string `json:"value"`
	} `json:"email"`
}

type User struct {
	ID         string `json:"ID"`
	Name       string `json:"name"`
	UsedSpace  int64  `json:"usedSpace"`
	MaxSpace   int64  `json:"maxSpace"`
	Subscribed int    `json:"subscribed"`
	Delinquent int    `json:"delinquent"`
}

type Address struct {
	ID     string `json:"ID"`
	Email  string `json:"email"`
	Status int    `json:"status"`
	Order  int    `json:"order"`
}
