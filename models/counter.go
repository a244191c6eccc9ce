// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package models

// UnreadCounter is a per-label unread/total pair. The feed sends one list
// for messages and one for conversations; both use this shape.
type UnreadCounter struct {
	LabelID string `json:"labelID"`
	Unread  int64  `json:"unread"`
	Total   int64  `json:"total"`
}
