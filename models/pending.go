// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package models

// PendingSend records an in-flight locally originated send or draft save.
// While one exists for a message, remote update deltas for that message are
// stale by definition and must not overwrite the local copy. Owned by the
// send subsystem; the sync engine only reads these rows.
type PendingSend struct {
	ID        int64  `json:"-"`
	AccountID string `json:"-"`
	MessageID string `json:"messageID"`
	OfflineID string `json:"offlineID,omitempty"`
}
