// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package service

import (
	"context"
	"fmt"

	"github.com/dkoval/go-mail-sync/internal/store"
)

// pendingGuard decides whether a remote message mutation must be skipped
// because a locally originated write for the same message is still in
// flight. The send subsystem owns the pending table; the guard only reads
// it. Deletes are never routed through the guard: a remote delete always
// wins over an in-flight local send.
type pendingGuard struct {
	pending store.PendingRepository
}

func newPendingGuard(pending store.PendingRepository) *pendingGuard {
	return &pendingGuard{pending: pending}
}

// ShouldSkip reports whether messageID has an outstanding local write. The
// id is checked both as a server-side message id and as an offline id,
// since the feed can reference a message under either before the send is
// confirmed.
func (g *pendingGuard) ShouldSkip(ctx context.Context, accountID, messageID string) (bool, error) {
	send, err := g.pending.FindSendByMessageID(ctx, accountID, messageID)
	if err != nil {
		return false, fmt.Errorf("pending guard by message id: %w", err)
	}
	if send != nil {
		return true, nil
	}

	send, err = g.pending.FindSendByOfflineID(ctx, accountID, messageID)
	if err != nil {
		return false, fmt.Errorf("pending guard by offline id: %w", err)
	}

	return send != nil, nil
}
