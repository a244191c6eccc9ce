// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkoval/go-mail-sync/internal/adapter"
	"github.com/dkoval/go-mail-sync/internal/logger"
	"github.com/dkoval/go-mail-sync/models"
)

// stagedArena holds the fully materialized messages of one batch, keyed by
// message id. The arena is created by staging, consumed by apply, and never
// survives past a single batch.
type stagedArena map[string]*models.Message

// stageMessages pre-materializes the batch's update deltas before anything
// is written. Update deltas arrive as sparse patches, so the full message is
// fetched remotely up front. A transport or server failure on any fetch
// aborts the whole batch: nothing has been committed yet, and aborting
// guarantees the retry sees the same batch content. A message the server
// reports gone or restricted is dropped from the batch alone.
//
// Deltas whose message has an outstanding local write are skipped here
// (delete deltas never reach this guard, see applyMessage).
func (h *syncHandler) stageMessages(ctx context.Context, event *models.Event) (stagedArena, error) {
	log := logger.FromContext(ctx)
	staged := make(stagedArena, len(event.Messages))

	for _, delta := range event.Messages {
		if delta.Action != models.ActionUpdate {
			continue
		}

		skip, err := h.guard.ShouldSkip(ctx, h.accountID, delta.ID)
		if err != nil {
			return nil, err
		}
		if skip {
			log.Debug().
				Str("message_id", delta.ID).
				Msg("local write in flight, not staging remote update")
			continue
		}

		msg, err := h.provider.GetMessage(ctx, h.accountID, delta.ID)
		if errors.Is(err, adapter.ErrMessageNotAvailable) {
			log.Warn().
				Str("message_id", delta.ID).
				Msg("message no longer served, dropping from batch")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("stage message %s: %w", delta.ID, err)
		}

		msg.AccountID = h.accountID
		staged[delta.ID] = msg
	}

	return staged, nil
}
