// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/dkoval/go-mail-sync/internal/logger"
	"github.com/dkoval/go-mail-sync/models"
)

type counterRepository struct {
	*DB
	logger *logger.Logger
}

func NewCounterRepository(db *DB, logger *logger.Logger) CounterRepository {
	return &counterRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *counterRepository) UpsertMessageCounts(ctx context.Context, accountID string, counters []models.UnreadCounter) error {
	return r.upsertCounts(ctx, "message_counts", accountID, counters)
}

func (r *counterRepository) UpsertConversationCounts(ctx context.Context, accountID string, counters []models.UnreadCounter) error {
	return r.upsertCounts(ctx, "conversation_counts", accountID, counters)
}

// upsertCounts writes the whole counter list in one multi-values statement.
// Counter pages can carry an entry per label, so a statement per row would
// dominate the apply pass.
func (r *counterRepository) upsertCounts(ctx context.Context, table, accountID string, counters []models.UnreadCounter) error {
	log := logger.FromContext(ctx)

	if len(counters) == 0 {
		return nil
	}

	builder := sq.Insert(table).Columns("account_id", "label_id", "unread", "total")
	for _, counter := range counters {
		builder = builder.Values(accountID, counter.LabelID, counter.Unread, counter.Total)
	}
	builder = builder.Suffix(
		"ON CONFLICT (account_id, label_id) DO UPDATE SET unread = excluded.unread, total = excluded.total")

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build counter upsert (table=%s): %w", table, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "counterRepository.upsertCounts").
			Str("account_id", accountID).
			Str("table", table).
			Int("counters", len(counters)).
			Msg("failed to execute bulk upsert for counters")
		return fmt.Errorf("failed to upsert counters (table=%s): %w", table, err)
	}

	return nil
}
