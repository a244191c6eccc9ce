// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dkoval/go-mail-sync/internal/logger"
	"github.com/dkoval/go-mail-sync/models"
)

// pendingRepository reads the send subsystem's in-flight records. The sync
// engine never writes this table.
type pendingRepository struct {
	*DB
	logger *logger.Logger
}

func NewPendingRepository(db *DB, logger *logger.Logger) PendingRepository {
	return &pendingRepository{
		DB:     db,
		logger: logger,
	}
}

func (p *pendingRepository) FindSendByMessageID(ctx context.Context, accountID, messageID string) (*models.PendingSend, error) {
	return p.findSend(ctx, findPendingSendByMessageID, accountID, messageID)
}

func (p *pendingRepository) FindSendByOfflineID(ctx context.Context, accountID, offlineID string) (*models.PendingSend, error) {
	return p.findSend(ctx, findPendingSendByOfflineID, accountID, offlineID)
}

func (p *pendingRepository) findSend(ctx context.Context, query, accountID, id string) (*models.PendingSend, error) {
	log := logger.FromContext(ctx)

	if id == "" {
		return nil, nil
	}

	send := models.PendingSend{AccountID: accountID}
	row := p.DB.QueryRowContext(ctx, query, accountID, id)
	err := row.Scan(&send.ID, &send.MessageID, &send.OfflineID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Err(err).
			Str("func", "pendingRepository.findSend").
			Str("account_id", accountID).
			Str("id", id).
			Msg("failed to scan pending send row")
		return nil, fmt.Errorf("failed to find pending send (id=%s): %w", id, err)
	}

	return &send, nil
}
