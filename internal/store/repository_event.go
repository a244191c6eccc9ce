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

// eventRepository persists the per-account feed cursor in the sync_state
// table. The three cursor states map onto storage as: no row → unset, empty
// next_event_id → locked, anything else → valid.
type eventRepository struct {
	*DB
	logger *logger.Logger
}

func NewEventRepository(db *DB, logger *logger.Logger) EventRepository {
	return &eventRepository{
		DB:     db,
		logger: logger,
	}
}

func (e *eventRepository) NextEventID(ctx context.Context, accountID string) (models.Cursor, error) {
	log := logger.FromContext(ctx)

	var token string
	row := e.DB.QueryRowContext(ctx, getNextEventID, accountID)
	if err := row.Scan(&token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Cursor{State: models.CursorUnset}, nil
		}
		log.Err(err).
			Str("func", "eventRepository.NextEventID").
			Str("account_id", accountID).
			Msg("failed to read next event id")
		return models.Cursor{}, fmt.Errorf("failed to read next event id (account_id=%s): %w", accountID, err)
	}

	if token == "" {
		return models.Cursor{State: models.CursorLocked}, nil
	}
	return models.ValidCursor(token), nil
}

func (e *eventRepository) WriteNextEventID(ctx context.Context, accountID, eventID string) error {
	log := logger.FromContext(ctx)

	if eventID == "" {
		// An empty token is the locked sentinel; writing it through this
		// path would silently lock the account.
		return fmt.Errorf("refusing to write empty event id (account_id=%s)", accountID)
	}

	_, err := e.DB.ExecContext(ctx, upsertNextEventID, accountID, eventID)
	if err != nil {
		log.Err(err).
			Str("func", "eventRepository.WriteNextEventID").
			Str("account_id", accountID).
			Msg("failed to write next event id")
		return fmt.Errorf("failed to write next event id (account_id=%s): %w", accountID, err)
	}

	return nil
}

func (e *eventRepository) LockNextEventID(ctx context.Context, accountID string) error {
	log := logger.FromContext(ctx)

	_, err := e.DB.ExecContext(ctx, upsertNextEventID, accountID, "")
	if err != nil {
		log.Err(err).
			Str("func", "eventRepository.LockNextEventID").
			Str("account_id", accountID).
			Msg("failed to lock next event id")
		return fmt.Errorf("failed to lock next event id (account_id=%s): %w", accountID, err)
	}

	return nil
}

func (e *eventRepository) ClearNextEventID(ctx context.Context, accountID string) error {
	log := logger.FromContext(ctx)

	_, err := e.DB.ExecContext(ctx, deleteNextEventID, accountID)
	if err != nil {
		log.Err(err).
			Str("func", "eventRepository.ClearNextEventID").
			Str("account_id", accountID).
			Msg("failed to clear next event id")
		return fmt.Errorf("failed to clear next event id (account_id=%s): %w", accountID, err)
	}

	return nil
}
