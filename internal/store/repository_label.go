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

type labelRepository struct {
	*DB
	logger *logger.Logger
}

func NewLabelRepository(db *DB, logger *logger.Logger) LabelRepository {
	return &labelRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *labelRepository) SaveLabel(ctx context.Context, label *models.Label) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, saveLabel,
		label.AccountID,
		label.ID,
		label.Name,
		label.Color,
		label.Order,
		label.Type,
		label.Exclusive,
	)
	if err != nil {
		log.Err(err).
			Str("func", "labelRepository.SaveLabel").
			Str("account_id", label.AccountID).
			Str("label_id", label.ID).
			Msg("failed to execute upsert for label")
		return fmt.Errorf("failed to save label (label_id=%s): %w", label.ID, err)
	}

	return nil
}

func (l *labelRepository) FindLabelByID(ctx context.Context, accountID, labelID string) (*models.Label, error) {
	log := logger.FromContext(ctx)

	label := models.Label{AccountID: accountID}
	row := l.DB.QueryRowContext(ctx, getLabel, accountID, labelID)
	err := row.Scan(
		&label.ID,
		&label.Name,
		&label.Color,
		&label.Order,
		&label.Type,
		&label.Exclusive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Err(err).
			Str("func", "labelRepository.FindLabelByID").
			Str("account_id", accountID).
			Str("label_id", labelID).
			Msg("failed to scan label row")
		return nil, fmt.Errorf("failed to find label (label_id=%s): %w", labelID, err)
	}

	return &label, nil
}

func (l *labelRepository) DeleteLabel(ctx context.Context, accountID, labelID string) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, deleteLabel, accountID, labelID)
	if err != nil {
		log.Err(err).
			Str("func", "labelRepository.DeleteLabel").
			Str("account_id", accountID).
			Str("label_id", labelID).
			Msg("failed to execute delete for label")
		return fmt.Errorf("failed to delete label (label_id=%s): %w", labelID, err)
	}

	return nil
}

func (l *labelRepository) DeleteContactGroups(ctx context.Context, accountID string) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, deleteContactGroups, accountID, models.LabelTypeContactGroup)
	if err != nil {
		log.Err(err).
			Str("func", "labelRepository.DeleteContactGroups").
			Str("account_id", accountID).
			Msg("failed to execute delete for contact groups")
		return fmt.Errorf("failed to delete contact groups (account_id=%s): %w", accountID, err)
	}

	return nil
}
