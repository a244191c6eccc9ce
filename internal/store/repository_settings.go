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

type settingsRepository struct {
	*DB
	logger *logger.Logger
}

func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *settingsRepository) SaveMailSettings(ctx context.Context, settings *models.MailSettings) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, saveMailSettings,
		settings.AccountID,
		settings.DisplayName,
		settings.Signature,
		settings.AutoSaveContacts,
		settings.ShowImages,
		settings.UsedSpace,
	)
	if err != nil {
		log.Err(err).
			Str("func", "settingsRepository.SaveMailSettings").
			Str("account_id", settings.AccountID).
			Msg("failed to execute upsert for mail settings")
		return fmt.Errorf("failed to save mail settings (account_id=%s): %w", settings.AccountID, err)
	}

	return nil
}

func (s *settingsRepository) FindMailSettings(ctx context.Context, accountID string) (*models.MailSettings, error) {
	log := logger.FromContext(ctx)

	settings := models.MailSettings{AccountID: accountID}
	row := s.DB.QueryRowContext(ctx, getMailSettings, accountID)
	err := row.Scan(
		&settings.DisplayName,
		&settings.Signature,
		&settings.AutoSaveContacts,
		&settings.ShowImages,
		&settings.UsedSpace,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Err(err).
			Str("func", "settingsRepository.FindMailSettings").
			Str("account_id", accountID).
			Msg("failed to scan mail settings row")
		return nil, fmt.Errorf("failed to find mail settings (account_id=%s): %w", accountID, err)
	}

	return &settings, nil
}

func (s *settingsRepository) SaveUsedSpace(ctx context.Context, accountID string, usedSpace int64) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, saveUsedSpace, accountID, usedSpace)
	if err != nil {
		log.Err(err).
			Str("func", "settingsRepository.SaveUsedSpace").
			Str("account_id", accountID).
			Msg("failed to execute upsert for used space")
		return fmt.Errorf("failed to save used space (account_id=%s): %w", accountID, err)
	}

	return nil
}
