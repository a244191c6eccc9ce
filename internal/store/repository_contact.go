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

type contactRepository struct {
	*DB
	logger *logger.Logger
}

func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	return &contactRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *contactRepository) SaveContact(ctx context.Context, contact *models.Contact) error {
	log := logger.FromContext(ctx)

	_, err := c.DB.ExecContext(ctx, saveContact,
		contact.AccountID,
		contact.ID,
		contact.Name,
		contact.Data,
	)
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.SaveContact").
			Str("account_id", contact.AccountID).
			Str("contact_id", contact.ID).
			Msg("failed to execute upsert for contact")
		return fmt.Errorf("failed to save contact (contact_id=%s): %w", contact.ID, err)
	}

	return nil
}

func (c *contactRepository) FindContactByID(ctx context.Context, accountID, contactID string) (*models.Contact, error) {
	log := logger.FromContext(ctx)

	contact := models.Contact{AccountID: accountID}
	var blobSize int64
	row := c.DB.QueryRowContext(ctx, getContact, accountID, contactID)
	err := row.Scan(&contact.ID, &contact.Name, &contact.Data, &blobSize)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Err(err).
			Str("func", "contactRepository.FindContactByID").
			Str("account_id", accountID).
			Str("contact_id", contactID).
			Msg("failed to scan contact row")
		return nil, fmt.Errorf("failed to find contact (contact_id=%s): %w", contactID, err)
	}

	if blobSize > maxContactBlobSize {
		log.Warn().
			Str("func", "contactRepository.FindContactByID").
			Str("account_id", accountID).
			Str("contact_id", contactID).
			Int64("blob_size", blobSize).
			Msg("contact blob exceeds read bound, treating as absent")
		return nil, ErrContactTooLarge
	}

	return &contact, nil
}

func (c *contactRepository) DeleteContact(ctx context.Context, accountID, contactID string) error {
	log := logger.FromContext(ctx)

	_, err := c.DB.ExecContext(ctx, deleteContact, accountID, contactID)
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.DeleteContact").
			Str("account_id", accountID).
			Str("contact_id", contactID).
			Msg("failed to execute delete for contact")
		return fmt.Errorf("failed to delete contact (contact_id=%s): %w", contactID, err)
	}

	return nil
}

func (c *contactRepository) SaveContactEmail(ctx context.Context, email *models.ContactEmail) error {
	log := logger.FromContext(ctx)

	_, err := c.DB.ExecContext(ctx, saveContactEmail,
		email.AccountID,
		email.ID,
		email.ContactID,
		email.Email,
		email.Name,
	)
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.SaveContactEmail").
			Str("account_id", email.AccountID).
			Str("contact_email_id", email.ID).
			Msg("failed to execute upsert for contact email")
		return fmt.Errorf("failed to save contact email (contact_email_id=%s): %w", email.ID, err)
	}

	return nil
}

func (c *contactRepository) DeleteContactEmail(ctx context.Context, accountID, contactEmailID string) error {
	log := logger.FromContext(ctx)

	_, err := c.DB.ExecContext(ctx, deleteContactEmail, accountID, contactEmailID)
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.DeleteContactEmail").
			Str("account_id", accountID).
			Str("contact_email_id", contactEmailID).
			Msg("failed to execute delete for contact email")
		return fmt.Errorf("failed to delete contact email (contact_email_id=%s): %w", contactEmailID, err)
	}

	return nil
}

func (c *contactRepository) ClearContacts(ctx context.Context, accountID string) error {
	log := logger.FromContext(ctx)

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin contact clear (account_id=%s): %w", accountID, err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{clearContacts, clearContactEmails} {
		if _, err = tx.ExecContext(ctx, stmt, accountID); err != nil {
			log.Err(err).
				Str("func", "contactRepository.ClearContacts").
				Str("account_id", accountID).
				Msg("failed to clear contact table")
			return fmt.Errorf("failed to clear contacts (account_id=%s): %w", accountID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit contact clear (account_id=%s): %w", accountID, err)
	}

	return nil
}
