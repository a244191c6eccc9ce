// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dkoval/go-mail-sync/internal/logger"
	"github.com/dkoval/go-mail-sync/models"
)

type messageRepository struct {
	*DB
	logger *logger.Logger
}

func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	return &messageRepository{
		DB:     db,
		logger: logger,
	}
}

// recipientLists is the JSON shape of the messages.recipients column.
type recipientLists struct {
	To  []models.EmailAddress `json:"to,omitempty"`
	CC  []models.EmailAddress `json:"cc,omitempty"`
	BCC []models.EmailAddress `json:"bcc,omitempty"`
}

func (m *messageRepository) SaveMessage(ctx context.Context, msg *models.Message) error {
	log := logger.FromContext(ctx)

	sender, err := json.Marshal(msg.Sender)
	if err != nil {
		return fmt.Errorf("failed to encode sender (message_id=%s): %w", msg.ID, err)
	}
	recipients, err := json.Marshal(recipientLists{To: msg.ToList, CC: msg.CCList, BCC: msg.BCCList})
	if err != nil {
		return fmt.Errorf("failed to encode recipients (message_id=%s): %w", msg.ID, err)
	}

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin message save (message_id=%s): %w", msg.ID, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, saveMessage,
		msg.AccountID,
		msg.ID,
		msg.ConversationID,
		msg.AddressID,
		msg.Subject,
		msg.Unread,
		string(sender),
		string(recipients),
		msg.Time,
		msg.Size,
		msg.NumAttachments,
		msg.ExpirationTime,
		msg.Flags,
		msg.Location,
		msg.Body,
	)
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.SaveMessage").
			Str("account_id", msg.AccountID).
			Str("message_id", msg.ID).
			Msg("failed to execute upsert for message")
		return fmt.Errorf("failed to save message (message_id=%s): %w", msg.ID, err)
	}

	if _, err = tx.ExecContext(ctx, deleteMessageLabels, msg.AccountID, msg.ID); err != nil {
		return fmt.Errorf("failed to clear message labels (message_id=%s): %w", msg.ID, err)
	}
	for _, labelID := range msg.LabelIDs {
		if _, err = tx.ExecContext(ctx, insertMessageLabel, msg.AccountID, msg.ID, labelID); err != nil {
			return fmt.Errorf("failed to save message label (message_id=%s, label_id=%s): %w", msg.ID, labelID, err)
		}
	}

	if _, err = tx.ExecContext(ctx, deleteMessageAttachments, msg.AccountID, msg.ID); err != nil {
		return fmt.Errorf("failed to clear message attachments (message_id=%s): %w", msg.ID, err)
	}
	for _, att := range msg.Attachments {
		_, err = tx.ExecContext(ctx, insertAttachment,
			msg.AccountID, att.ID, msg.ID, att.Name, att.MIMEType, att.Size)
		if err != nil {
			return fmt.Errorf("failed to save attachment (message_id=%s, attachment_id=%s): %w", msg.ID, att.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit message save (message_id=%s): %w", msg.ID, err)
	}

	return nil
}

func (m *messageRepository) FindMessageByID(ctx context.Context, accountID, messageID string) (*models.Message, error) {
	log := logger.FromContext(ctx)

	var (
		msg        models.Message
		sender     string
		recipients string
	)
	row := m.DB.QueryRowContext(ctx, getMessage, accountID, messageID)
	err := row.Scan(
		&msg.ID,
		&msg.ConversationID,
		&msg.AddressID,
		&msg.Subject,
		&msg.Unread,
		&sender,
		&recipients,
		&msg.Time,
		&msg.Size,
		&msg.NumAttachments,
		&msg.ExpirationTime,
		&msg.Flags,
		&msg.Location,
		&msg.Body,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Err(err).
			Str("func", "messageRepository.FindMessageByID").
			Str("account_id", accountID).
			Str("message_id", messageID).
			Msg("failed to scan message row")
		return nil, fmt.Errorf("failed to find message (message_id=%s): %w", messageID, err)
	}

	msg.AccountID = accountID
	if sender != "" {
		if err = json.Unmarshal([]byte(sender), &msg.Sender); err != nil {
			return nil, fmt.Errorf("failed to decode sender (message_id=%s): %w", messageID, err)
		}
	}
	if recipients != "" {
		var lists recipientLists
		if err = json.Unmarshal([]byte(recipients), &lists); err != nil {
			return nil, fmt.Errorf("failed to decode recipients (message_id=%s): %w", messageID, err)
		}
		msg.ToList, msg.CCList, msg.BCCList = lists.To, lists.CC, lists.BCC
	}
	msg.ApplyFlagsMask(msg.Flags)

	if msg.LabelIDs, err = m.messageLabels(ctx, accountID, messageID); err != nil {
		return nil, err
	}
	if msg.Attachments, err = m.messageAttachments(ctx, accountID, messageID); err != nil {
		return nil, err
	}

	return &msg, nil
}

func (m *messageRepository) messageLabels(ctx context.Context, accountID, messageID string) ([]string, error) {
	rows, err := m.DB.QueryContext(ctx, getMessageLabels, accountID, messageID)
	if err != nil {
		return nil, fmt.Errorf("failed to query message labels (message_id=%s): %w", messageID, err)
	}
	defer rows.Close()

	var labelIDs []string
	for rows.Next() {
		var labelID string
		if err = rows.Scan(&labelID); err != nil {
			return nil, fmt.Errorf("failed to scan message label (message_id=%s): %w", messageID, err)
		}
		labelIDs = append(labelIDs, labelID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message labels (message_id=%s): %w", messageID, err)
	}

	return labelIDs, nil
}

func (m *messageRepository) messageAttachments(ctx context.Context, accountID, messageID string) ([]models.Attachment, error) {
	rows, err := m.DB.QueryContext(ctx, getAttachments, accountID, messageID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attachments (message_id=%s): %w", messageID, err)
	}
	defer rows.Close()

	var attachments []models.Attachment
	for rows.Next() {
		att := models.Attachment{MessageID: messageID}
		if err = rows.Scan(&att.ID, &att.Name, &att.MIMEType, &att.Size); err != nil {
			return nil, fmt.Errorf("failed to scan attachment (message_id=%s): %w", messageID, err)
		}
		attachments = append(attachments, att)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attachments (message_id=%s): %w", messageID, err)
	}

	return attachments, nil
}

func (m *messageRepository) DeleteMessage(ctx context.Context, accountID, messageID string) error {
	log := logger.FromContext(ctx)

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin message delete (message_id=%s): %w", messageID, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteMessage, accountID, messageID); err != nil {
		log.Err(err).
			Str("func", "messageRepository.DeleteMessage").
			Str("account_id", accountID).
			Str("message_id", messageID).
			Msg("failed to execute delete for message")
		return fmt.Errorf("failed to delete message (message_id=%s): %w", messageID, err)
	}
	if _, err = tx.ExecContext(ctx, deleteMessageLabels, accountID, messageID); err != nil {
		return fmt.Errorf("failed to delete message labels (message_id=%s): %w", messageID, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit message delete (message_id=%s): %w", messageID, err)
	}

	return nil
}

func (m *messageRepository) DeleteAttachments(ctx context.Context, accountID, messageID string) error {
	log := logger.FromContext(ctx)

	if _, err := m.DB.ExecContext(ctx, deleteMessageAttachments, accountID, messageID); err != nil {
		log.Err(err).
			Str("func", "messageRepository.DeleteAttachments").
			Str("account_id", accountID).
			Str("message_id", messageID).
			Msg("failed to execute delete for attachments")
		return fmt.Errorf("failed to delete attachments (message_id=%s): %w", messageID, err)
	}

	return nil
}

// ClearMailbox drops all mailbox state of one account: messages, their
// label links and attachments, the counters, and the mailbox labels
// themselves. Contact groups survive; they belong to the contact cache.
func (m *messageRepository) ClearMailbox(ctx context.Context, accountID string) error {
	log := logger.FromContext(ctx)

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin mailbox clear (account_id=%s): %w", accountID, err)
	}
	defer tx.Rollback()

	statements := []string{
		clearMessages,
		clearMessageLabels,
		clearAttachments,
		clearMessageCounts,
		clearConvCounts,
	}
	for _, stmt := range statements {
		if _, err = tx.ExecContext(ctx, stmt, accountID); err != nil {
			log.Err(err).
				Str("func", "messageRepository.ClearMailbox").
				Str("account_id", accountID).
				Msg("failed to clear mailbox table")
			return fmt.Errorf("failed to clear mailbox (account_id=%s): %w", accountID, err)
		}
	}
	if _, err = tx.ExecContext(ctx, clearMailboxLabels, accountID, models.LabelTypeMessage); err != nil {
		return fmt.Errorf("failed to clear mailbox labels (account_id=%s): %w", accountID, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit mailbox clear (account_id=%s): %w", accountID, err)
	}

	return nil
}
