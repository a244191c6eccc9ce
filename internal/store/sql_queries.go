// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package store

const (
	getNextEventID = `
		SELECT next_event_id
		FROM sync_state
		WHERE account_id = $1;`

	upsertNextEventID = `
		INSERT INTO sync_state (account_id, next_event_id, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (account_id)
		DO UPDATE SET next_event_id = excluded.next_event_id,
		              updated_at    = excluded.updated_at;`

	deleteNextEventID = `
		DELETE FROM sync_state
		WHERE account_id = $1;`

	saveMessage = `
		INSERT INTO messages (
			account_id,
			message_id,
			conversation_id,
			address_id,
			subject,
			unread,
			sender,
			recipients,
			time,
			size,
			num_attachments,
			expiration_time,
			flags,
			location,
			body
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (account_id, message_id)
		DO UPDATE SET
			conversation_id = excluded.conversation_id,
			address_id      = excluded.address_id,
			subject         = excluded.subject,
			unread          = excluded.unread,
			sender          = excluded.sender,
			recipients      = excluded.recipients,
			time            = excluded.time,
			size            = excluded.size,
			num_attachments = excluded.num_attachments,
			expiration_time = excluded.expiration_time,
			flags           = excluded.flags,
			location        = excluded.location,
			body            = excluded.body;`

	getMessage = `
		SELECT
			message_id,
			conversation_id,
			address_id,
			subject,
			unread,
			sender,
			recipients,
			time,
			size,
			num_attachments,
			expiration_time,
			flags,
			location,
			body
		FROM messages
		WHERE account_id = $1 AND message_id = $2;`

	deleteMessage = `
		DELETE FROM messages
		WHERE account_id = $1 AND message_id = $2;`

	getMessageLabels = `
		SELECT label_id
		FROM message_labels
		WHERE account_id = $1 AND message_id = $2
		ORDER BY label_id;`

	deleteMessageLabels = `
		DELETE FROM message_labels
		WHERE account_id = $1 AND message_id = $2;`

	insertMessageLabel = `
		INSERT OR IGNORE INTO message_labels (account_id, message_id, label_id)
		VALUES ($1, $2, $3);`

	getAttachments = `
		SELECT attachment_id, name, mime_type, size
		FROM attachments
		WHERE account_id = $1 AND message_id = $2
		ORDER BY attachment_id;`

	deleteMessageAttachments = `
		DELETE FROM attachments
		WHERE account_id = $1 AND message_id = $2;`

	insertAttachment = `
		INSERT OR REPLACE INTO attachments (account_id, attachment_id, message_id, name, mime_type, size)
		VALUES ($1, $2, $3, $4, $5, $6);`

	clearMessages      = `DELETE FROM messages WHERE account_id = $1;`
	clearMessageLabels = `DELETE FROM message_labels WHERE account_id = $1;`
	clearAttachments   = `DELETE FROM attachments WHERE account_id = $1;`
	clearMessageCounts = `DELETE FROM message_counts WHERE account_id = $1;`
	clearConvCounts    = `DELETE FROM conversation_counts WHERE account_id = $1;`
	clearMailboxLabels = `DELETE FROM labels WHERE account_id = $1 AND type = $2;`

	saveLabel = `
		INSERT INTO labels (account_id, label_id, name, color, sort_order, type, exclusive)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (account_id, label_id)
		DO UPDATE SET
			name       = excluded.name,
			color      = excluded.color,
			sort_order = excluded.sort_order,
			type       = excluded.type,
			exclusive  = excluded.exclusive;`

	getLabel = `
		SELECT label_id, name, color, sort_order, type, exclusive
		FROM labels
		WHERE account_id = $1 AND label_id = $2;`

	deleteLabel = `
		DELETE FROM labels
		WHERE account_id = $1 AND label_id = $2;`

	deleteContactGroups = `
		DELETE FROM labels
		WHERE account_id = $1 AND type = $2;`

	saveContact = `
		INSERT INTO contacts (account_id, contact_id, name, data)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (account_id, contact_id)
		DO UPDATE SET name = excluded.name, data = excluded.data;`

	getContact = `
		SELECT contact_id, name, data, LENGTH(data)
		FROM contacts
		WHERE account_id = $1 AND contact_id = $2;`

	deleteContact = `
		DELETE FROM contacts
		WHERE account_id = $1 AND contact_id = $2;`

	saveContactEmail = `
		INSERT INTO contact_emails (account_id, contact_email_id, contact_id, email, name)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (account_id, contact_email_id)
		DO UPDATE SET
			contact_id = excluded.contact_id,
			email      = excluded.email,
			name       = excluded.name;`

	deleteContactEmail = `
		DELETE FROM contact_emails
		WHERE account_id = $1 AND contact_email_id = $2;`

	clearContacts      = `DELETE FROM contacts WHERE account_id = $1;`
	clearContactEmails = `DELETE FROM contact_emails WHERE account_id = $1;`

	findPendingSendByMessageID = `
		SELECT id, message_id, offline_id
		FROM pending_sends
		WHERE account_id = $1 AND message_id = $2
		LIMIT 1;`

	findPendingSendByOfflineID = `
		SELECT id, message_id, offline_id
		FROM pending_sends
		WHERE account_id = $1 AND offline_id = $2
		LIMIT 1;`

	saveMailSettings = `
		INSERT INTO mail_settings (account_id, display_name, signature, auto_save_contacts, show_images, used_space)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (account_id)
		DO UPDATE SET
			display_name       = excluded.display_name,
			signature          = excluded.signature,
			auto_save_contacts = excluded.auto_save_contacts,
			show_images        = excluded.show_images,
			used_space         = excluded.used_space;`

	getMailSettings = `
		SELECT display_name, signature, auto_save_contacts, show_images, used_space
		FROM mail_settings
		WHERE account_id = $1;`

	saveUsedSpace = `
		INSERT INTO mail_settings (account_id, used_space)
		VALUES ($1, $2)
		ON CONFLICT (account_id)
		DO UPDATE SET used_space = excluded.used_space;`
)
