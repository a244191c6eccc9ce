// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package models

import "encoding/json"

// Action kinds carried by feed deltas. The numeric values are part of the
// wire contract: message deltas within a batch are applied in descending
// action-kind order, so the values must not be reordered.
type MessageAction int

const (
	ActionDelete MessageAction = iota
	ActionCreate
	ActionUpdate
	ActionUpdateFlags
)

// Message flag bits. The replied/forwarded/encryption fields of a message are
// derived from this bitmask and overwritten together whenever the feed sends
// a new mask.
const (
	FlagInternal   int64 = 1 << 2
	FlagE2E        int64 = 1 << 3
	FlagReplied    int64 = 1 << 5
	FlagRepliedAll int64 = 1 << 6
	FlagForwarded  int64 = 1 << 7
)

// Encryption kinds derived from the flag bitmask.
const (
	EncryptionExternal = 0
	EncryptionInternal = 1
	EncryptionE2E      = 2
)

// Sentinels used by sparse message patches. A patch field holding its
// sentinel means "no change". ExpirationExpired is distinct: an expiration
// equal to 1 marks the message as already expired and forces its deletion
// during the flags merge.
const (
	FlagsUnchanged      int64 = -1
	ExpirationUnchanged int64 = -1
	ExpirationExpired   int64 = 1
)

// Mailbox locations derived from a message's label set.
const (
	LocationInbox   = 0
	LocationDraft   = 1
	LocationSent    = 2
	LocationTrash   = 3
	LocationSpam    = 4
	LocationAllMail = 5
	LocationArchive = 6
	LocationFolder  = 7
	LocationStarred = 10
)

// EmailAddress is a name/address pair as it appears on the wire and in the
// replica.
type EmailAddress struct {
	Name    string `json:"name,omitempty"`
	Address string `json:"address"`
}

// Attachment is the metadata of one message attachment. Bodies are stored
// and decrypted elsewhere.
type Attachment struct {
	ID        string `json:"ID"`
	MessageID string `json:"messageID,omitempty"`
	Name      string `json:"name"`
	MIMEType  string `json:"mimeType"`
	Size      int64  `json:"size"`
}

// Message is one replica row: the locally persisted copy of a remote message.
type Message struct {
	ID             string         `json:"ID"`
	AccountID      string         `json:"-"`
	ConversationID string         `json:"conversationID"`
	AddressID      string         `json:"addressID"`
	Subject        string         `json:"subject"`
	Unread         bool           `json:"unread"`
	Sender         EmailAddress   `json:"sender"`
	ToList         []EmailAddress `json:"toList,omitempty"`
	CCList         []EmailAddress `json:"ccList,omitempty"`
	BCCList        []EmailAddress `json:"bccList,omitempty"`
	Time           int64          `json:"time"`
	Size           int64          `json:"size"`
	NumAttachments int            `json:"numAttachments"`
	ExpirationTime int64          `json:"expirationTime"`
	Flags          int64          `json:"flags"`
	Replied        bool           `json:"isReplied"`
	RepliedAll     bool           `json:"isRepliedAll"`
	Forwarded      bool           `json:"isForwarded"`
	EncryptionType int            `json:"isEncrypted"`
	LabelIDs       []string       `json:"labelIDs,omitempty"`
	Location       int            `json:"location"`
	Body           string         `json:"body,omitempty"`
	Attachments    []Attachment   `json:"attachments,omitempty"`
}

// ApplyFlagsMask overwrites all bitmask-derived fields from flags.
func (m *Message) ApplyFlagsMask(flags int64) {
	m.Flags = flags
	m.Replied = flags&FlagReplied != 0
	m.RepliedAll = flags&FlagRepliedAll != 0
	m.Forwarded = flags&FlagForwarded != 0

	switch {
	case flags&FlagE2E != 0:
		m.EncryptionType = EncryptionE2E
	case flags&FlagInternal != 0:
		m.EncryptionType = EncryptionInternal
	default:
		m.EncryptionType = EncryptionExternal
	}
}

// HasLabel reports whether labelID is in the message's current label set.
func (m *Message) HasLabel(labelID string) bool {
	for _, id := range m.LabelIDs {
		if id == labelID {
			return true
		}
	}
	return false
}

// MessageDelta is one message change record within a feed page.
type MessageDelta struct {
	ID      string        `json:"ID"`
	Action  MessageAction `json:"action"`
	Message *MessagePatch `json:"message,omitempty"`
}

// MessagePatch is the sparse payload of a create or update-flags delta.
// Numeric fields use sentinels (see above), pointer and slice fields use nil,
// both meaning "no change". NewPatch returns a patch with all numeric
// sentinels pre-set so that a zero value is never mistaken for a change.
type MessagePatch struct {
	Subject        *string        `json:"subject,omitempty"`
	Unread         *bool          `json:"unread,omitempty"`
	Sender         *EmailAddress  `json:"sender,omitempty"`
	ToList         []EmailAddress `json:"toList,omitempty"`
	CCList         []EmailAddress `json:"ccList,omitempty"`
	BCCList        []EmailAddress `json:"bccList,omitempty"`
	Time           int64          `json:"time,omitempty"`
	Size           int64          `json:"size,omitempty"`
	NumAttachments int            `json:"numAttachments,omitempty"`
	ExpirationTime int64          `json:"expirationTime,omitempty"`
	Flags          int64          `json:"flags,omitempty"`
	AddressID      *string        `json:"addressID,omitempty"`
	ConversationID *string        `json:"conversationID,omitempty"`

	LabelIDs        []string `json:"labelIDs,omitempty"`
	LabelIDsAdded   []string `json:"labelIDsAdded,omitempty"`
	LabelIDsRemoved []string `json:"labelIDsRemoved,omitempty"`
}

// NewPatch returns an empty patch with all sentinel fields set to
// "no change".
func NewPatch() *MessagePatch {
	return &MessagePatch{
		ExpirationTime: ExpirationUnchanged,
		Flags:          FlagsUnchanged,
	}
}

// UnmarshalJSON decodes a patch on top of the sentinel defaults, so a field
// the feed omits is indistinguishable from an explicit "no change".
func (p *MessagePatch) UnmarshalJSON(data []byte) error {
	type patchAlias MessagePatch
	tmp := patchAlias(*NewPatch())
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*p = MessagePatch(tmp)
	return nil
}
