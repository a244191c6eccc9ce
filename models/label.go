// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package models

// Label kinds. Contact groups share the label table with mailbox labels and
// folders; they are told apart by Type.
const (
	LabelTypeMessage      = 1
	LabelTypeContactGroup = 2
)

type Label struct {
	ID        string `json:"ID"`
	AccountID string `json:"-"`
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	Order     int    `json:"order"`
	Type      int    `json:"type"`
	Exclusive bool   `json:"exclusive"`
}

// LabelDelta is one label change record within a feed page. Create and
// update both carry the full label; delete carries only the id.
type LabelDelta struct {
	ID     string        `json:"ID"`
	Action MessageAction `json:"action"`
	Label  *Label        `json:"label,omitempty"`
}

// SystemLocation maps a system label id to its mailbox location. The second
// return is false for custom labels, whose location is resolved through the
// label repository.
func SystemLocation(labelID string) (int, bool) {
	switch labelID {
	case "0":
		return LocationInbox, true
	case "1":
		return LocationDraft, true
	case "2":
		return LocationSent, true
	case "3":
		return LocationTrash, true
	case "4":
		return LocationSpam, true
	case "5":
		return LocationAllMail, true
	case "6":
		return LocationArchive, true
	case "10":
		return LocationStarred, true
	}
	return 0, false
}
