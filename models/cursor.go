// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package models

// CursorState is the three-state position marker of an account in the change
// feed. Unset means the account was never bootstrapped, Locked means a
// bootstrap started but its baseline cursor has not been fetched yet, Valid
// means EventID is a resumable position.
type CursorState int

const (
	CursorUnset CursorState = iota
	CursorLocked
	CursorValid
)

func (s CursorState) String() string {
	switch s {
	case CursorUnset:
		return "unset"
	case CursorLocked:
		return "locked"
	case CursorValid:
		return "valid"
	}
	return "invalid"
}

// Cursor is an account's persisted feed position. EventID is meaningful only
// when State is CursorValid.
type Cursor struct {
	State   CursorState
	EventID string
}

// ValidCursor wraps a token in a valid cursor.
func ValidCursor(eventID string) Cursor {
	return Cursor{State: CursorValid, EventID: eventID}
}
