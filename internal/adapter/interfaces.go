// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package adapter

import (
	"context"

	"github.com/dkoval/go-mail-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// EventProvider is the remote change-feed surface the sync engine consumes.
//
// GetLatestEventID returns the feed's current head token without any event
// payload. GetEvents returns the batch of changes recorded after eventID
// together with the token to resume from. GetMessage fetches the full message
// body for staging; it returns [ErrMessageNotAvailable] when the server
// reports the message gone or restricted, which the caller treats as a
// drop-one condition rather than a batch failure.
type EventProvider interface {
	GetLatestEventID(ctx context.Context, accountID string) (string, error)
	GetEvents(ctx context.Context, accountID, eventID string) (*models.Event, error)
	GetMessage(ctx context.Context, accountID, messageID string) (*models.Message, error)
}
