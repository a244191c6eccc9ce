// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package store

import (
	"context"
	"fmt"

	"github.com/dkoval/go-mail-sync/internal/config"
	"github.com/dkoval/go-mail-sync/internal/logger"
)

// ClientStorages bundles every repository of the local replica. The sync
// engine receives the bundle and pulls the contracts it needs.
type ClientStorages struct {
	Events   EventRepository
	Messages MessageRepository
	Labels   LabelRepository
	Contacts ContactRepository
	Counters CounterRepository
	Pending  PendingRepository
	Settings SettingsRepository

	db *DB
}

// NewClientStorages opens the replica database, migrates its schema and
// constructs all repositories on top of it.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Debug().Msg("creating client storages")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect replica database: %w", err)
	}

	return &ClientStorages{
		Events:   NewEventRepository(db, log),
		Messages: NewMessageRepository(db, log),
		Labels:   NewLabelRepository(db, log),
		Contacts: NewContactRepository(db, log),
		Counters: NewCounterRepository(db, log),
		Pending:  NewPendingRepository(db, log),
		Settings: NewSettingsRepository(db, log),
		db:       db,
	}, nil
}

// Close releases the underlying database handle.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
