// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingGuard_SkipsByMessageID(t *testing.T) {
	pending := newFakePending()
	pending.byMessage["m1"] = true
	guard := newPendingGuard(pending)

	skip, err := guard.ShouldSkip(context.Background(), "acc-1", "m1")
	require.NoError(t, err)
	assert.True(t, skip)
}

func TestPendingGuard_SkipsByOfflineID(t *testing.T) {
	pending := newFakePending()
	pending.byOffline["off-1"] = true
	guard := newPendingGuard(pending)

	skip, err := guard.ShouldSkip(context.Background(), "acc-1", "off-1")
	require.NoError(t, err)
	assert.True(t, skip)
}

func TestPendingGuard_NoPendingWrite(t *testing.T) {
	guard := newPendingGuard(newFakePending())

	skip, err := guard.ShouldSkip(context.Background(), "acc-1", "m1")
	require.NoError(t, err)
	assert.False(t, skip)
}

func TestPendingGuard_PropagatesStoreError(t *testing.T) {
	pending := newFakePending()
	pending.err = errors.New("db gone")
	guard := newPendingGuard(pending)

	_, err := guard.ShouldSkip(context.Background(), "acc-1", "m1")
	assert.ErrorIs(t, err, pending.err)
}
