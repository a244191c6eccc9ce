// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessagePatch_UnmarshalPreservesSentinels(t *testing.T) {
	var patch MessagePatch
	require.NoError(t, json.Unmarshal([]byte(`{"subject":"hello"}`), &patch))

	require.NotNil(t, patch.Subject)
	assert.Equal(t, "hello", *patch.Subject)
	// Omitted numeric fields must read as "no change", not zero.
	assert.Equal(t, FlagsUnchanged, patch.Flags)
	assert.Equal(t, ExpirationUnchanged, patch.ExpirationTime)
	assert.Nil(t, patch.Unread)
	assert.Nil(t, patch.LabelIDs)
}

func TestMessagePatch_UnmarshalExplicitValues(t *testing.T) {
	var patch MessagePatch
	require.NoError(t, json.Unmarshal([]byte(`{"flags":0,"expirationTime":1,"unread":false}`), &patch))

	assert.Equal(t, int64(0), patch.Flags)
	assert.Equal(t, ExpirationExpired, patch.ExpirationTime)
	require.NotNil(t, patch.Unread)
	assert.False(t, *patch.Unread)
}

func TestApplyFlagsMask(t *testing.T) {
	var msg Message

	msg.ApplyFlagsMask(FlagReplied | FlagInternal)
	assert.True(t, msg.Replied)
	assert.False(t, msg.Forwarded)
	assert.Equal(t, EncryptionInternal, msg.EncryptionType)

	// E2E wins over internal when both bits are set.
	msg.ApplyFlagsMask(FlagE2E | FlagInternal | FlagForwarded)
	assert.True(t, msg.Forwarded)
	assert.False(t, msg.Replied, "derived fields are overwritten, not accumulated")
	assert.Equal(t, EncryptionE2E, msg.EncryptionType)

	msg.ApplyFlagsMask(0)
	assert.Equal(t, EncryptionExternal, msg.EncryptionType)
}

func TestSystemLocation(t *testing.T) {
	loc, ok := SystemLocation("0")
	assert.True(t, ok)
	assert.Equal(t, LocationInbox, loc)

	loc, ok = SystemLocation("10")
	assert.True(t, ok)
	assert.Equal(t, LocationStarred, loc)

	_, ok = SystemLocation("custom-label")
	assert.False(t, ok)
}
