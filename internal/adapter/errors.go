// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the server rejects the bearer token.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrMessageNotAvailable is returned by GetMessage when the server says
	// the message no longer exists or cannot be served. Callers drop the
	// single message instead of failing the batch.
	ErrMessageNotAvailable = errors.New("message not available")
)
