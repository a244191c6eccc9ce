// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

// Package client implements the sync daemon runtime.
//
// It wires the control API, the execution lanes and the periodic
// synchronization job into a single process lifecycle.
package client
