// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the expense keeper's client runtime.
//
// It wires the local store, the remote collection adapter, the connectivity
// monitor, the sync engine, and the terminal UI into one process lifecycle:
// everything started by [App.Run] is stopped before it returns.
package client
