// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is the lifecycle contract of the runnable client application.
type Client interface {
	// Run starts the client and blocks until the user quits or a fatal
	// wiring error occurs.
	Run() error
}
