// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the remote
// expense document collection.
//
// The primary abstraction is [RemoteCollection], which decouples the sync
// engine from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRemoteCollection]) built on resty with per-call
// timeouts and bounded retries.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-expense-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_collection_mock.go -package=mock

// RemoteCollection defines transport-agnostic access to the remote expense
// document collection. Implementations are responsible for serialisation,
// authentication header management, request body signing, and mapping
// transport-level errors to the sentinel values defined in this package.
//
// When no connection string is configured every method returns
// [ErrRemoteDisabled].
type RemoteCollection interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if no token has been set yet.
	Token() string

	// Insert stores a new document in the collection. Returns
	// [ErrConflict] (wrapped) when the id already exists remotely.
	Insert(ctx context.Context, document models.ExpenseDocument) error

	// UpdateByID replaces the remote document with the given id. Returns
	// [ErrNotFound] (wrapped) when the collection has no such id.
	UpdateByID(ctx context.Context, id string, document models.ExpenseDocument) error

	// RemoveByID deletes the remote document with the given id. Returns
	// [ErrNotFound] (wrapped) when the collection has no such id.
	RemoveByID(ctx context.Context, id string) error

	// FindByID fetches one document. The boolean reports whether the
	// document exists; a missing id is not an error.
	FindByID(ctx context.Context, id string) (models.ExpenseDocument, bool, error)

	// FindAll fetches the entire collection.
	FindAll(ctx context.Context) ([]models.ExpenseDocument, error)

	// Ping checks remote reachability without touching any data.
	Ping(ctx context.Context) error
}
