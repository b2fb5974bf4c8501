// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// expense keeper server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgDocumentExists is returned when an insert targets a document id
	// that the collection already holds.
	MsgDocumentExists = "document already exists"

	// MsgDocumentNotFound is returned when a lookup, update, or delete
	// targets a document id the collection does not hold.
	MsgDocumentNotFound = "document was not found"

	// MsgIntegrityCheckFailed is returned when the body signature of a
	// write request does not match the payload.
	MsgIntegrityCheckFailed = "integrity check failed"
)
