// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrMissingBodyHash is returned by the integrity middleware when a
	// write request arrives without the body signature header.
	ErrMissingBodyHash = errors.New("missing body hash header")

	// ErrBodyHashMismatch is returned when the body signature header does
	// not match the HMAC the server computes over the decoded payload.
	ErrBodyHashMismatch = errors.New("body hash mismatch")
)
