package adapter

import "errors"

// ErrRemoteDisabled is returned by every collection call when no remote
// connection string is configured. It marks a configuration state, not a
// transport failure: local-only operation continues and the sync engine
// surfaces the condition through the status stream.
var ErrRemoteDisabled = errors.New("remote collection is disabled")

// Sentinel errors mapped from HTTP response status codes by mapHTTPError.
// Callers match them with [errors.Is] and never inspect status codes
// themselves.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
