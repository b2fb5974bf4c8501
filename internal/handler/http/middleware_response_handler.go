// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseData is a value-type snapshot of a completed HTTP response, used
// to pass status, size, and raw body between components that inspect the
// response after it has been written without holding the live
// [responseWriter].
type responseData struct {
	status int

	size int

	// body holds the raw bytes of the most recent Write call only, not
	// the concatenation of all writes.
	body []byte
}

// responseWriter decorates [http.ResponseWriter] to capture the status code
// and the number of body bytes for access logging, without buffering the
// whole response.
//
// WriteHeader is forwarded to the underlying writer exactly once; later
// calls are silently ignored, mirroring the behaviour documented by the
// [http.ResponseWriter] interface.
type responseWriter struct {
	http.ResponseWriter

	// status is recorded on the first WriteHeader call (explicit or the
	// implicit one a bare Write triggers). Zero until then.
	status int

	wroteHeader bool

	// size is the running total of bytes written across all Write calls.
	size int

	// body holds the slice passed to the most recent Write call. It is
	// overwritten on each call, not appended.
	body []byte
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write forwards b to the underlying writer, implicitly writing a 200
// header first when none was sent, like the standard library does.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	w.body = b
	return n, err
}
