// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-expense-keeper/internal/service"
)

func humanizeRemoteError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, service.ErrRemoteDisabled) {
		return "remote sync is disabled"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "server is unreachable"
	}

	return err.Error()
}
