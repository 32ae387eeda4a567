// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/vibechef/internal/service"
	"github.com/MKhiriev/vibechef/internal/store"
)

const msgServerUnavailable = "No network or the server is unavailable"

var userMessages = []struct {
	target  error
	message string
}{
	{service.ErrWrongPassword, "Wrong login or password"},
	{store.ErrNoUserWasFound, "Wrong login or password"},
	{store.ErrLoginAlreadyExists, "This login is already taken"},
	{service.ErrTokenIsExpiredOrInvalid, "Your session has expired, log in again"},
	{service.ErrNotLoggedIn, "Your session has expired, log in again"},
	{store.ErrRecipeNotFound, "This recipe no longer exists"},
	{service.ErrValidationFailed, "Check the entered data"},
}

// humanizeError turns a service error into a line for the error overlay.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	for _, m := range userMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	if errors.Is(err, service.ErrWriteFailed) {
		return "Could not reach the server, nothing was changed"
	}

	return err.Error()
}
