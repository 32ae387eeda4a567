// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/vibechef/internal/service"
	"github.com/MKhiriev/vibechef/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "wrong password", err: service.ErrWrongPassword, want: "Wrong login or password"},
		{name: "login taken", err: fmt.Errorf("register: %w", store.ErrLoginAlreadyExists), want: "This login is already taken"},
		{name: "expired token", err: service.ErrTokenIsExpiredOrInvalid, want: "Your session has expired, log in again"},
		{name: "gone recipe", err: fmt.Errorf("%w: %w", service.ErrWriteFailed, store.ErrRecipeNotFound), want: "This recipe no longer exists"},
		{name: "connection refused", err: errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"), want: msgServerUnavailable},
		{name: "deadline", err: fmt.Errorf("%w: %w", service.ErrWriteFailed, context.DeadlineExceeded), want: msgServerUnavailable},
		{name: "other write failure", err: fmt.Errorf("%w: boom", service.ErrWriteFailed), want: "Could not reach the server, nothing was changed"},
		{name: "unknown", err: errors.New("something odd"), want: "something odd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "a very ...", fitText("a very long recipe title", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "crème ...", fitText("crème brûlée pie", 9))
}
