// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides client transports to the VibeChef recipe server.
//
// The primary abstraction is [RemoteStore], which decouples the service layer
// from the underlying protocol. Two implementations are shipped: HTTP/REST
// with a WebSocket push channel ([NewHTTPRemoteStore]) and gRPC with a JSON
// codec ([NewGRPCRemoteStore]). [NewRemoteStore] picks one from config.
//
// Transport failures are mapped to the sentinel values in errors.go so that
// callers can use [errors.Is] regardless of protocol (e.g. [ErrConflict] for
// 409 / AlreadyExists, [ErrUnauthorized] for 401 / Unauthenticated).
package adapter

import (
	"context"

	"github.com/MKhiriev/vibechef/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore is the authoritative, per-user recipe store as seen by the
// client. Methods taking userID scope the operation to that user; the server
// derives the user from the bearer token, so implementations may ignore it.
type RemoteStore interface {
	// SetToken stores the bearer token attached to all authenticated calls.
	SetToken(token string)

	// Token returns the current bearer token or "".
	Token() string

	// Register creates an account and stores the issued token. The returned
	// user carries the server-assigned UserID.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates and stores the issued token.
	Login(ctx context.Context, user models.User) (models.User, error)

	// Subscribe opens a push channel for the user's history. The first
	// snapshot is the full list; a new one follows every change. A failure
	// after the channel opened is delivered as a snapshot with Err set,
	// after which the channel is closed. Cancelling ctx releases the
	// registration and closes the channel without an error snapshot.
	Subscribe(ctx context.Context, userID int64) (<-chan models.HistorySnapshot, error)

	// Upsert stores the recipe and returns its id, assigned by the server
	// when recipe.ID is empty.
	Upsert(ctx context.Context, userID int64, recipe models.Recipe) (string, error)

	Delete(ctx context.Context, userID int64, id string) error

	// SetField updates one whitelisted field (see models.FieldIsFavorite).
	SetField(ctx context.Context, userID int64, id, field string, value any) error
}
