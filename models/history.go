// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HistorySnapshot is one item of a remote history subscription.
//
// Exactly one of Recipes or Err is meaningful: a snapshot with a non-nil Err
// means the subscription failed and no further snapshots will follow.
type HistorySnapshot struct {
	Recipes []Recipe
	Err     error
}

// HistoryFrame is the wire form of a HistorySnapshot pushed over WebSocket
// and gRPC streams.
type HistoryFrame struct {
	Recipes []Recipe `json:"recipes"`
	Error   string   `json:"error,omitempty"`
}

// Frame converts s to its wire form. A failed snapshot carries message in
// place of the underlying error, which stays on the server.
func (s HistorySnapshot) Frame(message string) HistoryFrame {
	if s.Err != nil {
		return HistoryFrame{Error: message}
	}
	if s.Recipes == nil {
		return HistoryFrame{Recipes: []Recipe{}}
	}
	return HistoryFrame{Recipes: s.Recipes}
}
