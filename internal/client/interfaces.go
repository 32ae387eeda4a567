// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/vibechef/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end driven by App.
type UI interface {
	// AuthFlow asks the user to log in or register. It returns
	// tui.ErrUserQuit when the user leaves instead.
	AuthFlow(ctx context.Context) (models.Session, error)

	// MainLoop runs until the user quits or logs out. updates delivers
	// every history emission for session's user.
	MainLoop(ctx context.Context, session models.Session, updates <-chan []models.Recipe) (logout bool, err error)
}
