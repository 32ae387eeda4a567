// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores or creates the session, keeps the history subscription
// running in the background for the logged in user and hands its
// emissions to the terminal UI.
package client
