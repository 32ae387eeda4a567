// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the VibeChef server
// transports and the client error mapping.
//
// The server writes a Msg* constant as the body of every error response
// (HTTP) or as the status message (gRPC); the client maps it back to a
// typed error.
package app

const (
	// MsgInvalidDataProvided is returned when a request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the login/password pair does
	// not match a user.
	MsgInvalidLoginPassword = "invalid login/password"

	MsgInternalServerError = "internal server error"

	// MsgMissingAuthorization is returned when a protected route is called
	// without a bearer token.
	MsgMissingAuthorization = "missing authorization"

	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when an authenticated route finds no
	// user ID in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	MsgEmptyRecipeID = "recipe id is empty"

	// MsgRecipeNotFound is returned when the recipe does not exist or is
	// owned by another user.
	MsgRecipeNotFound = "recipe not found"

	// MsgUnknownField is returned by partial updates of a field that cannot
	// be changed.
	MsgUnknownField = "unknown recipe field"

	MsgRegistrationFailed = "registration failed"
	MsgLoginFailed        = "login failed"

	// MsgLoginAlreadyExists is returned when the requested login is taken.
	MsgLoginAlreadyExists = "login already exists"

	// MsgWatchFailed is pushed as the error frame of a failed history
	// subscription.
	MsgWatchFailed = "history subscription failed"
)

// User-facing messages of the generation screen.
const (
	MsgGenerationTimeout = "The chef is taking too long to answer (timeout). Check your connection."
	MsgGenerationFailed  = "The chef could not cook anything this time. Try again."
	MsgEmptyIngredients  = "Add some ingredients or a photo first."
)
