// Package http implements the REST and WebSocket transport of the VibeChef
// server.
//
// Recipes are read and written over REST under /api/recipes; the history
// push channel is a WebSocket at /api/recipes/ws. Authentication, request
// tracing, access logging and request metrics are handled here before a
// request reaches the service layer.
package http
