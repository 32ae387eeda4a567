// Package server runs the VibeChef server transports.
//
// It owns the HTTP and gRPC listeners and the background workers, starts
// them together and shuts them down gracefully on SIGTERM, SIGINT or
// SIGQUIT.
package server
