// Package config loads, merges and validates VibeChef configuration.
//
// Sources, later overriding earlier non-zero fields:
//  1. built-in defaults
//  2. environment variables
//  3. command-line flags
//  4. JSON config file
//
// GetServerConfig and GetClientConfig return validated role-specific views.
package config
