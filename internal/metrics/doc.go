// Package metrics holds the Prometheus collectors of the VibeChef server.
//
// Collectors are registered on a private registry so that several
// instances can coexist in tests; Handler serves that registry.
package metrics
