// Package kernel contains shared value objects used across the domain model:
// entity identifiers (UUID) and geographic coordinates (GeoPoint).
//
// Kernel types are immutable, validated at construction, and carry no
// behavior specific to any single aggregate.
package kernel
