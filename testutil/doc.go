// Package testutil provides deterministic helpers for labelgo tests: a
// seeded, thread-safe RNG and generators for synthetic categorical columns.
package testutil
