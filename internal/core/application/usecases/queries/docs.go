// Package queries contains read operations over saved rosters.
// Queries return plain read models so adapters never touch domain aggregates.
package queries
