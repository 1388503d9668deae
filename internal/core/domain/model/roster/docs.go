// Package roster holds the plain-data side of a gift exchange: the group and
// member entries a caller submits, the preconditions a draw requires of them,
// and Roster, a named set of entries kept between sessions.
//
// Entries carry no behavior. The exchange package turns them into Group and
// Member entities for a single draw.
package roster
