// Package exchange provides the entities one draw works on.
//
// The package includes:
//   - Member: a participant with a pick-order rank and a recipient rank
//   - Group: a family or team whose members never give to each other
//   - Pairing: the giver to recipient projection of a finished draw
//
// Entities are built from roster entries for one draw, mutated in place by the
// pick-order and recipient engines, and discarded afterwards. Nothing is shared
// between draws, so concurrent draws need no locking as long as each owns its groups.
//
// Key business rules:
//   - A member's rank is assigned once and never changes
//   - A recipient rank may be cleared and reassigned while an attempt is retried
//   - A member belongs to exactly one group
package exchange
