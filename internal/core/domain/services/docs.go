// Package services provides the drafting engines of the gift exchange. They
// work on a population of exchange.Group entities and mutate it in place.
//
// Key Features:
//   - PickOrderDrafter gives every member a unique rank 1..N
//   - RecipientAssigner gives every member a recipient rank outside their own group
//   - Seeded, replayable draws through a kernel.Sampler and a SeedSource
//   - Bounded retries with a full reset between attempts
//
// Both engines are synchronous and keep no state between calls. Concurrent
// draws are safe as long as each one owns its groups.
//
// # Pick Order
//
// Designated (picksFirst) groups draft first. Each of them drafts len(groups)-1
// ranks in a row, one group after the other. Then all groups take turns, one
// rank per group per pass, until every member is ranked. Within a group the
// member is picked at random among those still unranked.
//
//	drafter := NewPickOrderDrafter()
//	highest, err := drafter.Draft(groups)
//	if errors.Is(err, ErrPopulationAlreadyRanked) {
//	    // a rank was already set; drafts start from a clean population
//	}
//
// # Recipients
//
// Each attempt seeds its sampler with base + attempt*7919, lets designated
// groups draw first and then scans every group, one draw per group per round
// for its lowest ranked member without a recipient. A draw excludes ranks
// already claimed and the ranks of the giver's own group. The finished attempt
// is checked with rules.ValidateAssignment.
//
//	assigner := NewRecipientAssigner(WithMaxAttempts(10))
//	attempts, err := assigner.Assign(groups)
//	var failed *AssignmentFailedError
//	if errors.As(err, &failed) {
//	    // every recipient is cleared; failed.Cause ended the last attempt
//	}
//
// # Configuration
//
// Options apply to both engines:
//
//	WithMaxAttempts(n)           // recipient attempts, DefaultMaxAttempts when unset
//	WithSeedSource(FixedSeedSource(42))
//	WithSampler(kernel.NewSeededSampler())
//	WithLogger(logger)           // per draw debug records
//
// # Error Handling
//
//   - Malformed populations (no groups, an empty group) fail at once with errs types
//   - kernel.ErrExhaustedRange and recipient rule violations abandon the attempt and retry
//   - *AssignmentFailedError unwraps to ErrAssignmentFailed and to the last cause
package services
