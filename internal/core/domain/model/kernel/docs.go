// Package kernel provides core domain primitives for the gift exchange.
//
// The package includes:
//   - Sampler: draws an integer from a closed range while skipping a forbidden set.
//     SeededSampler is a pure function of its integer seed, so a draw sequence can be
//     replayed exactly in tests and from the operator CLI.
//   - UUID: identifier value object for stored rosters and draw runs.
package kernel
