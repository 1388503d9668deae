// Package ports defines the contracts between the drafting core and the
// infrastructure around it: roster storage, notification delivery and metrics.
package ports

import (
	"context"

	"giftexchange/internal/core/domain/model/roster"
)

// RosterRepository stores named group configurations.
type RosterRepository interface {
	// Save persists the roster under its key, replacing any roster saved under the same key.
	Save(ctx context.Context, r *roster.Roster) error

	// Get loads the roster stored under roster.Key(name).
	// Returns an error wrapping errs.ErrObjectNotFound when nothing is stored there.
	Get(ctx context.Context, name string) (*roster.Roster, error)

	// List returns every stored key in ascending order.
	List(ctx context.Context) ([]string, error)
}
