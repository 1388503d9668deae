package mailer

import (
	"context"

	"giftexchange/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the number of messages in flight.
const DefaultConcurrency = 4

// SkippedReason is reported for groups without an address.
const SkippedReason = "No email provided"

type sendFunc func(ctx context.Context, n ports.GroupNotice) (string, error)

// notifyAll sends every notice with at most limit sends in flight. Results keep
// the order of notices. A failed send never stops the others.
func notifyAll(ctx context.Context, notices []ports.GroupNotice, limit int, send sendFunc) []ports.NotificationResult {
	results := make([]ports.NotificationResult, len(notices))

	var g errgroup.Group
	g.SetLimit(max(limit, 1))

	for i, n := range notices {
		results[i] = ports.NotificationResult{Group: n.Group, Email: n.Email}
		if n.Email == "" {
			results[i].Status = ports.NotificationSkipped
			results[i].Message = SkippedReason
			continue
		}

		g.Go(func() error {
			id, err := send(ctx, n)
			if err != nil {
				results[i].Status = ports.NotificationFailed
				results[i].Message = err.Error()
				return nil
			}
			results[i].Status = ports.NotificationSent
			results[i].MessageID = id
			return nil
		})
	}

	_ = g.Wait()
	return results
}
