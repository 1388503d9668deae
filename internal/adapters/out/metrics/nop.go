// Package metrics implements ports.DrawMetrics. Prometheus backs the service;
// Nop is used by the CLI and in tests.
package metrics

import "giftexchange/internal/core/ports"

// Nop discards every observation.
type Nop struct{}

var _ ports.DrawMetrics = Nop{}

func NewNop() Nop {
	return Nop{}
}

func (Nop) ObserveDraw(_, _ string) {}

func (Nop) ObserveAssignmentAttempts(_ int) {}

func (Nop) ObserveNotification(_ ports.NotificationStatus) {}
