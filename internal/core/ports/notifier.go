package ports

import (
	"context"

	"giftexchange/internal/core/domain/model/exchange"
)

type NotificationStatus string

const (
	NotificationSent    NotificationStatus = "sent"
	NotificationSkipped NotificationStatus = "skipped"
	NotificationFailed  NotificationStatus = "failed"
)

// GroupNotice is the message owed to one group: the pairings of its own members.
type GroupNotice struct {
	Group    string
	Email    string
	Pairings []exchange.Pairing
}

// NotificationResult reports what happened to one GroupNotice.
// MessageID is set for sent notices, Message explains skipped and failed ones.
type NotificationResult struct {
	Group     string
	Email     string
	Status    NotificationStatus
	MessageID string
	Message   string
}

// Notifier delivers group notices after a successful draw.
//
// Notify never fails as a whole: every notice gets a result, in the order of
// notices, and a notice without email is reported as skipped.
type Notifier interface {
	Notify(ctx context.Context, notices []GroupNotice) []NotificationResult
}
