package commands

import (
	"context"
	"fmt"
	"log/slog"

	"giftexchange/internal/core/domain/model/exchange"
	"giftexchange/internal/core/domain/model/kernel"
	"giftexchange/internal/core/domain/model/roster"
	"giftexchange/internal/core/domain/rules"
	"giftexchange/internal/core/domain/services"
	"giftexchange/internal/core/ports"
)

// ErrPartialPickOrder is returned when only some members arrive with a rank.
var ErrPartialPickOrder = fmt.Errorf("%w: either every member or no member may carry a rank", roster.ErrInvalidInput)

// MatchRecipientsResult is a finished draw. Notifications is nil unless emails were requested.
type MatchRecipientsResult struct {
	RunID         kernel.UUID
	Message       string
	TotalMembers  int
	Attempts      int
	Groups        []roster.GroupEntry
	Pairings      []exchange.Pairing
	Notifications []ports.NotificationResult
}

// MatchRecipientsCommandHandler runs a full draw: input validation, the pick
// order when none was supplied, the recipient draft and optional notification.
//
// Example:
//
//	handler := NewMatchRecipientsCommandHandler(drafter, assigner, notifier, metrics, logger)
//	cmd, _ := NewMatchRecipientsCommand(groups, true)
//
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, roster.ErrInvalidInput):
//	    // fix the groups
//	case errors.Is(err, services.ErrAssignmentFailed):
//	    // matching failed, try again
//	case err != nil:
//	    return err
//	}
//	fmt.Println(result.Message)
type MatchRecipientsCommandHandler struct {
	drafter  services.PickOrderDrafter
	assigner services.RecipientAssigner
	notifier ports.Notifier
	metrics  ports.DrawMetrics
	logger   *slog.Logger
}

func NewMatchRecipientsCommandHandler(
	drafter services.PickOrderDrafter,
	assigner services.RecipientAssigner,
	notifier ports.Notifier,
	metrics ports.DrawMetrics,
	logger *slog.Logger,
) MatchRecipientsCommandHandler {
	return MatchRecipientsCommandHandler{
		drafter:  drafter,
		assigner: assigner,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger.With("component", "match_recipients_handler"),
	}
}

// Handle runs the draw. Nothing but the error is returned when any stage fails;
// notification outcomes never fail the draw.
func (h MatchRecipientsCommandHandler) Handle(ctx context.Context, cmd MatchRecipientsCommand) (MatchRecipientsResult, error) {
	if err := cmd.Validate(); err != nil {
		return MatchRecipientsResult{}, err
	}

	runID := kernel.NewUUID()
	logger := h.logger.With("run_id", runID.String())

	groups, err := h.prepare(cmd.Groups())
	if err != nil {
		return MatchRecipientsResult{}, err
	}

	attempts, err := h.assigner.Assign(groups)
	h.metrics.ObserveAssignmentAttempts(attempts)
	if err != nil {
		h.metrics.ObserveDraw(ports.EngineRecipients, ports.OutcomeFailed)
		logger.ErrorContext(ctx, "Recipient assignment failed", "attempts", attempts, "error", err)
		return MatchRecipientsResult{}, err
	}
	h.metrics.ObserveDraw(ports.EngineRecipients, ports.OutcomeSuccess)

	total := exchange.TotalMembers(groups)
	result := MatchRecipientsResult{
		RunID:        runID,
		Message:      fmt.Sprintf("Successfully matched %d members!", total),
		TotalMembers: total,
		Attempts:     attempts,
		Groups:       exchange.Entries(groups),
		Pairings:     exchange.Pairings(groups),
	}
	logger.InfoContext(ctx, "Recipients matched", "members", total, "attempts", attempts)

	if cmd.SendEmails() {
		result.Notifications = h.notify(ctx, logger, groups)
	}

	return result, nil
}

// prepare validates the entries and returns groups with a complete pick order.
func (h MatchRecipientsCommandHandler) prepare(entries []roster.GroupEntry) ([]*exchange.Group, error) {
	if err := roster.ValidateForDraw(entries); err != nil {
		h.metrics.ObserveDraw(ports.EngineRecipients, ports.OutcomeInvalidInput)
		return nil, err
	}

	groups, err := exchange.BuildGroups(entries, exchange.KeepRanks)
	if err != nil {
		h.metrics.ObserveDraw(ports.EngineRecipients, ports.OutcomeInvalidInput)
		return nil, err
	}

	ranked := exchange.RankedMembers(groups)
	switch {
	case ranked == 0:
		if _, err = h.drafter.Draft(groups); err != nil {
			h.metrics.ObserveDraw(ports.EnginePickOrder, ports.OutcomeFailed)
			return nil, err
		}
		h.metrics.ObserveDraw(ports.EnginePickOrder, ports.OutcomeSuccess)
	case ranked < exchange.TotalMembers(groups):
		h.metrics.ObserveDraw(ports.EngineRecipients, ports.OutcomeInvalidInput)
		return nil, fmt.Errorf("%w: %d of %d members are ranked", ErrPartialPickOrder, ranked, exchange.TotalMembers(groups))
	}

	if err = rules.ValidatePickOrder(groups); err != nil {
		h.metrics.ObserveDraw(ports.EngineRecipients, ports.OutcomeInvalidInput)
		return nil, fmt.Errorf("%w: %w", roster.ErrInvalidInput, err)
	}
	return groups, nil
}

func (h MatchRecipientsCommandHandler) notify(ctx context.Context, logger *slog.Logger, groups []*exchange.Group) []ports.NotificationResult {
	notices := make([]ports.GroupNotice, 0, len(groups))
	for _, g := range groups {
		notices = append(notices, ports.GroupNotice{
			Group:    g.Name(),
			Email:    g.Email(),
			Pairings: exchange.PairingsFor(groups, g),
		})
	}

	results := h.notifier.Notify(ctx, notices)
	for _, r := range results {
		h.metrics.ObserveNotification(r.Status)
		if r.Status == ports.NotificationFailed {
			logger.WarnContext(ctx, "Group notification failed", "group", r.Group, "error", r.Message)
		}
	}
	return results
}
