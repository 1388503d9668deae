package commands

import (
	"context"

	"giftexchange/internal/core/domain/model/exchange"
	"giftexchange/internal/core/domain/model/roster"
	"giftexchange/internal/core/domain/services"
	"giftexchange/internal/core/ports"
)

// DraftPickOrderResult carries the submitted groups with their new ranks.
type DraftPickOrderResult struct {
	Groups       []roster.GroupEntry
	TotalMembers int
}

// DraftPickOrderCommandHandler runs only the pick-order engine. Callers use it to
// show an order that can still be edited before the recipients are drawn.
type DraftPickOrderCommandHandler struct {
	drafter services.PickOrderDrafter
	metrics ports.DrawMetrics
}

func NewDraftPickOrderCommandHandler(drafter services.PickOrderDrafter, metrics ports.DrawMetrics) DraftPickOrderCommandHandler {
	return DraftPickOrderCommandHandler{drafter: drafter, metrics: metrics}
}

// Handle validates the draw preconditions, builds unranked groups and drafts them.
func (h DraftPickOrderCommandHandler) Handle(ctx context.Context, cmd DraftPickOrderCommand) (DraftPickOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return DraftPickOrderResult{}, err
	}

	entries := cmd.Groups()
	if err := roster.ValidateForDraw(entries); err != nil {
		h.metrics.ObserveDraw(ports.EnginePickOrder, ports.OutcomeInvalidInput)
		return DraftPickOrderResult{}, err
	}

	groups, err := exchange.BuildGroups(entries, exchange.IgnoreRanks)
	if err != nil {
		h.metrics.ObserveDraw(ports.EnginePickOrder, ports.OutcomeInvalidInput)
		return DraftPickOrderResult{}, err
	}

	highest, err := h.drafter.Draft(groups)
	if err != nil {
		h.metrics.ObserveDraw(ports.EnginePickOrder, ports.OutcomeFailed)
		return DraftPickOrderResult{}, err
	}

	h.metrics.ObserveDraw(ports.EnginePickOrder, ports.OutcomeSuccess)
	return DraftPickOrderResult{Groups: exchange.Entries(groups), TotalMembers: highest}, nil
}
