package queries

import (
	"context"
	"slices"

	"giftexchange/internal/core/ports"
)

type ListRostersQueryHandler struct {
	repo ports.RosterRepository
}

func NewListRostersQueryHandler(repo ports.RosterRepository) ListRostersQueryHandler {
	return ListRostersQueryHandler{repo: repo}
}

// Handle returns the stored keys in ascending order, never nil.
func (h ListRostersQueryHandler) Handle(ctx context.Context, query ListRostersQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	keys, err := h.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(keys))
	copy(out, keys)
	slices.Sort(out)
	return out, nil
}
