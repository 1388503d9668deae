package queries

import (
	"context"
	"time"

	"giftexchange/internal/core/domain/model/roster"
	"giftexchange/internal/core/ports"
)

// GetRosterQueryResponse is the read model of a saved roster.
type GetRosterQueryResponse struct {
	ID      string
	Name    string
	Key     string
	SavedAt time.Time
	Groups  []roster.GroupEntry
}

// GetRosterQueryHandler reads rosters through the configured repository.
//
// Example:
//
//	query, _ := NewGetRosterQuery("family-2024")
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // nothing saved under that name
//	}
type GetRosterQueryHandler struct {
	repo ports.RosterRepository
}

func NewGetRosterQueryHandler(repo ports.RosterRepository) GetRosterQueryHandler {
	return GetRosterQueryHandler{repo: repo}
}

func (h GetRosterQueryHandler) Handle(ctx context.Context, query GetRosterQuery) (GetRosterQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRosterQueryResponse{}, err
	}

	r, err := h.repo.Get(ctx, query.Name())
	if err != nil {
		return GetRosterQueryResponse{}, err
	}

	return GetRosterQueryResponse{
		ID:      r.ID().String(),
		Name:    r.Name(),
		Key:     r.Key(),
		SavedAt: r.SavedAt(),
		Groups:  r.Groups(),
	}, nil
}
