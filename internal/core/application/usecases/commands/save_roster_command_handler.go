package commands

import (
	"context"
	"time"

	"giftexchange/internal/core/domain/model/roster"
	"giftexchange/internal/core/ports"
)

// SaveRosterCommandHandler persists rosters. Rosters are saved as drafts: only
// names are checked, the draw preconditions are not.
type SaveRosterCommandHandler struct {
	repo ports.RosterRepository
	now  func() time.Time
}

func NewSaveRosterCommandHandler(repo ports.RosterRepository) SaveRosterCommandHandler {
	return SaveRosterCommandHandler{repo: repo, now: time.Now}
}

// Handle saves the roster and returns the key it was stored under.
func (h SaveRosterCommandHandler) Handle(ctx context.Context, cmd SaveRosterCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	r, err := roster.NewRoster(cmd.Name(), cmd.Groups(), h.now())
	if err != nil {
		return "", err
	}

	if err = h.repo.Save(ctx, r); err != nil {
		return "", err
	}

	return r.Key(), nil
}
