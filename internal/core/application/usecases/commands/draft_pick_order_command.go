package commands

import (
	"errors"

	"giftexchange/internal/core/domain/model/roster"
	"giftexchange/internal/pkg/errs"
	"giftexchange/internal/pkg/guard"
)

var ErrDraftPickOrderCommandIsNotConstructed = errors.New(
	"DraftPickOrderCommand must be created via NewDraftPickOrderCommand constructor",
)

// DraftPickOrderCommand asks for a fresh pick order over the submitted groups.
// Ranks carried by the entries are ignored.
//
// Example:
//
//	cmd, err := NewDraftPickOrderCommand(groups)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type DraftPickOrderCommand struct {
	groups []roster.GroupEntry

	guard guard.ConstructorGuard
}

func NewDraftPickOrderCommand(groups []roster.GroupEntry) (DraftPickOrderCommand, error) {
	if len(groups) == 0 {
		return DraftPickOrderCommand{}, errs.NewValueIsRequiredError("groups")
	}

	return DraftPickOrderCommand{
		groups: roster.Clone(groups),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c DraftPickOrderCommand) Validate() error {
	return c.guard.Validate(ErrDraftPickOrderCommandIsNotConstructed)
}

func (c DraftPickOrderCommand) Groups() []roster.GroupEntry {
	return roster.Clone(c.groups)
}
