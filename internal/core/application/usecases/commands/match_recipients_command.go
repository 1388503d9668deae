package commands

import (
	"errors"

	"giftexchange/internal/core/domain/model/roster"
	"giftexchange/internal/pkg/errs"
	"giftexchange/internal/pkg/guard"
)

var ErrMatchRecipientsCommandIsNotConstructed = errors.New(
	"MatchRecipientsCommand must be created via NewMatchRecipientsCommand constructor",
)

// MatchRecipientsCommand asks for a full draw. Entries may carry a complete pick
// order to reuse or no ranks at all.
type MatchRecipientsCommand struct {
	groups     []roster.GroupEntry
	sendEmails bool

	guard guard.ConstructorGuard
}

func NewMatchRecipientsCommand(groups []roster.GroupEntry, sendEmails bool) (MatchRecipientsCommand, error) {
	if len(groups) == 0 {
		return MatchRecipientsCommand{}, errs.NewValueIsRequiredError("groups")
	}

	return MatchRecipientsCommand{
		groups:     roster.Clone(groups),
		sendEmails: sendEmails,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c MatchRecipientsCommand) Validate() error {
	return c.guard.Validate(ErrMatchRecipientsCommandIsNotConstructed)
}

func (c MatchRecipientsCommand) Groups() []roster.GroupEntry {
	return roster.Clone(c.groups)
}

func (c MatchRecipientsCommand) SendEmails() bool {
	return c.sendEmails
}
