package commands

import (
	"errors"
	"strings"

	"giftexchange/internal/core/domain/model/roster"
	"giftexchange/internal/pkg/guard"
)

var ErrSaveRosterCommandIsNotConstructed = errors.New(
	"SaveRosterCommand must be created via NewSaveRosterCommand constructor",
)

// SaveRosterCommand stores a named group configuration. Saving under a name that
// maps to an existing key overwrites it.
//
// Example:
//
//	cmd, err := NewSaveRosterCommand("family-2024", groups)
//	if err != nil {
//	    return err
//	}
//	key, err := handler.Handle(ctx, cmd)
type SaveRosterCommand struct {
	name   string
	groups []roster.GroupEntry

	guard guard.ConstructorGuard
}

func NewSaveRosterCommand(name string, groups []roster.GroupEntry) (SaveRosterCommand, error) {
	if roster.Key(name) == "" {
		return SaveRosterCommand{}, roster.ErrNameIsRequired
	}

	return SaveRosterCommand{
		name:   strings.TrimSpace(name),
		groups: roster.Clone(groups),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c SaveRosterCommand) Validate() error {
	return c.guard.Validate(ErrSaveRosterCommandIsNotConstructed)
}

func (c SaveRosterCommand) Name() string {
	return c.name
}

func (c SaveRosterCommand) Groups() []roster.GroupEntry {
	return roster.Clone(c.groups)
}
