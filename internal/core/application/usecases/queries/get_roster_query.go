package queries

import (
	"errors"

	"giftexchange/internal/core/domain/model/roster"
	"giftexchange/internal/pkg/guard"
)

var ErrGetRosterQueryIsNotConstructed = errors.New(
	"GetRosterQuery must be created via NewGetRosterQuery constructor",
)

// GetRosterQuery loads one saved roster by name. The name is reduced to its
// storage key, so "Family 2024" and "Family_2024.json" find the same roster.
type GetRosterQuery struct {
	name string

	guard guard.ConstructorGuard
}

func NewGetRosterQuery(name string) (GetRosterQuery, error) {
	if roster.Key(name) == "" {
		return GetRosterQuery{}, roster.ErrNameIsRequired
	}
	return GetRosterQuery{name: name, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRosterQuery) Validate() error {
	return q.guard.Validate(ErrGetRosterQueryIsNotConstructed)
}

func (q GetRosterQuery) Name() string {
	return q.name
}
