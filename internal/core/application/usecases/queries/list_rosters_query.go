package queries

import (
	"errors"

	"giftexchange/internal/pkg/guard"
)

var ErrListRostersQueryIsNotConstructed = errors.New(
	"ListRostersQuery must be created via NewListRostersQuery constructor",
)

// ListRostersQuery lists the keys of every saved roster.
type ListRostersQuery struct {
	guard guard.ConstructorGuard
}

func NewListRostersQuery() ListRostersQuery {
	return ListRostersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListRostersQuery) Validate() error {
	return q.guard.Validate(ErrListRostersQueryIsNotConstructed)
}
