package services

import (
	"fmt"

	"giftexchange/internal/core/domain/model/exchange"
	"giftexchange/internal/pkg/errs"
)

// validatePopulation rejects an empty population, zero value groups and empty groups.
func validatePopulation(groups []*exchange.Group) error {
	if len(groups) == 0 {
		return errs.NewValueIsRequiredError("groups")
	}
	for _, g := range groups {
		if err := g.Validate(); err != nil {
			return err
		}
		if len(g.Members()) == 0 {
			return errs.NewValueIsInvalidErrorWithCause("groups", fmt.Errorf("group %q has no members", g.Name()))
		}
	}
	return nil
}
