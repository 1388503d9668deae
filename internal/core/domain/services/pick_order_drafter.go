package services

import (
	"errors"
	"fmt"

	"giftexchange/internal/core/domain/model/exchange"
	"giftexchange/internal/core/domain/model/kernel"
)

// ErrPopulationAlreadyRanked is returned when a draft starts on members that already hold ranks.
var ErrPopulationAlreadyRanked = errors.New("population already has ranks")

// PickOrderDrafter assigns every member a unique sequential rank.
//
// Drafting runs in two phases:
//   - designated groups (picksFirst) each draft (len(groups) - 1) times, in group order;
//     a group that runs out of members simply stops contributing
//   - then full passes over every group in order, each group with unranked members
//     drafting one of them per pass, until nobody is left
//
// Within a group the drafted member is picked at random among the unranked ones.
//
// Example usage:
//
//	drafter := services.NewPickOrderDrafter(services.WithSeedSource(services.FixedSeedSource(42)))
//	highest, err := drafter.Draft(groups)
//	if err != nil {
//	    return err
//	}
//	// highest == exchange.TotalMembers(groups)
type PickOrderDrafter struct {
	cfg engineConfig
}

func NewPickOrderDrafter(opts ...Option) PickOrderDrafter {
	return PickOrderDrafter{cfg: newEngineConfig("pick_order_drafter", opts)}
}

// Draft ranks the whole population and returns the highest rank assigned.
func (d PickOrderDrafter) Draft(groups []*exchange.Group) (int, error) {
	if err := validatePopulation(groups); err != nil {
		return 0, err
	}
	if highest := exchange.HighestRank(groups); highest > 0 {
		return 0, fmt.Errorf("%w: rank %d is taken", ErrPopulationAlreadyRanked, highest)
	}

	s := draftState{sampler: d.cfg.sampler, seed: d.cfg.seedSource(), next: 1}

	rounds := len(groups) - 1
	for _, g := range groups {
		if !g.PicksFirst() {
			continue
		}
		for range rounds {
			picked, err := s.draftOne(g)
			if err != nil {
				return 0, err
			}
			if !picked {
				break
			}
		}
	}

	for {
		progressed := false
		for _, g := range groups {
			picked, err := s.draftOne(g)
			if err != nil {
				return 0, err
			}
			progressed = progressed || picked
		}
		if !progressed {
			break
		}
	}

	highest := s.next - 1
	d.cfg.logger.Debug("pick order drafted", "groups", len(groups), "highest_rank", highest)
	return highest, nil
}

type draftState struct {
	sampler kernel.Sampler
	seed    int64
	next    int
}

// draftOne ranks one random unranked member of g. It reports false when g has none left.
func (s *draftState) draftOne(g *exchange.Group) (bool, error) {
	unranked := g.Unranked()
	if len(unranked) == 0 {
		return false, nil
	}

	idx, err := s.sampler.Sample(0, len(unranked)-1, s.seed, nil)
	if err != nil {
		return false, err
	}
	s.seed++

	if err = unranked[idx].AssignRank(s.next); err != nil {
		return false, err
	}
	s.next++
	return true, nil
}
