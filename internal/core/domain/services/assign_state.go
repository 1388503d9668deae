package services

import (
	"log/slog"

	"giftexchange/internal/core/domain/model/exchange"
	"giftexchange/internal/core/domain/model/kernel"
)

type assignState struct {
	sampler kernel.Sampler
	seed    int64
	total   int
	claimed map[int]struct{}
	logger  *slog.Logger
}

// drawRounds scans groups in order, one draw per group per scan, until no
// eligible giver is left. With designatedOnly only picksFirst groups draw.
func (s *assignState) drawRounds(groups []*exchange.Group, designatedOnly bool) error {
	for {
		drew := false
		for _, g := range groups {
			if designatedOnly && !g.PicksFirst() {
				continue
			}
			giver := g.NextGiver()
			if giver == nil {
				continue
			}
			if err := s.draw(g, giver); err != nil {
				return err
			}
			drew = true
		}
		if !drew {
			return nil
		}
	}
}

func (s *assignState) draw(g *exchange.Group, giver *exchange.Member) error {
	excluded := make(map[int]struct{}, len(s.claimed)+len(g.Members()))
	for r := range s.claimed {
		excluded[r] = struct{}{}
	}
	for _, r := range g.Ranks() {
		excluded[r] = struct{}{}
	}

	recipient, err := s.sampler.Sample(1, s.total, s.seed, excluded)
	if err != nil {
		return err
	}
	s.seed++

	giver.AssignRecipient(recipient)
	s.claimed[recipient] = struct{}{}

	giverRank, _ := giver.Rank()
	s.logger.Debug("recipient drawn", "giver_rank", giverRank, "excluded", len(excluded), "recipient_rank", recipient)
	return nil
}
