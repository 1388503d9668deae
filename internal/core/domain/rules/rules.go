package rules

import (
	"errors"
	"fmt"
	"slices"

	"giftexchange/internal/core/domain/model/exchange"
)

var (
	ErrMissingRank         = errors.New("member has no rank")
	ErrMissingRecipient    = errors.New("member has no recipient")
	ErrDuplicateRank       = errors.New("rank is held by more than one member")
	ErrDuplicateRecipient  = errors.New("recipient is assigned to more than one giver")
	ErrNonSequentialRanks  = errors.New("ranks do not form the sequence 1..N")
	ErrSelfAssignment      = errors.New("member is assigned to themselves")
	ErrSameGroupAssignment = errors.New("member is assigned to someone in their own group")
	ErrUnknownRecipient    = errors.New("recipient rank does not belong to any member")
)

// ValidatePickOrder checks that every member holds a distinct rank and that the
// ranks are exactly 1..N.
func ValidatePickOrder(groups []*exchange.Group) error {
	if err := ValidateRanksComplete(groups); err != nil {
		return err
	}
	if err := ValidateRanksUnique(groups); err != nil {
		return err
	}
	return ValidateRanksSequential(groups)
}

// ValidateAssignment checks a finished recipient draft: a valid pick order, a
// recipient for everyone, no recipient twice and no recipient inside the giver's group.
func ValidateAssignment(groups []*exchange.Group) error {
	if err := ValidatePickOrder(groups); err != nil {
		return err
	}
	if err := ValidateRecipientsComplete(groups); err != nil {
		return err
	}
	if err := ValidateRecipientsUnique(groups); err != nil {
		return err
	}
	return ValidateExclusions(groups)
}

func ValidateRanksComplete(groups []*exchange.Group) error {
	for _, g := range groups {
		for _, m := range g.Members() {
			if !m.IsRanked() {
				return fmt.Errorf("%w: %s (%s)", ErrMissingRank, m.Name(), g.Name())
			}
		}
	}
	return nil
}

func ValidateRanksUnique(groups []*exchange.Group) error {
	holders := make(map[int]string, exchange.TotalMembers(groups))
	for _, g := range groups {
		for _, m := range g.Members() {
			r, ok := m.Rank()
			if !ok {
				continue
			}
			if other, taken := holders[r]; taken {
				return fmt.Errorf("%w: rank %d held by %s and %s", ErrDuplicateRank, r, other, m.Name())
			}
			holders[r] = m.Name()
		}
	}
	return nil
}

// ValidateRanksSequential compares the set of ranks with {1..N}, N being the member count.
func ValidateRanksSequential(groups []*exchange.Group) error {
	n := exchange.TotalMembers(groups)

	ranks := make([]int, 0, n)
	for _, g := range groups {
		ranks = append(ranks, g.Ranks()...)
	}
	slices.Sort(ranks)
	ranks = slices.Compact(ranks)

	if len(ranks) != n {
		return fmt.Errorf("%w: %d distinct ranks for %d members", ErrNonSequentialRanks, len(ranks), n)
	}
	for i, r := range ranks {
		if r != i+1 {
			return fmt.Errorf("%w: expected %d, found %d", ErrNonSequentialRanks, i+1, r)
		}
	}
	return nil
}

func ValidateRecipientsComplete(groups []*exchange.Group) error {
	for _, g := range groups {
		for _, m := range g.Members() {
			if !m.HasRecipient() {
				return fmt.Errorf("%w: %s (%s)", ErrMissingRecipient, m.Name(), g.Name())
			}
		}
	}
	return nil
}

func ValidateRecipientsUnique(groups []*exchange.Group) error {
	givers := make(map[int]string, exchange.TotalMembers(groups))
	for _, g := range groups {
		for _, m := range g.Members() {
			r, ok := m.RecipientRank()
			if !ok {
				continue
			}
			if other, taken := givers[r]; taken {
				return fmt.Errorf("%w: rank %d drawn by %s and %s", ErrDuplicateRecipient, r, other, m.Name())
			}
			givers[r] = m.Name()
		}
	}
	return nil
}

// ValidateExclusions rejects self draws, draws inside the giver's own group and
// recipient ranks nobody holds.
func ValidateExclusions(groups []*exchange.Group) error {
	ranked := make(map[int]struct{}, exchange.TotalMembers(groups))
	for _, g := range groups {
		for _, r := range g.Ranks() {
			ranked[r] = struct{}{}
		}
	}

	for _, g := range groups {
		for _, m := range g.Members() {
			recipient, ok := m.RecipientRank()
			if !ok {
				continue
			}
			if own, hasRank := m.Rank(); hasRank && own == recipient {
				return fmt.Errorf("%w: %s", ErrSelfAssignment, m.Name())
			}
			if g.HasRank(recipient) {
				return fmt.Errorf("%w: %s drew rank %d in %s", ErrSameGroupAssignment, m.Name(), recipient, g.Name())
			}
			if _, known := ranked[recipient]; !known {
				return fmt.Errorf("%w: %s drew rank %d", ErrUnknownRecipient, m.Name(), recipient)
			}
		}
	}
	return nil
}
