package exchange

import (
	"errors"
	"fmt"
	"strings"

	"giftexchange/internal/pkg/errs"
	"giftexchange/internal/pkg/guard"
)

var (
	ErrMemberIsNotConstructed = errors.New("Member must be created via NewMember constructor")
	ErrMemberNameIsRequired   = errs.NewValueIsRequiredError("member name")
	ErrRankAlreadyAssigned    = errors.New("rank is already assigned")
)

// Member is one participant of a draw.
type Member struct {
	name string

	// rank is the pick-order position, nil until drafted
	rank *int

	// recipientRank is the rank of the member this one gives to, nil until assigned
	recipientRank *int

	guard guard.ConstructorGuard
}

// NewMember creates an unranked member.
func NewMember(name string) (*Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMemberNameIsRequired
	}
	return &Member{name: name, guard: guard.NewConstructorGuard()}, nil
}

func (m *Member) Validate() error {
	if m == nil {
		return ErrMemberIsNotConstructed
	}
	return m.guard.Validate(ErrMemberIsNotConstructed)
}

func (m *Member) Name() string {
	return m.name
}

// Rank returns the pick-order rank and whether one was assigned.
func (m *Member) Rank() (int, bool) {
	if m.rank == nil {
		return 0, false
	}
	return *m.rank, true
}

func (m *Member) IsRanked() bool {
	return m.rank != nil
}

// AssignRank sets the pick-order rank. A rank can be assigned only once.
func (m *Member) AssignRank(rank int) error {
	if m.rank != nil {
		return fmt.Errorf("%w: %s already holds rank %d", ErrRankAlreadyAssigned, m.name, *m.rank)
	}
	if rank <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("rank", fmt.Errorf("%d is not greater than 0", rank))
	}
	m.rank = &rank
	return nil
}

// RecipientRank returns the rank of this member's recipient and whether one was assigned.
func (m *Member) RecipientRank() (int, bool) {
	if m.recipientRank == nil {
		return 0, false
	}
	return *m.recipientRank, true
}

func (m *Member) HasRecipient() bool {
	return m.recipientRank != nil
}

// AssignRecipient records the recipient rank for the current attempt.
func (m *Member) AssignRecipient(rank int) {
	m.recipientRank = &rank
}

// ClearRecipient forgets the recipient so a new attempt can start over.
func (m *Member) ClearRecipient() {
	m.recipientRank = nil
}
