package exchange

import (
	"errors"
	"strings"

	"giftexchange/internal/pkg/errs"
	"giftexchange/internal/pkg/guard"
)

var (
	ErrGroupIsNotConstructed = errors.New("Group must be created via NewGroup constructor")
	ErrGroupNameIsRequired   = errs.NewValueIsRequiredError("group name")
)

// Group is a family or team. Its members never give to one another.
//
// A group flagged picksFirst drafts before the rest of the population in both
// the pick-order and the recipient stage.
type Group struct {
	name       string
	email      string
	picksFirst bool
	members    []*Member
	guard      guard.ConstructorGuard
}

// NewGroup creates a group owning members. Email may be empty; notification skips such groups.
// An empty member list is allowed here and rejected by the engines.
func NewGroup(name, email string, picksFirst bool, members []*Member) (*Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrGroupNameIsRequired
	}

	for _, m := range members {
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}

	owned := make([]*Member, len(members))
	copy(owned, members)

	return &Group{
		name:       name,
		email:      strings.TrimSpace(email),
		picksFirst: picksFirst,
		members:    owned,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (g *Group) Validate() error {
	if g == nil {
		return ErrGroupIsNotConstructed
	}
	return g.guard.Validate(ErrGroupIsNotConstructed)
}

func (g *Group) Name() string {
	return g.name
}

func (g *Group) Email() string {
	return g.email
}

func (g *Group) HasEmail() bool {
	return g.email != ""
}

func (g *Group) PicksFirst() bool {
	return g.picksFirst
}

// Members returns the members in their original order.
func (g *Group) Members() []*Member {
	return g.members
}

// Ranks returns the assigned ranks of this group's members.
func (g *Group) Ranks() []int {
	ranks := make([]int, 0, len(g.members))
	for _, m := range g.members {
		if r, ok := m.Rank(); ok {
			ranks = append(ranks, r)
		}
	}
	return ranks
}

// HasRank reports whether any member of the group holds rank.
func (g *Group) HasRank(rank int) bool {
	for _, m := range g.members {
		if r, ok := m.Rank(); ok && r == rank {
			return true
		}
	}
	return false
}

// Unranked returns members still waiting for a pick-order rank, in original order.
func (g *Group) Unranked() []*Member {
	var out []*Member
	for _, m := range g.members {
		if !m.IsRanked() {
			out = append(out, m)
		}
	}
	return out
}

// NextGiver returns the lowest ranked member without a recipient, or nil when
// every member has one. Unranked members are ignored.
func (g *Group) NextGiver() *Member {
	var next *Member
	nextRank := 0
	for _, m := range g.members {
		r, ok := m.Rank()
		if !ok || m.HasRecipient() {
			continue
		}
		if next == nil || r < nextRank {
			next, nextRank = m, r
		}
	}
	return next
}

// ClearRecipients resets every member's recipient.
func (g *Group) ClearRecipients() {
	for _, m := range g.members {
		m.ClearRecipient()
	}
}
