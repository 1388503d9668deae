package exchange

import (
	"fmt"

	"giftexchange/internal/core/domain/model/roster"
)

// RankPolicy tells BuildGroups what to do with ranks carried by the entries.
type RankPolicy int

const (
	// IgnoreRanks builds unranked members; the pick order is drafted afresh.
	IgnoreRanks RankPolicy = iota
	// KeepRanks copies supplied ranks onto the members.
	KeepRanks
)

// BuildGroups turns validated entries into Group entities, keeping entry order.
func BuildGroups(entries []roster.GroupEntry, policy RankPolicy) ([]*Group, error) {
	groups := make([]*Group, 0, len(entries))

	for _, e := range entries {
		members := make([]*Member, 0, len(e.Members))
		for _, me := range e.Members {
			m, err := NewMember(me.Name)
			if err != nil {
				return nil, fmt.Errorf("group %q: %w", e.Name, err)
			}
			if policy == KeepRanks && me.Rank != nil {
				if err = m.AssignRank(*me.Rank); err != nil {
					return nil, fmt.Errorf("group %q: %w", e.Name, err)
				}
			}
			members = append(members, m)
		}

		g, err := NewGroup(e.Name, e.Email, e.PicksFirst, members)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	return groups, nil
}

// Entries converts groups back to roster entries, carrying assigned ranks.
func Entries(groups []*Group) []roster.GroupEntry {
	out := make([]roster.GroupEntry, 0, len(groups))
	for _, g := range groups {
		e := roster.GroupEntry{Name: g.Name(), Email: g.Email(), PicksFirst: g.PicksFirst()}
		for _, m := range g.Members() {
			me := roster.MemberEntry{Name: m.Name()}
			if r, ok := m.Rank(); ok {
				me.Rank = &r
			}
			e.Members = append(e.Members, me)
		}
		out = append(out, e)
	}
	return out
}
