package exchange_test

import (
	"testing"

	"giftexchange/internal/core/domain/model/exchange"
	"giftexchange/internal/core/domain/model/roster"
	"giftexchange/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedGroup(t *testing.T, name string, ranks map[string]int, order ...string) *exchange.Group {
	t.Helper()
	members := make([]*exchange.Member, 0, len(order))
	for _, n := range order {
		m, err := exchange.NewMember(n)
		require.NoError(t, err)
		if r, ok := ranks[n]; ok {
			require.NoError(t, m.AssignRank(r))
		}
		members = append(members, m)
	}
	g, err := exchange.NewGroup(name, "", false, members)
	require.NoError(t, err)
	return g
}

func TestNewGroup(t *testing.T) {
	t.Run("should create a group", func(t *testing.T) {
		alice, _ := exchange.NewMember("Alice")

		g, err := exchange.NewGroup("Family A", " a@example.com ", true, []*exchange.Member{alice})

		require.NoError(t, err)
		require.NoError(t, g.Validate())
		assert.Equal(t, "Family A", g.Name())
		assert.Equal(t, "a@example.com", g.Email())
		assert.True(t, g.HasEmail())
		assert.True(t, g.PicksFirst())
		assert.Len(t, g.Members(), 1)
	})

	t.Run("should require a name", func(t *testing.T) {
		_, err := exchange.NewGroup("", "", false, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero value members", func(t *testing.T) {
		_, err := exchange.NewGroup("Family A", "", false, []*exchange.Member{{}})

		require.ErrorIs(t, err, exchange.ErrMemberIsNotConstructed)
	})

	t.Run("should reject zero value groups", func(t *testing.T) {
		var g exchange.Group

		require.ErrorIs(t, g.Validate(), exchange.ErrGroupIsNotConstructed)
	})
}

func TestGroup_Queries(t *testing.T) {
	g := rankedGroup(t, "Family A", map[string]int{"Alice": 5, "Bob": 2}, "Alice", "Bob", "Carol")

	t.Run("should list ranks and unranked members", func(t *testing.T) {
		assert.ElementsMatch(t, []int{5, 2}, g.Ranks())
		assert.True(t, g.HasRank(5))
		assert.False(t, g.HasRank(3))
		require.Len(t, g.Unranked(), 1)
		assert.Equal(t, "Carol", g.Unranked()[0].Name())
	})

	t.Run("should return the lowest ranked member without recipient", func(t *testing.T) {
		next := g.NextGiver()
		require.NotNil(t, next)
		assert.Equal(t, "Bob", next.Name())

		next.AssignRecipient(9)
		assert.Equal(t, "Alice", g.NextGiver().Name())

		g.Members()[0].AssignRecipient(1)
		assert.Nil(t, g.NextGiver(), "unranked Carol is never a giver")

		g.ClearRecipients()
		assert.Equal(t, "Bob", g.NextGiver().Name())
	})
}

func TestBuildGroups(t *testing.T) {
	three := 3
	entries := []roster.GroupEntry{
		{Name: "Family A", Email: "a@example.com", PicksFirst: true, Members: []roster.MemberEntry{{Name: "Alice", Rank: &three}}},
		{Name: "Family B", Members: []roster.MemberEntry{{Name: "Bob"}}},
	}

	t.Run("should keep supplied ranks", func(t *testing.T) {
		groups, err := exchange.BuildGroups(entries, exchange.KeepRanks)

		require.NoError(t, err)
		require.Len(t, groups, 2)
		r, ok := groups[0].Members()[0].Rank()
		assert.True(t, ok)
		assert.Equal(t, 3, r)
		assert.True(t, groups[0].PicksFirst())
		assert.False(t, groups[1].Members()[0].IsRanked())
	})

	t.Run("should drop supplied ranks", func(t *testing.T) {
		groups, err := exchange.BuildGroups(entries, exchange.IgnoreRanks)

		require.NoError(t, err)
		assert.False(t, groups[0].Members()[0].IsRanked())
	})

	t.Run("should round trip through Entries", func(t *testing.T) {
		groups, err := exchange.BuildGroups(entries, exchange.KeepRanks)
		require.NoError(t, err)

		assert.Equal(t, entries, exchange.Entries(groups))
	})

	t.Run("should fail on an unnamed member", func(t *testing.T) {
		_, err := exchange.BuildGroups([]roster.GroupEntry{{Name: "X", Members: []roster.MemberEntry{{}}}}, exchange.IgnoreRanks)

		require.ErrorIs(t, err, exchange.ErrMemberNameIsRequired)
	})
}

func TestPairings(t *testing.T) {
	a := rankedGroup(t, "Family A", map[string]int{"Alice": 1, "Bob": 2}, "Alice", "Bob")
	b := rankedGroup(t, "Family B", map[string]int{"Carol": 3, "Dan": 4}, "Carol", "Dan")
	groups := []*exchange.Group{a, b}

	a.Members()[0].AssignRecipient(3)
	a.Members()[1].AssignRecipient(4)
	b.Members()[0].AssignRecipient(1)
	b.Members()[1].AssignRecipient(99)

	pairings := exchange.Pairings(groups)

	require.Len(t, pairings, 4)
	assert.Equal(t, exchange.Pairing{Group: "Family A", Giver: "Alice", GiverRank: 1, Recipient: "Carol", RecipientRank: 3}, pairings[0])
	assert.Equal(t, "Dan", pairings[1].Recipient)
	assert.Equal(t, "Alice", pairings[2].Recipient)
	assert.Equal(t, "Member 99", pairings[3].Recipient)

	forB := exchange.PairingsFor(groups, b)
	require.Len(t, forB, 2)
	assert.Equal(t, "Carol", forB[0].Giver)

	assert.Equal(t, 4, exchange.HighestRank(groups))
	assert.Equal(t, 4, exchange.TotalMembers(groups))
}

func TestPairingsFor(t *testing.T) {
	t.Run("should only list the group's own members when names collide", func(t *testing.T) {
		first := rankedGroup(t, "Smith", map[string]int{"Ann": 1, "Ben": 2}, "Ann", "Ben")
		second := rankedGroup(t, "Smith", map[string]int{"Cid": 3, "Dee": 4}, "Cid", "Dee")
		groups := []*exchange.Group{first, second}

		first.Members()[0].AssignRecipient(3)
		first.Members()[1].AssignRecipient(4)
		second.Members()[0].AssignRecipient(1)
		second.Members()[1].AssignRecipient(2)

		forSecond := exchange.PairingsFor(groups, second)

		require.Len(t, forSecond, 2)
		assert.Equal(t, "Cid", forSecond[0].Giver)
		assert.Equal(t, "Ann", forSecond[0].Recipient)
		assert.Equal(t, "Dee", forSecond[1].Giver)
		assert.Equal(t, "Ben", forSecond[1].Recipient)
	})
}
