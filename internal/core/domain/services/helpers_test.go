package services_test

import (
	"fmt"
	"slices"
	"testing"

	"giftexchange/internal/core/domain/model/exchange"
	"giftexchange/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

// newPopulation builds unranked groups "Family A", "Family B", ... with members
// "A1", "A2", ... The groups at the designated indexes pick first.
func newPopulation(t *testing.T, sizes []int, designated ...int) []*exchange.Group {
	t.Helper()

	groups := make([]*exchange.Group, 0, len(sizes))
	for gi, size := range sizes {
		letter := string(rune('A' + gi))
		members := make([]*exchange.Member, 0, size)
		for mi := range size {
			m, err := exchange.NewMember(fmt.Sprintf("%s%d", letter, mi+1))
			require.NoError(t, err)
			members = append(members, m)
		}
		g, err := exchange.NewGroup("Family "+letter, "", slices.Contains(designated, gi), members)
		require.NoError(t, err)
		groups = append(groups, g)
	}
	return groups
}

func allRanks(groups []*exchange.Group) []int {
	var ranks []int
	for _, g := range groups {
		ranks = append(ranks, g.Ranks()...)
	}
	slices.Sort(ranks)
	return ranks
}

func allRecipients(groups []*exchange.Group) []int {
	var recipients []int
	for _, g := range groups {
		for _, m := range g.Members() {
			if r, ok := m.RecipientRank(); ok {
				recipients = append(recipients, r)
			}
		}
	}
	slices.Sort(recipients)
	return recipients
}

func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// lowestSampler always returns the smallest candidate.
type lowestSampler struct{}

func (lowestSampler) Sample(min, max int, _ int64, excluded map[int]struct{}) (int, error) {
	for v := min; v <= max; v++ {
		if _, skip := excluded[v]; !skip {
			return v, nil
		}
	}
	return 0, &kernel.ExhaustedRangeError{Min: min, Max: max, Excluded: len(excluded)}
}

// exhaustedSampler fails every draw and counts the calls.
type exhaustedSampler struct {
	calls int
}

func (s *exhaustedSampler) Sample(min, max int, _ int64, excluded map[int]struct{}) (int, error) {
	s.calls++
	return 0, &kernel.ExhaustedRangeError{Min: min, Max: max, Excluded: len(excluded)}
}

// recordingSampler delegates to the production sampler and remembers every seed.
type recordingSampler struct {
	seeds []int64
}

func (s *recordingSampler) Sample(min, max int, seed int64, excluded map[int]struct{}) (int, error) {
	s.seeds = append(s.seeds, seed)
	return kernel.NewSeededSampler().Sample(min, max, seed, excluded)
}
