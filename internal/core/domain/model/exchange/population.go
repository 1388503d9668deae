package exchange

import "strconv"

// TotalMembers counts members across groups.
func TotalMembers(groups []*Group) int {
	total := 0
	for _, g := range groups {
		total += len(g.Members())
	}
	return total
}

// RankedMembers counts members holding a rank.
func RankedMembers(groups []*Group) int {
	ranked := 0
	for _, g := range groups {
		ranked += len(g.Ranks())
	}
	return ranked
}

// HighestRank returns the largest assigned rank, 0 when nobody is ranked.
func HighestRank(groups []*Group) int {
	highest := 0
	for _, g := range groups {
		for _, r := range g.Ranks() {
			highest = max(highest, r)
		}
	}
	return highest
}

// ClearRecipients resets the recipient of every member in groups.
func ClearRecipients(groups []*Group) {
	for _, g := range groups {
		g.ClearRecipients()
	}
}

// Pairing is one giver to recipient line of a finished draw.
type Pairing struct {
	Group         string
	Giver         string
	GiverRank     int
	Recipient     string
	RecipientRank int
}

// Pairings projects ranks back to names, in group then member order.
// Members without a recipient are skipped; an unknown recipient rank yields
// the placeholder "Member <rank>".
func Pairings(groups []*Group) []Pairing {
	names := rankNames(groups)

	pairings := make([]Pairing, 0, len(names))
	for _, g := range groups {
		pairings = appendPairings(pairings, g, names)
	}
	return pairings
}

// PairingsFor returns the pairings of one group's own members. Recipients are
// resolved across the whole population.
func PairingsFor(groups []*Group, group *Group) []Pairing {
	return appendPairings(nil, group, rankNames(groups))
}

func rankNames(groups []*Group) map[int]string {
	names := make(map[int]string, TotalMembers(groups))
	for _, g := range groups {
		for _, m := range g.Members() {
			if r, ok := m.Rank(); ok {
				names[r] = m.Name()
			}
		}
	}
	return names
}

func appendPairings(pairings []Pairing, g *Group, names map[int]string) []Pairing {
	for _, m := range g.Members() {
		recipientRank, ok := m.RecipientRank()
		if !ok {
			continue
		}
		giverRank, _ := m.Rank()
		recipient, known := names[recipientRank]
		if !known {
			recipient = "Member " + strconv.Itoa(recipientRank)
		}
		pairings = append(pairings, Pairing{
			Group:         g.Name(),
			Giver:         m.Name(),
			GiverRank:     giverRank,
			Recipient:     recipient,
			RecipientRank: recipientRank,
		})
	}
	return pairings
}
