package filestore

import (
	"time"

	"giftexchange/internal/core/domain/model/roster"
)

type rosterFileDTO struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	SavedAt time.Time      `json:"savedAt"`
	Groups  []groupFileDTO `json:"groups"`
}

// Files written by older versions use index and isPickAtLeastOnePerGroup.
type groupFileDTO struct {
	Name        string          `json:"name"`
	Email       string          `json:"email,omitempty"`
	PicksFirst  bool            `json:"picksFirst"`
	LegacyFirst bool            `json:"isPickAtLeastOnePerGroup,omitempty"`
	Members     []memberFileDTO `json:"members"`
}

type memberFileDTO struct {
	Name        string `json:"name"`
	Rank        *int   `json:"rank"`
	LegacyIndex *int   `json:"index,omitempty"`
}

func groupsToDTO(groups []roster.GroupEntry) []groupFileDTO {
	out := make([]groupFileDTO, 0, len(groups))
	for _, g := range groups {
		dto := groupFileDTO{Name: g.Name, Email: g.Email, PicksFirst: g.PicksFirst, Members: make([]memberFileDTO, 0, len(g.Members))}
		for _, m := range g.Members {
			dto.Members = append(dto.Members, memberFileDTO{Name: m.Name, Rank: m.Rank})
		}
		out = append(out, dto)
	}
	return out
}

func groupsFromDTO(groups []groupFileDTO) []roster.GroupEntry {
	out := make([]roster.GroupEntry, 0, len(groups))
	for _, g := range groups {
		entry := roster.GroupEntry{Name: g.Name, Email: g.Email, PicksFirst: g.PicksFirst || g.LegacyFirst}
		for _, m := range g.Members {
			rank := m.Rank
			if rank == nil {
				rank = m.LegacyIndex
			}
			entry.Members = append(entry.Members, roster.MemberEntry{Name: m.Name, Rank: rank})
		}
		out = append(out, entry)
	}
	return out
}
