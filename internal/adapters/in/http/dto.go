package http

import (
	"time"

	"giftexchange/internal/core/domain/model/exchange"
	"giftexchange/internal/core/domain/model/roster"
	"giftexchange/internal/core/ports"
)

// Member is one participant on the wire. Index and IsPickAtLeastOnePerGroup
// are the older field names and are still accepted on input.
type Member struct {
	Name  string `json:"name"`
	Rank  *int   `json:"rank"`
	Index *int   `json:"index,omitempty"`
}

type Group struct {
	Name                     string   `json:"name"`
	Email                    string   `json:"email,omitempty"`
	PicksFirst               bool     `json:"picksFirst"`
	IsPickAtLeastOnePerGroup *bool    `json:"isPickAtLeastOnePerGroup,omitempty"`
	Members                  []Member `json:"members"`
}

type GroupsRequest struct {
	Groups []Group `json:"groups"`
}

type MatchRequest struct {
	Groups     []Group `json:"groups"`
	SendEmails bool    `json:"sendEmails"`
}

type SaveRequest struct {
	Filename string  `json:"filename"`
	Groups   []Group `json:"groups"`
}

type DraftResponse struct {
	Success      bool    `json:"success"`
	TotalMembers int     `json:"totalMembers"`
	Groups       []Group `json:"groups"`
}

type Assignment struct {
	Group        string `json:"group"`
	Giver        string `json:"giver"`
	GiverRank    int    `json:"giverRank"`
	Receiver     string `json:"receiver"`
	ReceiverRank int    `json:"receiverRank"`
}

type Notification struct {
	Group     string `json:"group"`
	Email     string `json:"email,omitempty"`
	Status    string `json:"status"`
	MessageID string `json:"messageId,omitempty"`
	Message   string `json:"message,omitempty"`
}

type MatchResponse struct {
	Success       bool           `json:"success"`
	Message       string         `json:"message"`
	RunID         string         `json:"runId"`
	Attempts      int            `json:"attempts"`
	Members       []Assignment   `json:"members"`
	Groups        []Group        `json:"groups"`
	Notifications []Notification `json:"notifications,omitempty"`
}

type SaveResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Filename string `json:"filename"`
}

type LoadResponse struct {
	Success bool      `json:"success"`
	Name    string    `json:"name"`
	SavedAt time.Time `json:"savedAt"`
	Groups  []Group   `json:"groups"`
}

type ListResponse struct {
	Success bool     `json:"success"`
	Files   []string `json:"files"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func toEntries(groups []Group) []roster.GroupEntry {
	out := make([]roster.GroupEntry, 0, len(groups))
	for _, g := range groups {
		entry := roster.GroupEntry{Name: g.Name, Email: g.Email, PicksFirst: g.PicksFirst}
		if g.IsPickAtLeastOnePerGroup != nil {
			entry.PicksFirst = entry.PicksFirst || *g.IsPickAtLeastOnePerGroup
		}
		for _, m := range g.Members {
			rank := m.Rank
			if rank == nil {
				rank = m.Index
			}
			entry.Members = append(entry.Members, roster.MemberEntry{Name: m.Name, Rank: rank})
		}
		out = append(out, entry)
	}
	return out
}

func fromEntries(entries []roster.GroupEntry) []Group {
	out := make([]Group, 0, len(entries))
	for _, e := range entries {
		g := Group{Name: e.Name, Email: e.Email, PicksFirst: e.PicksFirst, Members: make([]Member, 0, len(e.Members))}
		for _, m := range e.Members {
			g.Members = append(g.Members, Member{Name: m.Name, Rank: m.Rank})
		}
		out = append(out, g)
	}
	return out
}

func fromPairings(pairings []exchange.Pairing) []Assignment {
	out := make([]Assignment, 0, len(pairings))
	for _, p := range pairings {
		out = append(out, Assignment{
			Group:        p.Group,
			Giver:        p.Giver,
			GiverRank:    p.GiverRank,
			Receiver:     p.Recipient,
			ReceiverRank: p.RecipientRank,
		})
	}
	return out
}

func fromNotifications(results []ports.NotificationResult) []Notification {
	if results == nil {
		return nil
	}
	out := make([]Notification, 0, len(results))
	for _, r := range results {
		out = append(out, Notification{
			Group:     r.Group,
			Email:     r.Email,
			Status:    string(r.Status),
			MessageID: r.MessageID,
			Message:   r.Message,
		})
	}
	return out
}
