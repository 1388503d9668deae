// Package rosterrepo persists saved rosters in three tables: rosters,
// roster_groups and roster_members. Groups and members keep their submitted
// order through a position column.
package rosterrepo

import (
	"time"

	"giftexchange/internal/core/domain/model/kernel"
	"giftexchange/internal/core/domain/model/roster"

	"github.com/google/uuid"
)

// RosterDTO is one row of rosters. Key is unique; saving under an existing key
// replaces the row and, through the cascade, its groups and members.
type RosterDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Key     string     `gorm:"column:roster_key;type:varchar(255);not null;uniqueIndex"`
	Name    string     `gorm:"type:varchar(255);not null"`
	SavedAt time.Time  `gorm:"not null"`
	Groups  []GroupDTO `gorm:"foreignKey:RosterID;constraint:OnDelete:CASCADE"`
}

func (RosterDTO) TableName() string {
	return "rosters"
}

type GroupDTO struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey"`
	RosterID   uuid.UUID   `gorm:"type:uuid;not null;index"`
	Position   int         `gorm:"column:seq;type:int;not null"`
	Name       string      `gorm:"type:varchar(255);not null"`
	Email      string      `gorm:"type:varchar(255)"`
	PicksFirst bool        `gorm:"not null;default:false"`
	Members    []MemberDTO `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

func (GroupDTO) TableName() string {
	return "roster_groups"
}

type MemberDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	GroupID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Position int       `gorm:"column:seq;type:int;not null"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Rank     *int      `gorm:"type:int"`
}

func (MemberDTO) TableName() string {
	return "roster_members"
}

// Models lists the DTOs for AutoMigrate, parents first.
func Models() []any {
	return []any{&RosterDTO{}, &GroupDTO{}, &MemberDTO{}}
}

func fromDomain(r *roster.Roster) RosterDTO {
	rosterID := r.ID().Google()
	groups := r.Groups()

	dto := RosterDTO{
		ID:      rosterID,
		Key:     r.Key(),
		Name:    r.Name(),
		SavedAt: r.SavedAt(),
		Groups:  make([]GroupDTO, 0, len(groups)),
	}

	for gi, g := range groups {
		groupID := uuid.New()
		members := make([]MemberDTO, 0, len(g.Members))
		for mi, m := range g.Members {
			members = append(members, MemberDTO{
				ID:       uuid.New(),
				GroupID:  groupID,
				Position: mi,
				Name:     m.Name,
				Rank:     m.Rank,
			})
		}

		dto.Groups = append(dto.Groups, GroupDTO{
			ID:         groupID,
			RosterID:   rosterID,
			Position:   gi,
			Name:       g.Name,
			Email:      g.Email,
			PicksFirst: g.PicksFirst,
			Members:    members,
		})
	}

	return dto
}

// toDomain expects groups and members already sorted by position.
func toDomain(dto RosterDTO) (*roster.Roster, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	groups := make([]roster.GroupEntry, 0, len(dto.Groups))
	for _, g := range dto.Groups {
		entry := roster.GroupEntry{Name: g.Name, Email: g.Email, PicksFirst: g.PicksFirst}
		for _, m := range g.Members {
			entry.Members = append(entry.Members, roster.MemberEntry{Name: m.Name, Rank: m.Rank})
		}
		groups = append(groups, entry)
	}

	return roster.RestoreRoster(id, dto.Name, groups, dto.SavedAt)
}
