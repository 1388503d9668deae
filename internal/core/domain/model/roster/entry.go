package roster

import (
	"errors"
	"fmt"
	"strings"

	"giftexchange/internal/pkg/errs"
)

// Draw preconditions.
const (
	MinGroups          = 3
	MinMembersTotal    = 10
	MinMembersPerGroup = 3
)

// ErrInvalidInput classifies every precondition failure below.
var ErrInvalidInput = errors.New("invalid group input")

var (
	ErrTooFewGroups        = fmt.Errorf("%w: at least %d groups are required for gift exchange", ErrInvalidInput, MinGroups)
	ErrTooFewMembers       = fmt.Errorf("%w: total members must be at least %d", ErrInvalidInput, MinMembersTotal)
	ErrTooFewGroupMembers  = fmt.Errorf("%w: every group needs at least %d members", ErrInvalidInput, MinMembersPerGroup)
	ErrDuplicateGroupName  = fmt.Errorf("%w: duplicate group name", ErrInvalidInput)
	ErrDuplicateMemberName = fmt.Errorf("%w: duplicate member name", ErrInvalidInput)
	ErrRankIsInvalid       = fmt.Errorf("%w: rank must be positive", ErrInvalidInput)
)

// MemberEntry is one participant as submitted. Rank is nil until a pick order was drafted.
type MemberEntry struct {
	Name string
	Rank *int
}

// GroupEntry is one family or team as submitted.
type GroupEntry struct {
	Name       string
	Email      string
	PicksFirst bool
	Members    []MemberEntry
}

// TotalMembers counts members across all entries.
func TotalMembers(groups []GroupEntry) int {
	total := 0
	for _, g := range groups {
		total += len(g.Members)
	}
	return total
}

// ValidateStructure checks that every group and member is named and that
// supplied ranks are positive. It is the only check applied to saved rosters.
func ValidateStructure(groups []GroupEntry) error {
	for i, g := range groups {
		if strings.TrimSpace(g.Name) == "" {
			return errs.NewValueIsRequiredErrorWithCause("group name", fmt.Errorf("%w: group #%d has no name", ErrInvalidInput, i+1))
		}
		for _, m := range g.Members {
			if strings.TrimSpace(m.Name) == "" {
				return errs.NewValueIsRequiredErrorWithCause("member name",
					fmt.Errorf("%w: group %q has a member without a name", ErrInvalidInput, g.Name))
			}
			if m.Rank != nil && *m.Rank <= 0 {
				return fmt.Errorf("%w: member %q has rank %d", ErrRankIsInvalid, m.Name, *m.Rank)
			}
		}
	}
	return nil
}

// ValidateForDraw enforces every precondition a draw needs: at least MinGroups
// groups, MinMembersPerGroup members per group, MinMembersTotal members overall,
// unique group names and member names unique across the whole population.
func ValidateForDraw(groups []GroupEntry) error {
	if len(groups) < MinGroups {
		return fmt.Errorf("%w, got %d", ErrTooFewGroups, len(groups))
	}

	if err := ValidateStructure(groups); err != nil {
		return err
	}

	groupNames := make(map[string]struct{}, len(groups))
	memberNames := make(map[string]struct{}, TotalMembers(groups))

	for _, g := range groups {
		// entities store trimmed names, so compare those
		name := strings.TrimSpace(g.Name)
		if _, dup := groupNames[name]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateGroupName, name)
		}
		groupNames[name] = struct{}{}

		if len(g.Members) < MinMembersPerGroup {
			return fmt.Errorf("%w: group %q has %d", ErrTooFewGroupMembers, g.Name, len(g.Members))
		}

		for _, m := range g.Members {
			member := strings.TrimSpace(m.Name)
			if _, dup := memberNames[member]; dup {
				return fmt.Errorf("%w: %s", ErrDuplicateMemberName, member)
			}
			memberNames[member] = struct{}{}
		}
	}

	if total := TotalMembers(groups); total < MinMembersTotal {
		return fmt.Errorf("%w, but got %d", ErrTooFewMembers, total)
	}

	return nil
}

// Clone returns a deep copy so callers cannot mutate stored entries.
func Clone(groups []GroupEntry) []GroupEntry {
	if groups == nil {
		return nil
	}
	out := make([]GroupEntry, len(groups))
	for i, g := range groups {
		out[i] = g
		out[i].Members = make([]MemberEntry, len(g.Members))
		for j, m := range g.Members {
			out[i].Members[j] = MemberEntry{Name: m.Name}
			if m.Rank != nil {
				rank := *m.Rank
				out[i].Members[j].Rank = &rank
			}
		}
	}
	return out
}
