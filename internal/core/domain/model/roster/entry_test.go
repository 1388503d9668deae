package roster_test

import (
	"fmt"
	"testing"

	"giftexchange/internal/core/domain/model/roster"
	"giftexchange/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// entries builds groups named "Family A", "Family B"... with sizes[i] members each.
func entries(sizes ...int) []roster.GroupEntry {
	groups := make([]roster.GroupEntry, len(sizes))
	for i, size := range sizes {
		g := roster.GroupEntry{
			Name:  fmt.Sprintf("Family %c", 'A'+i),
			Email: fmt.Sprintf("family%c@example.com", 'a'+i),
		}
		for j := 0; j < size; j++ {
			g.Members = append(g.Members, roster.MemberEntry{Name: fmt.Sprintf("%c%d", 'A'+i, j+1)})
		}
		groups[i] = g
	}
	return groups
}

func TestValidateForDraw(t *testing.T) {
	t.Run("should accept the minimal valid population", func(t *testing.T) {
		require.NoError(t, roster.ValidateForDraw(entries(3, 3, 4)))
	})

	t.Run("should accept three groups of four", func(t *testing.T) {
		require.NoError(t, roster.ValidateForDraw(entries(4, 4, 4)))
	})

	t.Run("should reject fewer than three groups", func(t *testing.T) {
		err := roster.ValidateForDraw(entries(5, 5))

		require.ErrorIs(t, err, roster.ErrTooFewGroups)
		require.ErrorIs(t, err, roster.ErrInvalidInput)
		assert.Contains(t, err.Error(), "got 2")
	})

	t.Run("should reject no groups", func(t *testing.T) {
		require.ErrorIs(t, roster.ValidateForDraw(nil), roster.ErrTooFewGroups)
	})

	t.Run("should reject a group with fewer than three members", func(t *testing.T) {
		err := roster.ValidateForDraw(entries(4, 4, 2))

		require.ErrorIs(t, err, roster.ErrTooFewGroupMembers)
		assert.Contains(t, err.Error(), "Family C")
	})

	t.Run("should reject fewer than ten members in total", func(t *testing.T) {
		err := roster.ValidateForDraw(entries(3, 3, 3))

		require.ErrorIs(t, err, roster.ErrTooFewMembers)
		assert.Contains(t, err.Error(), "got 9")
	})

	t.Run("should reject duplicate group names", func(t *testing.T) {
		groups := entries(4, 4, 4)
		groups[2].Name = groups[0].Name

		require.ErrorIs(t, roster.ValidateForDraw(groups), roster.ErrDuplicateGroupName)
	})

	t.Run("should reject member names repeated across groups", func(t *testing.T) {
		groups := entries(4, 4, 4)
		groups[1].Members[0].Name = groups[0].Members[3].Name

		err := roster.ValidateForDraw(groups)

		require.ErrorIs(t, err, roster.ErrDuplicateMemberName)
		assert.Contains(t, err.Error(), "A4")
	})

	t.Run("should reject group names that differ only by surrounding whitespace", func(t *testing.T) {
		groups := entries(4, 4, 4)
		groups[0].Name = "Smith"
		groups[1].Name = "Smith "

		err := roster.ValidateForDraw(groups)

		require.ErrorIs(t, err, roster.ErrDuplicateGroupName)
		assert.Contains(t, err.Error(), "Smith")
	})

	t.Run("should reject member names that differ only by surrounding whitespace", func(t *testing.T) {
		groups := entries(4, 4, 4)
		groups[0].Members[0].Name = "Ann"
		groups[2].Members[1].Name = " Ann\t"

		require.ErrorIs(t, roster.ValidateForDraw(groups), roster.ErrDuplicateMemberName)
	})

	t.Run("should reject an unnamed group", func(t *testing.T) {
		groups := entries(4, 4, 4)
		groups[1].Name = "  "

		err := roster.ValidateForDraw(groups)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, roster.ErrInvalidInput)
	})

	t.Run("should reject a non positive rank", func(t *testing.T) {
		groups := entries(4, 4, 4)
		zero := 0
		groups[0].Members[0].Rank = &zero

		require.ErrorIs(t, roster.ValidateForDraw(groups), roster.ErrRankIsInvalid)
	})
}

func TestClone(t *testing.T) {
	t.Run("should not share members or ranks", func(t *testing.T) {
		groups := entries(3)
		rank := 4
		groups[0].Members[0].Rank = &rank

		clone := roster.Clone(groups)
		clone[0].Members[1].Name = "changed"
		*clone[0].Members[0].Rank = 9

		assert.Equal(t, "A2", groups[0].Members[1].Name)
		assert.Equal(t, 4, *groups[0].Members[0].Rank)
	})

	t.Run("should keep nil as nil", func(t *testing.T) {
		assert.Nil(t, roster.Clone(nil))
	})
}

func TestTotalMembers(t *testing.T) {
	assert.Equal(t, 11, roster.TotalMembers(entries(3, 4, 4)))
	assert.Equal(t, 0, roster.TotalMembers(nil))
}
