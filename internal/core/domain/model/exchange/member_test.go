package exchange_test

import (
	"testing"

	"giftexchange/internal/core/domain/model/exchange"
	"giftexchange/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMember(t *testing.T) {
	t.Run("should create an unranked member", func(t *testing.T) {
		m, err := exchange.NewMember(" Alice ")

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "Alice", m.Name())
		assert.False(t, m.IsRanked())
		assert.False(t, m.HasRecipient())
	})

	t.Run("should require a name", func(t *testing.T) {
		m, err := exchange.NewMember("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, m)
	})

	t.Run("should reject zero and nil members", func(t *testing.T) {
		var zero exchange.Member
		var nilMember *exchange.Member

		require.ErrorIs(t, zero.Validate(), exchange.ErrMemberIsNotConstructed)
		require.ErrorIs(t, nilMember.Validate(), exchange.ErrMemberIsNotConstructed)
	})
}

func TestMember_AssignRank(t *testing.T) {
	t.Run("should assign a rank once", func(t *testing.T) {
		m, _ := exchange.NewMember("Bob")

		require.NoError(t, m.AssignRank(3))
		r, ok := m.Rank()
		assert.True(t, ok)
		assert.Equal(t, 3, r)
	})

	t.Run("should never overwrite a rank", func(t *testing.T) {
		m, _ := exchange.NewMember("Bob")
		require.NoError(t, m.AssignRank(3))

		err := m.AssignRank(5)

		require.ErrorIs(t, err, exchange.ErrRankAlreadyAssigned)
		r, _ := m.Rank()
		assert.Equal(t, 3, r)
	})

	t.Run("should reject non positive ranks", func(t *testing.T) {
		m, _ := exchange.NewMember("Bob")

		require.ErrorIs(t, m.AssignRank(0), errs.ErrValueIsInvalid)
		assert.False(t, m.IsRanked())
	})
}

func TestMember_Recipient(t *testing.T) {
	m, _ := exchange.NewMember("Carol")

	m.AssignRecipient(7)
	r, ok := m.RecipientRank()
	assert.True(t, ok)
	assert.Equal(t, 7, r)

	m.AssignRecipient(2)
	r, _ = m.RecipientRank()
	assert.Equal(t, 2, r)

	m.ClearRecipient()
	assert.False(t, m.HasRecipient())
}
